package input

// State holds movement requested since the last tick
// Writer: input adapter (key events); Reader: interaction loop, once per tick
// Each axis keeps only the latest press, so opposite keys within one tick cancel to the last one
type State struct {
	z Direction
	x Direction
}

// Press records d as the pending move on its axis, replacing any earlier press on that axis
func (s *State) Press(d Direction) {
	switch d.Axis() {
	case AxisZ:
		s.z = d
	case AxisX:
		s.x = d
	}
}

// Pending reports whether any axis has a move waiting
func (s *State) Pending() bool {
	return s.z != DirNone || s.x != DirNone
}

// Drain returns pending moves (Z axis first) and clears them
func (s *State) Drain() []Direction {
	if !s.Pending() {
		return nil
	}
	dirs := make([]Direction, 0, 2)
	if s.z != DirNone {
		dirs = append(dirs, s.z)
	}
	if s.x != DirNone {
		dirs = append(dirs, s.x)
	}
	s.Clear()
	return dirs
}

// Clear drops pending moves without applying them
func (s *State) Clear() {
	s.z = DirNone
	s.x = DirNone
}
