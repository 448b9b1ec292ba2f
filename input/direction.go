package input

// Direction is one of the four discrete movement commands
type Direction uint8

const (
	DirNone Direction = iota
	DirForward
	DirBack
	DirLeft
	DirRight
)

// Axis identifies the ground-plane axis a direction moves along
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisZ
)

var directionNames = [...]string{
	DirNone:    "none",
	DirForward: "forward",
	DirBack:    "back",
	DirLeft:    "left",
	DirRight:   "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Axis returns the axis d moves along, AxisNone for DirNone and unknown values
func (d Direction) Axis() Axis {
	switch d {
	case DirForward, DirBack:
		return AxisZ
	case DirLeft, DirRight:
		return AxisX
	default:
		return AxisNone
	}
}

// Delta returns the unit ground-plane step for d
// Forward is -Z, matching the corridor running away from the start
func (d Direction) Delta() (dx, dz float64) {
	switch d {
	case DirForward:
		return 0, -1
	case DirBack:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDirection resolves a direction name as used in keymap files
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if i != int(DirNone) && n == name {
			return Direction(i), true
		}
	}
	return DirNone, false
}
