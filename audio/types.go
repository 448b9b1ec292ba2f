package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundSolved   SoundType = iota // Single marker solved
	SoundComplete                  // Every marker solved
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSolved:
		return "solved"
	case SoundComplete:
		return "complete"
	default:
		return "unknown"
	}
}
