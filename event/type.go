package event

// EventType represents the type of game event
type EventType int

const (
	// EventMarkerSolved signals a marker left the active set while others remain
	// Trigger: Interaction loop, first in-range marker of the tick
	// Consumer: Toasts, SoundManager, log | Payload: MarkerPayload
	EventMarkerSolved EventType = iota + 1

	// EventAllSolved signals the last active marker was solved
	// Replaces EventMarkerSolved for that marker, never emitted alongside it
	// Consumer: Toasts, SoundManager, log | Payload: MarkerPayload
	EventAllSolved
)

func (t EventType) String() string {
	switch t {
	case EventMarkerSolved:
		return "marker_solved"
	case EventAllSolved:
		return "all_solved"
	default:
		return "unknown"
	}
}
