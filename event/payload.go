package event

import "fmt"

// MarkerPayload describes the marker resolved on a tick
type MarkerPayload struct {
	Index  int // original 1-based marker index
	Solved int // solved count after resolution
	Total  int // markers at session start
}

// GameEvent is a single notification produced by the interaction loop
type GameEvent struct {
	Type    EventType
	Payload MarkerPayload
}

// Message renders the user-facing text for the event
func (e GameEvent) Message() string {
	switch e.Type {
	case EventAllSolved:
		return "You solved all puzzles! Congratulations!"
	case EventMarkerSolved:
		return fmt.Sprintf("Puzzle %d solved! Keep going.", e.Payload.Index)
	default:
		return ""
	}
}
