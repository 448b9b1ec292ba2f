package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameEventMessage(t *testing.T) {
	solved := GameEvent{Type: EventMarkerSolved, Payload: MarkerPayload{Index: 2, Solved: 1, Total: 3}}
	assert.Equal(t, "Puzzle 2 solved! Keep going.", solved.Message())

	all := GameEvent{Type: EventAllSolved, Payload: MarkerPayload{Index: 3, Solved: 3, Total: 3}}
	assert.Equal(t, "You solved all puzzles! Congratulations!", all.Message())

	assert.Empty(t, GameEvent{}.Message())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "marker_solved", EventMarkerSolved.String())
	assert.Equal(t, "all_solved", EventAllSolved.String())
	assert.Equal(t, "unknown", EventType(0).String())
}

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventMarkerSolved, Payload: MarkerPayload{Index: 1}})
	q.Notify(GameEvent{Type: EventAllSolved, Payload: MarkerPayload{Index: 2}})
	assert.Equal(t, 2, q.Len())

	got := q.Consume()
	if assert.Len(t, got, 2) {
		assert.Equal(t, 1, got[0].Payload.Index)
		assert.Equal(t, EventAllSolved, got[1].Type)
	}
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestFanout(t *testing.T) {
	var order []string
	a := NotifierFunc(func(GameEvent) { order = append(order, "a") })
	b := NotifierFunc(func(GameEvent) { order = append(order, "b") })
	q := NewEventQueue()

	Fanout{a, nil, b, q}.Notify(GameEvent{Type: EventMarkerSolved})

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, q.Len())
}
