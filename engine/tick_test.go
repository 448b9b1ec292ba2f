package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/vmath"
	"github.com/lixenwraith/corridor/world"
)

// layoutAt builds a session with the player at the origin and markers on the X axis
func layoutAt(xs ...float64) *world.Session {
	l := world.Layout{}
	for _, x := range xs {
		l.Markers = append(l.Markers, vmath.Vec3F{X: x})
	}
	return world.NewSession(l)
}

func TestTickNoChangeWhenOutOfRange(t *testing.T) {
	s := world.NewSession(world.DefaultLayout())
	q := event.NewEventQueue()
	before := s.Player().Position

	for i := 0; i < 10; i++ {
		_, ok := Tick(s, &input.State{}, q, DefaultTuning())
		assert.False(t, ok)
	}

	assert.Equal(t, before, s.Player().Position)
	assert.Zero(t, s.Solved())
	assert.Len(t, s.RemainingMarkers(), 3)
	assert.Zero(t, q.Len())
}

func TestTickSolvesSingleMarkerInRange(t *testing.T) {
	s := layoutAt(1.0, 10.0)
	q := event.NewEventQueue()

	ev, ok := Tick(s, nil, q, DefaultTuning())
	require.True(t, ok)

	assert.Equal(t, event.EventMarkerSolved, ev.Type)
	assert.Equal(t, event.MarkerPayload{Index: 1, Solved: 1, Total: 2}, ev.Payload)
	assert.Equal(t, 1, s.Solved())

	remaining := s.RemainingMarkers()
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].Index)

	assert.Equal(t, []event.GameEvent{ev}, q.Consume())
}

func TestTickThresholdIsStrict(t *testing.T) {
	s := layoutAt(1.5)
	_, ok := Tick(s, nil, nil, DefaultTuning())
	assert.False(t, ok, "a marker exactly at the threshold is not in range")

	s = layoutAt(1.4999)
	_, ok = Tick(s, nil, nil, DefaultTuning())
	assert.True(t, ok)
}

func TestTickFirstMatchNotNearest(t *testing.T) {
	// Marker 2 is nearer, but marker 1 comes first in scan order
	s := layoutAt(1.4, 0.1)
	q := event.NewEventQueue()

	ev, ok := Tick(s, nil, q, DefaultTuning())
	require.True(t, ok)
	assert.Equal(t, 1, ev.Payload.Index)
	assert.Equal(t, event.EventMarkerSolved, ev.Type)

	ev, ok = Tick(s, nil, q, DefaultTuning())
	require.True(t, ok)
	assert.Equal(t, 2, ev.Payload.Index)
	assert.Equal(t, event.EventAllSolved, ev.Type)
}

func TestTickAtMostOneMarkerPerTick(t *testing.T) {
	s := layoutAt(0, 0, 0)

	for want := 1; want <= 3; want++ {
		ev, ok := Tick(s, nil, nil, DefaultTuning())
		require.True(t, ok)
		assert.Equal(t, want, s.Solved())
		assert.Equal(t, want, ev.Payload.Index)
	}
}

func TestTickLastMarkerEmitsAllSolvedOnly(t *testing.T) {
	s := layoutAt(5, 0)
	q := event.NewEventQueue()

	ev, ok := Tick(s, nil, q, DefaultTuning())
	require.True(t, ok)
	assert.Equal(t, event.EventMarkerSolved, ev.Type)
	assert.Equal(t, 2, ev.Payload.Index)

	// Walk to marker 1 at x=5
	in := &input.State{}
	var last event.GameEvent
	for i := 0; i < 50 && !s.Complete(); i++ {
		in.Press(input.DirRight)
		if e, ok := Tick(s, in, q, DefaultTuning()); ok {
			last = e
		}
	}

	require.True(t, s.Complete())
	assert.Equal(t, event.EventAllSolved, last.Type)
	assert.Equal(t, 1, last.Payload.Index)
	assert.Equal(t, "You solved all puzzles! Congratulations!", last.Message())

	events := q.Consume()
	require.Len(t, events, 2)
	assert.Equal(t, event.EventMarkerSolved, events[0].Type)
	assert.Equal(t, event.EventAllSolved, events[1].Type)
}

func TestTickAppliesInputBeforeScan(t *testing.T) {
	l := world.Layout{Markers: []vmath.Vec3F{{Z: -1.6}}}
	s := world.NewSession(l)
	in := &input.State{}
	in.Press(input.DirForward)

	_, ok := Tick(s, in, nil, DefaultTuning())
	assert.True(t, ok, "moving to z=-0.3 brings the marker within 1.3")
	assert.False(t, in.Pending(), "input is consumed by the tick")
}

func TestTickIdempotentAfterCompletion(t *testing.T) {
	s := layoutAt(0)
	_, ok := Tick(s, nil, nil, DefaultTuning())
	require.True(t, ok)
	require.True(t, s.Complete())

	q := event.NewEventQueue()
	for i := 0; i < 5; i++ {
		_, ok := Tick(s, nil, q, DefaultTuning())
		assert.False(t, ok)
	}
	assert.Equal(t, 1, s.Solved())
	assert.Empty(t, s.RemainingMarkers())
	assert.Zero(t, q.Len())
}

func TestTuningInterval(t *testing.T) {
	assert.Equal(t, "16.666666ms", DefaultTuning().Interval().String())
	assert.Equal(t, DefaultTuning().Interval(), Tuning{}.Interval())

	d := Tuning{}.withDefaults()
	assert.Equal(t, DefaultTuning(), d)

	custom := Tuning{TickRate: 10, Speed: 1, Threshold: 2}.withDefaults()
	assert.Equal(t, Tuning{TickRate: 10, Speed: 1, Threshold: 2}, custom)
}
