package render

import (
	"time"

	"github.com/lixenwraith/corridor/event"
)

const (
	DefaultToastDuration = 2 * time.Second
	maxToasts            = 3
)

// Toast is a notification message with an expiry
type Toast struct {
	Message string
	Expires time.Time
}

// Toasts keeps the most recent notifications until they expire
// Not safe for concurrent use, owned by the game loop
type Toasts struct {
	ttl   time.Duration
	now   func() time.Time
	items []Toast
}

// NewToasts creates a toast list, non-positive ttl selects DefaultToastDuration
func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultToastDuration
	}
	return &Toasts{ttl: ttl, now: time.Now}
}

// Push adds a message shown until now+ttl, dropping the oldest beyond maxToasts
func (t *Toasts) Push(msg string, now time.Time) {
	if msg == "" {
		return
	}
	t.items = append(t.items, Toast{Message: msg, Expires: now.Add(t.ttl)})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Active prunes expired toasts and returns the remaining messages, oldest first
func (t *Toasts) Active(now time.Time) []string {
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.Expires) {
			kept = append(kept, item)
		}
	}
	t.items = kept

	if len(kept) == 0 {
		return nil
	}
	msgs := make([]string, len(kept))
	for i, item := range kept {
		msgs[i] = item.Message
	}
	return msgs
}

func (t *Toasts) Clear() { t.items = t.items[:0] }

func (t *Toasts) Len() int { return len(t.items) }

// Notify shows the event's message
func (t *Toasts) Notify(ev event.GameEvent) {
	t.Push(ev.Message(), t.now())
}

var _ event.Notifier = (*Toasts)(nil)
