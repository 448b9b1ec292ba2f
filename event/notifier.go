package event

// Notifier receives events as they are produced
// Implementations must not block the game loop
type Notifier interface {
	Notify(ev GameEvent)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ev GameEvent)

func (f NotifierFunc) Notify(ev GameEvent) { f(ev) }

// Fanout delivers each event to every notifier in order, skipping nil entries
type Fanout []Notifier

func (f Fanout) Notify(ev GameEvent) {
	for _, n := range f {
		if n != nil {
			n.Notify(ev)
		}
	}
}
