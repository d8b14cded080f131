package tracker

// EventKind classifies the signals the tracker emits toward the UI
// layer. The tracker only classifies; presentation is the UI's concern.
type EventKind int

const (
	EventDayUpdated EventKind = iota
	EventFutureDateRejected
	EventDataReset
	EventLoadFailed
)

type Event struct {
	Kind EventKind
	Day  string // YYYY-MM-DD when the event concerns a single day
	Err  error  // set for EventLoadFailed
}

type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a plain function into a Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }
