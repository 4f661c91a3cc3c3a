package dom

// EventSubmit fires when a form is submitted.
const EventSubmit = "submit"

// Event models a cancellable document event. A listener may suppress the
// event's default action with PreventDefault and stop delivery to later
// listeners with StopImmediatePropagation.
type Event struct {
	typ              string
	defaultPrevented bool
	stopped          bool
}

// NewEvent returns an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{typ: typ}
}

func (e *Event) Type() string {
	return e.typ
}

// PreventDefault marks the event's default action as suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopImmediatePropagation stops delivery to any listener not yet invoked.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
}

func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// dispatcher delivers events to listeners in registration order. It runs on
// the single caller goroutine, matching the serialized event model of UI
// runtimes, so there is no locking.
type dispatcher struct {
	listeners map[string][]Handler
}

func (d *dispatcher) addListener(typ string, h Handler) {
	if typ == "" || h == nil {
		return
	}
	if d.listeners == nil {
		d.listeners = make(map[string][]Handler)
	}
	d.listeners[typ] = append(d.listeners[typ], h)
}

func (d *dispatcher) dispatch(e *Event) bool {
	for _, h := range d.listeners[e.typ] {
		h(e)
		if e.stopped {
			break
		}
	}
	return !e.defaultPrevented
}
