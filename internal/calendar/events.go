package calendar

import "time"

// Event names a widget notification.
type Event string

// Notifications emitted by a Widget.
const (
	DayChanged   Event = "day_changed"
	MonthChanged Event = "month_changed"
)

// Notification is the payload delivered to listeners.
type Notification struct {
	Event Event
	Date  time.Time
}

// Listener receives notifications. It may call back into the widget.
type Listener func(Notification)

type registration struct {
	id    int
	event Event
	fn    Listener
}

// Subscribe registers fn for event and returns a function that removes it.
// Listeners run synchronously in registration order.
func (w *Widget) Subscribe(event Event, fn Listener) (unsubscribe func()) {
	w.nextID++
	id := w.nextID
	w.listeners = append(w.listeners, registration{id: id, event: event, fn: fn})

	return func() {
		for i, r := range w.listeners {
			if r.id == id {
				w.listeners = append(w.listeners[:i:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

// emit snapshots the registry so listeners can subscribe, unsubscribe or
// navigate while being notified.
func (w *Widget) emit(event Event) {
	n := Notification{Event: event, Date: w.Date()}
	snapshot := make([]registration, len(w.listeners))
	copy(snapshot, w.listeners)
	for _, r := range snapshot {
		if r.event == event {
			r.fn(n)
		}
	}
}
