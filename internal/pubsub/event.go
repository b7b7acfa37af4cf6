package pubsub

type (
	// EventType identifies the type of event
	EventType string

	// Event is a notification emitted by a widget, carrying an immutable
	// payload.
	Event[T any] struct {
		Type    EventType
		Payload T
	}
)

func NewEvent[T any](t EventType, payload T) Event[T] {
	return Event[T]{Type: t, Payload: payload}
}

// Publisher publishes events.
type Publisher[T any] interface {
	Publish(EventType, T)
}
