package logging

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/leg100/flick/internal/pubsub"
)

// CreatedEvent is the type of event published for each new log message.
const CreatedEvent pubsub.EventType = "created"

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as events.
type writer struct {
	messages []Message
	mu       sync.Mutex

	broker *pubsub.Broker[Message]
	serial uint
}

func (b *writer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: b.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
		b.broker.Publish(CreatedEvent, msg)
		b.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	b.messages = append(b.messages, msgs...)
	return len(p), nil
}

func (b *writer) list() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.messages)
}
