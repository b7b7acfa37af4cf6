package logging

import (
	"strings"
	"time"
)

// Message is the event payload for a log message
type Message struct {
	Time       time.Time
	Level      string
	Message    string `json:"msg"`
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger it
	// was emitted from). The higher the Serial number the newer the message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// String renders the message and its attributes on a single line.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Message)
	for _, attr := range m.Attributes {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString("=")
		b.WriteString(attr.Value)
	}
	return b.String()
}

// BySerialDesc sorts log messages by their serial.
func BySerialDesc(i, j Message) int {
	if i.Serial < j.Serial {
		return 1
	}
	return -1
}
