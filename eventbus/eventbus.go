package eventbus

import (
	"context"
	"encoding/json"
)

// Topic wraps a base topic name. The revision pipeline only produces.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// Event is the payload envelope for bus messages.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher is the producer-side abstraction over the message bus.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}
