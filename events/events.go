package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a pipeline notification on the bus.
type EventType string

const (
	ContentRefined  EventType = "content.refined"
	ContentIngested EventType = "content.ingested"
)

// BaseEvent carries the fields common to every published event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "revise", "ingest", "api"
	Version   string    `json:"version"`
}

// NewBaseEvent stamps a fresh event envelope.
func NewBaseEvent(t EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    source,
		Version:   "1",
	}
}

// ContentRefinedEvent is published after a revision has been applied and
// logged.
type ContentRefinedEvent struct {
	BaseEvent
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	QualityScore int    `json:"quality_score"`
}

// ContentIngestedEvent is published when a new draft lands from a feed.
type ContentIngestedEvent struct {
	BaseEvent
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	SourceName string `json:"source_name"`
	Link       string `json:"link"`
}

// SerializeEvent marshals an event and reports its type tag.
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case ContentRefinedEvent:
		eventType = e.Type
	case ContentIngestedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}
