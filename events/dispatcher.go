package events

import (
	"context"

	"emlak-press/eventbus"
)

// Dispatcher publishes typed pipeline events onto the bus. It implements
// services.EventPublisher.
type Dispatcher struct {
	bus    eventbus.Publisher
	source string
}

func NewDispatcher(bus eventbus.Publisher, source string) *Dispatcher {
	return &Dispatcher{bus: bus, source: source}
}

func (d *Dispatcher) PublishContentRefined(ctx context.Context, entityType, entityID string, qualityScore int) error {
	ev := ContentRefinedEvent{
		BaseEvent:    NewBaseEvent(ContentRefined, d.source),
		EntityType:   entityType,
		EntityID:     entityID,
		QualityScore: qualityScore,
	}
	return d.publish(ctx, ev, ev.ID)
}

func (d *Dispatcher) PublishContentIngested(ctx context.Context, entityType, entityID, sourceName, link string) error {
	ev := ContentIngestedEvent{
		BaseEvent:  NewBaseEvent(ContentIngested, d.source),
		EntityType: entityType,
		EntityID:   entityID,
		SourceName: sourceName,
		Link:       link,
	}
	return d.publish(ctx, ev, ev.ID)
}

func (d *Dispatcher) publish(ctx context.Context, event interface{}, id string) error {
	data, _, err := SerializeEvent(event)
	if err != nil {
		return err
	}
	return d.bus.Publish(ctx, eventbus.TopicContentEvents.Base(), eventbus.Event{
		ID:      id,
		Payload: data,
	})
}
