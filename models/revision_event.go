package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emlak-press/editorial"
)

// Revision event lifecycle. An event is inserted as pending before the
// article is touched and marked completed after the update lands, so a
// crash between the two never loses the audit trail for an applied change.
const (
	RevisionStatusPending   = "pending"
	RevisionStatusCompleted = "completed"

	EventTypeContentRefined = "content_refined"
)

// RevisionEvent is one append-only row of the editorial audit trail.
// Collection: revision_events
type RevisionEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	AppliedAt  *time.Time         `bson:"applied_at,omitempty" json:"applied_at,omitempty"`
	EventType  string             `bson:"event_type" json:"event_type"`
	EntityType string             `bson:"entity_type" json:"entity_type"`
	EntityID   primitive.ObjectID `bson:"entity_id" json:"entity_id"`
	Status     string             `bson:"status" json:"status"`
	Payload    RevisionPayload    `bson:"payload" json:"payload"`
}

// RevisionPayload is the before/after record stored with every event.
type RevisionPayload struct {
	Revision     editorial.ContentRevision `bson:"revision" json:"revision"`
	QualityScore int                       `bson:"quality_score" json:"quality_score"`
}
