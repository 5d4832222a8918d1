package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuggestionLog stores LLM usage for editorial suggestions (monitoring).
// Collection: suggestion_logs
type SuggestionLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EntityType   string             `bson:"entity_type" json:"entity_type"`
	EntityID     primitive.ObjectID `bson:"entity_id" json:"entity_id"`
	ModelName    string             `bson:"model_name" json:"model_name"`
	DurationMs   int64              `bson:"duration_ms" json:"duration_ms"`
	Success      bool               `bson:"success" json:"success"`
	ErrorMessage *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	Excerpt      string             `bson:"excerpt" json:"excerpt"`
	RequestedAt  time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt  time.Time          `bson:"completed_at" json:"completed_at"`
}
