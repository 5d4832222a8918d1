package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"emlak-press/models"
)

type SuggestionLogRepository struct {
	col *mongo.Collection
}

func NewSuggestionLogRepository(db *mongo.Database) *SuggestionLogRepository {
	return &SuggestionLogRepository{col: db.Collection("suggestion_logs")}
}

func (r *SuggestionLogRepository) Insert(ctx context.Context, log models.SuggestionLog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}
