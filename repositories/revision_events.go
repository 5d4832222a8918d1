package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"emlak-press/models"
)

// RevisionEventRepository manages the append-only editorial audit trail.
// Events are never updated except for the pending -> completed transition.
type RevisionEventRepository struct {
	col *mongo.Collection
}

func NewRevisionEventRepository(db *mongo.Database) *RevisionEventRepository {
	return &RevisionEventRepository{col: db.Collection("revision_events")}
}

// InsertPending records the revision intent before the article is touched.
func (r *RevisionEventRepository) InsertPending(ctx context.Context, ev *models.RevisionEvent) (primitive.ObjectID, error) {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	ev.Status = models.RevisionStatusPending
	res, err := r.col.InsertOne(ctx, ev)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// MarkCompleted flips a pending event to completed once the article update
// has landed.
func (r *RevisionEventRepository) MarkCompleted(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":     models.RevisionStatusCompleted,
			"applied_at": now,
		},
	})
	return err
}

// FindByEntity returns the revision history of one article, newest first.
func (r *RevisionEventRepository) FindByEntity(ctx context.Context, entityType string, entityID primitive.ObjectID) ([]models.RevisionEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"entity_type": entityType, "entity_id": entityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.RevisionEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
