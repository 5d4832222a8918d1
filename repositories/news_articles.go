package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"emlak-press/editorial"
	"emlak-press/models"
)

// notDeleted excludes soft-deleted documents from every query.
var notDeleted = bson.M{"deleted_at": nil}

type NewsArticleRepository struct {
	col *mongo.Collection
}

func NewNewsArticleRepository(db *mongo.Database) *NewsArticleRepository {
	return &NewsArticleRepository{col: db.Collection("news_articles")}
}

// FindByID returns a news article by id; soft-deleted items are not found.
func (r *NewsArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.NewsArticle, error) {
	var a models.NewsArticle
	if err := r.col.FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindBySlug returns a news article by slug.
func (r *NewsArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.NewsArticle, error) {
	var a models.NewsArticle
	if err := r.col.FindOne(ctx, withNotDeleted(bson.M{"slug": slug})).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// IsExistBySlug checks whether an article with the slug already exists.
func (r *NewsArticleRepository) IsExistBySlug(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// Insert creates a new news article document.
func (r *NewsArticleRepository) Insert(ctx context.Context, a *models.NewsArticle) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return r.col.InsertOne(ctx, a)
}

// FindRevisionCandidates returns unpublished, not soft-deleted articles,
// newest first.
func (r *NewsArticleRepository) FindRevisionCandidates(ctx context.Context, limit int64) ([]models.NewsArticle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, withNotDeleted(bson.M{"published": false}), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.NewsArticle
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ApplyRevision overwrites the revisable fields with the revised snapshot,
// records the new body hash and refreshes updated_at.
func (r *NewsArticleRepository) ApplyRevision(ctx context.Context, id primitive.ObjectID, after editorial.Snapshot, bodyHash string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"analysis":         after.Content,
			"excerpt":          after.Excerpt,
			"meta_description": after.MetaDescription,
			"revision_hash":    bodyHash,
			"updated_at":       time.Now(),
		},
	})
	return err
}

func withNotDeleted(filter bson.M) bson.M {
	for k, v := range notDeleted {
		filter[k] = v
	}
	return filter
}
