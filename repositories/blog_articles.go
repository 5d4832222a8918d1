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

type BlogArticleRepository struct {
	col *mongo.Collection
}

func NewBlogArticleRepository(db *mongo.Database) *BlogArticleRepository {
	return &BlogArticleRepository{col: db.Collection("blog_articles")}
}

func (r *BlogArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogArticle, error) {
	var a models.BlogArticle
	if err := r.col.FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BlogArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogArticle, error) {
	var a models.BlogArticle
	if err := r.col.FindOne(ctx, withNotDeleted(bson.M{"slug": slug})).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BlogArticleRepository) Insert(ctx context.Context, a *models.BlogArticle) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return r.col.InsertOne(ctx, a)
}

func (r *BlogArticleRepository) FindRevisionCandidates(ctx context.Context, limit int64) ([]models.BlogArticle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, withNotDeleted(bson.M{"published": false}), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.BlogArticle
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ApplyRevision overwrites the revisable fields with the revised snapshot.
// Blog articles keep their body under "content" rather than "analysis".
func (r *BlogArticleRepository) ApplyRevision(ctx context.Context, id primitive.ObjectID, after editorial.Snapshot, bodyHash string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"content":          after.Content,
			"excerpt":          after.Excerpt,
			"meta_description": after.MetaDescription,
			"revision_hash":    bodyHash,
			"updated_at":       time.Now(),
		},
	})
	return err
}
