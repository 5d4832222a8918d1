package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"emlak-press/editorial"
	"emlak-press/models"
	"emlak-press/repositories"
)

// EntityTypeNews and EntityTypeBlog key the two article collections in the
// event log and the CLI.
const (
	EntityTypeNews = "news"
	EntityTypeBlog = "blog"
)

// NewsContentStore adapts NewsArticleRepository to the ContentStore
// interface used by RevisionService.
type NewsContentStore struct {
	repo *repositories.NewsArticleRepository
}

func NewNewsContentStore(repo *repositories.NewsArticleRepository) *NewsContentStore {
	return &NewsContentStore{repo: repo}
}

func (s *NewsContentStore) EntityType() string { return EntityTypeNews }

func (s *NewsContentStore) FindByID(ctx context.Context, id string) (*ContentItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	a, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return newsItem(*a), nil
}

func (s *NewsContentStore) FindCandidates(ctx context.Context) ([]ContentItem, error) {
	articles, err := s.repo.FindRevisionCandidates(ctx, 0)
	if err != nil {
		return nil, err
	}
	items := make([]ContentItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, *newsItem(a))
	}
	return items, nil
}

func (s *NewsContentStore) ApplyRevision(ctx context.Context, id string, after editorial.Snapshot, bodyHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.repo.ApplyRevision(ctx, oid, after, bodyHash)
}

func newsItem(a models.NewsArticle) *ContentItem {
	return &ContentItem{
		ID:              a.ID.Hex(),
		Slug:            a.Slug,
		Title:           a.Title,
		Body:            a.Body(),
		Excerpt:         a.Excerpt,
		MetaDescription: a.MetaDescription,
		Keywords:        a.Keywords,
		RevisionHash:    a.RevisionHash,
		CreatedAt:       a.CreatedAt,
	}
}

// BlogContentStore adapts BlogArticleRepository to ContentStore.
type BlogContentStore struct {
	repo *repositories.BlogArticleRepository
}

func NewBlogContentStore(repo *repositories.BlogArticleRepository) *BlogContentStore {
	return &BlogContentStore{repo: repo}
}

func (s *BlogContentStore) EntityType() string { return EntityTypeBlog }

func (s *BlogContentStore) FindByID(ctx context.Context, id string) (*ContentItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	a, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blogItem(*a), nil
}

func (s *BlogContentStore) FindCandidates(ctx context.Context) ([]ContentItem, error) {
	articles, err := s.repo.FindRevisionCandidates(ctx, 0)
	if err != nil {
		return nil, err
	}
	items := make([]ContentItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, *blogItem(a))
	}
	return items, nil
}

func (s *BlogContentStore) ApplyRevision(ctx context.Context, id string, after editorial.Snapshot, bodyHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.repo.ApplyRevision(ctx, oid, after, bodyHash)
}

func blogItem(a models.BlogArticle) *ContentItem {
	return &ContentItem{
		ID:              a.ID.Hex(),
		Slug:            a.Slug,
		Title:           a.Title,
		Body:            a.Body(),
		Excerpt:         a.Excerpt,
		MetaDescription: a.MetaDescription,
		Keywords:        a.Keywords,
		RevisionHash:    a.RevisionHash,
		CreatedAt:       a.CreatedAt,
	}
}

// MongoEventLog adapts RevisionEventRepository to the EventLog interface.
type MongoEventLog struct {
	repo *repositories.RevisionEventRepository
}

func NewMongoEventLog(repo *repositories.RevisionEventRepository) *MongoEventLog {
	return &MongoEventLog{repo: repo}
}

func (l *MongoEventLog) LogPending(ctx context.Context, entityType, entityID string, payload models.RevisionPayload) (string, error) {
	oid, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		return "", err
	}
	id, err := l.repo.InsertPending(ctx, &models.RevisionEvent{
		EventType:  models.EventTypeContentRefined,
		EntityType: entityType,
		EntityID:   oid,
		Payload:    payload,
	})
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (l *MongoEventLog) MarkCompleted(ctx context.Context, eventID string) error {
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return err
	}
	return l.repo.MarkCompleted(ctx, oid)
}
