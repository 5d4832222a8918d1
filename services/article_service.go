package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emlak-press/dto"
	"emlak-press/editorial"
	"emlak-press/models"
)

// NewsReader and BlogReader are the read-side store surfaces the API needs;
// the Mongo repositories implement them, tests use fakes.
type NewsReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.NewsArticle, error)
	FindBySlug(ctx context.Context, slug string) (*models.NewsArticle, error)
	FindRevisionCandidates(ctx context.Context, limit int64) ([]models.NewsArticle, error)
}

type BlogReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogArticle, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogArticle, error)
	FindRevisionCandidates(ctx context.Context, limit int64) ([]models.BlogArticle, error)
}

// HistoryReader exposes the revision event trail for one article.
type HistoryReader interface {
	FindByEntity(ctx context.Context, entityType string, entityID primitive.ObjectID) ([]models.RevisionEvent, error)
}

// ArticleService encapsulates read paths for the editorial API and maps
// documents to DTOs.
type ArticleService struct {
	news    NewsReader
	blogs   BlogReader
	events  HistoryReader
	auditor *editorial.Auditor
}

func NewArticleService(news NewsReader, blogs BlogReader, events HistoryReader, auditor *editorial.Auditor) *ArticleService {
	return &ArticleService{news: news, blogs: blogs, events: events, auditor: auditor}
}

// ListCandidates returns the unpublished articles of one kind, newest first.
func (s *ArticleService) ListCandidates(ctx context.Context, entityType string, limit int64) ([]dto.ArticleDTO, error) {
	switch entityType {
	case EntityTypeNews:
		items, err := s.news.FindRevisionCandidates(ctx, limit)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ArticleDTO, 0, len(items))
		for _, a := range items {
			out = append(out, dto.NewNewsArticleDTO(a))
		}
		return out, nil
	case EntityTypeBlog:
		items, err := s.blogs.FindRevisionCandidates(ctx, limit)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ArticleDTO, 0, len(items))
		for _, a := range items {
			out = append(out, dto.NewBlogArticleDTO(a))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown entity type %q", entityType)
}

// GetByRef loads an article by reference: a valid ObjectID hex is looked up
// by id, anything else is treated as a slug.
func (s *ArticleService) GetByRef(ctx context.Context, entityType, ref string) (*dto.ArticleDTO, error) {
	id, idErr := primitive.ObjectIDFromHex(ref)
	switch entityType {
	case EntityTypeNews:
		var (
			a   *models.NewsArticle
			err error
		)
		if idErr == nil {
			a, err = s.news.FindByID(ctx, id)
		} else {
			a, err = s.news.FindBySlug(ctx, ref)
		}
		if err != nil {
			return nil, err
		}
		d := dto.NewNewsArticleDTO(*a)
		return &d, nil
	case EntityTypeBlog:
		var (
			a   *models.BlogArticle
			err error
		)
		if idErr == nil {
			a, err = s.blogs.FindByID(ctx, id)
		} else {
			a, err = s.blogs.FindBySlug(ctx, ref)
		}
		if err != nil {
			return nil, err
		}
		d := dto.NewBlogArticleDTO(*a)
		return &d, nil
	}
	return nil, fmt.Errorf("unknown entity type %q", entityType)
}

// AuditPreview runs the read-only audit against an article without touching
// it; the dashboard uses this before triggering a revision.
func (s *ArticleService) AuditPreview(ctx context.Context, entityType, ref string) (*dto.AuditDTO, error) {
	d, err := s.GetByRef(ctx, entityType, ref)
	if err != nil {
		return nil, err
	}
	audit := s.auditor.Audit(d.Body, d.Title, d.Keywords)
	return &dto.AuditDTO{ArticleID: d.ID, Audit: audit}, nil
}

// RevisionHistory returns an article's revision events, newest first.
func (s *ArticleService) RevisionHistory(ctx context.Context, entityType, hexID string) ([]dto.RevisionEventDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.FindByEntity(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevisionEventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.NewRevisionEventDTO(ev))
	}
	return out, nil
}
