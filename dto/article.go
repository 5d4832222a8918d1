package dto

import (
	"time"

	"emlak-press/editorial"
	"emlak-press/models"
)

// ArticleDTO exposes the fields API consumers need for either article kind.
// IDs are hex strings to keep transport simple; the raw body is included
// because the editorial dashboard renders it for review.
type ArticleDTO struct {
	ID              string    `json:"id"`
	EntityType      string    `json:"entity_type"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	Excerpt         string    `json:"excerpt"`
	MetaDescription string    `json:"meta_description"`
	Keywords        []string  `json:"keywords"`
	SourceName      string    `json:"source_name,omitempty"`
	SourceURL       string    `json:"source_url,omitempty"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewNewsArticleDTO constructs ArticleDTO from models.NewsArticle
func NewNewsArticleDTO(a models.NewsArticle) ArticleDTO {
	return ArticleDTO{
		ID:              a.ID.Hex(),
		EntityType:      "news",
		Slug:            a.Slug,
		Title:           a.Title,
		Body:            a.Body(),
		Excerpt:         a.Excerpt,
		MetaDescription: a.MetaDescription,
		Keywords:        a.Keywords,
		SourceName:      a.SourceName,
		SourceURL:       a.SourceURL,
		Published:       a.Published,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// NewBlogArticleDTO constructs ArticleDTO from models.BlogArticle
func NewBlogArticleDTO(a models.BlogArticle) ArticleDTO {
	return ArticleDTO{
		ID:              a.ID.Hex(),
		EntityType:      "blog",
		Slug:            a.Slug,
		Title:           a.Title,
		Body:            a.Body(),
		Excerpt:         a.Excerpt,
		MetaDescription: a.MetaDescription,
		Keywords:        a.Keywords,
		Published:       a.Published,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// RevisionEventDTO is one entry of an article's revision history.
type RevisionEventDTO struct {
	ID           string     `json:"id"`
	EventType    string     `json:"event_type"`
	EntityType   string     `json:"entity_type"`
	EntityID     string     `json:"entity_id"`
	Status       string     `json:"status"`
	QualityScore int        `json:"quality_score"`
	Improvements []string   `json:"improvements"`
	CreatedAt    time.Time  `json:"created_at"`
	AppliedAt    *time.Time `json:"applied_at,omitempty"`
}

// NewRevisionEventDTO constructs RevisionEventDTO from models.RevisionEvent
func NewRevisionEventDTO(ev models.RevisionEvent) RevisionEventDTO {
	return RevisionEventDTO{
		ID:           ev.ID.Hex(),
		EventType:    ev.EventType,
		EntityType:   ev.EntityType,
		EntityID:     ev.EntityID.Hex(),
		Status:       ev.Status,
		QualityScore: ev.Payload.QualityScore,
		Improvements: ev.Payload.Revision.Improvements,
		CreatedAt:    ev.CreatedAt,
		AppliedAt:    ev.AppliedAt,
	}
}

// AuditDTO pairs an audit result with the article it assessed.
type AuditDTO struct {
	ArticleID string                 `json:"article_id"`
	Audit     editorial.ContentAudit `json:"audit"`
}
