package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsArticle is a market-news article awaiting editorial review.
// Collection: news_articles
//
// The body text lives in the "analysis" field; this mirrors the site's
// news records where the editorial analysis is the primary text and the
// headline metadata comes from the source feed.
type NewsArticle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	Slug            string             `bson:"slug" json:"slug"`
	Title           string             `bson:"title" json:"title"`
	Analysis        string             `bson:"analysis" json:"analysis"`
	Excerpt         string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	MetaDescription string             `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	Keywords        []string           `bson:"keywords,omitempty" json:"keywords,omitempty"`
	SourceName      string             `bson:"source_name,omitempty" json:"source_name,omitempty"`
	SourceURL       string             `bson:"source_url,omitempty" json:"source_url,omitempty"`
	Published       bool               `bson:"published" json:"published"`
	DeletedAt       *time.Time         `bson:"deleted_at" json:"deleted_at,omitempty"`
	// RevisionHash is the SHA-256 of the body at the last completed
	// revision; a matching hash means the article has not changed since
	// and a re-run is skipped.
	RevisionHash string `bson:"revision_hash,omitempty" json:"revision_hash,omitempty"`
}

// Body returns the primary body text.
func (a NewsArticle) Body() string { return a.Analysis }
