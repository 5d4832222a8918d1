package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogArticle is a long-form guide or landing article.
// Collection: blog_articles
type BlogArticle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	Slug            string             `bson:"slug" json:"slug"`
	Title           string             `bson:"title" json:"title"`
	Content         string             `bson:"content" json:"content"`
	Excerpt         string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	MetaDescription string             `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	Keywords        []string           `bson:"keywords,omitempty" json:"keywords,omitempty"`
	Published       bool               `bson:"published" json:"published"`
	DeletedAt       *time.Time         `bson:"deleted_at" json:"deleted_at,omitempty"`
	RevisionHash    string             `bson:"revision_hash,omitempty" json:"revision_hash,omitempty"`
}

// Body returns the primary body text.
func (a BlogArticle) Body() string { return a.Content }
