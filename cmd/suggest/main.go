package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emlak-press/cmd/internal/logger"
	"emlak-press/config"
	"emlak-press/db"
	"emlak-press/models"
	"emlak-press/repositories"
	"emlak-press/services"
	"emlak-press/suggester"
)

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

func main() {
	logger.InitFromEnv("LOG_LEVEL")

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: suggest <news|blog> <id>")
		os.Exit(2)
	}
	kind, hexID := os.Args[1], os.Args[2]

	config.InitApp()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		logger.Log.Errorf("invalid id %s: %v", hexID, err)
		os.Exit(1)
	}

	var title, body string
	switch kind {
	case services.EntityTypeNews:
		a, err := repositories.NewNewsArticleRepository(db.Database()).FindByID(ctx, id)
		if err != nil {
			logger.Log.Errorf("failed to load news article: %v", err)
			os.Exit(1)
		}
		title, body = a.Title, a.Analysis
	case services.EntityTypeBlog:
		a, err := repositories.NewBlogArticleRepository(db.Database()).FindByID(ctx, id)
		if err != nil {
			logger.Log.Errorf("failed to load blog article: %v", err)
			os.Exit(1)
		}
		title, body = a.Title, a.Content
	default:
		fmt.Fprintln(os.Stderr, "usage: suggest <news|blog> <id>")
		os.Exit(2)
	}

	suggestion, callLog, err := suggester.SuggestEditorial(title + "\n\n" + body)

	logRepo := repositories.NewSuggestionLogRepository(db.Database())
	entry := models.SuggestionLog{
		EntityType: kind,
		EntityID:   id,
		Success:    err == nil && suggestion != nil && !suggestion.IsFailure,
	}
	if callLog != nil {
		entry.ModelName = callLog.ModelName
		entry.DurationMs = callLog.DurationMs
		entry.RequestedAt = callLog.RequestedAt
		entry.CompletedAt = callLog.CompletedAt
	}
	if err != nil {
		msg := err.Error()
		entry.ErrorMessage = &msg
	} else if suggestion != nil {
		entry.Excerpt = truncate(suggestion.MetaDescription, 200)
	}
	if _, logErr := logRepo.Insert(ctx, entry); logErr != nil {
		logger.Log.Warnf("failed to persist suggestion log: %v", logErr)
	}

	if err != nil {
		logger.Log.Errorf("suggestion failed: %v", err)
		os.Exit(1)
	}
	if suggestion.IsFailure {
		fmt.Println("model declined: content too short or unreadable")
		os.Exit(1)
	}

	fmt.Printf("intro:\n  %s\n\n", suggestion.Intro)
	fmt.Printf("meta description:\n  %s\n\n", suggestion.MetaDescription)
	fmt.Printf("keywords: %s\n", strings.Join(suggestion.Keywords, ", "))
}
