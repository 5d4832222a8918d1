package main

import (
	"context"
	"os"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emlak-press/cmd/internal/logger"
	"emlak-press/config"
	"emlak-press/db"
	"emlak-press/eventbus"
	"emlak-press/events"
	"emlak-press/feeder"
	"emlak-press/models"
	"emlak-press/parser"
	"emlak-press/renderer"
	"emlak-press/repositories"
	"emlak-press/services"
)

// turkishASCII transliterates the Turkish letters that break URL slugs.
var turkishASCII = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "I", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

func slugify(title string) string {
	s := turkishASCII.Replace(title)
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func main() {
	logger.InitFromEnv("LOG_LEVEL")

	config.InitApp()
	cfg := config.GetConfig()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	var dispatcher *events.Dispatcher
	if cfg.EventBusEnabled {
		if brokers, ok := eventbus.GetBrokers(); ok {
			bus, err := eventbus.NewKafkaPublisher(brokers)
			if err != nil {
				logger.Log.Warnf("event bus unavailable, continuing without it: %v", err)
			} else {
				defer bus.Close()
				dispatcher = events.NewDispatcher(bus, "ingest-cli")
			}
		}
	}

	newsRepo := repositories.NewNewsArticleRepository(db.Database())

	inserted, skipped := 0, 0
	for _, src := range cfg.Feeds {
		items, err := feeder.FetchFeed(src.RSSURL, cfg.FeedFetchLimit)
		if err != nil {
			logger.Log.Errorf("failed to fetch feed %s: %v", src.Name, err)
			continue
		}

		for _, item := range items {
			slug := slugify(item.Title)
			if slug == "" {
				continue
			}

			exists, err := newsRepo.IsExistBySlug(ctx, slug)
			if err != nil {
				logger.Log.Errorf("slug lookup failed for %s: %v", slug, err)
				continue
			}
			if exists {
				logger.DebugWithFields("slug already ingested", logger.Fields{
					"source": src.Name,
					"slug":   slug,
				})
				skipped++
				continue
			}

			htmlStr, err := renderer.RenderHTML(ctx, item.Link)
			if err != nil {
				logger.ErrorWithFields("failed to render page", logger.Fields{
					"source": src.Name,
					"link":   item.Link,
					"error":  err.Error(),
				})
				continue
			}

			parsed, err := parser.ParseHtml(htmlStr)
			if err != nil {
				logger.ErrorWithFields("failed to extract article text", logger.Fields{
					"source": src.Name,
					"link":   item.Link,
					"error":  err.Error(),
				})
				continue
			}

			article := &models.NewsArticle{
				Slug:       slug,
				Title:      item.Title,
				Analysis:   parsed.PlainTextContent,
				Excerpt:    parsed.Excerpt,
				SourceName: src.Name,
				SourceURL:  item.Link,
				Published:  false,
			}
			if !item.PublishedAt.IsZero() {
				article.CreatedAt = item.PublishedAt
			}

			res, err := newsRepo.Insert(ctx, article)
			if err != nil {
				logger.Log.Errorf("failed to insert article %s: %v", slug, err)
				continue
			}
			inserted++

			logger.InfoWithFields("draft ingested", logger.Fields{
				"source": src.Name,
				"slug":   slug,
				"link":   item.Link,
			})

			if dispatcher != nil {
				if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
					pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
					if err := dispatcher.PublishContentIngested(pctx, services.EntityTypeNews, oid.Hex(), src.Name, item.Link); err != nil {
						logger.Log.Warnf("event publish failed for %s: %v", slug, err)
					}
					cancel()
				}
			}
		}
	}

	logger.InfoWithFields("ingest finished", logger.Fields{
		"inserted": inserted,
		"skipped":  skipped,
	})
}
