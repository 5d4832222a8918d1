package main

import (
	"context"
	"fmt"
	"os"

	"emlak-press/cmd/internal/logger"
	"emlak-press/config"
	"emlak-press/db"
	"emlak-press/eventbus"
	"emlak-press/events"
	"emlak-press/repositories"
	"emlak-press/services"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: revise <news|blog> <id>")
	fmt.Fprintln(os.Stderr, "       revise <news|blog> --all")
	os.Exit(2)
}

func main() {
	logger.InitFromEnv("LOG_LEVEL")

	if len(os.Args) != 3 {
		usage()
	}
	kind, target := os.Args[1], os.Args[2]
	if kind != services.EntityTypeNews && kind != services.EntityTypeBlog {
		usage()
	}

	config.InitApp()
	cfg := config.GetConfig()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// Publishing is optional; the pipeline runs fine without a broker.
	var publisher services.EventPublisher
	if cfg.EventBusEnabled {
		if brokers, ok := eventbus.GetBrokers(); ok {
			bus, err := eventbus.NewKafkaPublisher(brokers)
			if err != nil {
				logger.Log.Warnf("event bus unavailable, continuing without it: %v", err)
			} else {
				defer bus.Close()
				publisher = events.NewDispatcher(bus, "revise-cli")
			}
		}
	}

	newsRepo := repositories.NewNewsArticleRepository(db.Database())
	blogRepo := repositories.NewBlogArticleRepository(db.Database())
	eventRepo := repositories.NewRevisionEventRepository(db.Database())

	var store services.ContentStore
	if kind == services.EntityTypeNews {
		store = services.NewNewsContentStore(newsRepo)
	} else {
		store = services.NewBlogContentStore(blogRepo)
	}

	auditor, reviser := services.NewEditorialFromConfig(cfg)
	svc := services.NewRevisionService(services.RevisionServiceDeps{
		Store:        store,
		Events:       services.NewMongoEventLog(eventRepo),
		Auditor:      auditor,
		Reviser:      reviser,
		Publisher:    publisher,
		Logger:       config.Logger(),
		MinBodyChars: cfg.Revision.MinBodyLength,
	})

	if target == "--all" {
		sum, err := svc.ReviseBatch(ctx)
		if err != nil {
			logger.Log.Errorf("batch run failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("revised: %d, skipped: %d, errors: %d\n", sum.Revised, sum.Skipped, sum.Errors)
		if sum.Errors > 0 {
			os.Exit(1)
		}
		return
	}

	rev, err := svc.ReviseOne(ctx, target)
	if err != nil {
		logger.Log.Errorf("revision failed: %v", err)
		os.Exit(1)
	}
	if rev == nil {
		fmt.Println("skipped (not found, too short, or unchanged)")
		return
	}

	fmt.Printf("revised %s %s (%d improvements)\n", kind, target, len(rev.Improvements))
	for _, imp := range rev.Improvements {
		fmt.Printf("  - %s\n", imp)
	}
}
