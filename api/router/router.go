package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/bson"

	"emlak-press/api/handlers"
	"emlak-press/config"
	"emlak-press/db"
	"emlak-press/repositories"
	"emlak-press/services"
)

func New() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(cors.Default()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cfg := config.GetConfig()
	logger := config.Logger()

	newsRepo := repositories.NewNewsArticleRepository(db.Database())
	blogRepo := repositories.NewBlogArticleRepository(db.Database())
	eventRepo := repositories.NewRevisionEventRepository(db.Database())

	auditor, reviser := services.NewEditorialFromConfig(cfg)
	articleSvc := services.NewArticleService(newsRepo, blogRepo, eventRepo, auditor)
	eventLog := services.NewMongoEventLog(eventRepo)

	runners := map[string]*services.RevisionService{
		services.EntityTypeNews: services.NewRevisionService(services.RevisionServiceDeps{
			Store:        services.NewNewsContentStore(newsRepo),
			Events:       eventLog,
			Auditor:      auditor,
			Reviser:      reviser,
			Logger:       logger,
			MinBodyChars: cfg.Revision.MinBodyLength,
		}),
		services.EntityTypeBlog: services.NewRevisionService(services.RevisionServiceDeps{
			Store:        services.NewBlogContentStore(blogRepo),
			Events:       eventLog,
			Auditor:      auditor,
			Reviser:      reviser,
			Logger:       logger,
			MinBodyChars: cfg.Revision.MinBodyLength,
		}),
	}

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/articles/:kind", handlers.ListCandidatesHandler(articleSvc))
		api.GET("/articles/:kind/:id", handlers.GetArticleHandler(articleSvc))
		api.GET("/articles/:kind/:id/audit", handlers.AuditArticleHandler(articleSvc))
		api.GET("/articles/:kind/:id/revisions", handlers.RevisionHistoryHandler(articleSvc))
		api.POST("/articles/:kind/:id/revise", handlers.ReviseArticleHandler(runners))
	}

	return r
}

// corsMiddleware adapts an rs/cors handler to gin: headers are written by
// HandlerFunc, preflight requests are terminated here.
func corsMiddleware(c *cors.Cors) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions &&
			ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
