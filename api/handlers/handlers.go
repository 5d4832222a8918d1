package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"emlak-press/services"
)

func entityType(c *gin.Context) (string, bool) {
	kind := c.Param("kind")
	if kind != services.EntityTypeNews && kind != services.EntityTypeBlog {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be news or blog"})
		return "", false
	}
	return kind, true
}

// ListCandidatesHandler godoc
// @Summary      List revision candidates
// @Description  List unpublished articles awaiting editorial revision
// @Tags         articles
// @Param        kind   path   string  true   "news or blog"
// @Param        limit  query  int     false  "Max items (<=100)"
// @Produce      json
// @Success      200  {array}  dto.ArticleDTO
// @Router       /articles/{kind} [get]
func ListCandidatesHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := entityType(c)
		if !ok {
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if limit > 100 {
			limit = 100
		}

		items, err := svc.ListCandidates(c.Request.Context(), kind, int64(limit))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetArticleHandler godoc
// @Summary      Get article
// @Description  Get a single article by ObjectID or slug
// @Tags         articles
// @Param        kind  path   string  true  "news or blog"
// @Param        id    path   string  true  "ObjectID or slug"
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Router       /articles/{kind}/{id} [get]
func GetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := entityType(c)
		if !ok {
			return
		}
		article, err := svc.GetByRef(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// AuditArticleHandler godoc
// @Summary      Audit an article
// @Description  Run a read-only quality audit without modifying the article
// @Tags         articles
// @Param        kind  path   string  true  "news or blog"
// @Param        id    path   string  true  "ObjectID or slug"
// @Produce      json
// @Success      200  {object}  dto.AuditDTO
// @Router       /articles/{kind}/{id}/audit [get]
func AuditArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := entityType(c)
		if !ok {
			return
		}
		audit, err := svc.AuditPreview(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, audit)
	}
}

// RevisionHistoryHandler godoc
// @Summary      Revision history
// @Description  List the revision events of an article, newest first
// @Tags         articles
// @Param        kind  path   string  true  "news or blog"
// @Param        id    path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {array}  dto.RevisionEventDTO
// @Router       /articles/{kind}/{id}/revisions [get]
func RevisionHistoryHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := entityType(c)
		if !ok {
			return
		}
		events, err := svc.RevisionHistory(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// ReviseArticleHandler godoc
// @Summary      Revise an article
// @Description  Run the full revision pipeline on one article
// @Tags         articles
// @Param        kind  path   string  true  "news or blog"
// @Param        id    path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /articles/{kind}/{id}/revise [post]
func ReviseArticleHandler(runners map[string]*services.RevisionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := entityType(c)
		if !ok {
			return
		}
		svc := runners[kind]
		rev, err := svc.ReviseOne(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rev == nil {
			c.JSON(http.StatusOK, gin.H{"revised": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"revised": true, "improvements": rev.Improvements})
	}
}
