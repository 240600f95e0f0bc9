package redirect

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snipr/snipr/pkg/snipr/cache"
	"github.com/snipr/snipr/pkg/snipr/models"
	"gorm.io/gorm"
)

// Handler handles short URL redirects
type Handler struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewHandler creates a new redirect handler. cache may be nil.
func NewHandler(db *gorm.DB, c *cache.Cache) *Handler {
	return &Handler{db: db, cache: c}
}

// Redirect resolves a short id and 302s to the original URL. The click
// counter and last-click timestamp are bumped in a single in-store update so
// concurrent redirects each count exactly once. An unknown id is a 404 with
// no side effects.
func (h *Handler) Redirect(c *gin.Context) {
	shortID := c.Param("shortId")

	target := h.cache.GetURL(c.Request.Context(), shortID)
	if target == "" {
		var link models.Link
		if err := h.db.Where("short_id = ?", shortID).First(&link).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		target = link.OriginalURL
		h.cache.SetURL(c.Request.Context(), shortID, target)
	}

	now := time.Now()
	if err := h.db.Model(&models.Link{}).Where("short_id = ?", shortID).
		UpdateColumns(map[string]interface{}{
			"clicks":     gorm.Expr("clicks + 1"),
			"last_click": now,
		}).Error; err != nil {
		// A failed metric update should not break the redirect itself.
		log.Printf("redirect: update click metrics for %s: %v", shortID, err)
	}

	c.Redirect(http.StatusFound, target)
}

// RegisterRoutes registers the redirect route on the root router.
// This must be called AFTER all other routes to avoid conflicts.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/:shortId", h.Redirect)
}
