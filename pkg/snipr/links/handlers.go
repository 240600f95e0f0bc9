package links

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snipr/snipr/pkg/snipr/auth"
	"github.com/snipr/snipr/pkg/snipr/models"
	"github.com/snipr/snipr/pkg/snipr/shortid"
	"gorm.io/gorm"
)

// maxCreateAttempts bounds retries when an insert loses the race for a
// freshly probed id. Each attempt re-runs the allocator's own probe loop.
const maxCreateAttempts = 5

// Handler handles link creation, listing and stats
type Handler struct {
	db      *gorm.DB
	gen     *shortid.Generator
	baseURL string
}

// NewHandler creates a new links handler
func NewHandler(db *gorm.DB, gen *shortid.Generator, baseURL string) *Handler {
	return &Handler{db: db, gen: gen, baseURL: baseURL}
}

// ShortenRequest represents the request to shorten a URL
type ShortenRequest struct {
	OriginalURL string `json:"originalurl" binding:"required"`
}

// LinkResponse represents a link in API responses
type LinkResponse struct {
	ID          uint       `json:"id"`
	ShortID     string     `json:"shortId"`
	OriginalURL string     `json:"originalurl"`
	Clicks      uint       `json:"clicks"`
	LastClick   *time.Time `json:"lastClick"`
	CreatedAt   time.Time  `json:"createdAt"`
	ShortURL    string     `json:"shortUrl"`
}

func (h *Handler) linkToResponse(link models.Link) LinkResponse {
	return LinkResponse{
		ID:          link.ID,
		ShortID:     link.ShortID,
		OriginalURL: link.OriginalURL,
		Clicks:      link.Clicks,
		LastClick:   link.LastClick,
		CreatedAt:   link.CreatedAt,
		ShortURL:    h.baseURL + "/" + link.ShortID,
	}
}

// validateURL accepts only parseable http/https URLs with a host.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("Invalid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("Invalid URL")
	}
	return nil
}

func (h *Handler) shortIDTaken(id string) (bool, error) {
	var existing models.Link
	err := h.db.Where("short_id = ?", id).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// createLink allocates a short id and persists the link. A duplicate-key
// error on insert means two requests raced for the same candidate between
// probe and create; the store's unique index converts that into a retry.
func (h *Handler) createLink(originalURL string, userID *uint) (models.Link, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		id, err := h.gen.Allocate(h.shortIDTaken)
		if err != nil {
			return models.Link{}, err
		}

		link := models.Link{
			ShortID:     id,
			OriginalURL: originalURL,
			UserID:      userID,
		}
		err = h.db.Create(&link).Error
		if err == nil {
			return link, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return models.Link{}, err
	}
	return models.Link{}, shortid.ErrIDSpaceExhausted
}

// Shorten creates a new short link owned by the authenticated user
func (h *Handler) Shorten(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Original URL is required"})
		return
	}

	if err := validateURL(req.OriginalURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var owner *uint
	if userID, ok := auth.GetUserID(c); ok {
		owner = &userID
	}

	link, err := h.createLink(req.OriginalURL, owner)
	if err != nil {
		log.Printf("shorten: create link: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}

	resp := h.linkToResponse(link)
	c.JSON(http.StatusCreated, gin.H{
		"shortUrl": resp.ShortURL,
		"url":      resp,
	})
}

// UserURLs returns the authenticated user's links, most recent first
func (h *Handler) UserURLs(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var userLinks []models.Link
	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&userLinks).Error; err != nil {
		log.Printf("user urls: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}

	responses := make([]LinkResponse, len(userLinks))
	for i, link := range userLinks {
		responses[i] = h.linkToResponse(link)
	}

	c.JSON(http.StatusOK, gin.H{"urls": responses})
}

// Stats returns public click metrics for a short id
func (h *Handler) Stats(c *gin.Context) {
	shortID := c.Param("shortId")

	var link models.Link
	if err := h.db.Where("short_id = ?", shortID).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shortId":     link.ShortID,
		"originalurl": link.OriginalURL,
		"clicks":      link.Clicks,
		"createdAt":   link.CreatedAt,
		"lastClick":   link.LastClick,
	})
}

// RegisterRoutes registers link routes. Shorten and UserURLs are gated by the
// caller; Stats is public.
func (h *Handler) RegisterRoutes(gated *gin.RouterGroup, public *gin.RouterGroup) {
	gated.POST("/shorten", h.Shorten)
	gated.GET("/user/urls", h.UserURLs)
	public.GET("/stats/:shortId", h.Stats)
}
