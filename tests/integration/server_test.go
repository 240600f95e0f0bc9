package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snipr/snipr/pkg/snipr/auth"
	"github.com/snipr/snipr/pkg/snipr/links"
	"github.com/snipr/snipr/pkg/snipr/models"
	"github.com/snipr/snipr/pkg/snipr/redirect"
	"github.com/snipr/snipr/pkg/snipr/requestid"
	"github.com/snipr/snipr/pkg/snipr/shortid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testCookieName = "token"
	testBaseURL    = "http://short.test"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// setupFullServer creates a Gin engine with all routes registered.
// This mirrors the setup in cmd/snipr-server/main.go
func setupFullServer(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(requestid.Middleware())

	issuer := auth.NewTokenIssuer([]byte("integration-secret"), time.Hour)
	cookiePolicy := auth.CookiePolicy{Name: testCookieName}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := auth.NewHandler(db, issuer, cookiePolicy)
	authHandler.RegisterRoutes(r.Group("/auth"))

	gate := auth.Middleware(issuer, testCookieName)
	linksHandler := links.NewHandler(db, shortid.New(shortid.DefaultLength), testBaseURL)
	linksHandler.RegisterRoutes(r.Group("", gate), r.Group(""))

	// Redirect route must be registered LAST to avoid conflicts
	redirectHandler := redirect.NewHandler(db, nil)
	redirectHandler.RegisterRoutes(r)

	return r
}

// TestServerStartup verifies that all routes can be registered without
// conflicts. This would panic if the redirect wildcard clashed with a
// static route.
func TestServerStartup(t *testing.T) {
	db := setupTestDB(t)

	router := setupFullServer(db)
	if router == nil {
		t.Fatal("Expected router to be created")
	}
}

func TestHealthEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupFullServer(db)

	req, _ := http.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Error("Expected X-Request-Id header on responses")
	}
}

// TestEndToEnd walks the whole user journey: register, login, shorten a URL
// with the session cookie, follow the redirect, check the stats.
func TestEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	router := setupFullServer(db)

	// Register
	regBody, _ := json.Marshal(map[string]string{
		"name":     "A",
		"email":    "a@x.com",
		"password": "secret1",
	})
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBuffer(regBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	// Login
	loginBody, _ := json.Marshal(map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	req, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(loginBody))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	sessionCookies := resp.Result().Cookies()
	if len(sessionCookies) == 0 {
		t.Fatal("login: expected session cookie")
	}

	// Shorten with the session cookie
	shortenBody, _ := json.Marshal(map[string]string{
		"originalurl": "https://example.com",
	})
	req, _ = http.NewRequest("POST", "/shorten", bytes.NewBuffer(shortenBody))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range sessionCookies {
		req.AddCookie(c)
	}
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("shorten: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var shortenResp struct {
		ShortURL string `json:"shortUrl"`
		URL      struct {
			ShortID string `json:"shortId"`
		} `json:"url"`
	}
	json.Unmarshal(resp.Body.Bytes(), &shortenResp)
	if shortenResp.ShortURL != testBaseURL+"/"+shortenResp.URL.ShortID {
		t.Errorf("shorten: unexpected short URL %q", shortenResp.ShortURL)
	}

	// Follow the redirect (no auth needed)
	req, _ = http.NewRequest("GET", "/"+shortenResp.URL.ShortID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusFound {
		t.Fatalf("redirect: expected 302, got %d", resp.Code)
	}
	if location := resp.Header().Get("Location"); location != "https://example.com" {
		t.Errorf("redirect: expected https://example.com, got %s", location)
	}

	// Stats show exactly one click
	req, _ = http.NewRequest("GET", "/stats/"+shortenResp.URL.ShortID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", resp.Code)
	}

	var statsResp struct {
		Clicks    uint       `json:"clicks"`
		LastClick *time.Time `json:"lastClick"`
	}
	json.Unmarshal(resp.Body.Bytes(), &statsResp)
	if statsResp.Clicks != 1 {
		t.Errorf("stats: expected 1 click, got %d", statsResp.Clicks)
	}
	if statsResp.LastClick == nil {
		t.Error("stats: expected last click timestamp")
	}

	// The user's listing includes the link
	req, _ = http.NewRequest("GET", "/user/urls", nil)
	for _, c := range sessionCookies {
		req.AddCookie(c)
	}
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("user urls: expected 200, got %d", resp.Code)
	}

	var urlsResp struct {
		URLs []struct {
			ShortID string `json:"shortId"`
		} `json:"urls"`
	}
	json.Unmarshal(resp.Body.Bytes(), &urlsResp)
	if len(urlsResp.URLs) != 1 || urlsResp.URLs[0].ShortID != shortenResp.URL.ShortID {
		t.Errorf("user urls: expected the created link, got %s", resp.Body.String())
	}
}

// TestRedirectUnknownID covers the public miss path end to end.
func TestRedirectUnknownID(t *testing.T) {
	db := setupTestDB(t)
	router := setupFullServer(db)

	req, _ := http.NewRequest("GET", "/nothere", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown short id, got %d", resp.Code)
	}
}
