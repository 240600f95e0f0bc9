package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(200, Get(c))
	})
	return r
}

func TestGeneratesRequestID(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	header := resp.Header().Get(HeaderName)
	if header == "" {
		t.Fatal("Expected X-Request-Id header to be set")
	}
	if resp.Body.String() != header {
		t.Errorf("Context id %q does not match header %q", resp.Body.String(), header)
	}
}

func TestHonorsInboundRequestID(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderName, "caller-id-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get(HeaderName); got != "caller-id-1" {
		t.Errorf("Expected inbound id to be kept, got %q", got)
	}
}
