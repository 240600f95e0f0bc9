package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/snipr/snipr/pkg/snipr/auth"
	"github.com/snipr/snipr/pkg/snipr/cache"
	"github.com/snipr/snipr/pkg/snipr/config"
	"github.com/snipr/snipr/pkg/snipr/database"
	"github.com/snipr/snipr/pkg/snipr/links"
	"github.com/snipr/snipr/pkg/snipr/models"
	"github.com/snipr/snipr/pkg/snipr/redirect"
	"github.com/snipr/snipr/pkg/snipr/requestid"
	"github.com/snipr/snipr/pkg/snipr/shortid"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set - authenticated routes will fail")
	}

	if err := database.Connect(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Optional redirect cache
	var redirectCache *cache.Cache
	if cfg.RedisAddr != "" {
		var err error
		redirectCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		log.Printf("Redirect cache enabled (%s)", cfg.RedisAddr)
	}

	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	cookiePolicy := auth.CookiePolicy{Name: cfg.CookieName, Secure: cfg.CookieSecure}

	r := gin.Default()
	r.Use(requestid.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (register/login/logout public, /me gated internally)
	authHandler := auth.NewHandler(database.GetDB(), issuer, cookiePolicy)
	authHandler.RegisterRoutes(r.Group("/auth"))

	// Link routes: shorten and per-user listing are gated, stats is public
	gate := auth.Middleware(issuer, cfg.CookieName)
	linksHandler := links.NewHandler(database.GetDB(), shortid.New(shortid.DefaultLength), cfg.BaseURL)
	linksHandler.RegisterRoutes(r.Group("", gate), r.Group(""))

	// Serve static frontend files if web/dist exists
	webDistPath := "./web/dist"
	if _, err := os.Stat(webDistPath); err == nil {
		r.Static("/assets", filepath.Join(webDistPath, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(webDistPath, "favicon.ico"))

		// SPA fallback - serve index.html for frontend routes
		indexHTML := filepath.Join(webDistPath, "index.html")
		for _, route := range []string{"/", "/login", "/register", "/dashboard"} {
			r.GET(route, func(c *gin.Context) {
				c.File(indexHTML)
			})
		}
		log.Println("Serving frontend from ./web/dist")
	} else {
		log.Println("No frontend build found at ./web/dist - API only mode")
	}

	// Redirect route (public, must be registered LAST to avoid conflicts)
	redirectHandler := redirect.NewHandler(database.GetDB(), redirectCache)
	redirectHandler.RegisterRoutes(r)

	log.Printf("Starting snipr server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
