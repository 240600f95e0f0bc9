package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the service recognizes. It is built once
// at process start and passed by reference; nothing else reads the environment.
type Config struct {
	Port           string
	BaseURL        string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	CookieName     string
	CookieSecure   bool
	AllowedOrigins []string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("DATABASE_DSN", "snipr.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "720h")
	v.SetDefault("COOKIE_NAME", "token")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	return &Config{
		Port:           v.GetString("PORT"),
		BaseURL:        strings.TrimRight(v.GetString("BASE_URL"), "/"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		JWTSecret:      strings.TrimSpace(v.GetString("JWT_SECRET")),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		CookieName:     v.GetString("COOKIE_NAME"),
		CookieSecure:   v.GetBool("COOKIE_SECURE"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
	}
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
