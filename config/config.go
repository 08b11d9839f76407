package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	UploadDir   string
	StaticDir   string
	JWTSecret   string
	AuthEnabled bool
	// Domains growing guides may be ingested from.
	GuideDomains []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Europe/Berlin"),
		DBPath:      get("DB_PATH", "belarro.db"),
		UploadDir:   get("UPLOAD_DIR", "uploads"),
		StaticDir:   get("STATIC_DIR", ""),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		AuthEnabled: get("AUTH_ENABLED", "false") == "true",
	}
	for _, d := range strings.Split(get("GUIDE_ALLOWED_DOMAINS", ""), ",") {
		if d = strings.TrimSpace(strings.ToLower(d)); d != "" {
			cfg.GuideDomains = append(cfg.GuideDomains, d)
		}
	}
	log.Printf("[cfg] port=%s tz=%s db=%s auth=%v", cfg.Port, cfg.Timezone, cfg.DBPath, cfg.AuthEnabled)
	return cfg
}
