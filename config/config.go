package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	Timezone          string
	DBPath            string
	EnableLIFF        bool
	RefAllowedDomains string
	MaxUploadMB       int
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
	maxMB, err := strconv.Atoi(get("MAX_UPLOAD_MB", "16"))
	if err != nil || maxMB <= 0 {
		maxMB = 16
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		Timezone:          get("TZ", "Asia/Bangkok"),
		DBPath:            get("DB_PATH", "saard.db"),
		EnableLIFF:        get("ENABLE_LIFF", "false") == "true",
		RefAllowedDomains: get("REF_ALLOWED_DOMAINS", ""),
		MaxUploadMB:       maxMB,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
