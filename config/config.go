package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Auth Configuration
	JWTSecret       string
	TokenTTLMinutes int
	// Redis/Upstash Configuration (hiring analysis cache)
	RedisURL        string
	RedisPassword   string
	CacheTTLMinutes int
	// Resume Upload Configuration
	MaxUploadSizeMB int
	// Job Board Scraping Configuration
	ScrapeLinkedInPages  int
	ScrapeIndeedPages    int
	ScrapeGlassdoorPages int
	ScrapeTimeoutSeconds int
	DefaultKeywords      string
	DefaultLocation      string
}

func LoadConfig() (*Config, error) {
	// .env only exists locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Auth Configuration
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 1440), // 24 hours
		// Redis Configuration
		RedisURL:        getEnv("REDIS_URL", getEnv("UPSTASH_REDIS_URL", "")),
		RedisPassword:   getEnv("REDIS_PASSWORD", getEnv("UPSTASH_REDIS_PASSWORD", "")),
		CacheTTLMinutes: getEnvInt("HIRING_CACHE_TTL_MINUTES", 15),
		// Resume Upload Configuration
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 16),
		// Scraping Configuration (kept small to avoid being blocked)
		ScrapeLinkedInPages:  getEnvInt("SCRAPE_LINKEDIN_PAGES", 2),
		ScrapeIndeedPages:    getEnvInt("SCRAPE_INDEED_PAGES", 3),
		ScrapeGlassdoorPages: getEnvInt("SCRAPE_GLASSDOOR_PAGES", 2),
		ScrapeTimeoutSeconds: getEnvInt("SCRAPE_TIMEOUT_SECONDS", 10),
		DefaultKeywords:      getEnv("SCRAPE_DEFAULT_KEYWORDS", "developer OR engineer OR analyst OR manager OR designer OR consultant OR specialist"),
		DefaultLocation:      getEnv("SCRAPE_DEFAULT_LOCATION", "India"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Falling back to in-memory storage.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Tokens signed with an empty secret are forgeable; set it before deploying.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Hiring analysis results will not be cached.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
