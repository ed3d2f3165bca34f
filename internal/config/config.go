package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	App     AppConfig
	Fetch   FetchConfig
	Cache   CacheConfig
	Assets  AssetsConfig
	Profile ProfileConfig
}

type ServerConfig struct {
	Port             string
	GinMode          string
	CORSAllowOrigins []string
}

type AppConfig struct {
	Version   string
	LogLevel  string
	LogFormat string
}

type FetchConfig struct {
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 = unlimited
	RateBurst int
}

type CacheConfig struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AssetsConfig struct {
	HeroImageURL string
	AnimationURL string
}

// ProfileConfig holds the owner's links. Empty values are omitted from the
// page.
type ProfileConfig struct {
	GitHubURL   string
	TwitterURL  string
	LinkedInURL string
	Email       string
	ResumeURL   string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			GinMode:          getEnv("GIN_MODE", "release"),
			CORSAllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		App: AppConfig{
			Version:   getEnv("APP_VERSION", "1.0.0"),
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "text"),
		},
		Fetch: FetchConfig{
			Timeout:   getEnvAsDuration("FETCH_TIMEOUT", 8*time.Second),
			RateLimit: getEnvAsFloat("FETCH_RATE_LIMIT", 0),
			RateBurst: getEnvAsInt("FETCH_RATE_BURST", 4),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
			SQLitePath:    getEnv("CACHE_SQLITE_PATH", ":memory:"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		Assets: AssetsConfig{
			HeroImageURL: getEnv("HERO_IMAGE_URL", ""),
			AnimationURL: getEnv("ANIMATION_URL", ""),
		},
		Profile: ProfileConfig{
			GitHubURL:   getEnv("PROFILE_GITHUB_URL", ""),
			TwitterURL:  getEnv("PROFILE_TWITTER_URL", ""),
			LinkedInURL: getEnv("PROFILE_LINKEDIN_URL", ""),
			Email:       getEnv("PROFILE_EMAIL", ""),
			ResumeURL:   getEnv("PROFILE_RESUME_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.Server.GinMode)
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}

	if c.Fetch.RateLimit < 0 {
		return fmt.Errorf("FETCH_RATE_LIMIT must not be negative")
	}

	switch c.Cache.Backend {
	case "memory", "sqlite":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory, sqlite or redis, got %q", c.Cache.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration accepts Go durations ("8s") or plain milliseconds ("8000").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
