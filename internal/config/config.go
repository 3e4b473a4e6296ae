package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/tmcgee/glossdex/internal/fragment"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Document template styling
	Styles fragment.StyleRules
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file in the working directory is loaded first if present.
func Load() Config {
	godotenv.Load()

	styles := fragment.DefaultStyleRules()
	styles.BannerFontID = envOr("GLOSSDEX_BANNER_FONT", styles.BannerFontID)
	styles.TitleFontID = envOr("GLOSSDEX_TITLE_FONT", styles.TitleFontID)
	styles.TitleMinHeight = envFloat("GLOSSDEX_TITLE_MIN_HEIGHT", styles.TitleMinHeight)
	styles.RegionStartText = envOr("GLOSSDEX_REGION_START", styles.RegionStartText)

	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("GLOSSDEX_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		Styles: styles,
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// Validate checks the settings the server cannot run without. The CLI path
// does not need them.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GLOSSDEX_API_KEY is required")
	}
	if c.Styles.BannerFontID == "" {
		return fmt.Errorf("GLOSSDEX_BANNER_FONT must not be empty")
	}
	if c.Styles.TitleFontID == "" {
		return fmt.Errorf("GLOSSDEX_TITLE_FONT must not be empty")
	}
	if c.Styles.RegionStartText == "" {
		return fmt.Errorf("GLOSSDEX_REGION_START must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
