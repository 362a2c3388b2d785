package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
)

type Config struct {
	Port        int
	DataDir     string
	OutputDir   string
	StoreDriver string

	FFmpegPath     string
	CaptureDisplay string

	ChromePath        string
	BrowserHeadless   bool
	NavigationTimeout time.Duration

	StopTimeout time.Duration
	KillTimeout time.Duration

	LogDir   string
	LogLevel string
	Env      string

	NATSURL           string
	NATSSubjectPrefix string

	APIKeyHash string
}

// Load reads the configuration from the environment. Values in a .env file
// in the working directory are used for variables that are not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "3000"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}

	headless, err := strconv.ParseBool(getEnv("BROWSER_HEADLESS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid BROWSER_HEADLESS: %w", err)
	}

	navTimeout, err := getDuration("NAVIGATION_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, err
	}
	stopTimeout, err := getDuration("STOP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	killTimeout, err := getDuration("KILL_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	dataDir := getEnv("DATA_DIR", "./data")
	outputDir, err := filepath.Abs(getEnv("OUTPUT_DIR", filepath.Join(dataDir, "recordings")))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTPUT_DIR: %w", err)
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite))
	if driver != StoreSQLite && driver != StoreJSON {
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s", driver, StoreSQLite, StoreJSON)
	}

	level := strings.ToLower(getEnv("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", level)
	}

	return &Config{
		Port:              port,
		DataDir:           dataDir,
		OutputDir:         outputDir,
		StoreDriver:       driver,
		FFmpegPath:        getEnv("FFMPEG_PATH", "ffmpeg"),
		CaptureDisplay:    getEnv("CAPTURE_DISPLAY", ":99.0"),
		ChromePath:        os.Getenv("CHROME_PATH"),
		BrowserHeadless:   headless,
		NavigationTimeout: navTimeout,
		StopTimeout:       stopTimeout,
		KillTimeout:       killTimeout,
		LogDir:            getEnv("LOG_DIR", "./logs"),
		LogLevel:          level,
		Env:               getEnv("APP_ENV", "development"),
		NATSURL:           os.Getenv("NATS_URL"),
		NATSSubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "recordings"),
		APIKeyHash:        os.Getenv("API_KEY_HASH"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}
