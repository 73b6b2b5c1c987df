package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings for the test suite
type Config struct {
	// BaseURL is the root of the application under test
	BaseURL string
	// EnvName selects the credential pool (dev, staging, ...)
	EnvName string
	// Workers is the number of parallel worker slots the suite provisions sessions for
	Workers int
	// WorkerIndex identifies this worker; set by the CI sharding wrapper
	WorkerIndex int
	// CI is true when running under a CI environment
	CI bool
	// Headless controls browser visibility
	Headless bool
	// SlowMo delays each driver operation, in milliseconds, for debugging
	SlowMo int
	// Timeout is the default bound for visibility waits and polling assertions
	Timeout time.Duration
	// AuthDir is where provisioned session state files are stored
	AuthDir string
}

var loadOnce sync.Once

// Load reads configuration from the environment, loading .env first if present.
// Existing environment variables take precedence over .env entries.
func Load() *Config {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file found, using environment variables")
		}
	})

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "https://automationexercise.com"
	}

	envName := os.Getenv("ENV_NAME")
	if envName == "" {
		envName = "dev"
	}

	authDir := os.Getenv("AUTH_DIR")
	if authDir == "" {
		authDir = ".auth"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("E2E_TIMEOUT_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return &Config{
		BaseURL:     baseURL,
		EnvName:     envName,
		Workers:     intEnv("WORKERS_COUNT", 1),
		WorkerIndex: intEnv("TEST_WORKER_INDEX", 0),
		CI:          os.Getenv("CI") != "",
		Headless:    os.Getenv("HEADLESS") != "false",
		SlowMo:      intEnv("SLOW_MO", 0),
		Timeout:     timeout,
		AuthDir:     authDir,
	}
}

// SessionPath returns the storage state file for the given user index.
func (c *Config) SessionPath(index int) string {
	return filepath.Join(c.AuthDir, fmt.Sprintf("user-%d.json", index))
}

// URL joins a path onto the base URL.
func (c *Config) URL(path string) string {
	return c.BaseURL + path
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
