package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionPathLayout(t *testing.T) {
	cfg := &Config{AuthDir: ".auth"}
	assert.Equal(t, filepath.Join(".auth", "user-0.json"), cfg.SessionPath(0))
	assert.Equal(t, filepath.Join(".auth", "user-3.json"), cfg.SessionPath(3))
}

func TestURLJoinsPathOntoBase(t *testing.T) {
	cfg := &Config{BaseURL: "https://example.test"}
	assert.Equal(t, "https://example.test/view_cart", cfg.URL("/view_cart"))
}

func TestIntEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("WORKERS_COUNT", "not-a-number")
	assert.Equal(t, 4, intEnv("WORKERS_COUNT", 4))

	t.Setenv("WORKERS_COUNT", "8")
	assert.Equal(t, 8, intEnv("WORKERS_COUNT", 4))
}
