package cli

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontqa/storefront-e2e/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		EnvName: "dev",
		Workers: 2,
		AuthDir: t.TempDir(),
		Timeout: time.Second,
	}
}

func TestSessionsReadyReportsMissingFiles(t *testing.T) {
	cfg := testConfig(t)
	assert.False(t, SessionsReady(cfg))

	require.NoError(t, os.WriteFile(cfg.SessionPath(0), []byte("{}"), 0o644))
	assert.False(t, SessionsReady(cfg), "one of two sessions is not enough")

	require.NoError(t, os.WriteFile(cfg.SessionPath(1), []byte("{}"), 0o644))
	assert.True(t, SessionsReady(cfg))
}

func TestRunProvisionRejectsUnknownEnvironment(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnvName = "nope"
	cfg.Workers = 1

	err := RunProvision(ProvisionDependencies{Config: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
