//go:build e2e

package e2e

import (
	"log"
	"os"
	"testing"

	internalcli "github.com/storefrontqa/storefront-e2e/internal/cli"
	"github.com/storefrontqa/storefront-e2e/internal/fixtures"
)

var suite *fixtures.Suite

// TestMain owns the shared browser for the whole binary and makes sure the
// per-worker user sessions exist before any spec that needs them runs.
func TestMain(m *testing.M) {
	var err error
	suite, err = fixtures.NewSuite()
	if err != nil {
		log.Fatalf("failed to start suite: %v", err)
	}

	if !internalcli.SessionsReady(suite.Config) {
		err = internalcli.RunProvision(internalcli.ProvisionDependencies{
			Config:  suite.Config,
			Browser: suite.Browser,
		})
		if err != nil {
			suite.Close()
			log.Fatalf("failed to provision user sessions: %v", err)
		}
	}

	code := m.Run()
	suite.Close()
	os.Exit(code)
}
