// Package cli implements the suite's management commands.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/playwright-community/playwright-go"

	"github.com/storefrontqa/storefront-e2e/internal/adblock"
	"github.com/storefrontqa/storefront-e2e/internal/config"
	"github.com/storefrontqa/storefront-e2e/internal/pages"
	"github.com/storefrontqa/storefront-e2e/internal/users"
)

// ProvisionDependencies holds what the provisioning step needs. Browser may
// be nil, in which case a private one is launched and closed again.
type ProvisionDependencies struct {
	Config  *config.Config
	Browser playwright.Browser
}

// RunProvision logs in one pool user per worker slot through the real UI and
// persists each session's storage state to its per-worker file. It must
// complete before any test that depends on shared sessions runs.
func RunProvision(deps ProvisionDependencies) error {
	cfg := deps.Config

	// Fail on a bad pool before a browser is launched.
	pool, err := users.Users(cfg.EnvName)
	if err != nil {
		return err
	}
	log.Printf("provisioning %d worker session(s) from a pool of %d", cfg.Workers, len(pool))

	if err := os.MkdirAll(cfg.AuthDir, 0o755); err != nil {
		return fmt.Errorf("failed to create auth dir %s: %w", cfg.AuthDir, err)
	}

	browser := deps.Browser
	if browser == nil {
		pw, err := playwright.Run()
		if err != nil {
			return fmt.Errorf("could not start playwright: %w", err)
		}
		defer pw.Stop()

		browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
			Headless: playwright.Bool(cfg.Headless),
		})
		if err != nil {
			return fmt.Errorf("could not launch browser: %w", err)
		}
		defer browser.Close()
	}

	for i := 0; i < cfg.Workers; i++ {
		if err := provisionWorker(browser, cfg, i); err != nil {
			return fmt.Errorf("failed to provision session for worker %d: %w", i, err)
		}
		log.Printf("provisioned session for worker %d -> %s", i, cfg.SessionPath(i))
	}
	return nil
}

// SessionsReady reports whether every worker slot already has a session file.
func SessionsReady(cfg *config.Config) bool {
	for i := 0; i < cfg.Workers; i++ {
		if _, err := os.Stat(cfg.SessionPath(i)); err != nil {
			return false
		}
	}
	return true
}

func provisionWorker(browser playwright.Browser, cfg *config.Config, index int) error {
	user, err := users.ByIndex(cfg.EnvName, index)
	if err != nil {
		return err
	}

	ctx, err := browser.NewContext()
	if err != nil {
		return fmt.Errorf("could not create context: %w", err)
	}
	defer ctx.Close()

	// Routing has to be in place before the first navigation.
	if err := adblock.Install(ctx); err != nil {
		return fmt.Errorf("could not install ad blocking: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		return fmt.Errorf("could not create page: %w", err)
	}
	page.SetDefaultTimeout(float64(cfg.Timeout.Milliseconds()))

	if _, err := page.Goto(cfg.URL("/login")); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}
	acceptConsent(page)

	if err := page.Locator(`[data-qa="login-email"]`).Fill(user.Email); err != nil {
		return fmt.Errorf("failed to fill email: %w", err)
	}
	if err := page.Locator(`[data-qa="login-password"]`).Fill(user.Password); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}
	loginBtn := page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Login"})
	if err := loginBtn.Click(); err != nil {
		return fmt.Errorf("failed to submit login: %w", err)
	}

	// Login succeeded once the header names the user.
	err = page.Locator(pages.LoggedInUserSelector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(cfg.Timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("login did not complete for %s: %w", user.Email, err)
	}

	if _, err := ctx.StorageState(cfg.SessionPath(index)); err != nil {
		return fmt.Errorf("failed to persist session state: %w", err)
	}
	return nil
}

// acceptConsent dismisses the cookie dialog when shown; absence is fine.
func acceptConsent(page playwright.Page) {
	btn := page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Consent"})
	err := btn.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(1500),
	})
	if err == nil {
		_ = btn.Click()
	}
}
