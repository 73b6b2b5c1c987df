// Package fixtures supplies each test with a ready-to-use page Manager under
// one of three policies: a fresh anonymous context, a context seeded with a
// pre-provisioned user session, or a context authenticated by driving the
// full registration flow.
package fixtures

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/storefrontqa/storefront-e2e/internal/adblock"
	"github.com/storefrontqa/storefront-e2e/internal/api"
	"github.com/storefrontqa/storefront-e2e/internal/config"
	"github.com/storefrontqa/storefront-e2e/internal/pages"
	"github.com/storefrontqa/storefront-e2e/internal/person"
)

// Suite owns the playwright runtime and the shared browser for one test
// binary. Create it in TestMain and Close it when the run finishes.
type Suite struct {
	pw      *playwright.Playwright
	Browser playwright.Browser
	Config  *config.Config
}

// NewSuite starts playwright and launches the shared browser.
func NewSuite() (*Suite, error) {
	cfg := config.Load()

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo)),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &Suite{pw: pw, Browser: browser, Config: cfg}, nil
}

// Close releases the browser and the playwright runtime.
func (s *Suite) Close() {
	if s.Browser != nil {
		s.Browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}

// Pages yields a Manager over a fresh anonymous context. Ad blocking is
// installed before any navigation can happen. The context is torn down when
// the test finishes.
func (s *Suite) Pages(t *testing.T) *pages.Manager {
	t.Helper()
	ctx := s.newContext(t, playwright.BrowserNewContextOptions{})
	return s.newManager(t, ctx)
}

// UserPages yields a Manager over a context seeded with one of the
// pre-provisioned sessions, selected by workerIndex mod pool size. The
// provisioning step must have completed first; a missing session file is a
// setup failure, not something to retry at test time.
func (s *Suite) UserPages(t *testing.T) *pages.Manager {
	t.Helper()

	index := s.Config.WorkerIndex % s.Config.Workers
	path := s.Config.SessionPath(index)
	require.FileExists(t, path,
		"session state for worker %d not provisioned; run `storefront-e2e provision` first", index)

	ctx := s.newContext(t, playwright.BrowserNewContextOptions{
		StorageStatePath: playwright.String(path),
	})
	return s.newManager(t, ctx)
}

// NewUserPages registers a brand-new user through the real UI flow and
// yields the authenticated Manager together with the identity it created.
// Any failure here aborts the test before its body runs.
func (s *Suite) NewUserPages(t *testing.T) (*pages.Manager, person.Person) {
	t.Helper()

	user := person.New(seedFor(t))
	pm := s.Pages(t)

	pm.Home().Open()
	pm.ConsentDialog().AcceptIfVisible()
	pm.Home().ClickSignupLoginLink()
	pm.LoginSignup().WaitForLoad()
	pm.LoginSignup().EnterNameAndEmail(user.Name, user.Email)
	pm.LoginSignup().ClickSignupButton()
	pm.LoginSignup().AssertURL("/signup")
	pm.Signup().WaitForLoad()
	pm.Signup().FillForm(user)
	pm.Signup().ClickCreateAccountButton()
	pm.AccountCreated().WaitForLoad()
	pm.AccountCreated().AssertSuccessMessage()
	pm.AccountCreated().ClickContinueButton()
	pm.Header().WaitForLoad()
	pm.Header().AssertUserName(user.Name)

	return pm, user
}

// APIUserPages arranges a fresh account over the site's REST API, then logs
// in through the UI. Faster than NewUserPages when the registration form
// itself is not under test. The account is removed again after the test.
func (s *Suite) APIUserPages(t *testing.T) (*pages.Manager, person.Person) {
	t.Helper()

	user := person.New(seedFor(t))
	client := api.NewAccountClient(s.Config.BaseURL)
	require.NoError(t, client.CreateAccount(user), "failed to create account via API")
	t.Cleanup(func() {
		if err := client.DeleteAccount(user.Email, user.Password); err != nil {
			t.Logf("failed to delete account %s: %v", user.Email, err)
		}
	})

	pm := s.Pages(t)
	pm.Home().Open()
	pm.ConsentDialog().AcceptIfVisible()
	pm.Home().ClickSignupLoginLink()
	pm.LoginSignup().WaitForLoad()
	pm.LoginSignup().Login(user.Email, user.Password)
	pm.Header().AssertUserName(user.Name)

	return pm, user
}

// newContext opens a context with ad blocking installed before any page
// exists in it, and ties its lifetime to the test.
func (s *Suite) newContext(t *testing.T, opts playwright.BrowserNewContextOptions) playwright.BrowserContext {
	t.Helper()

	ctx, err := s.Browser.NewContext(opts)
	require.NoError(t, err, "could not create browser context")
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Logf("failed to close context: %v", err)
		}
	})

	require.NoError(t, adblock.Install(ctx), "could not install ad blocking")
	return ctx
}

func (s *Suite) newManager(t *testing.T, ctx playwright.BrowserContext) *pages.Manager {
	t.Helper()

	page, err := ctx.NewPage()
	require.NoError(t, err, "could not create page")
	page.SetDefaultTimeout(float64(s.Config.Timeout.Milliseconds()))

	return pages.NewManager(t, page, pages.Options{
		BaseURL: s.Config.BaseURL,
		Timeout: s.Config.Timeout,
		Rand:    randFor(t),
	})
}
