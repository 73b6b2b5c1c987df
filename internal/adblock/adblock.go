// Package adblock aborts requests to the target site's ad network so tests
// are not slowed down or obscured by third-party ad frames.
package adblock

import (
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"
)

const adHost = "googlesyndication.com"

// Install registers a route on the context that aborts requests to the ad
// domain and its subdomains. It must be called before the first navigation
// in the context, or early requests will not be intercepted.
func Install(ctx playwright.BrowserContext) error {
	return ctx.Route("**/*", func(route playwright.Route) {
		if Blocked(route.Request().URL()) {
			_ = route.Abort()
			return
		}
		_ = route.Continue()
	})
}

// Blocked reports whether the request URL targets the ad domain.
// A URL that cannot be parsed is allowed through rather than failing the test.
func Blocked(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == adHost || strings.HasSuffix(host, "."+adHost)
}
