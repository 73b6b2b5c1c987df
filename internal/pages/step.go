package pages

import "testing"

// logStep records a named step in the test log so failures can be traced to
// the page-object action that raised them.
func logStep(t *testing.T, name string) {
	t.Helper()
	t.Logf("step: %s", name)
}
