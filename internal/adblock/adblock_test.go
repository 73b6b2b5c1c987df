package adblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocked(t *testing.T) {
	assert.True(t, Blocked("https://googlesyndication.com/pagead/js"))
	assert.True(t, Blocked("https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js"))
	assert.False(t, Blocked("https://automationexercise.com/products"))
	assert.False(t, Blocked("https://notgooglesyndication.com/x"))
}

func TestBlockedMalformedURLContinues(t *testing.T) {
	assert.False(t, Blocked("http://%zz"))
	assert.False(t, Blocked(""))
}
