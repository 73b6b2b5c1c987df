package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedForIsStablePerTest(t *testing.T) {
	assert.Equal(t, seedFor(t), seedFor(t))
}

func TestSeedForDiffersAcrossTests(t *testing.T) {
	var other uint64
	t.Run("inner", func(t *testing.T) {
		other = seedFor(t)
	})
	assert.NotEqual(t, seedFor(t), other)
}

func TestRandForIsDeterministic(t *testing.T) {
	a := randFor(t)
	b := randFor(t)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}
