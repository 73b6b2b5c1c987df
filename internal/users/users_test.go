package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersDevPool(t *testing.T) {
	pool, err := Users("dev")
	require.NoError(t, err)
	require.NotEmpty(t, pool)

	for _, u := range pool {
		assert.NotEmpty(t, u.Key)
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Password)
	}
}

func TestUsersUnknownEnv(t *testing.T) {
	_, err := Users("nosuchenv")
	require.Error(t, err)
}

func TestByIndexWrapsAroundPool(t *testing.T) {
	pool, err := Users("dev")
	require.NoError(t, err)

	first, err := ByIndex("dev", 0)
	require.NoError(t, err)
	assert.Equal(t, pool[0], first)

	// Index past the pool size selects by modulo.
	wrapped, err := ByIndex("dev", len(pool))
	require.NoError(t, err)
	assert.Equal(t, pool[0], wrapped)

	// Same index always yields the same user.
	again, err := ByIndex("dev", len(pool))
	require.NoError(t, err)
	assert.Equal(t, wrapped, again)
}
