package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerifier(t *testing.T) {
	v, err := NewStaticVerifier("admin", "1234")
	require.NoError(t, err)

	assert.True(t, v.Verify("admin", "1234"))
	assert.False(t, v.Verify("admin", "wrong"))
	assert.False(t, v.Verify("someone", "1234"))
	assert.False(t, v.Verify("", ""))
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()

	t.Run("create and read back", func(t *testing.T) {
		token := store.Create("admin")
		require.NotEmpty(t, token)

		sess, ok := store.Get(token)
		require.True(t, ok)
		assert.Equal(t, "admin", sess.Username)
		assert.False(t, sess.CreatedAt.IsZero())
	})

	t.Run("tokens are unique per login", func(t *testing.T) {
		assert.NotEqual(t, store.Create("admin"), store.Create("admin"))
	})

	t.Run("destroy invalidates the token", func(t *testing.T) {
		token := store.Create("admin")
		store.Destroy(token)

		_, ok := store.Get(token)
		assert.False(t, ok)
	})

	t.Run("unknown token misses", func(t *testing.T) {
		_, ok := store.Get("not-a-token")
		assert.False(t, ok)
	})
}
