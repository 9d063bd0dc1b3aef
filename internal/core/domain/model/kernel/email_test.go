package kernel_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		email, err := kernel.NewEmail("  John.Doe@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", email.Value())
		require.NoError(t, email.Validate())
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"", "john", "john@", "john@example", "jo hn@example.com", "@example.com"} {
			_, err := kernel.NewEmail(raw)
			require.ErrorIs(t, err, kernel.ErrInvalidEmail, raw)
		}
	})

	t.Run("equal after normalization", func(t *testing.T) {
		a, _ := kernel.NewEmail("A@B.com")
		b, _ := kernel.NewEmail("a@b.com")

		assert.True(t, a.IsEqual(b))
	})
}
