package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("keeps cause reachable", func(t *testing.T) {
		cause := errors.New("db down")
		err := Wrap(cause, CodeInternal, "failed to load form")
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "failed to load form: db down", err.Error())
		assert.True(t, HasCode(err, CodeInternal))
	})
}

func TestCodeOf(t *testing.T) {
	t.Run("uncoded errors are internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})

	t.Run("finds code through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(CodeNotFound, "form not found"))
		assert.Equal(t, CodeNotFound, CodeOf(err))
		assert.True(t, Is(err, CodeNotFound))
		assert.False(t, Is(err, CodeForbidden))
	})
}
