package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("Success_PreservesChain", func(t *testing.T) {
		err := Wrap(ErrInvalidInput, "prefix must be exactly 6 digits")

		assert.EqualError(t, err, "prefix must be exactly 6 digits: invalid input")
		assert.True(t, Is(err, ErrInvalidInput))
		assert.False(t, Is(err, ErrExhausted))
	})

	t.Run("Success_NilError", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
	})
}

type codedError struct{ code int }

func (c *codedError) Error() string { return "coded" }

func TestAs(t *testing.T) {
	wrapped := Wrap(&codedError{code: 7}, "context")

	var target *codedError
	assert.True(t, As(wrapped, &target))
	assert.Equal(t, 7, target.code)
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidInput, ErrExhausted, ErrTooManyRequests, New("other")}
	for i := range sentinels {
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotEqual(t, sentinels[i].Error(), sentinels[j].Error())
		}
	}
}
