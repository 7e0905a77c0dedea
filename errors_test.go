package falsify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/falsify"
)

func TestRejectionLimitError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := &falsify.RejectionLimitError{Attempts: 64, Iteration: 3, Depth: 1, Limit: 64}
		assert.Equal(t, "falsify: strategy rejected value after 64 attempts (iteration 3, depth 1; limit 64)", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := &falsify.RejectionLimitError{Attempts: 10, Limit: 10}
		assert.True(t, errors.Is(err, falsify.ErrRejectionLimit))
		assert.False(t, errors.Is(err, falsify.ErrInvalidConfig))
	})

	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("wrapper: %w", &falsify.RejectionLimitError{Attempts: 1, Limit: 1})
		assert.True(t, errors.Is(err, falsify.ErrRejectionLimit))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := &falsify.ConfigError{Field: "cases", Reason: "must be at least 1"}
		assert.Equal(t, "falsify: invalid configuration: cases must be at least 1", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := &falsify.ConfigError{Field: "seed", Reason: "bad"}
		assert.True(t, errors.Is(err, falsify.ErrInvalidConfig))
		assert.False(t, errors.Is(err, falsify.ErrRejectionLimit))
	})

	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("wrapper: %w", &falsify.ConfigError{Field: "cases", Reason: "bad"})
		assert.True(t, errors.Is(err, falsify.ErrInvalidConfig))
	})
}
