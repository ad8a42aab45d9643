package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type analyzeConfig struct {
	referenceSize int64
	parallel      bool
	calls         []string
}

func withReferenceSize(n int64) Option[*analyzeConfig] {
	return New(func(c *analyzeConfig) error {
		if n < 0 {
			return errors.New("reference size cannot be negative")
		}
		c.referenceSize = n
		c.calls = append(c.calls, "referenceSize")

		return nil
	})
}

func withParallel(enabled bool) Option[*analyzeConfig] {
	return NoError(func(c *analyzeConfig) {
		c.parallel = enabled
		c.calls = append(c.calls, "parallel")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &analyzeConfig{}
		err := Apply(cfg, withParallel(true), withReferenceSize(1234))

		require.NoError(t, err)
		require.True(t, cfg.parallel)
		require.Equal(t, int64(1234), cfg.referenceSize)
		require.Equal(t, []string{"parallel", "referenceSize"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &analyzeConfig{}
		err := Apply(cfg, withReferenceSize(5), withReferenceSize(-1), withParallel(true))

		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
		require.Equal(t, int64(5), cfg.referenceSize)
		require.False(t, cfg.parallel)
	})

	t.Run("no options leaves target unchanged", func(t *testing.T) {
		cfg := &analyzeConfig{referenceSize: 9}
		require.NoError(t, Apply(cfg))
		require.Equal(t, int64(9), cfg.referenceSize)
		require.Empty(t, cfg.calls)
	})
}

func TestOptionWithValueTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
