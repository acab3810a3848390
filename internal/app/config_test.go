package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("manifest path is required", func(t *testing.T) {
		_, err := NewConfig(Config{})
		require.Error(t, err)
	})

	t.Run("output defaults to json", func(t *testing.T) {
		cfg, err := NewConfig(Config{ManifestPath: "vars.hcl"})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output)
	})

	t.Run("env output accepted", func(t *testing.T) {
		cfg, err := NewConfig(Config{ManifestPath: "vars.hcl", Output: "env"})
		require.NoError(t, err)
		assert.Equal(t, "env", cfg.Output)
	})

	t.Run("unknown output rejected", func(t *testing.T) {
		_, err := NewConfig(Config{ManifestPath: "vars.hcl", Output: "yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}
