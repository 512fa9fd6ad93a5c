package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 512, cfg.Height)
	assert.Equal(t, 0.98, cfg.DecayLearning)
	assert.Equal(t, 0.90, cfg.BaseBlend)
	assert.Equal(t, 0.10, cfg.NovelBlend)
	assert.Equal(t, 30.0, cfg.DiffThreshold)
	assert.Equal(t, 0.5, cfg.PredictionThreshold)
	assert.Equal(t, 0.05, cfg.CuriosityFactor)
	assert.Equal(t, 0.99, cfg.DecayFactor)
	assert.Equal(t, 100, cfg.MaxMemory)
	assert.Equal(t, 15.0, cfg.SimilarityThreshold)
	assert.Equal(t, 50.0, cfg.SimilarityScale)
	assert.True(t, cfg.ClampOutput)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("SPACE_WIDTH", "64")
	t.Setenv("SPACE_HEIGHT", "48")
	t.Setenv("DECAY_LEARNING", "0.95")
	t.Setenv("MAX_MEMORY", "10")
	t.Setenv("CLAMP_OUTPUT", "false")

	cfg, err := core.LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, 0.95, cfg.DecayLearning)
	assert.Equal(t, 10, cfg.MaxMemory)
	assert.False(t, cfg.ClampOutput)

	// Unset tunables keep their defaults.
	assert.Equal(t, 0.99, cfg.DecayFactor)
}

func TestLoadConfigFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"width": 32, "height": 32, "max_memory": 5}`), 0o644))

	cfg, err := core.LoadConfigFromJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 5, cfg.MaxMemory)
	assert.Equal(t, 0.98, cfg.DecayLearning, "absent fields keep defaults")

	_, err = core.LoadConfigFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	mutations := map[string]func(*core.Config){
		"zero width":          func(c *core.Config) { c.Width = 0 },
		"negative height":     func(c *core.Config) { c.Height = -1 },
		"decay learning 0":    func(c *core.Config) { c.DecayLearning = 0 },
		"decay learning 1":    func(c *core.Config) { c.DecayLearning = 1 },
		"decay factor 0":      func(c *core.Config) { c.DecayFactor = 0 },
		"decay factor > 1":    func(c *core.Config) { c.DecayFactor = 1.5 },
		"base blend > 1":      func(c *core.Config) { c.BaseBlend = 1.2 },
		"negative blend":      func(c *core.Config) { c.NovelBlend = -0.1 },
		"zero max memory":     func(c *core.Config) { c.MaxMemory = 0 },
		"zero sim scale":      func(c *core.Config) { c.SimilarityScale = 0 },
		"negative threshold":  func(c *core.Config) { c.DiffThreshold = -1 },
		"negative prediction": func(c *core.Config) { c.PredictionThreshold = -1 },
	}
	for name, mutate := range mutations {
		cfg := core.DefaultConfig()
		mutate(cfg)
		err := cfg.Validate()
		require.Error(t, err, name)
		assert.ErrorIs(t, err, core.ErrInvalidConfig, name)
	}
}

func TestPipelineErrorWrapping(t *testing.T) {
	err := core.NewPipelineError("Step", core.ErrDimensionMismatch)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	assert.Equal(t, "learningspace: Step: frame dimensions do not match space", err.Error())

	assert.Nil(t, core.NewPipelineError("Step", nil))
}
