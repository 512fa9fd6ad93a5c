package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contains the complete tuning for a pipeline.
//
// All values are fixed at process start; there is no runtime
// reconfiguration. Zero-value fields are filled from the defaults by
// Validate-time callers using DefaultConfig as the base.
//
// Example:
//
//	cfg := core.DefaultConfig()
//	cfg.Width, cfg.Height = 64, 64
//	cfg.MaxMemory = 20
//	pipeline, err := core.NewPipeline(cfg)
type Config struct {
	// Width and Height are the process-wide frame dimensions. Every
	// frame, the learning space, and every store entry share them.
	Width  int `json:"width"`
	Height int `json:"height"`

	// DecayLearning fades the learning space each cycle (DECAY_LEARNING).
	// In (0,1); the effective memory horizon is ~1/(1-DecayLearning) frames.
	DecayLearning float64 `json:"decay_learning"`

	// BaseBlend is the base weight for the existing learning space
	// (BASE_BLEND).
	BaseBlend float64 `json:"base_blend"`

	// NovelBlend is the additional new-frame weight for pixels deemed
	// novel (NOVEL_BLEND).
	NovelBlend float64 `json:"novel_blend"`

	// DiffThreshold is the per-pixel difference (0-255 scale) above which
	// a change counts as novel (DIFF_THRESHOLD).
	DiffThreshold float64 `json:"diff_threshold"`

	// PredictionThreshold gates the curiosity reward
	// (PREDICTION_THRESHOLD): novelty at or below it rewards exactly 0.
	PredictionThreshold float64 `json:"prediction_threshold"`

	// CuriosityFactor scales novelty into reward (CURIOSITY_FACTOR).
	CuriosityFactor float64 `json:"curiosity_factor"`

	// DecayFactor fades stored memories each cycle (DECAY_FACTOR).
	DecayFactor float64 `json:"decay_factor"`

	// MaxMemory bounds the memory store's entry count (MAX_MEMORY).
	MaxMemory int `json:"max_memory"`

	// SimilarityThreshold is the maximum signature distance for a memory
	// to take part in recall (SIMILARITY_THRESHOLD).
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// SimilarityScale converts signature distances to recall weights via
	// exp(-d/scale) (SIMILARITY_SCALE).
	SimilarityScale float64 `json:"similarity_scale"`

	// ClampOutput limits learning-space values to [0,255] after blending.
	// Disable to preserve the unclamped blend behaviour.
	ClampOutput bool `json:"clamp_output"`
}

// DefaultConfig returns the configuration matching the reference tuning:
// 512x512 space, 0.98 learning decay, 0.90/0.10 blend, threshold 30,
// prediction threshold 0.5, curiosity factor 0.05, memory decay 0.99,
// 100 memories, similarity threshold 15 at scale 50, clamping on.
func DefaultConfig() *Config {
	return &Config{
		Width:               512,
		Height:              512,
		DecayLearning:       0.98,
		BaseBlend:           0.90,
		NovelBlend:          0.10,
		DiffThreshold:       30,
		PredictionThreshold: 0.5,
		CuriosityFactor:     0.05,
		DecayFactor:         0.99,
		MaxMemory:           100,
		SimilarityThreshold: 15,
		SimilarityScale:     50.0,
		ClampOutput:         true,
	}
}

// LoadConfigFromEnv loads configuration from environment variables.
//
// The function:
//  1. Searches for .env or .env.example files (up to 5 directory levels up)
//  2. Loads environment variables from the found file
//  3. Overrides DefaultConfig with any tunables that are set
//
// Supported environment variables:
//   - SPACE_WIDTH, SPACE_HEIGHT
//   - DECAY_LEARNING, BASE_BLEND, NOVEL_BLEND, DIFF_THRESHOLD
//   - PREDICTION_THRESHOLD, CURIOSITY_FACTOR
//   - DECAY_FACTOR, MAX_MEMORY
//   - SIMILARITY_THRESHOLD, SIMILARITY_SCALE
//   - CLAMP_OUTPUT ("true"/"false")
//
// Returns a Config instance; unset variables keep their defaults.
func LoadConfigFromEnv() (*Config, error) {
	if envPath, found := FindEnvFile(); found {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()
	cfg.Width = getEnvInt("SPACE_WIDTH", cfg.Width)
	cfg.Height = getEnvInt("SPACE_HEIGHT", cfg.Height)
	cfg.DecayLearning = getEnvFloat("DECAY_LEARNING", cfg.DecayLearning)
	cfg.BaseBlend = getEnvFloat("BASE_BLEND", cfg.BaseBlend)
	cfg.NovelBlend = getEnvFloat("NOVEL_BLEND", cfg.NovelBlend)
	cfg.DiffThreshold = getEnvFloat("DIFF_THRESHOLD", cfg.DiffThreshold)
	cfg.PredictionThreshold = getEnvFloat("PREDICTION_THRESHOLD", cfg.PredictionThreshold)
	cfg.CuriosityFactor = getEnvFloat("CURIOSITY_FACTOR", cfg.CuriosityFactor)
	cfg.DecayFactor = getEnvFloat("DECAY_FACTOR", cfg.DecayFactor)
	cfg.MaxMemory = getEnvInt("MAX_MEMORY", cfg.MaxMemory)
	cfg.SimilarityThreshold = getEnvFloat("SIMILARITY_THRESHOLD", cfg.SimilarityThreshold)
	cfg.SimilarityScale = getEnvFloat("SIMILARITY_SCALE", cfg.SimilarityScale)
	if v := os.Getenv("CLAMP_OUTPUT"); v != "" {
		cfg.ClampOutput = v == "true" || v == "1"
	}

	return cfg, nil
}

// LoadConfigFromEnvFile loads configuration from a specific .env file.
//
// Parameters:
//   - envPath: Path to the .env file
//
// Returns a Config instance, or an error if loading fails.
func LoadConfigFromEnvFile(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, NewPipelineError("LoadConfigFromEnvFile", err)
	}
	return LoadConfigFromEnv()
}

// LoadConfigFromJSON loads configuration from a JSON file.
//
// Fields absent from the file keep their defaults.
func LoadConfigFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewPipelineError("LoadConfigFromJSON", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, NewPipelineError("LoadConfigFromJSON", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
//
// Checks:
//   - dimensions are positive
//   - both decay factors are in (0,1]
//   - blend weights and thresholds are non-negative
//   - MaxMemory is positive
//   - SimilarityScale is positive
//
// Returns an error wrapping ErrInvalidConfig if any check fails.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return NewPipelineError("Validate", ErrInvalidConfig)
	case c.DecayLearning <= 0 || c.DecayLearning >= 1:
		return NewPipelineError("Validate", ErrInvalidConfig)
	case c.DecayFactor <= 0 || c.DecayFactor > 1:
		return NewPipelineError("Validate", ErrInvalidConfig)
	case c.BaseBlend < 0 || c.BaseBlend > 1 || c.NovelBlend < 0:
		return NewPipelineError("Validate", ErrInvalidConfig)
	case c.DiffThreshold < 0 || c.PredictionThreshold < 0 || c.CuriosityFactor < 0:
		return NewPipelineError("Validate", ErrInvalidConfig)
	case c.MaxMemory <= 0:
		return NewPipelineError("Validate", ErrInvalidConfig)
	case c.SimilarityThreshold < 0 || c.SimilarityScale <= 0:
		return NewPipelineError("Validate", ErrInvalidConfig)
	}
	return nil
}

// getEnvFloat gets a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

// FindEnvFile searches for .env or .env.example files.
//
// The search:
//  1. Checks the current directory
//  2. Searches up to 5 directory levels up
//  3. Returns the first .env or .env.example file found
//
// Returns:
//   - path: Path to the found file (empty if not found)
//   - found: True if a file was found, false otherwise
func FindEnvFile() (string, bool) {
	if _, err := os.Stat(".env"); err == nil {
		return ".env", true
	}
	if _, err := os.Stat(".env.example"); err == nil {
		return ".env.example", true
	}

	dir, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		envExamplePath := filepath.Join(dir, ".env.example")

		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		if _, err := os.Stat(envExamplePath); err == nil {
			return envExamplePath, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}
