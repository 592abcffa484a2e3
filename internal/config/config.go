// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/grammar-scorer/internal/scoring"
	"github.com/jonathan/grammar-scorer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to defaults.
type Config struct {
	// Scoring
	Language      string         `json:"language,omitempty" validate:"omitempty,min=2"`
	PenaltyFactor float64        `json:"penalty_factor,omitempty" validate:"gte=0"`
	Weights       *types.Weights `json:"weights,omitempty"`
	// MinWordsForVocabConfidence is the word count below which the
	// vocabulary diversity ratio is flagged as low-sample.
	MinWordsForVocabConfidence int `json:"min_words_for_vocab_confidence,omitempty" validate:"gte=0"`
	GradeBands                 []types.GradeBand `json:"grade_bands,omitempty"`

	// Collaborators
	APIKey           string `json:"api_key,omitempty"`
	GrammarServerURL string `json:"grammar_server_url,omitempty" validate:"omitempty,url"`
	DatabaseURL      string `json:"database_url,omitempty"`

	// Behavior
	Workers     int    `json:"workers,omitempty" validate:"gte=0"`
	ResultsDir  string `json:"results_dir,omitempty"`
	SaveReports bool   `json:"save_reports,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
}

// DefaultConfig returns the configuration used when no file or flags
// override anything.
func DefaultConfig() Config {
	weights := types.DefaultWeights()
	return Config{
		Language:                   "en-US",
		PenaltyFactor:              scoring.DefaultPenaltyFactor,
		Weights:                    &weights,
		MinWordsForVocabConfidence: 10,
		GradeBands:                 scoring.DefaultGradeBands(),
		Workers:                    4,
		ResultsDir:                 "results",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks that the configuration has valid values. Weight and band
// checks delegate to the scoring package so the CLI and the library reject
// the same inputs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Weights != nil {
		if c.Weights.GrammarErrors < 0 || c.Weights.SentenceStructure < 0 ||
			c.Weights.VocabularyRichness < 0 || c.Weights.Readability < 0 {
			return &scoring.InvalidWeightsError{Message: "weights must be non-negative"}
		}
		if c.Weights.Sum() == 0 {
			return &scoring.InvalidWeightsError{Message: "at least one weight must be positive"}
		}
	}

	if len(c.GradeBands) > 0 {
		if err := scoring.ValidateBands(c.GradeBands); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.PenaltyFactor == 0 {
		result.PenaltyFactor = defaults.PenaltyFactor
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.MinWordsForVocabConfidence == 0 {
		result.MinWordsForVocabConfidence = defaults.MinWordsForVocabConfidence
	}
	if len(result.GradeBands) == 0 {
		result.GradeBands = defaults.GradeBands
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GrammarServerURL == "" {
		result.GrammarServerURL = defaults.GrammarServerURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.ResultsDir == "" {
		result.ResultsDir = defaults.ResultsDir
	}

	return result
}
