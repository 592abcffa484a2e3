package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/grammar-scorer/internal/analysis"
	"github.com/jonathan/grammar-scorer/internal/config"
	"github.com/jonathan/grammar-scorer/internal/db"
	"github.com/jonathan/grammar-scorer/internal/engine"
	"github.com/jonathan/grammar-scorer/internal/grammar"
	"github.com/jonathan/grammar-scorer/internal/scoring"
	"github.com/jonathan/grammar-scorer/internal/transcribe"
)

// resolveConfig merges an optional config file with defaults and validates
// the result. API key and database URL also resolve from the environment.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.GrammarServerURL == "" {
		cfg.GrammarServerURL = os.Getenv("GRAMMAR_SERVER_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildEngine wires the extractor, optional grammar checker, and optional
// transcriber from the resolved config. A missing grammar server degrades
// scoring; a missing API key only matters for audio inputs.
func buildEngine(ctx context.Context, cfg config.Config, needAudio bool) (*engine.Engine, func(), error) {
	var checker grammar.Checker
	if cfg.GrammarServerURL != "" {
		httpChecker, err := grammar.NewHTTPChecker(cfg.GrammarServerURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid grammar server URL: %w", err)
		}
		checker = httpChecker
	} else if cfg.Verbose {
		fmt.Println("No grammar server configured; grammar metrics will be degraded")
	}

	var transcriber transcribe.Transcriber
	cleanup := func() {}
	if needAudio {
		if cfg.APIKey != "" {
			gt, err := transcribe.NewGeminiTranscriber(ctx, cfg.APIKey, "")
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create transcriber: %w", err)
			}
			transcriber = gt
			cleanup = func() { _ = gt.Close() }
		} else {
			// Offline fallback: sidecar .txt transcripts next to the audio.
			transcriber = transcribe.NewSidecarTranscriber()
			if cfg.Verbose {
				fmt.Println("No API key configured; using sidecar transcripts")
			}
		}
	}

	extractor := analysis.NewExtractor(checker, cfg.Language, cfg.MinWordsForVocabConfidence)
	eng, err := engine.New(engine.Params{
		Extractor:   extractor,
		Transcriber: transcriber,
		Weights:     *cfg.Weights,
		Bands:       cfg.GradeBands,
		Options:     scoring.Options{PenaltyFactor: cfg.PenaltyFactor},
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return eng, cleanup, nil
}

// connectDB opens the results database when configured. Persistence is
// best-effort: failures warn and the run continues without it.
func connectDB(ctx context.Context, cfg config.Config) *db.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: database unavailable, results will not be persisted: %v\n", err)
		return nil
	}
	return store
}
