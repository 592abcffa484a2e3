package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/grammar-scorer/internal/engine"
	"github.com/jonathan/grammar-scorer/internal/feedback"
	"github.com/jonathan/grammar-scorer/internal/ingestion"
	"github.com/jonathan/grammar-scorer/internal/observability"
	"github.com/jonathan/grammar-scorer/internal/output"
	"github.com/jonathan/grammar-scorer/internal/schemas"
	"github.com/jonathan/grammar-scorer/internal/transcribe"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single audio or transcript file",
	Long:  "Scores one input. Audio files (.wav, .mp3, .flac, .ogg, .m4a, .aac) are transcribed first; .txt and .html files are scored directly.",
	RunE:  runScore,
}

var (
	scoreInput   string
	scoreConfig  string
	scoreOutput  string
	scoreReport  bool
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Path to audio or transcript file (required)")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreResult JSON file")
	scoreCmd.Flags().BoolVar(&scoreReport, "report", false, "Also write a plain-text feedback report")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed metric information")

	if err := scoreCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(scoreConfig)
	if err != nil {
		return err
	}
	if scoreVerbose {
		cfg.Verbose = true
	}

	isAudio := transcribe.IsAudioFile(scoreInput)
	eng, cleanup, err := buildEngine(ctx, cfg, isAudio)
	if err != nil {
		return err
	}
	defer cleanup()

	var scored *engine.Scored
	if isAudio {
		scored, err = eng.ScoreAudio(ctx, scoreInput)
	} else {
		var text string
		text, err = ingestion.LoadTranscript(scoreInput)
		if err != nil {
			return fmt.Errorf("failed to load transcript: %w", err)
		}
		scored, err = eng.ScoreText(ctx, text)
	}
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	identifier := filepath.Base(scoreInput)
	report := feedback.Generate(scored.Bundle, scored.Result)
	fmt.Print(feedback.Render(report))

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMetricBundle(scored.Bundle)
		printer.PrintScoreResult(scored.Result)
	}

	outPath := scoreOutput
	if outPath == "" && cfg.SaveReports {
		outPath = filepath.Join(cfg.ResultsDir, fmt.Sprintf("score_%s.json", output.Timestamp()))
	}
	if outPath != "" {
		if err := output.SaveJSON(outPath, scored.Result); err != nil {
			return err
		}

		// Output validation is a safety check, not a requirement.
		schemaPath := schemas.ResolveSchemaPath("schemas/score_result.schema.json")
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
			}
		}
		fmt.Printf("Saved result to %s\n", outPath)
	}

	if scoreReport || cfg.SaveReports {
		reportPath := filepath.Join(cfg.ResultsDir, fmt.Sprintf("report_%s.txt", output.Timestamp()))
		if err := output.WriteReport(reportPath, identifier, scored.Text, scored.Bundle, scored.Result); err != nil {
			return err
		}
		fmt.Printf("Saved report to %s\n", reportPath)
	}

	if store := connectDB(ctx, cfg); store != nil {
		defer store.Close()
		if runID, err := store.CreateRun(ctx, "score"); err == nil {
			if err := store.SaveResult(ctx, runID, identifier, scored.Result, scored.Bundle); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to persist result: %v\n", err)
			}
			if err := store.CompleteRun(ctx, runID, "completed"); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to complete run: %v\n", err)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Warning: failed to create run: %v\n", err)
		}
	}

	return nil
}
