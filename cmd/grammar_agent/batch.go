package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/grammar-scorer/internal/engine"
	"github.com/jonathan/grammar-scorer/internal/ingestion"
	"github.com/jonathan/grammar-scorer/internal/observability"
	"github.com/jonathan/grammar-scorer/internal/output"
	"github.com/jonathan/grammar-scorer/internal/schemas"
	"github.com/jonathan/grammar-scorer/internal/transcribe"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every audio and transcript file in a directory",
	Long:  "Scores all supported files in a directory concurrently. Per-item failures are isolated: one bad file never aborts the rest of the batch.",
	RunE:  runBatch,
}

var (
	batchDir     string
	batchConfig  string
	batchOutput  string
	batchCSV     string
	batchWorkers int
	batchVerbose bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing audio/transcript files (required)")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output BatchResult JSON file")
	batchCmd.Flags().StringVar(&batchCSV, "csv", "", "Path to output CSV summary file")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Number of concurrent workers (0 uses config default)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed batch information")

	if err := batchCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(batchConfig)
	if err != nil {
		return err
	}
	if batchVerbose {
		cfg.Verbose = true
	}
	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}

	exts := append(transcribe.SupportedExtensions(), ".txt", ".html", ".htm")
	paths, err := ingestion.ListFiles(batchDir, exts)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported files found in %s", batchDir)
	}

	needAudio := false
	for _, path := range paths {
		if transcribe.IsAudioFile(path) {
			needAudio = true
			break
		}
	}

	eng, cleanup, err := buildEngine(ctx, cfg, needAudio)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Scoring %d file(s) with %d worker(s)...\n", len(paths), workers)
	batch, err := eng.ScoreBatch(ctx, engine.InputsFromPaths(paths), workers)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	output.RenderBatchTable(os.Stdout, batch)
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintFailures(batch.Items)
		printer.PrintBatchSummary(&batch.Summary)
	}

	outPath := batchOutput
	if outPath == "" && cfg.SaveReports {
		outPath = filepath.Join(cfg.ResultsDir, fmt.Sprintf("batch_%s.json", output.Timestamp()))
	}
	if outPath != "" {
		if err := output.SaveJSON(outPath, batch); err != nil {
			return err
		}

		// Output validation is a safety check, not a requirement.
		schemaPath := schemas.ResolveSchemaPath("schemas/batch_result.schema.json")
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
			}
		}
		fmt.Printf("Saved batch result to %s\n", outPath)
	}

	if batchCSV != "" {
		if err := output.WriteBatchCSV(batchCSV, batch); err != nil {
			return err
		}
		fmt.Printf("Saved CSV summary to %s\n", batchCSV)
	}

	if store := connectDB(ctx, cfg); store != nil {
		defer store.Close()
		runID, err := store.CreateRun(ctx, "batch")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create run: %v\n", err)
		} else {
			for _, item := range batch.Items {
				if item.Failure != nil {
					if err := store.SaveFailure(ctx, runID, item.Failure); err != nil {
						fmt.Fprintf(os.Stderr, "Warning: failed to persist failure: %v\n", err)
					}
					continue
				}
				if err := store.SaveResult(ctx, runID, item.Identifier, item.Result, item.Bundle); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to persist result: %v\n", err)
				}
			}
			if err := store.CompleteRun(ctx, runID, "completed"); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to complete run: %v\n", err)
			}
		}
	}

	return nil
}
