package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// WriteBatchCSV exports per-item batch outcomes as CSV. Failed items appear
// with empty score columns and their failure message, so the export always
// has one row per input.
func WriteBatchCSV(path string, batch *types.BatchResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"file_name", "score", "grade", "error_count", "word_count", "status", "message"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range batch.Items {
		var row []string
		if item.Failure != nil {
			row = []string{item.Identifier, "", "", "", "", "failed", item.Failure.Message}
		} else {
			row = []string{
				item.Identifier,
				strconv.FormatFloat(item.Result.Score, 'f', 2, 64),
				string(item.Result.Grade),
				strconv.Itoa(item.Result.ErrorCount),
				strconv.Itoa(item.Result.WordCount),
				"ok",
				"",
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
