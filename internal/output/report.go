package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/grammar-scorer/internal/feedback"
	"github.com/jonathan/grammar-scorer/internal/types"
)

const reportDivider = "=================================================="

// WriteReport writes a plain-text report for one scored item: header,
// transcript, then the rendered feedback.
func WriteReport(path, identifier, text string, bundle *types.MetricBundle, result *types.ScoreResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(reportDivider + "\n")
	sb.WriteString("GRAMMAR SCORING REPORT\n")
	sb.WriteString(reportDivider + "\n\n")
	sb.WriteString(fmt.Sprintf("File: %s\n\n", identifier))
	sb.WriteString("Transcription:\n")
	sb.WriteString(text + "\n\n")
	sb.WriteString(reportDivider + "\n\n")
	sb.WriteString(feedback.Render(feedback.Generate(bundle, result)))

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
