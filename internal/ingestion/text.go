// Package ingestion loads transcripts and discovers audio inputs on disk.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanText normalizes a transcript: unified line endings, collapsed runs of
// whitespace within lines, at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, multiSpace.ReplaceAllString(strings.TrimSpace(line), " "))
	}

	result := strings.Join(cleaned, "\n")
	result = regexp.MustCompile(`\n\n\n+`).ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// LoadTranscript reads a transcript file and returns its cleaned text.
// HTML files are converted to plain text first; everything else is treated
// as plain text.
func LoadTranscript(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	if isHTMLFile(path) {
		text, err = ExtractTextFromHTML(text)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}

	return CleanText(text), nil
}

func isHTMLFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
