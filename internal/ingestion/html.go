package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed from HTML before text extraction. Exported
// transcripts from recording tools tend to wrap the text in chrome that
// should not be scored.
var noiseSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer", "aside",
}

// ExtractTextFromHTML strips markup from an HTML transcript and returns the
// readable text. Block elements are separated by newlines so sentence
// splitting still works downstream.
func ExtractTextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	var sb strings.Builder
	doc.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, td").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	// Pages without block structure still need their text.
	if sb.Len() == 0 {
		return strings.TrimSpace(doc.Find("body").Text()), nil
	}

	return strings.TrimSpace(sb.String()), nil
}
