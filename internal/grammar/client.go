// Package grammar provides the grammar-checking collaborator boundary.
// The engine treats the checker as optional: when it is absent or failing,
// extraction degrades instead of erroring.
package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// maxSuggestions limits how many replacement suggestions are kept per issue.
const maxSuggestions = 3

// Checker reports grammar issues found in a text.
type Checker interface {
	Check(ctx context.Context, text, language string) ([]types.GrammarIssue, error)
}

// HTTPChecker talks to a LanguageTool-compatible /v2/check endpoint.
type HTTPChecker struct {
	baseURL string
	client  *http.Client
}

// NewHTTPChecker creates a checker against the given server base URL
// (e.g. "http://localhost:8081" or "https://api.languagetool.org").
func NewHTTPChecker(baseURL string) (*HTTPChecker, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("grammar server URL is empty")
	}
	return &HTTPChecker{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// checkResponse mirrors the subset of the LanguageTool response we consume.
type checkResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Context struct {
			Text string `json:"text"`
		} `json:"context"`
		Rule struct {
			ID       string `json:"id"`
			Category struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"rule"`
	} `json:"matches"`
}

// Check posts the text to the grammar server and returns the issues found,
// in the order the server reported them.
func (c *HTTPChecker) Check(ctx context.Context, text, language string) ([]types.GrammarIssue, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build grammar check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grammar check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("grammar server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse grammar check response: %w", err)
	}

	issues := make([]types.GrammarIssue, 0, len(parsed.Matches))
	for _, match := range parsed.Matches {
		suggestions := make([]string, 0, maxSuggestions)
		for _, repl := range match.Replacements {
			if len(suggestions) == maxSuggestions {
				break
			}
			suggestions = append(suggestions, repl.Value)
		}
		issues = append(issues, types.GrammarIssue{
			Message:     match.Message,
			Offset:      match.Offset,
			Length:      match.Length,
			Category:    match.Rule.Category.Name,
			RuleID:      match.Rule.ID,
			Context:     match.Context.Text,
			Suggestions: suggestions,
		})
	}
	return issues, nil
}
