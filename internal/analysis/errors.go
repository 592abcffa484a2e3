// Package analysis extracts grammar, structure, vocabulary, and readability
// metrics from transcribed text.
package analysis

// EmptyInputError indicates the text to analyze was empty or whitespace-only.
// It is raised before any collaborator is invoked.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	if e.Message != "" {
		return "empty input: " + e.Message
	}
	return "empty input: no text provided"
}
