package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultTranscriptionModel = "gemini-2.0-flash"

const transcriptionPrompt = `Transcribe the spoken audio verbatim. Return only the transcript text,
with standard punctuation and capitalization. Do not add commentary,
speaker labels, or timestamps.`

// GeminiTranscriber transcribes audio through the Gemini API.
type GeminiTranscriber struct {
	client *genai.Client
	model  string
}

// NewGeminiTranscriber creates a transcriber backed by Gemini. An empty model
// selects the default transcription model.
func NewGeminiTranscriber(ctx context.Context, apiKey, model string) (*GeminiTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultTranscriptionModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranscriber{client: client, model: model}, nil
}

// Transcribe reads the audio file and asks the model for a verbatim
// transcript.
func (t *GeminiTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	mime, ok := mimeTypeFor(audioPath)
	if !ok {
		return nil, &TranscriptionError{
			Path: audioPath,
			Err:  fmt.Errorf("unsupported audio format %q", filepath.Ext(audioPath)),
		}
	}

	data, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, &TranscriptionError{Path: audioPath, Err: err}
	}

	model := t.client.GenerativeModel(t.model)
	model.SetTemperature(0) // transcripts should be reproducible

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mime, Data: data},
		genai.Text(transcriptionPrompt),
	)
	if err != nil {
		return nil, &TranscriptionError{Path: audioPath, Err: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, &TranscriptionError{Path: audioPath, Err: err}
	}

	text = strings.TrimSpace(text)
	return &Result{
		Text:      text,
		WordCount: countWords(text),
		FileName:  filepath.Base(audioPath),
	}, nil
}

// Close releases the underlying API client.
func (t *GeminiTranscriber) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
