// Package transcribe converts spoken audio files into text for scoring.
package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Result is the outcome of transcribing one audio file.
type Result struct {
	Text      string `json:"text"`
	Language  string `json:"language,omitempty"`
	WordCount int    `json:"word_count"`
	FileName  string `json:"file_name"`
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
	Close() error
}

// TranscriptionError wraps a failure while converting audio to text. Callers
// use it to tag batch failures with the stage they occurred in.
type TranscriptionError struct {
	Path string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed for %s: %v", e.Path, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// audioMIMETypes maps supported audio extensions to their MIME types.
var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
}

// SupportedExtensions returns the audio file extensions the transcribers
// accept, sorted for stable listings.
func SupportedExtensions() []string {
	return []string{".aac", ".flac", ".m4a", ".mp3", ".ogg", ".wav"}
}

// IsAudioFile reports whether the path has a supported audio extension.
func IsAudioFile(path string) bool {
	_, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

func mimeTypeFor(path string) (string, bool) {
	mime, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]
	return mime, ok
}

// countWords counts whitespace-separated tokens in the transcript.
func countWords(text string) int {
	return len(strings.Fields(text))
}
