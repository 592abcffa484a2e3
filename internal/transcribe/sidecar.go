package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SidecarTranscriber resolves transcripts from .txt files stored next to the
// audio. It exists for offline runs and tests where no speech API is
// reachable: sample.wav resolves to sample.txt in the same directory.
type SidecarTranscriber struct{}

// NewSidecarTranscriber creates an offline transcriber.
func NewSidecarTranscriber() *SidecarTranscriber {
	return &SidecarTranscriber{}
}

// Transcribe loads the sidecar transcript for the audio file.
func (t *SidecarTranscriber) Transcribe(_ context.Context, audioPath string) (*Result, error) {
	if !IsAudioFile(audioPath) {
		return nil, &TranscriptionError{
			Path: audioPath,
			Err:  fmt.Errorf("unsupported audio format %q", filepath.Ext(audioPath)),
		}
	}

	ext := filepath.Ext(audioPath)
	sidecar := strings.TrimSuffix(audioPath, ext) + ".txt"
	data, err := os.ReadFile(sidecar)
	if err != nil {
		return nil, &TranscriptionError{
			Path: audioPath,
			Err:  fmt.Errorf("no sidecar transcript: %w", err),
		}
	}

	text := strings.TrimSpace(string(data))
	return &Result{
		Text:      text,
		WordCount: countWords(text),
		FileName:  filepath.Base(audioPath),
	}, nil
}

// Close is a no-op; the sidecar transcriber holds no resources.
func (t *SidecarTranscriber) Close() error {
	return nil
}
