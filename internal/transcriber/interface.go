package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcriber.go -package=mocks github.com/political-party-kit/partykit/internal/transcriber Transcriber

// ErrAudioNotFound is returned when the recording does not exist.
var ErrAudioNotFound = errors.New("audio file not found")

// Transcriber converts an audio recording into text.
type Transcriber interface {
	// Transcribe returns the trimmed transcript of the file at audioPath.
	// language is a hint such as "de".
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}

func checkAudio(audioPath string) error {
	info, err := os.Stat(audioPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
		}
		return fmt.Errorf("stat audio file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrAudioNotFound, audioPath)
	}
	return nil
}
