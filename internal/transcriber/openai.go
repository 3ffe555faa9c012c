package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAI transcribes through the Whisper audio transcription endpoint.
type OpenAI struct {
	Model  string
	client openai.Client
}

// NewOpenAI creates a Whisper-backed Transcriber. baseURL is the server root
// without the /v1 suffix.
func NewOpenAI(baseURL, apiKey, model string, opts ...option.RequestOption) *OpenAI {
	defaults := []option.RequestOption{
		option.WithBaseURL(strings.TrimRight(baseURL, "/") + "/v1"),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	return &OpenAI{
		Model:  model,
		client: openai.NewClient(append(defaults, opts...)...),
	}
}

func (t *OpenAI) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	if err := checkAudio(audioPath); err != nil {
		return "", err
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:           file,
		Model:          t.Model,
		ResponseFormat: openai.AudioResponseFormatText,
	}
	if language != "" {
		params.Language = openai.String(language)
	}

	// response_format=text answers with the bare transcript
	var text string
	if _, err := t.client.Audio.Transcriptions.New(ctx, params, option.WithResponseBodyInto(&text)); err != nil {
		return "", fmt.Errorf("calling transcription API: %w", err)
	}

	return strings.TrimSpace(text), nil
}
