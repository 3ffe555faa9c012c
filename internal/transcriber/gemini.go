package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

const transcribePrompt = `Transkribiere die folgende Audioaufnahme einer Sitzung wortgetreu in der Sprache %q.
Gib ausschließlich den transkribierten Text zurück, ohne Kommentare oder Zusammenfassung.
Beginne bei jedem Sprecherwechsel eine neue Zeile.`

var audioMimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".wav":  "audio/wav",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// Gemini transcribes by sending the recording inline to a Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed Transcriber.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (t *Gemini) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	if err := checkAudio(audioPath); err != nil {
		return "", err
	}

	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("reading audio file: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(transcribePrompt, language)),
			genai.NewPartFromBytes(data, mimeType(audioPath)),
		}, genai.RoleUser),
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}
	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return strings.TrimSpace(text.String()), nil
}

func mimeType(path string) string {
	if mt, ok := audioMimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "application/octet-stream"
}

// IsAudioFile reports whether path has a supported recording extension.
func IsAudioFile(path string) bool {
	_, ok := audioMimeTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}
