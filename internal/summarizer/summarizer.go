package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/political-party-kit/partykit/internal/llm"
	"github.com/political-party-kit/partykit/internal/meeting"
)

const chunkPrompt = "Du bist ein Assistent, der deutsche Sitzungsprotokolle erstellt. " +
	"Fasse den folgenden Text klar, präzise und sachlich zusammen. " +
	"Nenne relevante Themen, Argumente, Entscheidungen und Aufgaben mit Zuständigkeiten, wenn erkennbar."

const consolidatePrompt = "Erstelle ein vollständiges, gut strukturiertes deutsches Sitzungsprotokoll aus den Teilzusammenfassungen. " +
	"Gliedere in: 1) Teilnehmer 2) Agenda/Themenblöcke 3) Diskussion (kurz) 4) Beschlüsse 5) Aufgaben & Zuständigkeiten 6) Nächste Schritte. " +
	"Arbeite stichpunktorientiert, aber vollständig; vermeide irrelevante Details. " +
	"Nutze neutrale, präzise Sprache und konsistente Formatierung."

// SummarizeChunk summarizes a single transcript chunk.
func (s *implSummarizer) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: chunkPrompt},
		{Role: llm.RoleUser, Content: "Textauszug:\n\n" + chunk},
	}

	s.logger.Debug(ctx, "Summarizing chunk (%d chars)", len([]rune(chunk)))
	summary, err := s.complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("summarize chunk: %w", err)
	}
	return summary, nil
}

// Consolidate merges the partial summaries into the final minutes, prefixed
// with the session description.
func (s *implSummarizer) Consolidate(ctx context.Context, partials []string, meta meeting.Metadata) (string, error) {
	user := fmt.Sprintf("%s\n\nTeilzusammenfassungen:\n\n%s", meta.PromptHeader(), strings.Join(partials, "\n\n"))
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: consolidatePrompt},
		{Role: llm.RoleUser, Content: user},
	}

	s.logger.Debug(ctx, "Consolidating %d partial summaries", len(partials))
	minutes, err := s.complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("consolidate summaries: %w", err)
	}
	return minutes, nil
}

func (s *implSummarizer) complete(ctx context.Context, messages []llm.Message) (string, error) {
	text, err := s.completer.Complete(ctx, messages, llm.Params{Temperature: s.temperature})
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}
