package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/political-party-kit/partykit/internal/llm"
	"github.com/political-party-kit/partykit/internal/llm/mocks"
	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/meeting"
)

func TestNewDefaultsTemperature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := New(mocks.NewMockCompleter(ctrl), logger.Nop(), 0).(*implSummarizer)
	if s.temperature != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", s.temperature, DefaultTemperature)
	}
}

func TestSummarizeChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), llm.Params{Temperature: 0.2}).
		DoAndReturn(func(ctx context.Context, messages []llm.Message, params llm.Params) (string, error) {
			if len(messages) != 2 {
				t.Fatalf("messages = %d, want 2", len(messages))
			}
			if messages[0].Role != llm.RoleSystem || messages[0].Content != chunkPrompt {
				t.Errorf("system message = %+v", messages[0])
			}
			if messages[1].Role != llm.RoleUser || messages[1].Content != "Textauszug:\n\nWir beschließen den Haushalt." {
				t.Errorf("user message = %+v", messages[1])
			}
			return "  - Haushalt beschlossen\n", nil
		})

	s := New(completer, logger.Nop(), 0.2)
	got, err := s.SummarizeChunk(context.Background(), "Wir beschließen den Haushalt.")
	if err != nil {
		t.Fatalf("SummarizeChunk() error = %v", err)
	}
	if got != "- Haushalt beschlossen" {
		t.Errorf("SummarizeChunk() = %q", got)
	}
}

func TestConsolidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := meeting.Metadata{Title: "Vorstand", Date: "2025-10-01", Agenda: []string{"Haushalt"}}

	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, messages []llm.Message, params llm.Params) (string, error) {
			if messages[0].Content != consolidatePrompt {
				t.Errorf("system prompt = %q", messages[0].Content)
			}
			want := "Titel: Vorstand\nDatum: 2025-10-01\nTagesordnung:\n  - Haushalt" +
				"\n\nTeilzusammenfassungen:\n\nTeil A\n\nTeil B"
			if messages[1].Content != want {
				t.Errorf("user prompt =\n%s\nwant\n%s", messages[1].Content, want)
			}
			if params.Temperature != DefaultTemperature {
				t.Errorf("temperature = %v", params.Temperature)
			}
			return "# Protokoll\n", nil
		})

	s := New(completer, logger.Nop(), 0)
	got, err := s.Consolidate(context.Background(), []string{"Teil A", "Teil B"}, meta)
	if err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
	if got != "# Protokoll" {
		t.Errorf("Consolidate() = %q", got)
	}
}

func TestSummarizerErrors(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		err       error
		wantEmpty bool
	}{
		{name: "service failure", err: errors.New("connection reset")},
		{name: "blank reply", reply: "   \n", wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			completer := mocks.NewMockCompleter(ctrl)
			completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.reply, tt.err).Times(2)

			s := New(completer, logger.Nop(), 0.2)
			_, err := s.SummarizeChunk(context.Background(), "x")
			if err == nil {
				t.Fatal("SummarizeChunk() expected error")
			}
			if !strings.Contains(err.Error(), "summarize chunk") {
				t.Errorf("error %q should carry context", err)
			}
			if tt.wantEmpty && !errors.Is(err, llm.ErrEmptyResponse) {
				t.Errorf("error = %v, want ErrEmptyResponse", err)
			}

			if _, err := s.Consolidate(context.Background(), []string{"x"}, meeting.New()); err == nil {
				t.Fatal("Consolidate() expected error")
			}
		})
	}
}
