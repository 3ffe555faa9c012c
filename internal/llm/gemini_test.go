package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiRequest(t *testing.T) {
	contents, config := geminiRequest([]Message{
		{Role: RoleSystem, Content: "Erstelle ein Protokoll."},
		{Role: RoleUser, Content: "Teilzusammenfassungen"},
	}, 0.2)

	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	if contents[0].Parts[0].Text != "Teilzusammenfassungen" {
		t.Errorf("user text = %q", contents[0].Parts[0].Text)
	}
	if config.SystemInstruction == nil || config.SystemInstruction.Parts[0].Text != "Erstelle ein Protokoll." {
		t.Errorf("system instruction = %+v", config.SystemInstruction)
	}
	if config.Temperature == nil || *config.Temperature != 0.2 {
		t.Errorf("temperature = %v", config.Temperature)
	}
}

func TestGeminiRequestWithoutSystem(t *testing.T) {
	_, config := geminiRequest([]Message{{Role: RoleUser, Content: "x"}}, 0)
	if config.SystemInstruction != nil {
		t.Error("system instruction should be nil without system messages")
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name   string
		result *genai.GenerateContentResponse
		want   string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			name: "joined parts",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: "Teil 1 "}, {Text: "Teil 2"}}},
			}}},
			want: "Teil 1 Teil 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.result); got != tt.want {
				t.Errorf("responseText() = %q, want %q", got, tt.want)
			}
		})
	}
}
