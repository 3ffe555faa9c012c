package llm

import "context"

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completer.go -package=mocks github.com/political-party-kit/partykit/internal/llm Completer

// Completer turns a role-tagged prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}
