package llm

import "errors"

// ErrEmptyResponse is returned when the service answers without any text.
var ErrEmptyResponse = errors.New("empty response from language model")

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents a single role-tagged message in a prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Params holds parameters for a completion request.
type Params struct {
	// Model overrides the client's default model when set.
	Model string

	// Temperature controls the randomness of the output.
	Temperature float32
}
