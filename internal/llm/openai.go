package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient talks to an OpenAI-compatible chat completions API.
type OpenAIClient struct {
	Model  string
	client openai.Client
}

// NewOpenAIClient creates a new chat completions client. baseURL is the
// server root without the /v1 suffix.
func NewOpenAIClient(baseURL, apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	defaults := []option.RequestOption{
		option.WithBaseURL(strings.TrimRight(baseURL, "/") + "/v1"),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	return &OpenAIClient{
		Model:  model,
		client: openai.NewClient(append(defaults, opts...)...),
	}
}

// Complete sends a single, non-streaming chat completion request.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	model := params.Model
	if model == "" {
		model = c.Model
	}

	req := openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
		Temperature: openai.Float(temperature(params.Temperature)),
	}
	for _, m := range messages {
		if m.Role == RoleSystem {
			req.Messages = append(req.Messages, openai.SystemMessage(m.Content))
			continue
		}
		req.Messages = append(req.Messages, openai.UserMessage(m.Content))
	}

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// temperature widens t without picking up float32 rounding noise, so 0.2
// goes over the wire as 0.2.
func temperature(t float32) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(float64(t), 'g', -1, 32), 64)
	return v
}
