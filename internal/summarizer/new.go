package summarizer

import (
	"github.com/political-party-kit/partykit/internal/llm"
	"github.com/political-party-kit/partykit/internal/logger"
)

// DefaultTemperature keeps the generated minutes close to the source.
const DefaultTemperature = 0.2

type implSummarizer struct {
	completer   llm.Completer
	logger      logger.Logger
	temperature float32
}

// New creates a Summarizer on top of the given text-generation capability.
func New(completer llm.Completer, log logger.Logger, temperature float32) Summarizer {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &implSummarizer{
		completer:   completer,
		logger:      log,
		temperature: temperature,
	}
}
