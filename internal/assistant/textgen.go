package assistant

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("text generation returned no choices")

type GenerateRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// TextGenerator is the external text-generation capability. Implementations
// make a single bounded attempt; callers fall back to canned text on error.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Assistant answers coffee questions and writes product descriptions. A nil
// generator degrades every operation to its deterministic canned output.
type Assistant struct {
	gen TextGenerator
}

func New(gen TextGenerator) *Assistant {
	return &Assistant{gen: gen}
}
