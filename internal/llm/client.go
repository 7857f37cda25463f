package llm

import (
	"context"
)

// Client is a minimal text-generation interface over any LLM provider.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
