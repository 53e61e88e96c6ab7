package ai

import "context"

// Generator is the narrow gateway to the external language model. The
// prompt is caller-constructed opaque text; the reply is plain text.
// Implementations make a single attempt, callers own fallback behavior.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
