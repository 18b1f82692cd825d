package oracle

import (
	"context"
	"strings"
)

// ExactOracle is the deterministic fallback judge: case-insensitive,
// whitespace-trimmed string equality. It is also what the orchestrator
// degrades to when the real oracle fails or times out.
type ExactOracle struct{}

// NewExact creates a new exact-match oracle
func NewExact() *ExactOracle {
	return &ExactOracle{}
}

// Validate judges the guess by normalized string equality
func (o *ExactOracle) Validate(_ context.Context, input *ValidateInput) (*ValidateOutput, error) {
	isCorrect := Match(input.Answer, input.Guess)

	out := &ValidateOutput{
		IsCorrect:  isCorrect,
		Confidence: 1.0,
	}
	if !isCorrect {
		out.Explanation = "the guess does not match the answer"
	}

	return out, nil
}

// Match reports case-insensitive, whitespace-normalized equality
func Match(answer, guess string) bool {
	return normalize(answer) == normalize(guess)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
