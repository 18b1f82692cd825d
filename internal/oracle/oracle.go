package oracle

//go:generate mockgen -package=mocks -destination=mocks/mock_oracle.go github.com/phrazzle/phrazzle/internal/oracle Oracle

import (
	"context"
)

// Oracle judges free-text guess correctness against the known answer.
// Implementations are injected at composition time; core logic never
// branches on which one it got.
type Oracle interface {
	// Validate returns a verdict for the guess
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)
}

// ValidateInput contains the answer and the guess to judge
type ValidateInput struct {
	// Answer is the correct phrase
	Answer string

	// Guess is the raw submitted text
	Guess string
}

// ValidateOutput contains the oracle's verdict
type ValidateOutput struct {
	// IsCorrect is the verdict
	IsCorrect bool

	// Confidence is the oracle's self-reported confidence, 0 to 1
	Confidence float64

	// Explanation is an optional human-readable justification
	Explanation string

	// CorrectedSpelling is set when the oracle accepted despite a typo
	CorrectedSpelling string
}
