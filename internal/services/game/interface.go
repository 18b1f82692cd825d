package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/phrazzle/phrazzle/internal/services/game Service

import "context"

// Service defines the interface for the top-level guess use case. It
// owns the validation pipeline (word pre-filter, oracle, exact-match
// fallback) and coordinates the mood and achievement services after a
// confirmed solve.
type Service interface {
	// SubmitGuess adjudicates one guess against the active weekly
	// puzzle and applies all downstream progression
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// CheckAnswer runs only the validation pipeline, against an
	// arbitrary answer. Used by duels, which manage their own state.
	CheckAnswer(ctx context.Context, input *CheckAnswerInput) (*CheckAnswerOutput, error)

	// RotatePuzzle activates the puzzle whose week covers the current
	// time, deactivating any expired one. Safe to call repeatedly.
	RotatePuzzle(ctx context.Context, input *RotatePuzzleInput) (*RotatePuzzleOutput, error)

	// GetActivePuzzle returns the active weekly puzzle
	GetActivePuzzle(ctx context.Context, input *GetActivePuzzleInput) (*GetActivePuzzleOutput, error)

	// GetPlayerStats returns a player's aggregate statistics
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)
}
