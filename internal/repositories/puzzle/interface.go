package puzzle

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/puzzle Repository

import (
	"context"

	"github.com/phrazzle/phrazzle/internal/models"
)

// Repository defines the interface for puzzle data persistence
type Repository interface {
	// SavePuzzle persists a puzzle
	SavePuzzle(ctx context.Context, input *SavePuzzleInput) error

	// GetPuzzle retrieves a puzzle by ID
	GetPuzzle(ctx context.Context, input *GetPuzzleInput) (*models.Puzzle, error)

	// GetActivePuzzle retrieves the currently active weekly puzzle
	GetActivePuzzle(ctx context.Context, input *GetActivePuzzleInput) (*models.Puzzle, error)

	// SetActivePuzzle makes the given puzzle the active one, clearing any previous
	SetActivePuzzle(ctx context.Context, input *SetActivePuzzleInput) error

	// ListPuzzles retrieves all puzzles
	ListPuzzles(ctx context.Context, input *ListPuzzlesInput) (*ListPuzzlesOutput, error)
}
