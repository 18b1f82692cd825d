package guess

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/guess Repository

import (
	"context"

	"github.com/phrazzle/phrazzle/internal/models"
)

// Repository defines the interface for the append-only guess log.
// Guesses are never updated or deleted; the log is the source of truth
// for streak and stats derivation.
type Repository interface {
	// AddGuess appends a guess and maintains the solve indexes
	AddGuess(ctx context.Context, input *AddGuessInput) error

	// GetGuesses retrieves all of a player's guesses for a puzzle, in order
	GetGuesses(ctx context.Context, input *GetGuessesInput) (*GetGuessesOutput, error)

	// CountGuesses returns how many guesses a player has made for a puzzle
	CountGuesses(ctx context.Context, input *CountGuessesInput) (int, error)

	// CountAllGuesses returns a player's lifetime guess count
	CountAllGuesses(ctx context.Context, input *CountAllGuessesInput) (int, error)

	// HasSolved reports whether a player has a correct guess for a puzzle
	HasSolved(ctx context.Context, input *HasSolvedInput) (bool, error)

	// GetSolvedPuzzleIDs returns the distinct puzzles a player has solved
	GetSolvedPuzzleIDs(ctx context.Context, input *GetSolvedPuzzleIDsInput) ([]string, error)

	// CountSolves returns a player's distinct solved-puzzle count
	CountSolves(ctx context.Context, input *CountSolvesInput) (int, error)

	// GetSolveGuessCounts returns guesses-taken per solved puzzle for a player
	GetSolveGuessCounts(ctx context.Context, input *GetSolveGuessCountsInput) (map[string]int, error)

	// GetPuzzleSolves returns a puzzle's solves ordered by solve time
	GetPuzzleSolves(ctx context.Context, input *GetPuzzleSolvesInput) ([]*models.Solve, error)

	// GetFirstSolver returns the player who solved a puzzle first
	GetFirstSolver(ctx context.Context, input *GetFirstSolverInput) (string, error)
}
