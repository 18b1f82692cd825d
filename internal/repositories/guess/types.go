package guess

import "github.com/phrazzle/phrazzle/internal/models"

type AddGuessInput struct {
	Guess *models.Guess
}

type GetGuessesInput struct {
	PlayerID string
	PuzzleID string
}

type GetGuessesOutput struct {
	Guesses []*models.Guess
}

type CountGuessesInput struct {
	PlayerID string
	PuzzleID string
}

type CountAllGuessesInput struct {
	PlayerID string
}

type HasSolvedInput struct {
	PlayerID string
	PuzzleID string
}

type GetSolvedPuzzleIDsInput struct {
	PlayerID string
}

type CountSolvesInput struct {
	PlayerID string
}

type GetSolveGuessCountsInput struct {
	PlayerID string
}

type GetPuzzleSolvesInput struct {
	PuzzleID string
}

type GetFirstSolverInput struct {
	PuzzleID string
}
