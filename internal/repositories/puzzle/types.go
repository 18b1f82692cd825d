package puzzle

import "github.com/phrazzle/phrazzle/internal/models"

type SavePuzzleInput struct {
	Puzzle *models.Puzzle
}

type GetPuzzleInput struct {
	PuzzleID string
}

type GetActivePuzzleInput struct {
}

type SetActivePuzzleInput struct {
	// PuzzleID is the puzzle to activate; empty deactivates the current one
	PuzzleID string
}

type ListPuzzlesInput struct {
}

type ListPuzzlesOutput struct {
	Puzzles []*models.Puzzle
}
