package moodhistory

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/moodhistory Repository

import (
	"context"
)

// Repository defines the interface for the append-only mood audit trail
type Repository interface {
	// AddEntry appends a tier-transition record
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetEntries retrieves a player's transition history, oldest first
	GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error)
}
