package duel

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/phrazzle/phrazzle/internal/services/duel Service

import "context"

// Service defines the interface for the two-player race state machine.
// PENDING -> ACTIVE -> COMPLETED, with PENDING -> DECLINED and
// PENDING -> CANCELLED as terminal side exits. Guess validation is
// delegated to the game service; this service only manages race state
// and settlement.
type Service interface {
	// Challenge creates a PENDING duel after checking every
	// precondition; on violation no state is applied
	Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error)

	// Accept transitions the caller's incoming PENDING duel to ACTIVE
	Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error)

	// Decline terminally refuses the caller's incoming PENDING duel
	Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error)

	// Cancel terminally withdraws the caller's outgoing PENDING duel
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)

	// SubmitGuess adjudicates a guess against the caller's ACTIVE
	// duel. When both sides have solved it completes the duel exactly
	// once and settles any wager.
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// GetDuel retrieves a duel by ID
	GetDuel(ctx context.Context, input *GetDuelInput) (*GetDuelOutput, error)

	// ExpireStale resolves ACTIVE duels older than the age limit: a
	// duel with exactly one solved side completes in that side's
	// favor and settles any wager, an untouched one is cancelled.
	// Either way the players' active slots are released.
	ExpireStale(ctx context.Context, input *ExpireStaleInput) (*ExpireStaleOutput, error)
}
