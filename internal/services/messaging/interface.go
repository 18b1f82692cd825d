package messaging

import "context"

// Service is the interface for the messaging service. Every message is
// voiced by the bot persona, whose attitude toward a player is keyed by
// that player's mood tier: dismissive at tier 0, worshipful at tier 6.
type Service interface {
	// GetSolveMessage returns a message for a correct guess
	GetSolveMessage(ctx context.Context, input *GetSolveMessageInput) (*GetSolveMessageOutput, error)

	// GetWrongGuessMessage returns a message for an incorrect guess
	GetWrongGuessMessage(ctx context.Context, input *GetWrongGuessMessageInput) (*GetWrongGuessMessageOutput, error)

	// GetTierChangeMessage returns a message for a mood tier transition
	GetTierChangeMessage(ctx context.Context, input *GetTierChangeMessageInput) (*GetTierChangeMessageOutput, error)

	// GetAchievementMessage returns a message for a badge unlock
	GetAchievementMessage(ctx context.Context, input *GetAchievementMessageInput) (*GetAchievementMessageOutput, error)

	// GetDuelResultMessage returns a message announcing a duel outcome
	GetDuelResultMessage(ctx context.Context, input *GetDuelResultMessageInput) (*GetDuelResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
