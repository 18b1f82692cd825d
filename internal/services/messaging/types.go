package messaging

// MessageTone describes the persona's attitude in a message
type MessageTone string

const (
	// ToneDismissive is the persona at its coldest, tiers 0-1
	ToneDismissive MessageTone = "dismissive"

	// ToneNeutral is the persona merely professional, tiers 2-3
	ToneNeutral MessageTone = "neutral"

	// ToneWarm is the persona genuinely pleased, tiers 4-5
	ToneWarm MessageTone = "warm"

	// ToneWorshipful is the persona in awe, tier 6
	ToneWorshipful MessageTone = "worshipful"
)

// ServiceConfig holds the configuration for the messaging service
type ServiceConfig struct {
}

// GetSolveMessageInput contains parameters for a correct-guess message
type GetSolveMessageInput struct {
	// PlayerName is the solver's display name
	PlayerName string

	// Tier is the player's mood tier after the solve
	Tier int

	// Streak is the player's streak including this solve
	Streak int

	// GuessNumber is which guess was correct
	GuessNumber int
}

type GetSolveMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetWrongGuessMessageInput contains parameters for a miss message
type GetWrongGuessMessageInput struct {
	PlayerName string

	// Tier is the player's current mood tier
	Tier int

	// GuessNumber is which guess missed
	GuessNumber int

	// MissingWords is set when the word pre-filter rejected the guess
	MissingWords []string
}

type GetWrongGuessMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetTierChangeMessageInput contains parameters for a tier transition
type GetTierChangeMessageInput struct {
	PlayerName string
	OldTier    int
	NewTier    int
}

type GetTierChangeMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetAchievementMessageInput contains parameters for a badge unlock
type GetAchievementMessageInput struct {
	PlayerName      string
	AchievementName string

	// Tier is the player's current mood tier
	Tier int
}

type GetAchievementMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDuelResultMessageInput contains parameters for a duel announcement
type GetDuelResultMessageInput struct {
	WinnerName string
	LoserName  string

	// Wager is the settled stake, 0 for a friendly duel
	Wager int
}

type GetDuelResultMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	PlayerName string

	// ErrorType is a stable key for the failure kind
	ErrorType string
}

type GetErrorMessageOutput struct {
	Message string
}
