package celebration

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/phrazzle/phrazzle/internal/celebration Provider

import (
	"context"
)

// Provider fetches a celebration asset for a solve, keyed by the
// player's mood tier. Best-effort: a failed fetch must never fail the
// guess result, callers fall back to DefaultURL.
type Provider interface {
	// FetchCelebration returns an asset URL for the given tier
	FetchCelebration(ctx context.Context, input *FetchCelebrationInput) (*FetchCelebrationOutput, error)
}

// FetchCelebrationInput contains parameters for fetching an asset
type FetchCelebrationInput struct {
	// Tier is the player's mood tier after the solve
	Tier int
}

// FetchCelebrationOutput contains the fetched asset
type FetchCelebrationOutput struct {
	// URL points at the celebration asset
	URL string
}

// DefaultURL is the static fallback asset
const DefaultURL = "https://media.phrazzle.app/celebrations/default.gif"

// StaticProvider serves a fixed asset per tier
type StaticProvider struct {
	urls map[int]string
}

// NewStatic creates a provider with the built-in tier assets
func NewStatic() *StaticProvider {
	return &StaticProvider{
		urls: map[int]string{
			0: "https://media.phrazzle.app/celebrations/shrug.gif",
			1: "https://media.phrazzle.app/celebrations/slow-clap.gif",
			2: "https://media.phrazzle.app/celebrations/nod.gif",
			3: "https://media.phrazzle.app/celebrations/thumbs-up.gif",
			4: "https://media.phrazzle.app/celebrations/applause.gif",
			5: "https://media.phrazzle.app/celebrations/fireworks.gif",
			6: "https://media.phrazzle.app/celebrations/bow-down.gif",
		},
	}
}

// FetchCelebration returns the asset for the tier, or the default
func (p *StaticProvider) FetchCelebration(_ context.Context, input *FetchCelebrationInput) (*FetchCelebrationOutput, error) {
	url, ok := p.urls[input.Tier]
	if !ok {
		url = DefaultURL
	}

	return &FetchCelebrationOutput{URL: url}, nil
}
