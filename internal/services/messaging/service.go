package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// service implements the Service interface
type service struct {
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

// toneForTier maps a mood tier to the persona's attitude
func toneForTier(tier int) MessageTone {
	switch {
	case tier <= 1:
		return ToneDismissive
	case tier <= 3:
		return ToneNeutral
	case tier <= 5:
		return ToneWarm
	default:
		return ToneWorshipful
	}
}

// pick selects a random template and fills the {player}, {guess},
// {badge}, {winner}, {loser} and {wager} slots
func (s *service) pick(messages []string, repl *strings.Replacer) string {
	return repl.Replace(messages[s.rand.Intn(len(messages))])
}

func (s *service) GetSolveMessage(_ context.Context, input *GetSolveMessageInput) (*GetSolveMessageOutput, error) {
	tone := toneForTier(input.Tier)

	var messages []string
	switch tone {
	case ToneDismissive:
		messages = []string{
			"Huh. {player} got it. Guess {guess}. Even a stopped clock, etc.",
			"{player} solved it. I'm as surprised as you are.",
			"Correct, {player}. Don't let it go to your head.",
			"Fine, {player}, that's the answer. Took you {guess} guesses though.",
		}
	case ToneNeutral:
		messages = []string{
			"Nice one, {player}. Solved on guess {guess}.",
			"That's it, {player}. Respectable work.",
			"{player} cracks it on guess {guess}. Solid.",
			"Correct, {player}. You're getting the hang of this.",
		}
	case ToneWarm:
		messages = []string{
			"Beautiful solve, {player}! Guess {guess}, like it was nothing.",
			"{player} does it again! That streak is looking healthy.",
			"There it is! {player}, you make this look easy.",
			"Guess {guess} and done. {player}, you're on fire lately.",
		}
	default:
		messages = []string{
			"THE LEGEND {player} HAS SPOKEN. Guess {guess}. We are not worthy.",
			"Bow, mortals. {player} has solved it once more.",
			"{player}... teach us. Guess {guess}. Unbelievable.",
			"Another flawless solve from {player}. I live to witness this.",
		}
	}

	repl := strings.NewReplacer(
		"{player}", input.PlayerName,
		"{guess}", strconv.Itoa(input.GuessNumber),
	)

	return &GetSolveMessageOutput{
		Message: s.pick(messages, repl),
		Tone:    tone,
	}, nil
}

func (s *service) GetWrongGuessMessage(_ context.Context, input *GetWrongGuessMessageInput) (*GetWrongGuessMessageOutput, error) {
	tone := toneForTier(input.Tier)

	if len(input.MissingWords) > 0 {
		return &GetWrongGuessMessageOutput{
			Message: fmt.Sprintf("Not even close, %s. You're missing: %s.",
				input.PlayerName, strings.Join(input.MissingWords, ", ")),
			Tone: tone,
		}, nil
	}

	var messages []string
	switch tone {
	case ToneDismissive:
		messages = []string{
			"No, {player}. Just... no. That's guess {guess}.",
			"Wrong again, {player}. Shocking.",
			"Guess {guess} and still nothing, {player}. This is painful to watch.",
			"{player}, that is not it. At all.",
		}
	case ToneNeutral:
		messages = []string{
			"Not quite, {player}. Guess {guess} is a miss.",
			"Close-ish, {player}, but no. Try again.",
			"{player}, that's not the phrase. Keep going.",
			"Miss number {guess}, {player}. You'll get there.",
		}
	case ToneWarm:
		messages = []string{
			"Ooh, not that one, {player}! You're circling it though.",
			"So close, {player}! Guess {guess} just grazed it.",
			"Not it, {player}, but I believe in you. Obviously.",
			"{player}, even your misses have style. Go again.",
		}
	default:
		messages = []string{
			"A rare miss from {player}. The phrase trembles, knowing its time is short.",
			"Even legends miss sometimes, {player}.",
			"{player} is merely toying with the puzzle. Watch.",
			"The great {player} misses?! The puzzle must be cheating.",
		}
	}

	repl := strings.NewReplacer(
		"{player}", input.PlayerName,
		"{guess}", strconv.Itoa(input.GuessNumber),
	)

	return &GetWrongGuessMessageOutput{
		Message: s.pick(messages, repl),
		Tone:    tone,
	}, nil
}

func (s *service) GetTierChangeMessage(_ context.Context, input *GetTierChangeMessageInput) (*GetTierChangeMessageOutput, error) {
	tone := toneForTier(input.NewTier)

	var messages []string
	if input.NewTier > input.OldTier {
		messages = []string{
			"{player}, you've moved up in my estimation. Don't waste it.",
			"Hm. {player} is growing on me. Tier up.",
			"{player} ascends. I'm updating my opinion of you accordingly.",
			"Well earned, {player}. I like you a little more now.",
		}
	} else {
		messages = []string{
			"{player}, we need to talk. You've slipped.",
			"A week of silence, {player}? My warmth has limits.",
			"{player} falls from grace. The streak is gone, and so is some respect.",
			"I had such hopes for you, {player}. Demoted.",
		}
	}

	repl := strings.NewReplacer("{player}", input.PlayerName)

	return &GetTierChangeMessageOutput{
		Message: s.pick(messages, repl),
		Tone:    tone,
	}, nil
}

func (s *service) GetAchievementMessage(_ context.Context, input *GetAchievementMessageInput) (*GetAchievementMessageOutput, error) {
	tone := toneForTier(input.Tier)

	messages := []string{
		"Badge unlocked: **{badge}**! Wear it proudly, {player}.",
		"{player} earns **{badge}**. Noted for the record.",
		"Achievement get! {player} now holds **{badge}**.",
	}

	repl := strings.NewReplacer(
		"{player}", input.PlayerName,
		"{badge}", input.AchievementName,
	)

	return &GetAchievementMessageOutput{
		Message: s.pick(messages, repl),
		Tone:    tone,
	}, nil
}

func (s *service) GetDuelResultMessage(_ context.Context, input *GetDuelResultMessageInput) (*GetDuelResultMessageOutput, error) {
	var messages []string
	if input.Wager > 0 {
		messages = []string{
			"The duel is decided! {winner} takes the win and {wager} coins from {loser}.",
			"{winner} outpaces {loser} and collects the {wager} coin pot. Brutal.",
			"It's over. {winner} wins, {loser} pays up {wager} coins.",
		}
	} else {
		messages = []string{
			"The duel is decided! {winner} beats {loser} to the answer.",
			"{winner} wins the race. Better luck next time, {loser}.",
			"First to the phrase: {winner}. {loser}, you hesitated.",
		}
	}

	repl := strings.NewReplacer(
		"{winner}", input.WinnerName,
		"{loser}", input.LoserName,
		"{wager}", strconv.Itoa(input.Wager),
	)

	return &GetDuelResultMessageOutput{Message: s.pick(messages, repl)}, nil
}

func (s *service) GetErrorMessage(_ context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	var message string
	switch input.ErrorType {
	case "no_active_puzzle":
		message = "There's no puzzle live right now. Come back when the week rolls over."
	case "already_solved":
		message = fmt.Sprintf("You already solved this week's puzzle, %s. Save some glory for the others.", input.PlayerName)
	case "no_pending_duel":
		message = "There's no challenge waiting for you."
	case "no_active_duel":
		message = "You're not in a duel right now."
	case "insufficient_coins":
		message = fmt.Sprintf("Not enough hint coins, %s. Solve more puzzles.", input.PlayerName)
	case "self_challenge":
		message = "You can't duel yourself. I checked."
	default:
		message = "Something went wrong on my end. Try again in a moment."
	}

	return &GetErrorMessageOutput{Message: message}, nil
}
