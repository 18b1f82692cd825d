package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	duelRepo "github.com/phrazzle/phrazzle/internal/repositories/duel"
	"github.com/phrazzle/phrazzle/internal/services/duel"
	"github.com/phrazzle/phrazzle/internal/services/messaging"
)

// DuelCommand handles the /duel command
type DuelCommand struct {
	BaseCommand
	duelService      duel.Service
	messagingService messaging.Service
}

// NewDuelCommand creates a new duel command handler
func NewDuelCommand(duelService duel.Service, messagingService messaging.Service) *DuelCommand {
	return &DuelCommand{
		BaseCommand: BaseCommand{
			Name:        "duel",
			Description: "Head-to-head phrase races",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "challenge",
					Description: "Challenge another player to a duel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "opponent",
							Description: "The player to challenge",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "wager",
							Description: "Hint coins at stake",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "accept",
					Description: "Accept your pending challenge",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "decline",
					Description: "Decline your pending challenge",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel the challenge you issued",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guess",
					Description: "Guess your duel phrase",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "phrase",
							Description: "Your guess",
							Required:    true,
						},
					},
				},
			},
		},
		duelService:      duelService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the duel command
func (c *DuelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, username := interactionUser(i)

	switch data.Options[0].Name {
	case "challenge":
		return c.handleChallenge(s, i, userID, username, data.Options[0])
	case "accept":
		return c.handleAccept(s, i, userID, username)
	case "decline":
		return c.handleDecline(s, i, userID, username)
	case "cancel":
		return c.handleCancel(s, i, userID, username)
	case "guess":
		return c.handleGuess(s, i, userID, username, data.Options[0])
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *DuelCommand) handleChallenge(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, opt *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	var opponentID string
	wager := 0
	for _, o := range opt.Options {
		switch o.Name {
		case "opponent":
			opponentID = o.UserValue(nil).ID
		case "wager":
			wager = int(o.IntValue())
		}
	}

	out, err := c.duelService.Challenge(ctx, &duel.ChallengeInput{
		ChallengerID: userID,
		OpponentID:   opponentID,
		Wager:        wager,
	})
	if err != nil {
		return c.respondDuelError(s, i, username, err)
	}

	stake := "bragging rights"
	if out.Duel.Wager > 0 {
		stake = fmt.Sprintf("%d hint coins", out.Duel.Wager)
	}
	return RespondWithMessage(s, i, fmt.Sprintf(
		"⚔️ **%s** has challenged <@%s> to a phrase duel for %s! Use `/duel accept` or `/duel decline`.",
		username, opponentID, stake))
}

func (c *DuelCommand) handleAccept(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	out, err := c.duelService.Accept(ctx, &duel.AcceptInput{OpponentID: userID})
	if err != nil {
		return c.respondDuelError(s, i, username, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"⚔️ **%s** accepted the duel against <@%s>! First to solve the secret phrase wins. Guess with `/duel guess`.",
		username, out.Duel.ChallengerID))
}

func (c *DuelCommand) handleDecline(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	out, err := c.duelService.Decline(ctx, &duel.DeclineInput{OpponentID: userID})
	if err != nil {
		return c.respondDuelError(s, i, username, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"**%s** declined the duel from <@%s>.", username, out.Duel.ChallengerID))
}

func (c *DuelCommand) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	out, err := c.duelService.Cancel(ctx, &duel.CancelInput{ChallengerID: userID})
	if err != nil {
		return c.respondDuelError(s, i, username, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"**%s** withdrew the challenge against <@%s>.", username, out.Duel.OpponentID))
}

func (c *DuelCommand) handleGuess(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, opt *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	text := opt.Options[0].StringValue()

	out, err := c.duelService.SubmitGuess(ctx, &duel.SubmitGuessInput{
		PlayerID: userID,
		Text:     text,
	})
	if err != nil {
		return c.respondDuelError(s, i, username, err)
	}

	if !out.IsCorrect {
		reason := "Not it."
		if len(out.MissingWords) > 0 {
			reason = "Missing the key words."
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s Keep racing, %s.", reason, username))
	}

	if out.WaitingForOpponent {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
			"✅ Solved! Your time is locked in, %s. Now you wait for your opponent.", username))
	}

	if !out.Completed {
		return RespondWithEphemeralMessage(s, i, "✅ Solved!")
	}

	loserID := out.Duel.ChallengerID
	if out.Duel.WinnerID == out.Duel.ChallengerID {
		loserID = out.Duel.OpponentID
	}

	msg, msgErr := c.messagingService.GetDuelResultMessage(ctx, &messaging.GetDuelResultMessageInput{
		WinnerName: fmt.Sprintf("<@%s>", out.Duel.WinnerID),
		LoserName:  fmt.Sprintf("<@%s>", loserID),
		Wager:      out.CoinsTransferred,
	})
	if msgErr != nil {
		log.Printf("Error building duel result message: %v", msgErr)
		return RespondWithMessage(s, i, fmt.Sprintf(
			"⚔️ The duel is over! <@%s> takes the win.", out.Duel.WinnerID))
	}
	return RespondWithMessage(s, i, msg.Message)
}

func (c *DuelCommand) respondDuelError(s *discordgo.Session, i *discordgo.InteractionCreate, username string, err error) error {
	ctx := context.Background()

	errType := ""
	switch {
	case errors.Is(err, duel.ErrSelfChallenge):
		errType = "self_challenge"
	case errors.Is(err, duel.ErrInsufficientCoins):
		errType = "insufficient_coins"
	case errors.Is(err, duel.ErrNoPendingDuel):
		errType = "no_pending_duel"
	case errors.Is(err, duel.ErrNoActiveDuel):
		errType = "no_active_duel"
	case errors.Is(err, duel.ErrNoPuzzleAvailable):
		return RespondWithEphemeralMessage(s, i, "No puzzle is available for a duel right now.")
	case errors.Is(err, duel.ErrNegativeWager):
		return RespondWithEphemeralMessage(s, i, "A wager can't be negative.")
	case errors.Is(err, duel.ErrSideAlreadySolved):
		return RespondWithEphemeralMessage(s, i, "You've already solved your side. Wait for your opponent.")
	case errors.Is(err, duelRepo.ErrDuelActive):
		return RespondWithEphemeralMessage(s, i, "One of you is already in a duel. Finish it first.")
	default:
		log.Printf("Error handling duel command: %v", err)
	}

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		PlayerName: username,
		ErrorType:  errType,
	})
	if msgErr != nil {
		return RespondWithError(s, i, "Something went wrong.")
	}
	return RespondWithEphemeralMessage(s, i, msg.Message)
}
