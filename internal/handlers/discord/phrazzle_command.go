package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/phrazzle/phrazzle/internal/services/achievement"
	"github.com/phrazzle/phrazzle/internal/services/game"
	"github.com/phrazzle/phrazzle/internal/services/leaderboard"
	"github.com/phrazzle/phrazzle/internal/services/messaging"
)

// PhrazzleCommand handles the /phrazzle command
type PhrazzleCommand struct {
	BaseCommand
	gameService        game.Service
	leaderboardService leaderboard.Service
	achievementService achievement.Service
	messagingService   messaging.Service
}

// NewPhrazzleCommand creates a new phrazzle command handler
func NewPhrazzleCommand(
	gameService game.Service,
	leaderboardService leaderboard.Service,
	achievementService achievement.Service,
	messagingService messaging.Service,
) *PhrazzleCommand {
	return &PhrazzleCommand{
		BaseCommand: BaseCommand{
			Name:        "phrazzle",
			Description: "Weekly phrase puzzle commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guess",
					Description: "Guess this week's phrase",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "phrase",
							Description: "Your guess",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clue",
					Description: "Show this week's clue",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show your solve stats",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Show the leaderboard",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "alltime",
							Description: "Show the all-time board instead of this week's",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "badges",
					Description: "Show your achievements",
				},
			},
		},
		gameService:        gameService,
		leaderboardService: leaderboardService,
		achievementService: achievementService,
		messagingService:   messagingService,
	}
}

// Handle processes a Discord interaction for the phrazzle command
func (c *PhrazzleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, username := interactionUser(i)

	switch data.Options[0].Name {
	case "guess":
		return c.handleGuess(s, i, userID, username, data.Options[0])
	case "clue":
		return c.handleClue(s, i)
	case "stats":
		return c.handleStats(s, i, userID)
	case "board":
		return c.handleBoard(s, i, data.Options[0])
	case "badges":
		return c.handleBadges(s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *PhrazzleCommand) handleGuess(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, opt *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	text := opt.Options[0].StringValue()

	out, err := c.gameService.SubmitGuess(ctx, &game.SubmitGuessInput{
		PlayerID:   userID,
		PlayerName: username,
		Text:       text,
	})
	if err != nil {
		return c.respondGuessError(s, i, username, err)
	}

	if !out.IsCorrect {
		msg, msgErr := c.messagingService.GetWrongGuessMessage(ctx, &messaging.GetWrongGuessMessageInput{
			PlayerName:   username,
			Tier:         out.NewTier,
			GuessNumber:  out.GuessNumber,
			MissingWords: out.MissingWords,
		})
		if msgErr != nil {
			log.Printf("Error building miss message: %v", msgErr)
			return RespondWithMessage(s, i, fmt.Sprintf("Not it, %s. Guess %d.", username, out.GuessNumber))
		}
		return RespondWithMessage(s, i, msg.Message)
	}

	return RespondWithEmbed(s, i, renderSolveEmbed(ctx, c.messagingService, username, out))
}

func (c *PhrazzleCommand) respondGuessError(s *discordgo.Session, i *discordgo.InteractionCreate, username string, err error) error {
	ctx := context.Background()

	errType := ""
	switch {
	case errors.Is(err, game.ErrNoActivePuzzle):
		errType = "no_active_puzzle"
	case errors.Is(err, game.ErrAlreadySolved):
		errType = "already_solved"
	default:
		log.Printf("Error submitting guess: %v", err)
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

func (c *PhrazzleCommand) handleClue(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.gameService.GetActivePuzzle(ctx, &game.GetActivePuzzleInput{})
	if err != nil {
		if errors.Is(err, game.ErrNoActivePuzzle) {
			return RespondWithEphemeralMessage(s, i, "There's no puzzle live right now.")
		}
		log.Printf("Error loading active puzzle: %v", err)
		return RespondWithError(s, i, "Couldn't load this week's puzzle.")
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "This Week's Phrazzle",
		Description: out.Puzzle.Clue,
		Color:       embedColorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Week ends %s", out.Puzzle.WeekEnd.Format("Mon Jan 2")),
		},
	})
}

func (c *PhrazzleCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	stats, err := c.gameService.GetPlayerStats(ctx, &game.GetPlayerStatsInput{PlayerID: userID})
	if err != nil {
		log.Printf("Error loading player stats: %v", err)
		return RespondWithEphemeralMessage(s, i, "No stats yet. Submit a guess first.")
	}

	return RespondWithEmbed(s, i, renderStatsEmbed(stats))
}

func (c *PhrazzleCommand) handleBoard(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	allTime := false
	for _, o := range opt.Options {
		if o.Name == "alltime" {
			allTime = o.BoolValue()
		}
	}

	if allTime {
		board, err := c.leaderboardService.GetAllTime(ctx, &leaderboard.GetAllTimeInput{})
		if err != nil {
			log.Printf("Error loading all-time board: %v", err)
			return RespondWithError(s, i, "Couldn't load the leaderboard.")
		}
		return RespondWithEmbed(s, i, renderAllTimeBoard(board.Entries))
	}

	puzzle, err := c.gameService.GetActivePuzzle(ctx, &game.GetActivePuzzleInput{})
	if err != nil {
		if errors.Is(err, game.ErrNoActivePuzzle) {
			return RespondWithEphemeralMessage(s, i, "There's no puzzle live right now.")
		}
		log.Printf("Error loading active puzzle: %v", err)
		return RespondWithError(s, i, "Couldn't load the leaderboard.")
	}

	board, err := c.leaderboardService.GetWeekly(ctx, &leaderboard.GetWeeklyInput{
		PuzzleID: puzzle.Puzzle.ID,
	})
	if err != nil {
		log.Printf("Error loading weekly board: %v", err)
		return RespondWithError(s, i, "Couldn't load the leaderboard.")
	}

	return RespondWithEmbed(s, i, renderWeeklyBoard(board.Entries))
}

func (c *PhrazzleCommand) handleBadges(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	unlocked, err := c.achievementService.GetUnlocked(ctx, &achievement.GetUnlockedInput{PlayerID: userID})
	if err != nil {
		log.Printf("Error loading achievements: %v", err)
		return RespondWithError(s, i, "Couldn't load your badges.")
	}

	progress, err := c.achievementService.GetProgress(ctx, &achievement.GetProgressInput{PlayerID: userID})
	if err != nil {
		log.Printf("Error loading achievement progress: %v", err)
		return RespondWithError(s, i, "Couldn't load your badges.")
	}

	return RespondWithEmbed(s, i, renderBadgesEmbed(unlocked.Unlocked, progress))
}
