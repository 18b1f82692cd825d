package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/phrazzle/phrazzle/internal/services/achievement"
	"github.com/phrazzle/phrazzle/internal/services/game"
	"github.com/phrazzle/phrazzle/internal/services/messaging"
)

const (
	embedColorNeutral = 0x5865f2
	embedColorSuccess = 0x00ff00
	embedColorGold    = 0xffd700
	embedColorError   = 0xff0000
)

// tierLabels maps mood tiers to display names
var tierLabels = [7]string{
	"Skeptical",
	"Acknowledging",
	"Approving",
	"Friendly",
	"Admiring",
	"Devoted",
	"Worshipful",
}

func tierLabel(tier int) string {
	if tier < 0 || tier >= len(tierLabels) {
		return fmt.Sprintf("Tier %d", tier)
	}
	return tierLabels[tier]
}

// renderSolveEmbed builds the public celebration embed for a correct
// guess
func renderSolveEmbed(ctx context.Context, messagingService messaging.Service, username string, out *game.SubmitGuessOutput) *discordgo.MessageEmbed {
	title := fmt.Sprintf("%s solved it!", username)
	description := fmt.Sprintf("Got it in **%d** guesses.", out.GuessNumber)
	if out.GuessNumber == 1 {
		description = "Got it in **one**."
	}

	msg, err := messagingService.GetSolveMessage(ctx, &messaging.GetSolveMessageInput{
		PlayerName:  username,
		Tier:        out.NewTier,
		Streak:      out.Streak,
		GuessNumber: out.GuessNumber,
	})
	if err != nil {
		log.Printf("Error building solve message: %v", err)
	} else {
		description = msg.Message + "\n\n" + description
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       embedColorSuccess,
	}

	if out.CelebrationURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: out.CelebrationURL}
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Streak",
			Value:  fmt.Sprintf("%d weeks", out.Streak),
			Inline: true,
		},
	}
	if out.CoinsAwarded > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Coins",
			Value:  fmt.Sprintf("+%d", out.CoinsAwarded),
			Inline: true,
		})
	}

	if out.TierChanged {
		tierMsg, tierErr := messagingService.GetTierChangeMessage(ctx, &messaging.GetTierChangeMessageInput{
			PlayerName: username,
			OldTier:    out.OldTier,
			NewTier:    out.NewTier,
		})
		value := fmt.Sprintf("%s → %s", tierLabel(out.OldTier), tierLabel(out.NewTier))
		if tierErr == nil {
			value += "\n" + tierMsg.Message
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Mood Shift",
			Value: value,
		})
	}

	if len(out.NewAchievements) > 0 {
		var lines []string
		for _, a := range out.NewAchievements {
			badgeMsg, badgeErr := messagingService.GetAchievementMessage(ctx, &messaging.GetAchievementMessageInput{
				PlayerName:      username,
				AchievementName: a.Name,
				Tier:            out.NewTier,
			})
			if badgeErr != nil {
				lines = append(lines, fmt.Sprintf("🏅 **%s** — %s", a.Name, a.Description))
				continue
			}
			lines = append(lines, fmt.Sprintf("🏅 **%s** — %s", a.Name, badgeMsg.Message))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "New Badges",
			Value: strings.Join(lines, "\n"),
		})
	}

	embed.Fields = fields
	return embed
}

// renderStatsEmbed builds the stats embed for a single player
func renderStatsEmbed(stats *game.GetPlayerStatsOutput) *discordgo.MessageEmbed {
	avg := "—"
	if stats.TotalSolves > 0 {
		avg = fmt.Sprintf("%.1f", stats.AvgGuesses)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Record", stats.Player.Name),
		Color: embedColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Mood",
				Value:  tierLabel(stats.Player.MoodTier),
				Inline: true,
			},
			{
				Name:   "Current Streak",
				Value:  fmt.Sprintf("%d weeks", stats.Streak),
				Inline: true,
			},
			{
				Name:   "Best Streak",
				Value:  fmt.Sprintf("%d weeks", stats.Player.BestStreak),
				Inline: true,
			},
			{
				Name:   "Solves",
				Value:  fmt.Sprintf("%d", stats.TotalSolves),
				Inline: true,
			},
			{
				Name:   "Avg Guesses",
				Value:  avg,
				Inline: true,
			},
			{
				Name:   "Hint Coins",
				Value:  fmt.Sprintf("%d", stats.Player.HintCoins),
				Inline: true,
			},
		},
	}
}

var rankMedals = map[int]string{
	1: "🥇",
	2: "🥈",
	3: "🥉",
}

func rankBadge(rank int) string {
	if medal, ok := rankMedals[rank]; ok {
		return medal
	}
	return fmt.Sprintf("%d.", rank)
}

// renderWeeklyBoard builds the standings embed for the active puzzle
func renderWeeklyBoard(entries []*models.WeeklyLeaderboardEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "This Week's Standings",
			Description: "Nobody has solved it yet. The board is wide open.",
			Color:       embedColorNeutral,
		}
	}

	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s **%s** — solved %s in %d guesses",
			rankBadge(e.Rank), e.PlayerName, e.SolvedAt.Format("Mon 15:04"), e.GuessCount))
	}

	return &discordgo.MessageEmbed{
		Title:       "This Week's Standings",
		Description: strings.Join(lines, "\n"),
		Color:       embedColorGold,
	}
}

// renderAllTimeBoard builds the lifetime standings embed
func renderAllTimeBoard(entries []*models.AllTimeLeaderboardEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "All-Time Standings",
			Description: "No solves on record yet.",
			Color:       embedColorNeutral,
		}
	}

	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s **%s** — %d solves, %.1f avg, best streak %d",
			rankBadge(e.Rank), e.PlayerName, e.TotalSolves, e.AvgGuesses, e.BestStreak))
	}

	return &discordgo.MessageEmbed{
		Title:       "All-Time Standings",
		Description: strings.Join(lines, "\n"),
		Color:       embedColorGold,
	}
}

// renderBadgesEmbed builds the achievements embed for a player
func renderBadgesEmbed(unlocked []*achievement.UnlockedDetail, progress *achievement.GetProgressOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Badges",
		Color: embedColorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d of %d unlocked", progress.Unlocked, progress.Total),
		},
	}

	if len(unlocked) == 0 {
		embed.Description = "No badges yet. Solve a puzzle to earn your first."
		embed.Color = embedColorNeutral
	} else {
		var lines []string
		for _, u := range unlocked {
			lines = append(lines, fmt.Sprintf("🏅 **%s** — %s (%s)",
				u.Achievement.Name, u.Achievement.Description, u.UnlockedAt.Format("Jan 2 2006")))
		}
		embed.Description = strings.Join(lines, "\n")
	}

	var progressLines []string
	for _, p := range progress.Progress {
		progressLines = append(progressLines, fmt.Sprintf("%s: %d/%d", p.Category, p.Unlocked, p.Total))
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:  "Progress",
			Value: strings.Join(progressLines, " · "),
		},
	}

	return embed
}
