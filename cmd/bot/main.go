package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/phrazzle/phrazzle/internal/celebration"
	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	"github.com/phrazzle/phrazzle/internal/config"
	"github.com/phrazzle/phrazzle/internal/handlers/discord"
	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/phrazzle/phrazzle/internal/oracle"
	achievementRepo "github.com/phrazzle/phrazzle/internal/repositories/achievement"
	duelRepo "github.com/phrazzle/phrazzle/internal/repositories/duel"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	leaderboardRepo "github.com/phrazzle/phrazzle/internal/repositories/leaderboard"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/scheduler"
	achievementService "github.com/phrazzle/phrazzle/internal/services/achievement"
	duelService "github.com/phrazzle/phrazzle/internal/services/duel"
	gameService "github.com/phrazzle/phrazzle/internal/services/game"
	leaderboardService "github.com/phrazzle/phrazzle/internal/services/leaderboard"
	"github.com/phrazzle/phrazzle/internal/services/messaging"
	moodService "github.com/phrazzle/phrazzle/internal/services/mood"
	"github.com/phrazzle/phrazzle/internal/wordmatch"
)

func main() {
	// Load .env if one exists; real deployments set the environment
	// directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	guesses, err := guessRepo.NewRedis(&guessRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create guess repository: %v", err)
	}

	puzzles, err := puzzleRepo.NewRedis(&puzzleRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create puzzle repository: %v", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	history, err := moodHistoryRepo.NewRedis(&moodHistoryRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create mood history repository: %v", err)
	}

	achievements, err := achievementRepo.NewRedis(&achievementRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create achievement repository: %v", err)
	}

	boards, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create leaderboard repository: %v", err)
	}

	duels, err := duelRepo.NewRedis(&duelRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create duel repository: %v", err)
	}

	// Seed puzzles before anything reads the rotation
	if cfg.PuzzlesFile != "" {
		if err := seedPuzzles(context.Background(), puzzles, cfg.PuzzlesFile); err != nil {
			log.Fatalf("Failed to seed puzzles from %s: %v", cfg.PuzzlesFile, err)
		}
	}

	systemClock := &clock.DefaultClock{}
	uuidGen := uuid.New()

	// The oracle degrades to exact matching when no endpoint is
	// configured
	var answerOracle oracle.Oracle
	if cfg.OracleURL != "" {
		answerOracle, err = oracle.NewHTTP(&oracle.HTTPConfig{
			BaseURL: cfg.OracleURL,
			Timeout: cfg.OracleTimeout,
		})
		if err != nil {
			log.Fatalf("Failed to create oracle client: %v", err)
		}
	} else {
		log.Println("ORACLE_URL not set, using exact matching only")
		answerOracle = oracle.NewExact()
	}

	// Initialize services
	moodSvc, err := moodService.New(&moodService.Config{
		GuessRepo:     guesses,
		PuzzleRepo:    puzzles,
		PlayerRepo:    players,
		HistoryRepo:   history,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create mood service: %v", err)
	}

	achievementSvc, err := achievementService.New(&achievementService.Config{
		AchievementRepo: achievements,
		GuessRepo:       guesses,
		PuzzleRepo:      puzzles,
		HistoryRepo:     history,
		MoodService:     moodSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create achievement service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		GuessRepo:          guesses,
		PuzzleRepo:         puzzles,
		PlayerRepo:         players,
		MoodService:        moodSvc,
		AchievementService: achievementSvc,
		Matcher:            wordmatch.New(&wordmatch.Config{}),
		Oracle:             answerOracle,
		Celebration:        celebration.NewStatic(),
		Clock:              systemClock,
		UUIDGenerator:      uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	duelSvc, err := duelService.New(&duelService.Config{
		DuelRepo:      duels,
		PuzzleRepo:    puzzles,
		PlayerRepo:    players,
		GameService:   gameSvc,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create duel service: %v", err)
	}

	leaderboardSvc, err := leaderboardService.New(&leaderboardService.Config{
		LeaderboardRepo: boards,
		GuessRepo:       guesses,
		PuzzleRepo:      puzzles,
		PlayerRepo:      players,
	})
	if err != nil {
		log.Fatalf("Failed to create leaderboard service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:              cfg.DiscordToken,
		ApplicationID:      cfg.ApplicationID,
		GuildID:            cfg.GuildID,
		GameService:        gameSvc,
		DuelService:        duelSvc,
		LeaderboardService: leaderboardSvc,
		AchievementService: achievementSvc,
		MessagingService:   messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the weekly cadence driver
	sched, err := scheduler.New(&scheduler.Config{
		GameService:        gameSvc,
		DuelService:        duelSvc,
		LeaderboardService: leaderboardSvc,
		MoodService:        moodSvc,
		PlayerRepo:         players,
		PuzzleRepo:         puzzles,
		GuessRepo:          guesses,
		Clock:              systemClock,
		Interval:           cfg.RotationInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	schedCtx, stopScheduler := context.WithCancel(context.Background())
	go sched.Run(schedCtx)

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stopScheduler()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// seedPuzzle is the JSON shape of one entry in the puzzles file
type seedPuzzle struct {
	ID        string    `json:"id"`
	Clue      string    `json:"clue"`
	Answer    string    `json:"answer"`
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
}

// seedPuzzles loads puzzles from a JSON file. SavePuzzle is an upsert,
// so re-seeding the same file is harmless.
func seedPuzzles(ctx context.Context, repo puzzleRepo.Repository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzles file: %w", err)
	}

	var entries []seedPuzzle
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse puzzles file: %w", err)
	}

	for _, e := range entries {
		if e.ID == "" || e.Answer == "" {
			return fmt.Errorf("puzzle entry missing id or answer")
		}
		weekEnd := e.WeekEnd
		if weekEnd.IsZero() {
			weekEnd = e.WeekStart.Add(7 * 24 * time.Hour)
		}
		err := repo.SavePuzzle(ctx, &puzzleRepo.SavePuzzleInput{
			Puzzle: &models.Puzzle{
				ID:        e.ID,
				Clue:      e.Clue,
				Answer:    e.Answer,
				WeekStart: e.WeekStart,
				WeekEnd:   weekEnd,
				CreatedAt: time.Now(),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to save puzzle %s: %w", e.ID, err)
		}
	}

	log.Printf("Seeded %d puzzles from %s", len(entries), path)
	return nil
}
