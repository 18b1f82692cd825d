package achievement

import (
	"time"

	"github.com/phrazzle/phrazzle/internal/models"
)

// playerStats is the snapshot every rule is evaluated against. It is
// recomputed from the guess log on each invocation; rules never read
// storage themselves.
type playerStats struct {
	// TotalSolves is the distinct solved-puzzle count, including the
	// triggering solve
	TotalSolves int

	// TotalGuesses is the lifetime guess count across all puzzles
	TotalGuesses int

	// AvgGuesses is guesses-per-solve over solved puzzles only
	AvgGuesses float64

	// Streak is the current consecutive-week streak
	Streak int

	// QuickSolves counts puzzles solved in three guesses or fewer
	QuickSolves int

	// FirstPlaces counts puzzles where this player solved first,
	// including the triggering solve if it was first
	FirstPlaces int

	// SolveLatency is the time from the puzzle's week start to the
	// correct guess
	SolveLatency time.Duration

	// SolvedAt is when the correct guess was recorded
	SolvedAt time.Time

	// GuessNumber is which guess was the correct one
	GuessNumber int

	// LostStreak is the largest streak a STREAK_BREAK audit entry
	// shows this player previously lost, 0 if none
	LostStreak int
}

// rule pairs a catalog entry with its unlock condition. Threshold rules
// use equality, not >=, so a rule fires in exactly one invocation even
// before the unlock store is consulted.
type rule struct {
	achievement models.Achievement
	unlocks     func(s *playerStats) bool
}

var catalog = []rule{
	// streak milestones
	{
		achievement: models.Achievement{
			Key:         "streak_2",
			Name:        "Back to Back",
			Description: "Solve puzzles two weeks in a row",
			Category:    models.CategoryStreak,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.Streak == 2 },
	},
	{
		achievement: models.Achievement{
			Key:         "streak_5",
			Name:        "Creature of Habit",
			Description: "Keep a five week solve streak",
			Category:    models.CategoryStreak,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.Streak == 5 },
	},
	{
		achievement: models.Achievement{
			Key:         "streak_10",
			Name:        "Double Digits",
			Description: "Keep a ten week solve streak",
			Category:    models.CategoryStreak,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool { return s.Streak == 10 },
	},
	{
		achievement: models.Achievement{
			Key:         "streak_25",
			Name:        "Quarter Year and Change",
			Description: "Keep a twenty-five week solve streak",
			Category:    models.CategoryStreak,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool { return s.Streak == 25 },
	},
	{
		achievement: models.Achievement{
			Key:         "streak_52",
			Name:        "A Full Orbit",
			Description: "Keep a fifty-two week solve streak",
			Category:    models.CategoryStreak,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool { return s.Streak == 52 },
	},

	// solve-count milestones
	{
		achievement: models.Achievement{
			Key:         "solves_1",
			Name:        "First Blood",
			Description: "Solve your first puzzle",
			Category:    models.CategorySolve,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.TotalSolves == 1 },
	},
	{
		achievement: models.Achievement{
			Key:         "solves_5",
			Name:        "Getting the Hang of It",
			Description: "Solve five puzzles",
			Category:    models.CategorySolve,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.TotalSolves == 5 },
	},
	{
		achievement: models.Achievement{
			Key:         "solves_10",
			Name:        "Regular",
			Description: "Solve ten puzzles",
			Category:    models.CategorySolve,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.TotalSolves == 10 },
	},
	{
		achievement: models.Achievement{
			Key:         "solves_25",
			Name:        "Devotee",
			Description: "Solve twenty-five puzzles",
			Category:    models.CategorySolve,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool { return s.TotalSolves == 25 },
	},
	{
		achievement: models.Achievement{
			Key:         "solves_50",
			Name:        "Half Century",
			Description: "Solve fifty puzzles",
			Category:    models.CategorySolve,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool { return s.TotalSolves == 50 },
	},
	{
		achievement: models.Achievement{
			Key:         "solves_100",
			Name:        "Century Club",
			Description: "Solve one hundred puzzles",
			Category:    models.CategorySolve,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool { return s.TotalSolves == 100 },
	},

	// speed
	{
		achievement: models.Achievement{
			Key:         "speed_5m",
			Name:        "Lightning Round",
			Description: "Solve within five minutes of the puzzle going live",
			Category:    models.CategorySpeed,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool {
			return s.SolveLatency >= 0 && s.SolveLatency < 5*time.Minute
		},
	},
	{
		achievement: models.Achievement{
			Key:         "speed_1h",
			Name:        "Quick Draw",
			Description: "Solve within an hour of the puzzle going live",
			Category:    models.CategorySpeed,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool {
			return s.SolveLatency >= 0 && s.SolveLatency < time.Hour
		},
	},
	{
		achievement: models.Achievement{
			Key:         "speed_24h",
			Name:        "Day One",
			Description: "Solve within a day of the puzzle going live",
			Category:    models.CategorySpeed,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool {
			return s.SolveLatency >= 0 && s.SolveLatency < 24*time.Hour
		},
	},
	{
		achievement: models.Achievement{
			Key:         "first_place_1",
			Name:        "Photo Finish",
			Description: "Be the first player to solve a puzzle",
			Category:    models.CategorySpeed,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool { return s.FirstPlaces == 1 },
	},
	{
		achievement: models.Achievement{
			Key:         "first_place_5",
			Name:        "Serial Winner",
			Description: "Be the first solver on five puzzles",
			Category:    models.CategorySpeed,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool { return s.FirstPlaces == 5 },
	},

	// efficiency
	{
		achievement: models.Achievement{
			Key:         "one_guess",
			Name:        "Hole in One",
			Description: "Solve a puzzle on your very first guess",
			Category:    models.CategoryEfficiency,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool { return s.GuessNumber == 1 },
	},
	{
		achievement: models.Achievement{
			Key:         "quick_solves_10",
			Name:        "Economical",
			Description: "Solve ten puzzles in three guesses or fewer",
			Category:    models.CategoryEfficiency,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool { return s.QuickSolves >= 10 },
	},
	{
		achievement: models.Achievement{
			Key:         "low_average",
			Name:        "Surgical",
			Description: "Average two guesses or fewer across ten or more solves",
			Category:    models.CategoryEfficiency,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool {
			return s.TotalSolves >= 10 && s.AvgGuesses <= 2
		},
	},

	// comeback
	{
		achievement: models.Achievement{
			Key:         "back_in_the_game",
			Name:        "Back in the Game",
			Description: "Solve a puzzle after a streak break",
			Category:    models.CategoryComeback,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.LostStreak > 0 },
	},
	{
		achievement: models.Achievement{
			Key:         "phoenix",
			Name:        "Phoenix",
			Description: "Rebuild a streak to match one you previously lost",
			Category:    models.CategoryComeback,
			Tier:        "gold",
		},
		unlocks: func(s *playerStats) bool {
			return s.LostStreak > 0 && s.Streak >= s.LostStreak
		},
	},

	// special
	{
		achievement: models.Achievement{
			Key:         "night_owl",
			Name:        "Night Owl",
			Description: "Solve a puzzle between midnight and five in the morning",
			Category:    models.CategorySpecial,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool {
			h := s.SolvedAt.Hour()
			return h >= 0 && h < 5
		},
	},
	{
		achievement: models.Achievement{
			Key:         "early_bird",
			Name:        "Early Bird",
			Description: "Solve a puzzle between five and eight in the morning",
			Category:    models.CategorySpecial,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool {
			h := s.SolvedAt.Hour()
			return h >= 5 && h < 8
		},
	},
	{
		achievement: models.Achievement{
			Key:         "lucky_seven",
			Name:        "Lucky Seven",
			Description: "Solve a puzzle on exactly your seventh guess",
			Category:    models.CategorySpecial,
			Tier:        "bronze",
		},
		unlocks: func(s *playerStats) bool { return s.GuessNumber == 7 },
	},
	{
		achievement: models.Achievement{
			Key:         "thirteenth_guess",
			Name:        "Triskaidekaphile",
			Description: "???",
			Category:    models.CategorySpecial,
			Tier:        "silver",
			Secret:      true,
		},
		unlocks: func(s *playerStats) bool { return s.GuessNumber == 13 },
	},
	{
		achievement: models.Achievement{
			Key:         "century_of_guesses",
			Name:        "Century of Guesses",
			Description: "Reach one hundred lifetime guesses",
			Category:    models.CategorySpecial,
			Tier:        "silver",
		},
		unlocks: func(s *playerStats) bool { return s.TotalGuesses >= 100 },
	},
}

// catalogByKey indexes the catalog for unlock-record joins
var catalogByKey = func() map[string]*models.Achievement {
	m := make(map[string]*models.Achievement, len(catalog))
	for i := range catalog {
		m[catalog[i].achievement.Key] = &catalog[i].achievement
	}
	return m
}()
