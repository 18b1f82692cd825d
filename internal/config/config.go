package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the bot reads from the environment
type Config struct {
	// RedisAddr is the host:port of the Redis instance
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis auth password, empty for none
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis logical database number
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// DiscordToken is the bot token
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`

	// ApplicationID is the Discord application ID used for command
	// registration
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID scopes command registration to one guild; empty registers
	// globally
	GuildID string `env:"GUILD_ID"`

	// OracleURL is the semantic validation endpoint; empty falls back
	// to exact matching only
	OracleURL string `env:"ORACLE_URL"`

	// OracleTimeout bounds a single oracle call
	OracleTimeout time.Duration `env:"ORACLE_TIMEOUT" envDefault:"5s"`

	// PuzzlesFile is a JSON file of puzzles to seed at startup; empty
	// skips seeding
	PuzzlesFile string `env:"PUZZLES_FILE"`

	// RotationInterval is how often the scheduler checks for an ended
	// puzzle week
	RotationInterval time.Duration `env:"ROTATION_INTERVAL" envDefault:"1h"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
