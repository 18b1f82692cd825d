package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("DISCORD_TOKEN", "token-123")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("token-123", cfg.DiscordToken)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(0, cfg.RedisDB)
	s.Equal(5*time.Second, cfg.OracleTimeout)
	s.Equal(time.Hour, cfg.RotationInterval)
	s.Empty(cfg.OracleURL)
	s.Empty(cfg.PuzzlesFile)
}

func (s *ConfigTestSuite) TestEmptyTokenFails() {
	s.T().Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("DISCORD_TOKEN", "token-123")
	s.T().Setenv("REDIS_ADDR", "redis.internal:6380")
	s.T().Setenv("ORACLE_URL", "https://oracle.phrazzle.app/validate")
	s.T().Setenv("ROTATION_INTERVAL", "15m")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("redis.internal:6380", cfg.RedisAddr)
	s.Equal("https://oracle.phrazzle.app/validate", cfg.OracleURL)
	s.Equal(15*time.Minute, cfg.RotationInterval)
}
