package config

import (
	"testing"

	"github.com/fadedpez/gamefairy/internal/logging"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.T().Setenv("FAIRY_VISIONS", "")
	s.T().Setenv("LOG_LEVEL", "")
	s.T().Setenv("ENVIRONMENT", "")
}

func (s *ConfigTestSuite) TestDefaults() {
	// Execute
	cfg, err := FromEnv()

	// Assert
	s.Require().NoError(err)
	s.Equal("tie", cfg.Visions)
	s.Equal(logging.INFO, cfg.LogLevel)
	s.True(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestOverrides() {
	// Setup
	s.T().Setenv("FAIRY_VISIONS", "win")
	s.T().Setenv("LOG_LEVEL", "debug")
	s.T().Setenv("ENVIRONMENT", "production")

	// Execute
	cfg, err := FromEnv()

	// Assert
	s.Require().NoError(err)
	s.Equal("win", cfg.Visions)
	s.Equal(logging.DEBUG, cfg.LogLevel)
	s.False(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestInvalidLogLevel() {
	// Setup
	s.T().Setenv("LOG_LEVEL", "shouty")

	// Execute
	cfg, err := FromEnv()

	// Assert
	s.Error(err)
	s.Nil(cfg)
}

func (s *ConfigTestSuite) TestInvalidEnvironment() {
	// Setup
	s.T().Setenv("ENVIRONMENT", "staging")

	// Execute
	cfg, err := FromEnv()

	// Assert
	s.ErrorContains(err, "ENVIRONMENT")
	s.Nil(cfg)
}
