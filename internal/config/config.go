// Package config provides YAML-based configuration loading and named rule
// presets for t2048.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config contains all settings for the t2048 binary.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the rules of a game.
type BoardConfig struct {
	Size       int     `yaml:"size"`
	StartTiles int     `yaml:"start_tiles"`
	ProbFour   float64 `yaml:"prob_four"` // Probability of spawning 4 instead of 2 (0.0-1.0)
	Target     int     `yaml:"target"`    // Tile that counts as a win, 0 for none
}

// StorageConfig defines where scores and game records live.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// EngineConfig converts the board section into engine rules.
func (b BoardConfig) EngineConfig(seed int64) engine.Config {
	return engine.Config{
		Size:       b.Size,
		StartTiles: b.StartTiles,
		ProbFour:   b.ProbFour,
		Target:     b.Target,
		Seed:       seed,
	}
}

// Variant returns the identifier scores are filed under, e.g. "2048" for
// the classic board and "2048-5x5" for other sizes.
func (b BoardConfig) Variant() string {
	if b.Size == engine.DefaultSize {
		return "2048"
	}
	return fmt.Sprintf("2048-%dx%d", b.Size, b.Size)
}

// Validate checks the board rules and the remaining sections.
func (c Config) Validate() error {
	if err := c.Board.EngineConfig(0).Validate(); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server: negative idle timeout %d", c.Server.IdleTimeoutMinutes)
	}
	return nil
}
