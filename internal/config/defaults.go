package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no YAML source can
// be read.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:       engine.DefaultSize,
			StartTiles: 2,
			ProbFour:   engine.DefaultProbFour,
			Target:     2048,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/t2048.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
