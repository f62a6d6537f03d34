package config

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int        `toml:"version"`
	Game    gameSchema `toml:"game"`
	Log     logSchema  `toml:"log"`
}

type gameSchema struct {
	InitialScore int    `toml:"initial_score"`
	APIBaseURL   string `toml:"api_base_url"`
}

type logSchema struct {
	Level string `toml:"level"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Game: gameSchema{
			InitialScore: cfg.Game.InitialScore,
			APIBaseURL:   cfg.Game.APIBaseURL,
		},
		Log: logSchema{Level: cfg.LogLevel},
	}
}
