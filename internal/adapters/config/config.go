package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultInitialScore = 20
	DefaultAPIBaseURL   = "http://localhost:8080"
	DefaultLogLevel     = "warn"

	configName = "config"
	configType = "toml"
	configDir  = "gmn"

	versionKey      = "version"
	initialScoreKey = "game.initial_score"
	apiBaseURLKey   = "game.api_base_url"
	logLevelKey     = "log.level"
)

type Config struct {
	Game     domain.GameConfig `json:"game"`
	LogLevel string            `json:"log_level"`
	// Source is the config file that was read, empty when none was found.
	Source string `json:"source,omitempty"`
}

type LoadOptions struct {
	// ConfigFile overrides the default search path when set.
	ConfigFile string
	// DotEnvFiles are loaded before the environment is read. Missing files are ignored.
	DotEnvFiles []string
	// Environment replaces os.Environ when non-nil.
	Environment map[string]string
}

type envOverrides struct {
	InitialScore *int    `env:"GMN_INITIAL_SCORE"`
	APIBaseURL   *string `env:"GMN_API_BASE_URL"`
	LogLevel     *string `env:"GMN_LOG_LEVEL"`
}

// legacyEnv accepts the variable names of the original web client.
type legacyEnv struct {
	MaxScore   *int    `env:"REACT_APP_MAX_SCORE"`
	APIBaseURL *string `env:"REACT_APP_API_BASE_URL"`
}

// Load resolves configuration from defaults, the TOML config file and the
// environment, in increasing order of precedence.
func Load(opts LoadOptions) (Config, error) {
	if err := loadDotEnv(opts.DotEnvFiles); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault(initialScoreKey, DefaultInitialScore)
	v.SetDefault(apiBaseURLKey, DefaultAPIBaseURL)
	v.SetDefault(logLevelKey, DefaultLogLevel)
	v.SetConfigType(configType)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	cfg := Config{}
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !(opts.ConfigFile != "" && errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		cfg.Source = v.ConfigFileUsed()
	}

	if version := v.GetInt(versionKey); version > currentSchemaVersion {
		return Config{}, (fileSchema{Version: version}).validateVersion()
	}

	cfg.Game = domain.GameConfig{
		InitialScore: v.GetInt(initialScoreKey),
		APIBaseURL:   v.GetString(apiBaseURLKey),
	}
	cfg.LogLevel = v.GetString(logLevelKey)

	if err := applyEnv(&cfg, opts.Environment); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config, environment map[string]string) error {
	envOpts := env.Options{Environment: environment}

	var legacy legacyEnv
	if err := env.ParseWithOptions(&legacy, envOpts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if legacy.MaxScore != nil {
		cfg.Game.InitialScore = *legacy.MaxScore
	}
	if legacy.APIBaseURL != nil {
		cfg.Game.APIBaseURL = *legacy.APIBaseURL
	}

	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, envOpts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.InitialScore != nil {
		cfg.Game.InitialScore = *overrides.InitialScore
	}
	if overrides.APIBaseURL != nil {
		cfg.Game.APIBaseURL = *overrides.APIBaseURL
	}
	if overrides.LogLevel != nil {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

func loadDotEnv(files []string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	return filepath.Join(base, configDir), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configName+"."+configType), nil
}

func Defaults() Config {
	return Config{
		Game: domain.GameConfig{
			InitialScore: DefaultInitialScore,
			APIBaseURL:   DefaultAPIBaseURL,
		},
		LogLevel: DefaultLogLevel,
	}
}
