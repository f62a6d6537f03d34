package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/guess-my-number-cli/internal/adapters/config"
	oraclehttp "github.com/bnema/guess-my-number-cli/internal/adapters/oracle/http"
	sessionrender "github.com/bnema/guess-my-number-cli/internal/adapters/render/session"
	"github.com/bnema/guess-my-number-cli/internal/application"
	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/bnema/guess-my-number-cli/internal/logging"
	"github.com/spf13/cobra"
)

const oracleRequestTimeout = 10 * time.Second

type app struct {
	controller *application.SessionController
	renderer   func(domain.SessionState, sessionrender.RenderOptions) (string, error)
}

type globalFlags struct {
	configFile   string
	initialScore int
	apiBaseURL   string
	logLevel     string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/gmn/config.toml)")
	cmd.PersistentFlags().IntVar(&f.initialScore, "initial-score", config.DefaultInitialScore, "Score a new game starts with")
	cmd.PersistentFlags().StringVar(&f.apiBaseURL, "api-base-url", config.DefaultAPIBaseURL, "Base URL of the game service")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// resolveConfig layers explicitly set flags over file and environment config.
func resolveConfig(cmd *cobra.Command, f *globalFlags) (config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile:  f.configFile,
		DotEnvFiles: []string{".env"},
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("initial-score") {
		cfg.Game.InitialScore = f.initialScore
	}
	if flags.Changed("api-base-url") {
		cfg.Game.APIBaseURL = f.apiBaseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	return cfg, nil
}

func wireApp(cmd *cobra.Command, f *globalFlags) (*app, error) {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return nil, err
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	oracle := oraclehttp.Client{
		BaseURL:        cfg.Game.APIBaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: oracleRequestTimeout,
	}

	return &app{
		controller: application.NewSessionController(cfg.Game, oracle, application.WithLogger(logger)),
		renderer:   sessionrender.Render,
	}, nil
}
