package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFixture(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaultsWhenNothingConfigured(t *testing.T) {
	cfg, err := Load(LoadOptions{
		ConfigFile:  filepath.Join(t.TempDir(), "missing.toml"),
		Environment: map[string]string{},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.GameConfig{InitialScore: DefaultInitialScore, APIBaseURL: DefaultAPIBaseURL}, cfg.Game)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Source)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := writeConfigFixture(t, `version = 1

[game]
initial_score = 15
api_base_url = "https://guess.example.com"

[log]
level = "debug"
`)

	cfg, err := Load(LoadOptions{ConfigFile: path, Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Game.InitialScore)
	assert.Equal(t, "https://guess.example.com", cfg.Game.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFixture(t, `[game]
initial_score = 15
api_base_url = "https://guess.example.com"
`)

	tests := []struct {
		name      string
		env       map[string]string
		wantScore int
		wantURL   string
	}{
		{
			name:      "file only",
			env:       map[string]string{},
			wantScore: 15,
			wantURL:   "https://guess.example.com",
		},
		{
			name:      "legacy names",
			env:       map[string]string{"REACT_APP_MAX_SCORE": "10", "REACT_APP_API_BASE_URL": "http://legacy:3001"},
			wantScore: 10,
			wantURL:   "http://legacy:3001",
		},
		{
			name: "gmn names win over legacy",
			env: map[string]string{
				"REACT_APP_MAX_SCORE": "10",
				"GMN_INITIAL_SCORE":   "7",
				"GMN_API_BASE_URL":    "http://oracle:9000",
			},
			wantScore: 7,
			wantURL:   "http://oracle:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(LoadOptions{ConfigFile: path, Environment: tt.env})
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, cfg.Game.InitialScore)
			assert.Equal(t, tt.wantURL, cfg.Game.APIBaseURL)
		})
	}
}

func TestLoadRejectsNonNumericScore(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile:  filepath.Join(t.TempDir(), "missing.toml"),
		Environment: map[string]string{"GMN_INITIAL_SCORE": "lots"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadRejectsNewerSchemaVersion(t *testing.T) {
	path := writeConfigFixture(t, "version = 9\n")

	_, err := Load(LoadOptions{ConfigFile: path, Environment: map[string]string{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 9")
}

func TestLoadDotEnvFile(t *testing.T) {
	dotEnv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotEnv, []byte("GMN_INITIAL_SCORE=12\n"), 0o600))
	t.Setenv("GMN_INITIAL_SCORE", "")
	require.NoError(t, os.Unsetenv("GMN_INITIAL_SCORE"))

	cfg, err := Load(LoadOptions{
		ConfigFile:  filepath.Join(t.TempDir(), "missing.toml"),
		DotEnvFiles: []string{dotEnv, filepath.Join(t.TempDir(), "absent.env")},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Game.InitialScore)
}

func TestWriteFileThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		Game:     domain.GameConfig{InitialScore: 8, APIBaseURL: "https://guess.example.com/api"},
		LogLevel: "info",
	}

	require.NoError(t, WriteFile(path, want, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.Game, got.Game)
	assert.Equal(t, "info", got.LogLevel)

	loaded, err := Load(LoadOptions{ConfigFile: path, Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, want.Game, loaded.Game)
}

func TestWriteFileRefusesToOverwrite(t *testing.T) {
	path := writeConfigFixture(t, "version = 1\n")

	err := WriteFile(path, Defaults(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, WriteFile(path, Defaults(), true))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultInitialScore, got.Game.InitialScore)
}

func TestWriteFileValidatesGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	err := WriteFile(path, Config{Game: domain.GameConfig{InitialScore: 0, APIBaseURL: DefaultAPIBaseURL}}, false)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
