package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// GameConfig is resolved once at startup and never mutated afterwards.
type GameConfig struct {
	InitialScore int    `json:"initial_score"`
	APIBaseURL   string `json:"api_base_url"`
}

func (c GameConfig) Validate() error {
	if c.InitialScore < 1 {
		return fmt.Errorf("%w: initial score must be at least 1, got %d", ErrInvalidConfig, c.InitialScore)
	}
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("%w: api base url is required", ErrInvalidConfig)
	}

	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("%w: parse api base url: %v", ErrInvalidConfig, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: api base url must use http or https", ErrInvalidConfig)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: api base url host is required", ErrInvalidConfig)
	}

	return nil
}
