package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// ErrMissingBaseURL is returned when no agent base URL is configured.
// The base URL is a fatal startup requirement, not a runtime error.
var ErrMissingBaseURL = errors.New("agent base URL is not configured (set agent.baseURL or VIBE_API_BASE_URL)")

type Config struct {
	Mode   string `mapstructure:"mode"`
	Dotenv string `mapstructure:"dotenv"`
	Agent  struct {
		BaseURL string        `mapstructure:"baseURL"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"agent"`
	Chat struct {
		SupportedCities []string `mapstructure:"supportedCities"`
		DefaultCity     string   `mapstructure:"defaultCity"`
	} `mapstructure:"chat"`
	Search struct {
		CacheEnabled bool          `mapstructure:"cacheEnabled"`
		CacheTTL     time.Duration `mapstructure:"cacheTTL"`
	} `mapstructure:"search"`
	Tour struct {
		MaxVibes int `mapstructure:"maxVibes"`
	} `mapstructure:"tour"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// The base URL can always be supplied out-of-band.
	if err := v.BindEnv("agent.baseURL", "VIBE_API_BASE_URL"); err != nil {
		return Config{}, fmt.Errorf("failed to bind base URL env var: %w", err)
	}

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	if config.Agent.BaseURL == "" {
		return Config{}, ErrMissingBaseURL
	}

	return config, nil
}
