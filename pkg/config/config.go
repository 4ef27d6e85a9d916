package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	LLM struct {
		APIKey       string        `yaml:"api_key"`
		MacroModel   string        `yaml:"macro_model"`
		SummaryModel string        `yaml:"summary_model"`
		Temperature  float64       `yaml:"temperature"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"llm"`
	News struct {
		Source     string        `yaml:"source"` // yahoo or finnhub
		FeedURL    string        `yaml:"feed_url"`
		Region     string        `yaml:"region"`
		Lang       string        `yaml:"lang"`
		Limit      int           `yaml:"limit"`
		MaxSummary int           `yaml:"max_summary"`
		APIKey     string        `yaml:"api_key"` // finnhub only
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"news"`
	Prices struct {
		BaseURL      string        `yaml:"base_url"`
		LookbackDays int           `yaml:"lookback_days"`
		Interval     string        `yaml:"interval"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"prices"`
	Email struct {
		APIKey  string        `yaml:"api_key"`
		From    string        `yaml:"from"`
		Subject string        `yaml:"subject"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"email"`
	Tickers struct {
		IndexURL string        `yaml:"index_url"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"tickers"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// The two API credentials are secrets and normally arrive only via the
// environment; the email key may stay empty until send time.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		c.Email.APIKey = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.News.APIKey = v
	}
	if v := os.Getenv("NEWS_SOURCE"); v != "" {
		c.News.Source = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.News.Source != "yahoo" && c.News.Source != "finnhub" {
		return fmt.Errorf("news.source must be 'yahoo' or 'finnhub', got '%s'", c.News.Source)
	}
	if c.News.Source == "yahoo" && c.News.FeedURL == "" {
		return fmt.Errorf("news.feed_url is required for the yahoo source")
	}
	if c.Prices.BaseURL == "" {
		return fmt.Errorf("prices.base_url is required")
	}
	if c.Prices.LookbackDays <= 0 {
		return fmt.Errorf("prices.lookback_days must be positive")
	}
	if c.Email.From == "" {
		return fmt.Errorf("email.from is required")
	}
	return nil
}
