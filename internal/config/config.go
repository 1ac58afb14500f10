package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ServicesViewTiles    = "tiles"
	ServicesViewList     = "list"
	ServicesViewCarousel = "carousel"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Site Meta
	SiteName string
	SiteURL  string

	// Contact
	ContactEmail        string
	ContactRelayURL     string
	ContactRelayTimeout time.Duration
	ContactRelayRPS     int

	// Redis
	EnableCache  bool
	RedisURL     string
	PageCacheTTL time.Duration

	// CORS
	CORSOrigins []string

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int
	RateLimitBurst    int

	// Features
	EnableMetrics bool

	// Layout
	ServicesView string
	ShowUseCases bool
	ShowTools    bool
	ShowFAQ      bool
}

// New reads configuration from the environment and an optional config.yaml
// in the working directory. An unreadable config file is skipped; callers
// check Validate before serving.
func New() *Config {
	cfg, err := Load("")
	if err != nil && cfg == nil {
		cfg, _ = fromViper(newViper())
	}
	return cfg
}

// Load reads configuration with an explicit config file. An empty path
// searches the working directory and tolerates a missing file.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "")

	v.SetDefault("SITE_NAME", "Aivanta")
	v.SetDefault("SITE_URL", "http://localhost:8080")

	v.SetDefault("CONTACT_EMAIL", "tristan.distelmans@gmail.com")
	v.SetDefault("CONTACT_RELAY_URL", "")
	v.SetDefault("CONTACT_RELAY_TIMEOUT", "15s")
	v.SetDefault("CONTACT_RELAY_RPS", 2)

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("REDIS_URL", "localhost:6379")
	v.SetDefault("PAGE_CACHE_TTL", "5m")

	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")

	v.SetDefault("RATE_LIMIT_REQUESTS", 5)
	v.SetDefault("RATE_LIMIT_WINDOW", 60)
	v.SetDefault("RATE_LIMIT_BURST", 3)

	v.SetDefault("ENABLE_METRICS", true)

	v.SetDefault("SERVICES_VIEW", ServicesViewTiles)
	v.SetDefault("SHOW_USE_CASES", true)
	v.SetDefault("SHOW_TOOLS", true)
	v.SetDefault("SHOW_FAQ", true)
}

func fromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		Port:        v.GetString("PORT"),
		Environment: strings.ToLower(v.GetString("ENVIRONMENT")),
		LogLevel:    v.GetString("LOG_LEVEL"),

		SiteName: v.GetString("SITE_NAME"),
		SiteURL:  strings.TrimRight(v.GetString("SITE_URL"), "/"),

		ContactEmail:        v.GetString("CONTACT_EMAIL"),
		ContactRelayURL:     v.GetString("CONTACT_RELAY_URL"),
		ContactRelayTimeout: v.GetDuration("CONTACT_RELAY_TIMEOUT"),
		ContactRelayRPS:     v.GetInt("CONTACT_RELAY_RPS"),

		EnableCache:  v.GetBool("ENABLE_CACHE"),
		RedisURL:     v.GetString("REDIS_URL"),
		PageCacheTTL: v.GetDuration("PAGE_CACHE_TTL"),

		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		RateLimitRequests: v.GetInt("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:   v.GetInt("RATE_LIMIT_WINDOW"),
		RateLimitBurst:    v.GetInt("RATE_LIMIT_BURST"),

		EnableMetrics: v.GetBool("ENABLE_METRICS"),

		ServicesView: strings.ToLower(strings.TrimSpace(v.GetString("SERVICES_VIEW"))),
		ShowUseCases: v.GetBool("SHOW_USE_CASES"),
		ShowTools:    v.GetBool("SHOW_TOOLS"),
		ShowFAQ:      v.GetBool("SHOW_FAQ"),
	}

	if c.ContactRelayURL == "" && c.ContactEmail != "" {
		c.ContactRelayURL = "https://formsubmit.co/ajax/" + c.ContactEmail
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
		if c.IsProduction() {
			c.LogLevel = "info"
		}
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch c.ServicesView {
	case ServicesViewTiles, ServicesViewList, ServicesViewCarousel:
	default:
		errs = append(errs, fmt.Errorf("SERVICES_VIEW must be tiles, list or carousel, got %q", c.ServicesView))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is empty"))
	}
	if c.ContactRelayTimeout <= 0 {
		errs = append(errs, errors.New("CONTACT_RELAY_TIMEOUT must be positive"))
	}
	if len(c.CORSOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ORIGINS must list at least one origin"))
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
