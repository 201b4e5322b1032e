// Package config loads server and CLI settings from a TOML file with
// RENTAL_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	AMQP     AMQPConfig     `toml:"amqp"`
	Log      LogConfig      `toml:"log"`

	// Owners is the closed set of co-owners in enumeration order. The first
	// owner is the default collector of newly paid rent.
	Owners   []string     `toml:"owners"`
	Currency string       `toml:"currency"`
	Units    []UnitConfig `toml:"units"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type DatabaseConfig struct {
	// Backend is "sqlite" or "memory".
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  string `toml:"token_ttl"`
}

// AMQPConfig enables period-changed notifications when URL is set.
type AMQPConfig struct {
	URL        string `toml:"url"`
	Exchange   string `toml:"exchange"`
	RoutingKey string `toml:"routing_key"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// UnitConfig is a default unit created by the seed operation.
type UnitConfig struct {
	Name     string `toml:"name"`
	BaseRent string `toml:"base_rent"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Backend: "sqlite",
			Path:    "./data/rental.db",
		},
		Auth: AuthConfig{
			JWTSecret: "dev-secret-key-change-in-production",
			TokenTTL:  "24h",
		},
		AMQP: AMQPConfig{
			Exchange:   "rental",
			RoutingKey: "period.changed",
		},
		Log:      LogConfig{Level: "info"},
		Owners:   []string{"Anjaneyulu", "Srinivas", "Goutham"},
		Currency: "INR",
		Units: []UnitConfig{
			{Name: "Medical Shop", BaseRent: "55000"},
			{Name: "Sham Home", BaseRent: "63000"},
			{Name: "Brown Bear", BaseRent: "45000"},
			{Name: "Dental", BaseRent: "13000"},
			{Name: "Gym", BaseRent: "45000"},
			{Name: "Bhavya Clinic", BaseRent: "10500"},
		},
	}
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		// Arrays in the file replace the default owners and units
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Host = getEnv("RENTAL_HOST", c.Server.Host)
	if v := os.Getenv("RENTAL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RENTAL_PORT %q: must be a number", v)
		}
		c.Server.Port = port
	}
	c.Database.Backend = getEnv("RENTAL_DB_BACKEND", c.Database.Backend)
	c.Database.Path = getEnv("RENTAL_DB_PATH", c.Database.Path)
	c.Auth.JWTSecret = getEnv("RENTAL_JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.TokenTTL = getEnv("RENTAL_TOKEN_TTL", c.Auth.TokenTTL)
	c.AMQP.URL = getEnv("RENTAL_AMQP_URL", c.AMQP.URL)
	c.AMQP.Exchange = getEnv("RENTAL_AMQP_EXCHANGE", c.AMQP.Exchange)
	c.AMQP.RoutingKey = getEnv("RENTAL_AMQP_ROUTING_KEY", c.AMQP.RoutingKey)
	c.Log.Level = getEnv("RENTAL_LOG_LEVEL", c.Log.Level)
	c.Currency = getEnv("RENTAL_CURRENCY", c.Currency)
	if v := os.Getenv("RENTAL_OWNERS"); v != "" {
		var owners []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				owners = append(owners, o)
			}
		}
		c.Owners = owners
	}
	return nil
}

// Address is the host:port the server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// OwnerSet builds the owner set from Owners.
func (c *Config) OwnerSet() (models.OwnerSet, error) {
	return models.NewOwnerSet(c.Owners...)
}

// TokenDuration parses Auth.TokenTTL.
func (c *Config) TokenDuration() (time.Duration, error) {
	return time.ParseDuration(c.Auth.TokenTTL)
}

// DefaultUnits converts Units into models, without IDs.
func (c *Config) DefaultUnits() ([]models.Unit, error) {
	units := make([]models.Unit, 0, len(c.Units))
	for _, u := range c.Units {
		rent, err := calculator.ParseAmount(u.BaseRent)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", u.Name, err)
		}
		units = append(units, models.Unit{Name: u.Name, BaseRent: rent})
	}
	return units, nil
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Server.Port))
	}

	switch c.Database.Backend {
	case "memory":
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database path cannot be empty when using sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid database backend '%s': must be one of [memory sqlite]", c.Database.Backend))
	}

	if c.Auth.JWTSecret == "" {
		problems = append(problems, "JWT secret cannot be empty")
	}
	if ttl, err := time.ParseDuration(c.Auth.TokenTTL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid token TTL '%s': %v", c.Auth.TokenTTL, err))
	} else if ttl <= 0 {
		problems = append(problems, fmt.Sprintf("invalid token TTL %v: must be positive", ttl))
	}

	if _, err := c.OwnerSet(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid owners: %v", err))
	}

	if c.Currency == "" {
		problems = append(problems, "currency cannot be empty")
	}

	seen := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		if strings.TrimSpace(u.Name) == "" {
			problems = append(problems, "default unit name cannot be empty")
			continue
		}
		if seen[u.Name] {
			problems = append(problems, fmt.Sprintf("duplicate default unit '%s'", u.Name))
		}
		seen[u.Name] = true
		if _, err := calculator.ParseAmount(u.BaseRent); err != nil {
			problems = append(problems, fmt.Sprintf("invalid base rent '%s' for unit '%s'", u.BaseRent, u.Name))
		}
	}

	if c.AMQP.URL != "" {
		if parsedURL, err := url.Parse(c.AMQP.URL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQP.URL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQP.Exchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQP.RoutingKey == "" {
			problems = append(problems, "AMQP routing key cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed:\n- " + strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
