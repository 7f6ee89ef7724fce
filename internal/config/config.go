package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string

	// Presentation
	Theme      string
	ForceColor bool
	NoColor    bool

	// Seed
	SeedFile string

	// Logging. An empty LogFile disables logging; the TUI owns the terminal.
	LogLevel string
	LogFile  string
}

func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("TODO_ENV", "development"),
		Theme:       getEnv("TODO_THEME", "classic"),
		ForceColor:  getEnvAsBool("TODO_FORCE_COLOR", false),
		NoColor:     os.Getenv("NO_COLOR") != "",
		SeedFile:    getEnv("TODO_SEED_FILE", ""),
		LogLevel:    getEnv("TODO_LOG_LEVEL", "info"),
		LogFile:     getEnv("TODO_LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// BindFlags registers the root flags that override the environment.
// Parsed values land in c; call Validate after fs.Parse.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Theme, "theme", c.Theme, "classic, neon or mono")
	fs.StringVar(&c.SeedFile, "seed", c.SeedFile, "JSON seed file")
	fs.BoolVar(&c.ForceColor, "color", c.ForceColor, "force colour output")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colour output")
}

func (c *Config) Validate() error {
	c.Theme = strings.ToLower(c.Theme)
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme: %s (valid: classic, neon, mono)", c.Theme)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}

	if c.ForceColor && c.NoColor {
		return fmt.Errorf("forced colour (-color, TODO_FORCE_COLOR) and -no-color/NO_COLOR are mutually exclusive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
