package config

import (
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

const (
	DefaultConfigFile = "config.json"
	DefaultAPIURL     = "https://api.telegram.org"
)

// AppConfig holds the options shared by every command.
type AppConfig struct {
	LogLevel    string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level (debug, info, warn, error)"`
	Environment string `long:"environment" env:"ENVIRONMENT" default:"development" description:"Environment name; production and staging log JSON"`
	ConfigFile  string `long:"config" env:"RELAY_CONFIG_FILE" default:"config.json" description:"File holding the saved bot token and chat id"`
	APIURL      string `long:"api-url" env:"TELEGRAM_API_URL" default:"https://api.telegram.org" description:"Telegram Bot API base URL"`
}

// NewParser loads .env (if present) and returns a parser bound to cfg.
// Commands are registered on the returned parser by the caller.
func NewParser(cfg *AppConfig) *flags.Parser {
	// godotenv.Load does not override variables that are already set.
	_ = godotenv.Load()
	return flags.NewParser(cfg, flags.Default)
}

// Normalize lower-cases enumerated values and fills in defaults for fields
// left empty, e.g. by an explicitly empty environment variable.
func (c *AppConfig) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.ConfigFile = strings.TrimSpace(c.ConfigFile)
	if c.ConfigFile == "" {
		c.ConfigFile = DefaultConfigFile
	}
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
}
