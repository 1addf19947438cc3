// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the top-level sharecat configuration.
type Config struct {
	Grouping  GroupingConfig  `toml:"grouping"`
	Resolver  ResolverConfig  `toml:"resolver"`
	Languages LanguagesConfig `toml:"languages"`
	Output    OutputConfig    `toml:"output"`
}

type GroupingConfig struct {
	Movies   bool   `toml:"movies"`
	LogLevel string `toml:"log_level"`
}

type ResolverConfig struct {
	Enabled   bool          `toml:"enabled"`
	CachePath string        `toml:"cache_path"`
	CacheTTL  time.Duration `toml:"cache_ttl"`
	Titles    string        `toml:"titles"`
}

type LanguagesConfig struct {
	Audio     string `toml:"audio"`
	Subtitles string `toml:"subtitles"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied,
// used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Grouping.LogLevel == "" {
		c.Grouping.LogLevel = "info"
	}
	if c.Resolver.CachePath == "" {
		c.Resolver.CachePath = "./data/sharecat.db"
	}
	if c.Resolver.CacheTTL == 0 {
		c.Resolver.CacheTTL = 24 * time.Hour
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
