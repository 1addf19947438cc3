// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vmunix/sharecat/pkg/lang"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validOutputFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Grouping.LogLevel] {
		errs = append(errs, fmt.Sprintf("grouping.log_level: must be one of debug, info, warn, error; got %q", c.Grouping.LogLevel))
	}

	if !validOutputFormats[c.Output.Format] {
		errs = append(errs, fmt.Sprintf("output.format: must be text or json, got %q", c.Output.Format))
	}

	for _, pref := range []struct{ key, value string }{
		{"languages.audio", c.Languages.Audio},
		{"languages.subtitles", c.Languages.Subtitles},
	} {
		if pref.value == "" || strings.EqualFold(pref.value, "disabled") {
			continue
		}
		if lang.SettingToCode(pref.value) == "" {
			errs = append(errs, fmt.Sprintf("%s: unknown language %q", pref.key, pref.value))
		}
	}

	if c.Resolver.Enabled {
		if c.Resolver.CacheTTL < 0 {
			errs = append(errs, fmt.Sprintf("resolver.cache_ttl: must not be negative, got %s", c.Resolver.CacheTTL))
		}
		if c.Resolver.Titles != "" {
			if _, err := os.Stat(c.Resolver.Titles); err != nil {
				errs = append(errs, fmt.Sprintf("resolver.titles: %v", err))
			}
		}
	}

	return errs
}
