package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend   *string
	DataDir   *string
	DataFile  *string
	OnCorrupt *string

	// Validation overrides
	DescriptionMaxLength *int

	// Search overrides
	CaseSensitive *bool

	// Chat overrides
	ChatAddr        *string
	ShutdownTimeout *time.Duration

	// Application overrides
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.DataFile != nil {
		config.Storage.Filename = *overrides.DataFile
	}
	if overrides.OnCorrupt != nil {
		config.Storage.OnCorrupt = *overrides.OnCorrupt
	}

	if overrides.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}

	if overrides.CaseSensitive != nil {
		config.Search.CaseSensitive = *overrides.CaseSensitive
	}

	if overrides.ChatAddr != nil {
		config.Chat.Addr = *overrides.ChatAddr
	}
	if overrides.ShutdownTimeout != nil {
		config.Chat.ShutdownTimeout = *overrides.ShutdownTimeout
	}

	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
