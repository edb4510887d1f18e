package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Corrupt record policies applied when loading saved tasks
const (
	OnCorruptSkip  = "skip"
	OnCorruptReset = "reset"
)

// Config holds all configuration options for the task assistant
type Config struct {
	Storage     StorageConfig
	Validation  ValidationConfig
	Search      SearchConfig
	Chat        ChatConfig
	Application ApplicationConfig
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend        string `env:"DUKE_STORAGE_BACKEND"`
	Dir            string `env:"DUKE_DATA_DIR"`
	Filename       string `env:"DUKE_DATA_FILE"`
	DirPermissions uint32 `env:"DUKE_DATA_DIR_PERMISSIONS"`
	OnCorrupt      string `env:"DUKE_ON_CORRUPT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `env:"DUKE_VALIDATION_DESCRIPTION_MAX"`
}

// SearchConfig holds find command configuration
type SearchConfig struct {
	CaseSensitive bool `env:"DUKE_SEARCH_CASE_SENSITIVE"`
}

// ChatConfig holds configuration for the chat front end
type ChatConfig struct {
	Addr            string        `env:"DUKE_CHAT_ADDR"`
	ShutdownTimeout time.Duration `env:"DUKE_CHAT_SHUTDOWN_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"DUKE_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:        BackendFile,
			Dir:            "data",
			Filename:       "",
			DirPermissions: 0755,
			OnCorrupt:      OnCorruptSkip,
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 255,
		},
		Search: SearchConfig{
			CaseSensitive: false,
		},
		Chat: ChatConfig{
			Addr:            "127.0.0.1:8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetDataPath returns the full path to the saved tasks, with a backend-specific default filename
func (c *Config) GetDataPath() string {
	filename := c.Storage.Filename
	if filename == "" {
		filename = defaultFilename(c.Storage.Backend)
	}
	return filepath.Join(c.Storage.Dir, filename)
}

func defaultFilename(backend string) string {
	if backend == BackendSQLite {
		return "duke.db"
	}
	return "savedTasks.txt"
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("DUKE_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("DUKE_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("DUKE_DATA_FILE"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("DUKE_DATA_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}
	if policy := os.Getenv("DUKE_ON_CORRUPT"); policy != "" {
		c.Storage.OnCorrupt = policy
	}

	// Validation configuration
	if maxLen := os.Getenv("DUKE_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}

	// Search configuration
	if caseSensitive := os.Getenv("DUKE_SEARCH_CASE_SENSITIVE"); caseSensitive != "" {
		if b, err := strconv.ParseBool(caseSensitive); err == nil {
			c.Search.CaseSensitive = b
		}
	}

	// Chat configuration
	if addr := os.Getenv("DUKE_CHAT_ADDR"); addr != "" {
		c.Chat.Addr = addr
	}
	if timeout := os.Getenv("DUKE_CHAT_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Chat.ShutdownTimeout = d
		}
	}

	// Application configuration
	if verbose := os.Getenv("DUKE_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Backend != BackendFile && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "storage backend must be file or sqlite"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.OnCorrupt != OnCorruptSkip && c.Storage.OnCorrupt != OnCorruptReset {
		return &ConfigError{Field: "storage.on_corrupt", Message: "corrupt record policy must be skip or reset"}
	}

	// Validate validation configuration
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	// Validate chat configuration
	if c.Chat.Addr == "" {
		return &ConfigError{Field: "chat.addr", Message: "chat address cannot be empty"}
	}
	if c.Chat.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "chat.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
