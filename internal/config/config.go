package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents reflow configuration options.
// The line width is deliberately absent: it is always a command-line argument.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ChunkSize is the number of bytes requested from the input per read
	ChunkSize int `yaml:"chunk_size"`

	// FileMode is the permission mode of files written in directory mode
	FileMode os.FileMode `yaml:"-"`

	// Lock guards directory mode with a lock file so two runs never
	// rewrite the same directory at once
	Lock bool `yaml:"lock"`

	// Summary logs a per-directory summary after directory mode
	Summary bool `yaml:"summary"`

	// Extensions restricts directory mode to these file extensions (empty = all)
	Extensions []string `yaml:"extensions"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		ChunkSize:  4096,
		FileMode:   0644,
		Lock:       true,
		Summary:    true,
		Extensions: nil,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use a temporary struct to handle file mode parsing
	type yamlConfig struct {
		LogLevel   string   `yaml:"log_level"`
		ChunkSize  int      `yaml:"chunk_size"`
		FileMode   string   `yaml:"file_mode"`
		Lock       bool     `yaml:"lock"`
		Summary    bool     `yaml:"summary"`
		Extensions []string `yaml:"extensions"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.ChunkSize != 0 {
		cfg.ChunkSize = yamlCfg.ChunkSize
	}
	if yamlCfg.FileMode != "" {
		mode, err := ParseFileMode(yamlCfg.FileMode)
		if err != nil {
			return nil, err
		}
		cfg.FileMode = mode
	}
	if len(yamlCfg.Extensions) > 0 {
		cfg.Extensions = yamlCfg.Extensions
	}

	// Booleans default to true, so only an explicit key may change them
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["lock"]; exists {
			cfg.Lock = yamlCfg.Lock
		}
		if _, exists := rawMap["summary"]; exists {
			cfg.Summary = yamlCfg.Summary
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .reflow/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".reflow", "config.yaml")
	return LoadConfig(configPath)
}

// ParseFileMode parses an octal permission string such as "0644" or "600".
func ParseFileMode(s string) (os.FileMode, error) {
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file_mode %q: must be octal, e.g. 0644", s)
	}
	if mode > 0777 {
		return 0, fmt.Errorf("invalid file_mode %q: only permission bits are allowed", s)
	}
	return os.FileMode(mode), nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel *string, chunkSize *int, lock *bool, summary *bool, extensions []string) {
	if logLevel != nil {
		// Levels are case-insensitive, like the logger's
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if chunkSize != nil {
		c.ChunkSize = *chunkSize
	}
	if lock != nil {
		c.Lock = *lock
	}
	if summary != nil {
		c.Summary = *summary
	}
	if len(extensions) > 0 {
		c.Extensions = extensions
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be >= 1, got %d", c.ChunkSize)
	}

	if c.FileMode&^os.ModePerm != 0 {
		return fmt.Errorf("file_mode must only contain permission bits, got %v", c.FileMode)
	}
	if c.FileMode&0200 == 0 {
		return fmt.Errorf("file_mode %#o must be writable by the owner", uint32(c.FileMode))
	}

	return nil
}
