package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MaxBatchSize is the hard ceiling on URLs per session. The configured
// batch_max_size is clamped to it.
const MaxBatchSize = 10

// Config represents the application configuration
type Config struct {
	OutputBase          string        `yaml:"output_base"`
	FilenameMaxLength   int           `yaml:"filename_max_length"`
	BatchMaxSize        int           `yaml:"batch_max_size"`
	IncludeLinksDefault bool          `yaml:"include_links_default"`
	SubfolderBy         string        `yaml:"subfolder_by"`
	Logging             LoggingConfig `yaml:"logging"`
	Paths               PathsConfig   `yaml:"paths"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// PathsConfig holds custom path overrides
type PathsConfig struct {
	YtDlp string `yaml:"yt_dlp"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		OutputBase:          "~/transcripts",
		FilenameMaxLength:   50,
		BatchMaxSize:        MaxBatchSize,
		IncludeLinksDefault: true,
		SubfolderBy:         "author",
		Logging:             LoggingConfig{Level: "info"},
	}
}

// AppDir returns the application directory (~/.yt-transcriber)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".yt-transcriber"
	}
	return filepath.Join(home, ".yt-transcriber")
}

// TempDir returns the directory for transient yt-dlp output
func TempDir() string {
	return filepath.Join(AppDir(), "tmp")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	for _, dir := range []string{AppDir(), TempDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns defaults if the file does not
// exist. A file that exists but cannot be parsed or validated is a
// startup error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}

// Validate checks option values and fills fallbacks. The batch size is
// clamped to MaxBatchSize rather than rejected.
func (c *Config) Validate() error {
	if c.OutputBase == "" {
		return fmt.Errorf("output_base is required")
	}
	if c.FilenameMaxLength <= 0 {
		c.FilenameMaxLength = 50
	}
	if c.BatchMaxSize <= 0 || c.BatchMaxSize > MaxBatchSize {
		c.BatchMaxSize = MaxBatchSize
	}
	if c.SubfolderBy == "" {
		c.SubfolderBy = "author"
	}
	if c.SubfolderBy != "author" {
		return fmt.Errorf("unsupported subfolder_by: %s (only \"author\")", c.SubfolderBy)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}
