package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
)

const (
	// DefaultMetadataFilename is the per-team metadata file the index scans for
	DefaultMetadataFilename = "meta_data.json"
	// DefaultDataset is the dataset rendered when none is requested
	DefaultDataset = "default"
	// DefaultEnvFile is loaded into the environment before configuration
	DefaultEnvFile = "setup.env"
	// PlotDirectoryEnv overrides plot_directory
	PlotDirectoryEnv = "PLOT_DIRECTORY"
)

// Config represents the complete application configuration
type Config struct {
	PlotDirectory    string        `yaml:"plot_directory"`
	MetadataFilename string        `yaml:"metadata_filename"`
	DefaultDataset   string        `yaml:"default_dataset"`
	Server           ServerConfig  `yaml:"server"`
	Site             SiteConfig    `yaml:"site"`
	Export           ExportConfig  `yaml:"export"`
	Logging          LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the live HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SiteConfig holds settings shared by live and frozen pages
type SiteConfig struct {
	Title   string `yaml:"title"`
	BaseURL string `yaml:"base_url"` // must start and end with "/"
}

// ExportConfig holds static export settings
type ExportConfig struct {
	OutputDir    string `yaml:"output_dir"`
	CopyPlots    bool   `yaml:"copy_plots"`
	Incremental  bool   `yaml:"incremental"`   // skip pages whose content is unchanged
	ManifestPath string `yaml:"manifest_path"` // badger directory for the page manifest
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	File       string `yaml:"file"`        // log file path (optional)
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // number of old log files to keep
	MaxAge     int    `yaml:"max_age"`     // days
	Console    bool   `yaml:"console"`     // also log to console
	JSON       bool   `yaml:"json"`        // JSON format instead of text
}

// Default configurations
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host: "localhost",
		Port: 8000,
	}
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:   "Dota 2 Team Analysis",
		BaseURL: "/",
	}
}

func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		OutputDir:    "./build",
		CopyPlots:    true,
		Incremental:  false,
		ManifestPath: "./cache/manifest",
	}
}

func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      "info",
		Console:    true,
		JSON:       false,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// Default returns a complete configuration with every default applied
func Default() *Config {
	return &Config{
		PlotDirectory:    "./plots",
		MetadataFilename: DefaultMetadataFilename,
		DefaultDataset:   DefaultDataset,
		Server:           DefaultServerConfig(),
		Site:             DefaultSiteConfig(),
		Export:           DefaultExportConfig(),
		Logging:          DefaultLoggingConfig(),
	}
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left alone; a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file. A missing file yields the
// defaults. PLOT_DIRECTORY from the environment overrides the file value.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if dir := os.Getenv(PlotDirectoryEnv); dir != "" {
		config.PlotDirectory = dir
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateExampleConfig writes config.example.yaml with every default filled in
func CreateExampleConfig(dir string) error {
	if err := SaveConfig(Default(), filepath.Join(dir, "config.example.yaml")); err != nil {
		return fmt.Errorf("failed to create example config: %w", err)
	}
	return nil
}

// validate fills defaults for fields left empty in the file
func (c *Config) validate() error {
	if c.MetadataFilename == "" {
		c.MetadataFilename = DefaultMetadataFilename
	}
	if strings.ContainsAny(c.MetadataFilename, `/\`) {
		return fmt.Errorf("metadata_filename must be a bare file name, got %q", c.MetadataFilename)
	}
	if c.DefaultDataset == "" {
		c.DefaultDataset = DefaultDataset
	}

	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}

	if c.Site.Title == "" {
		c.Site.Title = DefaultSiteConfig().Title
	}
	c.Site.BaseURL = NormalizeBaseURL(c.Site.BaseURL)

	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "./build"
	}
	if c.Export.Incremental && c.Export.ManifestPath == "" {
		c.Export.ManifestPath = "./cache/manifest"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if !c.Logging.Console && c.Logging.File == "" {
		c.Logging.Console = true
	}
	if c.Logging.MaxSize == 0 {
		c.Logging.MaxSize = 100
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAge == 0 {
		c.Logging.MaxAge = 28
	}

	return nil
}

// NormalizeBaseURL returns base with exactly one leading and trailing slash
func NormalizeBaseURL(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// Address returns host:port for the HTTP listener
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ToLoggingConfig converts LoggingConfig to logging.Config
func (c *LoggingConfig) ToLoggingConfig() *logging.Config {
	return &logging.Config{
		Level:      c.Level,
		File:       c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Console:    c.Console,
		JSON:       c.JSON,
	}
}
