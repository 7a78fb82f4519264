package config

import (
	"fmt"
	"strings"
)

// Validator interface for config validation
type Validator interface {
	Validate() error
}

// ValidationErrors collects multiple validation errors
type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Add(err error) {
	if err != nil {
		ve.Errors = append(ve.Errors, err)
	}
}

func (ve *ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		messages[i] = fmt.Sprintf("  - %s", err.Error())
	}

	return fmt.Sprintf("configuration validation failed:\n%s",
		strings.Join(messages, "\n"))
}

func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.PlotDirectory) == "" {
		errs.Add(fmt.Errorf("plot_directory is required (or set %s)", PlotDirectoryEnv))
	}

	if c.DefaultDataset == "" {
		errs.Add(fmt.Errorf("default_dataset cannot be empty"))
	}

	errs.Add(c.Server.Validate())
	errs.Add(c.Site.Validate())
	errs.Add(c.Export.Validate())
	errs.Add(c.Logging.Validate())

	if errs.HasErrors() {
		return &errs
	}
	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	var errs ValidationErrors

	if c.Host == "" {
		errs.Add(fmt.Errorf("server.host is required"))
	}

	if c.Port < 1 || c.Port > 65535 {
		errs.Add(fmt.Errorf("server.port must be between 1-65535, got %d", c.Port))
	}

	if errs.HasErrors() {
		return &errs
	}
	return nil
}

// Validate validates site configuration
func (c *SiteConfig) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("site.base_url must start and end with '/', got %q", c.BaseURL)
	}
	return nil
}

// Validate validates export configuration
func (c *ExportConfig) Validate() error {
	var errs ValidationErrors

	if c.OutputDir == "" {
		errs.Add(fmt.Errorf("export.output_dir is required"))
	}

	if c.Incremental && c.ManifestPath == "" {
		errs.Add(fmt.Errorf("export.manifest_path is required when incremental export is enabled"))
	}

	if errs.HasErrors() {
		return &errs
	}
	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	var errs ValidationErrors

	validLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, l := range validLevels {
		if c.Level == l {
			levelValid = true
			break
		}
	}
	if !levelValid && c.Level != "" {
		errs.Add(fmt.Errorf("logging.level must be one of: %v, got %s", validLevels, c.Level))
	}

	if c.MaxSize < 0 {
		errs.Add(fmt.Errorf("logging.max_size cannot be negative, got %d", c.MaxSize))
	}

	if c.MaxBackups < 0 {
		errs.Add(fmt.Errorf("logging.max_backups cannot be negative, got %d", c.MaxBackups))
	}

	if c.MaxAge < 0 {
		errs.Add(fmt.Errorf("logging.max_age cannot be negative, got %d", c.MaxAge))
	}

	if errs.HasErrors() {
		return &errs
	}
	return nil
}
