package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	CatalogPath string // CSV file, .hcl file, or directory of .hcl files

	LogFormat string
	LogLevel  string

	// One-shot commands. When none is set the app runs the interactive menu.
	List     bool
	InfoKey  string
	PlanKey  string
	CheckKey string
	Validate bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// OneShot reports whether the config names a single command to run instead
// of the interactive menu.
func (c *Config) OneShot() bool {
	return c.List || c.InfoKey != "" || c.PlanKey != "" || c.CheckKey != "" || c.Validate
}
