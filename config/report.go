package config

import "fmt"

// ReportConfig defines where and how the validation report is written.
type ReportConfig struct {
	// Format selects the report encoding: "json" or "csv".
	Format string `json:"format"`
	// Path is the output file; empty writes to stdout.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks mandatory fields.
func (c ReportConfig) Validate() error {
	if c.Format != "json" && c.Format != "csv" {
		return fmt.Errorf("unknown report format %s", c.Format)
	}
	return nil
}
