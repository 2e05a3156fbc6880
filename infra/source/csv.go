// Package source materializes observation tables from external data
// providers. The validator only depends on the row/column shape, never on
// how the table was produced.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/kilianp07/gridcheck/core/model"
)

// RatioSpec declares a column derived as Numerator/Denominator. Rows with a
// zero or null denominator yield a null.
type RatioSpec struct {
	Name        string `json:"name"`
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
}

// Config defines the dataset to load.
type Config struct {
	// Path is the CSV file holding the observation table.
	Path string `json:"path"`
	// Name labels the dataset in reports and metrics.
	Name string `json:"name"`
	// IDColumn names the column carrying row identities, e.g. plant codes.
	IDColumn string `json:"id_column"`
	// Fields restricts which columns are loaded. Empty loads every numeric
	// column.
	Fields []string `json:"fields"`
	// Ratios are derived columns computed after loading.
	Ratios []RatioSpec `json:"ratios"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = c.Path
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("dataset path is required")
	}
	for _, r := range c.Ratios {
		if r.Name == "" || r.Numerator == "" || r.Denominator == "" {
			return fmt.Errorf("ratio %q: name, numerator and denominator are required", r.Name)
		}
	}
	return nil
}

// Load reads the configured CSV file into an observation table.
func Load(cfg Config) (*model.Table, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f, cfg)
}

// Read builds an observation table from CSV data. Non-numeric cells and
// empty cells become nulls.
func Read(r io.Reader, cfg Config) (*model.Table, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("read dataset: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("dataset %s has no rows", cfg.Name)
	}

	t := model.NewTable(df.Nrow())
	if cfg.IDColumn != "" {
		if !hasColumn(df, cfg.IDColumn) {
			return nil, fmt.Errorf("id column %s not present in dataset", cfg.IDColumn)
		}
		if err := t.SetIDs(df.Col(cfg.IDColumn).Records()); err != nil {
			return nil, err
		}
	}

	fields := cfg.Fields
	if len(fields) == 0 {
		fields = numericColumns(df, cfg.IDColumn)
	}
	for _, name := range fields {
		if !hasColumn(df, name) {
			return nil, fmt.Errorf("column %s not present in dataset", name)
		}
		if err := t.AddColumn(name, df.Col(name).Float()); err != nil {
			return nil, err
		}
	}
	for _, ratio := range cfg.Ratios {
		if err := t.DeriveRatio(ratio.Name, ratio.Numerator, ratio.Denominator); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func numericColumns(df dataframe.DataFrame, skip string) []string {
	names := df.Names()
	types := df.Types()
	var out []string
	for i, n := range names {
		if n == skip {
			continue
		}
		if types[i] == series.Float || types[i] == series.Int {
			out = append(out, n)
		}
	}
	return out
}
