package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kilianp07/gridcheck/config"
	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/infra/source"
	"github.com/kilianp07/gridcheck/pkg/render"
)

var (
	renderField  string
	renderOutDir string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the field distributions with their bounds overlaid",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderField, "field", "", "render a single field (default: all configured fields)")
	renderCmd.Flags().StringVar(&renderOutDir, "out", ".", "output directory")
	renderCmd.Flags().StringVar(&renderFormat, "format", "html", "chart format: html or png")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderFormat != "html" && renderFormat != "png" {
		return fmt.Errorf("unknown chart format %s", renderFormat)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	table, err := source.Load(cfg.Dataset)
	if err != nil {
		return err
	}

	specs := cfg.Suite.Fields
	if renderField != "" {
		specs = nil
		for _, s := range cfg.Suite.Fields {
			if s.Field == renderField {
				specs = []bounds.FieldSpec{s}
				break
			}
		}
		if specs == nil {
			return fmt.Errorf("no bound spec configured for field %s", renderField)
		}
	}

	for _, spec := range specs {
		path := filepath.Join(renderOutDir, fmt.Sprintf("%s.%s", spec.Field, renderFormat))
		var data []byte
		switch renderFormat {
		case "png":
			data, err = render.PNG(table, spec)
		default:
			var html string
			html, err = render.LineHTML(table, spec)
			data = []byte(html)
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", spec.Field, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		cmd.Printf("wrote %s\n", path)
	}
	return nil
}
