package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/gridcheck/app"
	"github.com/kilianp07/gridcheck/config"
	"github.com/kilianp07/gridcheck/infra/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the dataset once and exit non-zero on violations",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("check").Errorf("service close: %v", err)
		}
	}()

	rep, err := svc.RunOnce()
	if err != nil {
		return err
	}
	if !rep.Pass {
		return fmt.Errorf("bounds check failed for dataset %s", cfg.Dataset.Name)
	}
	return nil
}
