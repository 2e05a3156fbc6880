package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/gridcheck/app"
	"github.com/kilianp07/gridcheck/config"
	"github.com/kilianp07/gridcheck/infra/logger"
	"github.com/kilianp07/gridcheck/infra/metrics"
	"github.com/kilianp07/gridcheck/jobs/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate the dataset on the configured schedule",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("watch")
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logg.Errorf("service close: %v", err)
		}
	}()

	if cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.PrometheusAddr); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}

	run := func() {
		if _, err := svc.RunOnce(); err != nil {
			logg.Errorf("validation run: %v", err)
		}
	}
	w, err := watch.New(cfg.Watch, logg, run)
	if err != nil {
		return err
	}

	// One pass immediately, then on the schedule.
	run()
	w.Start()
	defer w.Stop()

	<-ctx.Done()
	return nil
}
