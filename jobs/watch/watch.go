// Package watch reruns the validation on a schedule, so a recurring sanity
// check does not need an external scheduler.
package watch

import (
	"fmt"
	"time"

	"github.com/robfig/cron"

	"github.com/kilianp07/gridcheck/core/logger"
)

// Config defines the revalidation schedule.
type Config struct {
	// Every is the interval between runs, e.g. "15m". Empty disables the
	// watcher.
	Every string `json:"every"`
}

// Validate checks the interval parses as a duration.
func (c Config) Validate() error {
	if c.Every == "" {
		return nil
	}
	if _, err := time.ParseDuration(c.Every); err != nil {
		return fmt.Errorf("invalid watch interval %s: %w", c.Every, err)
	}
	return nil
}

// Enabled reports whether a schedule is configured.
func (c Config) Enabled() bool { return c.Every != "" }

// Watcher runs a function on the configured interval.
type Watcher struct {
	c   *cron.Cron
	log logger.Logger
}

// New creates a Watcher that invokes run every interval.
func New(cfg Config, log logger.Logger, run func()) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		return nil, fmt.Errorf("watch interval is required")
	}
	c := cron.New()
	spec := fmt.Sprintf("@every %s", cfg.Every)
	if err := c.AddFunc(spec, run); err != nil {
		return nil, fmt.Errorf("schedule %s: %w", spec, err)
	}
	return &Watcher{c: c, log: log}, nil
}

// Start launches the schedule in its own goroutine.
func (w *Watcher) Start() {
	w.log.Infof("watch schedule started")
	w.c.Start()
}

// Stop halts the schedule; a run in progress finishes.
func (w *Watcher) Stop() {
	w.c.Stop()
	w.log.Infof("watch schedule stopped")
}
