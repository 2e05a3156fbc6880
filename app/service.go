// Package app wires the dataset source, the bounds validator and the side
// outputs into a runnable service.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/gridcheck/config"
	"github.com/kilianp07/gridcheck/core/validator"
	"github.com/kilianp07/gridcheck/infra/logger"
	"github.com/kilianp07/gridcheck/infra/metrics"
	"github.com/kilianp07/gridcheck/infra/mqtt"
	"github.com/kilianp07/gridcheck/infra/source"
	"github.com/kilianp07/gridcheck/pkg/export"
)

// Service runs validation passes over the configured dataset.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink metrics.Sink
	pub  mqtt.Publisher
}

// New builds a Service from configuration: metric sinks, the optional MQTT
// publisher and logging.
func New(cfg *config.Config) (*Service, error) {
	log := logger.New("gridcheck")

	var sinks []metrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink metrics.Sink = metrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var pub mqtt.Publisher
	if cfg.MQTT.Enabled {
		p, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		pub = p
	}

	return &Service{cfg: cfg, log: log, sink: sink, pub: pub}, nil
}

// RunOnce fetches a fresh table snapshot, evaluates the whole suite and
// emits the report, metrics and notification. Side-output failures are
// logged, never fatal; the returned report carries the verdict.
func (s *Service) RunOnce() (validator.Report, error) {
	table, err := source.Load(s.cfg.Dataset)
	if err != nil {
		return validator.Report{}, err
	}

	rep := validator.CheckAll(table, s.cfg.Suite)
	rep.Dataset = s.cfg.Dataset.Name

	if err := s.sink.RecordCheckResults(metrics.RecordsFromReport(rep)); err != nil {
		s.log.Errorf("record metrics: %v", err)
	}
	if s.pub != nil {
		if err := s.pub.PublishReport(rep); err != nil {
			s.log.Errorf("publish report: %v", err)
		}
	}
	if err := s.writeReport(rep); err != nil {
		return rep, err
	}

	failed := 0
	for _, o := range rep.Outcomes {
		if o.Failed() {
			failed++
		}
	}
	s.log.Infof("run %s: %d fields checked, %d failed", rep.RunID, len(rep.Outcomes), failed)
	return rep, nil
}

func (s *Service) writeReport(rep validator.Report) error {
	var w io.Writer = os.Stdout
	if s.cfg.Report.Path != "" {
		f, err := os.Create(s.cfg.Report.Path)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		w = f
	}
	switch s.cfg.Report.Format {
	case "csv":
		return export.WriteCSV(w, rep)
	default:
		return export.WriteJSON(w, rep)
	}
}

// Close releases external connections.
func (s *Service) Close() error {
	if s.pub != nil {
		s.pub.Close()
	}
	if c, ok := s.sink.(*metrics.InfluxSink); ok {
		c.Close()
	}
	return nil
}
