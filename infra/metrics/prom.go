package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records validation outcomes in Prometheus metrics.
type PromSink struct {
	checks   *prometheus.CounterVec
	outliers *prometheus.GaugeVec
	center   *prometheus.GaugeVec
}

// NewPromSink registers check metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bounds_checks_total",
		Help: "Total number of field bound checks",
	}, []string{"field", "tails_pass", "center_pass"})
	outliers := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bounds_check_outliers",
		Help: "Rows beyond the declared tail limits in the latest run",
	}, []string{"field"})
	center := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bounds_check_center",
		Help: "Observed central tendency of the field in the latest run",
	}, []string{"field"})

	if err := reg.Register(checks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			checks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(outliers); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			outliers = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(center); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			center = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{checks: checks, outliers: outliers, center: center}, nil
}

// RecordCheckResults increments the counter and updates the gauges for each
// record. Structural errors are counted as failed checks.
func (s *PromSink) RecordCheckResults(records []CheckRecord) error {
	for _, r := range records {
		tails := r.Err == "" && r.TailsPass
		cent := r.Err == "" && r.CenterPass
		s.checks.WithLabelValues(r.Field, strconv.FormatBool(tails), strconv.FormatBool(cent)).Inc()
		if r.Err == "" {
			s.outliers.WithLabelValues(r.Field).Set(float64(r.Outliers))
			s.center.WithLabelValues(r.Field).Set(r.Center)
		}
	}
	return nil
}
