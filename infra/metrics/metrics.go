package metrics

import (
	"time"

	"github.com/kilianp07/gridcheck/core/validator"
)

// CheckRecord represents one field's validation outcome to be recorded.
type CheckRecord struct {
	RunID      string
	Dataset    string
	Field      string
	TailsPass  bool
	CenterPass bool
	TailLow    float64
	TailHigh   float64
	Center     float64
	Outliers   int
	Rows       int
	CheckedAt  time.Time
	// Err is the structural error message when the field could not be
	// evaluated; empty otherwise.
	Err string
}

// Sink records validation outcomes for observability purposes.
type Sink interface {
	RecordCheckResults(records []CheckRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordCheckResults([]CheckRecord) error { return nil }

// RecordsFromReport flattens a validation report into per-field records.
func RecordsFromReport(rep validator.Report) []CheckRecord {
	records := make([]CheckRecord, 0, len(rep.Outcomes))
	for _, o := range rep.Outcomes {
		rec := CheckRecord{
			RunID:     rep.RunID,
			Dataset:   rep.Dataset,
			Field:     o.Spec.Field,
			Rows:      rep.Rows,
			CheckedAt: rep.GeneratedAt,
			Err:       o.Err,
		}
		if o.Err == "" {
			rec.TailsPass = o.Result.TailsPass
			rec.CenterPass = o.Result.CenterPass
			rec.TailLow = o.Result.TailLow
			rec.TailHigh = o.Result.TailHigh
			rec.Center = o.Result.Center
			rec.Outliers = len(o.Result.Outliers)
		}
		records = append(records, rec)
	}
	return records
}
