package validator

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/core/model"
)

// Outlier identifies a row whose value lies beyond a declared tail limit.
type Outlier struct {
	Row   int     `json:"row"`
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// FieldResult is the outcome of checking one field against its spec.
type FieldResult struct {
	Field string `json:"field"`
	// N is the number of non-null values the statistics were computed over.
	N int `json:"n"`
	// TailLow and TailHigh are the observed tail statistics: the empirical
	// quantile at the declared level for quantile bounds, the absolute
	// min/max for fixed bounds.
	TailLow  float64 `json:"tail_low"`
	TailHigh float64 `json:"tail_high"`
	// Center is the observed central tendency (mean or empirical median,
	// per the spec's mode).
	Center     float64   `json:"center"`
	TailsPass  bool      `json:"tails_pass"`
	CenterPass bool      `json:"center_pass"`
	Outliers   []Outlier `json:"outliers,omitempty"`
}

// Pass reports whether both the tail and center checks passed.
func (r FieldResult) Pass() bool { return r.TailsPass && r.CenterPass }

// Check evaluates one field of the table against its bound spec.
//
// All quantiles use the empirical CDF (gonum stat.Empirical), for the tail
// statistics and the median alike. The pass/fail decision for quantile
// bounds counts rows strictly beyond the declared limit and compares that
// mass against the allowed tail mass, so borderline rows are classified
// identically regardless of interpolation near duplicates. A quantile tail
// fails as soon as the observed mass reaches the allowed mass; a fixed tail
// fails on the first row beyond the limit.
//
// Check is a pure function of the table snapshot and the spec: no side
// effects, identical results on recomputation.
func Check(t *model.Table, spec bounds.FieldSpec) (FieldResult, error) {
	if err := spec.Validate(); err != nil {
		return FieldResult{}, &InvalidBoundsError{Field: spec.Field, Reason: err.Error()}
	}
	if !t.HasField(spec.Field) {
		return FieldResult{}, &MissingFieldError{Field: spec.Field}
	}
	values, rows := t.NonNull(spec.Field)
	if len(values) == 0 {
		return FieldResult{}, &EmptyTableError{Field: spec.Field}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)

	res := FieldResult{Field: spec.Field, N: n}

	res.TailLow = observedTail(spec.Lower, sorted, true)
	res.TailHigh = observedTail(spec.Upper, sorted, false)

	var below, above int
	for i, v := range values {
		if v < spec.Lower.Limit || v > spec.Upper.Limit {
			res.Outliers = append(res.Outliers, Outlier{Row: rows[i], ID: t.RowID(rows[i]), Value: v})
		}
		if v < spec.Lower.Limit {
			below++
		}
		if v > spec.Upper.Limit {
			above++
		}
	}
	res.TailsPass = tailPass(spec.Lower, below, n, spec.Lower.Level) &&
		tailPass(spec.Upper, above, n, 1-spec.Upper.Level)

	switch spec.Center.Mode {
	case bounds.ModeMedian:
		res.Center = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	default:
		res.Center = stat.Mean(sorted, nil)
	}
	res.CenterPass = res.Center >= spec.Center.Min && res.Center <= spec.Center.Max

	return res, nil
}

// observedTail returns the reported tail statistic for one bound.
func observedTail(b bounds.TailBound, sorted []float64, lower bool) float64 {
	if b.Kind == bounds.KindQuantile {
		return stat.Quantile(b.Level, stat.Empirical, sorted, nil)
	}
	if lower {
		return sorted[0]
	}
	return sorted[len(sorted)-1]
}

// tailPass decides one tail. A tail with no rows beyond the limit always
// passes; a quantile tail additionally tolerates a mass strictly below the
// allowed fraction.
func tailPass(b bounds.TailBound, beyond, n int, allowed float64) bool {
	if beyond == 0 {
		return true
	}
	if b.Kind == bounds.KindFixed {
		return false
	}
	return float64(beyond)/float64(n) < allowed
}
