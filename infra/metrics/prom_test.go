package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPromSinkRecordCheckResults(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	rec := CheckRecord{
		RunID:      "run-1",
		Dataset:    "plants",
		Field:      "capacity_ratio",
		TailsPass:  false,
		CenterPass: true,
		Center:     0.94,
		Outliers:   5,
		Rows:       100,
		CheckedAt:  time.Now(),
	}
	require.NoError(t, sink.RecordCheckResults([]CheckRecord{rec}))

	expected := `
# HELP bounds_checks_total Total number of field bound checks
# TYPE bounds_checks_total counter
bounds_checks_total{center_pass="true",field="capacity_ratio",tails_pass="false"} 1
`
	require.NoError(t, testutil.CollectAndCompare(sink.checks, strings.NewReader(expected)))

	expectedOutliers := `
# HELP bounds_check_outliers Rows beyond the declared tail limits in the latest run
# TYPE bounds_check_outliers gauge
bounds_check_outliers{field="capacity_ratio"} 5
`
	require.NoError(t, testutil.CollectAndCompare(sink.outliers, strings.NewReader(expectedOutliers)))
}

func TestPromSinkStructuralErrorCountsAsFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	rec := CheckRecord{Field: "generation_mwh", TailsPass: true, CenterPass: true, Err: "field not present"}
	require.NoError(t, sink.RecordCheckResults([]CheckRecord{rec}))

	expected := `
# HELP bounds_checks_total Total number of field bound checks
# TYPE bounds_checks_total counter
bounds_checks_total{center_pass="false",field="generation_mwh",tails_pass="false"} 1
`
	require.NoError(t, testutil.CollectAndCompare(sink.checks, strings.NewReader(expected)))
}

func TestPromSinkRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSink(reg)
	require.NoError(t, err)
	second, err := NewPromSink(reg)
	require.NoError(t, err)
	require.Equal(t, first.checks, second.checks)
}
