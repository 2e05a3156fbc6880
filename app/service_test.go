package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcheck/config"
	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/core/validator"
	"github.com/kilianp07/gridcheck/infra/logger"
	"github.com/kilianp07/gridcheck/infra/metrics"
	"github.com/kilianp07/gridcheck/infra/mqtt"
	"github.com/kilianp07/gridcheck/infra/source"
)

const plantsCSV = `plant_id,capacity_mw,generation_mwh
alpha,100,90
beta,200,190
gamma,50,250
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "plants.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(plantsCSV), 0o644))

	cfg := &config.Config{
		Dataset: source.Config{
			Path:     csvPath,
			Name:     "plants",
			IDColumn: "plant_id",
			Fields:   []string{"capacity_mw", "generation_mwh"},
			Ratios: []source.RatioSpec{
				{Name: "capacity_ratio", Numerator: "generation_mwh", Denominator: "capacity_mw"},
			},
		},
		Suite: bounds.Suite{Fields: []bounds.FieldSpec{{
			Field:  "capacity_ratio",
			Lower:  bounds.TailBound{Kind: bounds.KindFixed, Limit: 0.5},
			Upper:  bounds.TailBound{Kind: bounds.KindFixed, Limit: 1.1},
			Center: bounds.CenterSpec{Mode: bounds.ModeMean, Min: 0.5, Max: 1.5},
		}}},
		Report: config.ReportConfig{Format: "json", Path: filepath.Join(dir, "report.json")},
	}
	return cfg
}

func TestRunOnceReportsViolation(t *testing.T) {
	cfg := testConfig(t)
	pub := &mqtt.MockPublisher{}
	svc := &Service{cfg: cfg, log: logger.NopLogger{}, sink: metrics.NopSink{}, pub: pub}

	rep, err := svc.RunOnce()
	require.NoError(t, err)

	// gamma generates five times its capacity, so the fixed upper bound fails
	assert.False(t, rep.Pass)
	require.Len(t, rep.Outcomes, 1)
	require.Len(t, rep.Outcomes[0].Result.Outliers, 1)
	assert.Equal(t, "gamma", rep.Outcomes[0].Result.Outliers[0].ID)
	assert.Equal(t, "plants", rep.Dataset)

	// report was published and written
	require.Len(t, pub.Reports, 1)
	assert.Equal(t, rep.RunID, pub.Reports[0].RunID)

	data, err := os.ReadFile(cfg.Report.Path)
	require.NoError(t, err)
	var decoded validator.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, rep.RunID, decoded.RunID)

	require.NoError(t, svc.Close())
}

func TestRunOncePasses(t *testing.T) {
	cfg := testConfig(t)
	cfg.Suite.Fields[0].Upper = bounds.TailBound{Kind: bounds.KindQuantile, Limit: 1.1, Level: 0.5}
	// the extreme ratio would drag the mean outside the center range
	cfg.Suite.Fields[0].Center.Mode = bounds.ModeMedian
	svc := &Service{cfg: cfg, log: logger.NopLogger{}, sink: metrics.NopSink{}}

	rep, err := svc.RunOnce()
	require.NoError(t, err)
	// one of three rows beyond the limit stays under the 50% tail mass
	assert.True(t, rep.Pass)
}

func TestRunOnceMissingDataset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "absent.csv")
	svc := &Service{cfg: cfg, log: logger.NopLogger{}, sink: metrics.NopSink{}}

	_, err := svc.RunOnce()
	assert.Error(t, err)
}

func TestNewBuildsNopStack(t *testing.T) {
	cfg := testConfig(t)
	svc, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, svc)
	require.NoError(t, svc.Close())
}
