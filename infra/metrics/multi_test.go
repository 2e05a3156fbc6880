package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/core/validator"
)

type captureSink struct {
	records []CheckRecord
	fail    bool
}

func (c *captureSink) RecordCheckResults(records []CheckRecord) error {
	if c.fail {
		return fmt.Errorf("sink failed")
	}
	c.records = append(c.records, records...)
	return nil
}

func TestMultiSinkFanout(t *testing.T) {
	a := &captureSink{}
	b := &captureSink{}
	m := NewMultiSink(a, b)

	require.NoError(t, m.RecordCheckResults([]CheckRecord{{Field: "capacity_mw"}}))
	assert.Len(t, a.records, 1)
	assert.Len(t, b.records, 1)
}

func TestMultiSinkFirstError(t *testing.T) {
	a := &captureSink{fail: true}
	b := &captureSink{}
	m := NewMultiSink(a, b)

	assert.Error(t, m.RecordCheckResults([]CheckRecord{{Field: "capacity_mw"}}))
	assert.Empty(t, b.records, "error stops the fanout")
}

func TestRecordsFromReport(t *testing.T) {
	rep := validator.Report{
		RunID:   "run-1",
		Dataset: "plants",
		Rows:    100,
		Outcomes: []validator.Outcome{
			{
				Spec: bounds.FieldSpec{Field: "capacity_ratio"},
				Result: validator.FieldResult{
					Field:     "capacity_ratio",
					TailsPass: false, CenterPass: true,
					Center:   0.94,
					Outliers: []validator.Outlier{{Row: 95}, {Row: 96}},
				},
			},
			{Spec: bounds.FieldSpec{Field: "generation_mwh"}, Err: "field not present"},
		},
	}

	records := RecordsFromReport(rep)
	require.Len(t, records, 2)
	assert.Equal(t, "run-1", records[0].RunID)
	assert.Equal(t, 2, records[0].Outliers)
	assert.True(t, records[0].CenterPass)
	assert.False(t, records[0].TailsPass)
	assert.Equal(t, "field not present", records[1].Err)
	assert.Equal(t, 0, records[1].Outliers)
}
