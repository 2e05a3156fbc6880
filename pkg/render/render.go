// Package render draws the empirical distribution of a field with its
// declared bounds overlaid, so a human can see at a glance whether and by
// how much the data violates them. It carries no verdict logic.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/core/model"
	"github.com/kilianp07/gridcheck/core/validator"
)

// sortedValues returns the field's non-null values in ascending order.
func sortedValues(t *model.Table, field string) ([]float64, error) {
	if !t.HasField(field) {
		return nil, &validator.MissingFieldError{Field: field}
	}
	values, _ := t.NonNull(field)
	if len(values) == 0 {
		return nil, &validator.EmptyTableError{Field: field}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return sorted, nil
}

// LineHTML renders the sorted values of the field as a line chart with the
// declared lower and upper limits drawn as constant reference series, and
// returns the chart as a standalone HTML snippet.
func LineHTML(t *model.Table, spec bounds.FieldSpec) (string, error) {
	sorted, err := sortedValues(t, spec.Field)
	if err != nil {
		return "", err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    spec.Field,
			Subtitle: fmt.Sprintf("bounds [%v, %v], %d values", spec.Lower.Limit, spec.Upper.Limit, len(sorted)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Rank"}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.Field}),
	)

	xAxis := make([]string, len(sorted))
	observed := make([]opts.LineData, len(sorted))
	lower := make([]opts.LineData, len(sorted))
	upper := make([]opts.LineData, len(sorted))
	for i, v := range sorted {
		xAxis[i] = strconv.Itoa(i + 1)
		observed[i] = opts.LineData{Value: v}
		lower[i] = opts.LineData{Value: spec.Lower.Limit}
		upper[i] = opts.LineData{Value: spec.Upper.Limit}
	}

	line.SetXAxis(xAxis).
		AddSeries("observed", observed).
		AddSeries("lower bound", lower).
		AddSeries("upper bound", upper)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %v", err)
	}
	return buf.String(), nil
}
