package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/core/model"
)

// boundStyle returns a dashed line style for bound reference series.
func boundStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth:     1,
		StrokeColor:     col,
		StrokeDashArray: []float64{4, 4},
	}
}

// PNG renders the same comparison as LineHTML to a PNG image for file
// output.
func PNG(t *model.Table, spec bounds.FieldSpec) ([]byte, error) {
	sorted, err := sortedValues(t, spec.Field)
	if err != nil {
		return nil, err
	}

	// go-chart needs at least two X values per series.
	if len(sorted) == 1 {
		sorted = append(sorted, sorted[0])
	}
	xs := make([]float64, len(sorted))
	lower := make([]float64, len(sorted))
	upper := make([]float64, len(sorted))
	for i := range sorted {
		xs[i] = float64(i + 1)
		lower[i] = spec.Lower.Limit
		upper[i] = spec.Upper.Limit
	}

	ch := chart.Chart{
		Title: spec.Field,
		XAxis: chart.XAxis{Name: "Rank"},
		YAxis: chart.YAxis{Name: spec.Field},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "observed", XValues: xs, YValues: sorted},
			chart.ContinuousSeries{Name: "lower bound", XValues: xs, YValues: lower, Style: boundStyle(chart.ColorRed)},
			chart.ContinuousSeries{Name: "upper bound", XValues: xs, YValues: upper, Style: boundStyle(chart.ColorRed)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %v", err)
	}
	return buf.Bytes(), nil
}
