package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/gridcheck/core/validator"
)

// WriteJSON writes the validation report to w in JSON format.
func WriteJSON(w io.Writer, rep validator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteCSV writes one row per field outcome.
func WriteCSV(w io.Writer, rep validator.Report) error {
	cw := csv.NewWriter(w)
	header := []string{
		"run_id", "generated_at", "field",
		"tails_pass", "center_pass",
		"tail_low", "tail_high", "center", "outliers", "error",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, o := range rep.Outcomes {
		rec := []string{
			rep.RunID,
			rep.GeneratedAt.Format(time.RFC3339),
			o.Spec.Field,
			strconv.FormatBool(o.Err == "" && o.Result.TailsPass),
			strconv.FormatBool(o.Err == "" && o.Result.CenterPass),
			formatFloat(o.Result.TailLow),
			formatFloat(o.Result.TailHigh),
			formatFloat(o.Result.Center),
			strconv.Itoa(len(o.Result.Outliers)),
			o.Err,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
