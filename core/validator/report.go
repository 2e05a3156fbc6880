package validator

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/core/model"
)

// Outcome pairs a field spec with its result or structural error.
type Outcome struct {
	Spec   bounds.FieldSpec `json:"spec"`
	Result FieldResult      `json:"result"`
	// Err holds the structural error message when the field could not be
	// evaluated (missing field, empty column, malformed bounds).
	Err string `json:"error,omitempty"`
}

// Failed reports whether the outcome is a structural error or a violated
// check.
func (o Outcome) Failed() bool { return o.Err != "" || !o.Result.Pass() }

// Report summarizes one validation run over a table snapshot.
type Report struct {
	RunID       string    `json:"run_id"`
	Dataset     string    `json:"dataset,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Rows        int       `json:"rows"`
	Outcomes    []Outcome `json:"outcomes"`
	// Pass is true iff every field evaluated without structural error and
	// passed both the tail and center checks.
	Pass bool `json:"pass"`
}

// CheckAll evaluates every field spec of the suite independently. A
// structural error on one field is recorded on its outcome and never stops
// the remaining fields; statistical violations are outcomes, not errors.
func CheckAll(t *model.Table, suite bounds.Suite) Report {
	rep := Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Rows:        t.Len(),
		Pass:        true,
	}
	for _, spec := range suite.Fields {
		out := Outcome{Spec: spec}
		res, err := Check(t, spec)
		if err != nil {
			out.Err = err.Error()
		} else {
			out.Result = res
		}
		if out.Failed() {
			rep.Pass = false
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}
	return rep
}
