package bounds

import "fmt"

// Bound kinds. A fixed bound compares the absolute extreme of a field
// against the limit; a quantile bound tolerates a declared tail mass beyond
// the limit.
const (
	KindFixed    = "fixed"
	KindQuantile = "quantile"
)

// Center modes.
const (
	ModeMean   = "mean"
	ModeMedian = "median"
)

// TailBound declares one side of the acceptable range for a field.
type TailBound struct {
	// Kind selects "fixed" or "quantile".
	Kind string `json:"kind"`
	// Limit is the numeric threshold values are compared against.
	Limit float64 `json:"limit"`
	// Level is the quantile level in [0,1]; only used when Kind is
	// "quantile" (e.g. 0.05 for the lower tail, 0.95 for the upper).
	Level float64 `json:"level"`
}

// CenterSpec declares the acceptable range for the central tendency.
type CenterSpec struct {
	// Mode selects "mean" or "median".
	Mode string  `json:"mode"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// FieldSpec is the declarative bound specification for a single field.
type FieldSpec struct {
	Field  string     `json:"field"`
	Lower  TailBound  `json:"lower"`
	Upper  TailBound  `json:"upper"`
	Center CenterSpec `json:"center"`
}

// Suite is the ordered set of field specs evaluated in one run.
type Suite struct {
	Fields []FieldSpec `json:"fields"`
}

// SetDefaults applies sane defaults: fixed tails and a mean center.
func (s *FieldSpec) SetDefaults() {
	if s.Lower.Kind == "" {
		s.Lower.Kind = KindFixed
	}
	if s.Upper.Kind == "" {
		s.Upper.Kind = KindFixed
	}
	if s.Center.Mode == "" {
		s.Center.Mode = ModeMean
	}
}

// Validate checks the spec is well formed.
func (s FieldSpec) Validate() error {
	if s.Field == "" {
		return fmt.Errorf("field name is required")
	}
	if err := s.Lower.validate(); err != nil {
		return fmt.Errorf("field %s lower: %w", s.Field, err)
	}
	if err := s.Upper.validate(); err != nil {
		return fmt.Errorf("field %s upper: %w", s.Field, err)
	}
	if s.Lower.Limit > s.Upper.Limit {
		return fmt.Errorf("field %s: lower limit %v exceeds upper limit %v", s.Field, s.Lower.Limit, s.Upper.Limit)
	}
	switch s.Center.Mode {
	case ModeMean, ModeMedian:
	default:
		return fmt.Errorf("field %s: unknown center mode %s", s.Field, s.Center.Mode)
	}
	if s.Center.Min > s.Center.Max {
		return fmt.Errorf("field %s: center range [%v, %v] is inverted", s.Field, s.Center.Min, s.Center.Max)
	}
	return nil
}

func (b TailBound) validate() error {
	switch b.Kind {
	case KindFixed:
	case KindQuantile:
		if b.Level < 0 || b.Level > 1 {
			return fmt.Errorf("quantile level %v outside [0,1]", b.Level)
		}
	default:
		return fmt.Errorf("unknown bound kind %s", b.Kind)
	}
	return nil
}

// SetDefaults applies defaults to every field spec.
func (s *Suite) SetDefaults() {
	for i := range s.Fields {
		s.Fields[i].SetDefaults()
	}
}

// Validate checks every field spec and rejects duplicate field names.
func (s Suite) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("at least one field spec is required")
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Field] {
			return fmt.Errorf("duplicate field spec %s", f.Field)
		}
		seen[f.Field] = true
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}
