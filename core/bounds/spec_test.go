package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSpec() FieldSpec {
	return FieldSpec{
		Field:  "capacity_ratio",
		Lower:  TailBound{Kind: KindQuantile, Limit: 0.7, Level: 0.05},
		Upper:  TailBound{Kind: KindQuantile, Limit: 1.1, Level: 0.95},
		Center: CenterSpec{Mode: ModeMean, Min: 0.7, Max: 1.1},
	}
}

func TestSetDefaults(t *testing.T) {
	s := FieldSpec{Field: "capacity_mw"}
	s.SetDefaults()
	assert.Equal(t, KindFixed, s.Lower.Kind)
	assert.Equal(t, KindFixed, s.Upper.Kind)
	assert.Equal(t, ModeMean, s.Center.Mode)
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, validSpec().Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*FieldSpec){
		"missing field name": func(s *FieldSpec) { s.Field = "" },
		"inverted limits":    func(s *FieldSpec) { s.Lower.Limit = 2; s.Upper.Limit = 1 },
		"level above one":    func(s *FieldSpec) { s.Upper.Level = 1.5 },
		"negative level":     func(s *FieldSpec) { s.Lower.Level = -0.1 },
		"unknown kind":       func(s *FieldSpec) { s.Lower.Kind = "percentile" },
		"unknown mode":       func(s *FieldSpec) { s.Center.Mode = "mode" },
		"inverted center":    func(s *FieldSpec) { s.Center.Min = 2; s.Center.Max = 1 },
	}
	for name, mutate := range cases {
		s := validSpec()
		mutate(&s)
		assert.Error(t, s.Validate(), name)
	}
}

func TestSuiteValidate(t *testing.T) {
	assert.Error(t, Suite{}.Validate(), "empty suite")

	dup := Suite{Fields: []FieldSpec{validSpec(), validSpec()}}
	assert.Error(t, dup.Validate(), "duplicate field")

	ok := Suite{Fields: []FieldSpec{validSpec()}}
	assert.NoError(t, ok.Validate())
}
