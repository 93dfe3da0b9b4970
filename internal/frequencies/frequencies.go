package frequencies

import (
	"gonum.org/v1/gonum/floats"

	"colloc/domain/contingency"
	"colloc/domain/core"
)

// Builder derives sample sizes and expected frequencies from observed
// counts under the independence (null) model:
//
//	E11 = R1*C1/N  E12 = R1*C2/N
//	E21 = R2*C1/N  E22 = R2*C2/N
//
// where R1/R2 are the row marginals, C1/C2 the column marginals and
// N = R1+R2 the per-row sample size.
type Builder struct{}

// NewBuilder creates a frequency builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Complete adds N and E11..E22 to the frame. Existing columns are never
// recomputed, which makes completion idempotent. When inplace is false
// the caller's frame is left untouched.
func (b *Builder) Complete(f *contingency.Frame, inplace bool) (*contingency.Frame, error) {
	out := f
	if !inplace {
		out = f.Copy()
	}

	observed := make(map[string][]float64, len(contingency.ObservedColumns))
	for _, name := range contingency.ObservedColumns {
		column, err := out.Column(name)
		if err != nil {
			return nil, core.NewObservedMissingError(name)
		}
		observed[name] = column
	}

	o11 := observed[contingency.ColO11]
	o12 := observed[contingency.ColO12]
	o21 := observed[contingency.ColO21]
	o22 := observed[contingency.ColO22]

	if !out.Has(contingency.ColN) {
		n := make([]float64, out.Rows())
		copy(n, o11)
		floats.Add(n, o12)
		floats.Add(n, o21)
		floats.Add(n, o22)
		if err := out.SetColumn(contingency.ColN, n); err != nil {
			return nil, err
		}
	}

	n, err := out.Column(contingency.ColN)
	if err != nil {
		return nil, err
	}

	expected := map[string][]float64{}
	for _, name := range contingency.ExpectedColumns {
		if !out.Has(name) {
			expected[name] = make([]float64, out.Rows())
		}
	}
	if len(expected) == 0 {
		return out, nil
	}

	for i := range o11 {
		r1 := o11[i] + o12[i]
		r2 := o21[i] + o22[i]
		c1 := o11[i] + o21[i]
		c2 := o12[i] + o22[i]

		if e11, ok := expected[contingency.ColE11]; ok {
			e11[i] = r1 * c1 / n[i]
		}
		if e12, ok := expected[contingency.ColE12]; ok {
			e12[i] = r1 * c2 / n[i]
		}
		if e21, ok := expected[contingency.ColE21]; ok {
			e21[i] = r2 * c1 / n[i]
		}
		if e22, ok := expected[contingency.ColE22]; ok {
			e22[i] = r2 * c2 / n[i]
		}
	}

	for _, name := range contingency.ExpectedColumns {
		if values, ok := expected[name]; ok {
			if err := out.SetColumn(name, values); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
