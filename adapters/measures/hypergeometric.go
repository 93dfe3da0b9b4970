package measures

import (
	"colloc/domain/contingency"
	"colloc/internal/combinatorics"
	"colloc/ports"
)

// HypergeometricLikelihoodMeasure is the probability of the observed
// table under the hypergeometric distribution of its marginals.
//
// Experimental: with corpus-sized counts the binomial coefficients
// overflow and the score degenerates to 0, ±Inf or NaN, which is why
// this measure is not part of the default set. The intended fix is
// unknown; the formula is kept as published.
type HypergeometricLikelihoodMeasure struct {
	choose func(n, k []float64) []float64
}

// NewHypergeometricLikelihoodMeasure creates a new hypergeometric
// likelihood measure backed by the default binomial coefficient.
func NewHypergeometricLikelihoodMeasure() *HypergeometricLikelihoodMeasure {
	return NewHypergeometricLikelihoodMeasureWith(combinatorics.Binomial)
}

// NewHypergeometricLikelihoodMeasureWith creates the measure with a
// caller-supplied binomial coefficient.
func NewHypergeometricLikelihoodMeasureWith(choose ports.Choose) *HypergeometricLikelihoodMeasure {
	return &HypergeometricLikelihoodMeasure{choose: combinatorics.Vectorized(choose)}
}

// Name returns the measure name.
func (m *HypergeometricLikelihoodMeasure) Name() string {
	return "hypergeometric_likelihood"
}

// Description returns a human-readable description.
func (m *HypergeometricLikelihoodMeasure) Description() string {
	return "Hypergeometric probability of the observed table (experimental)"
}

// Columns lists the frame columns the measure reads.
func (m *HypergeometricLikelihoodMeasure) Columns() []string {
	return []string{
		contingency.ColN,
		contingency.ColO11, contingency.ColO12, contingency.ColO21, contingency.ColO22,
	}
}

// Score computes choose(O11+O21, O11) * choose(O12+O22, O12) /
// choose(N, O11+O12) per row, with choose applied element-wise over the
// columns.
func (m *HypergeometricLikelihoodMeasure) Score(f *contingency.Frame) ([]float64, error) {
	n, err := f.Column(contingency.ColN)
	if err != nil {
		return nil, err
	}
	o11, err := f.Column(contingency.ColO11)
	if err != nil {
		return nil, err
	}
	o12, err := f.Column(contingency.ColO12)
	if err != nil {
		return nil, err
	}
	o21, err := f.Column(contingency.ColO21)
	if err != nil {
		return nil, err
	}
	o22, err := f.Column(contingency.ColO22)
	if err != nil {
		return nil, err
	}

	rows := f.Rows()
	c1 := make([]float64, rows)
	c2 := make([]float64, rows)
	r1 := make([]float64, rows)
	for i := 0; i < rows; i++ {
		c1[i] = o11[i] + o21[i]
		c2[i] = o12[i] + o22[i]
		r1[i] = o11[i] + o12[i]
	}

	num1 := m.choose(c1, o11)
	num2 := m.choose(c2, o12)
	den := m.choose(n, r1)

	scores := make([]float64, rows)
	for i := range scores {
		scores[i] = num1[i] * num2[i] / den[i]
	}
	return scores, nil
}
