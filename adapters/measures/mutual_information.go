package measures

import (
	"math"

	"colloc/domain/contingency"
)

// MutualInformationMeasure is pointwise mutual information on a base-10
// scale: the order of magnitude by which the observed cooccurrence
// frequency exceeds its expectation.
type MutualInformationMeasure struct{}

// NewMutualInformationMeasure creates a new mutual information measure.
func NewMutualInformationMeasure() *MutualInformationMeasure {
	return &MutualInformationMeasure{}
}

// Name returns the measure name.
func (m *MutualInformationMeasure) Name() string {
	return "mutual_information"
}

// Description returns a human-readable description.
func (m *MutualInformationMeasure) Description() string {
	return "log10 ratio of observed to expected cooccurrence frequency"
}

// Columns lists the frame columns the measure reads.
func (m *MutualInformationMeasure) Columns() []string {
	return []string{contingency.ColO11, contingency.ColE11}
}

// Score computes log10(O11 / E11) per row. Zeros in O11 or E11 are
// mapped to NaN before the division, and a ratio of exactly zero is
// mapped to NaN before the logarithm, so degenerate rows score NaN
// rather than -Inf.
func (m *MutualInformationMeasure) Score(f *contingency.Frame) ([]float64, error) {
	o11, err := f.Column(contingency.ColO11)
	if err != nil {
		return nil, err
	}
	e11, err := f.Column(contingency.ColE11)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, f.Rows())
	for i := range scores {
		ratio := nanIfZero(o11[i]) / nanIfZero(e11[i])
		scores[i] = math.Log10(nanIfZero(ratio))
	}
	return scores, nil
}
