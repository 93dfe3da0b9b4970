package measures

import (
	"math"

	"colloc/domain/contingency"
)

// ZScoreMeasure scores the deviation of the observed cooccurrence count
// from its expectation, in units of the expected standard deviation.
type ZScoreMeasure struct{}

// NewZScoreMeasure creates a new z-score measure.
func NewZScoreMeasure() *ZScoreMeasure {
	return &ZScoreMeasure{}
}

// Name returns the measure name.
func (m *ZScoreMeasure) Name() string {
	return "z_score"
}

// Description returns a human-readable description.
func (m *ZScoreMeasure) Description() string {
	return "Standard deviations between observed and expected cooccurrence frequency"
}

// Columns lists the frame columns the measure reads.
func (m *ZScoreMeasure) Columns() []string {
	return []string{contingency.ColO11, contingency.ColE11}
}

// Score computes (O11 - E11) / sqrt(E11) per row. A zero expected
// frequency yields NaN or ±Inf per IEEE-754; the sign encodes
// attraction (+) vs. repulsion (-).
func (m *ZScoreMeasure) Score(f *contingency.Frame) ([]float64, error) {
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
		scores[i] = (o11[i] - e11[i]) / math.Sqrt(e11[i])
	}
	return scores, nil
}
