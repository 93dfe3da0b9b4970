package measures

import (
	"math"

	"colloc/domain/contingency"
)

// TScoreMeasure is the t-score: like the z-score, but normalized by the
// observed rather than the expected count.
type TScoreMeasure struct{}

// NewTScoreMeasure creates a new t-score measure.
func NewTScoreMeasure() *TScoreMeasure {
	return &TScoreMeasure{}
}

// Name returns the measure name.
func (m *TScoreMeasure) Name() string {
	return "t_score"
}

// Description returns a human-readable description.
func (m *TScoreMeasure) Description() string {
	return "Observed-minus-expected frequency normalized by the observed count"
}

// Columns lists the frame columns the measure reads.
func (m *TScoreMeasure) Columns() []string {
	return []string{contingency.ColO11, contingency.ColE11}
}

// Score computes (O11 - E11) / sqrt(O11) per row. Rows never observed
// together (O11 = 0) score NaN or -Inf per IEEE-754.
func (m *TScoreMeasure) Score(f *contingency.Frame) ([]float64, error) {
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
		scores[i] = (o11[i] - e11[i]) / math.Sqrt(o11[i])
	}
	return scores, nil
}
