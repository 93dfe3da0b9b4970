package measures

import (
	"colloc/domain/contingency"
)

// DiceMeasure is the Dice coefficient: the harmonic mean of the two
// conditional cooccurrence proportions, in [0, 1].
type DiceMeasure struct{}

// NewDiceMeasure creates a new Dice coefficient measure.
func NewDiceMeasure() *DiceMeasure {
	return &DiceMeasure{}
}

// Name returns the measure name.
func (m *DiceMeasure) Name() string {
	return "dice"
}

// Description returns a human-readable description.
func (m *DiceMeasure) Description() string {
	return "Dice coefficient of the two cooccurrence proportions, in [0, 1]"
}

// Columns lists the frame columns the measure reads.
func (m *DiceMeasure) Columns() []string {
	return []string{contingency.ColO11, contingency.ColO12, contingency.ColO21}
}

// Score computes 2*O11 / (2*O11 + O12 + O21) per row. The score is NaN
// only when all three counts are zero.
func (m *DiceMeasure) Score(f *contingency.Frame) ([]float64, error) {
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

	scores := make([]float64, f.Rows())
	for i := range scores {
		scores[i] = (2 * o11[i]) / (2*o11[i] + o12[i] + o21[i])
	}
	return scores, nil
}
