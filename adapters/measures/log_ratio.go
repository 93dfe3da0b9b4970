package measures

import (
	"math"

	"colloc/domain/contingency"
)

// LogRatioMeasure is the binary log of the relative risk: how many
// times more frequent the item is inside the context than outside it,
// on a base-2 scale.
type LogRatioMeasure struct{}

// NewLogRatioMeasure creates a new log-ratio measure.
func NewLogRatioMeasure() *LogRatioMeasure {
	return &LogRatioMeasure{}
}

// Name returns the measure name.
func (m *LogRatioMeasure) Name() string {
	return "log_ratio"
}

// Description returns a human-readable description.
func (m *LogRatioMeasure) Description() string {
	return "log2 relative frequency ratio between context and reference"
}

// Columns lists the frame columns the measure reads.
func (m *LogRatioMeasure) Columns() []string {
	return []string{contingency.ColO11, contingency.ColO12, contingency.ColO21, contingency.ColO22}
}

// Score computes log2((O11/C1) / (O12/C2)) per row, with C1 = O11+O21
// and C2 = O12+O22. Zero counts propagate through plain IEEE-754
// division: no extra guarding, unlike mutual information.
func (m *LogRatioMeasure) Score(f *contingency.Frame) ([]float64, error) {
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

	scores := make([]float64, f.Rows())
	for i := range scores {
		c1 := o11[i] + o21[i]
		c2 := o12[i] + o22[i]
		scores[i] = math.Log2((o11[i] / c1) / (o12[i] / c2))
	}
	return scores, nil
}
