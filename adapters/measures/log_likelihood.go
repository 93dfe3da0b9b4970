package measures

import (
	"math"

	"colloc/domain/contingency"
)

// LogLikelihoodMeasure is the log-likelihood ratio statistic G2 over
// the full 2x2 table. When signed, the non-negative statistic is
// multiplied by sign(O11 - E11) so that positive scores mean attraction
// and negative scores repulsion.
type LogLikelihoodMeasure struct {
	signed bool
}

// NewLogLikelihoodMeasure creates a new log-likelihood measure.
func NewLogLikelihoodMeasure(signed bool) *LogLikelihoodMeasure {
	return &LogLikelihoodMeasure{signed: signed}
}

// Name returns the measure name.
func (m *LogLikelihoodMeasure) Name() string {
	return "log_likelihood"
}

// Description returns a human-readable description.
func (m *LogLikelihoodMeasure) Description() string {
	return "Log-likelihood ratio statistic over the full contingency table"
}

// Columns lists the frame columns the measure reads.
func (m *LogLikelihoodMeasure) Columns() []string {
	return []string{
		contingency.ColO11, contingency.ColO12, contingency.ColO21, contingency.ColO22,
		contingency.ColE11, contingency.ColE12, contingency.ColE21, contingency.ColE22,
	}
}

// Score computes 2 * sum over cells of O*ln(O/E) per row. A cell with a
// zero observed count contributes zero (its limit), as does a cell
// whose expected count is zero; neither propagates NaN into the sum.
func (m *LogLikelihoodMeasure) Score(f *contingency.Frame) ([]float64, error) {
	cells := m.Columns()
	columns := make([][]float64, len(cells))
	for i, name := range cells {
		column, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		columns[i] = column
	}
	o11, o12, o21, o22 := columns[0], columns[1], columns[2], columns[3]
	e11, e12, e21, e22 := columns[4], columns[5], columns[6], columns[7]

	scores := make([]float64, f.Rows())
	for i := range scores {
		g2 := 2 * (likelihoodTerm(o11[i], e11[i]) +
			likelihoodTerm(o12[i], e12[i]) +
			likelihoodTerm(o21[i], e21[i]) +
			likelihoodTerm(o22[i], e22[i]))
		if m.signed {
			g2 *= sign(o11[i] - e11[i])
		}
		scores[i] = g2
	}
	return scores, nil
}

// likelihoodTerm is O*ln(O/E) for one cell, with degenerate cells
// contributing zero to the statistic.
func likelihoodTerm(o, e float64) float64 {
	if o == 0 || e == 0 {
		return 0
	}
	return o * math.Log(o/e)
}
