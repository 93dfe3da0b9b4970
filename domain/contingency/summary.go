package contingency

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for one column. Association
// scores are NaN for degenerate rows, so the summary is computed over
// the finite values only; Defined counts them.
type Summary struct {
	Rows    int     `json:"rows"`
	Defined int     `json:"defined"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
	Q25     float64 `json:"q25"`
	Q75     float64 `json:"q75"`
}

// Summarize computes descriptive statistics for the named column,
// skipping NaN and infinite values.
func (f *Frame) Summarize(name string) (Summary, error) {
	column, err := f.Column(name)
	if err != nil {
		return Summary{}, err
	}

	finite := make([]float64, 0, len(column))
	for _, v := range column {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	summary := Summary{
		Rows:    f.rows,
		Defined: len(finite),
		Mean:    math.NaN(),
		StdDev:  math.NaN(),
		Min:     math.NaN(),
		Max:     math.NaN(),
		Median:  math.NaN(),
		Q25:     math.NaN(),
		Q75:     math.NaN(),
	}
	if len(finite) == 0 {
		return summary, nil
	}

	summary.Mean, _ = stats.Mean(finite)
	summary.StdDev, _ = stats.StandardDeviation(finite)
	summary.Min, _ = stats.Min(finite)
	summary.Max, _ = stats.Max(finite)
	summary.Median, _ = stats.Median(finite)
	summary.Q25, _ = stats.Percentile(finite, 25)
	summary.Q75, _ = stats.Percentile(finite, 75)

	return summary, nil
}
