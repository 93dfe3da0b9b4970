package contingency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colloc/domain/core"
)

func TestFromColumns_LengthMismatch(t *testing.T) {
	_, err := FromColumns(map[string][]float64{
		ColO11: {1, 2},
		ColO12: {1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestFromColumns_Empty(t *testing.T) {
	_, err := FromColumns(map[string][]float64{})
	assert.ErrorIs(t, err, core.ErrEmptyFrame)
}

func TestFromObserved_CanonicalOrder(t *testing.T) {
	f, err := FromObserved([]float64{1}, []float64{2}, []float64{3}, []float64{4})
	require.NoError(t, err)
	assert.Equal(t, []string{ColO11, ColO12, ColO21, ColO22}, f.Columns())
	assert.Equal(t, 1, f.Rows())
}

func TestColumn_NotFound(t *testing.T) {
	f := NewFrame(3)
	_, err := f.Column("z_score")
	require.Error(t, err)
	assert.True(t, core.IsColumnNotFound(err))
	assert.ErrorContains(t, err, "z_score")
}

func TestSetColumn_Overwrite(t *testing.T) {
	f := NewFrame(2)
	require.NoError(t, f.SetColumn("score", []float64{1, 2}))
	require.NoError(t, f.SetColumn("score", []float64{3, 4}))

	column, err := f.Column("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, column)
	assert.Equal(t, []string{"score"}, f.Columns(), "overwrite must not duplicate the column")
}

func TestSetColumn_LengthMismatch(t *testing.T) {
	f := NewFrame(2)
	err := f.SetColumn("score", []float64{1})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestCopy_Independent(t *testing.T) {
	f, err := FromObserved([]float64{1}, []float64{2}, []float64{3}, []float64{4})
	require.NoError(t, err)

	clone := f.Copy()
	require.NoError(t, clone.SetColumn(ColO11, []float64{99}))
	require.NoError(t, clone.SetColumn("extra", []float64{7}))

	original, err := f.Column(ColO11)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, original)
	assert.False(t, f.Has("extra"))
}

func TestSummarize_SkipsUndefinedScores(t *testing.T) {
	f := NewFrame(5)
	require.NoError(t, f.SetColumn("score", []float64{1, 2, 3, math.NaN(), math.Inf(1)}))

	summary, err := f.Summarize("score")
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Rows)
	assert.Equal(t, 3, summary.Defined)
	assert.InDelta(t, 2.0, summary.Mean, 1e-12)
	assert.InDelta(t, 1.0, summary.Min, 1e-12)
	assert.InDelta(t, 3.0, summary.Max, 1e-12)
	assert.InDelta(t, 2.0, summary.Median, 1e-12)
}

func TestSummarize_AllUndefined(t *testing.T) {
	f := NewFrame(2)
	require.NoError(t, f.SetColumn("score", []float64{math.NaN(), math.NaN()}))

	summary, err := f.Summarize("score")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Defined)
	assert.True(t, math.IsNaN(summary.Mean))
}

func TestSummarize_MissingColumn(t *testing.T) {
	f := NewFrame(2)
	_, err := f.Summarize("missing")
	assert.True(t, core.IsColumnNotFound(err))
}
