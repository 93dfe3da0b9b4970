package frequencies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colloc/domain/contingency"
	"colloc/domain/core"
)

func observedFrame(t *testing.T) *contingency.Frame {
	t.Helper()
	f, err := contingency.FromObserved(
		[]float64{10, 0},
		[]float64{5, 5},
		[]float64{3, 3},
		[]float64{82, 92},
	)
	require.NoError(t, err)
	return f
}

func TestBuilder_IndependenceModel(t *testing.T) {
	builder := NewBuilder()
	f := observedFrame(t)

	out, err := builder.Complete(f, true)
	require.NoError(t, err)
	assert.Same(t, f, out)

	n, err := out.Column(contingency.ColN)
	require.NoError(t, err)
	assert.Equal(t, 100.0, n[0])
	assert.Equal(t, 100.0, n[1])

	e11, err := out.Column(contingency.ColE11)
	require.NoError(t, err)
	e12, err := out.Column(contingency.ColE12)
	require.NoError(t, err)
	e21, err := out.Column(contingency.ColE21)
	require.NoError(t, err)
	e22, err := out.Column(contingency.ColE22)
	require.NoError(t, err)

	// R1=15, R2=85, C1=13, C2=87 for row 0.
	assert.InDelta(t, 1.95, e11[0], 1e-12)
	assert.InDelta(t, 13.05, e12[0], 1e-12)
	assert.InDelta(t, 11.05, e21[0], 1e-12)
	assert.InDelta(t, 73.95, e22[0], 1e-12)

	for i := 0; i < out.Rows(); i++ {
		assert.InDelta(t, n[i], e11[i]+e12[i]+e21[i]+e22[i], 1e-9,
			"expected frequencies of row %d should sum to N", i)
	}
}

func TestBuilder_Idempotent(t *testing.T) {
	builder := NewBuilder()
	f := observedFrame(t)

	_, err := builder.Complete(f, true)
	require.NoError(t, err)
	first, err := f.Column(contingency.ColE11)
	require.NoError(t, err)
	snapshot := append([]float64{}, first...)

	_, err = builder.Complete(f, true)
	require.NoError(t, err)
	second, err := f.Column(contingency.ColE11)
	require.NoError(t, err)
	assert.Equal(t, snapshot, second)
}

func TestBuilder_ExistingColumnsUntouched(t *testing.T) {
	builder := NewBuilder()
	f := observedFrame(t)

	// Pre-seeded derived columns belong to the caller.
	require.NoError(t, f.SetColumn(contingency.ColE11, []float64{42, 42}))
	require.NoError(t, f.SetColumn(contingency.ColN, []float64{1000, 1000}))

	_, err := builder.Complete(f, true)
	require.NoError(t, err)

	e11, err := f.Column(contingency.ColE11)
	require.NoError(t, err)
	assert.Equal(t, []float64{42, 42}, e11)

	// The remaining expected cells are derived against the caller's N.
	e12, err := f.Column(contingency.ColE12)
	require.NoError(t, err)
	assert.InDelta(t, 15.0*87.0/1000.0, e12[0], 1e-12)
}

func TestBuilder_CopyLeavesCallerUntouched(t *testing.T) {
	builder := NewBuilder()
	f := observedFrame(t)

	out, err := builder.Complete(f, false)
	require.NoError(t, err)
	assert.NotSame(t, f, out)
	assert.False(t, f.Has(contingency.ColE11))
	assert.False(t, f.Has(contingency.ColN))
	assert.True(t, out.Has(contingency.ColE11))
}

func TestBuilder_MissingObserved(t *testing.T) {
	builder := NewBuilder()
	f, err := contingency.FromColumns(map[string][]float64{
		contingency.ColO11: {10},
		contingency.ColO12: {5},
	})
	require.NoError(t, err)

	_, err = builder.Complete(f, true)
	require.Error(t, err)
	assert.True(t, core.IsObservedMissing(err))
}
