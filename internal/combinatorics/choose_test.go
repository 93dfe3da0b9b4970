package combinatorics

import (
	"math"
	"testing"
)

func TestBinomial_SmallValues(t *testing.T) {
	cases := []struct {
		n, k, want float64
	}{
		{0, 0, 1},
		{4, 2, 6},
		{5, 2, 10},
		{13, 10, 286},
		{10, 0, 1},
		{10, 10, 1},
	}
	for _, tc := range cases {
		got := Binomial(tc.n, tc.k)
		if math.Abs(got-tc.want) > tc.want*1e-9 {
			t.Errorf("Binomial(%v, %v) = %v, want %v", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestBinomial_OutsideDomain(t *testing.T) {
	for _, args := range [][2]float64{{-1, 0}, {3, -1}, {2, 5}, {math.NaN(), 1}} {
		if got := Binomial(args[0], args[1]); !math.IsNaN(got) {
			t.Errorf("Binomial(%v, %v) = %v, want NaN", args[0], args[1], got)
		}
	}
}

func TestBinomial_OverflowsToInf(t *testing.T) {
	if got := Binomial(2000, 1000); !math.IsInf(got, 1) {
		t.Errorf("Binomial(2000, 1000) = %v, want +Inf", got)
	}
}

func TestVectorized(t *testing.T) {
	choose := Vectorized(Binomial)
	got := choose([]float64{4, 5, 2}, []float64{2, 2, 5})

	if math.Abs(got[0]-6) > 1e-9 || math.Abs(got[1]-10) > 1e-9 {
		t.Errorf("vectorized choose = %v, want [6 10 NaN]", got)
	}
	if !math.IsNaN(got[2]) {
		t.Errorf("vectorized choose out-of-domain = %v, want NaN", got[2])
	}
}
