package combinatorics

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"colloc/ports"
)

// Binomial is the binomial coefficient n over k, generalized to real
// arguments via the gamma function. Arguments outside the domain
// (negative, or k > n) yield NaN instead of a panic; coefficients too
// large for float64 overflow to +Inf.
func Binomial(n, k float64) float64 {
	if math.IsNaN(n) || math.IsNaN(k) || n < 0 || k < 0 || k > n {
		return math.NaN()
	}
	return combin.GeneralizedBinomial(n, k)
}

// Vectorized adapts a scalar choose function to parallel columns of
// (n, k) pairs.
func Vectorized(choose ports.Choose) func(n, k []float64) []float64 {
	return func(n, k []float64) []float64 {
		out := make([]float64, len(n))
		for i := range n {
			out[i] = choose(n[i], k[i])
		}
		return out
	}
}
