package ports

import (
	"colloc/domain/contingency"
)

// FrequencyBuilder completes a contingency frame with the columns
// derived from the observed counts.
type FrequencyBuilder interface {
	// Complete adds N and the expected-frequency columns E11..E22 to the
	// frame, derived from the observed marginals under an independence
	// model. Columns that already exist are left untouched, so the
	// builder can be invoked speculatively: completing an already
	// complete frame is a no-op. When inplace is false the input frame
	// is not modified and the completed copy is returned.
	Complete(f *contingency.Frame, inplace bool) (*contingency.Frame, error)
}

// Choose is a scalar binomial coefficient n over k. Implementations may
// return fractional values for non-integer arguments and +Inf where the
// coefficient overflows float64.
type Choose func(n, k float64) float64
