package function

import "fmt"

// DimensionError reports an evaluation at a point whose dimension does not
// match the function's expected input size. It is a usage error: the run
// is aborted before (or instead of) any iteration.
type DimensionError struct {
	Want int // Dimension the function expects.
	Got  int // Dimension of the supplied point.
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("function: dimension mismatch: expected %d, got %d", e.Want, e.Got)
}

// NonFiniteError reports that an evaluation produced NaN or ±Inf. The
// minimizer aborts the run rather than continuing with corrupted state.
type NonFiniteError struct {
	Op string    // What produced the value: "value" or "gradient".
	At []float64 // Point at which the evaluation happened.
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("function: non-finite %s at %v", e.Op, e.At)
}
