package vec

// Add returns x + y elementwise in a new slice.
// Complexity: O(n) time, O(n) memory.
func Add(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] + y[i]
	}
	return out, nil
}

// AddTo stores x + y elementwise into dst. dst may alias x or y.
// Complexity: O(n) time, zero allocations.
func AddTo(dst, x, y []float64) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLengthMismatch
	}
	for i := range x {
		dst[i] = x[i] + y[i]
	}
	return nil
}

// Sub returns x − y elementwise in a new slice.
// Complexity: O(n) time, O(n) memory.
func Sub(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}
	return out, nil
}

// Mul returns x · y elementwise (Hadamard product) in a new slice.
// Complexity: O(n) time, O(n) memory.
func Mul(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] * y[i]
	}
	return out, nil
}

// Scale returns alpha·x in a new slice.
// Complexity: O(n) time, O(n) memory.
func Scale(alpha float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = alpha * x[i]
	}
	return out
}

// ScaleTo stores alpha·x into dst. dst may alias x.
// Complexity: O(n) time, zero allocations.
func ScaleTo(dst []float64, alpha float64, x []float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}
	for i := range x {
		dst[i] = alpha * x[i]
	}
	return nil
}

// AXPY returns alpha·x + y in a new slice.
// Complexity: O(n) time, O(n) memory.
func AXPY(alpha float64, x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = alpha*x[i] + y[i]
	}
	return out, nil
}

// AXPYTo stores alpha·x + y into dst. dst may alias x or y.
// Complexity: O(n) time, zero allocations.
func AXPYTo(dst []float64, alpha float64, x, y []float64) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLengthMismatch
	}
	for i := range x {
		dst[i] = alpha*x[i] + y[i]
	}
	return nil
}

// Dot returns the inner product Σ x[i]·y[i].
// Complexity: O(n) time, O(1) memory.
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum, nil
}
