package vec

import "math"

// Sum returns Σ x[i] in a fixed 0→n−1 pass. Sum(nil) == 0.
// Complexity: O(n) time.
func Sum(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of x.
//
// Errors:
//   - ErrEmptyInput — len(x) == 0.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	return Sum(x) / float64(len(x)), nil
}

// Variance returns the sample variance of x (n−1 denominator), computed in
// two passes around the mean for numerical stability.
//
// Errors:
//   - ErrTooFewPoints — len(x) < 2.
func Variance(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooFewPoints
	}
	mean, _ := Mean(x)
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(x)-1), nil
}

// Std returns the sample standard deviation of x.
//
// Errors:
//   - ErrTooFewPoints — len(x) < 2.
func Std(x []float64) (float64, error) {
	v, err := Variance(x)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
