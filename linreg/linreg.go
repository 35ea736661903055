package linreg

import "github.com/katalvlaran/statkit/vec"

// Fit — simple ordinary least squares, one predictor.
//
// Description:
//
//	The closed form: beta = Sxy/Sxx, alpha = ȳ − beta·x̄. No matrix
//	machinery — a single pass for the means, a single pass for the
//	cross-products.
//
// Complexity: O(n) time, O(1) memory.
//
// Errors:
//   - ErrLengthMismatch — len(x) != len(y).
//   - ErrTooFewPoints — fewer than two observations.
//   - ErrSingular — constant x (Sxx == 0).
func Fit(x, y []float64) (*Model, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) < 2 {
		return nil, ErrTooFewPoints
	}

	xMean, _ := vec.Mean(x)
	yMean, _ := vec.Mean(y)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - xMean
		sxx += dx * dx
		sxy += dx * (y[i] - yMean)
	}
	if sxx == 0 {
		return nil, ErrSingular
	}

	beta := sxy / sxx
	alpha := yMean - beta*xMean

	// R² from the residual and total sums of squares.
	var ssRes, ssTot float64
	for i := range x {
		r := y[i] - (alpha + beta*x[i])
		ssRes += r * r
		dy := y[i] - yMean
		ssTot += dy * dy
	}

	return &Model{
		Coef:      []float64{alpha, beta},
		Intercept: true,
		R2:        rSquared(ssRes, ssTot),
	}, nil
}

// rSquared converts residual/total sums of squares into R², treating an
// exactly fitted constant response (ssTot == 0) as a perfect fit.
func rSquared(ssRes, ssTot float64) float64 {
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}
