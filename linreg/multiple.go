package linreg

import "math"

// pivotEps is the threshold below which a pivot is treated as zero during
// elimination; the normal equations of collinear predictors land here.
const pivotEps = 1e-12

// FitMultiple — ordinary least squares with k predictors via the normal
// equations.
//
// Description:
//
//	Builds XᵀX and Xᵀy in one accumulation pass over the rows (with an
//	implicit leading 1-column when the intercept is on), then solves
//	XᵀX β = Xᵀy by Gaussian elimination with partial pivoting over a flat
//	row-major buffer.
//
// Algorithm Outline:
//  1. Validate shape: rows align with y, all rows the same width k ≥ 1,
//     and n ≥ m where m = k (+1 with intercept).
//  2. Accumulate the m×m Gram matrix XᵀX and the m-vector Xᵀy.
//  3. Eliminate with partial pivoting; a pivot below pivotEps (relative to
//     the column scale) means collinear predictors → ErrSingular.
//  4. Back-substitute β, then compute R² from the residuals.
//
// Complexity:
//
//	Time   = O(n·m²) accumulation + O(m³) solve
//	Memory = O(m²)
//
// Errors:
//   - ErrLengthMismatch — ragged rows or len(rows) != len(y).
//   - ErrTooFewPoints — n < m (or no predictors at all).
//   - ErrSingular — collinear or constant predictor columns.
func FitMultiple(rows [][]float64, y []float64, opts *Options) (*Model, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n := len(rows)
	if n != len(y) {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrTooFewPoints
	}
	k := len(rows[0])
	if k == 0 {
		return nil, ErrTooFewPoints
	}
	for _, row := range rows {
		if len(row) != k {
			return nil, ErrLengthMismatch
		}
	}
	m := k
	if o.Intercept {
		m++
	}
	if n < m {
		return nil, ErrTooFewPoints
	}

	// Gram matrix XᵀX (flat row-major m×m) and Xᵀy, accumulated in one
	// pass; design(row, j) is the implicit j-th design column entry.
	gram := make([]float64, m*m)
	xty := make([]float64, m)
	design := func(row []float64, j int) float64 {
		if o.Intercept {
			if j == 0 {
				return 1
			}
			return row[j-1]
		}
		return row[j]
	}
	for r, row := range rows {
		for i := 0; i < m; i++ {
			di := design(row, i)
			xty[i] += di * y[r]
			for j := i; j < m; j++ {
				gram[i*m+j] += di * design(row, j)
			}
		}
	}
	// Mirror the upper triangle; XᵀX is symmetric.
	for i := 1; i < m; i++ {
		for j := 0; j < i; j++ {
			gram[i*m+j] = gram[j*m+i]
		}
	}

	coef, err := solve(gram, xty, m)
	if err != nil {
		return nil, err
	}

	model := &Model{Coef: coef, Intercept: o.Intercept}

	// R² from residuals over the training rows.
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)
	var ssRes, ssTot float64
	for r, row := range rows {
		yhat, _ := model.Predict(row)
		d := y[r] - yhat
		ssRes += d * d
		dy := y[r] - yMean
		ssTot += dy * dy
	}
	model.R2 = rSquared(ssRes, ssTot)

	return model, nil
}

// solve performs in-place Gaussian elimination with partial pivoting on the
// flat row-major m×m system a·x = b.
func solve(a, b []float64, m int) ([]float64, error) {
	for col := 0; col < m; col++ {
		// Partial pivoting: largest magnitude in the column wins.
		pivot := col
		best := math.Abs(a[col*m+col])
		for r := col + 1; r < m; r++ {
			if v := math.Abs(a[r*m+col]); v > best {
				best, pivot = v, r
			}
		}
		if best < pivotEps {
			return nil, ErrSingular
		}
		if pivot != col {
			for j := 0; j < m; j++ {
				a[col*m+j], a[pivot*m+j] = a[pivot*m+j], a[col*m+j]
			}
			b[col], b[pivot] = b[pivot], b[col]
		}

		inv := 1.0 / a[col*m+col]
		for r := col + 1; r < m; r++ {
			f := a[r*m+col] * inv
			if f == 0 {
				continue
			}
			for j := col; j < m; j++ {
				a[r*m+j] -= f * a[col*m+j]
			}
			b[r] -= f * b[col]
		}
	}

	// Back substitution.
	x := make([]float64, m)
	for i := m - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < m; j++ {
			sum -= a[i*m+j] * x[j]
		}
		x[i] = sum / a[i*m+i]
	}

	return x, nil
}
