// Package linreg fits ordinary least squares models: a closed-form fast
// path for one predictor and a normal-equations path for several.
//
// 🚀 What is OLS?
//
//	Ordinary least squares picks the coefficients minimizing the squared
//	residuals between a response y and a linear combination of predictors.
//	With one predictor the solution is a two-line closed form; with several
//	it is the solution of the normal equations XᵀX β = Xᵀy.
//
// ✨ Key features:
//   - Fit: simple regression via the closed form — no matrix machinery
//   - FitMultiple: k predictors via normal equations, solved by Gaussian
//     elimination with partial pivoting over a flat row-major buffer
//   - Model: coefficients, R², prediction and residuals
//   - Optional intercept (Options.Intercept, default on)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/linreg"
//
//	m, err := linreg.Fit(x, y)          // y ≈ Coef[0] + Coef[1]·x
//	yhat, err := m.Predict([]float64{3.5})
//
//	mm, err := linreg.FitMultiple(rows, y, nil)
//
// Performance:
//
//   - Fit:         O(n) time, O(1) memory
//   - FitMultiple: O(n·k²) accumulation + O(k³) solve, k predictors
//
// Errors are explicit sentinels: collinear predictors surface ErrSingular,
// undersized samples ErrTooFewPoints, ragged input ErrLengthMismatch.
package linreg
