// Package linreg defines models, options and error sentinels for ordinary
// least squares fitting.
package linreg

import "errors"

// Sentinel errors for regression fitting.
var (
	// ErrTooFewPoints is returned when the sample cannot identify the
	// requested coefficients (fewer observations than parameters).
	ErrTooFewPoints = errors.New("linreg: not enough observations")

	// ErrLengthMismatch is returned for ragged predictor rows or when
	// predictors and response differ in length.
	ErrLengthMismatch = errors.New("linreg: predictors and response must align")

	// ErrSingular is returned when the normal equations are singular —
	// typically collinear or constant predictors.
	ErrSingular = errors.New("linreg: singular design matrix")
)

// Options configures model fitting.
//
// Fields:
//   - Intercept — include a constant term (default true). Without it the
//     fit is forced through the origin.
type Options struct {
	Intercept bool
}

// DefaultOptions returns Options with sane defaults:
//   - intercept included.
func DefaultOptions() Options {
	return Options{Intercept: true}
}

// Model holds a fitted least-squares model.
type Model struct {
	// Coef are the fitted coefficients. With an intercept, Coef[0] is the
	// constant term and Coef[1:] align with the predictor columns;
	// without, Coef aligns with the columns directly.
	Coef []float64

	// Intercept records whether Coef[0] is a constant term.
	Intercept bool

	// R2 is the coefficient of determination on the training data.
	// A constant response that is fitted exactly reports R2 = 1.
	R2 float64
}

// Predict evaluates the model at one predictor row (intercept excluded —
// pass exactly the predictor values).
//
// Errors:
//   - ErrLengthMismatch — row length does not match the fitted columns.
func (m *Model) Predict(row []float64) (float64, error) {
	coef := m.Coef
	var yhat float64
	if m.Intercept {
		yhat = coef[0]
		coef = coef[1:]
	}
	if len(row) != len(coef) {
		return 0, ErrLengthMismatch
	}
	for i, c := range coef {
		yhat += c * row[i]
	}
	return yhat, nil
}

// Residuals returns y − ŷ for each observation row.
//
// Errors:
//   - ErrLengthMismatch — len(rows) != len(y) or a ragged row.
func (m *Model) Residuals(rows [][]float64, y []float64) ([]float64, error) {
	if len(rows) != len(y) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(y))
	for i, row := range rows {
		yhat, err := m.Predict(row)
		if err != nil {
			return nil, err
		}
		out[i] = y[i] - yhat
	}
	return out, nil
}
