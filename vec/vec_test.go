package vec_test

import (
	"testing"

	"github.com/katalvlaran/statkit/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArithmetic_Known pins the elementwise kernels on tiny inputs.
func TestArithmetic_Known(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20, 30}

	sum, err := vec.Add(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, sum)

	diff, err := vec.Sub(y, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27}, diff)

	prod, err := vec.Mul(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40, 90}, prod)

	assert.Equal(t, []float64{2, 4, 6}, vec.Scale(2, x))

	axpy, err := vec.AXPY(2, x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 24, 36}, axpy)

	dot, err := vec.Dot(x, y)
	require.NoError(t, err)
	assert.Equal(t, 140.0, dot, "1·10 + 2·20 + 3·30")
}

// TestInPlaceVariants verifies the *To kernels write into dst, including
// when dst aliases an operand.
func TestInPlaceVariants(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	dst := make([]float64, 3)

	require.NoError(t, vec.AddTo(dst, x, y))
	assert.Equal(t, []float64{5, 7, 9}, dst)

	require.NoError(t, vec.AXPYTo(dst, 10, x, y))
	assert.Equal(t, []float64{14, 25, 36}, dst)

	require.NoError(t, vec.ScaleTo(x, 3, x), "aliasing dst with x is allowed")
	assert.Equal(t, []float64{3, 6, 9}, x)

	assert.ErrorIs(t, vec.AddTo(dst[:2], x, y), vec.ErrLengthMismatch,
		"short destination must error")
}

// TestArithmetic_LengthMismatch covers operand validation across kernels.
func TestArithmetic_LengthMismatch(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{1}

	_, err := vec.Add(x, y)
	assert.ErrorIs(t, err, vec.ErrLengthMismatch)
	_, err = vec.Sub(x, y)
	assert.ErrorIs(t, err, vec.ErrLengthMismatch)
	_, err = vec.Mul(x, y)
	assert.ErrorIs(t, err, vec.ErrLengthMismatch)
	_, err = vec.AXPY(1, x, y)
	assert.ErrorIs(t, err, vec.ErrLengthMismatch)
	_, err = vec.Dot(x, y)
	assert.ErrorIs(t, err, vec.ErrLengthMismatch)
}

// TestMoments_Known verifies Sum/Mean/Variance/Std on a hand-computed case:
// x = [2,4,4,4,5,5,7,9] → mean 5, sample variance 32/7.
func TestMoments_Known(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.Equal(t, 40.0, vec.Sum(x))

	mean, err := vec.Mean(x)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-12)

	v, err := vec.Variance(x)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, v, 1e-12, "sample variance with n−1 denominator")

	s, err := vec.Std(x)
	require.NoError(t, err)
	assert.InDelta(t, 2.13808993529939, s, 1e-12)
}

// TestMoments_Errors covers empty and single-point inputs.
func TestMoments_Errors(t *testing.T) {
	_, err := vec.Mean(nil)
	assert.ErrorIs(t, err, vec.ErrEmptyInput)

	_, err = vec.Variance([]float64{1})
	assert.ErrorIs(t, err, vec.ErrTooFewPoints)

	_, err = vec.Std([]float64{1})
	assert.ErrorIs(t, err, vec.ErrTooFewPoints)

	assert.Equal(t, 0.0, vec.Sum(nil), "Sum of nothing is zero, not an error")
}
