package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/featdrift/featdrift/dataset"
	"github.com/featdrift/featdrift/pkg/errors"
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, scaler.Mean[0], 1e-9)
	assert.InDelta(t, 25.0, scaler.Mean[1], 1e-9)

	// each scaled column has mean 0 and stddev 1
	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			sumSq += d * d
		}
		assert.InDelta(t, 0.0, mean, 1e-9)
		assert.InDelta(t, 1.0, math.Sqrt(sumSq/float64(r)), 1e-9)
	}
}

func TestStandardScalerConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{5, 5, 5})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	// constant columns divide by 1, producing all zeros
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, scaled.At(i, 0))
	}
}

func TestStandardScalerErrors(t *testing.T) {
	scaler := NewStandardScaler()

	err := scaler.Fit(&mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	var nfErr *errors.NotFittedError
	require.Error(t, err)
	assert.True(t, errors.As(err, &nfErr))

	require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	_, err = scaler.Transform(mat.NewDense(2, 3, nil))
	var dimErr *errors.DimensionError
	require.Error(t, err)
	assert.True(t, errors.As(err, &dimErr))
}

func TestTransformTable(t *testing.T) {
	table, err := dataset.FromColumns([]string{"x", "y"},
		[][]float64{{1, 2, 3}, {10, 20, 30}})
	require.NoError(t, err)

	scaler := NewStandardScaler()
	require.NoError(t, scaler.Fit(table.Matrix()))

	scaled, err := scaler.TransformTable(table)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, scaled.Names())
	assert.Equal(t, 3, scaled.Rows())

	x, err := scaled.Column("x")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x[1], 1e-9) // middle value is the mean
}
