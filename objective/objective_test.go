package objective

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquaredGradientIsResidual(t *testing.T) {
	pred := []float64{1, 2, 3}
	label := []float64{1, 1, 1}
	grad := make([]float64, 3)
	hess := make([]float64, 3)
	Squared{}.Gradients(pred, label, grad, hess)
	require.Equal(t, []float64{0, 1, 2}, grad)
	require.Equal(t, []float64{1, 1, 1}, hess)
}

func TestLogLossGradientBounded(t *testing.T) {
	pred := []float64{-10, 0, 10}
	label := []float64{0, 1, 1}
	grad := make([]float64, 3)
	hess := make([]float64, 3)
	LogLoss{}.Gradients(pred, label, grad, hess)
	for i := range grad {
		require.GreaterOrEqual(t, grad[i], -1.0)
		require.LessOrEqual(t, grad[i], 1.0)
		require.GreaterOrEqual(t, hess[i], hessFloor)
	}
}

func TestPoissonGradientAtZeroScoreIsRateMinusLabel(t *testing.T) {
	pred := []float64{0}
	label := []float64{3}
	grad := make([]float64, 1)
	hess := make([]float64, 1)
	Poisson{}.Gradients(pred, label, grad, hess)
	require.Equal(t, -2.0, grad[0], "rate=1, label=3")
	require.Equal(t, 1.0, hess[0], "rate=1")
}

func TestObjectiveNames(t *testing.T) {
	cases := map[Objective]string{
		Squared{}: "reg:squared",
		LogLoss{}: "binary:logistic",
		Poisson{}: "count:poisson",
	}
	for obj, want := range cases {
		require.Equal(t, want, obj.Name())
	}
}
