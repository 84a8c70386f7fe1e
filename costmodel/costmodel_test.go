package costmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/costmodel"
)

func TestDefaultV3Loads(t *testing.T) {
	model, err := costmodel.DefaultV3()
	require.NoError(t, err)
	require.NotZero(t, model.Machine.Startup)
	cost, err := model.CostOf("addInteger")
	require.NoError(t, err)
	require.NotNil(t, cost.CPU)
	require.NotNil(t, cost.Mem)
}

func TestMissingBuiltinErrors(t *testing.T) {
	model, err := costmodel.DefaultV3()
	require.NoError(t, err)
	_, err = model.CostOf("notARealBuiltin")
	require.Error(t, err)
}

func TestLinearOnDiagonal(t *testing.T) {
	f := costmodel.LinearOnDiagonal{CDiag: 100, COff: 2, B: 1}
	require.Equal(t, int64(100), f.Cost(costmodel.Args{X: 5, Y: 5}))
	require.Equal(t, int64(21), f.Cost(costmodel.Args{X: 5, Y: 10}))
}
