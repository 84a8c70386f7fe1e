package ffi_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/ffi"
)

func TestDataJSONRoundTripsConstructor(t *testing.T) {
	original := data.Constr{Tag: 0, Args: []data.Data{
		data.I{Value: big.NewInt(42)},
		data.B{Value: []byte{0xde, 0xad, 0xbe, 0xef}},
		data.List{Items: []data.Data{data.I{Value: big.NewInt(1)}, data.I{Value: big.NewInt(2)}}},
	}}

	raw, err := ffi.EncodeDataJSON(original)
	require.NoError(t, err)

	decoded, err := ffi.ParseDataJSON(raw)
	require.NoError(t, err)
	require.True(t, original.Equal(decoded))
}

func TestDataJSONMap(t *testing.T) {
	original := data.Map{Pairs: []data.Pair{
		{Key: data.B{Value: []byte("k")}, Value: data.I{Value: big.NewInt(7)}},
	}}

	raw, err := ffi.EncodeDataJSON(original)
	require.NoError(t, err)

	decoded, err := ffi.ParseDataJSON(raw)
	require.NoError(t, err)
	require.True(t, original.Equal(decoded))
}
