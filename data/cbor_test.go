package data_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/data"
)

func roundTrip(t *testing.T, d data.Data) {
	t.Helper()
	encoded, err := data.Encode(d)
	require.NoError(t, err)
	decoded, n, err := data.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.True(t, d.Equal(decoded), "round trip mismatch: %s != %s", data.String(d), data.String(decoded))

	reEncoded, err := data.Encode(decoded)
	require.NoError(t, err)
	require.Equal(t, encoded, reEncoded, "re-encoding must be byte-identical")
}

func TestRoundTripPrimitives(t *testing.T) {
	roundTrip(t, data.NewI(0))
	roundTrip(t, data.NewI(-1))
	roundTrip(t, data.NewI(1_000_000))
	roundTrip(t, data.NewB(nil))
	roundTrip(t, data.NewB([]byte("hello world")))
	roundTrip(t, data.List{})
	roundTrip(t, data.Map{})
}

func TestRoundTripBignum(t *testing.T) {
	big1, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	roundTrip(t, data.I{Value: big1})
	roundTrip(t, data.I{Value: new(big.Int).Neg(big1)})
}

func TestRoundTripChunkedByteString(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = byte(i)
	}
	roundTrip(t, data.NewB(long))
}

func TestRoundTripConstr(t *testing.T) {
	roundTrip(t, data.Constr{Tag: 0, Args: []data.Data{data.NewI(1), data.NewB([]byte{0xde, 0xad})}})
	roundTrip(t, data.Constr{Tag: 6, Args: nil})
	roundTrip(t, data.Constr{Tag: 7, Args: []data.Data{data.NewI(2)}})
	roundTrip(t, data.Constr{Tag: 127, Args: nil})
	roundTrip(t, data.Constr{Tag: 200, Args: []data.Data{data.NewI(3)}})
}

func TestRoundTripNestedMapAndList(t *testing.T) {
	d := data.Map{Pairs: []data.Pair{
		{Key: data.NewB([]byte("a")), Value: data.List{Items: []data.Data{data.NewI(1), data.NewI(2)}}},
		{Key: data.NewB([]byte("b")), Value: data.Constr{Tag: 1, Args: []data.Data{data.NewI(3)}}},
	}}
	roundTrip(t, d)
}

func TestMemoryUsage(t *testing.T) {
	require.Equal(t, int64(1), data.MemoryUsage(data.NewI(0)))
	require.Equal(t, int64(1), data.MemoryUsage(data.NewB(nil)))
	require.Greater(t, data.MemoryUsage(data.Constr{Tag: 0, Args: []data.Data{data.NewI(1)}}), int64(0))
}
