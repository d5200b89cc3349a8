package exchange_test

import (
	"testing"

	"github.com/ecoloop/wastelca/exchange"
	"github.com/stretchr/testify/require"
)

func axisKeys() []exchange.Key {
	return []exchange.Key{
		{Database: "LF", Code: "Aerobic_Residual"},
		{Database: "TS1", Code: "DryRes_Plastic"},
		{Database: "Technosphere", Code: "Boiler_Diesel"},
	}
}

func TestNewDict_Bijection(t *testing.T) {
	keys := axisKeys()
	d, err := exchange.NewDict(keys)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	for i, want := range keys {
		got, err := d.Key(i)
		require.NoError(t, err)
		require.Equal(t, want, got)

		j, ok := d.Index(want)
		require.True(t, ok)
		require.Equal(t, i, j)
	}
}

func TestNewDict_Empty(t *testing.T) {
	_, err := exchange.NewDict(nil)
	require.ErrorIs(t, err, exchange.ErrEmptyDict)
}

func TestNewDict_DuplicateRejected(t *testing.T) {
	keys := axisKeys()
	keys = append(keys, keys[0])
	_, err := exchange.NewDict(keys)
	require.ErrorIs(t, err, exchange.ErrDuplicateKey)
}

func TestNewDict_DuplicateAllowed_FirstWins(t *testing.T) {
	dup := exchange.Key{Database: exchange.BiosphereDB, Code: "co2"}
	d, err := exchange.NewDict([]exchange.Key{dup, {Database: exchange.BiosphereDB, Code: "ch4"}, dup},
		exchange.WithDuplicateKeys())
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	i, ok := d.Index(dup)
	require.True(t, ok)
	require.Equal(t, 0, i)

	// forward direction still total: index 2 resolves to the duplicate key
	k, err := d.Key(2)
	require.NoError(t, err)
	require.Equal(t, dup, k)
}

func TestDict_KeyOutOfRange(t *testing.T) {
	d, err := exchange.NewDict(axisKeys())
	require.NoError(t, err)

	_, err = d.Key(-1)
	require.ErrorIs(t, err, exchange.ErrIndexRange)
	_, err = d.Key(3)
	require.ErrorIs(t, err, exchange.ErrIndexRange)
}

func TestDict_KeysIsCopy(t *testing.T) {
	d, err := exchange.NewDict(axisKeys())
	require.NoError(t, err)

	ks := d.Keys()
	ks[0] = exchange.Key{Database: "mutated", Code: "mutated"}

	orig, err := d.Key(0)
	require.NoError(t, err)
	require.Equal(t, "LF", orig.Database)
}
