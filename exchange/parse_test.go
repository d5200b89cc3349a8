package exchange_test

import (
	"testing"

	"github.com/ecoloop/wastelca/exchange"
	"github.com/stretchr/testify/require"
)

func TestParseKey_SingleQuotes(t *testing.T) {
	k, err := exchange.ParseKey("('LF', 'Aerobic_Residual')")
	require.NoError(t, err)
	require.Equal(t, exchange.Key{Database: "LF", Code: "Aerobic_Residual"}, k)
}

func TestParseKey_DoubleQuotes(t *testing.T) {
	k, err := exchange.ParseKey(`("biosphere3", "0015ec22-72cb-4af1-8c7b-0ba0d041553c")`)
	require.NoError(t, err)
	require.Equal(t, "biosphere3", k.Database)
	require.True(t, k.In(exchange.BiosphereDB))
}

func TestParseKey_Whitespace(t *testing.T) {
	k, err := exchange.ParseKey("  ( 'TS1' ,\t'DryRes_Plastic' )  ")
	require.NoError(t, err)
	require.Equal(t, exchange.Key{Database: "TS1", Code: "DryRes_Plastic"}, k)
}

func TestParseKey_RoundTrip(t *testing.T) {
	orig := exchange.Key{Database: "SF1_product", Code: "Plastic_Rejects"}
	back, err := exchange.ParseKey(orig.String())
	require.NoError(t, err)
	require.Equal(t, orig, back)
}

func TestParseKey_Rejects(t *testing.T) {
	cases := []string{
		"",
		"('LF')",                      // one component
		"'LF', 'x'",                   // no parentheses
		"(LF, x)",                     // unquoted
		"('LF' 'x')",                  // missing comma
		"('LF', 'x') trailing",        // trailing text
		"('LF', 'x', 'y')",            // three components
		"('', 'x')",                   // empty namespace
		"('LF', '')",                  // empty code
		"('LF, 'x')",                  // unbalanced quote
		"exec('import os')",           // arbitrary text
	}
	for _, in := range cases {
		_, err := exchange.ParseKey(in)
		require.ErrorIs(t, err, exchange.ErrKeyGrammar, "input %q", in)
	}
}

func TestComposite_String(t *testing.T) {
	c := exchange.Composite{
		Source: exchange.Key{Database: "TS1_product", Code: "Plastic_Rejects"},
		Target: exchange.Key{Database: "TS1", Code: "DryRes_Plastic"},
	}
	require.Equal(t, "(('TS1_product', 'Plastic_Rejects'), ('TS1', 'DryRes_Plastic'))", c.String())
}
