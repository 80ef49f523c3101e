package pysrc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2.0"},
		{0.1, "0.1"},
		{0.00625, "0.00625"},
		{1e-05, "1e-05"},
		{1234567.5, "1234567.5"},
		{1e20, "1e+20"},
		{-3, "-3.0"},
		{math.Inf(1), "np.inf"},
		{math.Inf(-1), "-np.inf"},
		{math.NaN(), "np.nan"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Float(tt.in))
	}
}

func TestRepr(t *testing.T) {
	seven := 7
	require.Equal(t, "None", Repr(nil))
	require.Equal(t, "True", Repr(true))
	require.Equal(t, "20", Repr(20))
	require.Equal(t, "7", Repr(&seven))
	require.Equal(t, "None", Repr((*int)(nil)))
	require.Equal(t, `"a\"b\\c\n"`, Repr("a\"b\\c\n"))
	require.Equal(t, `["1m", "5m"]`, Repr([]string{"1m", "5m"}))
	require.Equal(t, `{"a": 1, "b": None}`, Dict(map[string]any{"b": nil, "a": 1}))
	require.Equal(t, "(1,)", Tuple("1"))
}

func TestIsIdentifier(t *testing.T) {
	require.True(t, IsIdentifier("window"))
	require.True(t, IsIdentifier("_x1"))
	require.False(t, IsIdentifier("1x"))
	require.False(t, IsIdentifier("class"))
	require.False(t, IsIdentifier("a-b"))
	require.False(t, IsIdentifier(""))
}

func TestWriterBlock(t *testing.T) {
	w := NewWriter()
	w.Block("try:", func() {
		w.Linef("x = %d", 1)
	})
	w.Block("except Exception:", func() {})

	require.Equal(t, "try:\n    x = 1\nexcept Exception:\n    pass\n", w.String())
}

func TestWriterLineIsVerbatim(t *testing.T) {
	w := NewWriter()
	w.Line(`print("%s: %d rows" % (tf, len(frame)))`)
	w.Comment("100% done")
	w.Commentf("%s  [%s]", "SMA(20)", "native:SMA")

	require.Equal(t,
		"print(\"%s: %d rows\" % (tf, len(frame)))\n# 100% done\n# SMA(20)  [native:SMA]\n",
		w.String())
}
