package catalog

import (
	"errors"
	"testing"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	c := Default()
	require.Greater(t, c.Len(), 500)

	seen := map[string]bool{}
	for _, d := range c.List() {
		require.Len(t, d.Defaults, len(d.ParamNames), d.Key())
		require.False(t, seen[d.Key()], "duplicate %s", d.Key())
		seen[d.Key()] = true
		require.NotEmpty(t, d.Category, d.Key())
	}

	counts := c.Counts()
	for _, library := range core.Libraries() {
		require.NotZero(t, counts[library], library)
	}
	require.Equal(t, AlphaCount, counts[core.WQA101])
}

func TestLookup(t *testing.T) {
	c := Default()

	d, err := c.Lookup(core.Native, "SMA")
	require.NoError(t, err)
	require.Equal(t, []string{"window"}, d.ParamNames)
	require.Equal(t, []any{20}, d.Defaults)

	d, err = c.Lookup(core.Native, "MACD")
	require.NoError(t, err)
	require.Equal(t, "MACD(12,26,9)", d.Spec().DisplayName())

	_, err = c.Lookup(core.Native, "NOPE")
	require.ErrorIs(t, err, core.ErrUnknownIndicator)

	var unknown *core.UnknownIndicatorError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "NOPE", unknown.Name)
}

func TestFilter(t *testing.T) {
	c := Default()

	all := c.Filter(Filter{})
	require.Len(t, all, c.Len())

	// search matches name substrings, so the "staRSInsouth" candle pattern is included
	names := map[string]bool{}
	for _, d := range c.Filter(Filter{Search: "rsi"}) {
		names[lowerName(d.Name)] = true
	}
	require.Equal(t, map[string]bool{
		"rsi": true, "stochrsi": true, "rsiindicator": true, "stochrsiindicator": true,
		"qtpylib.rsi": true, "cdl3starsinsouth": true,
	}, names)

	talibMomentum := c.Filter(Filter{Library: core.TALib, Category: "momentum indicators"})
	require.NotEmpty(t, talibMomentum)
	for _, d := range talibMomentum {
		require.Equal(t, core.TALib, d.Library)
		require.Equal(t, "Momentum Indicators", d.Category)
	}

	require.Empty(t, c.Filter(Filter{Library: core.SMC, Search: "macd"}))
}

func TestCategories(t *testing.T) {
	c := Default()
	categories := c.Categories(core.WQA101)
	require.Equal(t, []string{"Industry Neutral", "Market Cap", "Price-Volume"}, categories)
}

func TestAlphaIDs(t *testing.T) {
	ids := AlphaIDs("")
	require.Equal(t, AlphaCount, ids.Length())

	var prev int64
	for id := range ids.Iter() {
		require.Greater(t, id, prev)
		prev = id
	}

	require.Equal(t, "alpha007", AlphaName(7))
	require.Equal(t, 1, AlphaIDs(AlphaMarketCap).Length())
}

func TestNewRejectsMismatchedDefaults(t *testing.T) {
	_, err := New(core.IndicatorDescriptor{
		Library:    core.Native,
		Name:       "X",
		ParamNames: []string{"a", "b"},
		Defaults:   []any{1},
	})
	require.Error(t, err)

	d := core.IndicatorDescriptor{Library: core.Native, Name: "X"}
	_, err = New(d, d)
	require.Error(t, err)
}

func lowerName(s string) string {
	out := []rune{}
	for _, c := range s {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
