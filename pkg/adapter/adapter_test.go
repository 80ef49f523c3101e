package adapter

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spec(library core.Library, name string, params ...core.Param) core.IndicatorSpec {
	return core.IndicatorSpec{Library: library, Name: name, Params: core.Params(params)}
}

func TestTable_CoversCatalog(t *testing.T) {
	cat := catalog.Default()
	table := Default()

	require.Equal(t, cat.Len(), table.Len())
	for _, d := range cat.List() {
		recipe, err := table.Lookup(d.Library, d.Name)
		require.NoError(t, err, d.Key())
		require.Equal(t, d.Key(), recipe.Key())
	}
}

func TestTable_DefaultsEmit(t *testing.T) {
	for _, d := range catalog.Default().List() {
		code, err := EmitCall(d.Spec(), AllInputs())
		require.NoError(t, err, d.Key())
		require.NotEmpty(t, code, d.Key())
	}
}

func TestNewTable_RejectsUnknownEntry(t *testing.T) {
	cat, err := catalog.New(core.IndicatorDescriptor{Library: core.Native, Name: "SMA", ParamNames: []string{"window"}, Defaults: []any{20}})
	require.NoError(t, err)

	_, err = NewTable(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no catalog entry")
}

func TestEmitCall_SMA(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "SMA", core.Param{Name: "window", Value: 20}), AllInputs())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "# SMA(20)  [native:SMA]\n"))
	assert.Contains(t, code, `_res = vbt.MA.run(close, window=20, wtype="simple")`)
	assert.Contains(t, code, `result["SMA(20)"] = _as_series(_extract(_res, ["ma"]), close.index)`)
	assert.Contains(t, code, `_ok("SMA(20)", 1)`)
	assert.Contains(t, code, `_res = vbt.MA.run(close, window=20, ewm=False)`)
	assert.Contains(t, code, `_fail(result, "SMA(20)", ["SMA(20)"], _err)`)
}

func TestEmitCall_SynonymParam(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "SMA", core.Param{Name: "length", Value: 50}), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "window=50")
	assert.NotContains(t, code, "ignored parameters")
}

func TestEmitCall_IgnoredParams(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "SMA",
		core.Param{Name: "window", Value: 20},
		core.Param{Name: "colour", Value: "red"},
	), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "# ignored parameters: colour")
	assert.NotContains(t, code, "colour=")
}

func TestEmitCall_VolumeAbsent(t *testing.T) {
	available := NewAvailable("open", "high", "low", "close")
	code, err := EmitCall(spec(core.Native, "OBV"), available)
	require.NoError(t, err)

	assert.Contains(t, code, `print("   ⏭️  OBV skipped: volume required")`)
	assert.NotContains(t, code, "result[")

	call, err := Default().Resolve(spec(core.Native, "OBV"))
	require.NoError(t, err)
	assert.Empty(t, call.OutputColumns(available))
	assert.Equal(t, []string{"OBV"}, call.OutputColumns(AllInputs()))
}

func TestEmitCall_VolumeGuard(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "OBV"), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "if volume is None:\n")
	assert.Contains(t, code, "else:\n    try:\n")
}

func TestEmitCall_MultiOutput(t *testing.T) {
	s := spec(core.Native, "MACD",
		core.Param{Name: "fast", Value: 12},
		core.Param{Name: "slow", Value: 26},
		core.Param{Name: "signal", Value: 9},
	)
	call, err := Default().Resolve(s)
	require.NoError(t, err)
	require.Equal(t, []string{
		"MACD(12,26,9)_macd",
		"MACD(12,26,9)_signal",
		"MACD(12,26,9)_histogram",
	}, call.Columns)

	code, err := EmitCall(s, AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "fast_window=12, slow_window=26, signal_window=9")
	assert.Contains(t, code, `result["MACD(12,26,9)_histogram"] = _as_series(_extract(_res, ["hist", "histogram"]), close.index)`)
	assert.Contains(t, code, `_ok("MACD(12,26,9)", 3)`)
}

func TestResolve_CatalogParamOrder(t *testing.T) {
	tests := []struct {
		name    string
		spec    core.IndicatorSpec
		display string
	}{
		{
			name: "shuffled keys",
			spec: spec(core.Native, "MACD",
				core.Param{Name: "signal", Value: 9},
				core.Param{Name: "fast", Value: 12},
				core.Param{Name: "slow", Value: 26},
			),
			display: "MACD(12,26,9)",
		},
		{
			name: "alias takes its parameter's place",
			spec: spec(core.Native, "MACD",
				core.Param{Name: "signal_window", Value: 9},
				core.Param{Name: "slow", Value: 26},
				core.Param{Name: "fast_window", Value: 12},
			),
			display: "MACD(12,26,9)",
		},
		{
			name: "unknown keys sorted last",
			spec: spec(core.Native, "SMA",
				core.Param{Name: "zeta", Value: 2},
				core.Param{Name: "alpha", Value: 1},
				core.Param{Name: "window", Value: 20},
			),
			display: "SMA(20,1,2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := Default().Resolve(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.display, call.Display)
			assert.Equal(t, tt.display, Default().Canonical(tt.spec).DisplayName())
		})
	}

	unknown := spec(core.Native, "NOPE", core.Param{Name: "b", Value: 1}, core.Param{Name: "a", Value: 2})
	assert.Equal(t, unknown, Default().Canonical(unknown))
}

func TestEmitCall_Blacklisted(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "RPROBNX"), AllInputs())
	require.NoError(t, err)

	assert.Contains(t, code, `print("   ⏭️  RPROBNX skipped: object has no len()")`)
	assert.Contains(t, code, `result["RPROBNX"] = np.nan`)
	assert.NotContains(t, code, "try:")
}

func TestEmitCall_CoercionError(t *testing.T) {
	_, err := EmitCall(spec(core.Native, "SMA", core.Param{Name: "window", Value: "abc"}), AllInputs())
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrParameterCoercion))

	var coercion *core.CoercionError
	require.True(t, errors.As(err, &coercion))
	assert.Equal(t, "window", coercion.Param)
}

func TestEmitCall_NumericStringsCoerce(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "SMA", core.Param{Name: "window", Value: "20.7"}), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "window=20,")
}

func TestEmitCall_Unknown(t *testing.T) {
	_, err := EmitCall(spec(core.TALib, "NOPE"), AllInputs())
	require.True(t, errors.Is(err, core.ErrUnknownIndicator))
}

func TestEmitCall_NullableSeed(t *testing.T) {
	code, err := EmitCall(spec(core.Native, "RAND", core.Param{Name: "seed", Value: ""}), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "input_shape=close.shape")
	assert.Contains(t, code, "seed=None")
}

func TestEmitCall_SMCPrelude(t *testing.T) {
	code, err := EmitCall(spec(core.SMC, "bos_choch"), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "_swings = smc.swing_highs_lows(ohlc, swing_length=50)")
	assert.Contains(t, code, "_res = smc.bos_choch(ohlc, _swings, close_break=True)")
	assert.Contains(t, code, `result["bos_choch_broken_index"]`)
}

func TestEmitCall_GenericFallback(t *testing.T) {
	code, err := EmitCall(spec(core.PandasTA, "rsi"), AllInputs())
	require.NoError(t, err)
	assert.Contains(t, code, "_res = pta.rsi(close")
	assert.Contains(t, code, "_res = ohlcv.ta.rsi(")
	assert.Equal(t, 2, strings.Count(code, "try:"))
}

func TestBlacklist_Reasons(t *testing.T) {
	blacklist := Default().Blacklist()
	require.NotEmpty(t, blacklist)
	for _, r := range blacklist {
		assert.NotEmpty(t, r.SkipReason, r.Key())
	}

	recipe, err := Default().Lookup(core.WQA101, catalog.AlphaName(56))
	require.NoError(t, err)
	assert.True(t, recipe.Blacklisted())

	recipe, err = Default().Lookup(core.WQA101, catalog.AlphaName(1))
	require.NoError(t, err)
	assert.False(t, recipe.Blacklisted())
	assert.True(t, recipe.NeedsVolume())
}

func TestCallExpr_NonIdentifierKeyword(t *testing.T) {
	r := Recipe{Callee: "f", Inputs: InputClose}
	expr := callExpr(r, core.Params{{Name: "window", Value: 3}, {Name: "lambda", Value: 0.5}})
	assert.Equal(t, `f(close, window=3, **{"lambda": 0.5})`, expr)
}

func TestCallExpr_KeywordInputs(t *testing.T) {
	r := Recipe{Callee: "ta.trend.ADXIndicator", Inputs: InputHLC, KeywordInputs: true}
	assert.Equal(t, "ta.trend.ADXIndicator(high=high, low=low, close=close)", callExpr(r, nil))
}

func TestCoerce(t *testing.T) {
	v, ok := Coerce("3", CoerceInt)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = Coerce(2, CoerceFloat)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = Coerce("none", CoerceNullableInt)
	require.True(t, ok)
	assert.Nil(t, v)

	_, ok = Coerce("abc", CoerceFloat)
	assert.False(t, ok)
}

func TestCoerce_TextAndNumericForms(t *testing.T) {
	tests := []struct {
		name  string
		value any
		c     Coercion
		want  any
		ok    bool
	}{
		{"int from padded text", " 14 ", CoerceInt, 14, true},
		{"int keeps leading zero decimal", "010", CoerceInt, 10, true},
		{"int truncates float text", "14.7", CoerceInt, 14, true},
		{"int truncates float", 9.9, CoerceInt, 9, true},
		{"int from int64", int64(5), CoerceInt, 5, true},
		{"int from bool", true, CoerceInt, 1, true},
		{"int rejects nan text", "nan", CoerceInt, nil, false},
		{"int rejects inf", math.Inf(1), CoerceInt, nil, false},
		{"int rejects nil", nil, CoerceInt, nil, false},
		{"nullable int from text", "3", CoerceNullableInt, 3, true},
		{"float from text", "0.5", CoerceFloat, 0.5, true},
		{"float from inf text", "-Inf", CoerceFloat, math.Inf(-1), true},
		{"float from bool", false, CoerceFloat, 0.0, true},
		{"float rejects nil", nil, CoerceFloat, nil, false},
		{"bool from text", " true ", CoerceBool, true, true},
		{"bool from int", 0, CoerceBool, false, true},
		{"bool from float", 2.0, CoerceBool, true, true},
		{"bool rejects words", "maybe", CoerceBool, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coerce(tt.value, tt.c)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	v, ok := Coerce("nan", CoerceFloat)
	require.True(t, ok)
	assert.True(t, math.IsNaN(v.(float64)))
}

func TestSuffixOf(t *testing.T) {
	assert.Equal(t, "mitigated_index", suffixOf("MitigatedIndex"))
	assert.Equal(t, "bos", suffixOf("BOS"))
	assert.Equal(t, "current_retracement_pct", suffixOf("CurrentRetracement%"))
}
