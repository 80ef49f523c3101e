package indicator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(n int, withVolume bool) *core.Frame {
	f := core.NewFrame(n, withVolume)
	start := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		base := 100 + 10*math.Sin(float64(i)/7) + float64(i)*0.05
		f.Append(core.Candle{
			Time:   start.Add(time.Duration(i) * 5 * time.Minute),
			Open:   base - 0.3,
			High:   base + 1,
			Low:    base - 1,
			Close:  base,
			Volume: 1000 + float64(i%17)*10,
		})
	}
	return f
}

func resolve(t *testing.T, library core.Library, name string, params ...core.Param) adapter.Call {
	t.Helper()
	call, err := adapter.Default().Resolve(core.IndicatorSpec{Library: library, Name: name, Params: params})
	require.NoError(t, err)
	return call
}

func TestCompute_SMAWarmup(t *testing.T) {
	f := frame(500, true)
	out, err := Compute(f, resolve(t, core.Native, "SMA", core.Param{Name: "window", Value: 20}))
	require.NoError(t, err)
	require.Len(t, out, 1)

	sma := out[0]
	assert.Equal(t, "SMA(20)", sma.Column)
	require.Len(t, sma.Values, f.Len())
	assert.Equal(t, 19, core.LeadingNaN(sma.Values))

	sum := 0.0
	for _, v := range f.Close[:20] {
		sum += v
	}
	assert.InDelta(t, sum/20, sma.Values[19], 1e-9)
}

func TestCompute_MultiOutputColumns(t *testing.T) {
	f := frame(300, true)
	out, err := Compute(f, resolve(t, core.Native, "MACD",
		core.Param{Name: "fast", Value: 12}, core.Param{Name: "slow", Value: 26}, core.Param{Name: "signal", Value: 9}))
	require.NoError(t, err)

	columns := make([]string, len(out))
	for i, o := range out {
		columns[i] = o.Column
		assert.Len(t, o.Values, f.Len())
	}
	assert.Equal(t, []string{"MACD(12,26,9)_macd", "MACD(12,26,9)_signal", "MACD(12,26,9)_histogram"}, columns)
	assert.Equal(t, 33, core.LeadingNaN(out[0].Values))
}

func TestCompute_TALibFamilies(t *testing.T) {
	f := frame(200, true)
	tests := []struct {
		name    string
		params  []core.Param
		outputs int
		leading int
	}{
		{"RSI", []core.Param{{Name: "timeperiod", Value: 14}}, 1, 14},
		{"ATR", []core.Param{{Name: "timeperiod", Value: 14}}, 1, 14},
		{"BBANDS", nil, 3, 4},
		{"STOCH", nil, 2, 8},
		{"ADX", []core.Param{{Name: "timeperiod", Value: 14}}, 1, 27},
		{"OBV", nil, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compute(f, resolve(t, core.TALib, tt.name, tt.params...))
			require.NoError(t, err)
			require.Len(t, out, tt.outputs)
			assert.Equal(t, tt.leading, core.LeadingNaN(out[0].Values))
			assert.Empty(t, core.Finite(out[0].Values[:tt.leading]))
		})
	}
}

func TestCompute_ShortInputIsAllNaN(t *testing.T) {
	f := frame(10, false)
	out, err := Compute(f, resolve(t, core.Native, "SMA", core.Param{Name: "window", Value: 20}))
	require.NoError(t, err)
	assert.Equal(t, 10, core.LeadingNaN(out[0].Values))
}

func TestCompute_Errors(t *testing.T) {
	f := frame(50, false)

	_, err := Compute(f, resolve(t, core.Native, "OBV"))
	assert.True(t, errors.Is(err, ErrVolumeRequired))

	_, err = Compute(f, resolve(t, core.PandasTA, "rsi"))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestSupported(t *testing.T) {
	keys := Supported()
	assert.Contains(t, keys, core.IndicatorKey(core.Native, "SMA"))
	assert.Contains(t, keys, core.IndicatorKey(core.TALib, "MACD"))
	assert.IsNonDecreasing(t, keys)
	assert.True(t, Has(core.IndicatorSpec{Library: core.Native, Name: "VWAP"}))
}

func TestSuperTrend(t *testing.T) {
	f := frame(400, false)
	st := SuperTrend(f.High, f.Low, f.Close, 7, 3)

	require.Len(t, st.Trend, f.Len())
	assert.Equal(t, 7, core.LeadingNaN(st.Trend))
	for i := 7; i < f.Len(); i++ {
		switch st.Direction[i] {
		case 1:
			assert.Equal(t, st.Trend[i], st.Long[i])
			assert.True(t, math.IsNaN(st.Short[i]))
		case -1:
			assert.Equal(t, st.Trend[i], st.Short[i])
			assert.True(t, math.IsNaN(st.Long[i]))
		default:
			t.Fatalf("direction %v at %d", st.Direction[i], i)
		}
	}

	empty := SuperTrend(nil, nil, nil, 7, 3)
	assert.Empty(t, empty.Trend)
}

func TestVWAPResetsEachDay(t *testing.T) {
	f := core.NewFrame(4, true)
	day := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	f.Append(core.Candle{Time: day, High: 12, Low: 8, Close: 10, Volume: 1})
	f.Append(core.Candle{Time: day.Add(time.Hour), High: 22, Low: 18, Close: 20, Volume: 3})
	f.Append(core.Candle{Time: day.Add(24 * time.Hour), High: 31, Low: 29, Close: 30, Volume: 2})
	f.Append(core.Candle{Time: day.Add(25 * time.Hour), High: 0, Low: 0, Close: 0, Volume: 0})

	v := vwap(f, "D")
	assert.InDelta(t, 10, v[0], 1e-9)
	assert.InDelta(t, 17.5, v[1], 1e-9)
	assert.InDelta(t, 30, v[2], 1e-9)
	assert.InDelta(t, 30, v[3], 1e-9)
}

func TestRollingMean(t *testing.T) {
	in := core.Series[float64]{math.NaN(), 1, 2, 3, 4, math.NaN(), 5, 6}
	out := rollingMean(in, 2)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 1.5, out[2])
	assert.Equal(t, 2.5, out[3])
	assert.Equal(t, 3.5, out[4])
	assert.True(t, math.IsNaN(out[5]))
	assert.True(t, math.IsNaN(out[6]))
	assert.Equal(t, 5.5, out[7])
}
