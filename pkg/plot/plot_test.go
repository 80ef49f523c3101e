package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Bucket
	}{
		{"SMA(20)", BucketMain},
		{"BBANDS(20,2.0)", BucketMain},
		{"VWAP", BucketMain},
		{"bollinger_bands(20,2)", BucketMain},
		{"SMAIndicator(12)", BucketMain},
		{"OBV", BucketVolume},
		{"MFI(14)", BucketVolume},
		{"AD", BucketVolume},
		{"ChaikinMoneyFlowIndicator(20)", BucketVolume},
		{"RSI(14)", BucketOscillator},
		{"MACD(12,26,9)", BucketOscillator},
		{"ADX(14)", BucketOscillator},
		{"alpha001", BucketOscillator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestReferenceLines(t *testing.T) {
	assert.Equal(t, []float64{70, 50, 30}, ReferenceLines("RSI(14)"))
	assert.Equal(t, []float64{0}, ReferenceLines("MACD(12,26,9)"))
	assert.Equal(t, []float64{80, 20}, ReferenceLines("STOCH(14,3,3)"))
	assert.Equal(t, []float64{80, 20}, ReferenceLines("stochrsi"))
	assert.Nil(t, ReferenceLines("ATR(14)"))
}

func TestRowHeights(t *testing.T) {
	heights := RowHeights(true, 2)
	require.Len(t, heights, 4)
	assert.InDelta(t, 0.6, heights[0], 1e-9)
	assert.InDelta(t, 0.2, heights[1], 1e-9)
	assert.InDelta(t, 0.1, heights[2], 1e-9)

	heights = RowHeights(false, 9)
	require.Len(t, heights, 1+MaxOscillatorRows)
	assert.InDelta(t, 0.1, heights[4], 1e-9)

	heights = RowHeights(false, 0)
	require.Len(t, heights, 1)
	assert.InDelta(t, 1.0, heights[0], 1e-9)

	for _, volume := range []bool{true, false} {
		for n := 0; n < 7; n++ {
			sum := 0.0
			for _, h := range RowHeights(volume, n) {
				sum += h
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
}

func TestArrange(t *testing.T) {
	groups := []Group{
		{Display: "SMA(20)", Columns: []string{"SMA(20)"}},
		{Display: "OBV", Columns: []string{"OBV"}},
		{Display: "RSI(14)", Columns: []string{"RSI(14)"}},
		{Display: "MACD(12,26,9)", Columns: []string{"MACD(12,26,9)_macd", "MACD(12,26,9)_signal"}},
		{Display: "ATR(14)", Columns: []string{"ATR(14)"}},
		{Display: "CCI(14)", Columns: []string{"CCI(14)"}},
		{Display: "WILLR(14)", Columns: []string{"WILLR(14)"}},
	}

	l := Arrange(groups, true)
	assert.Equal(t, []string{"SMA(20)"}, l.Main)
	assert.Equal(t, []string{"OBV"}, l.Volume)
	require.Len(t, l.Oscillators, MaxOscillatorRows)
	assert.Equal(t, []string{"CCI(14)", "WILLR(14)"}, l.Oscillators[3])
	assert.Equal(t, []float64{70, 50, 30}, l.References[0])
	assert.Equal(t, 6, l.Rows())

	l = Arrange(groups[:2], false)
	assert.Empty(t, l.Volume)
	assert.Equal(t, [][]string{{"OBV"}}, l.Oscillators)
}

func TestPeriodCandles(t *testing.T) {
	n, err := PeriodCandles("1 day", "5m")
	require.NoError(t, err)
	assert.Equal(t, 288, n)

	n, err = PeriodCandles("1 week", "1h")
	require.NoError(t, err)
	assert.Equal(t, 168, n)

	n, err = PeriodCandles("1 month", "1day")
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	n, err = PeriodCandles("all data", "5m")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = PeriodCandles("forever", "5m")
	require.Error(t, err)
	_, err = PeriodCandles("1 day", "abc")
	require.Error(t, err)
}

func TestWindow(t *testing.T) {
	n, err := Window("1 year", "5m", 10000)
	require.NoError(t, err)
	assert.Equal(t, 10000, n)

	n, err = Window("1 day", "15min", 10000)
	require.NoError(t, err)
	assert.Equal(t, 96, n)
}

func TestSegments(t *testing.T) {
	segments := Segments(2500, 1000)
	require.Equal(t, []Segment{{0, 1000}, {1000, 2000}, {2000, 2500}}, segments)

	total := 0
	for i, s := range segments {
		total += s.Len()
		if i > 0 {
			assert.Equal(t, segments[i-1].End, s.Start)
		}
	}
	assert.Equal(t, 2500, total)

	assert.Equal(t, []Segment{{0, 500}}, Segments(500, 1000))
	assert.Equal(t, []Segment{{0, 500}}, Segments(500, 0))
	assert.Len(t, Segments(3000, 1000), 3)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("charts-and-tables")
	require.NoError(t, err)
	assert.True(t, m.Charts())
	assert.True(t, m.Tables())

	m, err = ParseMode("tables-only")
	require.NoError(t, err)
	assert.False(t, m.Charts())

	_, err = ParseMode("3d")
	require.Error(t, err)
}
