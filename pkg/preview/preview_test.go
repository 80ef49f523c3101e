package preview

import (
	"bytes"
	"io"
	"math"
	"testing"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(n int) *core.Frame {
	f := core.NewFrame(n, false)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		c := 50 + float64(i%10)
		f.Append(core.Candle{Time: start.Add(time.Duration(i) * time.Hour), Open: c, High: c + 1, Low: c - 1, Close: c})
	}
	return f
}

func TestRun(t *testing.T) {
	var progress bytes.Buffer
	p := New(WithProgress(&progress))

	report, err := p.Run(frame(60), []core.IndicatorSpec{
		{Library: core.Native, Name: "SMA", Params: core.Params{{Name: "window", Value: 10}}},
		{Library: core.Native, Name: "OBV"},
		{Library: core.PandasTA, Name: "rsi"},
		{Library: core.Native, Name: "NOPE"},
	})
	require.NoError(t, err)

	assert.Equal(t, 60, report.Rows)
	require.Len(t, report.Columns, 1)
	sma, ok := report.Column("SMA(10)")
	require.True(t, ok)
	assert.Equal(t, 9, sma.Summary.NaN)
	assert.Equal(t, 51, sma.Summary.Count)
	assert.InDelta(t, 54.5, sma.Summary.Mean, 1e-9)

	require.Len(t, report.Skipped, 3)
	assert.Equal(t, "volume required", report.Skipped[0].Reason)
	assert.Equal(t, "no reference calculator", report.Skipped[1].Reason)
	assert.NotEmpty(t, progress.String())
}

func TestRun_EmptyFrame(t *testing.T) {
	_, err := New().Run(core.NewFrame(0, false), nil)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize(core.Series[float64]{math.NaN(), 1, 2, 3, 4, math.Inf(1)})
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2, s.NaN)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, 2.0, s.Median, 1.0)

	empty := Summarize(core.Series[float64]{math.NaN()})
	assert.Zero(t, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
}

func TestRender(t *testing.T) {
	report, err := New().Run(frame(30), []core.IndicatorSpec{
		{Library: core.Native, Name: "SMA", Params: core.Params{{Name: "window", Value: 5}}},
		{Library: core.Native, Name: "OBV"},
	})
	require.NoError(t, err)

	var out bytes.Buffer
	report.RenderLast(&out, nil, 3)
	assert.Contains(t, out.String(), "SMA(5)")
	assert.Contains(t, out.String(), "29")

	out.Reset()
	report.RenderSummary(&out)
	assert.Contains(t, out.String(), "Mean")
	assert.Contains(t, out.String(), "skipped OBV: volume required")

	out.Reset()
	require.NoError(t, RenderHistogram(&out, report.Columns[0], 5))
	assert.Contains(t, out.String(), "SMA(5)")

	assert.NoError(t, RenderHistogram(io.Discard, Column{Name: "empty"}, 5))
}

func TestRun_MeanInterval(t *testing.T) {
	report, err := New(WithMeanInterval(200, 0.95)).Run(frame(60), []core.IndicatorSpec{
		{Library: core.Native, Name: "SMA", Params: core.Params{{Name: "window", Value: 10}}},
	})
	require.NoError(t, err)

	sma, ok := report.Column("SMA(10)")
	require.True(t, ok)
	require.NotNil(t, sma.Summary.MeanCI)
	assert.LessOrEqual(t, sma.Summary.MeanCI.Lower, sma.Summary.Mean)
	assert.GreaterOrEqual(t, sma.Summary.MeanCI.Upper, sma.Summary.Mean)

	var out bytes.Buffer
	report.RenderSummary(&out)
	assert.Contains(t, out.String(), "Mean CI")
}
