package core

import "time"

// Candle is one OHLCV row.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Frame is a columnar OHLCV dataset. Volume is nil when the source has no
// volume column; Extra carries any additional numeric columns.
type Frame struct {
	Time   []time.Time
	Open   Series[float64]
	High   Series[float64]
	Low    Series[float64]
	Close  Series[float64]
	Volume Series[float64]
	Extra  map[string]Series[float64]
}

// NewFrame allocates an empty frame with room for n rows.
func NewFrame(n int, withVolume bool) *Frame {
	f := &Frame{
		Time:  make([]time.Time, 0, n),
		Open:  make(Series[float64], 0, n),
		High:  make(Series[float64], 0, n),
		Low:   make(Series[float64], 0, n),
		Close: make(Series[float64], 0, n),
		Extra: map[string]Series[float64]{},
	}
	if withVolume {
		f.Volume = make(Series[float64], 0, n)
	}
	return f
}

// Append adds one row. The volume value is dropped when the frame has no
// volume column.
func (f *Frame) Append(c Candle) {
	f.Time = append(f.Time, c.Time)
	f.Open = append(f.Open, c.Open)
	f.High = append(f.High, c.High)
	f.Low = append(f.Low, c.Low)
	f.Close = append(f.Close, c.Close)
	if f.Volume != nil {
		f.Volume = append(f.Volume, c.Volume)
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Close)
}

// HasVolume reports whether the frame carries a volume column.
func (f *Frame) HasVolume() bool {
	return f.Volume != nil
}

// Columns lists the price columns present, in OHLCV order.
func (f *Frame) Columns() []string {
	columns := []string{"open", "high", "low", "close"}
	if f.HasVolume() {
		columns = append(columns, "volume")
	}
	return columns
}

// Candle returns row i.
func (f *Frame) Candle(i int) Candle {
	c := Candle{Time: f.Time[i], Open: f.Open[i], High: f.High[i], Low: f.Low[i], Close: f.Close[i]}
	if f.HasVolume() {
		c.Volume = f.Volume[i]
	}
	return c
}

// Slice returns the rows [start, end) sharing the underlying arrays.
func (f *Frame) Slice(start, end int) *Frame {
	out := &Frame{
		Time:  f.Time[start:end],
		Open:  f.Open[start:end],
		High:  f.High[start:end],
		Low:   f.Low[start:end],
		Close: f.Close[start:end],
		Extra: make(map[string]Series[float64], len(f.Extra)),
	}
	if f.HasVolume() {
		out.Volume = f.Volume[start:end]
	}
	for name, values := range f.Extra {
		out.Extra[name] = values[start:end]
	}
	return out
}

// Tail returns the last n rows, or the whole frame when n is not smaller
// than its length.
func (f *Frame) Tail(n int) *Frame {
	if n <= 0 || n >= f.Len() {
		return f
	}
	return f.Slice(f.Len()-n, f.Len())
}
