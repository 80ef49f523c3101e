package indicator

import (
	"fmt"
	"strings"
	"time"

	"github.com/markcheno/go-talib"
	"github.com/raykavin/vbtforge/pkg/core"
)

func init() {
	register(core.Native, "SMA", single(talib.Sma, "window", minus1))
	register(core.Native, "EMA", single(talib.Ema, "window", minus1))
	register(core.Native, "WMA", single(talib.Wma, "window", minus1))
	register(core.Native, "RSI", single(talib.Rsi, "window", same))
	register(core.Native, "MSTD", single(func(in []float64, p int) []float64 {
		return talib.StdDev(in, p, 1)
	}, "window", minus1))

	register(core.Native, "BBANDS", calculator{calc: func(f *core.Frame, a args) series {
		alpha := a.float("alpha")
		return bbands(a.int("window"), alpha, alpha, talib.SMA)(f)
	}})
	register(core.Native, "MACD", calculator{calc: func(f *core.Frame, a args) series {
		return macd(a.int("fast"), a.int("slow"), a.int("signal"))(f)
	}})
	register(core.Native, "ATR", calculator{calc: func(f *core.Frame, a args) series {
		window := a.int("window")
		return guarded(f, window, 2, func() series {
			return series{
				warmup(talib.TRange(f.High, f.Low, f.Close), 1),
				warmup(talib.Atr(f.High, f.Low, f.Close, window), window),
			}
		})
	}})
	register(core.Native, "ADX", calculator{calc: func(f *core.Frame, a args) series {
		window := a.int("window")
		return guarded(f, 2*window-1, 4, func() series {
			return series{
				warmup(talib.PlusDI(f.High, f.Low, f.Close, window), window),
				warmup(talib.MinusDI(f.High, f.Low, f.Close, window), window),
				warmup(talib.Dx(f.High, f.Low, f.Close, window), window),
				warmup(talib.Adx(f.High, f.Low, f.Close, window), 2*window-1),
			}
		})
	}})
	register(core.Native, "STOCH", calculator{calc: stoch})
	register(core.Native, "SUPERTREND", calculator{calc: func(f *core.Frame, a args) series {
		st := SuperTrend(f.High, f.Low, f.Close, a.int("period"), a.float("multiplier"))
		return series{st.Trend, st.Direction, st.Long, st.Short}
	}})
	register(core.Native, "OBV", calculator{volume: true, calc: func(f *core.Frame, _ args) series {
		return obv(f)
	}})
	register(core.Native, "VWAP", calculator{volume: true, calc: func(f *core.Frame, a args) series {
		return series{vwap(f, a.string("anchor"))}
	}})
}

// stoch produces fast %K and its two smoothings.
func stoch(f *core.Frame, a args) series {
	fastWindow, slowK, slowD := a.int("fast_k_window"), a.int("slow_k_window"), a.int("slow_d_window")
	n := fastWindow - 1
	return guarded(f, n, 3, func() series {
		fastK, _ := talib.StochF(f.High, f.Low, f.Close, fastWindow, 1, talib.SMA)
		k := warmup(fastK, n)
		smoothK := rollingMean(k, slowK)
		return series{k, smoothK, rollingMean(smoothK, slowD)}
	})
}

// vwap accumulates typical price by volume, restarting at each anchor
// period boundary. An unknown anchor never restarts.
func vwap(f *core.Frame, anchor string) core.Series[float64] {
	out := nanSeries(f.Len())
	key := anchorKey(anchor)

	var pv, vol float64
	var current string
	for i := range out {
		if k := key(f.Time[i]); k != current {
			current, pv, vol = k, 0, 0
		}
		typical := (f.High[i] + f.Low[i] + f.Close[i]) / 3
		pv += typical * f.Volume[i]
		vol += f.Volume[i]
		if vol != 0 {
			out[i] = pv / vol
		}
	}
	return out
}

func anchorKey(anchor string) func(time.Time) string {
	switch strings.ToUpper(strings.TrimSpace(anchor)) {
	case "D":
		return func(t time.Time) string { return t.Format("2006-01-02") }
	case "W":
		return func(t time.Time) string {
			y, w := t.ISOWeek()
			return fmt.Sprintf("%d-W%02d", y, w)
		}
	case "M":
		return func(t time.Time) string { return t.Format("2006-01") }
	case "Y":
		return func(t time.Time) string { return t.Format("2006") }
	}
	return func(time.Time) string { return "" }
}
