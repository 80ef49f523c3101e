package indicator

import (
	"github.com/markcheno/go-talib"
	"github.com/raykavin/vbtforge/pkg/core"
)

// MaType represents moving average type
type MaType = talib.MaType

type series = []core.Series[float64]

// single wraps a one-input, one-period TA-Lib function. lookback maps the
// period to the number of leading values without a result.
func single(fn func([]float64, int) []float64, param string, lookback func(int) int) calculator {
	return calculator{calc: func(f *core.Frame, a args) series {
		period := a.int(param)
		n := lookback(period)
		return guarded(f, n, 1, func() series {
			return series{warmup(fn(f.Close, period), n)}
		})
	}}
}

// hlc wraps a high/low/close, one-period TA-Lib function.
func hlc(fn func(high, low, close []float64, period int) []float64, param string, lookback func(int) int) calculator {
	return calculator{calc: func(f *core.Frame, a args) series {
		period := a.int(param)
		n := lookback(period)
		return guarded(f, n, 1, func() series {
			return series{warmup(fn(f.High, f.Low, f.Close, period), n)}
		})
	}}
}

func minus1(p int) int { return p - 1 }
func same(p int) int   { return p }

func bbands(period int, up, down float64, ma MaType) calculatorFunc {
	return func(f *core.Frame) series {
		n := period - 1
		return guarded(f, n, 3, func() series {
			upper, middle, lower := talib.BBands(f.Close, period, up, down, ma)
			return series{warmup(upper, n), warmup(middle, n), warmup(lower, n)}
		})
	}
}

func macd(fast, slow, signal int) calculatorFunc {
	return func(f *core.Frame) series {
		n := max(fast, slow) - 1 + signal - 1
		return guarded(f, n, 3, func() series {
			line, sig, hist := talib.Macd(f.Close, fast, slow, signal)
			return series{warmup(line, n), warmup(sig, n), warmup(hist, n)}
		})
	}
}

func obv(f *core.Frame) series {
	return guarded(f, 0, 1, func() series {
		return series{core.Series[float64](talib.Obv(f.Close, f.Volume))}
	})
}

// calculatorFunc is a calculator whose parameters were already read.
type calculatorFunc func(f *core.Frame) series

func init() {
	register(core.TALib, "SMA", single(talib.Sma, "timeperiod", minus1))
	register(core.TALib, "EMA", single(talib.Ema, "timeperiod", minus1))
	register(core.TALib, "WMA", single(talib.Wma, "timeperiod", minus1))
	register(core.TALib, "TRIMA", single(talib.Trima, "timeperiod", minus1))
	register(core.TALib, "DEMA", single(talib.Dema, "timeperiod", func(p int) int { return 2 * (p - 1) }))
	register(core.TALib, "TEMA", single(talib.Tema, "timeperiod", func(p int) int { return 3 * (p - 1) }))
	register(core.TALib, "KAMA", single(talib.Kama, "timeperiod", same))
	register(core.TALib, "RSI", single(talib.Rsi, "timeperiod", same))
	register(core.TALib, "MOM", single(talib.Mom, "timeperiod", same))
	register(core.TALib, "ROC", single(talib.Roc, "timeperiod", same))
	register(core.TALib, "CCI", hlc(talib.Cci, "timeperiod", minus1))
	register(core.TALib, "WILLR", hlc(talib.WillR, "timeperiod", minus1))
	register(core.TALib, "ATR", hlc(talib.Atr, "timeperiod", same))
	register(core.TALib, "NATR", hlc(talib.Natr, "timeperiod", same))
	register(core.TALib, "ADX", hlc(talib.Adx, "timeperiod", func(p int) int { return 2*p - 1 }))
	register(core.TALib, "PLUS_DI", hlc(talib.PlusDI, "timeperiod", same))
	register(core.TALib, "MINUS_DI", hlc(talib.MinusDI, "timeperiod", same))
	register(core.TALib, "DX", hlc(talib.Dx, "timeperiod", same))

	register(core.TALib, "BBANDS", calculator{calc: func(f *core.Frame, a args) series {
		return bbands(a.int("timeperiod"), a.float("nbdevup"), a.float("nbdevdn"), MaType(a.int("matype")))(f)
	}})
	register(core.TALib, "MACD", calculator{calc: func(f *core.Frame, a args) series {
		return macd(a.int("fastperiod"), a.int("slowperiod"), a.int("signalperiod"))(f)
	}})
	register(core.TALib, "STOCH", calculator{calc: func(f *core.Frame, a args) series {
		fastK, slowK, slowD := a.int("fastk_period"), a.int("slowk_period"), a.int("slowd_period")
		n := fastK - 1 + slowK - 1 + slowD - 1
		return guarded(f, n, 2, func() series {
			k, d := talib.Stoch(f.High, f.Low, f.Close,
				fastK, slowK, MaType(a.int("slowk_matype")), slowD, MaType(a.int("slowd_matype")))
			return series{warmup(k, n), warmup(d, n)}
		})
	}})
	register(core.TALib, "TRANGE", calculator{calc: func(f *core.Frame, _ args) series {
		return guarded(f, 1, 1, func() series {
			return series{warmup(talib.TRange(f.High, f.Low, f.Close), 1)}
		})
	}})
	register(core.TALib, "TYPPRICE", calculator{calc: func(f *core.Frame, _ args) series {
		return series{core.Series[float64](talib.TypPrice(f.High, f.Low, f.Close))}
	}})
	register(core.TALib, "MFI", calculator{volume: true, calc: func(f *core.Frame, a args) series {
		period := a.int("timeperiod")
		return guarded(f, period, 1, func() series {
			return series{warmup(talib.Mfi(f.High, f.Low, f.Close, f.Volume, period), period)}
		})
	}})
	register(core.TALib, "OBV", calculator{volume: true, calc: func(f *core.Frame, _ args) series {
		return obv(f)
	}})
}
