package indicator

import (
	"github.com/markcheno/go-talib"
	"github.com/raykavin/vbtforge/pkg/core"
)

// SuperTrendResult holds the trend line, its direction (1 up, -1 down) and
// the line split into its long and short phases.
type SuperTrendResult struct {
	Trend     core.Series[float64]
	Direction core.Series[float64]
	Long      core.Series[float64]
	Short     core.Series[float64]
}

// SuperTrend follows the ATR bands around the median price, switching sides
// when the close crosses the active band. Values before the ATR warmup are NaN.
func SuperTrend(high, low, close []float64, atrPeriod int, factor float64) SuperTrendResult {
	length := len(close)
	res := SuperTrendResult{
		Trend:     nanSeries(length),
		Direction: nanSeries(length),
		Long:      nanSeries(length),
		Short:     nanSeries(length),
	}
	if atrPeriod <= 0 || length <= atrPeriod {
		return res
	}

	atr := talib.Atr(high, low, close, atrPeriod)

	var upper, lower float64
	direction := 1.0
	for i := atrPeriod; i < length; i++ {
		median := (high[i] + low[i]) / 2.0
		basicUpper := median + atr[i]*factor
		basicLower := median - atr[i]*factor

		if i == atrPeriod {
			upper, lower = basicUpper, basicLower
		} else {
			if basicUpper < upper || close[i-1] > upper {
				upper = basicUpper
			}
			if basicLower > lower || close[i-1] < lower {
				lower = basicLower
			}
		}

		switch {
		case close[i] > upper:
			direction = 1
		case close[i] < lower:
			direction = -1
		}

		res.Direction[i] = direction
		if direction > 0 {
			res.Trend[i] = lower
			res.Long[i] = lower
		} else {
			res.Trend[i] = upper
			res.Short[i] = upper
		}
	}

	return res
}
