package catalog

import "github.com/raykavin/vbtforge/pkg/core"

const (
	talibOverlap    = "Overlap Studies"
	talibMomentum   = "Momentum Indicators"
	talibVolume     = "Volume Indicators"
	talibVolatility = "Volatility Indicators"
	talibPrice      = "Price Transform"
	talibCycle      = "Cycle Indicators"
	talibPattern    = "Pattern Recognition"
	talibStatistic  = "Statistic Functions"
	talibMathTrans  = "Math Transform"
	talibMathOps    = "Math Operators"
)

// candlestick patterns without parameters
var talibPatterns = []string{
	"CDL2CROWS", "CDL3BLACKCROWS", "CDL3INSIDE", "CDL3LINESTRIKE", "CDL3OUTSIDE",
	"CDL3STARSINSOUTH", "CDL3WHITESOLDIERS", "CDLADVANCEBLOCK", "CDLBELTHOLD",
	"CDLBREAKAWAY", "CDLCLOSINGMARUBOZU", "CDLCONCEALBABYSWALL", "CDLCOUNTERATTACK",
	"CDLDOJI", "CDLDOJISTAR", "CDLDRAGONFLYDOJI", "CDLENGULFING", "CDLGAPSIDESIDEWHITE",
	"CDLGRAVESTONEDOJI", "CDLHAMMER", "CDLHANGINGMAN", "CDLHARAMI", "CDLHARAMICROSS",
	"CDLHIGHWAVE", "CDLHIKKAKE", "CDLHIKKAKEMOD", "CDLHOMINGPIGEON", "CDLIDENTICAL3CROWS",
	"CDLINNECK", "CDLINVERTEDHAMMER", "CDLKICKING", "CDLKICKINGBYLENGTH",
	"CDLLADDERBOTTOM", "CDLLONGLEGGEDDOJI", "CDLLONGLINE", "CDLMARUBOZU",
	"CDLMATCHINGLOW", "CDLONNECK", "CDLPIERCING", "CDLRICKSHAWMAN",
	"CDLRISEFALL3METHODS", "CDLSEPARATINGLINES", "CDLSHOOTINGSTAR", "CDLSHORTLINE",
	"CDLSPINNINGTOP", "CDLSTALLEDPATTERN", "CDLSTICKSANDWICH", "CDLTAKURI",
	"CDLTASUKIGAP", "CDLTHRUSTING", "CDLTRISTAR", "CDLUNIQUE3RIVER",
	"CDLUPSIDEGAP2CROWS", "CDLXSIDEGAP3METHODS",
}

// math transforms over a single series
var talibTransforms = []string{
	"ACOS", "ASIN", "ATAN", "CEIL", "COS", "COSH", "EXP", "FLOOR",
	"LN", "LOG10", "SIN", "SINH", "SQRT", "TAN", "TANH",
}

func init() {
	rows := []row{
		r("BBANDS", talibOverlap, "timeperiod", 5, "nbdevup", 2.0, "nbdevdn", 2.0, "matype", 0),
		r("DEMA", talibOverlap, "timeperiod", 30),
		r("EMA", talibOverlap, "timeperiod", 30),
		r("HT_TRENDLINE", talibOverlap),
		r("KAMA", talibOverlap, "timeperiod", 30),
		r("MA", talibOverlap, "timeperiod", 30, "matype", 0),
		r("MAMA", talibOverlap, "fastlimit", 0.5, "slowlimit", 0.05),
		r("MAVP", talibOverlap, "minperiod", 2, "maxperiod", 30, "matype", 0),
		r("MIDPOINT", talibOverlap, "timeperiod", 14),
		r("MIDPRICE", talibOverlap, "timeperiod", 14),
		r("SAR", talibOverlap, "acceleration", 0.02, "maximum", 0.2),
		r("SAREXT", talibOverlap,
			"startvalue", 0.0, "offsetonreverse", 0.0,
			"accelerationinitlong", 0.02, "accelerationlong", 0.02, "accelerationmaxlong", 0.2,
			"accelerationinitshort", 0.02, "accelerationshort", 0.02, "accelerationmaxshort", 0.2),
		r("SMA", talibOverlap, "timeperiod", 30),
		r("T3", talibOverlap, "timeperiod", 5, "vfactor", 0.7),
		r("TEMA", talibOverlap, "timeperiod", 30),
		r("TRIMA", talibOverlap, "timeperiod", 30),
		r("WMA", talibOverlap, "timeperiod", 30),

		r("ADX", talibMomentum, "timeperiod", 14),
		r("ADXR", talibMomentum, "timeperiod", 14),
		r("APO", talibMomentum, "fastperiod", 12, "slowperiod", 26, "matype", 0),
		r("AROON", talibMomentum, "timeperiod", 14),
		r("AROONOSC", talibMomentum, "timeperiod", 14),
		r("BOP", talibMomentum),
		r("CCI", talibMomentum, "timeperiod", 14),
		r("CMO", talibMomentum, "timeperiod", 14),
		r("DX", talibMomentum, "timeperiod", 14),
		r("MACD", talibMomentum, "fastperiod", 12, "slowperiod", 26, "signalperiod", 9),
		r("MACDEXT", talibMomentum,
			"fastperiod", 12, "fastmatype", 0, "slowperiod", 26, "slowmatype", 0,
			"signalperiod", 9, "signalmatype", 0),
		r("MACDFIX", talibMomentum, "signalperiod", 9),
		r("MFI", talibMomentum, "timeperiod", 14),
		r("MINUS_DI", talibMomentum, "timeperiod", 14),
		r("MINUS_DM", talibMomentum, "timeperiod", 14),
		r("MOM", talibMomentum, "timeperiod", 10),
		r("PLUS_DI", talibMomentum, "timeperiod", 14),
		r("PLUS_DM", talibMomentum, "timeperiod", 14),
		r("PPO", talibMomentum, "fastperiod", 12, "slowperiod", 26, "matype", 0),
		r("ROC", talibMomentum, "timeperiod", 10),
		r("ROCP", talibMomentum, "timeperiod", 10),
		r("ROCR", talibMomentum, "timeperiod", 10),
		r("ROCR100", talibMomentum, "timeperiod", 10),
		r("RSI", talibMomentum, "timeperiod", 14),
		r("STOCH", talibMomentum,
			"fastk_period", 5, "slowk_period", 3, "slowk_matype", 0, "slowd_period", 3, "slowd_matype", 0),
		r("STOCHF", talibMomentum, "fastk_period", 5, "fastd_period", 3, "fastd_matype", 0),
		r("STOCHRSI", talibMomentum,
			"timeperiod", 14, "fastk_period", 5, "fastd_period", 3, "fastd_matype", 0),
		r("TRIX", talibMomentum, "timeperiod", 30),
		r("ULTOSC", talibMomentum, "timeperiod1", 7, "timeperiod2", 14, "timeperiod3", 28),
		r("WILLR", talibMomentum, "timeperiod", 14),

		r("AD", talibVolume),
		r("ADOSC", talibVolume, "fastperiod", 3, "slowperiod", 10),
		r("OBV", talibVolume),

		r("ATR", talibVolatility, "timeperiod", 14),
		r("NATR", talibVolatility, "timeperiod", 14),
		r("TRANGE", talibVolatility),

		r("AVGPRICE", talibPrice),
		r("MEDPRICE", talibPrice),
		r("TYPPRICE", talibPrice),
		r("WCLPRICE", talibPrice),

		r("HT_DCPERIOD", talibCycle),
		r("HT_DCPHASE", talibCycle),
		r("HT_PHASOR", talibCycle),
		r("HT_SINE", talibCycle),
		r("HT_TRENDMODE", talibCycle),

		r("CDLABANDONEDBABY", talibPattern, "penetration", 0.3),
		r("CDLDARKCLOUDCOVER", talibPattern, "penetration", 0.5),
		r("CDLEVENINGDOJISTAR", talibPattern, "penetration", 0.3),
		r("CDLEVENINGSTAR", talibPattern, "penetration", 0.3),
		r("CDLMATHOLD", talibPattern, "penetration", 0.5),
		r("CDLMORNINGDOJISTAR", talibPattern, "penetration", 0.3),
		r("CDLMORNINGSTAR", talibPattern, "penetration", 0.3),

		r("BETA", talibStatistic, "timeperiod", 5),
		r("CORREL", talibStatistic, "timeperiod", 30),
		r("LINEARREG", talibStatistic, "timeperiod", 14),
		r("LINEARREG_ANGLE", talibStatistic, "timeperiod", 14),
		r("LINEARREG_INTERCEPT", talibStatistic, "timeperiod", 14),
		r("LINEARREG_SLOPE", talibStatistic, "timeperiod", 14),
		r("STDDEV", talibStatistic, "timeperiod", 5, "nbdev", 1.0),
		r("TSF", talibStatistic, "timeperiod", 14),
		r("VAR", talibStatistic, "timeperiod", 5, "nbdev", 1.0),

		r("ADD", talibMathOps),
		r("DIV", talibMathOps),
		r("MAX", talibMathOps, "timeperiod", 30),
		r("MAXINDEX", talibMathOps, "timeperiod", 30),
		r("MIN", talibMathOps, "timeperiod", 30),
		r("MININDEX", talibMathOps, "timeperiod", 30),
		r("MINMAX", talibMathOps, "timeperiod", 30),
		r("MINMAXINDEX", talibMathOps, "timeperiod", 30),
		r("MULT", talibMathOps),
		r("SUB", talibMathOps),
		r("SUM", talibMathOps, "timeperiod", 30),
	}

	for _, name := range talibPatterns {
		rows = append(rows, r(name, talibPattern))
	}
	for _, name := range talibTransforms {
		rows = append(rows, r(name, talibMathTrans))
	}

	register(core.TALib, rows)
}
