package adapter

import "github.com/raykavin/vbtforge/pkg/core"

var pandasTAInputs = map[InputTag][]string{
	InputHL: {"midprice", "hl2", "ao", "fisher", "massi", "donchian", "aroon", "dm", "psar", "thermo"},
	InputHLC: {
		"supertrend", "hilo", "hlc3", "ichimoku", "stoch", "cci", "willr", "eri", "kdj", "uo",
		"atr", "natr", "true_range", "kc", "accbands", "aberration", "adx", "chop", "cksp",
		"vortex", "ttm_trend",
	},
	InputOHLC: {"ohlc4", "bop", "brar", "rvgi", "pdist", "cdl_doji", "cdl_inside", "cdl_z", "ha", "cdl_pattern"},
	InputCV:   {"vwma", "obv", "aobv", "efi", "nvi", "pvi", "pvol", "pvr", "pvt", "vp"},
	InputHLCV: {"vwap", "mfi", "cmf", "ad", "adosc", "eom", "kvo"},
}

// pandasTAColumns lists the DataFrame columns of multi-output functions, in position order.
var pandasTAColumns = map[string][]string{
	"macd":       {"macd", "histogram", "signal"},
	"stoch":      {"k", "d"},
	"stochrsi":   {"k", "d"},
	"bbands":     {"lower", "middle", "upper", "bandwidth", "percent"},
	"kc":         {"lower", "basis", "upper"},
	"donchian":   {"lower", "mid", "upper"},
	"accbands":   {"lower", "mid", "upper"},
	"adx":        {"adx", "dmp", "dmn"},
	"aroon":      {"down", "up", "osc"},
	"supertrend": {"trend", "direction", "long", "short"},
	"psar":       {"long", "short", "af", "reversal"},
	"ichimoku":   {"span_a", "span_b", "tenkan", "kijun", "chikou"},
	"kdj":        {"k", "d", "j"},
	"kst":        {"kst", "signal"},
	"ppo":        {"ppo", "histogram", "signal"},
	"pvo":        {"pvo", "histogram", "signal"},
	"qqe":        {"qqe", "rsi_ma", "long", "short"},
	"rvgi":       {"rvgi", "signal"},
	"smi":        {"smi", "signal", "osc"},
	"squeeze":    {"sqz", "on", "off", "no_sqz"},
	"stc":        {"stc", "macd", "stoch"},
	"trix":       {"trix", "signal"},
	"tsi":        {"tsi", "signal"},
	"eri":        {"bull", "bear"},
	"fisher":     {"fisher", "signal"},
	"brar":       {"ar", "br"},
	"dm":         {"dmp", "dmn"},
	"amat":       {"long_run", "short_run"},
	"cksp":       {"long", "short"},
	"vortex":     {"plus", "minus"},
	"thermo":     {"thermo", "ma", "long", "short"},
	"aberration": {"zg", "sg", "xg", "atr"},
	"aobv":       {"obv", "min", "max", "fast", "slow", "long_run", "short_run"},
	"kvo":        {"kvo", "signal"},
	"hilo":       {"hilo", "long", "short"},
	"ha":         {"open", "high", "low", "close"},
	"cdl_z":      {"open", "high", "low", "close"},
}

var pandasTASkips = map[string]string{
	"td_seq":       "too compute-intensive (Python loop over every bar)",
	"tos_stdevall": "too compute-intensive (full-history regression per bar)",
	"long_run":     "requires pre-computed fast and slow series",
	"xsignals":     "requires signal and threshold series",
	"vp":           "returns price-volume bins, not a time series",
	"cdl_pattern":  "emits one column per TA-Lib candle pattern",
}

func pandasTAEntries() map[string]entry {
	entries := map[string]entry{}
	for tag, names := range pandasTAInputs {
		for _, name := range names {
			e := entries[name]
			e.inputs = tag
			entries[name] = e
		}
	}
	for name, columns := range pandasTAColumns {
		e := entries[name]
		for i, column := range columns {
			e.outputs = append(e.outputs, pos(column, i))
		}
		entries[name] = e
	}
	for name, reason := range pandasTASkips {
		e := entries[name]
		e.skip = reason
		entries[name] = e
	}

	// argument order differs from the input tag order
	entries["rvi"] = entry{inputs: InputHLC, args: []string{"close", "high", "low"}}
	entries["inertia"] = entry{inputs: InputHLC, args: []string{"close", "high", "low"}}
	entries["qstick"] = entry{inputs: InputOHLC, args: []string{"open_", "close"}}
	entries["pvo"] = withArgs(entries["pvo"], InputCV, "volume")

	ichimoku := entries["ichimoku"]
	ichimoku.unwrap = true
	entries["ichimoku"] = ichimoku

	return entries
}

func withArgs(e entry, tag InputTag, args ...string) entry {
	e.inputs = tag
	e.args = args
	return e
}

func init() {
	registerFamily(family{
		library: core.PandasTA,
		base: func(name string) entry {
			return entry{callee: "pta." + name, inputs: InputClose}
		},
		entries: pandasTAEntries(),
		generic: func(name string, e entry) (entry, bool) {
			// the DataFrame accessor resolves its own input columns
			e.callee = "ohlcv.ta." + name
			e.args = []string{}
			e.fallbacks = nil
			return e, true
		},
	})
}
