package adapter

import (
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
)

// frameArgs passes the whole OHLC(V) frame, the calling convention of
// freqtrade's technical package and of smart-money-concepts.
var frameArgs = []string{"ohlcv"}

func init() {
	registerFamily(family{
		library: core.Technical,
		base: func(name string) entry {
			if strings.HasPrefix(name, "qtpylib.") {
				return entry{callee: name, inputs: InputOHLC, args: frameArgs}
			}
			return entry{callee: "ftt." + name, inputs: InputOHLC, args: frameArgs}
		},
		entries: map[string]entry{
			"bollinger_bands": {
				outputs: []Output{out("lower", "bb_lower"), out("middle", "bb_middle"), out("upper", "bb_upper")},
			},
			"madrid_sqz": {
				outputs: []Output{pos("cma", 0), pos("rma", 1), pos("sma", 2)},
			},
			"mmar": {
				outputs: []Output{pos("lead", 0), pos("ma10", 1), pos("ma100", 10)},
			},
			"PMAX": {
				outputs: []Output{pos("pm", -2), pos("direction", -1)},
			},
			"SSLChannels": {
				outputs: []Output{pos("down", 0), pos("up", 1)},
			},
			"TKE": {
				outputs: []Output{pos("tke", 0), pos("ema", 1)},
			},
			"vfi": {
				inputs:  InputOHLCV,
				outputs: []Output{pos("vfi", 0), pos("vfima", 1), pos("hist", 2)},
			},
			"vpci":               {inputs: InputOHLCV},
			"chaikin_money_flow": {inputs: InputOHLCV},
			"vwma":               {inputs: InputOHLCV},
			"vwmacd": {
				inputs:  InputOHLCV,
				outputs: []Output{out("vwmacd", "vwmacd"), out("signal", "signal"), out("hist", "hist")},
			},
			"momdiv": {
				outputs: []Output{
					out("buy", "momdiv_buy"), out("sell", "momdiv_sell"),
					out("coh", "momdiv_coh"), out("col", "momdiv_col"),
				},
			},
			"ichimoku": {
				outputs: []Output{
					out("tenkan", "tenkan_sen"), out("kijun", "kijun_sen"),
					out("span_a", "senkou_span_a"), out("span_b", "senkou_span_b"),
					out("chikou", "chikou_span"),
				},
			},

			"qtpylib.bollinger_bands": {
				args:    []string{"qtpylib.typical_price(ohlcv)"},
				outputs: []Output{out("upper", "upper"), out("mid", "mid"), out("lower", "lower")},
			},
			"qtpylib.keltner_channel": {
				outputs: []Output{out("upper", "upper"), out("mid", "mid"), out("lower", "lower")},
			},
			"qtpylib.heikinashi": {
				outputs: []Output{out("open", "open"), out("high", "high"), out("low", "low"), out("close", "close")},
			},
			"qtpylib.rolling_vwap": {inputs: InputOHLCV},
			"qtpylib.vwap":         {inputs: InputOHLCV},
			"qtpylib.pvt":          {inputs: InputOHLCV},
			"qtpylib.stoch": {
				outputs: []Output{out("k", "slow_k", "k"), out("d", "slow_d", "d")},
			},
			"qtpylib.macd": {
				args:    []string{"close"},
				outputs: []Output{out("macd", "macd"), out("signal", "signal"), out("histogram", "histogram")},
			},
			"qtpylib.zscore":             {fixed: core.Params{{Name: "col", Value: "close"}}},
			"qtpylib.zlma":               {args: []string{"close"}},
			"qtpylib.log_returns":        {args: []string{"close"}},
			"qtpylib.returns":            {args: []string{"close"}},
			"qtpylib.implied_volatility": {args: []string{"close"}},
			"qtpylib.rsi":                {args: []string{"close"}},
			"qtpylib.roc":                {args: []string{"close"}},
			"qtpylib.hma":                {args: []string{"close"}},
		},
	})
}
