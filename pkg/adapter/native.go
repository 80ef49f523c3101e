package adapter

import (
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
)

const (
	reasonNeedsEntries = "requires an entry signal input the configurator does not provide"
	reasonNoLen        = "object has no len()"
)

// shapeArgs feeds shape-only generators.
var shapeArgs = []string{"input_shape=close.shape"}

func init() {
	registerFamily(family{
		library: core.Native,
		base: func(name string) entry {
			return entry{
				callee:  "vbt." + name + ".run",
				inputs:  InputClose,
				outputs: []Output{out("", strings.ToLower(name))},
			}
		},
		entries: map[string]entry{
			"MA": {
				outputs: []Output{out("", "ma")},
				fallbacks: []entry{
					{drop: []string{"wtype"}, fixed: core.Params{{Name: "ewm", Value: false}}},
				},
			},
			"SMA": {
				callee:  "vbt.MA.run",
				fixed:   core.Params{{Name: "wtype", Value: "simple"}},
				outputs: []Output{out("", "ma")},
				fallbacks: []entry{
					{fixed: core.Params{{Name: "ewm", Value: false}}},
				},
			},
			"EMA": {
				callee:  "vbt.MA.run",
				fixed:   core.Params{{Name: "wtype", Value: "exp"}},
				outputs: []Output{out("", "ma")},
				fallbacks: []entry{
					{fixed: core.Params{{Name: "ewm", Value: true}}},
				},
			},
			"WMA": {
				callee:  "vbt.MA.run",
				fixed:   core.Params{{Name: "wtype", Value: "weighted"}},
				outputs: []Output{out("", "ma")},
				fallbacks: []entry{
					{
						callee:  `vbt.talib("WMA").run`,
						rename:  map[string]string{"window": "timeperiod"},
						fixed:   core.Params{},
						outputs: []Output{out("", "real", "wma")},
					},
				},
			},
			"MSTD": {
				fallbacks: []entry{
					{drop: []string{"wtype"}, fixed: core.Params{{Name: "ewm", Value: false}}},
				},
			},
			"BBANDS": {
				outputs: []Output{out("upper", "upper"), out("middle", "middle"), out("lower", "lower")},
			},
			"ATR": {
				inputs:  InputHLC,
				outputs: []Output{out("tr", "tr"), out("atr", "atr")},
			},
			"STOCH": {
				inputs: InputHLC,
				outputs: []Output{
					out("fast_k", "fast_k", "percent_k"),
					out("slow_k", "slow_k", "percent_k"),
					out("slow_d", "slow_d", "percent_d"),
				},
				fallbacks: []entry{
					{
						rename: map[string]string{"fast_k_window": "k_window", "slow_d_window": "d_window"},
						drop:   []string{"slow_k_window"},
					},
				},
			},
			"MACD": {
				rename: map[string]string{"fast": "fast_window", "slow": "slow_window", "signal": "signal_window"},
				outputs: []Output{
					out("macd", "macd"),
					out("signal", "signal"),
					out("histogram", "hist", "histogram"),
				},
			},
			"ADX": {
				inputs:  InputHLC,
				outputs: []Output{out("plus_di", "plus_di"), out("minus_di", "minus_di"), out("dx", "dx"), out("adx", "adx")},
			},
			"SUPERTREND": {
				inputs:  InputHLC,
				outputs: []Output{out("trend", "trend"), out("direction", "direction"), out("long", "long"), out("short", "short")},
			},
			"PIVOTINFO": {
				inputs: InputHL,
				outputs: []Output{
					out("conf_pivot", "conf_pivot"), out("conf_idx", "conf_idx"),
					out("last_pivot", "last_pivot"), out("last_idx", "last_idx"),
				},
			},
			"OBV":    {inputs: InputCV},
			"VWAP":   {inputs: InputHLCV},
			"SIGDET": {outputs: []Output{out("signal", "signal"), out("upper_band", "upper_band"), out("lower_band", "lower_band")}},
			"PATSIM": {skip: "requires a reference pattern array input"},

			"RAND": {
				inputs:  InputShapeN,
				args:    shapeArgs,
				coerce:  map[string]Coercion{"seed": CoerceNullableInt},
				outputs: []Output{out("", "entries")},
			},
			"RANDNX": {
				inputs:  InputShapeN,
				args:    shapeArgs,
				coerce:  map[string]Coercion{"seed": CoerceNullableInt},
				outputs: []Output{out("entries", "entries"), out("exits", "exits")},
			},
			"RPROB": {
				inputs:  InputShapeN,
				args:    shapeArgs,
				coerce:  map[string]Coercion{"seed": CoerceNullableInt},
				outputs: []Output{out("", "entries")},
			},
			"RPROBX":   {skip: reasonNeedsEntries},
			"RPROBCX":  {skip: reasonNeedsEntries},
			"RPROBNX":  {skip: reasonNoLen, outputs: []Output{out("", "entries")}},
			"STX":      {skip: reasonNeedsEntries},
			"STCX":     {skip: reasonNeedsEntries},
			"OHLCSTX":  {skip: reasonNeedsEntries},
			"OHLCSTCX": {skip: reasonNeedsEntries},

			"FIXLB":   {outputs: []Output{out("", "labels")}},
			"MEANLB":  {outputs: []Output{out("", "labels")}},
			"LEXLB":   {outputs: []Output{out("", "labels")}},
			"TRENDLB": {outputs: []Output{out("", "labels")}},
			"BOLB":    {skip: "too compute-intensive on intraday datasets"},
		},
	})
}
