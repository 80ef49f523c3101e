package adapter

import (
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/samber/lo"
)

// talibInputs lists every TA-Lib function that does not take the close series alone.
var talibInputs = map[InputTag][]string{
	InputHL: {
		"MIDPRICE", "SAR", "SAREXT", "AROON", "AROONOSC", "MINUS_DM", "PLUS_DM",
		"MEDPRICE", "BETA", "CORREL", "ADD", "DIV", "MULT", "SUB",
	},
	InputHLC: {
		"ADX", "ADXR", "CCI", "DX", "MINUS_DI", "PLUS_DI", "STOCH", "STOCHF",
		"ULTOSC", "WILLR", "ATR", "NATR", "TRANGE", "TYPPRICE", "WCLPRICE",
	},
	InputOHLC: {"BOP", "AVGPRICE"},
	InputCV:   {"OBV"},
	InputHLCV: {"MFI", "AD", "ADOSC"},
}

// talibOutputs names the tuple members of multi-output functions.
var talibOutputs = map[string][]string{
	"BBANDS":      {"upperband", "middleband", "lowerband"},
	"MAMA":        {"mama", "fama"},
	"AROON":       {"aroondown", "aroonup"},
	"MACD":        {"macd", "macdsignal", "macdhist"},
	"MACDEXT":     {"macd", "macdsignal", "macdhist"},
	"MACDFIX":     {"macd", "macdsignal", "macdhist"},
	"STOCH":       {"slowk", "slowd"},
	"STOCHF":      {"fastk", "fastd"},
	"STOCHRSI":    {"fastk", "fastd"},
	"HT_PHASOR":   {"inphase", "quadrature"},
	"HT_SINE":     {"sine", "leadsine"},
	"MINMAX":      {"min", "max"},
	"MINMAXINDEX": {"minidx", "maxidx"},
}

// talibEntries expands the input and output tables into per-function overrides.
func talibEntries() map[string]entry {
	entries := map[string]entry{}
	for tag, names := range talibInputs {
		for _, name := range names {
			e := entries[name]
			e.inputs = tag
			entries[name] = e
		}
	}
	for name, suffixes := range talibOutputs {
		e := entries[name]
		for i, suffix := range suffixes {
			e.outputs = append(e.outputs, pos(suffix, i))
		}
		entries[name] = e
	}

	mavp := entries["MAVP"]
	mavp.skip = "requires a per-bar periods series input"
	entries["MAVP"] = mavp

	return entries
}

// ndarrayArgs converts the inputs to float64 arrays; some TA-Lib builds
// reject pandas series and integer volume.
func ndarrayArgs(tag InputTag) []string {
	return lo.Map(tag.Columns(), func(column string, _ int) string {
		return "np.asarray(" + column + ", dtype=np.float64)"
	})
}

func init() {
	registerFamily(family{
		library: core.TALib,
		base: func(name string) entry {
			e := entry{callee: "talib." + strings.ToUpper(name), inputs: InputClose}
			if strings.HasPrefix(name, "CDL") {
				e.inputs = InputOHLC
			}
			return e
		},
		entries: talibEntries(),
		generic: func(name string, e entry) (entry, bool) {
			e.args = ndarrayArgs(e.inputs)
			e.fallbacks = nil
			return e, true
		},
	})
}
