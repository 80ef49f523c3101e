package adapter

import "github.com/raykavin/vbtforge/pkg/core"

// swingPrelude computes the swing points the structure functions consume.
const swingPrelude = "_swings = smc.swing_highs_lows(ohlc, swing_length={swing_length})"

// columns maps DataFrame columns to lower-case suffixes.
func columns(names ...string) []Output {
	outputs := make([]Output, len(names))
	for i, name := range names {
		outputs[i] = out(suffixOf(name), name)
	}
	return outputs
}

func suffixOf(column string) string {
	b := make([]byte, 0, len(column))
	for i := 0; i < len(column); i++ {
		c := column[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if i > 0 && column[i-1] >= 'a' && column[i-1] <= 'z' {
				b = append(b, '_')
			}
			b = append(b, c+'a'-'A')
		case c == '%':
			b = append(b, "_pct"...)
		default:
			b = append(b, c)
		}
	}
	return string(b)
}

func swingEntry(args []string, outputs []Output) entry {
	return entry{
		args:        args,
		prelude:     swingPrelude,
		preludeOnly: []string{"swing_length"},
		outputs:     outputs,
	}
}

func init() {
	ohlcSwings := []string{"ohlc", "_swings"}

	bosChoch := swingEntry(ohlcSwings, columns("BOS", "CHOCH", "Level", "BrokenIndex"))
	bosChoch.coerce = map[string]Coercion{"close_break": CoerceBool}

	ob := swingEntry([]string{"ohlcv", "_swings"}, columns("OB", "Top", "Bottom", "OBVolume", "Percentage"))
	ob.inputs = InputOHLCV
	ob.coerce = map[string]Coercion{"close_mitigation": CoerceBool}

	registerFamily(family{
		library: core.SMC,
		base: func(name string) entry {
			return entry{callee: "smc." + name, inputs: InputOHLC, args: []string{"ohlc"}}
		},
		entries: map[string]entry{
			"fvg": {
				coerce:  map[string]Coercion{"join_consecutive": CoerceBool},
				outputs: columns("FVG", "Top", "Bottom", "MitigatedIndex"),
			},
			"swing_highs_lows":  {outputs: columns("HighLow", "Level")},
			"bos_choch":         bosChoch,
			"ob":                ob,
			"liquidity":         swingEntry(ohlcSwings, columns("Liquidity", "Level", "End", "Swept")),
			"retracements":      swingEntry(ohlcSwings, columns("Direction", "CurrentRetracement%", "DeepestRetracement%")),
			"previous_high_low": {outputs: columns("PreviousHigh", "PreviousLow", "BrokenHigh", "BrokenLow")},
			"sessions":          {outputs: columns("Active", "High", "Low")},
		},
	})
}
