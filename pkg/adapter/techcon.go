package adapter

import (
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

// techconVolume lists evaluators that read the volume column.
var techconVolume = []string{"vwma", "cmf", "mfi"}

func init() {
	entries := map[string]entry{
		"consensus": {
			callee:  "_techcon_consensus",
			args:    []string{"ohlcv"},
			outputs: []Output{out("buy", "buy"), out("sell", "sell"), out("score", "score")},
		},
	}
	for _, name := range techconVolume {
		entries[name] = entry{inputs: InputOHLCV}
	}

	registerFamily(family{
		library: core.TechCon,
		base: func(name string) entry {
			// _techcon runs Consensus.evaluate_<name> and returns its buy and sell scores
			return entry{
				callee:  "_techcon",
				inputs:  InputOHLC,
				args:    []string{"ohlcv", pysrc.String(name)},
				outputs: []Output{out("buy", "buy"), out("sell", "sell")},
			}
		},
		entries: entries,
	})
}
