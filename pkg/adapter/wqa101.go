package adapter

import (
	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
)

var alphaSkips = map[string]string{
	catalog.AlphaIndustryNeutral: "requires industry classification (IndNeutralize)",
	catalog.AlphaMarketCap:       "requires market capitalisation data",
}

func wqa101Entries() map[string]entry {
	entries := map[string]entry{}
	for category, reason := range alphaSkips {
		for n := range catalog.AlphaIDs(category).Iter() {
			entries[catalog.AlphaName(n)] = entry{skip: reason}
		}
	}
	return entries
}

func init() {
	registerFamily(family{
		library: core.WQA101,
		base: func(name string) entry {
			return entry{
				callee:  "wqa101.Alphas(ohlcv)." + name,
				inputs:  InputOHLCV,
				args:    []string{},
				volume:  true,
				outputs: []Output{out("", name)},
				fallbacks: []entry{
					{callee: "wqa101." + name, args: []string{"ohlcv"}},
				},
			}
		},
		entries: wqa101Entries(),
	})
}
