package portfolio

import (
	"sort"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
)

// Preset is a named bundle of instrument constants.
type Preset struct {
	Name            string
	Description     string
	TickSize        float64
	TickValue       float64
	FixedFee        float64
	StopLossTicks   float64
	TakeProfitTicks float64
}

// Values returns the parameter overrides the preset applies, in a fixed order.
func (p Preset) Values() []core.Param {
	return []core.Param{
		{Name: TickSize, Value: p.TickSize},
		{Name: TickValue, Value: p.TickValue},
		{Name: FixedFee, Value: p.FixedFee},
		{Name: StopLossTicks, Value: p.StopLossTicks},
		{Name: TakeProfitTicks, Value: p.TakeProfitTicks},
	}
}

var presets = map[string]Preset{
	"NQ":  {Name: "NQ", Description: "E-mini Nasdaq-100", TickSize: 0.25, TickValue: 5.0, FixedFee: 4.20, StopLossTicks: 25, TakeProfitTicks: 50},
	"MNQ": {Name: "MNQ", Description: "Micro E-mini Nasdaq-100", TickSize: 0.25, TickValue: 0.5, FixedFee: 1.24, StopLossTicks: 25, TakeProfitTicks: 50},
	"ES":  {Name: "ES", Description: "E-mini S&P 500", TickSize: 0.25, TickValue: 12.5, FixedFee: 4.20, StopLossTicks: 8, TakeProfitTicks: 16},
	"MES": {Name: "MES", Description: "Micro E-mini S&P 500", TickSize: 0.25, TickValue: 1.25, FixedFee: 1.24, StopLossTicks: 8, TakeProfitTicks: 16},
	"YM":  {Name: "YM", Description: "E-mini Dow", TickSize: 1.0, TickValue: 5.0, FixedFee: 4.20, StopLossTicks: 30, TakeProfitTicks: 60},
	"RTY": {Name: "RTY", Description: "E-mini Russell 2000", TickSize: 0.1, TickValue: 5.0, FixedFee: 4.20, StopLossTicks: 20, TakeProfitTicks: 40},
	"CL":  {Name: "CL", Description: "Crude Oil", TickSize: 0.01, TickValue: 10.0, FixedFee: 4.50, StopLossTicks: 20, TakeProfitTicks: 40},
	"GC":  {Name: "GC", Description: "Gold", TickSize: 0.1, TickValue: 10.0, FixedFee: 4.50, StopLossTicks: 30, TakeProfitTicks: 60},
}

// Presets returns every instrument preset sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// LookupPreset finds a preset by name, case-insensitively.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, &core.PresetError{Name: name}
	}
	return p, nil
}
