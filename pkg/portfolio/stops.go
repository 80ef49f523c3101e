package portfolio

import (
	"fmt"
	"math"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/shopspring/decimal"
)

// Stop selects the stop-loss or the take-profit.
type Stop int

const (
	Loss Stop = iota
	Profit
)

func (s Stop) String() string {
	if s == Profit {
		return "take-profit"
	}
	return "stop-loss"
}

// StopMode is the unit a stop was entered in.
type StopMode string

const (
	ModePercent StopMode = "percent"
	ModeTicks   StopMode = "ticks"
	ModeDollars StopMode = "dollars"
)

// ParseStopMode accepts the mode names and a few short spellings.
func ParseStopMode(s string) (StopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percent", "pct", "%":
		return ModePercent, nil
	case "ticks", "tick", "t":
		return ModeTicks, nil
	case "dollars", "dollar", "usd", "$":
		return ModeDollars, nil
	}
	return "", fmt.Errorf("%w: unknown stop mode %q", core.ErrInvalidValue, s)
}

type stopFields struct {
	canonical, mode, ticks, dollars string
}

func fieldsOf(s Stop) stopFields {
	if s == Profit {
		return stopFields{canonical: TakeProfit, mode: TakeProfitMode, ticks: TakeProfitTicks, dollars: TakeProfitDollars}
	}
	return stopFields{canonical: StopLoss, mode: StopLossMode, ticks: StopLossTicks, dollars: StopLossDollars}
}

// TicksToPercent converts a tick distance to a fraction of initial cash.
func TicksToPercent(ticks, tickSize, tickValue, initCash decimal.Decimal) decimal.Decimal {
	return ticks.Mul(tickSize).Mul(tickValue).Div(initCash)
}

// PercentToTicks converts a fraction of initial cash back to ticks.
func PercentToTicks(percent, tickSize, tickValue, initCash decimal.Decimal) decimal.Decimal {
	return percent.Mul(initCash).Div(tickSize.Mul(tickValue))
}

func (m *Model) dec(id string) decimal.Decimal {
	return decimal.NewFromFloat(m.Float(id))
}

// SetStop records a stop in the unit it was entered in and stores its
// canonical form, a fraction of initial cash, computed from the current
// instrument and initial cash.
func (m *Model) SetStop(s Stop, value float64, mode StopMode) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: %s %v must be a non-negative number", core.ErrInvalidValue, s, value)
	}

	f := fieldsOf(s)
	amount := decimal.NewFromFloat(value)
	cash := m.dec(InitCash)
	if mode != ModePercent && !cash.IsPositive() {
		return fmt.Errorf("%w: %s in %s needs a positive %s", core.ErrInvalidValue, s, mode, InitCash)
	}

	var canonical decimal.Decimal
	switch mode {
	case ModePercent:
		canonical = amount
	case ModeTicks:
		tickSize, tickValue := m.dec(TickSize), m.dec(TickValue)
		if !tickSize.IsPositive() || !tickValue.IsPositive() {
			return fmt.Errorf("%w: %s in ticks needs a positive tick size and tick value", core.ErrInvalidValue, s)
		}
		canonical = TicksToPercent(amount, tickSize, tickValue, cash)
		m.store(f.ticks, value)
	case ModeDollars:
		canonical = amount.Div(cash)
		m.store(f.dollars, value)
	default:
		return fmt.Errorf("%w: unknown stop mode %q", core.ErrInvalidValue, mode)
	}

	m.store(f.mode, string(mode))
	m.store(f.canonical, canonical.InexactFloat64())
	return nil
}

// StopTicks returns the canonical stop expressed in ticks of the current
// instrument, or NaN when the stop is disabled.
func (m *Model) StopTicks(s Stop) float64 {
	f := fieldsOf(s)
	pct := m.Float(f.canonical)
	size, value := m.dec(TickSize), m.dec(TickValue)
	if math.IsNaN(pct) || !size.IsPositive() || !value.IsPositive() {
		return math.NaN()
	}
	return PercentToTicks(decimal.NewFromFloat(pct), size, value, m.dec(InitCash)).InexactFloat64()
}

// DisplayStop renders a stop in the unit it was entered in, such as
// "25 ticks", "$31.25" or "0.625%".
func (m *Model) DisplayStop(s Stop) string {
	f := fieldsOf(s)
	pct := m.Float(f.canonical)
	if math.IsNaN(pct) {
		return "off"
	}
	switch StopMode(m.String(f.mode)) {
	case ModeTicks:
		return m.dec(f.ticks).String() + " ticks"
	case ModeDollars:
		return "$" + m.dec(f.dollars).StringFixed(2)
	}
	return decimal.NewFromFloat(pct).Shift(2).String() + "%"
}
