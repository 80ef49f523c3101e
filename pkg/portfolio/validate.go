package portfolio

import (
	"errors"
	"fmt"
	"math"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/shopspring/decimal"
)

// Realism thresholds above which fees produce a warning.
const (
	maxRealisticFees     = 0.005
	maxRealisticSlippage = 0.005
	maxRealisticFixedFee = 25.0
)

// Validation is the outcome of ValidateAll.
type Validation struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	RiskReward float64 // take-profit over stop-loss, NaN when either is off
}

// Err joins the validation errors, or returns nil.
func (v Validation) Err() error {
	return errors.Join(v.Errors...)
}

// ValidateAll checks every parameter against its bounds and the
// cross-parameter rules. It never stops at the first problem.
func (m *Model) ValidateAll() Validation {
	var report core.Report
	for _, p := range registry {
		value, ok := m.values[p.ID]
		if !ok {
			report.AddError(fmt.Errorf("%w: %s is not set", core.ErrInvalidValue, p.ID))
			continue
		}
		report.AddError(p.Check(value))
	}

	switch m.String(SizeType) {
	case "percent", "valuepercent":
		if size := m.Float(Size); !(size > 0 && size <= 1) {
			report.AddError(fmt.Errorf("%w: %s must be in (0, 1] when size_type is %s",
				core.ErrInvalidValue, m.describe(Size), m.String(SizeType)))
		}
	}

	rr := math.NaN()
	sl, tp := m.Float(StopLoss), m.Float(TakeProfit)
	if sl > 0 && tp > 0 {
		rr = tp / sl
		if tp <= sl {
			report.Warnf("take-profit ≤ stop-loss (%s vs %s)", m.DisplayStop(Profit), m.DisplayStop(Loss))
		}
		report.Warnf("risk-reward ratio %s", decimal.NewFromFloat(rr).Round(2).String())
	}

	for _, s := range []Stop{Loss, Profit} {
		m.checkStopDrift(s, &report)
	}

	if m.Float(Fees) > maxRealisticFees {
		report.Warnf("%s is above %.1f%% per order", m.describe(Fees), maxRealisticFees*100)
	}
	if m.Float(Slippage) > maxRealisticSlippage {
		report.Warnf("%s is above %.1f%% per order", m.describe(Slippage), maxRealisticSlippage*100)
	}
	if m.Float(FixedFee) > maxRealisticFixedFee {
		report.Warnf("%s looks high for a single order", m.describe(FixedFee))
	}

	return Validation{
		Valid:      report.OK(),
		Errors:     report.Errors,
		Warnings:   report.Warnings,
		RiskReward: rr,
	}
}

// checkStopDrift warns when a stop entered in ticks no longer matches its
// canonical form, e.g. after a preset changed the tick value.
func (m *Model) checkStopDrift(s Stop, report *core.Report) {
	f := fieldsOf(s)
	pct := m.Float(f.canonical)
	if StopMode(m.String(f.mode)) != ModeTicks || math.IsNaN(pct) {
		return
	}
	size, value, cash := m.dec(TickSize), m.dec(TickValue), m.dec(InitCash)
	if !size.IsPositive() || !value.IsPositive() || !cash.IsPositive() {
		return
	}
	want := TicksToPercent(m.dec(f.ticks), size, value, cash).InexactFloat64()
	if math.Abs(want-pct) > 1e-12 {
		report.Warnf("%s of %s ticks no longer matches %s; enter the stop again", s, m.dec(f.ticks).String(), m.describe(f.canonical))
	}
}
