package portfolio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Parameters() {
		assert.False(t, seen[p.ID], "duplicate %s", p.ID)
		seen[p.ID] = true
		require.NoError(t, p.Check(p.Default), p.ID)
		if p.Kind == KindEnum {
			assert.Contains(t, p.Choices, Choice{Value: p.Default.(string), Label: p.Label(p.Default.(string))})
		}
	}
	assert.NotEmpty(t, ByCategory(Essential))
	assert.NotEmpty(t, ByCategory(Advanced))
	assert.NotEmpty(t, ByCategory(Professional))

	_, err := Lookup("nope")
	assert.True(t, errors.Is(err, core.ErrUnknownParameter))
}

func TestModel_SetCoerces(t *testing.T) {
	m := New()

	require.NoError(t, m.Set(Fees, "0.001"))
	assert.Equal(t, 0.001, m.Float(Fees))

	require.NoError(t, m.Set(SizeType, "Percent of portfolio value"))
	assert.Equal(t, "valuepercent", m.String(SizeType))

	require.NoError(t, m.Set(Size, "inf"))
	assert.True(t, math.IsInf(m.Float(Size), 1))

	require.NoError(t, m.Set(Seed, ""))
	v, err := m.Get(Seed)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, m.Set(Seed, "42"))
	v, _ = m.Get(Seed)
	assert.Equal(t, int64(42), v)

	require.NoError(t, m.Set(StopLoss, "none"))
	assert.True(t, math.IsNaN(m.Float(StopLoss)))

	require.NoError(t, m.Set(Accumulate, "true"))
	v, _ = m.Get(Accumulate)
	assert.Equal(t, true, v)

	assert.ErrorIs(t, m.Set(Seed, 4.5), core.ErrInvalidValue)
	assert.ErrorIs(t, m.Set(Direction, "sideways"), core.ErrInvalidValue)
	assert.ErrorIs(t, m.Set(Fees, "abc"), core.ErrInvalidValue)
	assert.ErrorIs(t, m.Set(InitCash, ""), core.ErrInvalidValue)
	assert.ErrorIs(t, m.Set("nope", 1), core.ErrUnknownParameter)
}

func TestModel_ChangeEvents(t *testing.T) {
	bus := event.NewBus()
	m := New(WithBus(bus))

	var events []event.Event
	bus.Subscribe(event.TopicParameterChanged, func(e event.Event) {
		events = append(events, e)
	})

	require.NoError(t, m.Set(Fees, 0.001))
	require.NoError(t, m.Set(Fees, 0.001)) // unchanged
	require.Len(t, events, 1)
	assert.Equal(t, Fees, events[0].Key)
	assert.Equal(t, 0.0005, events[0].Old)
	assert.Equal(t, 0.001, events[0].New)
}

func TestModel_ReentrantSetFiresOnce(t *testing.T) {
	bus := event.NewBus()
	m := New(WithBus(bus))

	calls := 0
	bus.Subscribe(event.TopicParameterChanged, func(e event.Event) {
		calls++
		if e.Key == Fees {
			require.NoError(t, m.Set(Fees, 0.002))
		}
	})

	require.NoError(t, m.Set(Fees, 0.001))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0.002, m.Float(Fees))
	assert.Len(t, m.Changes(), 2)
	assert.Equal(t, 1, bus.Suppressed())
}

func TestModel_ApplyPreset(t *testing.T) {
	m := New()
	before := m.Map()

	require.NoError(t, m.ApplyPreset("nq"))

	assert.Equal(t, 0.25, m.Float(TickSize))
	assert.Equal(t, 5.0, m.Float(TickValue))
	assert.Equal(t, 4.20, m.Float(FixedFee))
	assert.Equal(t, 25.0, m.Float(StopLossTicks))
	assert.Equal(t, 50.0, m.Float(TakeProfitTicks))
	assert.Equal(t, "NQ", m.Instrument())

	preset, err := LookupPreset("NQ")
	require.NoError(t, err)
	touched := map[string]bool{}
	for _, p := range preset.Values() {
		touched[p.Name] = true
	}
	after := m.Map()
	for id, value := range before {
		if touched[id] {
			continue
		}
		if f, ok := value.(float64); ok && math.IsNaN(f) {
			assert.True(t, math.IsNaN(after[id].(float64)), id)
			continue
		}
		assert.Equal(t, value, after[id], id)
	}
}

func TestModel_ApplyUnknownPreset(t *testing.T) {
	m := New()
	before := m.Values()

	err := m.ApplyPreset("XYZ")
	var presetErr *core.PresetError
	require.ErrorAs(t, err, &presetErr)
	assert.True(t, errors.Is(err, core.ErrInstrumentPreset))
	assert.Equal(t, len(before), len(m.Values()))
	assert.Empty(t, m.Changes())
}

func TestModel_StopRoundTrip(t *testing.T) {
	m := New()
	require.NoError(t, m.ApplyPreset("NQ"))
	require.NoError(t, m.Set(InitCash, 5000))

	require.NoError(t, m.SetStop(Loss, 25, ModeTicks))
	assert.Equal(t, 0.00625, m.Float(StopLoss))
	assert.Equal(t, "25 ticks", m.DisplayStop(Loss))
	assert.InDelta(t, 25, m.StopTicks(Loss), 1e-9)

	require.NoError(t, m.SetStop(Profit, 62.5, ModeDollars))
	assert.Equal(t, 0.0125, m.Float(TakeProfit))
	assert.Equal(t, "$62.50", m.DisplayStop(Profit))
	assert.InDelta(t, 50, m.StopTicks(Profit), 1e-9)

	require.NoError(t, m.SetStop(Profit, 0.02, ModePercent))
	assert.Equal(t, "2%", m.DisplayStop(Profit))

	assert.ErrorIs(t, m.SetStop(Loss, -1, ModeTicks), core.ErrInvalidValue)
	assert.Equal(t, "off", New().DisplayStop(Loss))
}

func TestTickConversion(t *testing.T) {
	size, value, cash := decimal.NewFromFloat(0.25), decimal.NewFromFloat(5), decimal.NewFromFloat(5000)
	for _, ticks := range []float64{0, 1, 4, 25, 50, 400} {
		pct := TicksToPercent(decimal.NewFromFloat(ticks), size, value, cash)
		back := PercentToTicks(pct, size, value, cash)
		assert.True(t, back.Equal(decimal.NewFromFloat(ticks)), "%v ticks came back as %s", ticks, back)
	}
}

func TestValidateAll_TakeProfitBelowStopLoss(t *testing.T) {
	m := New()
	require.NoError(t, m.ApplyPreset("NQ"))
	require.NoError(t, m.SetStop(Loss, 50, ModeTicks))
	require.NoError(t, m.SetStop(Profit, 25, ModeTicks))

	v := m.ValidateAll()
	assert.True(t, v.Valid, v.Err())
	assert.InDelta(t, 0.5, v.RiskReward, 1e-12)

	joined := strings.Join(v.Warnings, "\n")
	assert.Contains(t, joined, "take-profit ≤ stop-loss")
	assert.Contains(t, joined, "risk-reward ratio 0.5")
}

func TestValidateAll_Errors(t *testing.T) {
	m := New()
	require.NoError(t, m.Set(InitCash, 50))
	require.NoError(t, m.Set(SizeType, "percent"))
	require.NoError(t, m.Set(Size, 1.5))
	require.NoError(t, m.Set(Fees, 0.01))

	v := m.ValidateAll()
	assert.False(t, v.Valid)
	assert.Len(t, v.Errors, 2)
	for _, err := range v.Errors {
		assert.ErrorIs(t, err, core.ErrInvalidValue)
	}
	assert.True(t, math.IsNaN(v.RiskReward))
	assert.NotEmpty(t, v.Warnings)

	assert.True(t, New().ValidateAll().Valid)
}

func TestValidateAll_StopDrift(t *testing.T) {
	m := New()
	require.NoError(t, m.ApplyPreset("NQ"))
	require.NoError(t, m.SetStop(Loss, 25, ModeTicks))
	require.NoError(t, m.ApplyPreset("ES"))

	v := m.ValidateAll()
	assert.True(t, v.Valid)
	assert.Contains(t, strings.Join(v.Warnings, "\n"), "no longer matches")
}

func TestModel_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")

	m := New()
	require.NoError(t, m.ApplyPreset("NQ"))
	require.NoError(t, m.SetStop(Loss, 25, ModeTicks))
	require.NoError(t, m.Set(Seed, 7))
	require.NoError(t, m.Save(path))

	loaded := New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 0.25, loaded.Float(TickSize))
	assert.Equal(t, m.Float(StopLoss), loaded.Float(StopLoss))
	assert.Equal(t, "25 ticks", loaded.DisplayStop(Loss))
	assert.True(t, math.IsNaN(loaded.Float(TakeProfit)))
	assert.True(t, math.IsInf(loaded.Float(Size), 1))
	v, _ := loaded.Get(Seed)
	assert.Equal(t, int64(7), v)
}

func TestModel_LoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fees": 0.002, "bogus": 1, "direction": "sideways"}`), 0o644))

	m := New()
	err := m.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidValue)
	assert.Equal(t, 0.002, m.Float(Fees))
	assert.Equal(t, "longonly", m.String(Direction))
	assert.Equal(t, 10000.0, m.Float(InitCash))

	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0o644))
	assert.Error(t, m.Load(path))
}

func TestSessions_EffectiveWindows(t *testing.T) {
	var s Sessions
	require.NoError(t, s.Select("new york"))
	require.NoError(t, s.Select("London"))
	require.NoError(t, s.Select("London"))
	require.NoError(t, s.AddCustom(Window{Start: "10:00", End: "10:30"}))

	windows, err := s.ComputeEffectiveWindows()
	require.NoError(t, err)
	names := make([]string, len(windows))
	for i, w := range windows {
		names[i] = w.Name
	}
	assert.Equal(t, []string{"London", "New York", "Custom 1"}, names)

	again, err := s.ComputeEffectiveWindows()
	require.NoError(t, err)
	assert.Equal(t, windows, again)

	assert.Error(t, s.Select("Atlantis"))
	assert.Error(t, s.AddCustom(Window{Name: "bad", Start: "25:00", End: "10:00"}))
	assert.Error(t, s.AddCustom(Window{Name: "empty", Start: "10:00", End: "10:00"}))
	require.NoError(t, s.AddCustom(Window{Start: "12:00", End: "13:00"}))
	require.NoError(t, s.AddCustom(Window{Start: "14:00", End: "15:00"}))
	assert.Error(t, s.AddCustom(Window{Start: "16:00", End: "17:00"}))
}

func TestMergeOverlapping(t *testing.T) {
	merged := MergeOverlapping([]Window{
		{Name: "London", Start: "03:00", End: "11:30"},
		{Name: "New York", Start: "08:00", End: "17:00"},
		{Name: "Late", Start: "20:00", End: "21:00"},
	})
	assert.Equal(t, []Window{
		{Name: "London + New York", Start: "03:00", End: "17:00"},
		{Name: "Late", Start: "20:00", End: "21:00"},
	}, merged)

	wrapped := MergeOverlapping([]Window{
		{Name: "Early", Start: "01:00", End: "05:00"},
		{Name: "Tokyo", Start: "19:00", End: "04:00"},
	})
	assert.Equal(t, []Window{{Name: "Tokyo + Early", Start: "19:00", End: "05:00"}}, wrapped)
}

func TestMergeOverlapping_WholeDay(t *testing.T) {
	merged := MergeOverlapping([]Window{
		{Name: "Asia", Start: "18:00", End: "06:00"},
		{Name: "Europe", Start: "06:00", End: "12:00"},
		{Name: "America", Start: "12:00", End: "18:00"},
	})
	require.Len(t, merged, 1)
	day := merged[0]
	assert.True(t, day.AllDay)
	assert.Equal(t, "00:00", day.Start)
	assert.Equal(t, "00:00", day.End)
	assert.NoError(t, day.Validate())
	assert.False(t, day.CrossesMidnight())
	assert.Contains(t, day.String(), "all day")

	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		t.Skip("timezone database not available")
	}
	assert.True(t, day.Contains(time.Date(2024, 3, 5, 23, 59, 0, 0, loc)))
	assert.True(t, day.Contains(time.Date(2024, 3, 5, 0, 0, 0, 0, loc)))

	// merging again keeps the whole day
	again := MergeOverlapping(append(merged, Window{Name: "Lunch", Start: "12:00", End: "13:00"}))
	require.Len(t, again, 1)
	assert.True(t, again[0].AllDay)
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Name: "Tokyo", Start: "19:00", End: "04:00"}
	assert.True(t, w.CrossesMidnight())

	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		t.Skip("timezone database not available")
	}
	assert.True(t, w.Contains(time.Date(2024, 3, 5, 23, 0, 0, 0, loc)))
	assert.True(t, w.Contains(time.Date(2024, 3, 5, 2, 0, 0, 0, loc)))
	assert.False(t, w.Contains(time.Date(2024, 3, 5, 4, 0, 0, 0, loc)))
	assert.False(t, w.Contains(time.Date(2024, 3, 5, 12, 0, 0, 0, loc)))
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("Asia=22:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, Window{Name: "Asia", Start: "22:00", End: "02:00"}, w)
	assert.True(t, w.CrossesMidnight())

	w, err = ParseWindow(" 08:00 - 12:00 ")
	require.NoError(t, err)
	assert.Equal(t, Window{Start: "08:00", End: "12:00"}, w)

	for _, s := range []string{"08:00", "x=08:00-", "25:00-26:00", "10:00-10:00"} {
		_, err := ParseWindow(s)
		assert.Error(t, err, s)
	}
}
