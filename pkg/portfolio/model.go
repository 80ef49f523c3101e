package portfolio

import (
	"fmt"
	"math"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/event"
	"github.com/raykavin/vbtforge/pkg/logger"
)

// Change is one recorded parameter update.
type Change struct {
	ID  string
	Old any
	New any
}

// Option configures a Model.
type Option func(*Model)

// WithBus publishes parameter changes on bus.
func WithBus(bus *event.Bus) Option {
	return func(m *Model) {
		m.bus = bus
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// Model is the portfolio parameter state. It is single-owner and not safe
// for concurrent mutation.
type Model struct {
	values     map[string]any
	changes    []Change
	instrument string
	bus        *event.Bus
	log        logger.Logger
}

// New creates a model holding the registry defaults.
func New(opts ...Option) *Model {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}
	if m.bus == nil {
		m.bus = event.NewBus()
	}
	m.log = logger.OrNop(m.log)
	m.values = defaults()
	return m
}

func defaults() map[string]any {
	values := make(map[string]any, len(registry))
	for _, p := range registry {
		values[p.ID] = p.Default
	}
	return values
}

// Bus returns the event bus changes are published on.
func (m *Model) Bus() *event.Bus {
	return m.bus
}

// Get returns the current value of a parameter.
func (m *Model) Get(id string) (any, error) {
	if _, err := Lookup(id); err != nil {
		return nil, err
	}
	return m.values[id], nil
}

// Float returns a float parameter, or NaN when id is not a float parameter.
func (m *Model) Float(id string) float64 {
	if f, ok := m.values[id].(float64); ok {
		return f
	}
	return math.NaN()
}

// String returns an enum parameter, or "" when id is not an enum parameter.
func (m *Model) String(id string) string {
	s, _ := m.values[id].(string)
	return s
}

// Set coerces value to the declared kind, stores it and publishes a change
// event when the value differs. Bounds are reported by ValidateAll.
func (m *Model) Set(id string, value any) error {
	p, err := Lookup(id)
	if err != nil {
		return err
	}
	coerced, err := p.Coerce(value)
	if err != nil {
		return err
	}
	m.store(id, coerced)
	return nil
}

func (m *Model) store(id string, value any) {
	old := m.values[id]
	if sameValue(old, value) {
		return
	}
	m.values[id] = value
	m.changes = append(m.changes, Change{ID: id, Old: old, New: value})
	m.log.Debugf("portfolio %s: %s -> %s", id, core.FormatValue(old), core.FormatValue(value))
	m.bus.Publish(event.Event{Topic: event.TopicParameterChanged, Key: id, Old: old, New: value})
}

func sameValue(a, b any) bool {
	fa, okA := a.(float64)
	fb, okB := b.(float64)
	if okA && okB && math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	return a == b
}

// Changes returns the recorded updates in order.
func (m *Model) Changes() []Change {
	return append([]Change(nil), m.changes...)
}

// Reset restores every parameter to its default.
func (m *Model) Reset() {
	m.values = defaults()
	m.instrument = ""
	m.changes = append(m.changes, Change{ID: "*", New: "defaults"})
	m.bus.Publish(event.Event{Topic: event.TopicReset})
}

// ApplyPreset overwrites exactly the fields an instrument preset declares.
// An unknown preset leaves the state untouched.
func (m *Model) ApplyPreset(name string) error {
	preset, err := LookupPreset(name)
	if err != nil {
		return err
	}
	for _, param := range preset.Values() {
		m.store(param.Name, param.Value)
	}
	m.instrument = preset.Name
	m.bus.Publish(event.Event{Topic: event.TopicPresetApplied, Key: preset.Name})
	m.log.Infof("instrument preset %s applied", preset.Name)
	return nil
}

// Instrument returns the name of the last applied preset.
func (m *Model) Instrument() string {
	return m.instrument
}

// Values returns every parameter in registry order.
func (m *Model) Values() core.Params {
	out := make(core.Params, 0, len(registry))
	for _, p := range registry {
		out = append(out, core.Param{Name: p.ID, Value: m.values[p.ID]})
	}
	return out
}

// Map returns a copy of the state keyed by parameter id.
func (m *Model) Map() map[string]any {
	out := make(map[string]any, len(m.values))
	for id, value := range m.values {
		out[id] = value
	}
	return out
}

// Arguments returns the parameters passed to the portfolio constructor,
// keyed by constructor keyword, in registry order.
func (m *Model) Arguments() core.Params {
	var out core.Params
	for _, p := range registry {
		if p.Arg != "" {
			out = append(out, core.Param{Name: p.Arg, Value: m.values[p.ID]})
		}
	}
	return out
}

func (m *Model) describe(id string) string {
	return fmt.Sprintf("%s=%s", id, core.FormatValue(m.values[id]))
}
