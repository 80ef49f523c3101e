package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/event"
)

// MarshalJSON writes the state as an object keyed by parameter id.
// Non-finite floats are written as the strings "inf", "-inf" and "nan".
func (m *Model) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.values))
	for id, value := range m.values {
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			value = core.FormatValue(f)
		}
		out[id] = value
	}
	return json.Marshal(out)
}

// Apply overlays raw values on the defaults. Unknown keys are ignored;
// missing keys keep their defaults; values that cannot be coerced keep the
// default and are reported.
func (m *Model) Apply(raw map[string]any) error {
	m.values = defaults()
	var errs []error
	for _, p := range registry {
		value, ok := raw[p.ID]
		if !ok {
			continue
		}
		coerced, err := p.Coerce(value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.values[p.ID] = coerced
	}
	return errors.Join(errs...)
}

// Save writes the state to a JSON file.
func (m *Model) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write portfolio: %w", err)
	}
	return nil
}

// Load replaces the state with the content of a JSON file.
func (m *Model) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read portfolio: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode portfolio %s: %w", path, err)
	}

	return m.Restore(raw, path)
}

// Restore replaces the state with raw values from source, such as a file
// path or a profile name, and announces the load.
func (m *Model) Restore(raw map[string]any, source string) error {
	err := m.Apply(raw)
	m.instrument = ""
	m.bus.Publish(event.Event{Topic: event.TopicLoaded, Key: source})
	return err
}
