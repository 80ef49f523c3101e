package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Param is one named indicator parameter value. Values are int, float64,
// string or bool.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered parameter list. It marshals as a JSON/YAML object
// while keeping the declaration order, which drives display names.
type Params []Param

// Get returns the value of a parameter.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Has reports whether the parameter is present.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// With returns a copy with the parameter replaced in place or appended.
func (p Params) With(name string, value any) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Param{Name: name, Value: value})
}

// Names returns the parameter names in order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}

// Map returns the parameters as an unordered map.
func (p Params) Map() map[string]any {
	m := make(map[string]any, len(p))
	for _, param := range p {
		m[param.Name] = param.Value
	}
	return m
}

// MarshalJSON writes the parameters as an object in declaration order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(param.Name)
		if err != nil {
			return nil, err
		}
		value, err := marshalParamValue(param.Value)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", param.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalParamValue(value any) ([]byte, error) {
	if f, ok := value.(float64); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return json.Marshal(FormatValue(f))
		}
		// keep floats distinguishable from ints after a round trip
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return []byte(strconv.FormatFloat(f, 'f', 1, 64)), nil
		}
	}
	return json.Marshal(value)
}

// UnmarshalJSON reads an object keeping key order. Integral literals become
// int, other numbers float64.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("params: expected object, got %v", tok)
	}

	out := Params{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("params: invalid key %v", keyTok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("params %s: %w", key, err)
		}
		value, err := normalizeJSONValue(raw)
		if err != nil {
			return fmt.Errorf("params %s: %w", key, err)
		}
		out = append(out, Param{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

func normalizeJSONValue(raw any) (any, error) {
	switch value := raw.(type) {
	case json.Number:
		text := value.String()
		if !strings.ContainsAny(text, ".eE") {
			if i, err := value.Int64(); err == nil {
				return int(i), nil
			}
		}
		return value.Float64()
	case string, bool, nil:
		return value, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", raw)
	}
}

// MarshalYAML writes the parameters as an ordered mapping node.
func (p Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, param := range p {
		value := &yaml.Node{}
		if err := value.Encode(param.Value); err != nil {
			return nil, err
		}
		if f, ok := param.Value.(float64); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'f', 1, 64)}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: param.Name},
			value,
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node keeping key order.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("params: expected mapping at line %d", node.Line)
	}

	out := make(Params, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("params %s: %w", key, err)
		}
		out = append(out, Param{Name: key, Value: value})
	}

	*p = out
	return nil
}

// FormatValue renders a parameter value for display names.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case float64:
		switch {
		case math.IsNaN(v):
			return "nan"
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		case v == math.Trunc(v) && math.Abs(v) < 1e16:
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(v)
	}
}
