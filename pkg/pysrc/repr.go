package pysrc

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Constants used by the emitted programs for non-finite floats.
const (
	Inf    = "np.inf"
	NegInf = "-np.inf"
	NaN    = "np.nan"
	None   = "None"
)

// Float renders a float64 the way Python's repr would.
func Float(f float64) string {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return Inf
	case math.IsInf(f, -1):
		return NegInf
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// String renders a Python double-quoted string literal.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(&b, `\x%02x`, r)
			case !unicode.IsPrint(r) && r <= 0xffff:
				fmt.Fprintf(&b, `\u%04x`, r)
			case !unicode.IsPrint(r):
				fmt.Fprintf(&b, `\U%08x`, r)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Repr renders a Go value as a Python literal. Unsupported types are
// rendered through their string form so emission never fails.
func Repr(v any) string {
	switch value := v.(type) {
	case nil:
		return None
	case bool:
		if value {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(value)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)
	case float32:
		return Float(float64(value))
	case float64:
		return Float(value)
	case string:
		return String(value)
	case *int:
		if value == nil {
			return None
		}
		return strconv.Itoa(*value)
	case *float64:
		if value == nil {
			return None
		}
		return Float(*value)
	case []string:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = String(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []int:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = strconv.Itoa(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []float64:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = Float(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []any:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = Repr(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		return Dict(value)
	case fmt.Stringer:
		return String(value.String())
	default:
		return String(fmt.Sprint(value))
	}
}

// Dict renders a map as a Python dict literal with sorted keys.
func Dict(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	items := make([]string, len(keys))
	for i, key := range keys {
		items[i] = String(key) + ": " + Repr(m[key])
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// Tuple renders already-rendered items as a Python tuple.
func Tuple(items ...string) string {
	if len(items) == 1 {
		return "(" + items[0] + ",)"
	}
	return "(" + strings.Join(items, ", ") + ")"
}

var keywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {}, "async": {},
	"await": {}, "break": {}, "class": {}, "continue": {}, "def": {}, "del": {}, "elif": {},
	"else": {}, "except": {}, "finally": {}, "for": {}, "from": {}, "global": {}, "if": {},
	"import": {}, "in": {}, "is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {},
	"pass": {}, "raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// IsIdentifier reports whether s can be used as a Python keyword argument name.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := keywords[s]; ok {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
