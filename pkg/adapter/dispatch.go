package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/pysrc"
	"github.com/samber/lo"
)

// Available is the set of price series present in a dataset.
type Available map[string]bool

// NewAvailable builds the set from column names such as "open" or "volume".
func NewAvailable(columns ...string) Available {
	a := Available{}
	for _, column := range columns {
		a[strings.ToLower(strings.TrimSuffix(column, "_"))] = true
	}
	return a
}

// AllInputs returns a set with every OHLCV column.
func AllInputs() Available {
	return NewAvailable("open", "high", "low", "close", "volume")
}

// Has reports whether an accessor ("open_", "close", ...) is available.
func (a Available) Has(column string) bool {
	return a[strings.TrimSuffix(column, "_")]
}

// HasVolume reports whether volume is present.
func (a Available) HasVolume() bool {
	return a["volume"]
}

// Call is a spec resolved against its recipe.
type Call struct {
	Spec    core.IndicatorSpec
	Display string
	Recipe  Recipe
	Columns []string
	Ignored []string // selection parameters no binding accepts
	kwargs  core.Params
	values  map[string]any
}

// Resolve looks up the recipe of a spec, puts its parameters in catalog
// order and coerces them.
func (t *Table) Resolve(spec core.IndicatorSpec) (Call, error) {
	recipe, err := t.Lookup(spec.Library, spec.Name)
	if err != nil {
		return Call{}, err
	}

	spec = recipe.canonical(spec)
	display := spec.DisplayName()
	kwargs, values, err := resolveArgs(recipe, spec, display)
	if err != nil {
		return Call{}, err
	}

	return Call{
		Spec:    spec,
		Display: display,
		Recipe:  recipe,
		Columns: recipe.Columns(display),
		Ignored: ignoredParams(recipe, spec),
		kwargs:  kwargs,
		values:  values,
	}, nil
}

// OutputColumns returns the columns a spec produces when the given inputs
// are available. A volume skip produces none.
func (c Call) OutputColumns(available Available) []string {
	if !c.Recipe.Blacklisted() && c.Recipe.NeedsVolume() && !available.HasVolume() {
		return nil
	}
	return c.Columns
}

// Value returns the coerced value bound to a catalog parameter.
func (c Call) Value(param string) (any, bool) {
	v, ok := c.values[param]
	return v, ok
}

func resolveArgs(r Recipe, spec core.IndicatorSpec, display string) (core.Params, map[string]any, error) {
	kwargs := core.Params{}
	values := map[string]any{}

	for _, b := range r.Bindings {
		value, ok := spec.Params.Get(b.Param)
		for _, alias := range b.Aliases {
			if ok {
				break
			}
			value, ok = spec.Params.Get(alias)
		}
		if !ok {
			value = b.Default
		}

		coerced, ok := Coerce(value, b.Coerce)
		if !ok {
			return nil, nil, &core.CoercionError{
				Indicator: display,
				Param:     b.Param,
				Value:     value,
				Want:      b.Coerce.String(),
			}
		}

		values[b.Param] = coerced
		if !b.PreludeOnly {
			kwargs = append(kwargs, core.Param{Name: b.Arg, Value: coerced})
		}
	}

	return kwargs, values, nil
}

func ignoredParams(r Recipe, spec core.IndicatorSpec) []string {
	known := map[string]bool{}
	for _, name := range r.Dropped {
		known[name] = true
	}
	for _, b := range r.Bindings {
		known[b.Param] = true
		for _, alias := range b.Aliases {
			known[alias] = true
		}
	}

	ignored := lo.Filter(spec.Params.Names(), func(name string, _ int) bool {
		return !known[name]
	})
	sort.Strings(ignored)
	return ignored
}

// EmitCall renders the guarded computation block of one spec.
func (t *Table) EmitCall(spec core.IndicatorSpec, available Available) (string, error) {
	call, err := t.Resolve(spec)
	if err != nil {
		return "", err
	}

	w := pysrc.NewWriter()
	call.Write(w, available)
	return w.String(), nil
}

// EmitCall renders one computation block using the default table.
func EmitCall(spec core.IndicatorSpec, available Available) (string, error) {
	return Default().EmitCall(spec, available)
}

// Write renders the block at the writer's current depth.
func (c Call) Write(w *pysrc.Writer, available Available) {
	w.Commentf("%s  [%s]", c.Display, c.Recipe.Key())
	if len(c.Ignored) > 0 {
		w.Commentf("ignored parameters: %s", strings.Join(c.Ignored, ", "))
	}

	switch {
	case c.Recipe.Blacklisted():
		c.writeSkip(w, c.Recipe.SkipReason)
		for _, column := range c.Columns {
			w.Linef("result[%s] = np.nan", pysrc.String(column))
		}
	case c.Recipe.NeedsVolume() && !available.HasVolume():
		c.writeSkip(w, "volume required")
	case c.Recipe.NeedsVolume():
		w.Block("if volume is None:", func() {
			c.writeSkip(w, "volume required")
		})
		w.Block("else:", func() {
			c.writeAttempts(w)
		})
	default:
		c.writeAttempts(w)
	}
}

func (c Call) writeSkip(w *pysrc.Writer, reason string) {
	w.Linef("print(%s)", pysrc.String(fmt.Sprintf("   ⏭️  %s skipped: %s", c.Display, reason)))
}

type attempt struct {
	recipe Recipe
	kwargs core.Params
	values map[string]any
}

func (c Call) attempts() []attempt {
	attempts := []attempt{{recipe: c.Recipe, kwargs: c.kwargs, values: c.values}}
	for _, fb := range c.Recipe.Fallbacks {
		kwargs, values, err := resolveArgs(fb, c.Spec, c.Display)
		if err != nil {
			continue
		}
		attempts = append(attempts, attempt{recipe: fb, kwargs: kwargs, values: values})
	}
	return attempts
}

func (c Call) writeAttempts(w *pysrc.Writer) {
	attempts := c.attempts()

	var nest func(i int)
	nest = func(i int) {
		w.Block("try:", func() {
			c.writeInvocation(w, attempts[i])
		})
		w.Block("except Exception as _err:", func() {
			if i+1 < len(attempts) {
				nest(i + 1)
				return
			}
			w.Linef("_fail(result, %s, %s, _err)", pysrc.String(c.Display), pysrc.Repr(c.Columns))
		})
	}
	nest(0)
}

func (c Call) writeInvocation(w *pysrc.Writer, a attempt) {
	if a.recipe.Prelude != "" {
		w.Line(substitute(a.recipe.Prelude, a.values))
	}
	w.Linef("_res = %s", callExpr(a.recipe, a.kwargs))
	if a.recipe.Unwrap {
		w.Line("_res = _first(_res)")
	}

	if len(a.recipe.Outputs) == 0 {
		w.Linef("result[%s] = _as_series(_extract(_res, []), close.index)", pysrc.String(c.Display))
	}
	for _, o := range a.recipe.Outputs {
		selectors := lo.Map(o.Select, func(s Selector, _ int) string {
			return s.Python()
		})
		w.Linef("result[%s] = _as_series(_extract(_res, [%s]), close.index)",
			pysrc.String(ColumnName(c.Display, o.Suffix)), strings.Join(selectors, ", "))
	}
	w.Linef("_ok(%s, %d)", pysrc.String(c.Display), len(c.Columns))
}

// callExpr renders "callee(args..., kw=value, ...)".
func callExpr(r Recipe, kwargs core.Params) string {
	var args []string
	switch {
	case r.Args != nil:
		args = append(args, r.Args...)
	case r.KeywordInputs:
		for _, column := range r.Inputs.Columns() {
			args = append(args, keywordName(column)+"="+column)
		}
	default:
		args = append(args, r.Inputs.Columns()...)
	}

	var splat []string
	for _, kw := range append(append(core.Params{}, kwargs...), r.Fixed...) {
		if pysrc.IsIdentifier(kw.Name) {
			args = append(args, kw.Name+"="+pysrc.Repr(kw.Value))
			continue
		}
		splat = append(splat, pysrc.String(kw.Name)+": "+pysrc.Repr(kw.Value))
	}
	if len(splat) > 0 {
		args = append(args, "**{"+strings.Join(splat, ", ")+"}")
	}

	return r.Callee + "(" + strings.Join(args, ", ") + ")"
}

// substitute replaces {param} placeholders with Python literals.
func substitute(template string, values map[string]any) string {
	keys := lo.Keys(values)
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, "{"+key+"}", pysrc.Repr(values[key]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
