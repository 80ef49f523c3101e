package adapter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/samber/lo"
)

// entry is the partial declaration of a recipe. Zero fields inherit from
// the library's base entry.
type entry struct {
	callee      string
	inputs      InputTag
	args        []string
	keyword     bool
	rename      map[string]string // catalog name -> library keyword
	drop        []string          // catalog parameters the call does not accept
	coerce      map[string]Coercion
	fixed       core.Params
	prelude     string
	preludeOnly []string
	unwrap      bool
	outputs     []Output
	fallbacks   []entry
	skip        string
	volume      bool
}

// family declares how one library is invoked. base supplies the defaults
// for every catalog entry of the library; entries override them per name;
// generic, when set, derives an extra fallback from the merged entry.
type family struct {
	library core.Library
	base    func(name string) entry
	entries map[string]entry
	generic func(name string, e entry) (entry, bool)
}

var (
	familiesMu sync.Mutex
	families   = map[core.Library]family{}

	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

func registerFamily(f family) {
	familiesMu.Lock()
	defer familiesMu.Unlock()
	families[f.library] = f
}

// synonyms are alternative spellings accepted for common period arguments.
var synonyms = map[string][]string{
	"window":     {"length", "period", "timeperiod"},
	"length":     {"window", "period", "timeperiod"},
	"period":     {"window", "length", "timeperiod"},
	"timeperiod": {"window", "length", "period"},
}

// Table is the read-only mapping from catalog entries to calling recipes.
type Table struct {
	recipes map[string]Recipe
	keys    []string
}

// Default returns the process-wide table built over catalog.Default.
// It panics if the declarations do not cover the catalog exactly.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = NewTable(catalog.Default())
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultTable
}

// NewTable compiles one recipe per catalog entry. Declarations that name
// an indicator missing from the catalog are rejected.
func NewTable(cat *catalog.Catalog) (*Table, error) {
	t := &Table{recipes: make(map[string]Recipe, cat.Len())}

	grouped := cat.All()
	for _, library := range core.Libraries() {
		descriptors := grouped[library]
		fam, ok := families[library]
		if !ok {
			if len(descriptors) > 0 {
				return nil, fmt.Errorf("adapter: no recipes declared for library %s", library)
			}
			continue
		}

		names := lo.Associate(descriptors, func(d core.IndicatorDescriptor) (string, bool) {
			return d.Name, true
		})
		for name := range fam.entries {
			if !names[name] {
				return nil, fmt.Errorf("adapter: recipe %s has no catalog entry",
					core.IndicatorKey(library, name))
			}
		}

		for _, d := range descriptors {
			recipe, err := fam.compile(d)
			if err != nil {
				return nil, err
			}
			t.recipes[d.Key()] = recipe
			t.keys = append(t.keys, d.Key())
		}
	}

	return t, nil
}

func (f family) compile(d core.IndicatorDescriptor) (Recipe, error) {
	e := f.base(d.Name)
	if override, ok := f.entries[d.Name]; ok {
		e = merge(e, override)
	}

	primary, err := build(d, e)
	if err != nil {
		return Recipe{}, err
	}

	for _, fb := range e.fallbacks {
		alt := e
		alt.fallbacks = nil
		fallback, err := build(d, merge(alt, fb))
		if err != nil {
			return Recipe{}, err
		}
		primary.Fallbacks = append(primary.Fallbacks, fallback)
	}

	if f.generic != nil && !primary.Blacklisted() {
		if fb, ok := f.generic(d.Name, e); ok {
			fallback, err := build(d, fb)
			if err != nil {
				return Recipe{}, err
			}
			primary.Fallbacks = append(primary.Fallbacks, fallback)
		}
	}

	return primary, nil
}

func merge(base, over entry) entry {
	if over.callee != "" {
		base.callee = over.callee
	}
	if over.inputs != 0 {
		base.inputs = over.inputs
	}
	if over.args != nil {
		base.args = over.args
	}
	if over.rename != nil {
		base.rename = over.rename
	}
	if over.drop != nil {
		base.drop = over.drop
	}
	if over.coerce != nil {
		base.coerce = over.coerce
	}
	if over.fixed != nil {
		base.fixed = over.fixed
	}
	if over.prelude != "" {
		base.prelude = over.prelude
		base.preludeOnly = over.preludeOnly
	}
	if over.outputs != nil {
		base.outputs = over.outputs
	}
	if over.fallbacks != nil {
		base.fallbacks = over.fallbacks
	}
	if over.skip != "" {
		base.skip = over.skip
	}
	base.keyword = base.keyword || over.keyword
	base.unwrap = base.unwrap || over.unwrap
	base.volume = base.volume || over.volume
	return base
}

func build(d core.IndicatorDescriptor, e entry) (Recipe, error) {
	if e.callee == "" && e.skip == "" {
		return Recipe{}, fmt.Errorf("adapter: %s has no callee", d.Key())
	}
	if e.inputs == 0 {
		e.inputs = InputClose
	}

	r := Recipe{
		Library:        d.Library,
		Name:           d.Name,
		Callee:         e.callee,
		Inputs:         e.inputs,
		Args:           e.args,
		KeywordInputs:  e.keyword,
		Fixed:          e.fixed,
		Prelude:        e.prelude,
		Unwrap:         e.unwrap,
		Outputs:        e.outputs,
		SkipReason:     e.skip,
		VolumeRequired: e.volume,
		Dropped:        e.drop,
		Params:         d.ParamNames,
	}

	for _, name := range e.drop {
		if _, ok := d.Default(name); !ok {
			return Recipe{}, fmt.Errorf("adapter: %s drops undeclared parameter %s", d.Key(), name)
		}
	}

	for i, name := range d.ParamNames {
		if lo.Contains(e.drop, name) {
			continue
		}

		arg := name
		if renamed, ok := e.rename[name]; ok {
			arg = renamed
		}

		coercion, ok := e.coerce[name]
		if !ok {
			coercion = inferCoercion(d.Defaults[i])
		}

		var aliases []string
		if arg != name {
			aliases = append(aliases, arg)
		}
		for _, alias := range synonyms[name] {
			if !lo.Contains(d.ParamNames, alias) {
				aliases = append(aliases, alias)
			}
		}

		r.Bindings = append(r.Bindings, Binding{
			Param:       name,
			Arg:         arg,
			Aliases:     aliases,
			Coerce:      coercion,
			Default:     d.Defaults[i],
			PreludeOnly: lo.Contains(e.preludeOnly, name),
		})
	}

	return r, nil
}

// Lookup returns the recipe of (library, name).
func (t *Table) Lookup(library core.Library, name string) (Recipe, error) {
	recipe, ok := t.recipes[core.IndicatorKey(library, name)]
	if !ok {
		return Recipe{}, &core.UnknownIndicatorError{Library: library, Name: name}
	}
	return recipe, nil
}

// Canonical returns the spec with its parameters in catalog order, then
// unknown keys sorted by name. A parameter spelled by an alias takes the
// place of the catalog parameter it binds to. Unknown specs are returned
// unchanged.
func (t *Table) Canonical(spec core.IndicatorSpec) core.IndicatorSpec {
	recipe, err := t.Lookup(spec.Library, spec.Name)
	if err != nil {
		return spec
	}
	return recipe.canonical(spec)
}

func (r Recipe) canonical(spec core.IndicatorSpec) core.IndicatorSpec {
	rank := make(map[string]int, len(r.Params))
	for i, name := range r.Params {
		rank[name] = i
	}
	for _, b := range r.Bindings {
		for _, alias := range b.Aliases {
			if _, taken := rank[alias]; !taken {
				rank[alias] = rank[b.Param]
			}
		}
	}

	params := append(core.Params(nil), spec.Params...)
	sort.SliceStable(params, func(i, j int) bool {
		ri, iKnown := rank[params[i].Name]
		rj, jKnown := rank[params[j].Name]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return params[i].Name < params[j].Name
		}
	})
	spec.Params = params
	return spec
}

// Len returns the number of recipes.
func (t *Table) Len() int {
	return len(t.recipes)
}

// Keys returns the recipe identifiers in catalog order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Blacklist returns every blacklisted recipe sorted by key.
func (t *Table) Blacklist() []Recipe {
	out := lo.Filter(lo.Values(t.recipes), func(r Recipe, _ int) bool {
		return r.Blacklisted()
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}
