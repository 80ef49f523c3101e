package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/samber/lo"
)

// row is the compact declaration used by the per-library tables: a name, a
// category and alternating parameter names and defaults.
type row struct {
	name     string
	category string
	params   []any
}

func r(name, category string, params ...any) row {
	return row{name: name, category: category, params: params}
}

var (
	registryMu sync.Mutex
	registry   = map[core.Library][]row{}

	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// register adds the rows of one library. Called from init functions.
func register(library core.Library, rows []row) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[library] = append(registry[library], rows...)
}

// Catalog is the read-only registry of every known indicator.
type Catalog struct {
	entries []core.IndicatorDescriptor
	index   map[string]int
}

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Search   string       // case-insensitive substring of name or category
	Library  core.Library // exact library
	Category string       // case-insensitive exact category
}

// Default returns the process-wide catalog built from the registered tables.
// It panics if the tables violate the catalog invariants.
func Default() *Catalog {
	defaultOnce.Do(func() {
		var descriptors []core.IndicatorDescriptor
		for _, library := range core.Libraries() {
			for _, row := range registry[library] {
				descriptors = append(descriptors, row.descriptor(library))
			}
		}
		defaultCatalog, defaultErr = New(descriptors...)
	})

	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultCatalog
}

func (rw row) descriptor(library core.Library) core.IndicatorDescriptor {
	d := core.IndicatorDescriptor{
		Library:    library,
		Name:       rw.name,
		Category:   rw.category,
		ParamNames: []string{},
		Defaults:   []any{},
	}
	for i := 0; i+1 < len(rw.params); i += 2 {
		d.ParamNames = append(d.ParamNames, rw.params[i].(string))
		d.Defaults = append(d.Defaults, rw.params[i+1])
	}
	if len(rw.params)%2 != 0 {
		// leave the dangling name without a default so New reports it
		d.ParamNames = append(d.ParamNames, fmt.Sprint(rw.params[len(rw.params)-1]))
	}
	return d
}

// New builds a catalog, rejecting duplicate keys and descriptors whose
// parameter and default lists differ in length.
func New(descriptors ...core.IndicatorDescriptor) (*Catalog, error) {
	c := &Catalog{
		entries: make([]core.IndicatorDescriptor, 0, len(descriptors)),
		index:   make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("catalog: empty indicator name in library %s", d.Library)
		}
		if len(d.ParamNames) != len(d.Defaults) {
			return nil, fmt.Errorf("catalog: %s declares %d parameters but %d defaults",
				d.Key(), len(d.ParamNames), len(d.Defaults))
		}
		if _, ok := c.index[d.Key()]; ok {
			return nil, fmt.Errorf("catalog: duplicate indicator %s", d.Key())
		}
		c.index[d.Key()] = len(c.entries)
		c.entries = append(c.entries, d)
	}

	return c, nil
}

// All returns the descriptors grouped by library.
func (c *Catalog) All() map[core.Library][]core.IndicatorDescriptor {
	return lo.GroupBy(c.entries, func(d core.IndicatorDescriptor) core.Library {
		return d.Library
	})
}

// List returns every descriptor in registration order.
func (c *Catalog) List() []core.IndicatorDescriptor {
	out := make([]core.IndicatorDescriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of indicators in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the descriptor of (library, name).
func (c *Catalog) Lookup(library core.Library, name string) (core.IndicatorDescriptor, error) {
	i, ok := c.index[core.IndicatorKey(library, name)]
	if !ok {
		return core.IndicatorDescriptor{}, &core.UnknownIndicatorError{Library: library, Name: name}
	}
	return c.entries[i], nil
}

// Filter returns the descriptors matching every non-empty field of f.
func (c *Catalog) Filter(f Filter) []core.IndicatorDescriptor {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.ToLower(strings.TrimSpace(f.Category))

	return lo.Filter(c.entries, func(d core.IndicatorDescriptor, _ int) bool {
		if f.Library != "" && d.Library != f.Library {
			return false
		}
		if category != "" && strings.ToLower(d.Category) != category {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.Name), search) ||
			strings.Contains(strings.ToLower(d.Category), search)
	})
}

// Categories returns the sorted distinct categories, optionally limited to one library.
func (c *Catalog) Categories(library core.Library) []string {
	entries := c.entries
	if library != "" {
		entries = c.Filter(Filter{Library: library})
	}
	categories := lo.Uniq(lo.Map(entries, func(d core.IndicatorDescriptor, _ int) string {
		return d.Category
	}))
	sort.Strings(categories)
	return categories
}

// Counts returns the number of indicators per library.
func (c *Catalog) Counts() map[core.Library]int {
	return lo.CountValuesBy(c.entries, func(d core.IndicatorDescriptor) core.Library {
		return d.Library
	})
}
