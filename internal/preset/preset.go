// Package preset provides named, pre-configured filters.
//
// Two catalogs are kept. The canvas catalog maps a name to a factory that
// builds a fresh filter.Transform on every lookup. The CSS catalog maps a
// name to a list of CSS filter functions which are passed through to the
// host unchanged; nothing here interprets them.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/tile-filter-mcp/internal/filter"
)

// ErrUnknownPresetName is returned when a lookup names no preset.
var ErrUnknownPresetName = errors.New("unknown preset name")

// Factory builds a new transform each time it is called.
type Factory func() filter.Transform

// cssPrefixes are the vendor prefixes written before each filter declaration.
var cssPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-", ""}

// Registry is a read-only set of canvas and CSS presets.
type Registry struct {
	canvas map[string]Factory
	css    map[string][]string
}

// builtin is populated once at init and never modified afterwards.
var builtin = newBuiltin()

// Builtin returns the registry of built-in presets.
func Builtin() *Registry {
	return builtin
}

// Lookup returns a new transform for the named canvas preset.
func (r *Registry) Lookup(name string) (filter.Transform, error) {
	f, ok := r.canvas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPresetName, name)
	}
	return f(), nil
}

// CSS returns a copy of the CSS filter functions for the named preset.
func (r *Registry) CSS(name string) ([]string, error) {
	fns, ok := r.css[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPresetName, name)
	}
	return append([]string{}, fns...), nil
}

// Names returns the canvas preset names in sorted order.
func (r *Registry) Names() []string {
	return sortedKeys(r.canvas)
}

// CSSNames returns the CSS preset names in sorted order.
func (r *Registry) CSSNames() []string {
	return sortedKeys(r.css)
}

// WithCustom returns a new registry containing r's presets plus one canvas
// preset per entry of custom, each a chain of the given specs. Every
// definition is built once here so a bad one fails before any pixel is
// touched. Custom names may shadow built-in names.
func (r *Registry) WithCustom(custom map[string][]filter.Spec) (*Registry, error) {
	out := &Registry{
		canvas: make(map[string]Factory, len(r.canvas)+len(custom)),
		css:    r.css,
	}
	for name, f := range r.canvas {
		out.canvas[name] = f
	}

	for name, specs := range custom {
		if _, err := filter.BuildChain(specs); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		specs := append([]filter.Spec(nil), specs...)
		out.canvas[name] = func() filter.Transform {
			// Validated above; the specs are private copies.
			c, _ := filter.BuildChain(specs)
			return c
		}
	}
	return out, nil
}

// CSSText renders filter functions as vendor-prefixed CSS declarations,
// e.g. "-webkit-filter: sepia(100%); ... filter: sepia(100%);".
func CSSText(filters []string) string {
	value := strings.Join(filters, " ")
	decls := make([]string, 0, len(cssPrefixes))
	for _, p := range cssPrefixes {
		decls = append(decls, p+"filter: "+value+";")
	}
	return strings.Join(decls, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
