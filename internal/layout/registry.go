package layout

import (
	"fmt"
	"sort"
)

// Registry maps layout identifiers to validated layouts.
type Registry struct {
	layouts map[string]*Layout
	builtin map[string]bool
}

// NewRegistry returns a registry holding the built-in layouts.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		layouts: map[string]*Layout{},
		builtin: map[string]bool{},
	}
	for id, rows := range builtinRows {
		l, err := Load(id, rows)
		if err != nil {
			return nil, err
		}
		r.layouts[id] = l
		r.builtin[id] = true
	}
	return r, nil
}

// Register adds a layout. Identifiers must be unique.
func (r *Registry) Register(l *Layout) error {
	if l == nil {
		return fmt.Errorf("layout is nil")
	}
	if l.ID() == "" {
		return fmt.Errorf("layout id is empty")
	}
	if _, ok := r.layouts[l.ID()]; ok {
		return fmt.Errorf("layout %q is already registered", l.ID())
	}
	r.layouts[l.ID()] = l
	return nil
}

// Get returns the layout registered under id.
func (r *Registry) Get(id string) (*Layout, error) {
	l, ok := r.layouts[id]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %v)", id, r.IDs())
	}
	return l, nil
}

// IsBuiltin reports whether id names a compiled-in layout.
func (r *Registry) IsBuiltin(id string) bool {
	return r.builtin[id]
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.layouts))
	for id := range r.layouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
