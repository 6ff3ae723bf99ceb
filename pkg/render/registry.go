package render

import (
	"maps"

	"github.com/go-drift/ggui/pkg/ui"
)

// SetupFunc configures the node of one descriptor: it attaches the
// kind's widgets and sub-nodes and may redirect where children attach.
type SetupFunc func(ctx *Context)

// Registry maps control kinds to their setup.
type Registry struct {
	setups map[ui.Kind]SetupFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{setups: make(map[ui.Kind]SetupFunc)}
}

// DefaultRegistry returns a registry with a setup for every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ui.KindContainer, setupContainer)
	r.Register(ui.KindPanel, setupPanel)
	r.Register(ui.KindText, setupText)
	r.Register(ui.KindBox, setupBox)
	r.Register(ui.KindButton, setupButton)
	r.Register(ui.KindToggle, setupToggle)
	r.Register(ui.KindSlider, setupSlider)
	r.Register(ui.KindTextField, setupTextField)
	r.Register(ui.KindPasswordField, setupTextField)
	r.Register(ui.KindSprite, setupSprite)
	r.Register(ui.KindScroll, setupScroll)
	return r
}

// Register sets the setup for kind, replacing any previous one. A nil fn
// removes it.
func (r *Registry) Register(kind ui.Kind, fn SetupFunc) {
	if fn == nil {
		delete(r.setups, kind)
		return
	}
	r.setups[kind] = fn
}

// Lookup returns the setup for kind.
func (r *Registry) Lookup(kind ui.Kind) (SetupFunc, bool) {
	fn, ok := r.setups[kind]
	return fn, ok
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{setups: maps.Clone(r.setups)}
}
