package engine

import (
	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/ui"
)

// BuildFunc declares a page.
type BuildFunc func(b *ui.Builder)

type pageEntry struct {
	name  string
	build BuildFunc
	tree  *render.Tree
}

// Page is a stack of rendered pages under one layer node. Only the top
// page is shown; pages below it are hidden and keep their state.
type Page struct {
	compiler *render.Compiler
	layer    *layout.Node
	live     *pageEntry
	history  []*pageEntry

	// OnChange is called after the shown page changes.
	OnChange func()
}

// NewPage returns an empty page stack rendering under layer.
func NewPage(c *render.Compiler, layer *layout.Node) *Page {
	return &Page{compiler: c, layer: layer}
}

// Live returns the shown page's tree, or nil.
func (p *Page) Live() *render.Tree {
	if p.live == nil {
		return nil
	}
	return p.live.tree
}

// Name returns the shown page's name.
func (p *Page) Name() string {
	if p.live == nil {
		return ""
	}
	return p.live.name
}

// Depth returns the number of hidden pages below the shown one.
func (p *Page) Depth() int { return len(p.history) }

// Trees returns the trees that receive per-tick callbacks.
func (p *Page) Trees() []*render.Tree {
	if t := p.Live(); t != nil && !t.Destroyed() {
		return []*render.Tree{t}
	}
	return nil
}

// Render destroys the shown page and renders build in its place.
func (p *Page) Render(name string, build BuildFunc) *render.Tree {
	if p.live != nil {
		p.live.tree.Destroy()
	}
	p.live = p.build(name, build)
	p.changed()
	return p.live.tree
}

// Push hides the shown page and renders build on top of it.
func (p *Page) Push(name string, build BuildFunc) *render.Tree {
	if p.live != nil {
		p.live.tree.SetActive(false)
		p.history = append(p.history, p.live)
		p.live = nil
	}
	return p.Render(name, build)
}

// Pop destroys the shown page and shows the previous one again, running
// its OnEnable hooks. Popping with no previous page logs a warning and
// changes nothing.
func (p *Page) Pop() bool {
	if len(p.history) == 0 {
		errors.Warn("engine.Page.Pop", errors.KindStack, errors.ErrHistoryEmpty)
		return false
	}
	if p.live != nil {
		p.live.tree.Destroy()
	}
	p.live = p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.live.tree.Enable()
	p.changed()
	return true
}

// Rebuild destroys the shown page and renders it again from its build
// function.
func (p *Page) Rebuild() *render.Tree {
	if p.live == nil {
		return nil
	}
	return p.Render(p.live.name, p.live.build)
}

// Clear destroys every page.
func (p *Page) Clear() {
	for _, e := range p.history {
		e.tree.Destroy()
	}
	p.history = nil
	if p.live != nil {
		p.live.tree.Destroy()
		p.live = nil
	}
	p.changed()
}

func (p *Page) build(name string, build BuildFunc) *pageEntry {
	t := p.compiler.Compile(name, build, p.layer)
	if name != "" {
		t.Root.Name = name
	}
	return &pageEntry{name: name, build: build, tree: t}
}

func (p *Page) changed() {
	if p.OnChange != nil {
		p.OnChange()
	}
}
