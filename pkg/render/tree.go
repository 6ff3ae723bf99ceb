package render

import (
	"github.com/google/uuid"

	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/ui"
)

// Binding associates a descriptor with the node rendered for it. It is
// attached to the node as a component once the node and its children are
// complete.
type Binding struct {
	Desc *ui.Descriptor
	Node *layout.Node
}

// Live reports whether the bound node can still receive callbacks.
func (b *Binding) Live() bool {
	return b.Node != nil && !b.Node.Destroyed() && b.Node.ActiveInHierarchy()
}

// DispatchLive runs the descriptor's live hook if the node is live.
// Panics in the hook are recovered and reported.
func (b *Binding) DispatchLive() {
	if b.Desc.OnLiveUpdate == nil || !b.Live() {
		return
	}
	errors.Guard("render.Binding.DispatchLive", func() { b.Desc.OnLiveUpdate(b.Node) })
}

// BindingOf returns the binding of the nearest bound node at or above n.
func BindingOf(n *layout.Node) (*Binding, bool) {
	b, _, ok := layout.FindInParents[*Binding](n)
	return b, ok
}

// Tree is the result of one compile: the node built for the root
// descriptor and every binding in node creation order.
type Tree struct {
	// ID identifies this build.
	ID       string
	Root     *layout.Node
	Desc     *ui.Descriptor
	Bindings []*Binding
}

func newTree(desc *ui.Descriptor) *Tree {
	return &Tree{ID: uuid.NewString(), Desc: desc}
}

// Destroyed reports whether the tree's nodes have been destroyed.
func (t *Tree) Destroyed() bool { return t.Root == nil || t.Root.Destroyed() }

// Destroy tears down every node of the tree. Bindings stop dispatching.
func (t *Tree) Destroy() {
	if t.Root != nil {
		t.Root.Destroy()
	}
}

// SetActive shows or hides the whole tree.
func (t *Tree) SetActive(active bool) {
	if t.Root != nil {
		t.Root.SetActive(active)
	}
}

// Enable shows the tree and runs every OnEnable hook in creation order.
func (t *Tree) Enable() {
	if t.Destroyed() {
		return
	}
	t.SetActive(true)
	for _, b := range t.Bindings {
		if b.Desc.OnEnable == nil || !b.Live() {
			continue
		}
		errors.Guard("render.Tree.Enable", func() { b.Desc.OnEnable(b.Node) })
	}
}

// DispatchLive runs every live hook in creation order.
func (t *Tree) DispatchLive() {
	if t.Destroyed() {
		return
	}
	for _, b := range t.Bindings {
		b.DispatchLive()
	}
}

// Find returns the first binding whose descriptor satisfies match.
func (t *Tree) Find(match func(*ui.Descriptor) bool) *Binding {
	for _, b := range t.Bindings {
		if match(b.Desc) {
			return b
		}
	}
	return nil
}

// FindContent returns the first binding whose descriptor has the given
// content text.
func (t *Tree) FindContent(content string) *Binding {
	return t.Find(func(d *ui.Descriptor) bool { return d.Content == content })
}
