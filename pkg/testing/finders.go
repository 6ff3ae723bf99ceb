package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Finder locates nodes in the screen tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first
	// pre-order). Destroyed and hidden subtrees are skipped.
	Evaluate(root *layout.Node) []*layout.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*layout.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *layout.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *layout.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *layout.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*layout.Node { return r.nodes }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.nodes) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.nodes) > 0 }

// Binding returns the binding of the first match, or nil if it has none.
func (r FinderResult) Binding() *render.Binding {
	b, _ := render.BindingOf(r.First())
	return b
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// predicateFinder matches nodes accepted by a function.
type predicateFinder struct {
	match func(*layout.Node) bool
	desc  string
}

func (f *predicateFinder) Evaluate(root *layout.Node) []*layout.Node {
	return collectMatches(root, f.match)
}

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder that matches nodes for which fn returns true.
func ByPredicate(fn func(*layout.Node) bool) Finder {
	return &predicateFinder{match: fn, desc: "ByPredicate"}
}

// ByName returns a finder that matches nodes by name.
func ByName(name string) Finder {
	return &predicateFinder{
		match: func(n *layout.Node) bool { return n.Name == name },
		desc:  fmt.Sprintf("ByName(%q)", name),
	}
}

// ByText returns a finder that matches nodes with a label showing text.
func ByText(text string) Finder {
	return &predicateFinder{
		match: func(n *layout.Node) bool {
			l, ok := layout.Get[*widgets.Label](n)
			return ok && l.Display() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByContent returns a finder that matches the nodes rendered for
// descriptors declared with content.
func ByContent(content string) Finder {
	return &predicateFinder{
		match: func(n *layout.Node) bool {
			b, ok := layout.Get[*render.Binding](n)
			return ok && b.Desc.Content == content
		},
		desc: fmt.Sprintf("ByContent(%q)", content),
	}
}

// ByKind returns a finder that matches the nodes rendered for descriptors
// of kind.
func ByKind(kind ui.Kind) Finder {
	return &predicateFinder{
		match: func(n *layout.Node) bool {
			b, ok := layout.Get[*render.Binding](n)
			return ok && b.Desc.Kind == kind
		},
		desc: fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByComponent returns a finder that matches nodes carrying a component of
// type T.
func ByComponent[T any]() Finder {
	return &predicateFinder{
		match: func(n *layout.Node) bool {
			_, ok := layout.Get[T](n)
			return ok
		},
		desc: fmt.Sprintf("ByComponent(%s)", reflect.TypeFor[T]()),
	}
}

// descendantFinder matches nodes under an ancestor match.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *layout.Node) []*layout.Node {
	var out []*layout.Node
	seen := make(map[*layout.Node]bool)
	for _, anc := range f.of.Evaluate(root) {
		for _, c := range anc.Children() {
			for _, n := range f.matching.Evaluate(c) {
				if !seen[n] {
					seen[n] = true
					out = append(out, n)
				}
			}
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes found by matching below
// nodes found by of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *layout.Node, match func(*layout.Node) bool) []*layout.Node {
	var out []*layout.Node
	root.Walk(func(n *layout.Node) bool {
		if n.Destroyed() || !n.ActiveSelf() {
			return false
		}
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
