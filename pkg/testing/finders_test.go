package testing

import (
	"testing"

	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

func TestFinders(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump(func(b *ui.Builder) {
		b.NestBox(ui.At(0, 0, 1, .5), "outer", func() {
			b.Button(ui.At(0, 0, .5, .5), "ok", nil)
			b.Button(ui.At(.5, 0, .5, .5), "cancel", nil)
		})
		b.Text(ui.At(0, .5, 1, .5), "ok")
	})

	tests := []struct {
		name   string
		finder Finder
		want   int
	}{
		{"by kind", ByKind(ui.KindButton), 2},
		{"by content", ByContent("ok"), 2},
		{"by text", ByText("ok"), 2},
		{"by name", ByName("Button"), 2},
		{"by component", ByComponent[*widgets.Button](), 2},
		{"descendant", Descendant(ByKind(ui.KindBox), ByKind(ui.KindButton)), 2},
		{"descendant excludes outside", Descendant(ByKind(ui.KindBox), ByKind(ui.KindText)), 0},
		{"predicate", ByPredicate(func(n *layout.Node) bool { return n.Clip }), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tester.Find(tt.finder).Count(); got != tt.want {
				t.Errorf("%s matched %d nodes, want %d", tt.finder.Description(), got, tt.want)
			}
		})
	}
}

func TestFinderResult_Accessors(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump(func(b *ui.Builder) {
		b.Text(ui.At(0, 0, 1, .5), "a")
	})

	r := tester.Find(ByText("a"))
	if r.First() != r.At(0) || r.FirstOrNil() != r.First() || len(r.All()) != 1 {
		t.Error("accessors disagree")
	}
	if b := r.Binding(); b == nil || b.Desc.Content != "a" {
		t.Errorf("Binding = %+v", b)
	}

	empty := tester.Find(ByText("missing"))
	if empty.Exists() || empty.FirstOrNil() != nil {
		t.Error("empty result should not exist")
	}
	defer func() {
		if recover() == nil {
			t.Error("First on empty result should panic")
		}
	}()
	empty.First()
}
