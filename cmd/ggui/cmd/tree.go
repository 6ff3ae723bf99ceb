package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/ggui/cmd/ggui/internal/demo"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the node tree of a sample page",
		Long: `Print the node tree of a sample page.

Each line shows a node's name, the kind and content of the control bound
to it, and its rectangle in pixels at the render size. Nodes that receive
pointer hits are marked with *, clipping viewports with [clip], hidden
nodes with (hidden).`,
		Usage: "ggui tree [controls|list] [--width N] [--height N]",
		Run:   runTree,
	})
}

// treeStyles colors the parts of a tree line.
type treeStyles struct {
	branch lipgloss.Style
	name   lipgloss.Style
	kind   lipgloss.Style
	text   lipgloss.Style
	rect   lipgloss.Style
	flag   lipgloss.Style
}

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		branch: r.NewStyle().Foreground(lipgloss.Color("#585b70")),
		name:   r.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),
		kind:   r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		text:   r.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		rect:   r.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		flag:   r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
}

func runTree(env *Env, args []string) error {
	cfg := env.Config.Render
	page := "controls"
	for i := 0; i < len(args); {
		n, err := parseRenderFlag(&cfg, args, i)
		if err != nil {
			return err
		}
		if n == 0 {
			page, n = args[i], 1
		}
		i += n
	}

	size := graphics.Size{Width: cfg.Width, Height: cfg.Height}
	compiler, err := newCompiler(env, size)
	if err != nil {
		return err
	}
	build, err := pageBuild(demo.New(nil), page)
	if err != nil {
		return err
	}
	tree := compiler.Compile(page, build, nil)
	defer tree.Destroy()

	styles := newTreeStyles(lipgloss.NewRenderer(env.Out))
	writeTree(env.Out, styles, tree.Root, "", true, true)
	return nil
}

func writeTree(w io.Writer, st treeStyles, n *layout.Node, prefix string, last, root bool) {
	var line strings.Builder
	childPrefix := prefix
	if !root {
		branch := "├── "
		childPrefix += "│   "
		if last {
			branch = "└── "
			childPrefix = prefix + "    "
		}
		line.WriteString(st.branch.Render(prefix + branch))
	}
	line.WriteString(st.name.Render(n.Name))
	if n.RaycastTarget {
		line.WriteString(st.flag.Render("*"))
	}

	if b, ok := layout.Get[*render.Binding](n); ok {
		line.WriteString(" ")
		line.WriteString(st.kind.Render(b.Desc.Kind.String()))
		if b.Desc.Content != "" {
			line.WriteString(" ")
			line.WriteString(st.text.Render(fmt.Sprintf("%q", b.Desc.Content)))
		}
	} else if l, ok := layout.Get[*widgets.Label](n); ok && l.Text != "" {
		line.WriteString(" ")
		line.WriteString(st.text.Render(fmt.Sprintf("%q", l.Display())))
	}

	r := n.Rect()
	line.WriteString(" ")
	line.WriteString(st.rect.Render(fmt.Sprintf("(%g,%g %gx%g)", round1(r.X), round1(r.Y), round1(r.Width), round1(r.Height))))
	if n.Clip {
		line.WriteString(" ")
		line.WriteString(st.flag.Render("[clip]"))
	}
	if !n.ActiveSelf() {
		line.WriteString(" ")
		line.WriteString(st.flag.Render("(hidden)"))
	}
	fmt.Fprintln(w, line.String())

	children := n.Children()
	for i, c := range children {
		writeTree(w, st, c, childPrefix, i == len(children)-1, false)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
