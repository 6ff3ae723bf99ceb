package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/ggui/pkg/backend"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/widgets"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the node tree structure and the draw calls of a frame.
type Snapshot struct {
	Tree  *SnapshotNode `json:"tree"`
	Draws []DrawOp      `json:"draws,omitempty"`
}

// SnapshotNode represents a node in the serialized tree.
type SnapshotNode struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind,omitempty"`
	Content    string          `json:"content,omitempty"`
	Rect       [4]float64      `json:"rect"`
	Properties map[string]any  `json:"props,omitempty"`
	Children   []*SnapshotNode `json:"children,omitempty"`
}

// DrawOp is one draw call made while presenting the frame.
type DrawOp struct {
	Op    string     `json:"op"`
	Rect  [4]float64 `json:"rect"`
	Clip  [4]float64 `json:"clip"`
	Value string     `json:"value,omitempty"`
	Color string     `json:"color,omitempty"`
}

// CaptureSnapshot captures the current screen tree and its draw calls.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return CaptureSnapshot(t.engine.Screen())
}

// CaptureSnapshot captures the tree under root and its draw calls.
func CaptureSnapshot(root *layout.Node) *Snapshot {
	rec := &recordingCanvas{}
	backend.Draw(root, rec)
	return &Snapshot{
		Tree:  captureNode(root, &nameCounter{}),
		Draws: rec.ops,
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When GGUI_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("GGUI_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: GGUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: GGUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// Find returns the first node in pre-order whose ID is id, or nil.
func (s *Snapshot) Find(id string) *SnapshotNode {
	var walk func(*SnapshotNode) *SnapshotNode
	walk = func(n *SnapshotNode) *SnapshotNode {
		if n == nil || n.ID == id {
			return n
		}
		for _, c := range n.Children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(s.Tree)
}

// --- Internal ---

// nameCounter assigns stable IDs like "Text#0", "Text#1".
type nameCounter struct {
	counts map[string]int
}

func (c *nameCounter) next(name string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[name]
	c.counts[name] = n + 1
	return fmt.Sprintf("%s#%d", name, n)
}

func captureNode(n *layout.Node, counter *nameCounter) *SnapshotNode {
	node := &SnapshotNode{
		ID:   counter.next(n.Name),
		Rect: rect4(n.Rect()),
	}
	if b, ok := layout.Get[*render.Binding](n); ok {
		node.Kind = b.Desc.Kind.String()
		node.Content = b.Desc.Content
	}
	if props := captureProperties(n); len(props) > 0 {
		node.Properties = props
	}
	for _, c := range n.Children() {
		node.Children = append(node.Children, captureNode(c, counter))
	}
	return node
}

func captureProperties(n *layout.Node) map[string]any {
	props := make(map[string]any)
	if !n.ActiveSelf() {
		props["active"] = false
	}
	if n.RaycastTarget {
		props["raycast"] = true
	}
	if n.Clip {
		props["clip"] = true
	}
	for _, comp := range n.Components() {
		switch w := comp.(type) {
		case *widgets.Label:
			props["text"] = w.Display()
			props["alignment"] = w.Alignment.String()
			if w.FontSize > 0 {
				props["fontSize"] = round2(w.FontSize)
			}
		case *widgets.Image:
			props["sprite"] = string(w.Sprite)
			props["color"] = serializeColor(w.Color)
		case *widgets.Toggle:
			props["value"] = w.Value
		case *widgets.Slider:
			props["value"] = round2(w.Value)
		case *widgets.TextEntry:
			props["value"] = w.Text
		case *widgets.ScrollRect:
			props["position"] = round2(w.Position)
		}
	}
	return props
}

// recordingCanvas serializes draw calls.
type recordingCanvas struct {
	clip graphics.Rect
	ops  []DrawOp
}

func (c *recordingCanvas) SetClip(r graphics.Rect) { c.clip = r }

func (c *recordingCanvas) DrawImage(r graphics.Rect, img *widgets.Image) {
	c.ops = append(c.ops, DrawOp{
		Op:    "image",
		Rect:  rect4(r),
		Clip:  rect4(c.clip),
		Value: string(img.Sprite),
		Color: serializeColor(backend.ImageColor(img)),
	})
}

func (c *recordingCanvas) DrawText(r graphics.Rect, l *widgets.Label) {
	c.ops = append(c.ops, DrawOp{
		Op:    "text",
		Rect:  rect4(r),
		Clip:  rect4(c.clip),
		Value: l.Display(),
		Color: serializeColor(l.Color),
	})
}

func rect4(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.X), round2(r.Y), round2(r.Width), round2(r.Height)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
