package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
)

// debugState holds the last presented frame for the debug server. The
// loop goroutine publishes a copy after every Step; handlers only read
// the copy, never the live node tree.
type debugState struct {
	mu       sync.Mutex
	tree     *DebugNode
	stats    Stats
	page     string
	server   *http.Server
	listener net.Listener
}

// DebugNode is one node of the serialized screen tree.
type DebugNode struct {
	Name     string       `json:"name"`
	Kind     string       `json:"kind,omitempty"`
	Content  string       `json:"content,omitempty"`
	Rect     [4]SafeFloat `json:"rect"`
	Active   bool         `json:"active"`
	Raycast  bool         `json:"raycast,omitempty"`
	Clip     bool         `json:"clip,omitempty"`
	Children []*DebugNode `json:"children,omitempty"`
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// DebugStats is the /stats response.
type DebugStats struct {
	Frames    int       `json:"frames"`
	Page      string    `json:"page"`
	LastMs    float64   `json:"lastMs"`
	MaxMs     float64   `json:"maxMs"`
	AverageMs float64   `json:"averageMs"`
	UptimeMs  float64   `json:"uptimeMs"`
	RecentMs  []float64 `json:"recentMs"`
}

// SerializeTree converts the subtree at n into DebugNodes.
func SerializeTree(n *layout.Node) *DebugNode {
	r := n.Rect()
	out := &DebugNode{
		Name:    n.Name,
		Rect:    [4]SafeFloat{SafeFloat(r.X), SafeFloat(r.Y), SafeFloat(r.Width), SafeFloat(r.Height)},
		Active:  n.ActiveSelf(),
		Raycast: n.RaycastTarget,
		Clip:    n.Clip,
	}
	if b, ok := render.BindingOf(n); ok && b.Node == n {
		out.Kind = b.Desc.Kind.String()
		out.Content = b.Desc.Content
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, SerializeTree(c))
	}
	return out
}

// DebugHandler returns the HTTP handler of the debug server and starts
// publishing frames to it. It serves:
//
//	/tree    the screen node tree of the last frame
//	/stats   frame timing
//	/runtime memory and GC stats
//	/health  liveness
func (e *Engine) DebugHandler() http.Handler {
	if e.debug == nil {
		e.debug = &debugState{}
		e.publishDebug()
	}
	d := e.debug
	mux := http.NewServeMux()
	mux.HandleFunc("/tree", func(w http.ResponseWriter, r *http.Request) {
		d.mu.Lock()
		tree := d.tree
		d.mu.Unlock()
		writeJSON(w, r, tree)
	})
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		d.mu.Lock()
		s, page := d.stats, d.page
		d.mu.Unlock()
		resp := DebugStats{
			Frames:    s.Frames,
			Page:      page,
			LastMs:    ms(s.Last),
			MaxMs:     ms(s.Max),
			AverageMs: ms(s.Average()),
			UptimeMs:  ms(s.Uptime),
			RecentMs:  []float64{},
		}
		for _, f := range s.Recent() {
			resp.RecentMs = append(resp.RecentMs, ms(f))
		}
		writeJSON(w, r, resp)
	})
	mux.HandleFunc("/runtime", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, ReadRuntimeSample())
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]string{"status": "ok"})
	})
	return mux
}

// ServeDebug starts the debug server on addr (e.g. "127.0.0.1:9999";
// port 0 picks a free port) and returns the address it listens on.
func (e *Engine) ServeDebug(addr string) (net.Addr, error) {
	handler := e.DebugHandler()
	d := e.debug
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.server != nil {
		return d.listener.Addr(), nil
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debug server: %w", err)
	}
	d.listener = ln
	d.server = &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	go d.server.Serve(ln)
	return ln.Addr(), nil
}

// StopDebug shuts the debug server down, if running.
func (e *Engine) StopDebug() {
	if e.debug == nil {
		return
	}
	d := e.debug
	d.mu.Lock()
	srv := d.server
	d.server, d.listener = nil, nil
	d.mu.Unlock()
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}

// publishDebug copies the current frame for the debug handlers.
func (e *Engine) publishDebug() {
	if e.debug == nil {
		return
	}
	tree := SerializeTree(e.screen)
	stats := e.Stats()
	e.debug.mu.Lock()
	e.debug.tree = tree
	e.debug.stats = stats
	e.debug.page = e.pages.Name()
	e.debug.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
