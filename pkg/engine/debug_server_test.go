package engine_test

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/ui"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func findDebugNode(n *engine.DebugNode, content string) *engine.DebugNode {
	if n.Content == content {
		return n
	}
	for _, c := range n.Children {
		if found := findDebugNode(c, content); found != nil {
			return found
		}
	}
	return nil
}

func TestDebugHandler_Tree(t *testing.T) {
	e := engine.New(engine.Options{Surface: newFakeSurface()})
	h := e.DebugHandler()
	e.Pages().Render("main", func(b *ui.Builder) {
		b.Button(ui.At(0, 0, .5, .5), "go", nil)
	})
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}

	rr := get(t, h, "/tree")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var root engine.DebugNode
	if err := json.Unmarshal(rr.Body.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if root.Name != "Screen" || len(root.Children) != 2 {
		t.Errorf("root = %q with %d children", root.Name, len(root.Children))
	}
	btn := findDebugNode(&root, "go")
	if btn == nil {
		t.Fatal("button missing from tree")
	}
	if btn.Kind != "Button" || !btn.Raycast || btn.Rect[2] != 400 || btn.Rect[3] != 300 {
		t.Errorf("button = %+v", btn)
	}
}

func TestDebugHandler_Stats(t *testing.T) {
	e := engine.New(engine.Options{Surface: newFakeSurface()})
	h := e.DebugHandler()
	e.Pages().Render("main", textPage("x"))
	for range 3 {
		e.Step()
	}

	var stats engine.DebugStats
	if err := json.Unmarshal(get(t, h, "/stats").Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Frames != 3 || stats.Page != "main" || len(stats.RecentMs) != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDebugHandler_Methods(t *testing.T) {
	e := engine.New(engine.Options{Surface: newFakeSurface()})
	h := e.DebugHandler()
	if rr := get(t, h, "/health"); rr.Code != http.StatusOK {
		t.Errorf("health = %d", rr.Code)
	}
	if rr := get(t, h, "/tree"); rr.Code != http.StatusOK {
		t.Errorf("tree before the first step = %d", rr.Code)
	}
	var sample engine.RuntimeSample
	if err := json.Unmarshal(get(t, h, "/runtime").Body.Bytes(), &sample); err != nil || sample.HeapSys == 0 || sample.Goroutines == 0 {
		t.Errorf("runtime = %+v, %v", sample, err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/tree", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /tree = %d", rr.Code)
	}
}

func TestServeDebug_StartStop(t *testing.T) {
	e := engine.New(engine.Options{Surface: newFakeSurface()})
	addr, err := e.ServeDebug("127.0.0.1:0")
	if err != nil {
		t.Fatalf("ServeDebug: %v", err)
	}
	again, err := e.ServeDebug("127.0.0.1:0")
	if err != nil || again.String() != addr.String() {
		t.Errorf("second ServeDebug = %v, %v", again, err)
	}

	url := fmt.Sprintf("http://%s/health", addr)
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}

	e.StopDebug()
	if _, err := client.Get(url); err == nil {
		t.Error("server still running after StopDebug")
	}
	e.StopDebug()
}

func TestSafeFloat_NonFinite(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{math.Inf(1), `"Infinity"`},
		{math.Inf(-1), `"-Infinity"`},
		{math.NaN(), `"NaN"`},
		{1.5, `1.5`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(engine.SafeFloat(tt.v))
		if err != nil || string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, %v", tt.v, got, err)
		}
	}
}
