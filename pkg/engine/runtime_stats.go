package engine

import (
	"runtime"
	"time"
)

// RuntimeSample is the /runtime response: process memory and GC state
// at the time of the request.
type RuntimeSample struct {
	Time        time.Time `json:"time"`
	Goroutines  int       `json:"goroutines"`
	HeapAlloc   uint64    `json:"heapAlloc"`
	HeapObjects uint64    `json:"heapObjects"`
	HeapSys     uint64    `json:"heapSys"`
	GCCycles    uint32    `json:"gcCycles"`
	// LastPauseMs is the stop-the-world pause of the latest GC cycle.
	LastPauseMs float64 `json:"lastPauseMs"`
	// PauseTotalMs sums every GC pause since start.
	PauseTotalMs float64 `json:"pauseTotalMs"`
}

// ReadRuntimeSample reads the current runtime stats. It is safe to call
// from any goroutine.
func ReadRuntimeSample() RuntimeSample {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s := RuntimeSample{
		Time:         time.Now(),
		Goroutines:   runtime.NumGoroutine(),
		HeapAlloc:    m.HeapAlloc,
		HeapObjects:  m.HeapObjects,
		HeapSys:      m.HeapSys,
		GCCycles:     m.NumGC,
		PauseTotalMs: ms(time.Duration(m.PauseTotalNs)),
	}
	if m.NumGC > 0 {
		// PauseNs is a ring of the last 256 pauses.
		s.LastPauseMs = ms(time.Duration(m.PauseNs[(m.NumGC+255)%256]))
	}
	return s
}
