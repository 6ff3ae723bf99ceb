package engine

import "time"

// frameWindow is the number of recent frames kept for averages.
const frameWindow = 120

// Stats summarizes frame timing.
type Stats struct {
	Frames int
	Last   time.Duration
	Max    time.Duration
	Uptime time.Duration

	recent [frameWindow]time.Duration
	index  int
	count  int
}

func (s *Stats) record(d time.Duration) {
	s.Frames++
	s.Last = d
	s.Max = max(s.Max, d)
	s.recent[s.index] = d
	s.index = (s.index + 1) % len(s.recent)
	if s.count < len(s.recent) {
		s.count++
	}
}

// Average returns the mean duration of the recent frames.
func (s Stats) Average() time.Duration {
	if s.count == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.recent[:s.count] {
		total += d
	}
	return total / time.Duration(s.count)
}

// Recent returns the recent frame durations in chronological order.
func (s Stats) Recent() []time.Duration {
	out := make([]time.Duration, s.count)
	if s.count < len(s.recent) {
		copy(out, s.recent[:s.count])
	} else {
		copy(out, s.recent[s.index:])
		copy(out[len(s.recent)-s.index:], s.recent[:s.index])
	}
	return out
}
