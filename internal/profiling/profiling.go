package profiling

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Profiler accumulates named CPU timings per frame and counts frames per
// reporting window. The render loop owns one; Track may be called from
// other goroutines.
type Profiler struct {
	mu          sync.Mutex
	frameTotals map[string]time.Duration

	frames      int
	windowStart time.Time
	window      time.Duration
	now         func() time.Time
}

// New creates a profiler that reports once per window
func New(window time.Duration) *Profiler {
	p := &Profiler{
		frameTotals: make(map[string]time.Duration),
		window:      window,
		now:         time.Now,
	}
	p.windowStart = p.now()
	return p
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer prof.Track("renderer.Render")()
func (p *Profiler) Track(name string) func() {
	start := p.now()
	return func() {
		d := p.now().Sub(start)
		p.mu.Lock()
		p.frameTotals[name] += d
		p.mu.Unlock()
	}
}

// ResetFrame clears the per-frame totals. Call at the start of each frame.
func (p *Profiler) ResetFrame() {
	p.mu.Lock()
	clear(p.frameTotals)
	p.mu.Unlock()
}

// Timing is one named bucket of the current frame
type Timing struct {
	Name     string
	Duration time.Duration
}

// TopN returns the n slowest buckets of the current frame, slowest first
func (p *Profiler) TopN(n int) []Timing {
	p.mu.Lock()
	list := make([]Timing, 0, len(p.frameTotals))
	for k, v := range p.frameTotals {
		list = append(list, Timing{Name: k, Duration: v})
	}
	p.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Duration == list[j].Duration {
			return list[i].Name < list[j].Name
		}
		return list[i].Duration > list[j].Duration
	})
	if n < 0 {
		n = 0
	}
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// EndFrame counts a frame. When the reporting window has elapsed it returns
// the frame rate over the window and true.
func (p *Profiler) EndFrame() (fps float64, ok bool) {
	p.frames++
	elapsed := p.now().Sub(p.windowStart)
	if elapsed < p.window {
		return 0, false
	}
	fps = float64(p.frames) / elapsed.Seconds()
	p.frames = 0
	p.windowStart = p.now()
	return fps, true
}

// Fields renders the current frame's slowest buckets as log fields
func (p *Profiler) Fields(n int) []zap.Field {
	top := p.TopN(n)
	fields := make([]zap.Field, 0, len(top))
	for _, t := range top {
		fields = append(fields, zap.Duration(t.Name, t.Duration))
	}
	return fields
}
