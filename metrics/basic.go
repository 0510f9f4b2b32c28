package metrics

import (
	"math"
	"sync"
	"sync/atomic"
)

// BasicProvider is a simple in-memory Provider. It is concurrency-safe and
// intended for tests and lightweight apps. Instruments are created on demand
// and reused for the same name.
type BasicProvider struct {
	mu         sync.Mutex
	counters   map[string]*BasicCounter
	updowns    map[string]*BasicUpDownCounter
	histograms map[string]*BasicHistogram
}

// NewBasic constructs a new BasicProvider.
func NewBasic() *BasicProvider {
	return &BasicProvider{
		counters:   make(map[string]*BasicCounter),
		updowns:    make(map[string]*BasicUpDownCounter),
		histograms: make(map[string]*BasicHistogram),
	}
}

// Counter returns the monotonic counter registered under name, creating it
// on first use.
func (p *BasicProvider) Counter(name string) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counters[name]
	if !ok {
		c = &BasicCounter{}
		p.counters[name] = c
	}
	return c
}

// UpDownCounter returns the up/down counter registered under name, creating
// it on first use.
func (p *BasicProvider) UpDownCounter(name string) UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.updowns[name]
	if !ok {
		c = &BasicUpDownCounter{}
		p.updowns[name] = c
	}
	return c
}

// Histogram returns the histogram registered under name, creating it on
// first use.
func (p *BasicProvider) Histogram(name string) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		h = &BasicHistogram{min: math.Inf(1), max: math.Inf(-1)}
		p.histograms[name] = h
	}
	return h
}

// CounterValue returns the current value of the named counter, or zero if it
// was never recorded.
func (p *BasicProvider) CounterValue(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.counters[name]; ok {
		return c.Value()
	}
	return 0
}

// UpDownValue returns the current value of the named up/down counter, or
// zero if it was never recorded.
func (p *BasicProvider) UpDownValue(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.updowns[name]; ok {
		return c.Value()
	}
	return 0
}

// HistogramSnapshot returns the summary of the named histogram; ok is false
// if nothing was ever recorded under name.
func (p *BasicProvider) HistogramSnapshot(name string) (s HistogramSummary, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		return HistogramSummary{}, false
	}
	return h.Snapshot(), true
}

// BasicCounter is an atomic monotonic counter.
type BasicCounter struct {
	v atomic.Int64
}

func (c *BasicCounter) Add(n int64) { c.v.Add(n) }

// Value returns the current count.
func (c *BasicCounter) Value() int64 { return c.v.Load() }

// BasicUpDownCounter is an atomic counter that may decrease.
type BasicUpDownCounter struct {
	v atomic.Int64
}

func (c *BasicUpDownCounter) Add(n int64) { c.v.Add(n) }

// Value returns the current value.
func (c *BasicUpDownCounter) Value() int64 { return c.v.Load() }

// HistogramSummary is a point-in-time view of a BasicHistogram.
type HistogramSummary struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// BasicHistogram records count/sum/min/max of observed values.
type BasicHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += v
	if v < h.min {
		h.min = v
	}
	if v > h.max {
		h.max = v
	}
}

// Snapshot returns the current summary.
func (h *BasicHistogram) Snapshot() HistogramSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HistogramSummary{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
}
