// Package metrics provides lightweight run counters rendered in the
// Prometheus text exposition format, using only the standard library.
// The scraper is a one-shot batch process, so counters are printed at the
// end of a run rather than served over HTTP.
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Counter is a monotonically increasing counter.
type Counter struct{ val atomic.Int64 }

func (c *Counter) Inc() { c.val.Add(1) }

func (c *Counter) Add(n int64) { c.val.Add(n) }

func (c *Counter) Value() int64 { return c.val.Load() }

// Registry holds named counters and remembers registration order so the
// rendered summary is stable.
type Registry struct {
	mu       sync.Mutex
	order    []string
	counters map[string]*Counter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]*Counter)}
}

// Counter returns the counter registered under name, creating it on first use.
func (r *Registry) Counter(name string) *Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[name]; ok {
		return c
	}
	c := &Counter{}
	r.counters[name] = c
	r.order = append(r.order, name)
	return c
}

// Render returns one "name value" line per counter in registration order.
func (r *Registry) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, name := range r.order {
		fmt.Fprintf(&b, "%s %d\n", name, r.counters[name].Value())
	}
	return b.String()
}
