// Package status is a process-wide registry of atomic counters and gauges
// The frame loop writes, display and tests read
package status

import (
	"cmp"
	"slices"
	"strconv"
	"sync/atomic"
)

// Registry groups metric maps by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Len returns the metric count across all types
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Entry is a formatted metric for display
type Entry struct {
	Key   string
	Value string
}

// Entries returns every metric formatted, sorted by key
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.Len())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Load(), 'f', 2, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.Key, b.Key) })
	return out
}
