package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its bit pattern, zero value is 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// MaxStringLen bounds stored strings so status lines stay one row wide
const MaxStringLen = 32

// AtomicString holds a short label, zero value is the empty string
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
