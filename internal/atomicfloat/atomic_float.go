// Package atomicfloat provides a lock-free float64 for the single-writer,
// many-reader case: the runner goroutine updates a rolling food-rate
// estimate every round while other goroutines may read it through
// Runner.FoodRate, and neither should block the other.
package atomicfloat

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// AtomicFloat64 encapsulates a float64 for non-locking atomic operations.
// No unsafe pointer derived from val is held across more than the few
// lines of a single operation, since the GC may relocate val once nothing
// else references it.
type AtomicFloat64 struct {
	val float64
}

// New returns an AtomicFloat64 initialized to val.
func New(val float64) *AtomicFloat64 {
	return &AtomicFloat64{val: val}
}

// Read atomically reads the current value.
func (af *AtomicFloat64) Read() float64 {
	bits := atomic.LoadUint64((*uint64)(unsafe.Pointer(&af.val)))
	return math.Float64frombits(bits)
}

// Add atomically adds addend to the value, retrying under contention, and
// returns the new value.
func (af *AtomicFloat64) Add(addend float64) float64 {
	for {
		old := af.Read()
		newVal := old + addend
		if atomic.CompareAndSwapUint64(
			(*uint64)(unsafe.Pointer(&af.val)),
			math.Float64bits(old),
			math.Float64bits(newVal),
		) {
			return newVal
		}
	}
}

// Set atomically overwrites the value.
func (af *AtomicFloat64) Set(newVal float64) {
	for {
		old := af.Read()
		if atomic.CompareAndSwapUint64(
			(*uint64)(unsafe.Pointer(&af.val)),
			math.Float64bits(old),
			math.Float64bits(newVal),
		) {
			return
		}
	}
}
