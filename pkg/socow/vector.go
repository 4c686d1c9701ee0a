package socow

import (
	"reflect"

	"github.com/go-kit/log"
)

// noCopy trips `go vet -copylocks` if a Vector is copied by value after
// first use instead of through Clone/CopyFrom — the same trick
// sync.WaitGroup and sync.Mutex use, because a plain struct copy would
// alias the large arm's shared buffer without retaining it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a small-buffer-optimized, copy-on-write sequence of T.
//
// A is the inline small-buffer array type (e.g. [3]T); its length is the
// small-buffer capacity. Vector must not be copied with `:=` once
// constructed — use Clone or CopyFrom, which run the copy-on-write
// bookkeeping a bare struct copy would skip.
type Vector[T any, A arrayOf[T]] struct {
	noCopy

	isLarge  bool
	small    A
	smallLen int

	large *sharedBuffer[T]
	cap   int

	logger  log.Logger
	metrics *metrics
}

// Option configures ambient, non-semantic behavior of a Vector: logging
// and metrics. Vectors built without options behave identically but emit
// nothing.
type Option[T any, A arrayOf[T]] func(*Vector[T, A])

// New returns an empty Vector in small-buffer mode, matching the default
// constructor in Lifecycle. The zero value of Vector is likewise
// already a valid empty, small-mode vector; New exists to apply Options.
func New[T any, A arrayOf[T]](opts ...Option[T, A]) *Vector[T, A] {
	v := &Vector[T, A]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// smallCapacity returns the compile-time small-buffer capacity encoded by
// A's array length. Computed via reflection since Go's generics have no
// core type for a union of differently-sized arrays, so len() cannot be
// applied directly to a value of type A.
func smallCapacity[T any, A arrayOf[T]]() int {
	var a A
	return reflect.ValueOf(a).Len()
}

// Len returns the number of elements currently stored.
func (v *Vector[T, A]) Len() int {
	if v.isLarge {
		return v.large.length()
	}
	return v.smallLen
}

// Empty reports whether Len() == 0.
func (v *Vector[T, A]) Empty() bool {
	return v.Len() == 0
}

// Cap returns the current capacity: the small-buffer size while small,
// or the large arm's allocated capacity once promoted. Growth and element
// removal never drop a large vector back to the small size; ShrinkToFit,
// Clear of a shared buffer, Close, MoveFrom (on the source) and a mixed
// Swap (on the side that was large) return it to small mode.
func (v *Vector[T, A]) Cap() int {
	if v.isLarge {
		return v.cap
	}
	return smallCapacity[T, A]()
}

// IsSmall reports whether the vector is currently in small (inline) mode.
// Exposed for tests and callers that want to assert on storage mode, the
// Go equivalent of the test-only is_static_storage helper.
func (v *Vector[T, A]) IsSmall() bool {
	return !v.isLarge
}

// smallBacking returns a []T sharing storage with v.small, length and cap
// both equal to the small capacity. Obtaining it is the one reflect call
// this package needs: Go generics give arrayOf[T] no core type (its arms
// are arrays of different lengths), so len/index/slice syntax cannot be
// applied to a bare value of type A directly. Once we have the []T view,
// every further read or write is plain Go slicing — no more reflection.
func (v *Vector[T, A]) smallBacking() []T {
	arr := reflect.ValueOf(&v.small).Elem()
	return arr.Slice(0, smallCapacity[T, A]()).Interface().([]T)
}

// smallSlice returns the live elements of the small arm: v.smallBacking()
// truncated to the current length.
func (v *Vector[T, A]) smallSlice() []T {
	return v.smallBacking()[:v.smallLen]
}
