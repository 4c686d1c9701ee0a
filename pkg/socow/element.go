package socow

// Cloner is implemented by element types whose copy must run arbitrary,
// possibly failing logic instead of a plain Go value copy — the Go stand-in
// for a C++ copy constructor that can throw. Detach paths that must copy
// (rather than move) elements call Clone per element when T implements
// this interface, and destroy the already-constructed prefix if Clone
// fails partway through, preserving the strong exception guarantee.
//
// Types that are safe to copy with a plain Go assignment (ints, strings,
// value structs with no owned resources) need not implement Cloner; the
// zero-value behavior is an infallible value copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that must run explicit
// teardown when a Vector stops holding them: on pop_back, erase, clear,
// Close, or when the last reference to a shared buffer is released. It is
// the Go stand-in for a destructor call. Types holding no external
// resources need not implement it.
type Destroyer interface {
	Destroy()
}

// cloneElement copies v, using v's Clone method when available.
func cloneElement[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// cloneInto copies src[:n] into dst, stopping and unwinding the
// already-constructed prefix of dst on the first failing Clone. Used by
// every detach-from-shared and copy-construction path so that a failing
// element copy leaves the destination untouched and the source
// unmodified, preserving the strong exception guarantee.
func cloneInto[T any](dst, src []T, n int) error {
	for i := 0; i < n; i++ {
		v, err := cloneElement(src[i])
		if err != nil {
			destroyRange(dst, 0, i)
			return err
		}
		dst[i] = v
	}
	return nil
}

// destroyElement runs v's Destroy hook, if any, and returns the zero value
// so the caller can clear the vacated slot.
func destroyElement[T any](v T) T {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	return zero
}

// destroyRange destroys s[lo:hi] from hi-1 down to lo and zeroes the
// slots, matching the highest-index-first teardown order requires
// for pop_back/erase/destructor.
func destroyRange[T any](s []T, lo, hi int) {
	for i := hi - 1; i >= lo; i-- {
		s[i] = destroyElement(s[i])
	}
}
