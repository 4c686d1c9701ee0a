package socow

import "reflect"

// Reserve ensures Cap() >= n. If n does not exceed the current capacity
// this is a no-op — this package's canonical rule: reserve does not break
// sharing merely because capacity already suffices. Only when n exceeds
// the current capacity does reserve allocate a fresh, exclusive buffer of
// capacity exactly n.
func (v *Vector[T, A]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	if !v.isLarge {
		return v.detachFromSmall(n)
	}
	return v.detachWith(n)
}

// ShrinkToFit drops capacity to the current length. If that
// length fits within the small-buffer capacity, elements migrate back
// into inline storage and the heap buffer is released; otherwise a new
// exclusive large buffer of capacity exactly Len() replaces the current
// one. A failing element Clone during the shared-to-small migration
// leaves the vector unchanged. A small-mode vector is already at its
// only possible capacity and is always a no-op.
func (v *Vector[T, A]) ShrinkToFit() error {
	if !v.isLarge {
		return nil
	}
	n := v.Len()
	if v.Cap() == n {
		return nil
	}
	if n <= smallCapacity[T, A]() {
		return v.shrinkToSmall(n)
	}
	return v.detachWith(n)
}

// shrinkToSmall migrates a large buffer's elements back into inline
// storage. A shared buffer must clone each element (another sharer still
// observes the original), so a failing Clone leaves v untouched; an
// exclusive buffer is a plain move to retreatToSmall that can't fail.
func (v *Vector[T, A]) shrinkToSmall(n int) error {
	if v.large.shared() {
		var tmp A
		dst := reflect.ValueOf(&tmp).Elem().Slice(0, smallCapacity[T, A]()).Interface().([]T)[:n]
		if err := cloneInto(dst, v.large.data, n); err != nil {
			return wrapf(err, "shrink to fit: migrate shared buffer to small storage")
		}
		v.large.release()
		v.isLarge = false
		v.small = tmp
		v.smallLen = n
		v.large = nil
		v.cap = 0
		v.logf("shrink to fit back into small storage", "len", n)
		return nil
	}

	v.retreatToSmall()
	v.logf("shrink to fit back into small storage", "len", v.smallLen)
	return nil
}

// retreatToSmall collapses an exclusive large buffer back into inline
// storage by plain value copy. Precondition: v.isLarge, the buffer is
// exclusively owned, and its length fits within the small capacity —
// callers that can't guarantee this must go through shrinkToSmall or
// detachWith instead.
func (v *Vector[T, A]) retreatToSmall() {
	n := v.large.length()
	var tmp A
	dst := reflect.ValueOf(&tmp).Elem().Slice(0, smallCapacity[T, A]()).Interface().([]T)[:n]
	copy(dst, v.large.data)
	v.large.data = nil
	v.large.refCount = 0

	v.isLarge = false
	v.small = tmp
	v.smallLen = n
	v.large = nil
	v.cap = 0
}
