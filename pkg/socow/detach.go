package socow

// detachWith is the central algorithm: it produces an
// exclusively-owned large buffer of capacity newCap holding the current
// logical elements, mutating v only on success. Every operation that must
// obtain a mutable element, or change length while large, routes through
// it or its ensureExclusive shorthand.
func (v *Vector[T, A]) detachWith(newCap int) error {
	switch {
	case !v.isLarge:
		return v.detachFromSmall(newCap)
	case v.large.refCount == 1:
		if newCap == v.cap {
			return nil
		}
		return v.detachExclusiveRealloc(newCap)
	default:
		return v.detachFromShared(newCap)
	}
}

// ensureExclusive detaches only if the large buffer is currently shared,
// preserving the existing capacity. Small-mode vectors are always
// exclusive by construction and need no detach. Used by operations that
// must mutate in place without necessarily changing capacity: pop_back,
// erase, mutable element access.
func (v *Vector[T, A]) ensureExclusive() error {
	if v.isLarge && v.large.shared() {
		return v.detachWith(v.cap)
	}
	return nil
}

// detachFromSmall promotes a small-mode vector to large mode at newCap.
// A small arm is always exclusively owned, so this is a plain move:
// elements are copied by value into the new buffer and the retired small
// slots are abandoned without being destroyed — ownership transfers, it
// never duplicates, so nothing here can fail.
func (v *Vector[T, A]) detachFromSmall(newCap int) error {
	buf := newSharedBuffer[T](newCap)
	small := v.smallSlice()
	n := len(small)
	buf.data = buf.data[:n]
	copy(buf.data, small)

	v.isLarge = true
	v.large = buf
	v.cap = newCap
	v.smallLen = 0
	v.metrics.promoted()
	v.logf("promote small to large", "cap", newCap)
	return nil
}

// detachExclusiveRealloc reallocates an already-exclusive large buffer to
// a different capacity. Like detachFromSmall this is a plain move, not a
// copy: the buffer has exactly one owner, so elements are relocated by
// value and the old buffer is discarded directly — never destroyed,
// since its contents live on in the new one — rather than through its
// refcount-driven release path.
func (v *Vector[T, A]) detachExclusiveRealloc(newCap int) error {
	old := v.large
	n := old.length()

	newBuf := newSharedBuffer[T](newCap)
	newBuf.data = newBuf.data[:n]
	copy(newBuf.data, old.data)
	old.data = nil
	old.refCount = 0

	v.large = newBuf
	v.cap = newCap
	v.metrics.reallocated()
	v.logf("reallocate exclusive buffer", "cap", newCap)
	return nil
}

// detachFromShared copies (never moves — the source is still observed by
// other sharers) the logical elements into a fresh buffer of capacity
// newCap, then releases this vector's reference to the old buffer. A
// failing element Clone unwinds the partially-built destination and
// leaves v untouched, satisfying the strong exception guarantee.
func (v *Vector[T, A]) detachFromShared(newCap int) error {
	old := v.large
	n := old.length()

	newBuf := newSharedBuffer[T](newCap)
	newBuf.data = newBuf.data[:n]
	if err := cloneInto(newBuf.data, old.data, n); err != nil {
		return wrapf(err, "detach from shared buffer")
	}

	old.release()
	v.large = newBuf
	v.cap = newCap
	v.metrics.detached(true)
	v.logf("detach from shared buffer", "cap", newCap)
	return nil
}
