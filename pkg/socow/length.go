package socow

// growLenBy extends the logical length by delta and returns the backing
// slice at the new length. The caller must already have ensured capacity
// covers the new length (via detachWith or a prior small-mode check).
func (v *Vector[T, A]) growLenBy(delta int) []T {
	if v.isLarge {
		n := len(v.large.data)
		v.large.data = v.large.data[:n+delta]
		return v.large.data
	}
	v.smallLen += delta
	return v.smallBacking()
}

// shrinkLenBy reduces the logical length by delta. Unlike growLenBy it
// does not return the (now-shorter) backing slice, since callers shrink
// only after already destroying the vacated tail.
func (v *Vector[T, A]) shrinkLenBy(delta int) {
	if v.isLarge {
		v.large.data = v.large.data[:len(v.large.data)-delta]
		return
	}
	v.smallLen -= delta
}
