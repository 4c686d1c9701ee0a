package socow

// Clear empties the vector. An exclusive large buffer keeps
// its backing array and capacity, with elements destroyed in place; a
// small vector just destroys its inline elements. A shared large buffer
// resolves the open question on clearing shared storage by taking
// option (a): the reference to the shared buffer is released and the
// vector reverts to empty small mode, rather than paying to detach into a
// buffer it is about to empty anyway.
func (v *Vector[T, A]) Clear() {
	switch {
	case v.isLarge && v.large.shared():
		v.large.release()
		v.large = nil
		v.isLarge = false
		v.cap = 0
		v.smallLen = 0

	case v.isLarge:
		destroyRange(v.large.data, 0, len(v.large.data))
		v.large.data = v.large.data[:0]

	default:
		destroyRange(v.smallSlice(), 0, v.smallLen)
		v.smallLen = 0
	}
	v.logf("clear")
}

// Close releases the vector's resources. Large storage drops a reference
// (destroying the backing elements once the last sharer lets go); small
// storage destroys its inline elements directly. Close is the stand-in
// for the destructor this package's translation notes call for: callers that
// embed element types needing deterministic teardown (socowtest.Element,
// for instance) must call it when a Vector goes out of scope.
func (v *Vector[T, A]) Close() error {
	if v.isLarge {
		v.large.release()
		v.large = nil
		v.isLarge = false
		v.cap = 0
		return nil
	}
	destroyRange(v.smallSlice(), 0, v.smallLen)
	v.smallLen = 0
	return nil
}
