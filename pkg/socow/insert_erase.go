package socow

// Insert places x at index pos, equivalent to appending and
// rotating it into place. When growth or sharing forces a detach, the
// detach itself (via detachWith, reusing the same build-then-commit logic
// as every other growth path) relocates the existing elements into a
// fresh, sufficiently large exclusive buffer before the shift runs; the
// shift and assignment that follow are pure in-place moves and cannot
// fail. Returns the index the element was inserted at.
func (v *Vector[T, A]) Insert(pos int, x T) (int, error) {
	k := pos
	n := v.Len()
	capacity := v.Cap()
	grow := n == capacity
	shared := v.isLarge && v.large.shared()

	if shared || grow {
		var target int
		switch {
		case !v.isLarge:
			target = 2 * smallCapacity[T, A]()
			if target <= smallCapacity[T, A]() {
				target = smallCapacity[T, A]() + 1
			}
		case grow:
			target = 2 * capacity
		default:
			target = capacity
		}
		if err := v.detachWith(target); err != nil {
			return 0, err
		}
	}

	b := v.growLenBy(1)
	copy(b[k+1:], b[k:n])
	b[k] = x
	return k, nil
}

// Erase removes the element at pos, returning the index of
// the element that now occupies that position.
func (v *Vector[T, A]) Erase(pos int) (int, error) {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes [first, last). Detaches first if shared,
// preserving capacity; the erased elements are destroyed, the tail is
// moved leftward over them, the vacated trailing slots are zeroed, and
// length drops by last-first. Capacity and the backing array are
// preserved when the vector was already exclusive.
func (v *Vector[T, A]) EraseRange(first, last int) (int, error) {
	if err := v.ensureExclusive(); err != nil {
		return 0, err
	}
	k := first
	m := last - first
	n := v.Len()

	b := v.backing()
	destroyRange(b, k, k+m)
	copy(b[k:], b[k+m:n])
	clear(b[n-m : n])
	v.shrinkLenBy(m)
	return k, nil
}
