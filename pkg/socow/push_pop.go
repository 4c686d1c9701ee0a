package socow

// PushBack appends x. Because Go passes x by value, any aliasing with an
// existing element of v (e.g. v.PushBack(v.At(0))) is already resolved at
// the call site — the argument is a snapshot taken before any
// reallocation, so the self-aliasing hazard C++'s reference-passing
// push_back has to guard against simply does not exist in this
// translation.
func (v *Vector[T, A]) PushBack(x T) error {
	n := v.Len()
	capacity := v.Cap()

	switch {
	case !v.isLarge && n < smallCapacity[T, A]():
		b := v.smallBacking()
		b[n] = x
		v.smallLen++
		return nil

	case !v.isLarge:
		target := 2 * smallCapacity[T, A]()
		if target <= smallCapacity[T, A]() {
			target = smallCapacity[T, A]() + 1
		}
		if err := v.detachFromSmall(target); err != nil {
			return err
		}
		v.large.data = append(v.large.data, x)
		return nil

	case !v.large.shared() && n < capacity:
		v.large.data = append(v.large.data, x)
		return nil

	default:
		target := capacity
		if n == capacity {
			target = 2 * capacity
		}
		if err := v.detachWith(target); err != nil {
			return err
		}
		v.large.data = append(v.large.data, x)
		return nil
	}
}

// PopBack removes the last element. Precondition: v.Len() > 0. Ensures
// exclusive access (preserving capacity) before destroying the vacated
// slot
func (v *Vector[T, A]) PopBack() error {
	if err := v.ensureExclusive(); err != nil {
		return err
	}
	if v.isLarge {
		n := len(v.large.data)
		destroyRange(v.large.data, n-1, n)
		v.large.data = v.large.data[:n-1]
		return nil
	}
	b := v.smallBacking()
	destroyRange(b, v.smallLen-1, v.smallLen)
	v.smallLen--
	return nil
}
