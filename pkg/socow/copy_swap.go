package socow

// Clone copy-constructs a new vector. A large source simply
// retains its shared buffer — copy is O(1) and the two vectors now alias
// the same storage until one of them writes. A small source clones each
// element individually; a failing Clone destroys whatever was already
// cloned and returns the error with the receiver untouched.
func (v *Vector[T, A]) Clone() (*Vector[T, A], error) {
	out := &Vector[T, A]{logger: v.logger, metrics: v.metrics}

	if v.isLarge {
		v.large.retain()
		out.isLarge = true
		out.large = v.large
		out.cap = v.cap
		return out, nil
	}

	dst := out.smallBacking()
	if err := cloneInto(dst, v.smallSlice(), v.smallLen); err != nil {
		return nil, wrapf(err, "clone")
	}
	out.smallLen = v.smallLen
	return out, nil
}

// CopyFrom copy-assigns src into v, giving the strong
// exception guarantee by building the replacement fully — via Clone —
// before touching v at all. Self-assignment is a no-op.
func (v *Vector[T, A]) CopyFrom(src *Vector[T, A]) error {
	if v == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return wrapf(err, "copy assign")
	}
	if err := v.Swap(tmp); err != nil {
		return err
	}
	return tmp.Close()
}

// MoveFrom transfers src's storage into v and leaves src empty, the
// translation of move assignment. A large src hands over its buffer handle
// directly; a small src's elements are moved by plain value copy and the
// source slots are abandoned without being destroyed, since ownership —
// not a duplicate — has moved to v. Never fails.
func (v *Vector[T, A]) MoveFrom(src *Vector[T, A]) {
	if v == src {
		return
	}
	_ = v.Close()

	if src.isLarge {
		v.isLarge = true
		v.large = src.large
		v.cap = src.cap
	} else {
		v.isLarge = false
		v.small = src.small
		v.smallLen = src.smallLen
	}

	src.isLarge = false
	src.large = nil
	src.cap = 0
	src.smallLen = 0
	var zero A
	src.small = zero
}

// Swap exchanges v and other's contents. Two large vectors
// trade buffer handles in constant time; two small vectors swap elements
// in place, moving any length surplus across (the vacated source slots are
// zeroed, not destroyed, since the elements now live in the other vector);
// a mixed pair promotes the
// small side to an exclusive large buffer first so the exchange reduces
// to the large/large case.
func (v *Vector[T, A]) Swap(other *Vector[T, A]) error {
	if v == other {
		return nil
	}

	switch {
	case v.isLarge && other.isLarge:
		v.large, other.large = other.large, v.large
		v.cap, other.cap = other.cap, v.cap

	case !v.isLarge && !other.isLarge:
		v.swapSmallSmall(other)

	default:
		if err := v.swapMixed(other); err != nil {
			return err
		}
	}

	v.logger, other.logger = other.logger, v.logger
	v.metrics, other.metrics = other.metrics, v.metrics
	return nil
}

func (v *Vector[T, A]) swapSmallSmall(other *Vector[T, A]) {
	a := v.smallBacking()
	b := other.smallBacking()

	minLen := v.smallLen
	if other.smallLen < minLen {
		minLen = other.smallLen
	}
	for i := 0; i < minLen; i++ {
		a[i], b[i] = b[i], a[i]
	}

	switch {
	case v.smallLen > other.smallLen:
		copy(b[minLen:v.smallLen], a[minLen:v.smallLen])
		clear(a[minLen:v.smallLen])
	case other.smallLen > v.smallLen:
		copy(a[minLen:other.smallLen], b[minLen:other.smallLen])
		clear(b[minLen:other.smallLen])
	}

	v.smallLen, other.smallLen = other.smallLen, v.smallLen
}

// swapMixed handles a small/large pair by promoting the small side to an
// exclusive large buffer of exactly its own length, then trading buffer
// handles as the large/large case does. That promotion leaves the
// formerly-large side holding the undersized buffer the promotion just
// built, so it is collapsed straight back into inline storage — it was
// just constructed fresh and exclusive, so the collapse is the same
// plain, non-throwing move retreatToSmall always is.
func (v *Vector[T, A]) swapMixed(other *Vector[T, A]) error {
	small, large := v, other
	if v.isLarge {
		small, large = other, v
	}
	if err := small.detachFromSmall(small.smallLen); err != nil {
		return wrapf(err, "swap: promote small side")
	}
	small.large, large.large = large.large, small.large
	small.cap, large.cap = large.cap, small.cap

	if large.cap <= smallCapacity[T, A]() {
		large.retreatToSmall()
	}
	return nil
}
