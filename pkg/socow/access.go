package socow

// backing returns the slice currently holding the live elements, whichever
// arm is active. It never detaches — callers that need exclusivity call
// ensureExclusive first.
func (v *Vector[T, A]) backing() []T {
	if v.isLarge {
		return v.large.data
	}
	return v.smallSlice()
}

// ConstData returns a read-only view of the elements. It never detaches:
// the const form of data() returns into whatever buffer is active,
// shared or not.
func (v *Vector[T, A]) ConstData() []T {
	return v.backing()
}

// Data returns a mutable view of the elements, detaching first if the
// vector is large and shared.
func (v *Vector[T, A]) Data() ([]T, error) {
	if err := v.ensureExclusive(); err != nil {
		return nil, err
	}
	return v.backing(), nil
}

// At returns element i without detaching (const access).
func (v *Vector[T, A]) At(i int) T {
	return v.backing()[i]
}

// Ref detaches if necessary and returns a pointer to element i, usable to
// mutate it in place. Any pointer a sibling sharer previously obtained
// into the old buffer is invalidated by the detach.
func (v *Vector[T, A]) Ref(i int) (*T, error) {
	if err := v.ensureExclusive(); err != nil {
		return nil, err
	}
	b := v.backing()
	return &b[i], nil
}

// Set detaches if necessary and overwrites element i, retiring whatever
// was previously there — the translation of C++ assignment, which
// mutates the existing slot's value without otherwise touching the rest
// of the container.
func (v *Vector[T, A]) Set(i int, val T) error {
	ref, err := v.Ref(i)
	if err != nil {
		return err
	}
	destroyElement(*ref)
	*ref = val
	return nil
}

// FrontConst returns the first element without detaching.
func (v *Vector[T, A]) FrontConst() T {
	return v.backing()[0]
}

// BackConst returns the last element without detaching.
func (v *Vector[T, A]) BackConst() T {
	b := v.backing()
	return b[len(b)-1]
}

// Front detaches if necessary and returns a pointer to the first element.
func (v *Vector[T, A]) Front() (*T, error) {
	return v.Ref(0)
}

// Back detaches if necessary and returns a pointer to the last element.
func (v *Vector[T, A]) Back() (*T, error) {
	return v.Ref(v.Len() - 1)
}
