// Package socowtest provides an instance-tracking element type for
// exercising socow.Vector's lifetime guarantees: every construction and
// destruction is recorded, so a test can assert that a given operation
// created no more (or no fewer) live elements than expected.
package socowtest

import "fmt"

var (
	nextID    int
	instances = map[int]bool{}
)

// Element wraps an int and registers its id in a package-level live set
// on construction, deregistering it on Destroy. It implements
// socow.Cloner and socow.Destroyer so a Vector[Element, ...] exercises
// the same copy/destroy hooks a non-trivial C++ element would.
//
// Identity tracking in this port is scoped to socow's explicit
// construct/Clone/Destroy boundary rather than to every relocation a Go
// slice copy performs internally: moving an already-live Element out of
// storage that only one vector owns (insert, erase, swap, small-to-large
// promotion, exclusive reallocation) is a plain value copy that carries
// its id along, with no Clone and no Destroy, while copies taken from
// storage another vector still observes (shared-buffer detach,
// Vector.Clone of a small vector) go through Clone and leave the source
// alive for its remaining owner.
type Element struct {
	id    int
	value int
}

// New constructs a tracked Element holding value.
func New(value int) Element {
	nextID++
	id := nextID
	instances[id] = true
	return Element{id: id, value: value}
}

// Clone copy-constructs a new tracked instance, asserting the source is
// still live first.
func (e Element) Clone() (Element, error) {
	assertExists(e.id)
	return New(e.value), nil
}

// Destroy deregisters e. Destroying an unknown or already-destroyed id
// panics, mirroring the original's FAIL-on-double-destroy assertion.
func (e Element) Destroy() {
	if !instances[e.id] {
		panic(fmt.Sprintf("socowtest: destroying non-existent element (id %d)", e.id))
	}
	delete(instances, e.id)
}

// Value returns the wrapped int, asserting e is still live.
func (e Element) Value() int {
	assertExists(e.id)
	return e.value
}

// Equal reports whether two live elements hold the same value.
func (e Element) Equal(other Element) bool {
	assertExists(e.id)
	assertExists(other.id)
	return e.value == other.value
}

func (e Element) String() string {
	assertExists(e.id)
	return fmt.Sprintf("%d", e.value)
}

func assertExists(id int) {
	if !instances[id] {
		panic(fmt.Sprintf("socowtest: accessing non-existent element (id %d)", id))
	}
}

// LiveCount reports how many tracked elements are currently alive. Tests
// use it as a cheap sanity check around operations expected not to leak.
func LiveCount() int {
	return len(instances)
}
