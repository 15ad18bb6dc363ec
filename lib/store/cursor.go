package store

import "iter"

// Generation counts structural mutations of a store. Cursors remember the
// generation they were created at to detect use after mutation.
type Generation uint64

// CheckGeneration panics if a cursor bound at generation bound is used after
// the store moved on to generation current. It does nothing unless the
// binary was built with the tinycoll_debug tag.
func CheckGeneration(bound, current Generation) {
	if DebugCursors && bound != current {
		panic("tinycoll: cursor used after structural mutation of its store")
	}
}

// Values adapts a cursor to a range-over-func sequence of element copies.
// The same precondition as for the cursor applies: the store must not be
// structurally modified while the sequence is consumed.
func Values[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; c.HasNext(); c.Next() {
			if !yield(*c.Get()) {
				return
			}
		}
	}
}

// Collect drains a cursor into a new slice
func Collect[T any](c Cursor[T]) []T {
	items := make([]T, 0)
	for ; c.HasNext(); c.Next() {
		items = append(items, *c.Get())
	}
	return items
}
