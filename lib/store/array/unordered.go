package array

import "github.com/ValentinKolb/tinycoll/lib/store"

// --------------------------------------------------------------------------
// Unordered Variant
// --------------------------------------------------------------------------

// unorderedImpl is an array store without any ordering.
// Membership is a forward linear scan; the insertion index is chosen by the caller.
type unorderedImpl[T any] struct {
	core[T]
}

// NewUnordered creates an empty unordered array store for comparable
// elements using == as equality. A nil opts means store.DefaultOptions().
func NewUnordered[T comparable](opts *store.Options) Store[T] {
	return NewUnorderedFunc(func(a, b T) bool { return a == b }, opts)
}

// NewUnorderedFunc creates an empty unordered array store using equal to
// compare elements. A nil opts means store.DefaultOptions().
func NewUnorderedFunc[T any](equal func(a, b T) bool, opts *store.Options) Store[T] {
	if opts == nil {
		opts = store.DefaultOptions()
	}
	return &unorderedImpl[T]{core: newCore(equal, opts.AllowDuplicates)}
}

// Insert adds item at index, shifting the elements at and after index to the right.
// index == Size() appends. Fails if index is out of [0, Size()] or if
// duplicates are disallowed and item is already present.
func (u *unorderedImpl[T]) Insert(item T, index int) bool {
	if index < 0 || index > u.size {
		return false
	}
	if !u.allowDup {
		if _, found := u.indexOf(item); found {
			return false
		}
	}
	u.insertAt(item, index)
	return true
}

// Remove removes the first element equal to item
func (u *unorderedImpl[T]) Remove(item T) {
	if index, found := u.indexOf(item); found {
		u.RemoveAt(index)
	}
}

// Contains returns the index of the first element equal to item
func (u *unorderedImpl[T]) Contains(item T) (int, bool) {
	return u.indexOf(item)
}

// Cursor iterates the store in index order
func (u *unorderedImpl[T]) Cursor() store.Cursor[T] {
	return newCursor(&u.core)
}
