package array

import (
	"cmp"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

// --------------------------------------------------------------------------
// Ordered Variant
// --------------------------------------------------------------------------

// orderedImpl is an array store whose live elements are always sorted by
// the declared order. Positions are computed with a binary search; indices
// passed by callers are ignored.
type orderedImpl[T any] struct {
	core[T]
	order   store.Order
	compare func(a, b T) int
}

// NewOrdered creates an empty ordered array store for naturally ordered
// elements. A nil opts means store.DefaultOptions().
func NewOrdered[T cmp.Ordered](opts *store.Options) OrderedStore[T] {
	return NewOrderedFunc(cmp.Compare[T], opts)
}

// NewOrderedFunc creates an empty ordered array store using compare, which
// must return a negative number, zero or a positive number when a is less
// than, equal to or greater than b. Equality of elements is compare(a, b) == 0.
// A nil opts means store.DefaultOptions().
func NewOrderedFunc[T any](compare func(a, b T) int, opts *store.Options) OrderedStore[T] {
	if opts == nil {
		opts = store.DefaultOptions()
	}
	equal := func(a, b T) bool { return compare(a, b) == 0 }
	return &orderedImpl[T]{
		core:    newCore(equal, opts.AllowDuplicates),
		order:   opts.Order,
		compare: compare,
	}
}

// Insert adds item at its sorted position. The index argument is ignored.
// Fails only if duplicates are disallowed and an equal element is present.
func (o *orderedImpl[T]) Insert(item T, _ int) bool {
	index, found := o.Contains(item)
	if found && !o.allowDup {
		return false
	}
	o.insertAt(item, index)
	return true
}

// Remove removes an element equal to item
func (o *orderedImpl[T]) Remove(item T) {
	if index, found := o.Contains(item); found {
		o.RemoveAt(index)
	}
}

// Contains searches item with a binary search.
//
// If an equal element is met during the search its index is returned
// immediately. Otherwise the returned index is the insertion point: the
// first position whose element does not sort before item, so inserting
// there keeps the sequence ordered. An empty store reports (0, false)
// without searching.
func (o *orderedImpl[T]) Contains(item T) (int, bool) {
	if o.size == 0 {
		return 0, false
	}

	low, high := 0, o.size
	for low < high {
		middle := int(uint(low+high) >> 1)
		c := o.compare(o.data[middle], item)
		switch {
		case c == 0:
			return middle, true
		case o.sortsBefore(c):
			low = middle + 1
		default:
			high = middle
		}
	}
	return low, false
}

// Order returns the sorting order of the store
func (o *orderedImpl[T]) Order() store.Order { return o.order }

// Cursor iterates the store in sort order
func (o *orderedImpl[T]) Cursor() store.Cursor[T] {
	return newCursor(&o.core)
}

// sortsBefore reports whether an element comparing as c to the searched item
// belongs in front of it under the store's order
func (o *orderedImpl[T]) sortsBefore(c int) bool {
	if o.order == store.Descending {
		return c > 0
	}
	return c < 0
}
