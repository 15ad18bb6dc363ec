package collection

import (
	"cmp"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
)

// --------------------------------------------------------------------------
// ArrayList
// --------------------------------------------------------------------------

// ArrayList is a positional list backed by an unordered array store.
// Duplicates are allowed.
type ArrayList[T any] struct {
	base[T]
	arr array.Store[T]
}

// NewArrayList creates an empty list of comparable elements
func NewArrayList[T comparable]() *ArrayList[T] {
	return newArrayList(array.NewUnordered[T](nil))
}

// NewArrayListFunc creates an empty list that compares elements with equal
func NewArrayListFunc[T any](equal func(a, b T) bool) *ArrayList[T] {
	return newArrayList(array.NewUnorderedFunc(equal, nil))
}

func newArrayList[T any](arr array.Store[T]) *ArrayList[T] {
	return &ArrayList[T]{base: base[T]{s: arr}, arr: arr}
}

// Add inserts item at index, shifting later elements to the right.
// Returns false if index is not in [0, Size()].
func (l *ArrayList[T]) Add(item T, index int) bool {
	return l.arr.Insert(item, index)
}

// Append adds item after the last element
func (l *ArrayList[T]) Append(item T) {
	l.arr.Insert(item, l.arr.Size())
}

// Capacity returns the number of allocated slots
func (l *ArrayList[T]) Capacity() int {
	return l.arr.Capacity()
}

// --------------------------------------------------------------------------
// OrderedList
// --------------------------------------------------------------------------

// OrderedList keeps its elements sorted. Duplicates are allowed.
type OrderedList[T any] struct {
	base[T]
	arr array.OrderedStore[T]
}

// NewOrderedList creates an empty sorted list
func NewOrderedList[T cmp.Ordered](order store.Order) *OrderedList[T] {
	return newOrderedList(array.NewOrdered[T](&store.Options{AllowDuplicates: true, Order: order}))
}

// NewOrderedListFunc creates an empty sorted list ordered by compare
func NewOrderedListFunc[T any](compare func(a, b T) int, order store.Order) *OrderedList[T] {
	return newOrderedList(array.NewOrderedFunc(compare, &store.Options{AllowDuplicates: true, Order: order}))
}

func newOrderedList[T any](arr array.OrderedStore[T]) *OrderedList[T] {
	return &OrderedList[T]{base: base[T]{s: arr}, arr: arr}
}

// Add inserts item at its sorted position
func (l *OrderedList[T]) Add(item T) {
	l.arr.Insert(item, 0)
}

// Order returns the sort order of the list
func (l *OrderedList[T]) Order() store.Order {
	return l.arr.Order()
}

// Capacity returns the number of allocated slots
func (l *OrderedList[T]) Capacity() int {
	return l.arr.Capacity()
}
