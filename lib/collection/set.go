package collection

import (
	"cmp"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
)

// --------------------------------------------------------------------------
// ArraySet
// --------------------------------------------------------------------------

// ArraySet is an insertion ordered set backed by an unordered array store.
// Membership tests are linear scans.
type ArraySet[T any] struct {
	base[T]
	arr array.Store[T]
}

// NewArraySet creates an empty set of comparable elements
func NewArraySet[T comparable]() *ArraySet[T] {
	return newArraySet(array.NewUnordered[T](&store.Options{AllowDuplicates: false}))
}

// NewArraySetFunc creates an empty set that compares elements with equal
func NewArraySetFunc[T any](equal func(a, b T) bool) *ArraySet[T] {
	return newArraySet(array.NewUnorderedFunc(equal, &store.Options{AllowDuplicates: false}))
}

func newArraySet[T any](arr array.Store[T]) *ArraySet[T] {
	return &ArraySet[T]{base: base[T]{s: arr}, arr: arr}
}

// Add appends item. Returns false if an equal element is already present.
func (s *ArraySet[T]) Add(item T) bool {
	return s.arr.Insert(item, s.arr.Size())
}

// Has reports whether an element equal to item is present
func (s *ArraySet[T]) Has(item T) bool {
	_, found := s.arr.Contains(item)
	return found
}

// Capacity returns the number of allocated slots
func (s *ArraySet[T]) Capacity() int {
	return s.arr.Capacity()
}

// --------------------------------------------------------------------------
// OrderedSet
// --------------------------------------------------------------------------

// OrderedSet is a sorted set. Membership tests are binary searches.
type OrderedSet[T any] struct {
	base[T]
	arr array.OrderedStore[T]
}

// NewOrderedSet creates an empty sorted set
func NewOrderedSet[T cmp.Ordered](order store.Order) *OrderedSet[T] {
	return newOrderedSet(array.NewOrdered[T](&store.Options{AllowDuplicates: false, Order: order}))
}

// NewOrderedSetFunc creates an empty set ordered by compare. Two elements
// are the same set member if compare returns 0.
func NewOrderedSetFunc[T any](compare func(a, b T) int, order store.Order) *OrderedSet[T] {
	return newOrderedSet(array.NewOrderedFunc(compare, &store.Options{AllowDuplicates: false, Order: order}))
}

func newOrderedSet[T any](arr array.OrderedStore[T]) *OrderedSet[T] {
	return &OrderedSet[T]{base: base[T]{s: arr}, arr: arr}
}

// Add inserts item at its sorted position.
// Returns false if an equal element is already present.
func (s *OrderedSet[T]) Add(item T) bool {
	return s.arr.Insert(item, 0)
}

// Has reports whether an element equal to item is present
func (s *OrderedSet[T]) Has(item T) bool {
	_, found := s.arr.Contains(item)
	return found
}

// Order returns the sort order of the set
func (s *OrderedSet[T]) Order() store.Order {
	return s.arr.Order()
}

// Capacity returns the number of allocated slots
func (s *OrderedSet[T]) Capacity() int {
	return s.arr.Capacity()
}
