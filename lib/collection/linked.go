package collection

import (
	"iter"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/chain"
)

// --------------------------------------------------------------------------
// LinkedList
// --------------------------------------------------------------------------

// LinkedList is a positional list backed by a chain store
type LinkedList[T any] struct {
	base[T]
	links chain.Store[T]
}

// NewLinkedList creates an empty list of comparable elements
func NewLinkedList[T comparable]() *LinkedList[T] {
	return newLinkedList(chain.NewChain[T]())
}

// NewLinkedListFunc creates an empty list that compares elements with equal
func NewLinkedListFunc[T any](equal func(a, b T) bool) *LinkedList[T] {
	return newLinkedList(chain.NewChainFunc(equal))
}

func newLinkedList[T any](links chain.Store[T]) *LinkedList[T] {
	return &LinkedList[T]{base: base[T]{s: links}, links: links}
}

// Add inserts item before the element at index.
// Returns false if index is not in [0, Size()), use Append to add at the end.
func (l *LinkedList[T]) Add(item T, index int) bool {
	return l.links.InsertAt(item, index)
}

// Append adds item after the last element. This walks the whole list.
func (l *LinkedList[T]) Append(item T) {
	l.links.Append(item)
}

// Prepend adds item in front of the first element
func (l *LinkedList[T]) Prepend(item T) {
	l.links.Prepend(item)
}

// --------------------------------------------------------------------------
// LinkedSet
// --------------------------------------------------------------------------

// LinkedSet is a LinkedList that refuses duplicates
type LinkedSet[T any] struct {
	list *LinkedList[T]
}

// NewLinkedSet creates an empty set of comparable elements
func NewLinkedSet[T comparable]() *LinkedSet[T] {
	return &LinkedSet[T]{list: NewLinkedList[T]()}
}

// NewLinkedSetFunc creates an empty set that compares elements with equal
func NewLinkedSetFunc[T any](equal func(a, b T) bool) *LinkedSet[T] {
	return &LinkedSet[T]{list: NewLinkedListFunc(equal)}
}

// Add inserts item before the element at index.
// Returns false if item is present or index is not in [0, Size()).
func (s *LinkedSet[T]) Add(item T, index int) bool {
	if s.Has(item) {
		return false
	}
	return s.list.Add(item, index)
}

// Append adds item after the last element. Returns false if item is present.
func (s *LinkedSet[T]) Append(item T) bool {
	if s.Has(item) {
		return false
	}
	s.list.Append(item)
	return true
}

// Prepend adds item in front of the first element. Returns false if item is present.
func (s *LinkedSet[T]) Prepend(item T) bool {
	if s.Has(item) {
		return false
	}
	s.list.Prepend(item)
	return true
}

// Has reports whether an element equal to item is present
func (s *LinkedSet[T]) Has(item T) bool {
	_, found := s.list.Contains(item)
	return found
}

func (s *LinkedSet[T]) Remove(item T)               { s.list.Remove(item) }
func (s *LinkedSet[T]) RemoveAt(index int)          { s.list.RemoveAt(index) }
func (s *LinkedSet[T]) Contains(item T) (int, bool) { return s.list.Contains(item) }
func (s *LinkedSet[T]) At(index int) *T             { return s.list.At(index) }
func (s *LinkedSet[T]) Size() int                   { return s.list.Size() }
func (s *LinkedSet[T]) IsEmpty() bool               { return s.list.IsEmpty() }
func (s *LinkedSet[T]) Clear()                      { s.list.Clear() }

// Cursor iterates the set in list order
func (s *LinkedSet[T]) Cursor() store.Cursor[T] {
	return &setCursor[T]{inner: s.list.Cursor()}
}

// All returns a sequence over copies of all elements
func (s *LinkedSet[T]) All() iter.Seq[T] {
	return store.Values(s.Cursor())
}

// setCursor wraps the cursor of the underlying list
type setCursor[T any] struct {
	inner store.Cursor[T]
}

func (c *setCursor[T]) HasNext() bool { return c.inner.HasNext() }
func (c *setCursor[T]) Get() *T       { return c.inner.Get() }
func (c *setCursor[T]) Next()         { c.inner.Next() }
