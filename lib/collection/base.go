package collection

import (
	"iter"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

// base implements the read and removal operations every container forwards
// unchanged to its store
type base[T any] struct {
	s store.Store[T]
}

// Remove removes the first element equal to item. No-op if absent.
func (b *base[T]) Remove(item T) { b.s.Remove(item) }

// RemoveAt removes the element at index. No-op if index is out of range.
func (b *base[T]) RemoveAt(index int) { b.s.RemoveAt(index) }

// RemoveAll removes every element equal to item.
func (b *base[T]) RemoveAll(item T) { b.s.RemoveAll(item) }

// Contains reports whether item is present and at which index.
func (b *base[T]) Contains(item T) (int, bool) { return b.s.Contains(item) }

// At returns a reference to the element at index.
// CAUTION: index must be within [0, Size()).
func (b *base[T]) At(index int) *T { return b.s.At(index) }

// Size returns the number of elements.
func (b *base[T]) Size() int { return b.s.Size() }

// IsEmpty reports whether the container holds no elements.
func (b *base[T]) IsEmpty() bool { return b.s.Size() == 0 }

// Clear removes all elements.
func (b *base[T]) Clear() { b.s.Clear() }

// Cursor returns a new cursor positioned on the first element.
func (b *base[T]) Cursor() store.Cursor[T] { return b.s.Cursor() }

// All returns a sequence over copies of all elements.
// The container must not be modified while the sequence is consumed.
func (b *base[T]) All() iter.Seq[T] { return store.Values(b.s.Cursor()) }
