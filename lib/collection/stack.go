package collection

import (
	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/chain"
)

// --------------------------------------------------------------------------
// Stack
// --------------------------------------------------------------------------

// Stack is a LIFO container on top of a chain store. The top of the stack
// is the first link, so Push and Pop run in constant time.
type Stack[T any] struct {
	links chain.Store[T]
}

// NewStack creates an empty stack
func NewStack[T any]() *Stack[T] {
	// elements are never compared
	return &Stack[T]{links: chain.NewChainFunc[T](nil)}
}

// Push puts item on top of the stack
func (s *Stack[T]) Push(item T) {
	s.links.Prepend(item)
}

// Pop removes and returns the top element.
// Returns the zero value of T if the stack is empty.
func (s *Stack[T]) Pop() T {
	return popFront(s.links)
}

// Peek returns the top element without removing it
func (s *Stack[T]) Peek() (T, bool) {
	return peekFront(s.links)
}

func (s *Stack[T]) Size() int     { return s.links.Size() }
func (s *Stack[T]) IsEmpty() bool { return s.links.Size() == 0 }
func (s *Stack[T]) Clear()        { s.links.Clear() }

// Cursor iterates from the top to the bottom of the stack
func (s *Stack[T]) Cursor() store.Cursor[T] { return s.links.Cursor() }

// --------------------------------------------------------------------------
// Queue
// --------------------------------------------------------------------------

// Queue is a FIFO container on top of a chain store. The front of the queue
// is the first link: Pop runs in constant time, Push walks to the last link.
type Queue[T any] struct {
	links chain.Store[T]
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	// elements are never compared
	return &Queue[T]{links: chain.NewChainFunc[T](nil)}
}

// Push adds item at the back of the queue
func (q *Queue[T]) Push(item T) {
	q.links.Append(item)
}

// Pop removes and returns the front element.
// Returns the zero value of T if the queue is empty.
func (q *Queue[T]) Pop() T {
	return popFront(q.links)
}

// Peek returns the front element without removing it
func (q *Queue[T]) Peek() (T, bool) {
	return peekFront(q.links)
}

func (q *Queue[T]) Size() int     { return q.links.Size() }
func (q *Queue[T]) IsEmpty() bool { return q.links.Size() == 0 }
func (q *Queue[T]) Clear()        { q.links.Clear() }

// Cursor iterates from the front to the back of the queue
func (q *Queue[T]) Cursor() store.Cursor[T] { return q.links.Cursor() }

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func popFront[T any](links chain.Store[T]) T {
	item, ok := peekFront(links)
	if ok {
		links.RemoveAt(0)
	}
	return item
}

func peekFront[T any](links chain.Store[T]) (T, bool) {
	if links.Size() == 0 {
		var zero T
		return zero, false
	}
	return *links.At(0), true
}
