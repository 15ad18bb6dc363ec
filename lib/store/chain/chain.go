package chain

import (
	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("chain")

// --------------------------------------------------------------------------
// Interface
// --------------------------------------------------------------------------

// Store is a singly linked store.Store.
//
// Store.Insert has the semantics of InsertAt: it inserts strictly before an
// existing index and fails for index >= Size(). Append and Prepend attach at
// the ends and never fail.
type Store[T any] interface {
	store.Store[T]

	// InsertAt inserts item before the element at index.
	// Returns false (and does nothing) if index is not in [0, Size()).
	InsertAt(item T, index int) (ok bool)

	// Append attaches item after the last element.
	Append(item T)

	// Prepend attaches item in front of the first element.
	Prepend(item T)
}

// --------------------------------------------------------------------------
// Links
// --------------------------------------------------------------------------

// header is shared by every link of one chain
type header struct {
	size int
	gen  store.Generation
}

// link owns one element and exclusively owns the remainder of the chain
type link[T any] struct {
	item T
	next *link[T]
	hdr  *header
}

// Len returns the total length of the chain this link belongs to
func (l *link[T]) Len() int {
	return l.hdr.size
}

// splice unlinks the successor of l
func (l *link[T]) splice() {
	l.next = l.next.next
	l.hdr.size--
	l.hdr.gen++
}

// attach inserts a new link carrying item directly after l
func (l *link[T]) attach(item T) {
	l.next = &link[T]{item: item, next: l.next, hdr: l.hdr}
	l.hdr.size++
	l.hdr.gen++
}

// --------------------------------------------------------------------------
// Chain Store
// --------------------------------------------------------------------------

// chainImpl is a chain of links behind a sentinel head link.
// The sentinel never carries an element; head.next is the first element.
// All traversals are loops, so the stack depth does not depend on the chain length.
type chainImpl[T any] struct {
	head  *link[T]
	equal func(a, b T) bool
}

// NewChain creates an empty chain store for comparable elements
func NewChain[T comparable]() Store[T] {
	return NewChainFunc(func(a, b T) bool { return a == b })
}

// NewChainFunc creates an empty chain store using equal to compare elements
func NewChainFunc[T any](equal func(a, b T) bool) Store[T] {
	return &chainImpl[T]{
		head:  &link[T]{hdr: &header{}},
		equal: equal,
	}
}

// Insert inserts item before the element at index (see InsertAt)
func (c *chainImpl[T]) Insert(item T, index int) bool {
	return c.InsertAt(item, index)
}

func (c *chainImpl[T]) InsertAt(item T, index int) bool {
	if index < 0 || index >= c.Size() {
		return false
	}
	c.predecessor(index).attach(item)
	return true
}

func (c *chainImpl[T]) Append(item T) {
	last := c.head
	for last.next != nil {
		last = last.next
	}
	last.attach(item)
}

func (c *chainImpl[T]) Prepend(item T) {
	c.head.attach(item)
}

// Remove splices out the first link whose element equals item
func (c *chainImpl[T]) Remove(item T) {
	for l := c.head; l.next != nil; l = l.next {
		if c.equal(l.next.item, item) {
			l.splice()
			return
		}
	}
}

// RemoveAll splices out every link whose element equals item.
// After a splice the same link is tested again, its successor has changed.
func (c *chainImpl[T]) RemoveAll(item T) {
	l := c.head
	for l.next != nil {
		if c.equal(l.next.item, item) {
			l.splice()
			continue
		}
		l = l.next
	}
}

func (c *chainImpl[T]) RemoveAt(index int) {
	if index < 0 || index >= c.Size() {
		return
	}
	c.predecessor(index).splice()
}

// Contains scans the chain from the head and returns the index of the first equal element
func (c *chainImpl[T]) Contains(item T) (int, bool) {
	index := 0
	for l := c.head.next; l != nil; l = l.next {
		if c.equal(l.item, item) {
			return index, true
		}
		index++
	}
	return 0, false
}

// At returns a reference to the element at index.
// CAUTION: index must be within [0, Size()).
func (c *chainImpl[T]) At(index int) *T {
	return &c.predecessor(index).next.item
}

func (c *chainImpl[T]) Size() int {
	return c.head.Len()
}

// Clear drops the whole chain at once
func (c *chainImpl[T]) Clear() {
	plog.Debugf("clear %d links", c.head.hdr.size)
	c.head.next = nil
	c.head.hdr.size = 0
	c.head.hdr.gen++
}

func (c *chainImpl[T]) Cursor() store.Cursor[T] {
	return &cursor[T]{current: c.head, gen: c.head.hdr.gen}
}

// predecessor walks to the link in front of index (the sentinel for index 0)
func (c *chainImpl[T]) predecessor(index int) *link[T] {
	l := c.head
	for i := 0; i < index; i++ {
		l = l.next
	}
	return l
}

// --------------------------------------------------------------------------
// Cursor
// --------------------------------------------------------------------------

// cursor references the remaining sub-chain: current is the link in front
// of the element the cursor is positioned on.
type cursor[T any] struct {
	current *link[T]
	gen     store.Generation
}

func (it *cursor[T]) HasNext() bool {
	store.CheckGeneration(it.gen, it.current.hdr.gen)
	return it.current.next != nil
}

func (it *cursor[T]) Get() *T {
	store.CheckGeneration(it.gen, it.current.hdr.gen)
	return &it.current.next.item
}

func (it *cursor[T]) Next() {
	store.CheckGeneration(it.gen, it.current.hdr.gen)
	it.current = it.current.next
}
