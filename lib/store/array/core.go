package array

import (
	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	// MinCapacity is the smallest capacity an array store ever has
	MinCapacity = store.MinCapacity
	// resizingFactor is applied on every grow (multiply) and shrink (divide)
	resizingFactor = 2
)

var plog = logger.GetLogger("array")

// --------------------------------------------------------------------------
// Storage Core
// --------------------------------------------------------------------------

// core is the backing store shared by the unordered and ordered variants.
// It owns the buffer and implements capacity management and shifting.
//
// Invariants:
//   - MinCapacity <= len(data)
//   - size < len(data) (the buffer grows before it is completely full)
//   - data[size:] holds only zero values
type core[T any] struct {
	data     []T
	size     int
	allowDup bool
	equal    func(a, b T) bool
	gen      store.Generation
}

// newCore creates an empty core with the minimal capacity
func newCore[T any](equal func(a, b T) bool, allowDup bool) core[T] {
	return core[T]{
		data:     make([]T, MinCapacity),
		allowDup: allowDup,
		equal:    equal,
	}
}

// insertAt writes item at index and shifts [index, size) one slot to the right.
// The caller must guarantee 0 <= index <= size.
func (c *core[T]) insertAt(item T, index int) {
	c.manageCapacity(c.size + 1)
	copy(c.data[index+1:c.size+1], c.data[index:c.size])
	c.data[index] = item
	c.size++
	c.gen++
}

// indexOf returns the index of the first element equal to item (forward linear scan)
func (c *core[T]) indexOf(item T) (int, bool) {
	for i := 0; i < c.size; i++ {
		if c.equal(c.data[i], item) {
			return i, true
		}
	}
	return 0, false
}

// RemoveAt removes the element at index. Does nothing if index is out of bounds.
func (c *core[T]) RemoveAt(index int) {
	if index < 0 || index >= c.size {
		return
	}
	c.shiftOut(index)
	c.gen++
	c.manageCapacity(c.size)
}

// RemoveAll removes every element equal to item.
// The scan runs from the tail to the head so shifting an element out never
// moves a not-yet-visited element.
func (c *core[T]) RemoveAll(item T) {
	removed := false
	for i := c.size - 1; i >= 0; i-- {
		if c.equal(c.data[i], item) {
			c.shiftOut(i)
			removed = true
		}
	}
	if removed {
		c.gen++
	}
	c.manageCapacity(c.size)
}

// Clear removes all elements and shrinks the buffer to MinCapacity
func (c *core[T]) Clear() {
	clear(c.data[:c.size])
	c.size = 0
	c.gen++
	c.manageCapacity(c.size)
}

// At returns a reference into the live buffer.
// CAUTION: index must be within [0, Size()).
func (c *core[T]) At(index int) *T {
	return &c.data[:c.size][index]
}

// Size returns the number of live elements
func (c *core[T]) Size() int { return c.size }

// Capacity returns the number of allocated slots
func (c *core[T]) Capacity() int { return len(c.data) }

// AllowsDuplicates reports the duplicate policy the store was created with
func (c *core[T]) AllowsDuplicates() bool { return c.allowDup }

// --------------------------------------------------------------------------
// Internal helpers
// --------------------------------------------------------------------------

// shiftOut moves [index+1, size) one slot to the left and zeroes the freed slot
func (c *core[T]) shiftOut(index int) {
	copy(c.data[index:c.size-1], c.data[index+1:c.size])
	c.size--
	var zero T
	c.data[c.size] = zero
}

// manageCapacity applies the resize policy for the given (future) size:
// double when futureSize reaches the capacity, halve while the capacity is
// more than twice futureSize (but never below MinCapacity).
func (c *core[T]) manageCapacity(futureSize int) {
	capacity := len(c.data)
	if futureSize == capacity {
		capacity *= resizingFactor
	} else {
		for capacity > MinCapacity && capacity > resizingFactor*futureSize {
			capacity = max(capacity/resizingFactor, MinCapacity)
		}
	}

	if capacity != len(c.data) {
		c.resize(capacity)
	}
}

// resize replaces the buffer with one of the given capacity, copying the live elements in order
func (c *core[T]) resize(capacity int) {
	plog.Debugf("resize %d -> %d (size %d)", len(c.data), capacity, c.size)
	data := make([]T, capacity)
	copy(data, c.data[:c.size])
	c.data = data
}

// --------------------------------------------------------------------------
// Cursor
// --------------------------------------------------------------------------

// cursor iterates an array store in storage order (index 0 .. size)
type cursor[T any] struct {
	core  *core[T]
	index int
	gen   store.Generation
}

func newCursor[T any](c *core[T]) store.Cursor[T] {
	return &cursor[T]{core: c, gen: c.gen}
}

func (it *cursor[T]) HasNext() bool {
	store.CheckGeneration(it.gen, it.core.gen)
	return it.index < it.core.size
}

func (it *cursor[T]) Get() *T {
	store.CheckGeneration(it.gen, it.core.gen)
	return it.core.At(it.index)
}

func (it *cursor[T]) Next() {
	store.CheckGeneration(it.gen, it.core.gen)
	it.index++
}
