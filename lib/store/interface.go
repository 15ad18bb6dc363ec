package store

import (
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

// MinCapacity is the smallest capacity an array backed store ever has
const MinCapacity = 3

// Kind identifies a storage engine family
type Kind string

const (
	KindUnordered Kind = "unordered"
	KindOrdered   Kind = "ordered"
	KindChain     Kind = "chain"
)

// ParseKind converts a string to a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindUnordered:
		return KindUnordered, nil
	case KindOrdered:
		return KindOrdered, nil
	case KindChain:
		return KindChain, nil
	default:
		return "", fmt.Errorf("invalid store kind: %s (expected one of: unordered, ordered, chain)", s)
	}
}

// Order is the sorting order of an ordered store
type Order uint8

const (
	Ascending  Order = iota // smallest element first
	Descending              // largest element first
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// ParseOrder converts a string ("ascending", "asc", "descending", "desc") to an Order
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc", "":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid order: %s (expected ascending or descending)", s)
	}
}

// Options configures a store during construction
type Options struct {
	AllowDuplicates bool  // whether equal elements may be stored more than once
	Order           Order // sorting order (ordered stores only)
}

// DefaultOptions returns the default store options: duplicates allowed, ascending order
func DefaultOptions() *Options {
	return &Options{
		AllowDuplicates: true,
		Order:           Ascending,
	}
}

// --------------------------------------------------------------------------
// Iteration Protocol
// --------------------------------------------------------------------------

// Cursor is a position-tracking view over a store.
//
// A cursor starts positioned on the first element (if any). Get is valid
// whenever HasNext reports true; calling it on an exhausted cursor is
// undefined.
//
// Precondition: a cursor must not be used after a structural mutation
// (insert, remove, clear, ...) of the store it was created from. Builds with
// the tinycoll_debug tag panic on such use, default builds do not check.
type Cursor[T any] interface {
	// HasNext reports whether an unvisited element remains.
	HasNext() bool

	// Get returns a reference to the current element.
	Get() *T

	// Next advances the cursor by one element.
	Next()
}

// Iterable is implemented by everything that can produce cursors.
type Iterable[T any] interface {
	// Cursor returns a new cursor positioned on the first element.
	Cursor() Cursor[T]
}

// --------------------------------------------------------------------------
// Store Interface
// --------------------------------------------------------------------------

// Store defines the operations shared by all storage engines.
// Every fallible operation reports failure through its boolean result or by
// leaving the store unchanged; no operation returns an error.
//
// Thread-safety: stores are not thread-safe. A store must only be accessed
// from a single goroutine at a time.
type Store[T any] interface {
	// Insert adds item at index. The meaning of index and the bounds that are
	// accepted depend on the engine. Returns false (and leaves the store
	// unchanged) if the insertion was refused.
	Insert(item T, index int) (ok bool)

	// Remove removes the first element equal to item. No-op if absent.
	Remove(item T)

	// RemoveAt removes the element at index. No-op if index is out of range.
	RemoveAt(index int)

	// RemoveAll removes every element equal to item. No-op if absent.
	RemoveAll(item T)

	// Contains reports whether item is stored and at which index.
	Contains(item T) (index int, found bool)

	// At returns a reference to the element at index.
	// CAUTION: index must be within [0, Size()), this is not checked.
	At(index int) *T

	// Size returns the number of live elements.
	Size() int

	// Clear removes all elements.
	Clear()

	Iterable[T]
}

// Resizable is implemented by stores with an explicitly managed capacity.
type Resizable interface {
	// Capacity returns the number of allocated element slots.
	Capacity() int
}
