package array

import "github.com/ValentinKolb/tinycoll/lib/store"

// Store is an array backed store.Store with an explicitly managed capacity.
//
// Capacity policy: the buffer starts with MinCapacity slots, doubles when an
// insertion would fill it and halves while it is more than twice as large as
// the number of live elements (never below MinCapacity).
type Store[T any] interface {
	store.Store[T]
	store.Resizable

	// AllowsDuplicates reports whether equal elements may be stored more than once.
	AllowsDuplicates() bool
}

// OrderedStore is an array store keeping its elements sorted.
type OrderedStore[T any] interface {
	Store[T]

	// Order returns the sorting order the store maintains.
	Order() store.Order
}
