// Package store defines the contracts shared by all storage engines of
// tinycoll: the Store interface, the Cursor iteration protocol and the
// construction Options.
//
// The package focuses on:
//   - A unified interface (Store) implemented by array based and chain based engines
//   - A uniform cursor abstraction (HasNext / Get / Next) reused by every container
//   - Predictable failure reporting without errors: operations either succeed,
//     return false or leave the store unchanged
//
// Key Components:
//
//   - Store Interface: The operation set every engine implements (Insert, Remove,
//     RemoveAt, RemoveAll, Contains, At, Size, Clear, Cursor). Higher level
//     containers (see the collection package) hold exactly one store and forward
//     every operation to it.
//
//   - Cursor Interface: A transient view bound to one store. A cursor is only
//     valid while the structure of its store is unchanged. This is a documented
//     precondition; builds with the tinycoll_debug tag fence it with generation
//     counters and panic on violation.
//
//   - Options: Duplicate policy and sorting order. A nil *Options always means
//     DefaultOptions() (duplicates allowed, ascending order).
//
// Implementations:
//
//	- Array stores: A growable/shrinkable contiguous buffer with an unordered
//	  (linear scan) and an ordered (binary search) variant.
//	  Available in the "github.com/ValentinKolb/tinycoll/lib/store/array" package.
//
//	- Chain store: A singly linked chain of individually owned links.
//	  Available in the "github.com/ValentinKolb/tinycoll/lib/store/chain" package.
//
// The testing package (github.com/ValentinKolb/tinycoll/lib/store/testing)
// provides a conformance suite and benchmarks every engine runs against.
//
// Thread-safety: no store is safe for concurrent use. The design assumes a
// single logical thread of control per store instance.
package store
