// Package chain implements the linked storage engine of tinycoll.
//
// A chain is a sentinel head link followed by zero or more links. Each link
// owns exactly one element and exclusively owns the rest of the chain behind
// it. All links of a chain share one header holding the chain's size and its
// structural generation, so every link can report the total length and cursors
// positioned anywhere in the chain can be checked against mutations.
//
// Operations:
//
//   - InsertAt / Insert: insert strictly before an existing index (index < Size()).
//   - Append: walk to the last link and attach a new one.
//   - Prepend: attach a new first link in constant time.
//   - Remove / RemoveAll: compare the element of the *next* link and splice it
//     out on a match. RemoveAll re-tests the same link after a splice so no link
//     is skipped.
//   - RemoveAt: locate the predecessor of the index and splice.
//   - Contains: forward scan returning the index of the first match.
//
// Out of range indices are no-ops. Every traversal is an explicit loop so the
// stack depth is constant regardless of the chain length.
//
// Thread-safety: chains are not thread-safe.
package chain
