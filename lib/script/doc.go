// Package script runs store workloads described in YAML files.
//
// A script names a store configuration, a list of steps and optionally the
// expected final state:
//
//	name: ordered-dedup
//	store: ordered            # unordered | ordered | chain
//	elements: int             # int | string
//	order: ascending          # ordered stores only
//	duplicates: false         # array stores only, default true
//	steps:
//	  - {op: insert, item: "5"}
//	  - {op: insert, item: "5", ok: false}
//	  - {op: contains, item: "5", found: true, index: 0}
//	expect:
//	  items: ["5"]
//	  size: 1
//	  capacity: 3
//
// Operations: insert, append, prepend, remove, remove_at, remove_all, clear
// and contains. insert, append and prepend expect success unless the step
// sets `ok: false`. On array stores append inserts at Size() and prepend at
// index 0.
//
// Scripts are decoded strictly (unknown fields are rejected) and validated
// before they run. Run stops at the first failed expectation and returns an
// error wrapping ErrExpectation together with the state reached so far.
package script
