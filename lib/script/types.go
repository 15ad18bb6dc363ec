package script

import "errors"

// Script describes a sequence of store operations and the expected outcome.
type Script struct {
	// Name identifies the script in logs and reports.
	Name string `yaml:"name"`

	// Description explains what the script checks.
	Description string `yaml:"description,omitempty"`

	// Store is the storage engine: unordered, ordered or chain.
	Store string `yaml:"store"`

	// Elements is the element type: int or string.
	Elements string `yaml:"elements"`

	// Order is the sort order of ordered stores (ascending or descending).
	// Defaults to ascending.
	Order string `yaml:"order,omitempty"`

	// Duplicates sets the duplicate policy of array stores. Defaults to true.
	// Chains always accept duplicates.
	Duplicates *bool `yaml:"duplicates,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`

	// Expect is checked after the last step.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Step is a single store operation.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Item is the element operated on, written as a string for all element types.
	Item string `yaml:"item,omitempty"`

	// Index is the position for insert and remove_at. For contains it is
	// the expected index of a found item.
	Index *int `yaml:"index,omitempty"`

	// OK is the expected outcome of insert, append and prepend (default true).
	OK *bool `yaml:"ok,omitempty"`

	// Found is the expected outcome of contains.
	Found *bool `yaml:"found,omitempty"`
}

// Expect is the expected final state of the store.
type Expect struct {
	// Items are the elements in storage order.
	Items []string `yaml:"items,omitempty"`

	// Size is the number of elements.
	Size *int `yaml:"size,omitempty"`

	// Capacity is the number of allocated slots (array stores only).
	Capacity *int `yaml:"capacity,omitempty"`
}

// Step operations.
const (
	OpInsert    = "insert"
	OpAppend    = "append"
	OpPrepend   = "prepend"
	OpRemove    = "remove"
	OpRemoveAt  = "remove_at"
	OpRemoveAll = "remove_all"
	OpClear     = "clear"
	OpContains  = "contains"
)

// Element types.
const (
	ElementsInt    = "int"
	ElementsString = "string"
)

// Result is the outcome of a script run.
type Result struct {
	// Name of the script.
	Name string

	// Items are the final elements in storage order.
	Items []string

	// Size is the final number of elements.
	Size int

	// Capacity is the final capacity, 0 for chains.
	Capacity int

	// Steps holds one entry per executed step.
	Steps []StepResult
}

// StepResult is the outcome of a single step.
type StepResult struct {
	Op string
	// OK is the result of insert, append and prepend.
	OK bool
	// Found and Index are the result of contains.
	Found bool
	Index int
	// Size is the store size after the step.
	Size int
}

var (
	// ErrInvalidScript is returned for scripts with missing or conflicting fields.
	ErrInvalidScript = errors.New("invalid script")
	// ErrUnknownStore is returned for unknown store kinds.
	ErrUnknownStore = errors.New("unknown store")
	// ErrUnknownElements is returned for unknown element types.
	ErrUnknownElements = errors.New("unknown element type")
	// ErrUnknownOperation is returned for steps with an unknown op.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrExpectation is returned when a step or the final state differs from the expectation.
	ErrExpectation = errors.New("expectation failed")
)
