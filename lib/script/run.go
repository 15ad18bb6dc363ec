package script

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
	"github.com/ValentinKolb/tinycoll/lib/store/chain"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("script")

// Run executes the script against a new store and checks all expectations.
// The returned Result describes the state reached so far, also when an
// error is returned.
func Run(s *Script) (*Result, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	plog.Infof("running script %q (%s store of %s, %d steps)", s.Name, s.Store, s.Elements, len(s.Steps))

	switch s.Elements {
	case ElementsInt:
		return execute(s, strconv.Atoi, strconv.Itoa)
	default:
		identity := func(v string) string { return v }
		return execute(s, func(v string) (string, error) { return v, nil }, identity)
	}
}

// runner executes a script against one store
type runner[T cmp.Ordered] struct {
	script *Script
	store  store.Store[T]
	parse  func(string) (T, error)
	format func(T) string
	result *Result
}

func execute[T cmp.Ordered](s *Script, parse func(string) (T, error), format func(T) string) (*Result, error) {
	st, err := newStore[T](s)
	if err != nil {
		return nil, err
	}

	r := &runner[T]{
		script: s,
		store:  st,
		parse:  parse,
		format: format,
		result: &Result{Name: s.Name},
	}

	for i, step := range s.Steps {
		stepResult, err := r.step(step)
		stepResult.Size = r.store.Size()
		r.result.Steps = append(r.result.Steps, stepResult)
		if err != nil {
			r.snapshot()
			plog.Warningf("script %q failed at step %d: %v", s.Name, i, err)
			return r.result, fmt.Errorf("steps[%d] (%s): %w", i, step.Op, err)
		}
	}

	r.snapshot()
	if err := r.checkExpect(); err != nil {
		plog.Warningf("script %q failed: %v", s.Name, err)
		return r.result, err
	}
	return r.result, nil
}

// newStore creates the store a script describes
func newStore[T cmp.Ordered](s *Script) (store.Store[T], error) {
	kind, err := store.ParseKind(s.Store)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStore, err)
	}
	order, err := store.ParseOrder(s.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	opts := store.DefaultOptions()
	opts.Order = order
	if s.Duplicates != nil {
		opts.AllowDuplicates = *s.Duplicates
	}

	switch kind {
	case store.KindUnordered:
		return array.NewUnordered[T](opts), nil
	case store.KindOrdered:
		return array.NewOrdered[T](opts), nil
	default:
		return chain.NewChain[T](), nil
	}
}

// step executes a single step and checks its expectations
func (r *runner[T]) step(step Step) (StepResult, error) {
	res := StepResult{Op: step.Op}

	var item T
	if step.Item != "" {
		var err error
		if item, err = r.parse(step.Item); err != nil {
			return res, fmt.Errorf("%w: item %q is not a valid %s", ErrInvalidScript, step.Item, r.script.Elements)
		}
	}

	switch step.Op {
	case OpInsert:
		index := 0
		if step.Index != nil {
			index = *step.Index
		}
		res.OK = r.store.Insert(item, index)
		return res, expectOK(step, res.OK)

	case OpAppend:
		if c, ok := r.store.(chain.Store[T]); ok {
			c.Append(item)
			res.OK = true
		} else {
			res.OK = r.store.Insert(item, r.store.Size())
		}
		return res, expectOK(step, res.OK)

	case OpPrepend:
		if c, ok := r.store.(chain.Store[T]); ok {
			c.Prepend(item)
			res.OK = true
		} else {
			res.OK = r.store.Insert(item, 0)
		}
		return res, expectOK(step, res.OK)

	case OpRemove:
		r.store.Remove(item)
	case OpRemoveAt:
		r.store.RemoveAt(*step.Index)
	case OpRemoveAll:
		r.store.RemoveAll(item)
	case OpClear:
		r.store.Clear()

	case OpContains:
		res.Index, res.Found = r.store.Contains(item)
		if step.Found != nil && *step.Found != res.Found {
			return res, fmt.Errorf("%w: contains %s reported found=%t, expected %t", ErrExpectation, step.Item, res.Found, *step.Found)
		}
		if step.Index != nil && (!res.Found || res.Index != *step.Index) {
			return res, fmt.Errorf("%w: contains %s reported (%d, %t), expected index %d", ErrExpectation, step.Item, res.Index, res.Found, *step.Index)
		}

	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownOperation, step.Op)
	}
	return res, nil
}

// expectOK compares the outcome of an insertion with the expected one
func expectOK(step Step, ok bool) error {
	expected := true
	if step.OK != nil {
		expected = *step.OK
	}
	if ok != expected {
		return fmt.Errorf("%w: %s %s returned %t, expected %t", ErrExpectation, step.Op, step.Item, ok, expected)
	}
	return nil
}

// snapshot records the current state of the store in the result
func (r *runner[T]) snapshot() {
	r.result.Items = r.result.Items[:0]
	for item := range store.Values(r.store.Cursor()) {
		r.result.Items = append(r.result.Items, r.format(item))
	}
	r.result.Size = r.store.Size()
	if res, ok := r.store.(store.Resizable); ok {
		r.result.Capacity = res.Capacity()
	}
}

// checkExpect compares the final state with the expectations of the script
func (r *runner[T]) checkExpect() error {
	e := r.script.Expect
	if e == nil {
		return nil
	}

	if e.Items != nil && !slices.Equal(e.Items, r.result.Items) {
		return fmt.Errorf("%w: items are %v, expected %v", ErrExpectation, r.result.Items, e.Items)
	}
	if e.Size != nil && *e.Size != r.result.Size {
		return fmt.Errorf("%w: size is %d, expected %d", ErrExpectation, r.result.Size, *e.Size)
	}
	if e.Capacity != nil && *e.Capacity != r.result.Capacity {
		return fmt.Errorf("%w: capacity is %d, expected %d", ErrExpectation, r.result.Capacity, *e.Capacity)
	}
	return nil
}
