package perf

import (
	"fmt"
	"sort"
	"testing"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
	"github.com/ValentinKolb/tinycoll/lib/store/chain"
	storetesting "github.com/ValentinKolb/tinycoll/lib/store/testing"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Registry entries
// --------------------------------------------------------------------------

// Kind is a named store configuration
type Kind struct {
	Name        string
	Description string
	Factory     storetesting.StoreFactory
}

// Workload is a named benchmark body. The probe is never nil; workloads that
// want to report store internals call it with the store under test.
type Workload struct {
	Name        string
	Description string
	Run         func(b *testing.B, factory storetesting.StoreFactory, probe func(s store.Store[int]))
}

// --------------------------------------------------------------------------
// Registry
// --------------------------------------------------------------------------

// Registry holds the store kinds and workloads available to a Runner.
//
// Thread-safety: all methods are safe for concurrent use.
type Registry struct {
	kinds     *xsync.MapOf[string, Kind]
	workloads *xsync.MapOf[string, Workload]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		kinds:     xsync.NewMapOf[string, Kind](),
		workloads: xsync.NewMapOf[string, Workload](),
	}
}

// DefaultRegistry creates a registry with all built-in kinds and workloads
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, k := range builtinKinds() {
		_ = r.RegisterKind(k)
	}
	for _, w := range builtinWorkloads() {
		_ = r.RegisterWorkload(w)
	}
	return r
}

// RegisterKind adds a store kind. Returns an error if the name is taken.
func (r *Registry) RegisterKind(k Kind) error {
	if k.Name == "" || k.Factory == nil {
		return fmt.Errorf("store kind needs a name and a factory")
	}
	if _, loaded := r.kinds.LoadOrStore(k.Name, k); loaded {
		return fmt.Errorf("store kind %s is already registered", k.Name)
	}
	return nil
}

// RegisterWorkload adds a workload. Returns an error if the name is taken.
func (r *Registry) RegisterWorkload(w Workload) error {
	if w.Name == "" || w.Run == nil {
		return fmt.Errorf("workload needs a name and a run function")
	}
	if _, loaded := r.workloads.LoadOrStore(w.Name, w); loaded {
		return fmt.Errorf("workload %s is already registered", w.Name)
	}
	return nil
}

// Kind returns the store kind registered as name
func (r *Registry) Kind(name string) (Kind, bool) {
	return r.kinds.Load(name)
}

// Workload returns the workload registered as name
func (r *Registry) Workload(name string) (Workload, bool) {
	return r.workloads.Load(name)
}

// Kinds returns all store kinds sorted by name
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, r.kinds.Size())
	r.kinds.Range(func(_ string, k Kind) bool {
		kinds = append(kinds, k)
		return true
	})
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name })
	return kinds
}

// Workloads returns all workloads sorted by name
func (r *Registry) Workloads() []Workload {
	workloads := make([]Workload, 0, r.workloads.Size())
	r.workloads.Range(func(_ string, w Workload) bool {
		workloads = append(workloads, w)
		return true
	})
	sort.Slice(workloads, func(i, j int) bool { return workloads[i].Name < workloads[j].Name })
	return workloads
}

// --------------------------------------------------------------------------
// Built-ins
// --------------------------------------------------------------------------

func builtinKinds() []Kind {
	unique := &store.Options{AllowDuplicates: false, Order: store.Ascending}
	return []Kind{
		{
			Name:        "unordered",
			Description: "unordered array store, duplicates allowed",
			Factory:     func() store.Store[int] { return array.NewUnordered[int](nil) },
		},
		{
			Name:        "unordered-nodup",
			Description: "unordered array store, duplicates refused",
			Factory:     func() store.Store[int] { return array.NewUnordered[int](unique) },
		},
		{
			Name:        "ordered",
			Description: "ascending array store, duplicates allowed",
			Factory:     func() store.Store[int] { return array.NewOrdered[int](nil) },
		},
		{
			Name:        "ordered-nodup",
			Description: "ascending array store, duplicates refused",
			Factory:     func() store.Store[int] { return array.NewOrdered[int](unique) },
		},
		{
			Name:        "chain",
			Description: "singly linked chain store",
			Factory:     func() store.Store[int] { return chain.NewChain[int]() },
		},
	}
}

func builtinWorkloads() []Workload {
	return []Workload{
		{
			Name:        "append",
			Description: "add elements behind the last one",
			Run: func(b *testing.B, factory storetesting.StoreFactory, _ func(store.Store[int])) {
				storetesting.BenchmarkAppend(b, factory)
			},
		},
		{
			Name:        "insert-front",
			Description: "add elements in front of all others",
			Run: func(b *testing.B, factory storetesting.StoreFactory, _ func(store.Store[int])) {
				storetesting.BenchmarkInsertFront(b, factory)
			},
		},
		{
			Name:        "contains",
			Description: "membership tests, half of them misses",
			Run: func(b *testing.B, factory storetesting.StoreFactory, _ func(store.Store[int])) {
				storetesting.BenchmarkContains(b, factory)
			},
		},
		{
			Name:        "remove-at",
			Description: "remove the first element",
			Run: func(b *testing.B, factory storetesting.StoreFactory, _ func(store.Store[int])) {
				storetesting.BenchmarkRemoveAt(b, factory)
			},
		},
		{
			Name:        "churn",
			Description: "random inserts and removals, samples the capacity utilisation",
			Run: func(b *testing.B, factory storetesting.StoreFactory, probe func(store.Store[int])) {
				storetesting.BenchmarkChurn(b, factory, probe)
			},
		},
	}
}
