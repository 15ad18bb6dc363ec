package array_test

import (
	"testing"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
	storetesting "github.com/ValentinKolb/tinycoll/lib/store/testing"
)

var factories = map[string]storetesting.StoreFactory{
	"Unordered": func() store.Store[int] {
		return array.NewUnordered[int](nil)
	},
	"UnorderedUnique": func() store.Store[int] {
		return array.NewUnordered[int](&store.Options{AllowDuplicates: false})
	},
	"Ordered": func() store.Store[int] {
		return array.NewOrdered[int](nil)
	},
	"OrderedUnique": func() store.Store[int] {
		return array.NewOrdered[int](&store.Options{AllowDuplicates: false})
	},
	"OrderedDescending": func() store.Store[int] {
		return array.NewOrdered[int](&store.Options{AllowDuplicates: true, Order: store.Descending})
	},
	"OrderedDescendingUnique": func() store.Store[int] {
		return array.NewOrdered[int](&store.Options{AllowDuplicates: false, Order: store.Descending})
	},
}

func Test(t *testing.T) {
	for name, factory := range factories {
		storetesting.RunStoreTests(t, name, factory)
	}
}

func Benchmark(b *testing.B) {
	for name, factory := range factories {
		storetesting.RunStoreBenchmarks(b, name, factory)
	}
}
