package chain_test

import (
	"testing"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/chain"
	storetesting "github.com/ValentinKolb/tinycoll/lib/store/testing"
)

func Test(t *testing.T) {
	storetesting.RunStoreTests(t, "Chain", func() store.Store[int] {
		return chain.NewChain[int]()
	})
}

func Benchmark(b *testing.B) {
	storetesting.RunStoreBenchmarks(b, "Chain", func() store.Store[int] {
		return chain.NewChain[int]()
	})
}
