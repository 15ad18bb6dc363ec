package perf

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValentinKolb/tinycoll/lib/common"
	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
	storetesting "github.com/ValentinKolb/tinycoll/lib/store/testing"
)

// testRegistry has one cheap workload that probes its store
func testRegistry(t *testing.T) *Registry {
	r := NewRegistry()
	require.NoError(t, r.RegisterKind(Kind{
		Name:    "unordered",
		Factory: func() store.Store[int] { return array.NewUnordered[int](nil) },
	}))
	require.NoError(t, r.RegisterWorkload(Workload{
		Name: "fill",
		Run: func(b *testing.B, factory storetesting.StoreFactory, probe func(store.Store[int])) {
			s := factory()
			for i := 0; i < b.N; i++ {
				if s.Size() == 100 {
					s.Clear()
				}
				s.Insert(i, s.Size())
				probe(s)
			}
		},
	}))
	return r
}

func TestNewStats(t *testing.T) {
	assert.Equal(t, Stats{}, NewStats(nil))

	s := NewStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.StdDeviation, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.InDelta(t, 2.0/9.0, s.MinMaxRatio, 1e-9)
	assert.InDelta(t, 2e8, s.OpsPerSec(), 1)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	var names []string
	for _, k := range r.Kinds() {
		names = append(names, k.Name)
	}
	assert.Equal(t, []string{"chain", "ordered", "ordered-nodup", "unordered", "unordered-nodup"}, names)
	assert.Len(t, r.Workloads(), 5)

	_, ok := r.Workload("churn")
	assert.True(t, ok)

	assert.Error(t, r.RegisterKind(Kind{Name: "chain", Factory: func() store.Store[int] { return nil }}))
	assert.Error(t, r.RegisterWorkload(Workload{Name: "empty"}))
}

func TestBuiltinKinds(t *testing.T) {
	for _, k := range DefaultRegistry().Kinds() {
		s := k.Factory()
		require.NotNil(t, s, k.Name)
		assert.Equal(t, 0, s.Size(), k.Name)
	}
}

func TestNewRunner_UnknownSelection(t *testing.T) {
	r := testRegistry(t)

	_, err := NewRunner(r, &common.PerfConfig{Runs: 1, Kinds: []string{"hash"}})
	assert.Error(t, err)

	_, err = NewRunner(r, &common.PerfConfig{Runs: 1, Workloads: []string{"sort"}})
	assert.Error(t, err)

	_, err = NewRunner(r, &common.PerfConfig{Runs: 0})
	assert.Error(t, err)
}

func TestRunner_Run(t *testing.T) {
	config := &common.PerfConfig{Runs: 2, BenchTime: 20 * time.Millisecond}
	runner, err := NewRunner(testRegistry(t), config)
	require.NoError(t, err)

	var reported int
	results, err := runner.Run(context.Background(), func(*Result) { reported++ })
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, reported)

	result := results[0]
	assert.False(t, result.Skipped())
	assert.Len(t, result.Runs, 2)
	assert.Greater(t, result.NsPerOp.Mean, 0.0)
	require.NotNil(t, result.Utilisation)
	assert.Greater(t, result.Utilisation.Samples, int64(0))
	assert.LessOrEqual(t, result.Utilisation.P95, 100.0)

	stored, ok := runner.Result("unordered", "fill")
	assert.True(t, ok)
	assert.Same(t, result, stored)

	var buf bytes.Buffer
	runner.WritePrometheus(&buf)
	assert.Contains(t, buf.String(), `tinycoll_perf_operations_total{kind="unordered",workload="fill"}`)
	assert.Contains(t, buf.String(), "tinycoll_perf_utilisation_percent")

	buf.Reset()
	PrintResult(&buf, result)
	assert.Contains(t, buf.String(), "unordered/fill")
	assert.Contains(t, buf.String(), "ops/sec")

	assert.Contains(t, Summary(results), "fill")
}

func TestRunner_Cancelled(t *testing.T) {
	runner, err := NewRunner(testRegistry(t), &common.PerfConfig{Runs: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := runner.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestWriteCSV(t *testing.T) {
	results := []*Result{
		{
			Kind:     "chain",
			Workload: "append",
			Runs:     []testing.BenchmarkResult{{N: 10, T: time.Microsecond}},
			NsPerOp:  NewStats([]float64{100}),
		},
		{Kind: "chain", Workload: "contains"},
	}

	var buf bytes.Buffer
	runner, err := NewRunner(DefaultRegistry(), &common.PerfConfig{Runs: 1})
	require.NoError(t, err)
	require.NoError(t, writeCSV(&buf, results, &common.PerfConfig{}, runner.ID()))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "RunID", rows[0][0])
	assert.Equal(t, runner.ID().String(), rows[1][0])
	assert.Equal(t, []string{"chain", "append", "1", "false", "100"}, rows[1][1:6])
	assert.Equal(t, "true", rows[2][4])
	assert.Equal(t, "default", rows[1][14])
}
