package perf

import (
	"context"
	"flag"
	"fmt"
	"io"
	"testing"

	"github.com/ValentinKolb/tinycoll/lib/common"
	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	gometrics "github.com/rcrowley/go-metrics"
)

var plog = logger.GetLogger("perf")

const (
	// capacitySampleInterval is the number of operations between two capacity samples
	capacitySampleInterval = 64
	// capacitySampleSize is the reservoir size of the capacity histogram
	capacitySampleSize = 1028
)

// --------------------------------------------------------------------------
// Result
// --------------------------------------------------------------------------

// Result holds all measurements of one (kind, workload) pair
type Result struct {
	Kind     string
	Workload string

	// Runs holds the raw result of every run
	Runs []testing.BenchmarkResult
	// NsPerOp summarises the time per operation over all runs
	NsPerOp Stats
	// AllocsPerOp is the mean number of allocations per operation
	AllocsPerOp float64

	// Utilisation summarises size/capacity in percent as sampled by
	// workloads that probe their store. Nil if nothing was sampled.
	Utilisation *Utilisation
}

// Utilisation summarises how much of the allocated capacity a store used
type Utilisation struct {
	Samples int64
	Mean    float64
	Min     int64
	P50     float64
	P95     float64
}

// Skipped reports whether no run produced a measurement
func (r *Result) Skipped() bool {
	return len(r.Runs) == 0 || r.NsPerOp.Mean == 0
}

// --------------------------------------------------------------------------
// Runner
// --------------------------------------------------------------------------

// Runner executes the selected workloads against the selected store kinds.
type Runner struct {
	id       uuid.UUID
	registry *Registry
	config   *common.PerfConfig
	kinds    []Kind
	loads    []Workload
	results  *xsync.MapOf[string, *Result]
	metrics  *metrics.Set
}

// NewRunner validates the selection of config against registry.
// Empty selections mean everything registered.
func NewRunner(registry *Registry, config *common.PerfConfig) (*Runner, error) {
	if config.Runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", config.Runs)
	}

	r := &Runner{
		id:       uuid.New(),
		registry: registry,
		config:   config,
		results:  xsync.NewMapOf[string, *Result](),
		metrics:  metrics.NewSet(),
	}

	if len(config.Kinds) == 0 {
		r.kinds = registry.Kinds()
	}
	for _, name := range config.Kinds {
		k, ok := registry.Kind(name)
		if !ok {
			return nil, fmt.Errorf("unknown store kind: %s", name)
		}
		r.kinds = append(r.kinds, k)
	}

	if len(config.Workloads) == 0 {
		r.loads = registry.Workloads()
	}
	for _, name := range config.Workloads {
		w, ok := registry.Workload(name)
		if !ok {
			return nil, fmt.Errorf("unknown workload: %s", name)
		}
		r.loads = append(r.loads, w)
	}

	if config.BenchTime > 0 {
		// testing.Benchmark reads its duration from the test flags
		testing.Init()
		if err := flag.Set("test.benchtime", config.BenchTime.String()); err != nil {
			return nil, fmt.Errorf("failed to set bench time: %w", err)
		}
	}

	return r, nil
}

// ID returns the random id of this runner, it is part of every exported row
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// Run measures every selected pair in order and calls report after each pair.
// It stops early (returning the results so far) if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, report func(*Result)) ([]*Result, error) {
	var results []*Result

	for _, k := range r.kinds {
		for _, w := range r.loads {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			plog.Infof("running %s on %s (%d runs)", w.Name, k.Name, r.config.Runs)
			result := r.measure(k, w)
			plog.Infof("finished %s on %s: %.0f ns/op", w.Name, k.Name, result.NsPerOp.Mean)

			r.results.Store(resultKey(k.Name, w.Name), result)
			results = append(results, result)
			if report != nil {
				report(result)
			}
		}
	}
	return results, nil
}

// Result returns the result of a measured pair
func (r *Runner) Result(kind, workload string) (*Result, bool) {
	return r.results.Load(resultKey(kind, workload))
}

// WritePrometheus writes the collected metrics in Prometheus text format
func (r *Runner) WritePrometheus(w io.Writer) {
	r.metrics.WritePrometheus(w)
}

// measure runs one pair config.Runs times
func (r *Runner) measure(k Kind, w Workload) *Result {
	result := &Result{Kind: k.Name, Workload: w.Name}

	histogram := gometrics.NewHistogram(gometrics.NewUniformSample(capacitySampleSize))
	operations := 0
	probe := func(s store.Store[int]) {
		operations++
		if operations%capacitySampleInterval != 0 {
			return
		}
		if res, ok := s.(store.Resizable); ok {
			histogram.Update(int64(100 * s.Size() / res.Capacity()))
		}
	}

	labels := fmt.Sprintf(`{kind=%q,workload=%q}`, k.Name, w.Name)
	opsCounter := r.metrics.GetOrCreateCounter("tinycoll_perf_operations_total" + labels)
	nsHistogram := r.metrics.GetOrCreateHistogram("tinycoll_perf_ns_per_op" + labels)

	var nsPerOp []float64
	var allocs float64
	for i := 0; i < r.config.Runs; i++ {
		run := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			w.Run(b, k.Factory, probe)
		})
		if run.N == 0 {
			plog.Warningf("%s on %s produced no measurement", w.Name, k.Name)
			continue
		}

		result.Runs = append(result.Runs, run)
		nsPerOp = append(nsPerOp, float64(run.T.Nanoseconds())/float64(run.N))
		allocs += float64(run.AllocsPerOp())

		opsCounter.Add(run.N)
		nsHistogram.Update(nsPerOp[len(nsPerOp)-1])
	}

	result.NsPerOp = NewStats(nsPerOp)
	if len(result.Runs) > 0 {
		result.AllocsPerOp = allocs / float64(len(result.Runs))
	}

	if snapshot := histogram.Snapshot(); snapshot.Count() > 0 {
		result.Utilisation = &Utilisation{
			Samples: snapshot.Count(),
			Mean:    snapshot.Mean(),
			Min:     snapshot.Min(),
			P50:     snapshot.Percentile(0.5),
			P95:     snapshot.Percentile(0.95),
		}
		r.metrics.GetOrCreateGauge("tinycoll_perf_utilisation_percent"+labels, func() float64 {
			return result.Utilisation.Mean
		})
	}
	return result
}

func resultKey(kind, workload string) string {
	return kind + "/" + workload
}
