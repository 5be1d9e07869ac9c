package walker

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
)

// ParallelOption configures the Parallel walker.
type ParallelOption func(*parallelOptions)

// parallelOptions holds the Parallel walker's settings.
type parallelOptions struct {
	workers int
}

// WithWorkers returns a ParallelOption that bounds the worker pool.
// Values below 1 are ignored.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// Parallel is the level-synchronous data-parallel walker: each level's
// node block is split across a bounded worker pool and joined before the
// next level starts. Tag folding is associative and commutative and no
// element is written by more than one worker in a pass, so results are
// bit-identical to Serial's.
type Parallel struct {
	workers int
	prof    map[string]float64
}

// NewParallel returns a Parallel walker; the pool defaults to
// runtime.NumCPU() workers.
func NewParallel(options ...ParallelOption) *Parallel {
	opts := parallelOptions{workers: runtime.NumCPU()}
	for _, opt := range options {
		opt(&opts)
	}

	return &Parallel{workers: opts.workers, prof: make(map[string]float64)}
}

// DoReset implements Walker.
func (w *Parallel) DoReset(tg *graph.TimingGraph, v analysis.Visitor) {
	defer w.timePhase(PhaseReset)()
	w.forRange(tg.NumNodes(), func(i int) { v.DoResetNode(core.NodeID(i)) })
	w.forRange(tg.NumEdges(), func(i int) { v.DoResetEdge(core.EdgeID(i)) })
}

// DoArrivalPreTraversal implements Walker. The boundary set is small;
// it is visited on the calling goroutine.
func (w *Parallel) DoArrivalPreTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, v analysis.Visitor) {
	defer w.timePhase(PhaseArrivalPreTraversal)()
	for _, n := range arrivalBoundary(tg, tc) {
		v.DoArrivalPreTraverseNode(tg, tc, n)
	}
}

// DoArrivalTraversal implements Walker.
func (w *Parallel) DoArrivalTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor) {
	defer w.timePhase(PhaseArrivalTraversal)()
	for l := 1; l < tg.NumLevels(); l++ {
		nodes := tg.LevelNodes(core.LevelID(l))
		w.forRange(len(nodes), func(i int) { v.DoArrivalTraverseNode(tg, tc, dc, nodes[i]) })
	}
}

// DoRequiredPreTraversal implements Walker.
func (w *Parallel) DoRequiredPreTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, v analysis.Visitor) {
	defer w.timePhase(PhaseRequiredPre)()
	for _, n := range captureBoundary(tg) {
		v.DoRequiredPreTraverseNode(tg, tc, n)
	}
}

// DoRequiredTraversal implements Walker.
func (w *Parallel) DoRequiredTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor) {
	defer w.timePhase(PhaseRequiredTraversal)()
	for l := tg.NumLevels() - 2; l >= 0; l-- {
		nodes := tg.LevelNodes(core.LevelID(l))
		w.forRange(len(nodes), func(i int) { v.DoRequiredTraverseNode(tg, tc, dc, nodes[i]) })
	}
}

// DoUpdateSlack implements Walker.
func (w *Parallel) DoUpdateSlack(tg *graph.TimingGraph, dc delay.Calculator, v analysis.Visitor) {
	defer w.timePhase(PhaseUpdateSlack)()
	w.forRange(tg.NumEdges(), func(i int) { v.DoSlackTraverseEdge(tg, dc, core.EdgeID(i)) })
}

// ProfilingData implements Walker.
func (w *Parallel) ProfilingData(key string) float64 {
	if v, ok := w.prof[key]; ok {
		return v
	}

	return math.NaN()
}

// timePhase records the wall-clock duration of a phase on completion.
func (w *Parallel) timePhase(key string) func() {
	start := time.Now()

	return func() { w.prof[key] = time.Since(start).Seconds() }
}

// forRange splits [0, n) into contiguous chunks, one goroutine per
// chunk, and joins them all — the level barrier.
func (w *Parallel) forRange(n int, fn func(i int)) {
	// 1. Small blocks are cheaper on the calling goroutine.
	if n <= 1 || w.workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}
	// 2. Ceiling division keeps the chunk count ≤ workers.
	chunk := (n + w.workers - 1) / w.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
