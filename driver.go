// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result is the outcome of a Synthesize call: the minimal k-bounded regions
// discovered, the log of explored markings, and diagnostics.
type Result struct {
	Regions    []Marking
	Explored   []Marking
	Iterations int
	Cancelled  bool
	RunID      uuid.UUID
}

// Option configures a Synthesize call.
type Option func(*driverConfig)

type driverConfig struct {
	logger zerolog.Logger
}

// WithLogger overrides the zerolog.Logger used for per-iteration
// diagnostics. The default logger is disabled and writes nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *driverConfig) { c.logger = logger }
}

// Synthesize is the core synthesis entry point: it discovers every minimal
// k-bounded multiset region reachable from the excitation/switching seeds
// via the two canonical repair expansions, using a seed dedup + superset
// removal pass followed by a min-sum outer dequeue over candidates and a
// max-sum inner dequeue over each candidate's expansion worklist.
//
// ctx is checked cooperatively at the top of each outer iteration; on
// cancellation Synthesize returns the partial Result with Cancelled: true
// and a nil error. k <= 0 is rejected before any work starts (ErrInvalidK).
func Synthesize(ctx context.Context, l *LTS, k int, opts ...Option) (*Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	cfg := driverConfig{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.Disabled),
	}
	for _, o := range opts {
		o(&cfg)
	}
	runID := uuid.New()
	log := cfg.logger.With().Str("run_id", runID.String()).Logger()

	d := &driver{lts: l, k: k, log: log}
	d.seedCandidates()

	iterations := 0
	cancelled := false
outer:
	for len(d.candidates) > 0 {
		select {
		case <-ctx.Done():
			cancelled = true
			break outer
		default:
		}

		idx := argMinSum(d.candidates)
		r := d.candidates[idx]
		d.candidates = removeAt(d.candidates, idx)

		log.Debug().
			Int("iteration", iterations).
			Int("candidates", len(d.candidates)).
			Int("explored", len(d.explored)).
			Int("discovered", len(d.discovered)).
			Msg("outer: dequeued candidate")

		if l.IsRegion(r) {
			d.recordExplored(r)
			d.recordDiscovered(r)
		} else {
			d.expand(r, &iterations)
		}
		iterations++
	}

	explored := make([]Marking, 0, len(d.explored))
	for _, m := range d.explored {
		explored = append(explored, m)
	}

	return &Result{
		Regions:    filterMinimal(l, d.discovered),
		Explored:   explored,
		Iterations: iterations,
		Cancelled:  cancelled,
		RunID:      runID,
	}, nil
}

// driver owns the three mutable collections of one synthesis call: the
// candidate frontier, the explored set and the discovered region list. A
// driver value is created fresh for each Synthesize call and discarded when
// it returns; there is no process-wide state.
type driver struct {
	lts        *LTS
	k          int
	log        zerolog.Logger
	candidates []Marking
	explored   map[Handle]Marking
	discovered []Marking
	discSeen   map[Handle]struct{}
}

func (d *driver) recordExplored(m Marking) {
	if d.explored == nil {
		d.explored = map[Handle]Marking{}
	}
	h, err := m.Handle()
	if err != nil {
		return
	}
	d.explored[h] = m
}

func (d *driver) isExplored(m Marking) bool {
	h, err := m.Handle()
	if err != nil {
		return false
	}
	_, ok := d.explored[h]
	return ok
}

func (d *driver) recordDiscovered(m Marking) {
	if d.discSeen == nil {
		d.discSeen = map[Handle]struct{}{}
	}
	h, err := m.Handle()
	if err != nil {
		d.discovered = append(d.discovered, m)
		return
	}
	if _, ok := d.discSeen[h]; ok {
		return
	}
	d.discSeen[h] = struct{}{}
	d.discovered = append(d.discovered, m)
}

// seedCandidates seeds Candidates with every excitation and switching
// indicator, deduplicated, then stripped of markings that strictly contain
// another seed.
func (d *driver) seedCandidates() {
	var seeds []Marking
	for e := 0; e < d.lts.NumEvents(); e++ {
		seeds = append(seeds, d.lts.ExcitationSet(e), d.lts.SwitchingSet(e))
	}
	seeds = dedupMarkings(seeds)
	d.candidates = removeSupersets(seeds)
}

// expand runs the inner expansion subroutine on a non-region candidate r,
// mutating d.discovered/d.explored in place.
func (d *driver) expand(r Marking, iterations *int) {
	work := []Marking{r}
	for len(work) > 0 {
		idx := argMaxSum(work)
		rHat := work[idx]
		work = removeAt(work, idx)

		if d.isExplored(rHat) {
			*iterations++
			continue
		}
		d.recordExplored(rHat)

		illegal := d.lts.IllegalEvents(rHat)
		if len(illegal) == 0 {
			// rHat became a region as a side effect of an earlier
			// expansion step; record it and move on.
			d.recordDiscovered(rHat)
			*iterations++
			continue
		}
		chosen := pickIllegalEvent(illegal)

		d.log.Debug().
			Int("iteration", *iterations).
			Int("event", chosen.Event).
			Int("g_min", chosen.GMin).
			Int("g_max", chosen.GMax).
			Int("g_e", chosen.GE).
			Msg("inner: expanding illegal event")

		r1 := d.lts.ExpandByG(rHat, chosen.Event, chosen.GE)
		r2 := d.lts.ExpandByBigG(rHat, chosen.Event, chosen.GE+1)

		for _, ri := range []Marking{r1, r2} {
			if d.isExplored(ri) {
				continue
			}
			if ri.Power() > d.k || ri.IsTrivial() {
				d.recordExplored(ri)
				continue
			}
			if d.lts.IsRegion(ri) {
				d.recordDiscovered(ri)
				d.recordExplored(ri)
				continue
			}
			work = append(work, ri)
		}
		*iterations++
	}
}

func sumOf(m Marking) int {
	s := 0
	for _, v := range m {
		s += v
	}
	return s
}

// argMinSum returns the index of the marking with the smallest value sum in
// ms, ties broken by first index.
func argMinSum(ms []Marking) int {
	best := 0
	bestSum := sumOf(ms[0])
	for i, m := range ms[1:] {
		if s := sumOf(m); s < bestSum {
			best, bestSum = i+1, s
		}
	}
	return best
}

// argMaxSum returns the index of the marking with the largest value sum in
// ms, ties broken by first index.
func argMaxSum(ms []Marking) int {
	best := 0
	bestSum := sumOf(ms[0])
	for i, m := range ms[1:] {
		if s := sumOf(m); s > bestSum {
			best, bestSum = i+1, s
		}
	}
	return best
}

func removeAt(ms []Marking, idx int) []Marking {
	ms[idx] = ms[len(ms)-1]
	return ms[:len(ms)-1]
}

func dedupMarkings(ms []Marking) []Marking {
	seen := map[Handle]struct{}{}
	out := make([]Marking, 0, len(ms))
	for _, m := range ms {
		h, err := m.Handle()
		if err != nil {
			if !containsMarking(out, m) {
				out = append(out, m)
			}
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, m)
	}
	return out
}

// removeSupersets drops any marking in ms that strictly contains another
// marking of ms.
func removeSupersets(ms []Marking) []Marking {
	out := make([]Marking, 0, len(ms))
	for i, m := range ms {
		strictSuperset := false
		for j, other := range ms {
			if i == j {
				continue
			}
			if other.SubsetUnsafe(m) && !m.EqUnsafe(other) {
				strictSuperset = true
				break
			}
		}
		if !strictSuperset {
			out = append(out, m)
		}
	}
	return out
}
