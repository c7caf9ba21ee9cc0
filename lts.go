// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"fmt"
	"sort"
)

// Transition is a single arc (from, label, to) of an LTS, stored with
// interned state/event indices rather than names (see LTS).
type Transition struct {
	From, To int // indices into LTS.states
	Event    int // index into LTS.events
}

// LTS is the concrete, read-only-to-the-core type of a labeled transition
// system: a finite set of states S, a finite set of events E, a finite set
// of transitions T subset of S x E x S, and an optional set of initial
// states. States and events are interned into a stable, sorted index built
// once at construction time, so that every Marking over this LTS is a dense
// []int of length len(states), aligned to the same ordering.
type LTS struct {
	states     []string
	events     []string
	stateIndex map[string]int
	eventIndex map[string]int
	trans      []Transition
	initial    []int
}

// States returns the sorted list of state names.
func (l *LTS) States() []string { return append([]string(nil), l.states...) }

// Events returns the sorted list of event names.
func (l *LTS) Events() []string { return append([]string(nil), l.events...) }

// NumStates returns len(S); every Marking over l has this length.
func (l *LTS) NumStates() int { return len(l.states) }

// NumEvents returns len(E).
func (l *LTS) NumEvents() int { return len(l.events) }

// Transitions returns the full transition relation T, in the order they
// were added.
func (l *LTS) Transitions() []Transition { return append([]Transition(nil), l.trans...) }

// InitialStates returns the indices of the initial states, if any.
func (l *LTS) InitialStates() []int { return append([]int(nil), l.initial...) }

// StateIndex returns the index of state name s and true, or (0, false) if s
// is not a state of l.
func (l *LTS) StateIndex(s string) (int, bool) {
	i, ok := l.stateIndex[s]
	return i, ok
}

// EventIndex returns the index of event name e and true, or (0, false) if e
// is not an event of l.
func (l *LTS) EventIndex(e string) (int, bool) {
	i, ok := l.eventIndex[e]
	return i, ok
}

// StateName returns the name of the state at index i. Panics if i is out of
// range; callers that obtained i from StateIndex/Transitions never pass an
// out-of-range value.
func (l *LTS) StateName(i int) string { return l.states[i] }

// EventName returns the name of the event at index i.
func (l *LTS) EventName(i int) string { return l.events[i] }

// Builder accumulates states, events and transitions before producing an
// immutable *LTS. This mirrors the incremental
// add_transitions_batch/set_intial_state construction of
// sa_transition_system.py's SATransitionSystem.
type Builder struct {
	stateSet map[string]struct{}
	eventSet map[string]struct{}
	trans    [][3]string // from, event, to
	initial  map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		stateSet: map[string]struct{}{},
		eventSet: map[string]struct{}{},
		initial:  map[string]struct{}{},
	}
}

// AddTransition records a single (from, event, to) arc, implicitly adding
// any new state/event names encountered.
func (b *Builder) AddTransition(from, event, to string) *Builder {
	b.stateSet[from] = struct{}{}
	b.stateSet[to] = struct{}{}
	b.eventSet[event] = struct{}{}
	b.trans = append(b.trans, [3]string{from, event, to})
	return b
}

// AddState records an isolated state with no transitions (needed so that
// states with neither incoming nor outgoing arcs still appear in S).
func (b *Builder) AddState(s string) *Builder {
	b.stateSet[s] = struct{}{}
	return b
}

// SetInitial marks state s as an initial state, implicitly adding it to S.
func (b *Builder) SetInitial(s string) *Builder {
	b.stateSet[s] = struct{}{}
	b.initial[s] = struct{}{}
	return b
}

// Build finalizes the Builder into an immutable *LTS. State and event names
// are sorted lexicographically so that the resulting index is canonical and
// reproducible across builds of the same transitions in any order.
func (b *Builder) Build() *LTS {
	l := &LTS{
		stateIndex: map[string]int{},
		eventIndex: map[string]int{},
	}
	for s := range b.stateSet {
		l.states = append(l.states, s)
	}
	sort.Strings(l.states)
	for i, s := range l.states {
		l.stateIndex[s] = i
	}
	for e := range b.eventSet {
		l.events = append(l.events, e)
	}
	sort.Strings(l.events)
	for i, e := range l.events {
		l.eventIndex[e] = i
	}
	for _, t := range b.trans {
		l.trans = append(l.trans, Transition{
			From:  l.stateIndex[t[0]],
			Event: l.eventIndex[t[1]],
			To:    l.stateIndex[t[2]],
		})
	}
	for s := range b.initial {
		l.initial = append(l.initial, l.stateIndex[s])
	}
	sort.Ints(l.initial)
	return l
}

// FromTraces builds the reachability LTS of a set of observed traces by
// prefix-closure: every distinct prefix of a trace is a state (named by its
// activity sequence), and consecutive prefixes connected by an event form a
// transition. The empty prefix is the (single) initial state. This is
// deliberately *not* an Alpha-miner or footprint matrix: those discover
// process models from traces directly, while this package only turns traces
// into an LTS for region synthesis to consume.
func FromTraces(traces [][]string) *LTS {
	b := NewBuilder()
	const root = "<init>"
	b.SetInitial(root)
	for _, trace := range traces {
		prefix := root
		for _, event := range trace {
			next := fmt.Sprintf("%s/%s", prefix, event)
			b.AddTransition(prefix, event, next)
			prefix = next
		}
	}
	return b.Build()
}
