// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package regions

import (
	"fmt"
	"sort"
	"strings"
)

// Marking is a total mapping S -> N, represented densely: Marking[i] is the
// multiplicity of the state at index i in the LTS it was built against (see
// LTS.StateIndex/StateName). Two markings are domain-comparable iff they
// have the same length; a length mismatch is a programming error reported
// as ErrDomainMismatch, never silently coerced.
//
// All operations below are pure: they return a fresh Marking and never
// mutate their arguments.
type Marking []int

// NewMarking returns the all-zero marking over an LTS with n states.
func NewMarking(n int) Marking { return make(Marking, n) }

// Indicator returns the indicator marking of states, i.e. 1 at each index
// in states and 0 elsewhere.
func Indicator(n int, states []int) Marking {
	m := NewMarking(n)
	for _, s := range states {
		m[s] = 1
	}
	return m
}

func checkDomain(a, b Marking) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrDomainMismatch, len(a), len(b))
	}
	return nil
}

// Clone returns a copy of m.
func (m Marking) Clone() Marking {
	c := make(Marking, len(m))
	copy(c, m)
	return c
}

// Eq reports whether m and m2 are pointwise equal.
func (m Marking) Eq(m2 Marking) (bool, error) {
	if err := checkDomain(m, m2); err != nil {
		return false, err
	}
	return m.EqUnsafe(m2), nil
}

// EqUnsafe is Eq without the domain check, for hot paths where both
// markings are known (by construction) to share a domain.
func (m Marking) EqUnsafe(m2 Marking) bool {
	for i := range m {
		if m[i] != m2[i] {
			return false
		}
	}
	return true
}

// Subset reports whether m is pointwise <= m2.
func (m Marking) Subset(m2 Marking) (bool, error) {
	if err := checkDomain(m, m2); err != nil {
		return false, err
	}
	return m.SubsetUnsafe(m2), nil
}

// SubsetUnsafe is Subset without the domain check.
func (m Marking) SubsetUnsafe(m2 Marking) bool {
	for i := range m {
		if m[i] > m2[i] {
			return false
		}
	}
	return true
}

// Union returns the pointwise max of m and m2.
func (m Marking) Union(m2 Marking) (Marking, error) {
	if err := checkDomain(m, m2); err != nil {
		return nil, err
	}
	r := make(Marking, len(m))
	for i := range m {
		if m[i] > m2[i] {
			r[i] = m[i]
		} else {
			r[i] = m2[i]
		}
	}
	return r, nil
}

// Intersect returns the pointwise min of m and m2.
func (m Marking) Intersect(m2 Marking) (Marking, error) {
	if err := checkDomain(m, m2); err != nil {
		return nil, err
	}
	r := make(Marking, len(m))
	for i := range m {
		if m[i] < m2[i] {
			r[i] = m[i]
		} else {
			r[i] = m2[i]
		}
	}
	return r, nil
}

// Diff returns the pointwise saturating difference max(0, m(s)-m2(s)).
func (m Marking) Diff(m2 Marking) (Marking, error) {
	if err := checkDomain(m, m2); err != nil {
		return nil, err
	}
	r := make(Marking, len(m))
	for i := range m {
		if d := m[i] - m2[i]; d > 0 {
			r[i] = d
		}
	}
	return r, nil
}

// Power returns the maximum multiplicity in m, or 0 if m is empty.
func (m Marking) Power() int {
	p := 0
	for _, v := range m {
		if v > p {
			p = v
		}
	}
	return p
}

// Support returns the (unordered) list of state indices with nonzero
// multiplicity.
func (m Marking) Support() []int {
	var s []int
	for i, v := range m {
		if v > 0 {
			s = append(s, i)
		}
	}
	return s
}

// IsKBounded reports whether every multiplicity in m is <= k.
func (m Marking) IsKBounded(k int) bool {
	for _, v := range m {
		if v > k {
			return false
		}
	}
	return true
}

// IsTrivial reports whether every multiplicity in m is >= 1: the "covers
// everything" marking that carries no discriminating information and is
// rejected as a region candidate. The all-zero marking over an empty domain
// is not trivial, since only a nonempty "covers everything" marking counts.
func (m Marking) IsTrivial() bool {
	if len(m) == 0 {
		return false
	}
	for _, v := range m {
		if v < 1 {
			return false
		}
	}
	return true
}

// KTopSet returns a new marking where values strictly less than k become 0
// and other values are preserved.
func (m Marking) KTopSet(k int) Marking {
	r := make(Marking, len(m))
	for i, v := range m {
		if v >= k {
			r[i] = v
		}
	}
	return r
}

// String renders m as the canonical serialization form: an ordered list of
// (state_name, multiplicity) pairs sorted by state name ascending, skipping
// zero entries.
func (m Marking) String(lts *LTS) string {
	type pair struct {
		name string
		mult int
	}
	pairs := make([]pair, 0, len(m))
	for i, v := range m {
		if v == 0 {
			continue
		}
		pairs = append(pairs, pair{lts.StateName(i), v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", p.name, p.mult)
	}
	return sb.String()
}
