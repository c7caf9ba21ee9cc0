// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

// deltaG computes the minimum per-state increment at state s that would
// make every outgoing e-arc from s yield delta <= g.
func (l *LTS) deltaG(m Marking, e, s, g int) int {
	max := 0
	for _, t := range l.trans {
		if t.Event != e || t.From != s {
			continue
		}
		if v := m[t.To] - m[t.From] - g; v > max {
			max = v
		}
	}
	return max
}

// deltaBigG computes the minimum per-state increment at state s that would
// make every incoming e-arc to s yield delta >= g.
func (l *LTS) deltaBigG(m Marking, e, s, g int) int {
	max := 0
	for _, t := range l.trans {
		if t.Event != e || t.To != s {
			continue
		}
		if v := m[t.From] - m[t.To] + g; v > max {
			max = v
		}
	}
	return max
}

// ExpandByG returns r1, the expansion-by-g of m for event e at target g: it
// raises tokens on source sides so that, for arcs from s, r(to) - r1(s) <= g.
func (l *LTS) ExpandByG(m Marking, e, g int) Marking {
	r := make(Marking, len(m))
	for s := range m {
		r[s] = m[s] + l.deltaG(m, e, s, g)
	}
	return r
}

// ExpandByBigG returns r2, the expansion-by-G of m for event e at target g:
// it raises tokens on target sides to force target-side deltas to meet the
// g-lower-bound.
func (l *LTS) ExpandByBigG(m Marking, e, g int) Marking {
	r := make(Marking, len(m))
	for s := range m {
		r[s] = m[s] + l.deltaBigG(m, e, s, g)
	}
	return r
}

// pickIllegalEvent selects, among a non-empty list of illegal events, the
// one maximizing |g_e|; ties are broken by first encountered in ascending
// event-index order, which is how IllegalEvents already orders its input.
func pickIllegalEvent(candidates []IllegalEvent) IllegalEvent {
	best := candidates[0]
	bestAbs := abs(best.GE)
	for _, c := range candidates[1:] {
		if a := abs(c.GE); a > bestAbs {
			best, bestAbs = c, a
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
