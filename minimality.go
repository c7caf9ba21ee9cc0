// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

// filterMinimal drops any marking that is not a region (defensive recheck),
// then drops any remaining marking that strictly contains another, then
// dedups by pointwise equality. Dedup is free here because the caller
// already keys Discovered by Handle, but we recompute it defensively in
// case callers pass an ad-hoc slice.
func filterMinimal(l *LTS, discovered []Marking) []Marking {
	regionsOnly := make([]Marking, 0, len(discovered))
	for _, m := range discovered {
		if l.IsRegion(m) {
			regionsOnly = append(regionsOnly, m)
		}
	}

	minimal := make([]Marking, 0, len(regionsOnly))
	for i, m := range regionsOnly {
		contained := false
		for j, other := range regionsOnly {
			if i == j {
				continue
			}
			if other.SubsetUnsafe(m) && !m.EqUnsafe(other) {
				contained = true
				break
			}
		}
		if !contained {
			minimal = append(minimal, m)
		}
	}

	seen := map[Handle]struct{}{}
	out := make([]Marking, 0, len(minimal))
	for _, m := range minimal {
		h, err := m.Handle()
		if err != nil {
			// Negative or overflowing multiplicities cannot occur in a
			// k-bounded marking produced by this package; fall back to a
			// linear scan rather than drop the region.
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

func containsMarking(ms []Marking, m Marking) bool {
	for _, other := range ms {
		if other.EqUnsafe(m) {
			return true
		}
	}
	return false
}
