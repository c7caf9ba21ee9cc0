// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import "testing"

func TestExpandByG(t *testing.T) {
	l := buildDiamond(t)
	c := eidx(t, l, "c")
	// Non-region: m1=1, m2=0, m3=0 makes c illegal (gradients -1 and 0).
	m := Marking{0, 1, 0, 0}
	illegal := l.IllegalEvents(m)
	if len(illegal) != 1 || illegal[0].Event != c {
		t.Fatalf("expected c to be the sole illegal event, got %v", illegal)
	}
	ge := illegal[0].GE

	r1 := l.ExpandByG(m, c, ge)
	if len(r1) != len(m) {
		t.Fatalf("ExpandByG changed marking length: %d vs %d", len(r1), len(m))
	}
	// ExpandByG never decreases a state's multiplicity.
	for i := range m {
		if r1[i] < m[i] {
			t.Errorf("ExpandByG decreased state %d: %d -> %d", i, m[i], r1[i])
		}
	}
}

func TestExpandByBigG(t *testing.T) {
	l := buildDiamond(t)
	c := eidx(t, l, "c")
	m := Marking{0, 1, 0, 0}
	illegal := l.IllegalEvents(m)
	ge := illegal[0].GE

	r2 := l.ExpandByBigG(m, c, ge+1)
	for i := range m {
		if r2[i] < m[i] {
			t.Errorf("ExpandByBigG decreased state %d: %d -> %d", i, m[i], r2[i])
		}
	}
}

func TestPickIllegalEventMaxAbs(t *testing.T) {
	candidates := []IllegalEvent{
		{Event: 0, GE: 1},
		{Event: 1, GE: -3},
		{Event: 2, GE: 2},
	}
	got := pickIllegalEvent(candidates)
	if got.Event != 1 {
		t.Errorf("pickIllegalEvent = event %d, want event 1 (|GE|=3)", got.Event)
	}
}

func TestPickIllegalEventTieBreakAscending(t *testing.T) {
	candidates := []IllegalEvent{
		{Event: 0, GE: 2},
		{Event: 1, GE: -2},
	}
	got := pickIllegalEvent(candidates)
	if got.Event != 0 {
		t.Errorf("pickIllegalEvent tie-break = event %d, want event 0 (first encountered)", got.Event)
	}
}

func TestAbs(t *testing.T) {
	if abs(-5) != 5 || abs(5) != 5 || abs(0) != 0 {
		t.Errorf("abs: unexpected result")
	}
}
