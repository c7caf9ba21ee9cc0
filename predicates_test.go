// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"strings"
	"testing"
)

func TestIsRegion(t *testing.T) {
	l := buildDiamond(t)
	// m1 == m2 satisfies the only real constraint in the diamond (event c
	// has two incoming arcs, from states 1 and 2).
	region := Marking{0, 1, 1, 0}
	if !l.IsRegion(region) {
		t.Errorf("expected %v to be a region", region)
	}

	notRegion := Marking{0, 1, 0, 0}
	if l.IsRegion(notRegion) {
		t.Errorf("expected %v to not be a region", notRegion)
	}
}

func TestIsPreRegionPostRegionOfEvent(t *testing.T) {
	l := buildDiamond(t)
	a := eidx(t, l, "a")
	region := Marking{1, 1, 1, 0}
	if !l.IsPreRegionOfEvent(a, region) {
		t.Errorf("expected %v to be a pre-region of a", region)
	}

	c := eidx(t, l, "c")
	postRegion := Marking{0, 1, 1, 1}
	if !l.IsPostRegionOfEvent(c, postRegion) {
		t.Errorf("expected %v to be a post-region of c", postRegion)
	}
}

func TestIsRegionSingleLoop(t *testing.T) {
	l, err := ParseAUT(strings.NewReader("des (0,1,1)\n(0,\"a\",0)\n"))
	if err != nil {
		t.Fatalf("ParseAUT: %s", err)
	}
	// Self-loops force m(to)-m(from) == 0 for all markings, so every
	// marking is trivially a region.
	if !l.IsRegion(Marking{3}) {
		t.Errorf("expected every marking to be a region of a self-loop LTS")
	}
}
