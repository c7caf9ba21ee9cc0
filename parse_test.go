// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"strings"
	"testing"
)

const diamondAUT = `des (0,4,4)
(0,"a",1)
(0,"b",2)
(1,"c",3)
(2,"c",3)
`

func TestParseAUT(t *testing.T) {
	tables := []struct {
		name          string
		src           string
		states, trans int
		initial       string
	}{
		{"diamond", diamondAUT, 4, 4, "0"},
		{"selfloop", "des (s0,1,1)\n(s0,\"a\",s0)\n", 1, 1, "s0"},
		{"comment", "# a leading comment\ndes (0,1,2)\n(0,\"a\",1)\n", 2, 1, "0"},
	}
	for _, tt := range tables {
		l, err := ParseAUT(strings.NewReader(tt.src))
		if err != nil {
			t.Fatalf("%s: ParseAUT error: %s", tt.name, err)
		}
		if n := l.NumStates(); n != tt.states {
			t.Errorf("%s: expected %d states, got %d", tt.name, tt.states, n)
		}
		if n := len(l.Transitions()); n != tt.trans {
			t.Errorf("%s: expected %d transitions, got %d", tt.name, tt.trans, n)
		}
		init := l.InitialStates()
		if len(init) != 1 {
			t.Fatalf("%s: expected exactly one initial state, got %d", tt.name, len(init))
		}
		if name := l.StateName(init[0]); name != tt.initial {
			t.Errorf("%s: expected initial state %q, got %q", tt.name, tt.initial, name)
		}
	}
}

func TestParseAUTMalformed(t *testing.T) {
	tables := []string{
		"",
		"des (0,1,2)\n(0,1)\n",
		"des 0,1,2)\n",
		"dess (0,1,2)\n",
	}
	for _, src := range tables {
		if _, err := ParseAUT(strings.NewReader(src)); err == nil {
			t.Errorf("ParseAUT(%q): expected error, got nil", src)
		}
	}
}

func TestFprintRoundTrip(t *testing.T) {
	l, err := ParseAUT(strings.NewReader(diamondAUT))
	if err != nil {
		t.Fatalf("ParseAUT error: %s", err)
	}
	l2, err := ParseAUT(strings.NewReader(l.String()))
	if err != nil {
		t.Fatalf("re-parsing printed .aut: %s", err)
	}
	if l2.NumStates() != l.NumStates() || len(l2.Transitions()) != len(l.Transitions()) {
		t.Errorf("Fprint/ParseAUT round trip changed shape: %d/%d states, %d/%d transitions",
			l.NumStates(), l2.NumStates(), len(l.Transitions()), len(l2.Transitions()))
	}
}
