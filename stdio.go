// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"bytes"
	"fmt"
	"io"
)

// Fprint writes l back out in the .aut textual format (see doc.go), with the
// first initial state (if any) as the header's initial state. Transitions
// are printed in the order they were added, not index order, to keep the
// output stable relative to the input the LTS was built from.
func (l *LTS) Fprint(w io.Writer) {
	init := 0
	if len(l.initial) > 0 {
		init = l.initial[0]
	}
	fmt.Fprintf(w, "des (%s,%d,%d)\n", l.StateName(init), len(l.trans), l.NumStates())
	for _, t := range l.trans {
		fmt.Fprintf(w, "(%s,\"%s\",%s)\n", l.StateName(t.From), l.EventName(t.Event), l.StateName(t.To))
	}
}

// String returns the .aut textual representation of l.
func (l *LTS) String() string {
	var buf bytes.Buffer
	l.Fprint(&buf)
	return buf.String()
}
