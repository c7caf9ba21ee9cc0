// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dalzilio/sapn-regions"
)

// This example shows the basic usage of the package: parse a small .aut
// transition system and synthesize its minimal regions.
func Example_basic() {
	src := `des (0,4,4)
(0,"a",1)
(0,"b",2)
(1,"c",3)
(2,"c",3)
`
	lts, err := regions.ParseAUT(strings.NewReader(src))
	if err != nil {
		log.Fatal("parsing error: ", err)
	}

	result, err := regions.Synthesize(context.Background(), lts, 1)
	if err != nil {
		log.Fatal("synthesis error: ", err)
	}
	fmt.Println(result.Cancelled)
	// Output:
	// false
}

// This example shows how to build an LTS directly from a set of observed
// traces, without going through the .aut format.
func Example_fromTraces() {
	lts := regions.FromTraces([][]string{
		{"a", "c"},
		{"b", "c"},
	})
	fmt.Printf("lts has %d states and %d events\n", lts.NumStates(), lts.NumEvents())
	// Output:
	// lts has 5 states and 3 events
}

// This example shows how to emit the synthesized regions as a PNML
// Place/Transition net.
func Example_pnml() {
	src := `des (0,2,2)
(0,"a",1)
(1,"a",0)
`
	lts, err := regions.ParseAUT(strings.NewReader(src))
	if err != nil {
		log.Fatal("parsing error: ", err)
	}
	result, err := regions.Synthesize(context.Background(), lts, 1)
	if err != nil {
		log.Fatal("synthesis error: ", err)
	}
	var buf strings.Builder
	if err := result.Pnml(&buf, lts, "selfloop"); err != nil {
		log.Fatal("pnml error: ", err)
	}
	fmt.Println(strings.Contains(buf.String(), "<pnml"))
	// Output:
	// true
}
