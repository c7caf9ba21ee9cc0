// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package regions implements minimal region synthesis over a Structural
Adaptive Petri Net (SAPN), starting from a labeled transition system (LTS)
of observed states and events rather than from a net.

A marking is a total map from states to non-negative multiplicities,
represented densely as a []int indexed by the LTS's own sorted state
order (see Marking). A region is a marking whose gradient, on every event,
is the same constant across all arcs carrying that event; regions are the
candidate places of a synthesized net. Synthesize runs the search that
discovers every minimal k-bounded region reachable from the excitation and
switching seeds of each event, repairing non-regions via two asymmetric
expansion moves (ExpandByG, ExpandByBigG) until a region is found or
discarded as invalid.

The .aut format

LTS values are most commonly built by parsing the Aldebaran .aut textual
format (see http://cadp.inria.fr/man/aut.html for the reference grammar
this package implements a practical subset of). A .aut file opens with a
header giving the initial state and a (redundant) transition/state count,
followed by one line per transition:

    des (<initial-state>, <num-transitions>, <num-states>)
    (<from>,"<label>",<to>)
    ...

State names may be the conventional 0..n-1 integers or arbitrary
identifiers; both are accepted. Lines beginning with '#' are comments.

Simple example of .aut file

    des (0,4,3)
    (0,"a",1)
    (0,"b",2)
    (1,"c",2)
    (2,"c",2)

LTS values can also be built directly with Builder, or derived from a set
of observed event traces with FromTraces (prefix-closure over a log,
deliberately not an Alpha-miner).

Once a set of minimal regions has been synthesized, Result.Pnml renders
them as a Petri net in the PNML interchange format, one place per region
and one transition per event, via the internal/pnml sub-package.
*/
package regions
