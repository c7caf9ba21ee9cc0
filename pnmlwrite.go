// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"fmt"
	"io"

	"pnml"
)

// Pnml marshals a Result's minimal regions into a P/T net in PNML format and
// writes the output on an io.Writer. Places are named pl_<N>
// for the N'th region in r.Regions, in order; their initial marking is the
// region's multiplicity at the LTS's single initial state. Transitions are
// named tr_<event> for every event of the LTS; the arc from a place to an
// event's transition is present, with the event's |g_e| on that region as
// weight, whenever the region is a pre-region of that event, and similarly
// on the output side for post-regions.
//
// Pnml requires l to have exactly one initial state: synthesis is defined
// relative to a single run, and the PNML initial marking has nowhere else to
// come from (ErrNoInitialState, ErrMultipleInitialStates).
func (r *Result) Pnml(w io.Writer, l *LTS, name string) error {
	init := l.InitialStates()
	switch len(init) {
	case 0:
		return ErrNoInitialState
	case 1:
	default:
		return ErrMultipleInitialStates
	}
	s0 := init[0]

	places := make([]pnml.Place, len(r.Regions))
	for k, region := range r.Regions {
		places[k] = pnml.Place{
			Name: fmt.Sprintf("%d", k),
			Init: region[s0],
		}
	}

	trans := make([]pnml.Trans, l.NumEvents())
	for e := 0; e < l.NumEvents(); e++ {
		trans[e] = pnml.Trans{
			Name: l.EventName(e),
			In:   []pnml.Arc{},
			Out:  []pnml.Arc{},
		}
		for k, region := range r.Regions {
			grad := l.Gradients(e, region)
			min, max, ok := gradientBounds(grad)
			if !ok {
				continue
			}
			ge := min
			if max != min {
				// Not a region relative to e; skip (defensive, should not
				// happen for a filterMinimal result).
				continue
			}
			if l.IsPreRegionOfEvent(e, region) {
				trans[e].In = append(trans[e].In, pnml.Arc{Place: &places[k], Mult: abs(ge)})
			}
			if l.IsPostRegionOfEvent(e, region) {
				trans[e].Out = append(trans[e].Out, pnml.Arc{Place: &places[k], Mult: abs(ge)})
			}
		}
	}
	return pnml.Write(w, name, places, trans)
}
