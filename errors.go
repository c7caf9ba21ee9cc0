// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import "errors"

// Sentinel errors returned by the package. Callers should use errors.Is to
// test for them, since ErrDomainMismatch is wrapped with extra context.
var (
	// ErrDomainMismatch is returned by a multiset operation invoked on
	// markings whose domains (lengths) do not match.
	ErrDomainMismatch = errors.New("regions: marking domain mismatch")

	// ErrInvalidK is returned by Synthesize when k <= 0.
	ErrInvalidK = errors.New("regions: k must be a positive integer")

	// ErrNoInitialState and ErrMultipleInitialStates are returned by the
	// PNML emitter, which requires exactly one initial state to compute
	// place initial markings.
	ErrNoInitialState        = errors.New("regions: lts has no initial state")
	ErrMultipleInitialStates = errors.New("regions: lts has more than one initial state")
)
