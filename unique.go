// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unique"
)

// Handle is a canonical identifier for a Marking, interned via the stdlib
// unique package. Two markings with the same pointwise values always
// produce equal Handles, so Handle is the key type for the driver's
// explored/discovered/seed dedup sets.
type Handle unique.Handle[string]

// Value returns a copy of the string value that produced the Handle.
func (h Handle) Value() string {
	return unique.Handle[string](h).Value()
}

// Handle returns a canonical Handle for m. Unlike the sparse encoding this
// package's markings used to have, a dense Marking's length is always the
// LTS's state count, so we only need to encode the multiplicities
// themselves, in index order; decoding (via Marking method below) needs the
// same length back from the caller.
func (m Marking) Handle() (Handle, error) {
	var buf bytes.Buffer
	buf.Grow(4 * len(m))
	arr := make([]byte, 4)
	for _, v := range m {
		if v < 0 {
			return Handle(unique.Make("")), fmt.Errorf("regions: negative multiplicity in marking")
		}
		if v >= math.MaxInt32 {
			return Handle(unique.Make("")), fmt.Errorf("regions: multiplicity over MaxInt32")
		}
		binary.BigEndian.PutUint32(arr, uint32(v))
		buf.Write(arr)
	}
	return Handle(unique.Make(buf.String())), nil
}

// Marking decodes the Handle back into a dense Marking of length n.
func (h Handle) Marking(n int) Marking {
	s := []byte(h.Value())
	m := make(Marking, n)
	for i := 0; i < n; i++ {
		m[i] = int(binary.BigEndian.Uint32(s[i*4 : i*4+4]))
	}
	return m
}
