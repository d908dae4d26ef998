// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// AnnulusArgs holds the input for the radial sweep generating an annulus
type AnnulusArgs struct {

	// input data
	Args
	Size   float64   `json:"size"`   // target element size
	Rin    float64   `json:"rin"`    // inner radius of the annulus
	Rout   float64   `json:"rout"`   // outer radius of the annulus
	Origin []float64 `json:"origin"` // center; nil means {0,0,0}
	Axis   string    `json:"axis"`   // revolution axis: "X", "Y" or "Z"; "" means "Y"

	// derived
	NquadsIn  int // number of sectors at the inner edge
	NquadsOut int // number of sectors at the outer edge
}

// Annulus generates a flat annular mesh by stacking rings from the inner
// radius outward. Whenever the circumferential element width at the
// current radius exceeds three times the target size, a transition ring
// triples the sector count for that ring and all subsequent rings.
// Generation arranges node names so the inner edge of each new ring
// carries the same names as the previous ring's outer edge; Merge then
// keeps the earlier record and repoints the new ring's elements to it.
func Annulus(a *AnnulusArgs) (o *Mesh, err error) {

	// defaults and validation
	if err = ringDefaults(&a.Args, &a.Axis, &a.Origin); err != nil {
		return nil, err
	}
	o, err = NewMesh(&a.Args)
	if err != nil {
		return nil, err
	}
	nprefix, nnum, _ := SplitName(a.StartNode)
	_, enum, _ := SplitName(a.StartElem)

	// number of sectors that fit the inner circumference
	ncirc := int(2 * math.Pi * a.Rin / a.Size)
	if ncirc < 1 {
		ncirc = 1
	}
	a.NquadsIn = ncirc
	a.NquadsOut = ncirc

	// stack rings from the inside toward the outside
	nn := nnum // name counter: first node of the next ring
	q := enum  // name counter: first element of the next ring
	rin := a.Rin
	for Rnd(rin) < Rnd(a.Rout) {

		radial := a.Rout - rin                         // remaining radial depth
		bcirc := 2 * math.Pi * rin / float64(ncirc)    // circumferential element width at rin
		nrad := int(radial / utl.Min(a.Size, 3*bcirc)) // radial subdivisions left
		if nrad < 1 {
			nrad = 1
		}
		hrad := radial / float64(nrad) // height of the next ring

		var ring *Mesh
		if bcirc > 3*a.Size {
			ring, err = TransRing(&TransRingArgs{
				Args:   a.Args.withStart(io.Sf("%s%d", nprefix, nn), io.Sf("Q%d", q)),
				Rin:    rin,
				Rout:   rin + hrad,
				Nquads: ncirc,
				Origin: a.Origin,
				Axis:   a.Axis,
			})
			if err != nil {
				return nil, err
			}
			nn += 3 * ncirc
			q += 4 * ncirc
			ncirc *= 3
			a.NquadsOut = ncirc
		} else {
			ring, err = Ring(&RingArgs{
				Args:   a.Args.withStart(io.Sf("%s%d", nprefix, nn), io.Sf("Q%d", q)),
				Rin:    rin,
				Rout:   rin + hrad,
				Nquads: ncirc,
				Origin: a.Origin,
				Axis:   a.Axis,
			})
			if err != nil {
				return nil, err
			}
			nn += ncirc
			q += ncirc
		}

		// merge, canonicalizing the boundary nodes shared with the
		// previous ring
		o.Merge(ring)
		rin += hrad
	}

	o.finish()
	return o, nil
}
