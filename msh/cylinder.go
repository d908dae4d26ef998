// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// CylinderArgs holds the input for the axial sweep generating a cylinder
type CylinderArgs struct {
	Args
	Size   float64   `json:"size"`   // target element size
	Radius float64   `json:"radius"` // radius of the cylinder
	Height float64   `json:"height"` // total height of the cylinder
	Nquads int       `json:"nquads"` // circumferential sectors; 0 means derive from Size
	Origin []float64 `json:"origin"` // center of the base; nil means {0,0,0}
	Axis   string    `json:"axis"`   // revolution axis: "X", "Y" or "Z"; "" means "Y"
	Kind   string    `json:"kind"`   // element kind: "Quad" or "Rect"; "" means "Quad"
}

// Cylinder generates a cylindrical shell by stacking rings along the
// revolution axis from the base toward the top, each step sized so the
// remaining height divides evenly into whole elements no taller than the
// target size. The circumferential sector count is fixed for the whole
// cylinder. Boundary nodes between rings are canonicalized as in Annulus.
func Cylinder(a *CylinderArgs) (o *Mesh, err error) {

	// defaults and validation
	if err = ringDefaults(&a.Args, &a.Axis, &a.Origin); err != nil {
		return nil, err
	}
	if a.Kind == "" {
		a.Kind = KindQuad
	}
	eprefix, err := KindPrefix(a.Kind)
	if err != nil {
		return nil, err
	}
	if a.Nquads < 1 {
		a.Nquads = int(math.Round(2 * math.Pi * a.Radius / a.Size))
		if a.Nquads < 1 {
			a.Nquads = 1
		}
	}
	o, err = NewMesh(&a.Args)
	if err != nil {
		return nil, err
	}
	nprefix, nnum, _ := SplitName(a.StartNode)
	_, enum, _ := SplitName(a.StartElem)

	// stack rings from the base toward the top
	nn := nnum
	q := enum
	y := 0.0
	for Rnd(y) < Rnd(a.Height) {

		rem := a.Height - y // remaining height to be meshed
		nvert := int(rem / a.Size)
		if nvert < 1 {
			nvert = 1
		}
		hy := rem / float64(nvert) // height of the next ring

		org, e := AxisShift(a.Origin, a.Axis, y)
		if e != nil {
			return nil, e
		}
		ring, e := CylRing(&CylRingArgs{
			Args:   a.Args.withStart(io.Sf("%s%d", nprefix, nn), io.Sf("%s%d", eprefix, q)),
			Radius: a.Radius,
			Height: hy,
			Nquads: a.Nquads,
			Origin: org,
			Axis:   a.Axis,
			Kind:   a.Kind,
		})
		if e != nil {
			return nil, e
		}
		nn += a.Nquads
		q += a.Nquads

		o.Merge(ring)
		y += hy
	}

	o.finish()
	return o, nil
}
