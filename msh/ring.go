// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RingArgs holds the input for a single annular ring of quadrilaterals
type RingArgs struct {
	Args
	Rin    float64   `json:"rin"`    // inner radius
	Rout   float64   `json:"rout"`   // outer radius
	Nquads int       `json:"nquads"` // number of circumferential sectors
	Origin []float64 `json:"origin"` // center of the ring; nil means {0,0,0}
	Axis   string    `json:"axis"`   // revolution axis: "X", "Y" or "Z"; "" means "Y"
}

// ringDefaults fills defaults shared by the revolved generators
func ringDefaults(args *Args, axis *string, origin *[]float64) (err error) {
	args.Defaults()
	if *axis == "" {
		*axis = "Y"
	}
	if len(*origin) == 0 {
		*origin = []float64{0, 0, 0}
	}
	if len(*origin) != 3 {
		return chk.Err("invalid origin %v: must have 3 components", *origin)
	}
	return
}

// Ring generates one ring of Nquads quadrilaterals between radii Rin and
// Rout, revolved about the given axis. The first Nquads nodes sit at the
// inner radius and the next Nquads at the outer radius, equally spaced by
// 2π/Nquads. Each element's corners are ordered (inner-current,
// inner-next, outer-next, outer-current); sector Nquads wraps to 1.
func Ring(a *RingArgs) (o *Mesh, err error) {

	// defaults and validation
	if err = ringDefaults(&a.Args, &a.Axis, &a.Origin); err != nil {
		return nil, err
	}
	if a.Nquads < 1 {
		return nil, chk.Err("invalid number of sectors %d for ring mesh: must be at least 1", a.Nquads)
	}
	o, err = NewMesh(&a.Args)
	if err != nil {
		return nil, err
	}
	nprefix, nnum, _ := SplitName(a.StartNode)
	_, enum, _ := SplitName(a.StartElem)
	noff := nnum - 1
	eoff := enum - 1

	// nodes: inner radius first, then outer radius
	n := a.Nquads
	theta := 2 * math.Pi / float64(n)
	for i := 1; i <= 2*n; i++ {
		r := a.Rin
		angle := theta * float64(i-1)
		if i > n {
			r = a.Rout
			angle = theta * float64(i-n-1)
		}
		x, y, z, e := AxisToGlobal(r, angle, 0, a.Axis, a.Origin)
		if e != nil {
			return nil, e
		}
		o.SetNode(NewNode(io.Sf("%s%d", nprefix, i+noff), x, y, z))
	}

	// elements: one per sector
	name := func(i int) *Node { return o.Nodes[io.Sf("%s%d", nprefix, i+noff)] }
	for i := 1; i <= n; i++ {
		next := i + 1
		if i == n {
			next = 1
		}
		o.AddQuad(io.Sf("Q%d", i+eoff), KindQuad,
			name(i), name(next), name(next+n), name(i+n))
	}

	o.finish()
	return o, nil
}

// TransRingArgs holds the input for a transition ring which triples the
// number of circumferential sectors between its inner and outer edges
type TransRingArgs struct {
	Args
	Rin    float64   `json:"rin"`    // inner radius
	Rout   float64   `json:"rout"`   // outer radius
	Nquads int       `json:"nquads"` // number of sectors at the inner edge
	Origin []float64 `json:"origin"` // center of the ring; nil means {0,0,0}
	Axis   string    `json:"axis"`   // revolution axis: "X", "Y" or "Z"; "" means "Y"
}

// TransRing generates a ring whose outer edge carries three times the
// sectors of its inner edge. With n inner sectors the layout is: n nodes
// at Rin, 2n interleaved nodes at the midpoint radius (Rin+Rout)/2 and 3n
// nodes at Rout; n inner quads plus 3n transition quads, 4n in total. The
// middle nodes sit only at outer-sector boundaries interior to an inner
// sector, so the quads at inner-sector boundaries reach down to the inner
// nodes.
func TransRing(a *TransRingArgs) (o *Mesh, err error) {

	// defaults and validation
	if err = ringDefaults(&a.Args, &a.Axis, &a.Origin); err != nil {
		return nil, err
	}
	if a.Nquads < 1 {
		return nil, chk.Err("invalid number of sectors %d for transition ring mesh: must be at least 1", a.Nquads)
	}
	o, err = NewMesh(&a.Args)
	if err != nil {
		return nil, err
	}
	nprefix, nnum, _ := SplitName(a.StartNode)
	_, enum, _ := SplitName(a.StartElem)
	noff := nnum - 1
	eoff := enum - 1

	// radii and angles
	n := a.Nquads
	r1 := a.Rin
	r2 := (a.Rin + a.Rout) / 2
	r3 := a.Rout
	theta1 := 2 * math.Pi / float64(n)
	theta2 := 2 * math.Pi / float64(3*n)

	// nodes: n at the inner radius, 2n interleaved at the middle radius
	// (angles 1,2, 4,5, 7,8, ... in units of theta2) and 3n at the outer
	angle := 0.0
	for i := 1; i <= 6*n; i++ {
		var r float64
		switch {
		case i <= n:
			r = r1
			angle = theta1 * float64(i-1)
		case i <= 3*n:
			r = r2
			switch {
			case i-n == 1:
				angle = theta2
			case (i-n)%2 == 0:
				angle += theta2
			default:
				angle += 2 * theta2
			}
		default:
			r = r3
			angle = theta2 * float64(i-3*n-1)
		}
		x, y, z, e := AxisToGlobal(r, angle, 0, a.Axis, a.Origin)
		if e != nil {
			return nil, e
		}
		o.SetNode(NewNode(io.Sf("%s%d", nprefix, i+noff), x, y, z))
	}

	// elements. the first n quads each span one inner sector against the
	// two middle nodes interior to it. the remaining 3n quads repeat a
	// period-3 pattern per inner sector: one quad reaching down to the
	// inner node at the sector boundary, one quad between the middle pair
	// and the outer edge, and one quad reaching down to the inner node at
	// the next boundary.
	name := func(i int) *Node { return o.Nodes[io.Sf("%s%d", nprefix, i+noff)] }
	for i := 1; i <= 4*n; i++ {
		var ii, jj, mm, nn int
		k := 0
		if i > n {
			k = (i - n - 1) / 3
		}
		switch {
		case i <= n:
			ii = i
			jj = i + 1
			if i == n {
				jj = 1
			}
			mm = 2*i + n
			nn = 2*i + n - 1
		case (i-n)%3 == 1:
			ii = 1 + k
			jj = i - k
			mm = i + 2*n + 1
			nn = i + 2*n
		case (i-n)%3 == 2:
			ii = i - 1 - k
			jj = i - k
			mm = i + 2*n + 1
			nn = i + 2*n
		default:
			ii = i - 1 - k
			jj = 2 + k
			mm = i + 2*n + 1
			nn = i + 2*n
			if i == 4*n {
				jj = 1
				mm = 1 + 3*n
			}
		}
		o.AddQuad(io.Sf("Q%d", i+eoff), KindQuad, name(ii), name(jj), name(mm), name(nn))
	}

	o.finish()
	return o, nil
}

// CylRingArgs holds the input for a single cylindrical ring
type CylRingArgs struct {
	Args
	Radius float64   `json:"radius"` // radius of the ring
	Height float64   `json:"height"` // height of the ring along the axis
	Nquads int       `json:"nquads"` // number of circumferential sectors
	Origin []float64 `json:"origin"` // center of the base of the ring; nil means {0,0,0}
	Axis   string    `json:"axis"`   // revolution axis: "X", "Y" or "Z"; "" means "Y"
	Kind   string    `json:"kind"`   // element kind: "Quad" or "Rect"; "" means "Quad"
}

// CylRing generates one cylindrical ring of Nquads quadrilaterals between
// the base plane and base+Height along the revolution axis. The first
// Nquads nodes sit on the base circle and the next Nquads on the top
// circle; corners are ordered (bottom-current, bottom-next, top-next,
// top-current).
func CylRing(a *CylRingArgs) (o *Mesh, err error) {

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
		return nil, chk.Err("invalid number of sectors %d for cylinder ring mesh: must be at least 1", a.Nquads)
	}
	o, err = NewMesh(&a.Args)
	if err != nil {
		return nil, err
	}
	nprefix, nnum, _ := SplitName(a.StartNode)
	_, enum, _ := SplitName(a.StartElem)
	noff := nnum - 1
	eoff := enum - 1

	// nodes: base circle first, then top circle
	n := a.Nquads
	theta := 2 * math.Pi / float64(n)
	for i := 1; i <= 2*n; i++ {
		h := 0.0
		angle := theta * float64(i-1)
		if i > n {
			h = a.Height
			angle = theta * float64(i-n-1)
		}
		x, y, z, e := AxisToGlobal(a.Radius, angle, h, a.Axis, a.Origin)
		if e != nil {
			return nil, e
		}
		o.SetNode(NewNode(io.Sf("%s%d", nprefix, i+noff), x, y, z))
	}

	// elements: one per sector
	name := func(i int) *Node { return o.Nodes[io.Sf("%s%d", nprefix, i+noff)] }
	for i := 1; i <= n; i++ {
		next := i + 1
		if i == n {
			next = 1
		}
		o.AddQuad(io.Sf("%s%d", eprefix, i+eoff), a.Kind,
			name(i), name(next), name(next+n), name(i+n))
	}

	o.finish()
	return o, nil
}
