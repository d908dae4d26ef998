// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RectOpening is an axis-aligned rectangular opening in the local system
// of a rectangular mesh. It is consumed during generation only.
type RectOpening struct {
	Xleft  float64 `json:"xleft"`  // x-coordinate of the left side
	Ybott  float64 `json:"ybott"`  // y-coordinate of the bottom side
	Width  float64 `json:"width"`  // width of the opening
	Height float64 `json:"height"` // height of the opening
}

// RectArgs holds the input for rectangular mesh generation
type RectArgs struct {

	// input data
	Args
	Size     float64   `json:"size"`     // target element size
	Width    float64   `json:"width"`    // overall width, along the local x-axis
	Height   float64   `json:"height"`   // overall height, along the local y-axis
	Origin   []float64 `json:"origin"`   // origin of the local system; nil means {0,0,0}
	Plane    string    `json:"plane"`    // plane the mesh is parallel to: "XY", "YZ" or "XZ"; "" means "XY"
	Kind     string    `json:"kind"`     // element kind: "Quad" or "Rect"; "" means "Quad"
	Xcontrol []float64 `json:"xcontrol"` // control points along the local x-axis
	Ycontrol []float64 `json:"ycontrol"` // control points along the local y-axis

	// openings
	Openings map[string]*RectOpening `json:"openings"` // rectangular openings by name
}

// AddOpening declares a rectangular opening and appends its boundary
// coordinates to the control point lists, so grid lines land exactly on
// the opening's edges before its interior is cut away
func (o *RectArgs) AddOpening(name string, xLeft, yBott, width, height float64) {
	if o.Openings == nil {
		o.Openings = make(map[string]*RectOpening)
	}
	o.Openings[name] = &RectOpening{xLeft, yBott, width, height}
	o.Xcontrol = append(o.Xcontrol, xLeft, xLeft+width)
	o.Ycontrol = append(o.Ycontrol, yBott, yBott+height)
}

// Rectangle generates a structured grid of quadrilaterals over a 2D
// rectangular domain and cuts away the declared openings. Nodes and
// elements are numbered row-major from the bottom row, offset by the
// integer suffixes of the start names. Construction is all-or-nothing: on
// error no partially populated mesh is returned.
func Rectangle(a *RectArgs) (o *Mesh, err error) {

	// defaults
	a.Args.Defaults()
	if a.Plane == "" {
		a.Plane = "XY"
	}
	if a.Kind == "" {
		a.Kind = KindQuad
	}
	if len(a.Origin) == 0 {
		a.Origin = []float64{0, 0, 0}
	}
	if len(a.Origin) != 3 {
		return nil, chk.Err("invalid origin %v: must have 3 components", a.Origin)
	}

	// validation
	eprefix, err := KindPrefix(a.Kind)
	if err != nil {
		return nil, err
	}
	o, err = NewMesh(&a.Args)
	if err != nil {
		return nil, err
	}
	nprefix, nnum, _ := SplitName(a.StartNode)
	_, enum, _ := SplitName(a.StartElem)
	noff := nnum - 1
	eoff := enum - 1

	// grid coordinates along both directions. opening boundaries are
	// folded into the control points so openings declared directly on the
	// args (e.g. read from an input file) get their grid lines too.
	xc := a.Xcontrol
	yc := a.Ycontrol
	for _, opng := range a.Openings {
		xc = append(xc, opng.Xleft, opng.Xleft+opng.Width)
		yc = append(yc, opng.Ybott, opng.Ybott+opng.Height)
	}
	xs := GridCoords(MergeControl(a.Width, xc), a.Size)
	ys := GridCoords(MergeControl(a.Height, yc), a.Size)
	ncols := len(xs) - 1
	nrows := len(ys) - 1

	// nodes, row-major from the bottom row
	num := 1
	for _, yy := range ys {
		for _, xx := range xs {
			x, y, z, e := PlaneToGlobal(xx, yy, a.Plane, a.Origin)
			if e != nil {
				return nil, e
			}
			o.SetNode(NewNode(io.Sf("%s%d", nprefix, num+noff), x, y, z))
			num++
		}
	}

	// elements, row-major, counter-clockwise from the bottom-left corner
	num = 1
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			i := r*(ncols+1) + c + 1
			j := i + 1
			m := j + ncols + 1
			n := m - 1
			o.AddQuad(io.Sf("%s%d", eprefix, num+eoff), a.Kind,
				o.Nodes[io.Sf("%s%d", nprefix, i+noff)],
				o.Nodes[io.Sf("%s%d", nprefix, j+noff)],
				o.Nodes[io.Sf("%s%d", nprefix, m+noff)],
				o.Nodes[io.Sf("%s%d", nprefix, n+noff)])
			num++
		}
	}

	// cut openings
	if len(a.Openings) > 0 {
		if err = cutOpenings(o, a); err != nil {
			return nil, err
		}
	}

	o.finish()
	return o, nil
}

// cutOpenings removes nodes strictly inside any opening, elements whose
// four corners fall inclusively within any opening, and finally any node
// left unreferenced by the surviving elements. The two containment senses
// differ on purpose: boundary nodes stay reusable by surrounding elements
// while elements flush with an opening boundary are still cut.
func cutOpenings(o *Mesh, a *RectArgs) (err error) {

	// nodes strictly inside an opening
	var delNodes []string
	for _, key := range o.Nord {
		nod := o.Nodes[key]
		u, v, e := PlaneToLocal(nod.X, nod.Y, nod.Z, a.Plane, a.Origin)
		if e != nil {
			return e
		}
		for _, opng := range a.Openings {
			if Rnd(u) > Rnd(opng.Xleft) && Rnd(u) < Rnd(opng.Xleft+opng.Width) &&
				Rnd(v) > Rnd(opng.Ybott) && Rnd(v) < Rnd(opng.Ybott+opng.Height) {
				delNodes = append(delNodes, key)
				break
			}
		}
	}

	// elements inclusively within an opening. the element's bounding
	// rectangle comes from its n (top-left) and j (bottom-right) corners
	var delElems []string
	for _, key := range o.Eord {
		ele := o.Elems[key]
		left, top, e := PlaneToLocal(ele.N.X, ele.N.Y, ele.N.Z, a.Plane, a.Origin)
		if e != nil {
			return e
		}
		right, bott, e := PlaneToLocal(ele.J.X, ele.J.Y, ele.J.Z, a.Plane, a.Origin)
		if e != nil {
			return e
		}
		for _, opng := range a.Openings {
			if Rnd(opng.Ybott+opng.Height) >= Rnd(top) && Rnd(opng.Ybott) <= Rnd(bott) &&
				Rnd(opng.Xleft) <= Rnd(left) && Rnd(opng.Xleft+opng.Width) >= Rnd(right) {
				delElems = append(delElems, key)
				break
			}
		}
	}

	o.DelElems(delElems)
	o.DelNodes(delNodes)
	o.DelOrphans()
	return
}
