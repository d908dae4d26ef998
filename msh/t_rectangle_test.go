// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_rect01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rect01. uniform 4 x 2 rectangle")

	o, err := Rectangle(&RectArgs{Size: 1, Width: 4, Height: 2})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("nodes = %d  elems = %d\n", len(o.Nodes), len(o.Elems))
	chk.IntAssert(len(o.Nodes), 15)
	chk.IntAssert(len(o.Elems), 8)
	chk.IntAssert(len(o.Nord), 15)
	chk.IntAssert(len(o.Eord), 8)
	chk.String(tst, o.LastNode, "N15")
	chk.String(tst, o.LastElem, "Q8")

	// row-major numbering from the bottom row
	chk.Array(tst, "N1", 1e-17, []float64{o.Nodes["N1"].X, o.Nodes["N1"].Y, o.Nodes["N1"].Z}, []float64{0, 0, 0})
	chk.Array(tst, "N7", 1e-17, []float64{o.Nodes["N7"].X, o.Nodes["N7"].Y, o.Nodes["N7"].Z}, []float64{1, 1, 0})
	chk.Array(tst, "N15", 1e-17, []float64{o.Nodes["N15"].X, o.Nodes["N15"].Y, o.Nodes["N15"].Z}, []float64{4, 2, 0})

	// counter-clockwise corners of the first element
	q1 := o.Elems["Q1"]
	chk.String(tst, q1.I.Name, "N1")
	chk.String(tst, q1.J.Name, "N2")
	chk.String(tst, q1.M.Name, "N7")
	chk.String(tst, q1.N.Name, "N6")
	chk.Float64(tst, "Q1 width", 1e-15, q1.Width(), 1)
	chk.Float64(tst, "Q1 height", 1e-15, q1.Height(), 1)

	// elements reference registry records, not copies
	if q1.I != o.Nodes["N1"] || q1.M != o.Nodes["N7"] {
		tst.Errorf("element corners must point at registry nodes\n")
		return
	}
}

func Test_rect02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rect02. control points, plane and start names")

	o, err := Rectangle(&RectArgs{
		Args:     Args{T: 0.2, E: 30e6, Nu: 0.3, StartNode: "N10", StartElem: "Q5"},
		Size:     1,
		Width:    3,
		Height:   2,
		Origin:   []float64{0, 0, 1},
		Plane:    "XZ",
		Kind:     KindRect,
		Xcontrol: []float64{1.5},
	})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// x runs 0, 0.75, 1.5, 2.25, 3 because of the control point at 1.5
	chk.IntAssert(len(o.Nodes), 15)
	chk.IntAssert(len(o.Elems), 8)
	chk.String(tst, o.Nord[0], "N10")
	chk.String(tst, o.Eord[0], "R5")
	chk.String(tst, o.LastNode, "N24")
	chk.String(tst, o.LastElem, "R12")

	// XZ plane: local x maps onto global X, local y onto global Z
	n11 := o.Nodes["N11"]
	chk.Float64(tst, "N11.X", 1e-15, n11.X, 0.75)
	chk.Float64(tst, "N11.Y", 1e-15, n11.Y, 0)
	chk.Float64(tst, "N11.Z", 1e-15, n11.Z, 1)

	// material parameters propagate to every element
	r5 := o.Elems["R5"]
	chk.Float64(tst, "T", 1e-17, r5.T, 0.2)
	chk.Float64(tst, "E", 1e-17, r5.E, 30e6)
	chk.Float64(tst, "Nu", 1e-17, r5.Nu, 0.3)
	chk.Float64(tst, "Kxmod", 1e-17, r5.Kxmod, 1)
}

func Test_rect03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rect03. openings")

	// one cell cut, all of its nodes shared with neighbours
	a := &RectArgs{Size: 1, Width: 4, Height: 4}
	a.AddOpening("small", 1, 1, 1, 1)
	o, err := Rectangle(a)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(o.Nodes), 25)
	chk.IntAssert(len(o.Elems), 15)

	// 2 x 2 cut: the centre node is strictly inside and goes away
	a = &RectArgs{Size: 1, Width: 4, Height: 4}
	a.AddOpening("big", 1, 1, 2, 2)
	o, err = Rectangle(a)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(o.Nodes), 24)
	chk.IntAssert(len(o.Elems), 12)
	if _, ok := o.Nodes["N13"]; ok {
		tst.Errorf("node inside the opening must be removed\n")
		return
	}

	// corner cut: the corner node is orphaned and swept away
	a = &RectArgs{Size: 1, Width: 4, Height: 4}
	a.AddOpening("corner", 0, 0, 1, 1)
	o, err = Rectangle(a)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(o.Nodes), 24)
	chk.IntAssert(len(o.Elems), 15)
	if _, ok := o.Nodes["N1"]; ok {
		tst.Errorf("orphaned corner node must be removed\n")
		return
	}
	if _, ok := o.Elems["Q1"]; ok {
		tst.Errorf("corner element must be removed\n")
		return
	}
}

func Test_rect04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rect04. invalid input")

	if _, err := Rectangle(&RectArgs{Size: 1, Width: 4, Height: 2, Plane: "AB"}); err == nil {
		tst.Errorf("invalid plane must fail\n")
		return
	}
	if _, err := Rectangle(&RectArgs{Size: 1, Width: 4, Height: 2, Kind: "Tri"}); err == nil {
		tst.Errorf("invalid kind must fail\n")
		return
	}
	if _, err := Rectangle(&RectArgs{Args: Args{StartNode: "25"}, Size: 1, Width: 4, Height: 2}); err == nil {
		tst.Errorf("invalid start node must fail\n")
		return
	}
	if _, err := Rectangle(&RectArgs{Size: 1, Width: 4, Height: 2, Origin: []float64{0, 0}}); err == nil {
		tst.Errorf("invalid origin must fail\n")
		return
	}
}
