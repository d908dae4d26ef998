// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_cyl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cyl01. cylinder with derived sector count")

	a := &CylinderArgs{Size: 0.5, Radius: 1, Height: 2}
	o, err := Cylinder(a)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("nquads = %d  nodes = %d  elems = %d\n", a.Nquads, len(o.Nodes), len(o.Elems))

	// round(2*pi*1/0.5) = 13 sectors, 4 rings of height 0.5
	chk.IntAssert(a.Nquads, 13)
	chk.IntAssert(len(o.Nodes), 65)
	chk.IntAssert(len(o.Elems), 52)
	chk.String(tst, o.LastNode, "N65")
	chk.String(tst, o.LastElem, "Q52")

	// every node sits on the cylinder surface
	for _, key := range o.Nord {
		nod := o.Nodes[key]
		r, e := AxisRadius(nod.X, nod.Y, nod.Z, "Y", []float64{0, 0, 0})
		if e != nil {
			tst.Errorf("test failed:\n%v", e)
			return
		}
		chk.Float64(tst, io.Sf("r(%s)", key), 1e-14, r, 1)
		if Rnd(nod.Y) < 0 || Rnd(nod.Y) > Rnd(2.0) {
			tst.Errorf("node %s outside the cylinder height\n", key)
			return
		}
	}

	// ring boundaries share node records
	q14 := o.Elems["Q14"]
	chk.String(tst, q14.I.Name, "N14")
	if q14.I != o.Nodes["N14"] || q14.I != o.Elems["Q1"].N {
		tst.Errorf("boundary node must be shared between stacked rings\n")
		return
	}

	// the base circle sits on the origin's plane
	chk.Float64(tst, "N1.Y", 1e-17, o.Nodes["N1"].Y, 0)
	chk.Float64(tst, "N14.Y", 1e-15, o.Nodes["N14"].Y, 0.5)
	chk.Float64(tst, "N65.Y", 1e-15, o.Nodes["N65"].Y, 2)
}

func Test_cyl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cyl02. explicit sectors, axis Z and rectangular kind")

	o, err := Cylinder(&CylinderArgs{
		Size:   1,
		Radius: 2,
		Height: 2,
		Nquads: 8,
		Origin: []float64{1, 1, 1},
		Axis:   "Z",
		Kind:   KindRect,
	})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(o.Nodes), 24)
	chk.IntAssert(len(o.Elems), 16)
	chk.String(tst, o.Eord[0], "R1")
	chk.String(tst, o.LastElem, "R16")

	// axis Z: the sweep displaces the z coordinate
	chk.Float64(tst, "N1.Z", 1e-17, o.Nodes["N1"].Z, 1)
	chk.Float64(tst, "N9.Z", 1e-15, o.Nodes["N9"].Z, 2)
	chk.Float64(tst, "N17.Z", 1e-15, o.Nodes["N17"].Z, 3)
	for _, key := range o.Nord {
		nod := o.Nodes[key]
		r, e := AxisRadius(nod.X, nod.Y, nod.Z, "Z", []float64{1, 1, 1})
		if e != nil {
			tst.Errorf("test failed:\n%v", e)
			return
		}
		chk.Float64(tst, io.Sf("r(%s)", key), 1e-14, r, 2)
	}
}

func Test_cyl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cyl03. invalid input")

	if _, err := Cylinder(&CylinderArgs{Size: 1, Radius: 1, Height: 2, Kind: "Tri"}); err == nil {
		tst.Errorf("invalid kind must fail\n")
		return
	}
	if _, err := Cylinder(&CylinderArgs{Size: 1, Radius: 1, Height: 2, Axis: "B"}); err == nil {
		tst.Errorf("invalid axis must fail\n")
		return
	}
	if _, err := Cylinder(&CylinderArgs{Size: 1, Radius: 1, Height: 2, Origin: []float64{0}}); err == nil {
		tst.Errorf("invalid origin must fail\n")
		return
	}
}
