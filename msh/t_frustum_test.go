// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_frustum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frustum01. conical shell between two radii")

	o, err := Frustum(&FrustumArgs{Size: 0.5, Rlarge: 2, Rsmall: 1, Height: 5})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("nodes = %d  elems = %d\n", len(o.Nodes), len(o.Elems))

	// the underlying annulus has two rings of 12 sectors
	chk.IntAssert(len(o.Nodes), 36)
	chk.IntAssert(len(o.Elems), 24)

	// the base circle stays on the base plane, the small circle sits a
	// full Height away and the shared middle circle lands in between
	chk.Array(tst, "N1", 1e-14, []float64{o.Nodes["N1"].X, o.Nodes["N1"].Y, o.Nodes["N1"].Z}, []float64{1, -5, 0})
	chk.Array(tst, "N13", 1e-14, []float64{o.Nodes["N13"].X, o.Nodes["N13"].Y, o.Nodes["N13"].Z}, []float64{1.5, -2.5, 0})
	chk.Array(tst, "N25", 1e-14, []float64{o.Nodes["N25"].X, o.Nodes["N25"].Y, o.Nodes["N25"].Z}, []float64{2, 0, 0})

	// the axial displacement is a linear function of each node's radius
	for _, key := range o.Nord {
		nod := o.Nodes[key]
		r, e := AxisRadius(nod.X, nod.Y, nod.Z, "Y", []float64{0, 0, 0})
		if e != nil {
			tst.Errorf("test failed:\n%v", e)
			return
		}
		chk.Float64(tst, io.Sf("y(%s)", key), 1e-13, nod.Y, (r-2)/(2-1)*5)
	}

	// merged ring boundaries stay merged after the displacement
	q13 := o.Elems["Q13"]
	if q13.I != o.Nodes[q13.I.Name] || q13.I != o.Elems["Q1"].N {
		tst.Errorf("boundary node must be shared between rings\n")
		return
	}

	if chk.Verbose {
		o.Draw("/tmp/pynite", "test_frustum01", nil)
	}
}

func Test_frustum02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frustum02. axis X with shifted origin")

	o, err := Frustum(&FrustumArgs{Size: 1, Rlarge: 4, Rsmall: 2, Height: 3, Origin: []float64{10, 0, 0}, Axis: "X"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// every node obeys the cone equation about the shifted axis
	for _, key := range o.Nord {
		nod := o.Nodes[key]
		r, e := AxisRadius(nod.X, nod.Y, nod.Z, "X", []float64{10, 0, 0})
		if e != nil {
			tst.Errorf("test failed:\n%v", e)
			return
		}
		chk.Float64(tst, io.Sf("x(%s)", key), 1e-13, nod.X, 10+(r-4)/(4-2)*3)
	}
}
