// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// element kinds
const (
	KindQuad = "Quad" // general bilinear (isoparametric) quadrilateral
	KindRect = "Rect" // axis-aligned rectangular plate
)

// KindPrefix returns the element naming prefix corresponding to kind
func KindPrefix(kind string) (prefix string, err error) {
	switch kind {
	case KindQuad:
		return "Q", nil
	case KindRect:
		return "R", nil
	}
	return "", chk.Err("invalid element kind %q; options are %q or %q", kind, KindQuad, KindRect)
}

// Resulter provides the internal force fields of a solved element. It is
// implemented by the external element formulation once the global system
// has been solved; this package only consumes it.
type Resulter interface {
	Combos() []string                            // names of load combinations carrying results
	Shear(x, y float64, combo string) la.Vector  // {Qx, Qy} at a local point
	Moment(x, y float64, combo string) la.Vector // {Mx, My, Mxy} at a local point
}

// Elem is one quadrilateral element. The four corner references follow a
// counter-clockwise winding starting from the "first" corner and are
// non-owning: the registry of the mesh holding the element owns the nodes,
// which must outlive every element referencing them.
type Elem struct {

	// input data
	Name         string  // unique name; e.g. "Q13"
	Kind         string  // "Quad" or "Rect"
	I, J, M, N   *Node   // corner nodes, counter-clockwise
	T            float64 // thickness
	E            float64 // Young's modulus
	Nu           float64 // Poisson's ratio
	Kxmod, Kymod float64 // local x and y stiffness modification factors

	// set by the external solver
	Res Resulter // solved results; nil until the model is solved
}

// Width returns the length of the i-j side (the local x dimension of Rect elements)
func (o *Elem) Width() float64 { return o.I.DistTo(o.J) }

// Height returns the length of the j-m side (the local y dimension of Rect elements)
func (o *Elem) Height() float64 { return o.J.DistTo(o.M) }

// String returns a JSON representation of *Elem
func (o *Elem) String() string {
	return io.Sf("{\"name\":%q, \"kind\":%q, \"verts\":[%q, %q, %q, %q] }",
		o.Name, o.Kind, o.I.Name, o.J.Name, o.M.Name, o.N.Name)
}
