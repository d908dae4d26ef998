// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/plt"
)

// Draw plots a 3D wireframe of the mesh elements. If fnkey is not empty,
// the figure is saved to dirout/fnkey. args may be nil.
func (o *Mesh) Draw(dirout, fnkey string, args *plt.A) {
	if args == nil {
		args = &plt.A{C: "#4f688d", Lw: 0.7, NoClip: true}
	}
	X := make([]float64, 5)
	Y := make([]float64, 5)
	Z := make([]float64, 5)
	for _, key := range o.Eord {
		e := o.Elems[key]
		for k, nod := range []*Node{e.I, e.J, e.M, e.N, e.I} {
			X[k], Y[k], Z[k] = nod.X, nod.Y, nod.Z
		}
		plt.Plot3dLine(X, Y, Z, args)
	}
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
}
