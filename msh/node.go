// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh generates the node/element topology of planar and revolved
// finite element meshes: structured rectangular grids with rectangular
// openings, and radially/axially swept ring meshes (annuli, cylinders,
// frustums) with an adaptive 1:3 circumferential transition
package msh

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Node is one mesh vertex in the global coordinate system. A node is owned
// by the mesh that created it; elements hold non-owning references.
type Node struct {
	Name    string  // unique name: one letter followed by a number; e.g. "N25"
	X, Y, Z float64 // global coordinates
}

// NewNode returns a new node
func NewNode(name string, x, y, z float64) *Node {
	return &Node{name, x, y, z}
}

// DistTo returns the distance from this node to another one
func (o *Node) DistTo(p *Node) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String returns a JSON representation of *Node
func (o *Node) String() string {
	return io.Sf("{\"name\":%q, \"c\":[%23.15e, %23.15e, %23.15e] }", o.Name, o.X, o.Y, o.Z)
}
