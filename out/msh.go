// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out converts generated meshes into the (.msh) vertex/cell
// format consumed by FE analysis codes
package out

import (
	"bytes"

	"github.com/piotrowerko/PyNite/msh"

	"github.com/cpmech/gosl/io"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type; always "qua4"
	Verts []int  `json:"verts"` // vertices
}

// Msh holds mesh data in (.msh) format
type Msh struct {
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells
}

// FromMesh converts a generated mesh. Vertices take consecutive ids in the
// mesh's insertion order and cells reference them by id, so the conversion
// is deterministic.
func FromMesh(m *msh.Mesh) (o *Msh) {
	o = new(Msh)
	ids := make(map[string]int)
	for i, key := range m.Nord {
		nod := m.Nodes[key]
		ids[key] = i
		o.Verts = append(o.Verts, &Vert{Id: i, Tag: 0, C: []float64{nod.X, nod.Y, nod.Z}})
	}
	for i, key := range m.Eord {
		e := m.Elems[key]
		o.Cells = append(o.Cells, &Cell{Id: i, Tag: -1, Type: "qua4",
			Verts: []int{ids[e.I.Name], ids[e.J.Name], ids[e.M.Name], ids[e.N.Name]}})
	}
	return
}

// Save writes a (.msh) file to dirout
func (o *Msh) Save(dirout, fnkey string) {
	var buf bytes.Buffer
	io.Ff(&buf, "%v\n", o)
	io.WriteFileVD(dirout, fnkey+".msh", &buf)
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%2d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Msh
func (o *Msh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
