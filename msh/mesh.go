// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"strconv"
	"unicode"

	"github.com/cpmech/gosl/chk"
)

// Args holds the construction parameters shared by every mesh generator
type Args struct {
	T         float64 `json:"t"`         // element thickness
	E         float64 `json:"E"`         // Young's modulus
	Nu        float64 `json:"nu"`        // Poisson's ratio
	Kxmod     float64 `json:"kxmod"`     // local x stiffness modification factor; 0 means 1
	Kymod     float64 `json:"kymod"`     // local y stiffness modification factor; 0 means 1
	StartNode string  `json:"startnode"` // name of the first node; "" means "N1"
	StartElem string  `json:"startelem"` // name of the first element; "" means "Q1"
}

// Defaults fills zero-valued optional parameters
func (o *Args) Defaults() {
	if o.Kxmod == 0 {
		o.Kxmod = 1
	}
	if o.Kymod == 0 {
		o.Kymod = 1
	}
	if o.StartNode == "" {
		o.StartNode = "N1"
	}
	if o.StartElem == "" {
		o.StartElem = "Q1"
	}
}

// withStart returns a copy of the shared parameters with new start names
func (o Args) withStart(startNode, startElem string) Args {
	o.StartNode = startNode
	o.StartElem = startElem
	return o
}

// SplitName splits a node or element name into its one-letter prefix and
// positive integer suffix; e.g. "N25" yields "N" and 25
func SplitName(name string) (prefix string, num int, err error) {
	if len(name) < 2 || !unicode.IsLetter(rune(name[0])) {
		return "", 0, chk.Err("invalid name %q: must be one letter followed by a number (e.g. \"N25\")", name)
	}
	num, e := strconv.Atoi(name[1:])
	if e != nil || num < 1 {
		return "", 0, chk.Err("invalid name %q: must be one letter followed by a number (e.g. \"N25\")", name)
	}
	return name[:1], num, nil
}

// Mesh owns the node and element registries produced by one generator,
// together with the material and numbering parameters shared by all of its
// elements. Registries are populated once during generation; afterwards
// only the sweep orchestrators mutate them, by merging sub-meshes.
type Mesh struct {

	// material and numbering parameters
	T         float64 // element thickness
	E         float64 // Young's modulus
	Nu        float64 // Poisson's ratio
	Kxmod     float64 // local x stiffness modification factor
	Kymod     float64 // local y stiffness modification factor
	StartNode string  // name of the first node
	StartElem string  // name of the first element

	// registries
	Nodes map[string]*Node // node name => node record
	Elems map[string]*Elem // element name => element record
	Nord  []string         // node names in insertion order
	Eord  []string         // element names in insertion order

	// derived
	LastNode string // name of the last node generated
	LastElem string // name of the last element generated
}

// NewMesh returns an empty mesh with validated construction parameters.
// Malformed start names fail before any generation work occurs.
func NewMesh(a *Args) (o *Mesh, err error) {
	a.Defaults()
	if _, _, err = SplitName(a.StartNode); err != nil {
		return nil, err
	}
	if _, _, err = SplitName(a.StartElem); err != nil {
		return nil, err
	}
	o = &Mesh{
		T:         a.T,
		E:         a.E,
		Nu:        a.Nu,
		Kxmod:     a.Kxmod,
		Kymod:     a.Kymod,
		StartNode: a.StartNode,
		StartElem: a.StartElem,
		Nodes:     make(map[string]*Node),
		Elems:     make(map[string]*Elem),
	}
	return
}

// registry ////////////////////////////////////////////////////////////////////////////////////////

// SetNode adds a node to the registry
func (o *Mesh) SetNode(nod *Node) {
	if _, ok := o.Nodes[nod.Name]; !ok {
		o.Nord = append(o.Nord, nod.Name)
	}
	o.Nodes[nod.Name] = nod
}

// SetElem adds an element to the registry
func (o *Mesh) SetElem(ele *Elem) {
	if _, ok := o.Elems[ele.Name]; !ok {
		o.Eord = append(o.Eord, ele.Name)
	}
	o.Elems[ele.Name] = ele
}

// AddQuad creates an element from four registry nodes with the mesh's
// shared material parameters
func (o *Mesh) AddQuad(name, kind string, i, j, m, n *Node) {
	o.SetElem(&Elem{Name: name, Kind: kind, I: i, J: j, M: m, N: n,
		T: o.T, E: o.E, Nu: o.Nu, Kxmod: o.Kxmod, Kymod: o.Kymod})
}

// DelNodes removes the named nodes from the registry
func (o *Mesh) DelNodes(names []string) {
	if len(names) == 0 {
		return
	}
	del := make(map[string]bool)
	for _, name := range names {
		del[name] = true
		delete(o.Nodes, name)
	}
	keep := o.Nord[:0]
	for _, key := range o.Nord {
		if !del[key] {
			keep = append(keep, key)
		}
	}
	o.Nord = keep
}

// DelElems removes the named elements from the registry
func (o *Mesh) DelElems(names []string) {
	if len(names) == 0 {
		return
	}
	del := make(map[string]bool)
	for _, name := range names {
		del[name] = true
		delete(o.Elems, name)
	}
	keep := o.Eord[:0]
	for _, key := range o.Eord {
		if !del[key] {
			keep = append(keep, key)
		}
	}
	o.Eord = keep
}

// DelOrphans removes every node not referenced by any element
func (o *Mesh) DelOrphans() {
	ref := make(map[string]bool)
	for _, key := range o.Eord {
		e := o.Elems[key]
		ref[e.I.Name] = true
		ref[e.J.Name] = true
		ref[e.M.Name] = true
		ref[e.N.Name] = true
	}
	var del []string
	for _, key := range o.Nord {
		if !ref[key] {
			del = append(del, key)
		}
	}
	o.DelNodes(del)
}

// Merge copies the nodes and elements of sub into this mesh, in sub's
// insertion order. Nodes whose names already exist are canonicalized: the
// earlier record survives, and every element of sub referencing a
// duplicate is repointed to the canonical record.
func (o *Mesh) Merge(sub *Mesh) {
	for _, key := range sub.Nord {
		if _, ok := o.Nodes[key]; !ok {
			o.SetNode(sub.Nodes[key])
		}
	}
	for _, key := range sub.Eord {
		e := sub.Elems[key]
		e.I = o.Nodes[e.I.Name]
		e.J = o.Nodes[e.J.Name]
		e.M = o.Nodes[e.M.Name]
		e.N = o.Nodes[e.N.Name]
		o.SetElem(e)
	}
}

// finish records the names of the last node and element generated
func (o *Mesh) finish() {
	if len(o.Nord) > 0 {
		o.LastNode = o.Nord[len(o.Nord)-1]
	}
	if len(o.Eord) > 0 {
		o.LastElem = o.Eord[len(o.Eord)-1]
	}
}
