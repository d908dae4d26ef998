// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// FrustumArgs holds the input for a conical shell (frustum) mesh
type FrustumArgs struct {
	Args
	Size   float64   `json:"size"`   // target element size
	Rlarge float64   `json:"rlarge"` // radius at the base of the cone
	Rsmall float64   `json:"rsmall"` // radius at the top of the cone
	Height float64   `json:"height"` // axial distance between the two radii
	Origin []float64 `json:"origin"` // center of the base; nil means {0,0,0}
	Axis   string    `json:"axis"`   // revolution axis: "X", "Y" or "Z"; "" means "Y"
}

// Frustum generates a conical shell. A flat annulus is swept between the
// two radii first; every node is then displaced along the revolution axis
// by (r - Rlarge)/(Rlarge - Rsmall)*Height, where r is that node's own
// radial distance from the axis. The base circle (r = Rlarge) stays on the
// base plane and the top circle (r = Rsmall) lands Height away from it.
func Frustum(a *FrustumArgs) (o *Mesh, err error) {

	// flat annulus between the two radii
	ann := &AnnulusArgs{
		Args:   a.Args,
		Size:   a.Size,
		Rin:    a.Rsmall,
		Rout:   a.Rlarge,
		Origin: a.Origin,
		Axis:   a.Axis,
	}
	o, err = Annulus(ann)
	if err != nil {
		return nil, err
	}

	// displace each node along the axis in proportion to its own radius.
	// the node's own radius must be used here because ring boundaries have
	// already been merged.
	for _, key := range o.Nord {
		nod := o.Nodes[key]
		r, e := AxisRadius(nod.X, nod.Y, nod.Z, ann.Axis, ann.Origin)
		if e != nil {
			return nil, e
		}
		d := (r - a.Rlarge) / (a.Rlarge - a.Rsmall) * a.Height
		switch ann.Axis {
		case "X":
			nod.X += d
		case "Y":
			nod.Y += d
		case "Z":
			nod.Z += d
		}
	}
	return o, nil
}
