// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// components of the shear and moment result vectors
var (
	shearComp  = map[string]int{"Qx": 0, "Qy": 1}
	momentComp = map[string]int{"Mx": 0, "My": 1, "Mxy": 2}
)

// samplePoints returns the five local sampling points of an element: the
// four corners and the center approximated from the average of the first
// two corners' coordinates. Rect elements use their local (x, y) system;
// Quad elements use the natural (r, s) system.
func samplePoints(e *Elem) (x, y [5]float64) {
	var xi, yi, xj, yj, xm, ym, xn, yn float64
	if e.Kind == KindRect {
		w, h := e.Width(), e.Height()
		xi, yi = 0, 0
		xj, yj = w, 0
		xm, ym = w, h
		xn, yn = 0, h
	} else {
		xi, yi = -1, -1
		xj, yj = 1, -1
		xm, ym = 1, 1
		xn, yn = -1, 1
	}
	x = [5]float64{xi, xj, xm, xn, (xi + xj) / 2}
	y = [5]float64{yi, yj, ym, yn, (yi + yn) / 2}
	return
}

// MaxShear returns the maximum shear among the corner and center points of
// every solved element in the mesh. direction is "Qx" or "Qy". combo
// filters load combinations; the empty string evaluates all of them.
// Returns NaN if no element carries results.
func (o *Mesh) MaxShear(direction, combo string) (float64, error) {
	return o.extremum(direction, combo, true, true)
}

// MinShear returns the minimum shear in the mesh; see MaxShear
func (o *Mesh) MinShear(direction, combo string) (float64, error) {
	return o.extremum(direction, combo, true, false)
}

// MaxMoment returns the maximum moment among the corner and center points
// of every solved element in the mesh. direction is "Mx", "My" or "Mxy".
// combo filters load combinations; the empty string evaluates all of them.
// Returns NaN if no element carries results.
func (o *Mesh) MaxMoment(direction, combo string) (float64, error) {
	return o.extremum(direction, combo, false, true)
}

// MinMoment returns the minimum moment in the mesh; see MaxMoment
func (o *Mesh) MinMoment(direction, combo string) (float64, error) {
	return o.extremum(direction, combo, false, false)
}

// extremum scans the five sampling points of every solved element
func (o *Mesh) extremum(direction, combo string, shear, wantMax bool) (res float64, err error) {
	var comp int
	var ok bool
	if shear {
		if comp, ok = shearComp[direction]; !ok {
			return 0, chk.Err("invalid direction %q for mesh shear results; options are \"Qx\" or \"Qy\"", direction)
		}
	} else {
		if comp, ok = momentComp[direction]; !ok {
			return 0, chk.Err("invalid direction %q for mesh moment results; options are \"Mx\", \"My\" or \"Mxy\"", direction)
		}
	}
	res = math.NaN()
	found := false
	for _, key := range o.Eord {
		e := o.Elems[key]
		if e.Res == nil {
			continue
		}
		x, y := samplePoints(e)
		for _, name := range e.Res.Combos() {
			if combo != "" && name != combo {
				continue
			}
			for k := 0; k < 5; k++ {
				var v float64
				if shear {
					v = e.Res.Shear(x[k], y[k], name)[comp]
				} else {
					v = e.Res.Moment(x[k], y[k], name)[comp]
				}
				if !found || (wantMax && v > res) || (!wantMax && v < res) {
					res = v
					found = true
				}
			}
		}
	}
	return
}
