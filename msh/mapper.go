// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PlaneToGlobal maps local (u, v) coordinates onto global coordinates.
// plane selects which two global axes u and v populate ("XY", "YZ" or
// "XZ"); the remaining axis takes the origin's offset.
func PlaneToGlobal(u, v float64, plane string, origin []float64) (x, y, z float64, err error) {
	xo, yo, zo := origin[0], origin[1], origin[2]
	switch plane {
	case "XY":
		return xo + u, yo + v, zo, nil
	case "YZ":
		return xo, yo + v, zo + u, nil
	case "XZ":
		return xo + u, yo, zo + v, nil
	}
	err = chk.Err("invalid plane %q; options are \"XY\", \"YZ\" or \"XZ\"", plane)
	return
}

// PlaneToLocal is the inverse of PlaneToGlobal: it recovers the local
// (u, v) pair of a global point
func PlaneToLocal(x, y, z float64, plane string, origin []float64) (u, v float64, err error) {
	switch plane {
	case "XY":
		return x - origin[0], y - origin[1], nil
	case "YZ":
		return z - origin[2], y - origin[1], nil
	case "XZ":
		return x - origin[0], z - origin[2], nil
	}
	err = chk.Err("invalid plane %q; options are \"XY\", \"YZ\" or \"XZ\"", plane)
	return
}

// AxisToGlobal maps polar (r, angle) coordinates about a named global
// revolution axis, plus an offset a along that axis, onto global
// coordinates. angle is measured in radians.
func AxisToGlobal(r, angle, a float64, axis string, origin []float64) (x, y, z float64, err error) {
	xo, yo, zo := origin[0], origin[1], origin[2]
	switch axis {
	case "Y":
		return xo + r*math.Cos(angle), yo + a, zo + r*math.Sin(angle), nil
	case "X":
		return xo + a, yo + r*math.Sin(angle), zo + r*math.Cos(angle), nil
	case "Z":
		return xo + r*math.Sin(angle), yo + r*math.Cos(angle), zo + a, nil
	}
	err = chk.Err("invalid axis %q; options are \"X\", \"Y\" or \"Z\"", axis)
	return
}

// AxisRadius returns the radial distance of a global point from the named
// revolution axis through origin
func AxisRadius(x, y, z float64, axis string, origin []float64) (r float64, err error) {
	dx, dy, dz := x-origin[0], y-origin[1], z-origin[2]
	switch axis {
	case "Y":
		return math.Sqrt(dx*dx + dz*dz), nil
	case "X":
		return math.Sqrt(dy*dy + dz*dz), nil
	case "Z":
		return math.Sqrt(dx*dx + dy*dy), nil
	}
	err = chk.Err("invalid axis %q; options are \"X\", \"Y\" or \"Z\"", axis)
	return
}

// AxisShift returns a copy of origin displaced by a along the named
// revolution axis
func AxisShift(origin []float64, axis string, a float64) (shifted []float64, err error) {
	shifted = []float64{origin[0], origin[1], origin[2]}
	switch axis {
	case "X":
		shifted[0] += a
	case "Y":
		shifted[1] += a
	case "Z":
		shifted[2] += a
	default:
		return nil, chk.Err("invalid axis %q; options are \"X\", \"Y\" or \"Z\"", axis)
	}
	return
}
