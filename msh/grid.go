// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"sort"
)

// Prec is the number of decimal places used whenever two coordinates or
// lengths are compared for "close enough"
const Prec = 10

// Rnd rounds x to Prec decimal places
func Rnd(x float64) float64 {
	return math.Round(x*1e10) / 1e10
}

// MergeControl merges caller-supplied control points with the span
// boundaries 0 and length, returning a sorted sequence with duplicates
// (within Prec decimals) removed. The input slice is not modified.
func MergeControl(length float64, control []float64) (points []float64) {
	points = make([]float64, 0, len(control)+2)
	points = append(points, 0, length)
	points = append(points, control...)
	sort.Float64s(points)
	out := points[:1]
	for _, p := range points[1:] {
		if Rnd(p) != Rnd(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}

// SegCounts computes, for each pair of adjacent control points, the number
// of elements = max(1, ceil(len/size)) and the exact element size
// = len/count, so the subdivision of every segment reproduces the segment
// length with no residual
func SegCounts(points []float64, size float64) (counts []int, sizes []float64) {
	nseg := len(points) - 1
	counts = make([]int, nseg)
	sizes = make([]float64, nseg)
	for k := 0; k < nseg; k++ {
		l := points[k+1] - points[k]
		c := int(math.Ceil(Rnd(l / size)))
		if c < 1 {
			c = 1
		}
		counts[k] = c
		sizes[k] = l / float64(c)
	}
	return
}

// GridCoords concatenates the subdivision of every segment between
// adjacent control points into the global sequence of grid coordinates,
// from points[0] to points[len(points)-1] inclusive. Every control point
// appears in the output exactly.
func GridCoords(points []float64, size float64) (coords []float64) {
	counts, sizes := SegCounts(points, size)
	coords = append(coords, points[0])
	for k, c := range counts {
		for i := 1; i <= c; i++ {
			if i == c {
				coords = append(coords, points[k+1]) // land exactly on the control point
			} else {
				coords = append(coords, points[k]+float64(i)*sizes[k])
			}
		}
	}
	return
}
