// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.gen) JSON file
// defining mesh generation jobs
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/piotrowerko/PyNite/msh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RectJob is a named rectangular mesh generation job
type RectJob struct {
	Name string `json:"name"` // output name of the mesh
	msh.RectArgs
}

// AnnulusJob is a named annulus generation job
type AnnulusJob struct {
	Name string `json:"name"` // output name of the mesh
	msh.AnnulusArgs
}

// CylinderJob is a named cylinder generation job
type CylinderJob struct {
	Name string `json:"name"` // output name of the mesh
	msh.CylinderArgs
}

// FrustumJob is a named frustum generation job
type FrustumJob struct {
	Name string `json:"name"` // output name of the mesh
	msh.FrustumArgs
}

// Gen holds the mesh generation jobs of one (.gen) input file
type Gen struct {

	// from JSON
	Desc       string         `json:"desc"`       // description of the job set
	Rectangles []*RectJob     `json:"rectangles"` // rectangular mesh jobs
	Annuli     []*AnnulusJob  `json:"annuli"`     // annulus jobs
	Cylinders  []*CylinderJob `json:"cylinders"`  // cylinder jobs
	Frustums   []*FrustumJob  `json:"frustums"`   // frustum jobs

	// derived
	FnamePath string // complete filename path
}

// ReadGen reads a mesh generation (.gen) file
func ReadGen(dir, fn string) (o *Gen, err error) {
	o = new(Gen)
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read generation file:\n%v", err)
	}
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse generation file %q:\n%v", o.FnamePath, err)
	}
	if o.Njobs() < 1 {
		return nil, chk.Err("generation file %q declares no jobs", o.FnamePath)
	}
	return
}

// Njobs returns the total number of jobs declared in the file
func (o *Gen) Njobs() int {
	return len(o.Rectangles) + len(o.Annuli) + len(o.Cylinders) + len(o.Frustums)
}

// Run generates every mesh declared in the file. meshes maps job names to
// generated meshes; names preserves the declaration order. Any failing job
// aborts the whole run.
func (o *Gen) Run() (meshes map[string]*msh.Mesh, names []string, err error) {
	meshes = make(map[string]*msh.Mesh)
	add := func(name string, m *msh.Mesh, e error) error {
		if e != nil {
			return chk.Err("job %q failed:\n%v", name, e)
		}
		if name == "" {
			return chk.Err("job with empty name in %q", o.FnamePath)
		}
		if _, ok := meshes[name]; ok {
			return chk.Err("duplicate job name %q in %q", name, o.FnamePath)
		}
		meshes[name] = m
		names = append(names, name)
		return nil
	}
	for _, job := range o.Rectangles {
		m, e := msh.Rectangle(&job.RectArgs)
		if err = add(job.Name, m, e); err != nil {
			return nil, nil, err
		}
	}
	for _, job := range o.Annuli {
		m, e := msh.Annulus(&job.AnnulusArgs)
		if err = add(job.Name, m, e); err != nil {
			return nil, nil, err
		}
	}
	for _, job := range o.Cylinders {
		m, e := msh.Cylinder(&job.CylinderArgs)
		if err = add(job.Name, m, e); err != nil {
			return nil, nil, err
		}
	}
	for _, job := range o.Frustums {
		m, e := msh.Frustum(&job.FrustumArgs)
		if err = add(job.Name, m, e); err != nil {
			return nil, nil, err
		}
	}
	return
}
