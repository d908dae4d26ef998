// Copyright 2021 The PyNite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/piotrowerko/PyNite/inp"
	"github.com/piotrowerko/PyNite/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".gen", true)
	dirout := io.ArgToString(1, "/tmp/pynite")
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nPyNite mesh generator\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"directory for output", "dirout", dirout,
			"show messages", "verbose", verbose,
		))
	}

	// read generation file
	gen, err := inp.ReadGen(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read generation file:\n%v", err)
	}
	if verbose && gen.Desc != "" {
		io.Pf("%s\n", gen.Desc)
	}

	// generate the meshes
	meshes, names, err := gen.Run()
	if err != nil {
		chk.Panic("generation failed:\n%v", err)
	}

	// write (.msh) files
	for _, name := range names {
		m := meshes[name]
		if verbose {
			io.Pf("mesh %q: %d nodes, %d elements\n", name, len(m.Nodes), len(m.Elems))
		}
		out.FromMesh(m).Save(dirout, fnkey+"-"+name)
	}
}
