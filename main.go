// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goccx/deck"
	"github.com/cpmech/goccx/kwd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

type nodeSet struct{ name string }

func (o *nodeSet) Name() string      { return o.name }
func (o *nodeSet) Kind() kwd.SetKind { return kwd.NodeSet }

type elemSet struct{ name string }

func (o *elemSet) Name() string      { return o.name }
func (o *elemSet) Kind() kwd.SetKind { return kwd.ElemSet }

// main writes a demonstration ccx input deck: a cantilever beam with an
// elastoplastic material, fixed at one end and loaded at the other
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

	// read input parameters
	dirout := io.ArgToString(0, "/tmp/goccx")
	fnkey := io.ArgToString(1, "cantilever")
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGoccx -- CalculiX Input Deck Generator\n")
		io.Pf("Copyright 2016 The Goccx Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"output directory", "dirout", dirout,
			"filename key", "fnkey", fnkey,
			"show messages", "verbose", verbose,
		))
	}

	// sets provided by the mesh file
	fixNodes := &nodeSet{"Fix"}
	loadNodes := &nodeSet{"Load"}
	beamElems := &elemSet{"Beam"}

	// model definition
	mat, err := kwd.NewMaterial("Steel")
	if err != nil {
		chk.Panic("cannot allocate material:\n%v", err)
	}
	ela, err := kwd.NewElastic(kwd.Iso, kwd.Flts(210000, 0.3)...)
	if err != nil {
		chk.Panic("cannot allocate elastic:\n%v", err)
	}
	pla, err := kwd.NewPlastic("", []float64{235, 400}, []float64{0, 0.2})
	if err != nil {
		chk.Panic("cannot allocate plastic:\n%v", err)
	}
	sos, err := kwd.NewSolidSection(beamElems, mat, nil)
	if err != nil {
		chk.Panic("cannot allocate solid section:\n%v", err)
	}
	bnd, err := kwd.NewBoundarySet(fixNodes, 1, 3)
	if err != nil {
		chk.Panic("cannot allocate boundary:\n%v", err)
	}
	inc, err := kwd.NewInclude(fnkey + ".msh")
	if err != nil {
		chk.Panic("cannot allocate include:\n%v", err)
	}

	// loading step
	head, err := kwd.NewStep(&kwd.StepParams{Nlgeom: kwd.SwOn, Inc: 1000})
	if err != nil {
		chk.Panic("cannot allocate step:\n%v", err)
	}
	sta, err := kwd.NewStatic(&kwd.StaticParams{InitTimeInc: 0.1, TimePeriod: 1})
	if err != nil {
		chk.Panic("cannot allocate static:\n%v", err)
	}
	cld, err := kwd.NewCloadSet(loadNodes, 2, -1500, nil)
	if err != nil {
		chk.Panic("cannot allocate cload:\n%v", err)
	}
	nf, err := kwd.NewNodeFile([]kwd.NodeRes{kwd.NodeResU, kwd.NodeResRF}, nil)
	if err != nil {
		chk.Panic("cannot allocate node file:\n%v", err)
	}
	ef, err := kwd.NewElFile([]kwd.ElRes{kwd.ElResS, kwd.ElResPEEQ}, nil)
	if err != nil {
		chk.Panic("cannot allocate el file:\n%v", err)
	}

	// assemble and save
	stp := deck.NewStep(head)
	stp.Add(sta, cld, nf, ef)
	d := deck.New()
	d.AddKwds(kwd.NewHeading("Cantilever beam"), inc, mat, ela, pla, sos, bnd)
	d.AddSteps(stp)
	d.SaveD(dirout, fnkey+".inp")
	if verbose {
		io.Pf("\nfile <%s/%s.inp> written\n", dirout, fnkey)
	}
}
