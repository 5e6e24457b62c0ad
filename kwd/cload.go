// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// CloadParams holds the optional settings of a Cload
type CloadParams struct {
	Op        LoadOp  // zero value means MOD
	Amplitude Named   // amplitude record governing the load history
	TimeDelay float64 // shift of the amplitude in time; 0 means omitted
	LoadCase  int     // 1 real / 2 imaginary, steady state dynamics only; 0 means 1
	Sector    int     // sector for cyclic symmetry; 0 means omitted
	Submodel  bool    // interpolate forces from a global model
	Step      int     // global *STATIC step for submodel; 0 means omitted
	DataSet   int     // global *FREQUENCY data set for submodel; 0 means omitted
	Omega0    float64 // omega0 of a *GREEN step; 0 means omitted
}

type cloadLine struct {
	nset Set
	nid  int
	dof  int
	mag  float64
}

// Cload defines concentrated forces applied to nodes or node sets. The
// first load is given at construction; further loads are appended with
// AddLoad / AddLoadSet
type Cload struct {
	prms  CloadParams
	loads []cloadLine
}

// NewCload returns a *CLOAD record loading a single node; prms may be
// nil
func NewCload(nid, dof int, mag float64, prms *CloadParams) (*Cload, error) {
	o, err := newCload(prms)
	if err != nil {
		return nil, err
	}
	if err := o.AddLoad(nid, dof, mag); err != nil {
		return nil, err
	}
	return o, nil
}

// NewCloadSet returns a *CLOAD record loading a node set; prms may be
// nil
func NewCloadSet(nset Set, dof int, mag float64, prms *CloadParams) (*Cload, error) {
	o, err := newCload(prms)
	if err != nil {
		return nil, err
	}
	if err := o.AddLoadSet(nset, dof, mag); err != nil {
		return nil, err
	}
	return o, nil
}

func newCload(prms *CloadParams) (*Cload, error) {
	var p CloadParams
	if prms != nil {
		p = *prms
	}
	if p.Op == "" {
		p.Op = LoadMod
	}
	if p.LoadCase == 0 {
		p.LoadCase = 1
	}
	if p.TimeDelay != 0 && p.Amplitude == nil {
		return nil, argErr("*CLOAD", "time_delay", "requires an amplitude")
	}
	if p.LoadCase != 1 && p.LoadCase != 2 {
		return nil, argErr("*CLOAD", "load_case", "must be either 1 or 2, got %d", p.LoadCase)
	}
	if p.Sector != 0 {
		if err := chkID("*CLOAD", "sector", p.Sector); err != nil {
			return nil, err
		}
	}
	if err := chkExclusive("*CLOAD", "submodel", "amplitude", p.Submodel && p.Amplitude != nil); err != nil {
		return nil, err
	}
	if p.Submodel && p.Step == 0 && p.DataSet == 0 {
		return nil, argErr("*CLOAD", "submodel", "requires either step or data_set")
	}
	if !p.Submodel && (p.Step != 0 || p.DataSet != 0) {
		return nil, argErr("*CLOAD", "step, data_set", "require submodel")
	}
	if err := chkExclusive("*CLOAD", "step", "data_set", p.Step != 0 && p.DataSet != 0); err != nil {
		return nil, err
	}
	if p.Step != 0 {
		if err := chkID("*CLOAD", "step", p.Step); err != nil {
			return nil, err
		}
	}
	if p.DataSet != 0 {
		if err := chkID("*CLOAD", "data_set", p.DataSet); err != nil {
			return nil, err
		}
	}
	return &Cload{prms: p}, nil
}

// AddLoad appends a load on a single node
func (o *Cload) AddLoad(nid, dof int, mag float64) error {
	if err := chkID("*CLOAD", "nid", nid); err != nil {
		return err
	}
	if err := chkID("*CLOAD", "dof", dof); err != nil {
		return err
	}
	o.loads = append(o.loads, cloadLine{nil, nid, dof, mag})
	return nil
}

// AddLoadSet appends a load on a node set
func (o *Cload) AddLoadSet(nset Set, dof int, mag float64) error {
	if err := chkID("*CLOAD", "dof", dof); err != nil {
		return err
	}
	o.loads = append(o.loads, cloadLine{nset, 0, dof, mag})
	return nil
}

// String renders the keyword card with all loads
func (o *Cload) String() string {
	l := "*CLOAD"
	if o.prms.Op != LoadMod {
		l += ",OP=" + string(o.prms.Op)
	}
	if o.prms.Amplitude != nil {
		l += ",AMPLITUDE=" + o.prms.Amplitude.Name()
	}
	if o.prms.TimeDelay != 0 {
		l += ",TIME DELAY=" + Ftoa(o.prms.TimeDelay)
	}
	if o.prms.LoadCase != 1 {
		l += io.Sf(",LOAD CASE=%d", o.prms.LoadCase)
	}
	if o.prms.Sector != 0 {
		l += io.Sf(",SECTOR=%d", o.prms.Sector)
	}
	if o.prms.Submodel {
		l += ",SUBMODEL"
	}
	if o.prms.Step != 0 {
		l += io.Sf(",STEP=%d", o.prms.Step)
	}
	if o.prms.DataSet != 0 {
		l += io.Sf(",DATA SET=%d", o.prms.DataSet)
	}
	if o.prms.Omega0 != 0 {
		l += ",OMEGA0=" + Ftoa(o.prms.Omega0)
	}
	l += "\n"
	for _, ld := range o.loads {
		if ld.nset != nil {
			l += ld.nset.Name()
		} else {
			l += io.Sf("%d", ld.nid)
		}
		l += io.Sf(",%d,%s\n", ld.dof, Ftoa(ld.mag))
	}
	return l
}
