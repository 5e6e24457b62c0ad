// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_cload01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cload01. node and set loads")

	c, err := NewCload(1, 2, 1500, nil)
	if err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	io.Pforan("%s", c)
	chk.String(tst, c.String(), "*CLOAD\n1,2,1500.0\n")

	err = c.AddLoad(2, 2, -1500)
	if err != nil {
		tst.Errorf("AddLoad failed:\n%v", err)
		return
	}
	nset := &mockSet{"LoadNodes", NodeSet}
	err = c.AddLoadSet(nset, 3, 0.5)
	if err != nil {
		tst.Errorf("AddLoadSet failed:\n%v", err)
		return
	}
	known := "*CLOAD\n"
	known += "1,2,1500.0\n"
	known += "2,2,-1500.0\n"
	known += "LoadNodes,3,0.5\n"
	chk.String(tst, c.String(), known)

	c, err = NewCloadSet(nset, 1, 100, nil)
	if err != nil {
		tst.Errorf("NewCloadSet failed:\n%v", err)
		return
	}
	chk.String(tst, c.String(), "*CLOAD\nLoadNodes,1,100.0\n")
}

func Test_cload02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cload02. header options")

	amp := &mockNamed{"A1"}
	c, err := NewCload(1, 1, 10, &CloadParams{Op: LoadNew, Amplitude: amp, TimeDelay: 0.5})
	if err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	chk.String(tst, c.String(), "*CLOAD,OP=NEW,AMPLITUDE=A1,TIME DELAY=0.5\n1,1,10.0\n")

	c, err = NewCload(1, 1, 10, &CloadParams{LoadCase: 2, Sector: 3, Omega0: 12.5})
	if err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	chk.String(tst, c.String(), "*CLOAD,LOAD CASE=2,SECTOR=3,OMEGA0=12.5\n1,1,10.0\n")

	c, err = NewCload(1, 1, 10, &CloadParams{Submodel: true, Step: 2})
	if err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	chk.String(tst, c.String(), "*CLOAD,SUBMODEL,STEP=2\n1,1,10.0\n")

	c, err = NewCload(1, 1, 10, &CloadParams{Submodel: true, DataSet: 4})
	if err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	chk.String(tst, c.String(), "*CLOAD,SUBMODEL,DATA SET=4\n1,1,10.0\n")
}

func Test_cload03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cload03. invalid option combinations fail")

	amp := &mockNamed{"A1"}

	// time delay is a shift of the amplitude
	_, err := NewCload(1, 1, 10, &CloadParams{TimeDelay: 0.5})
	if err == nil {
		tst.Errorf("error expected for time_delay without amplitude\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = NewCload(1, 1, 10, &CloadParams{LoadCase: 3})
	if err == nil {
		tst.Errorf("error expected for load_case other than 1 or 2\n")
		return
	}

	// submodel forces are interpolated, not scaled
	_, err = NewCload(1, 1, 10, &CloadParams{Submodel: true, Step: 1, Amplitude: amp})
	if err == nil {
		tst.Errorf("error expected for submodel with amplitude\n")
		return
	}

	_, err = NewCload(1, 1, 10, &CloadParams{Submodel: true})
	if err == nil {
		tst.Errorf("error expected for submodel without step or data_set\n")
		return
	}

	_, err = NewCload(1, 1, 10, &CloadParams{Submodel: true, Step: 1, DataSet: 1})
	if err == nil {
		tst.Errorf("error expected for step with data_set\n")
		return
	}

	_, err = NewCload(1, 1, 10, &CloadParams{Step: 1})
	if err == nil {
		tst.Errorf("error expected for step without submodel\n")
		return
	}

	_, err = NewCload(0, 1, 10, nil)
	if err == nil {
		tst.Errorf("error expected for nid < 1\n")
		return
	}

	_, err = NewCload(1, 0, 10, nil)
	if err == nil {
		tst.Errorf("error expected for dof < 1\n")
	}
}

func Test_cload04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cload04. caller params stay untouched")

	prms := CloadParams{}
	if _, err := NewCload(1, 1, 10, &prms); err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	if prms.Op != "" || prms.LoadCase != 0 {
		tst.Errorf("NewCload modified the caller's params: %+v\n", prms)
	}
}
