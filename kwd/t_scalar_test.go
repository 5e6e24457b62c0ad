// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_scalar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scalar01. heading, include, universal, no analysis")

	h := NewHeading("Simple beam model")
	chk.String(tst, h.String(), "*HEADING\nSimple beam model\n")

	inc, err := NewInclude("mesh.inp")
	if err != nil {
		tst.Errorf("NewInclude failed:\n%v", err)
		return
	}
	chk.String(tst, inc.String(), "*INCLUDE,INPUT=\"mesh.inp\"\n")

	_, err = NewInclude("")
	if err == nil {
		tst.Errorf("error expected for empty include file\n")
		return
	}

	u := NewUniversal("*SPRING,ELSET=Eall\n1\n2.e6\n")
	chk.String(tst, u.String(), "*SPRING,ELSET=Eall\n1\n2.e6\n")

	na := NewNoAnalysis()
	chk.String(tst, na.String(), "*NO ANALYSIS\n")
}

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. material marker and name ceiling")

	m, err := NewMaterial("Steel")
	if err != nil {
		tst.Errorf("NewMaterial failed:\n%v", err)
		return
	}
	io.Pforan("%s", m)
	chk.String(tst, m.String(), "*MATERIAL,NAME=Steel\n")
	chk.String(tst, m.Name(), "Steel")

	// exactly 80 characters is fine
	name80 := strings.Repeat("a", 80)
	_, err = NewMaterial(name80)
	if err != nil {
		tst.Errorf("80-char name must be accepted:\n%v", err)
		return
	}

	// 81 characters is not
	_, err = NewMaterial(name80 + "a")
	if err == nil {
		tst.Errorf("error expected for 81-char name\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = NewMaterial("")
	if err == nil {
		tst.Errorf("error expected for empty name\n")
	}
}

func Test_density01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("density01. temperature-dependent density")

	d, err := NewDensity(7.85e-9)
	if err != nil {
		tst.Errorf("NewDensity failed:\n%v", err)
		return
	}
	chk.String(tst, d.String(), "*DENSITY\n7.8500000e-09,2.9400000e+02\n")

	err = d.AddDensityForTemp(7.7e-9, 500)
	if err != nil {
		tst.Errorf("AddDensityForTemp failed:\n%v", err)
		return
	}
	known := "*DENSITY\n7.8500000e-09,2.9400000e+02\n7.7000000e-09,5.0000000e+02\n"
	chk.String(tst, d.String(), known)

	_, err = NewDensity(0)
	if err == nil {
		tst.Errorf("error expected for zero density\n")
	}
}

func Test_interaction01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interaction01. surface interaction and friction")

	si, err := NewSurfaceInteraction("Contact1")
	if err != nil {
		tst.Errorf("NewSurfaceInteraction failed:\n%v", err)
		return
	}
	chk.String(tst, si.String(), "*SURFACE INTERACTION,NAME=Contact1\n")

	f, err := NewFriction(0.15, 50000)
	if err != nil {
		tst.Errorf("NewFriction failed:\n%v", err)
		return
	}
	chk.String(tst, f.String(), "*FRICTION\n1.5000000e-01,5.0000000e+04\n")

	_, err = NewFriction(0, 1)
	if err == nil {
		tst.Errorf("error expected for mue == 0\n")
		return
	}
	_, err = NewFriction(0.5, -1)
	if err == nil {
		tst.Errorf("error expected for negative lam\n")
	}
}
