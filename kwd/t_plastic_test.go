// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_plastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plastic01. default hardening, default temperature")

	p, err := NewPlastic("", []float64{210, 235}, []float64{0, 0.002})
	if err != nil {
		tst.Errorf("NewPlastic failed:\n%v", err)
		return
	}
	io.Pforan("%s", p)
	known := "*PLASTIC\n"
	known += "  2.1000000e+02,  0.0000000e+00,  2.9400000e+02\n"
	known += "  2.3500000e+02,  2.0000000e-03,  2.9400000e+02\n"
	chk.String(tst, p.String(), known)
}

func Test_plastic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plastic02. kinematic hardening fragment")

	p, err := NewPlastic(HardKinematic, []float64{210}, []float64{0})
	if err != nil {
		tst.Errorf("NewPlastic failed:\n%v", err)
		return
	}
	known := "*PLASTIC,HARDENING=KINEMATIC\n"
	known += "  2.1000000e+02,  0.0000000e+00,  2.9400000e+02\n"
	chk.String(tst, p.String(), known)

	p, err = NewPlastic(HardIsotropic, []float64{210}, []float64{0})
	if err != nil {
		tst.Errorf("NewPlastic failed:\n%v", err)
		return
	}
	chk.String(tst, p.String(), "*PLASTIC\n  2.1000000e+02,  0.0000000e+00,  2.9400000e+02\n")
}

func Test_plastic03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plastic03. appended blocks render in append order")

	p, err := NewPlastic("", []float64{210, 235}, []float64{0, 0.002})
	if err != nil {
		tst.Errorf("NewPlastic failed:\n%v", err)
		return
	}
	// lower temperature appended last must stay last
	err = p.AddStressStrainForTemp(100, []float64{180, 201}, []float64{0, 0.001})
	if err != nil {
		tst.Errorf("AddStressStrainForTemp failed:\n%v", err)
		return
	}
	known := "*PLASTIC\n"
	known += "  2.1000000e+02,  0.0000000e+00,  2.9400000e+02\n"
	known += "  2.3500000e+02,  2.0000000e-03,  2.9400000e+02\n"
	known += "  1.8000000e+02,  0.0000000e+00,  1.0000000e+02\n"
	known += "  2.0100000e+02,  1.0000000e-03,  1.0000000e+02\n"
	chk.String(tst, p.String(), known)
}

func Test_plastic04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plastic04. invalid curves fail")

	_, err := NewPlastic("", []float64{210, 235}, []float64{0})
	if err == nil {
		tst.Errorf("error expected for mismatched lengths\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = NewPlastic("", []float64{}, []float64{})
	if err == nil {
		tst.Errorf("error expected for empty curves\n")
		return
	}

	p, err := NewPlastic("", []float64{210}, []float64{0})
	if err != nil {
		tst.Errorf("NewPlastic failed:\n%v", err)
		return
	}
	err = p.AddStressStrainForTemp(400, []float64{210, 235}, []float64{0})
	if err == nil {
		tst.Errorf("error expected for mismatched appended lengths\n")
	}
}

func Test_cychard01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cychard01. cyclic hardening curve")

	c, err := NewCyclicHardening([]float64{210, 235}, []float64{0, 0.002})
	if err != nil {
		tst.Errorf("NewCyclicHardening failed:\n%v", err)
		return
	}
	known := "*CYCLIC HARDENING\n"
	known += "  2.1000000e+02,  0.0000000e+00,  2.9400000e+02\n"
	known += "  2.3500000e+02,  2.0000000e-03,  2.9400000e+02\n"
	chk.String(tst, c.String(), known)

	err = c.AddStressStrainForTemp(500, []float64{150}, []float64{0})
	if err != nil {
		tst.Errorf("AddStressStrainForTemp failed:\n%v", err)
		return
	}
	known += "  1.5000000e+02,  0.0000000e+00,  5.0000000e+02\n"
	chk.String(tst, c.String(), known)
}
