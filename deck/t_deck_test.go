// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deck

import (
	"os"
	"testing"

	"github.com/cpmech/goccx/kwd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

type nset struct{ name string }

func (o *nset) Name() string      { return o.name }
func (o *nset) Kind() kwd.SetKind { return kwd.NodeSet }

func Test_deck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck01. model and one static step")

	mat, err := kwd.NewMaterial("Steel")
	if err != nil {
		tst.Errorf("NewMaterial failed:\n%v", err)
		return
	}
	ela, err := kwd.NewElastic(kwd.Iso, kwd.Flts(210000, 0.3)...)
	if err != nil {
		tst.Errorf("NewElastic failed:\n%v", err)
		return
	}
	fix := &nset{"Fix"}
	bnd, err := kwd.NewBoundarySet(fix, 1, 3)
	if err != nil {
		tst.Errorf("NewBoundarySet failed:\n%v", err)
		return
	}

	head, err := kwd.NewStep(nil)
	if err != nil {
		tst.Errorf("NewStep failed:\n%v", err)
		return
	}
	sta, err := kwd.NewStatic(nil)
	if err != nil {
		tst.Errorf("NewStatic failed:\n%v", err)
		return
	}
	cld, err := kwd.NewCload(1, 2, 1500, nil)
	if err != nil {
		tst.Errorf("NewCload failed:\n%v", err)
		return
	}
	nf, err := kwd.NewNodeFile([]kwd.NodeRes{kwd.NodeResU}, nil)
	if err != nil {
		tst.Errorf("NewNodeFile failed:\n%v", err)
		return
	}

	stp := NewStep(head)
	stp.Add(sta, cld, nf)

	d := New()
	d.AddKwds(kwd.NewHeading("Simple model"), mat, ela, bnd)
	d.AddSteps(stp)

	res := d.Render()
	io.Pforan("%s", res)

	known := "***************************************\n"
	known += "** MODEL DEFINITION\n"
	known += "***************************************\n\n"
	known += "*HEADING\nSimple model\n\n"
	known += "*MATERIAL,NAME=Steel\n\n"
	known += "*ELASTIC,TYPE=ISO\n210000.0,0.3,294.0\n\n"
	known += "*BOUNDARY\nFix,1,3\n\n"
	known += "***************************************\n"
	known += "** STEPS\n"
	known += "***************************************\n\n"
	known += "*STEP,INC=100,AMPLITUDE=RAMP\n"
	known += "*STATIC\n1.0,1.0\n"
	known += "*CLOAD\n1,2,1500.0\n"
	known += "*NODE FILE\nU\n"
	known += "*END STEP\n\n"
	chk.String(tst, res, known)

	// rendering has no side effects
	chk.String(tst, d.Render(), known)
}

func Test_deck02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck02. empty deck renders the banners only")

	d := New()
	known := "***************************************\n"
	known += "** MODEL DEFINITION\n"
	known += "***************************************\n\n"
	known += "***************************************\n"
	known += "** STEPS\n"
	known += "***************************************\n\n"
	chk.String(tst, d.Render(), known)
}

func Test_deck03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck03. saved file holds the rendered deck")

	d := New()
	d.AddKwds(kwd.NewHeading("Saved model"))
	d.SaveD("/tmp/goccx", "deck03.inp")

	b, err := os.ReadFile("/tmp/goccx/deck03.inp")
	if err != nil {
		tst.Errorf("cannot read saved file:\n%v", err)
		return
	}
	chk.String(tst, string(b), d.Render())
}
