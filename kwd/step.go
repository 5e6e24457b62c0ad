// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// StepParams holds the optional settings of a Step
type StepParams struct {
	Nlgeom       Switch    // SwOn turns nlgeom on for this and all later steps; SwOff turns it off; SwDefault omits the option
	Inc          int       // max number of increments; 0 means 100
	Amplitude    AmpPolicy // zero value means RAMP
	Perturbation bool      // use the last non-perturbative step as preload
}

// Step starts an analysis step. The deck package pairs it with the step
// keywords it controls and closes the step with *END STEP
type Step struct {
	prms StepParams
}

// NewStep returns a *STEP record; prms may be nil for all defaults
func NewStep(prms *StepParams) (*Step, error) {
	var p StepParams
	if prms != nil {
		p = *prms
	}
	if p.Inc == 0 {
		p.Inc = 100
	}
	if err := chkID("*STEP", "inc", p.Inc); err != nil {
		return nil, err
	}
	if p.Amplitude == "" {
		p.Amplitude = Ramp
	}
	return &Step{p}, nil
}

// String renders the keyword card
func (o *Step) String() string {
	l := "*STEP"
	if o.prms.Perturbation {
		l += ",PERTURBATION"
	}
	switch o.prms.Nlgeom {
	case SwOn:
		l += ",NLGEOM"
	case SwOff:
		l += ",NLGEOM=NO"
	}
	l += io.Sf(",INC=%d", o.prms.Inc)
	l += ",AMPLITUDE=" + string(o.prms.Amplitude) + "\n"
	return l
}
