// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// OrientationParams holds the optional settings of an Orientation
type OrientationParams struct {
	System   OrientSys // zero value means RECTANGULAR
	RotAxis  RotAxis   // extra rotation axis; rectangular system only
	RotAngle float64   // extra rotation angle about RotAxis
}

// Orientation specifies a local axis system to be used when assigning
// material properties or transforms. Other records reference it by name
type Orientation struct {
	name     string
	pntA     []float64
	pntB     []float64
	system   OrientSys
	rotAxis  RotAxis
	rotAngle float64
}

// NewOrientation returns an *ORIENTATION record; pntA and pntB are the
// two points defining the local system, each with exactly 3 components.
// prms may be nil for a rectangular system without extra rotation
func NewOrientation(name string, pntA, pntB []float64, prms *OrientationParams) (*Orientation, error) {
	if err := chkName("*ORIENTATION", "name", name); err != nil {
		return nil, err
	}
	if err := chkLen("*ORIENTATION", "pnt_a", len(pntA), 3); err != nil {
		return nil, err
	}
	if err := chkLen("*ORIENTATION", "pnt_b", len(pntB), 3); err != nil {
		return nil, err
	}
	if prms == nil {
		prms = new(OrientationParams)
	}
	sys := prms.System
	if sys == "" {
		sys = Rectangular
	}
	o := &Orientation{name, append([]float64{}, pntA...), append([]float64{}, pntB...), sys, prms.RotAxis, prms.RotAngle}
	return o, nil
}

// Name returns the orientation name
func (o *Orientation) Name() string { return o.name }

// String renders the keyword card
func (o *Orientation) String() string {
	l := "*ORIENTATION,NAME=" + o.name + ",SYSTEM=" + string(o.system) + "\n"
	for i := 0; i < 3; i++ {
		l += Ftoa(o.pntA[i]) + ","
	}
	l += Ftoa(o.pntB[0]) + "," + Ftoa(o.pntB[1]) + "," + Ftoa(o.pntB[2]) + "\n"
	if o.rotAxis != RotNone && o.system == Rectangular {
		l += io.Sf("%d,%s\n", int(o.rotAxis), Ftoa(o.rotAngle))
	}
	return l
}
