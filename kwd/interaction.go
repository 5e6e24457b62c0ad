// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// SurfaceInteraction marks the start of a surface interaction
// definition. Contact property records (Friction, ...) following it
// belong to this interaction; ContactPair records reference it by name
type SurfaceInteraction struct {
	name string
}

// NewSurfaceInteraction returns a *SURFACE INTERACTION record
func NewSurfaceInteraction(name string) (*SurfaceInteraction, error) {
	if err := chkName("*SURFACE INTERACTION", "name", name); err != nil {
		return nil, err
	}
	return &SurfaceInteraction{name}, nil
}

// Name returns the interaction name
func (o *SurfaceInteraction) Name() string { return o.name }

// String renders the keyword card
func (o *SurfaceInteraction) String() string {
	return "*SURFACE INTERACTION,NAME=" + o.name + "\n"
}

// Friction holds the friction behaviour of a surface interaction
type Friction struct {
	mue float64 // friction coefficient
	lam float64 // stick slope in force/volume
}

// NewFriction returns a *FRICTION record; both values must be positive
func NewFriction(mue, lam float64) (*Friction, error) {
	if err := chkPos("*FRICTION", "mue", mue); err != nil {
		return nil, err
	}
	if err := chkPos("*FRICTION", "lam", lam); err != nil {
		return nil, err
	}
	return &Friction{mue, lam}, nil
}

// String renders the keyword card
func (o *Friction) String() string {
	return "*FRICTION\n" + Fexp(o.mue) + "," + Fexp(o.lam) + "\n"
}
