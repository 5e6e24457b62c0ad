// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// ContactPairParams holds the optional settings of a ContactPair
type ContactPairParams struct {
	SmallSliding bool    // node-to-surface contact only
	AdjustSet    Set     // node set to adjust at calculation start
	AdjustTol    float64 // adjust nodes with clearance <= tol; 0 means omitted
}

// ContactPair expresses that two surfaces can make contact. It
// references a SurfaceInteraction and two surfaces by name and
// validates the surface kinds required by the contact discretisation
type ContactPair struct {
	inter   Named
	kind    ContactKind
	depSurf Surface
	indSurf Surface
	prms    ContactPairParams
}

// NewContactPair returns a *CONTACT PAIR record. The independent
// surface must be an element-face surface; for surface-to-surface
// contact the dependent surface must be one as well. prms may be nil
func NewContactPair(inter Named, kind ContactKind, depSurf, indSurf Surface, prms *ContactPairParams) (*ContactPair, error) {
	if prms == nil {
		prms = new(ContactPairParams)
	}
	if indSurf.Kind() != ElemFaceSurf {
		return nil, argErr("*CONTACT PAIR", "ind_surf", "must be an element face surface, got %v", indSurf.Kind())
	}
	if kind == SurfaceToSurface && depSurf.Kind() != ElemFaceSurf {
		return nil, argErr("*CONTACT PAIR", "dep_surf", "must be an element face surface for TYPE=SURFACE TO SURFACE, got %v", depSurf.Kind())
	}
	if kind != NodeToSurface && prms.SmallSliding {
		return nil, argErr("*CONTACT PAIR", "small_sliding", "can only be set for TYPE=NODE TO SURFACE")
	}
	if prms.AdjustSet != nil && prms.AdjustSet.Kind() != NodeSet {
		return nil, argErr("*CONTACT PAIR", "adjust", "set must be a node set, got %v", prms.AdjustSet.Kind())
	}
	if err := chkExclusive("*CONTACT PAIR", "adjust set", "adjust tolerance", prms.AdjustSet != nil && prms.AdjustTol != 0); err != nil {
		return nil, err
	}
	if prms.AdjustTol < 0 {
		return nil, argErr("*CONTACT PAIR", "adjust", "tolerance must not be negative, got %v", prms.AdjustTol)
	}
	return &ContactPair{inter, kind, depSurf, indSurf, *prms}, nil
}

// String renders the keyword card
func (o *ContactPair) String() string {
	l := "*CONTACT PAIR,INTERACTION=" + o.inter.Name() + ",TYPE=" + string(o.kind)
	if o.prms.SmallSliding {
		l += ",SMALL SLIDING"
	}
	if o.prms.AdjustSet != nil {
		l += ",ADJUST=" + o.prms.AdjustSet.Name()
	} else if o.prms.AdjustTol != 0 {
		l += ",ADJUST=" + Fexp(o.prms.AdjustTol)
	}
	l += "\n" + o.depSurf.Name() + "," + o.indSurf.Name() + "\n"
	return l
}
