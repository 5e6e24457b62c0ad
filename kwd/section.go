// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// SolidSection assigns a material (and optionally an orientation) to an
// element set. The record embeds only the names of the referenced
// entities; it does not own them
type SolidSection struct {
	elset Set
	mat   Named
	ori   Named // may be nil
}

// NewSolidSection returns a *SOLID SECTION record. The referenced set
// must be an element set; ori may be nil
func NewSolidSection(elset Set, mat Named, ori Named) (*SolidSection, error) {
	if elset.Kind() != ElemSet {
		return nil, argErr("*SOLID SECTION", "elset", "type of elset must be ELEMENT, got %v", elset.Kind())
	}
	return &SolidSection{elset, mat, ori}, nil
}

// String renders the keyword card
func (o *SolidSection) String() string {
	l := "*SOLID SECTION,MATERIAL=" + o.mat.Name() + ",ELSET=" + o.elset.Name()
	if o.ori != nil {
		l += ",ORIENTATION=" + o.ori.Name()
	}
	return l + "\n"
}
