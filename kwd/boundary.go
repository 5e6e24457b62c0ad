// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// bcond is one condition line: either a node id or a node set,
// the first constrained dof and an optional last constrained dof
// (0 means absent)
type bcond struct {
	nset  Set
	nid   int
	first int
	last  int
}

// Boundary holds homogeneous boundary conditions. The first condition
// is given at construction; further conditions are appended with
// AddCondition / AddConditionSet
type Boundary struct {
	conds []bcond
}

// NewBoundary returns a *BOUNDARY record constraining a single node.
// lastDof may be 0 to constrain only firstDof
func NewBoundary(nid, firstDof, lastDof int) (*Boundary, error) {
	o := new(Boundary)
	if err := o.AddCondition(nid, firstDof, lastDof); err != nil {
		return nil, err
	}
	return o, nil
}

// NewBoundarySet returns a *BOUNDARY record constraining a node set
func NewBoundarySet(nset Set, firstDof, lastDof int) (*Boundary, error) {
	o := new(Boundary)
	if err := o.AddConditionSet(nset, firstDof, lastDof); err != nil {
		return nil, err
	}
	return o, nil
}

// AddCondition appends a condition for a single node
func (o *Boundary) AddCondition(nid, firstDof, lastDof int) error {
	if err := chkID("*BOUNDARY", "nid", nid); err != nil {
		return err
	}
	return o.add(bcond{nil, nid, firstDof, lastDof})
}

// AddConditionSet appends a condition for a node set
func (o *Boundary) AddConditionSet(nset Set, firstDof, lastDof int) error {
	return o.add(bcond{nset, 0, firstDof, lastDof})
}

func (o *Boundary) add(c bcond) error {
	if err := chkID("*BOUNDARY", "first_dof", c.first); err != nil {
		return err
	}
	if c.last != 0 {
		if err := chkPair("*BOUNDARY", "first_dof", "last_dof", c.first, c.last); err != nil {
			return err
		}
	}
	o.conds = append(o.conds, c)
	return nil
}

// String renders the keyword card with all conditions
func (o *Boundary) String() string {
	l := "*BOUNDARY\n"
	for _, c := range o.conds {
		if c.nset != nil {
			l += c.nset.Name()
		} else {
			l += io.Sf("%d", c.nid)
		}
		l += io.Sf(",%d", c.first)
		if c.last != 0 {
			l += io.Sf(",%d", c.last)
		}
		l += "\n"
	}
	return l
}
