// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// NodeFileParams holds the optional settings of a NodeFile request
type NodeFileParams struct {
	Frequency       int    // store every Nth increment; 0 means every increment
	NoGlobal        bool   // store in local instead of global coordinates
	Output          OutputKind
	OutputAll       bool   // store expanded and non-expanded results
	TimePoints      Named  // store at the times of this *TIME POINTS record
	Nset            Set    // restrict to this node set
	LastIterations  bool   // store all iterations of the last increment
	ContactElements bool   // store generated contact elements
}

// NodeFile selects nodal result entities for storage in the frd result
// file. The periodic Frequency control and the TimePoints reference are
// mutually exclusive
type NodeFile struct {
	entities []NodeRes
	prms     NodeFileParams
}

// NewNodeFile returns a *NODE FILE record; prms may be nil
func NewNodeFile(entities []NodeRes, prms *NodeFileParams) (*NodeFile, error) {
	if err := chkNotEmpty("*NODE FILE", "entities", len(entities)); err != nil {
		return nil, err
	}
	var p NodeFileParams
	if prms != nil {
		p = *prms
	}
	if p.Frequency == 0 {
		p.Frequency = 1
	}
	if err := chkID("*NODE FILE", "frequency", p.Frequency); err != nil {
		return nil, err
	}
	if err := chkExclusive("*NODE FILE", "frequency", "time_points", p.TimePoints != nil && p.Frequency != 1); err != nil {
		return nil, err
	}
	if p.Nset != nil && p.Nset.Kind() != NodeSet {
		return nil, argErr("*NODE FILE", "nset", "must be a node set, got %v", p.Nset.Kind())
	}
	o := &NodeFile{append([]NodeRes{}, entities...), p}
	return o, nil
}

// String renders the keyword card
func (o *NodeFile) String() string {
	l := "*NODE FILE"
	if o.prms.Frequency != 1 {
		l += io.Sf(",FREQUENCY=%d", o.prms.Frequency)
	}
	if o.prms.NoGlobal {
		l += ",GLOBAL=NO"
	}
	if o.prms.Output != OutDefault {
		l += ",OUTPUT=" + string(o.prms.Output)
	}
	if o.prms.OutputAll {
		l += ",OUTPUT ALL"
	}
	if o.prms.TimePoints != nil {
		l += ",TIME POINTS=" + o.prms.TimePoints.Name()
	}
	if o.prms.Nset != nil {
		l += ",NSET=" + o.prms.Nset.Name()
	}
	if o.prms.LastIterations {
		l += ",LAST ITERATIONS"
	}
	if o.prms.ContactElements {
		l += ",CONTACT ELEMENTS"
	}
	l += "\n"
	toks := make([]string, len(o.entities))
	for i, e := range o.entities {
		toks[i] = string(e)
	}
	return l + WrapTokens(toks)
}

// ElFileParams holds the optional settings of an ElFile request
type ElFileParams struct {
	Frequency       int // store every Nth increment; 0 means every increment
	NoGlobal        bool
	Output          OutputKind
	OutputAll       bool
	SectionForces   bool  // project to shell mid-surface; excludes OUTPUT=3D
	TimePoints      Named // store at the times of this *TIME POINTS record
	LastIterations  bool
	ContactElements bool
}

// ElFile selects element result entities for storage in the frd result
// file
type ElFile struct {
	entities []ElRes
	prms     ElFileParams
}

// NewElFile returns an *EL FILE record; prms may be nil
func NewElFile(entities []ElRes, prms *ElFileParams) (*ElFile, error) {
	if err := chkNotEmpty("*EL FILE", "entities", len(entities)); err != nil {
		return nil, err
	}
	var p ElFileParams
	if prms != nil {
		p = *prms
	}
	if p.Frequency == 0 {
		p.Frequency = 1
	}
	if err := chkID("*EL FILE", "frequency", p.Frequency); err != nil {
		return nil, err
	}
	if err := chkExclusive("*EL FILE", "frequency", "time_points", p.TimePoints != nil && p.Frequency != 1); err != nil {
		return nil, err
	}
	if err := chkExclusive("*EL FILE", "section_forces", "OUTPUT=3D", p.SectionForces && p.Output == Out3D); err != nil {
		return nil, err
	}
	o := &ElFile{append([]ElRes{}, entities...), p}
	return o, nil
}

// String renders the keyword card
func (o *ElFile) String() string {
	l := "*EL FILE"
	if o.prms.Frequency != 1 {
		l += io.Sf(",FREQUENCY=%d", o.prms.Frequency)
	}
	if o.prms.NoGlobal {
		l += ",GLOBAL=NO"
	}
	if o.prms.Output != OutDefault {
		l += ",OUTPUT=" + string(o.prms.Output)
	}
	if o.prms.OutputAll {
		l += ",OUTPUT ALL"
	}
	if o.prms.SectionForces {
		l += ",SECTION FORCES"
	}
	if o.prms.TimePoints != nil {
		l += ",TIME POINTS=" + o.prms.TimePoints.Name()
	}
	if o.prms.LastIterations {
		l += ",LAST ITERATIONS"
	}
	if o.prms.ContactElements {
		l += ",CONTACT ELEMENTS"
	}
	l += "\n"
	toks := make([]string, len(o.entities))
	for i, e := range o.entities {
		toks[i] = string(e)
	}
	return l + WrapTokens(toks)
}

// ContactFileParams holds the optional settings of a ContactFile request
type ContactFileParams struct {
	Frequency       int   // store every Nth increment; 0 means every increment
	TimePoints      Named // store at the times of this *TIME POINTS record
	LastIterations  bool
	ContactElements bool
}

// ContactFile selects contact result entities for storage in the frd
// result file
type ContactFile struct {
	entities []ContactRes
	prms     ContactFileParams
}

// NewContactFile returns a *CONTACT FILE record; prms may be nil
func NewContactFile(entities []ContactRes, prms *ContactFileParams) (*ContactFile, error) {
	if err := chkNotEmpty("*CONTACT FILE", "entities", len(entities)); err != nil {
		return nil, err
	}
	var p ContactFileParams
	if prms != nil {
		p = *prms
	}
	if p.Frequency == 0 {
		p.Frequency = 1
	}
	if err := chkID("*CONTACT FILE", "frequency", p.Frequency); err != nil {
		return nil, err
	}
	if err := chkExclusive("*CONTACT FILE", "frequency", "time_points", p.TimePoints != nil && p.Frequency != 1); err != nil {
		return nil, err
	}
	o := &ContactFile{append([]ContactRes{}, entities...), p}
	return o, nil
}

// String renders the keyword card
func (o *ContactFile) String() string {
	l := "*CONTACT FILE"
	if o.prms.Frequency != 1 {
		l += io.Sf(",FREQUENCY=%d", o.prms.Frequency)
	}
	if o.prms.TimePoints != nil {
		l += ",TIME POINTS=" + o.prms.TimePoints.Name()
	}
	if o.prms.LastIterations {
		l += ",LAST ITERATIONS"
	}
	if o.prms.ContactElements {
		l += ",CONTACT ELEMENTS"
	}
	l += "\n"
	toks := make([]string, len(o.entities))
	for i, e := range o.entities {
		toks[i] = string(e)
	}
	return l + WrapTokens(toks)
}

// NodePrintParams holds the optional settings of a NodePrint request
type NodePrintParams struct {
	Frequency  int    // print every Nth increment; 0 means every increment
	Totals     Totals // zero value means NO
	NoGlobal   bool
	TimePoints Named
}

// NodePrint selects nodal result entities for printing in the dat file.
// Unlike NodeFile, the node set reference is mandatory
type NodePrint struct {
	nset     Set
	entities []NodePrintRes
	prms     NodePrintParams
}

// NewNodePrint returns a *NODE PRINT record; nset must be a node set.
// prms may be nil
func NewNodePrint(nset Set, entities []NodePrintRes, prms *NodePrintParams) (*NodePrint, error) {
	if nset.Kind() != NodeSet {
		return nil, argErr("*NODE PRINT", "nset", "must be a node set, got %v", nset.Kind())
	}
	if err := chkNotEmpty("*NODE PRINT", "entities", len(entities)); err != nil {
		return nil, err
	}
	var p NodePrintParams
	if prms != nil {
		p = *prms
	}
	if p.Frequency == 0 {
		p.Frequency = 1
	}
	if err := chkID("*NODE PRINT", "frequency", p.Frequency); err != nil {
		return nil, err
	}
	if err := chkExclusive("*NODE PRINT", "frequency", "time_points", p.TimePoints != nil && p.Frequency != 1); err != nil {
		return nil, err
	}
	o := &NodePrint{nset, append([]NodePrintRes{}, entities...), p}
	return o, nil
}

// String renders the keyword card
func (o *NodePrint) String() string {
	l := "*NODE PRINT,NSET=" + o.nset.Name()
	if o.prms.Frequency != 1 {
		l += io.Sf(",FREQUENCY=%d", o.prms.Frequency)
	}
	if o.prms.Totals != "" && o.prms.Totals != TotalsNo {
		l += ",TOTALS=" + string(o.prms.Totals)
	}
	if o.prms.NoGlobal {
		l += ",GLOBAL=NO"
	}
	if o.prms.TimePoints != nil {
		l += ",TIME POINTS=" + o.prms.TimePoints.Name()
	}
	l += "\n"
	toks := make([]string, len(o.entities))
	for i, e := range o.entities {
		toks[i] = string(e)
	}
	return l + WrapTokens(toks)
}
