// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// elasticNprm maps the elastic kind to the required number of
// parameters per temperature block (order as in the ccx docs; e.g. for
// ISO: E-modulus, Poisson ratio)
var elasticNprm = map[ElasticKind]int{
	Iso:     2,
	Ortho:   9,
	EngCnst: 9,
	Aniso:   21,
}

type elasticBlock struct {
	prms []Val
	temp float64
}

// Elastic holds the elastic properties of a material. The parameters
// for the first temperature are given at construction and tagged with
// Tref; further temperature blocks are appended with AddParamsForTemp
// and rendered strictly in append order
type Elastic struct {
	kind   ElasticKind
	blocks []elasticBlock
}

// NewElastic returns an *ELASTIC record whose first parameter block is
// tagged with the reference temperature Tref
func NewElastic(kind ElasticKind, prms ...Val) (*Elastic, error) {
	o := &Elastic{kind: kind}
	if err := o.AddParamsForTemp(Tref, prms...); err != nil {
		return nil, err
	}
	return o, nil
}

// AddParamsForTemp appends a parameter block for a given temperature.
// The number of parameters is fixed by the elastic kind
func (o *Elastic) AddParamsForTemp(temp float64, prms ...Val) error {
	req, ok := elasticNprm[o.kind]
	if !ok {
		return argErr("*ELASTIC", "type", "unknown elastic type %q", string(o.kind))
	}
	if len(prms) != req {
		return argErr("*ELASTIC", "params", "length of params must be %d for TYPE=%s, got %d", req, string(o.kind), len(prms))
	}
	blk := elasticBlock{make([]Val, len(prms)), temp}
	copy(blk.prms, prms)
	o.blocks = append(o.blocks, blk)
	return nil
}

// String renders the keyword card with all temperature blocks
func (o *Elastic) String() string {
	l := "*ELASTIC,TYPE=" + string(o.kind) + "\n"
	for _, b := range o.blocks {
		l += WrapValsTemp(b.prms, b.temp)
	}
	return l
}
