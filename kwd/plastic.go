// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

type curveBlock struct {
	stress []float64
	strain []float64
	temp   float64
}

// addCurve validates and appends one stress/strain table
func addCurve(kword string, blocks *[]curveBlock, temp float64, stress, strain []float64) error {
	if err := chkNotEmpty(kword, "stress", len(stress)); err != nil {
		return err
	}
	if len(stress) != len(strain) {
		return argErr(kword, "stress and strain", "must have equal length, got %d and %d", len(stress), len(strain))
	}
	blk := curveBlock{make([]float64, len(stress)), make([]float64, len(strain)), temp}
	copy(blk.stress, stress)
	copy(blk.strain, strain)
	*blocks = append(*blocks, blk)
	return nil
}

// curveRows renders all tables, one fixed-width row per data point, in
// append order. No re-sorting by temperature takes place
func curveRows(blocks []curveBlock) string {
	l := ""
	for _, b := range blocks {
		for i := range b.stress {
			l += CurveRow(b.stress[i], b.strain[i], b.temp)
		}
	}
	return l
}

// Plastic holds the plastic stress/strain curve of a material. The
// curve for the first temperature is given at construction and tagged
// with Tref; further temperature blocks are appended with
// AddStressStrainForTemp and rendered strictly in append order
type Plastic struct {
	hardening HardeningRule
	blocks    []curveBlock
}

// NewPlastic returns a *PLASTIC record whose first curve is tagged with
// the reference temperature Tref. An empty hardening rule means
// isotropic hardening
func NewPlastic(hardening HardeningRule, stress, strain []float64) (*Plastic, error) {
	o := &Plastic{hardening: hardening}
	if err := o.AddStressStrainForTemp(Tref, stress, strain); err != nil {
		return nil, err
	}
	return o, nil
}

// AddStressStrainForTemp appends a stress/strain table for a given
// temperature; both sequences must have the same non-zero length
func (o *Plastic) AddStressStrainForTemp(temp float64, stress, strain []float64) error {
	return addCurve("*PLASTIC", &o.blocks, temp, stress, strain)
}

// String renders the keyword card with all temperature blocks
func (o *Plastic) String() string {
	l := "*PLASTIC"
	if o.hardening != "" && o.hardening != HardIsotropic {
		l += ",HARDENING=" + string(o.hardening)
	}
	l += "\n"
	return l + curveRows(o.blocks)
}

// CyclicHardening holds the isotropic hardening curve of a material
// whose Plastic record selects combined hardening
type CyclicHardening struct {
	blocks []curveBlock
}

// NewCyclicHardening returns a *CYCLIC HARDENING record whose first
// curve is tagged with the reference temperature Tref
func NewCyclicHardening(stress, strain []float64) (*CyclicHardening, error) {
	o := new(CyclicHardening)
	if err := o.AddStressStrainForTemp(Tref, stress, strain); err != nil {
		return nil, err
	}
	return o, nil
}

// AddStressStrainForTemp appends a stress/strain table for a given
// temperature; both sequences must have the same non-zero length
func (o *CyclicHardening) AddStressStrainForTemp(temp float64, stress, strain []float64) error {
	return addCurve("*CYCLIC HARDENING", &o.blocks, temp, stress, strain)
}

// String renders the keyword card with all temperature blocks
func (o *CyclicHardening) String() string {
	return "*CYCLIC HARDENING\n" + curveRows(o.blocks)
}
