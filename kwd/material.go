// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// Material marks the start of a material definition. All material
// property records following it (Elastic, Plastic, Density, ...) belong
// to this material until the next *MATERIAL card
type Material struct {
	name string
}

// NewMaterial returns a *MATERIAL record; name is limited to 80 chars
func NewMaterial(name string) (*Material, error) {
	if err := chkName("*MATERIAL", "name", name); err != nil {
		return nil, err
	}
	return &Material{name}, nil
}

// Name returns the material name
func (o *Material) Name() string { return o.name }

// String renders the keyword card
func (o *Material) String() string {
	return "*MATERIAL,NAME=" + o.name + "\n"
}

// Density holds the temperature-dependent density of a material. The
// first value is given at construction; further temperature blocks are
// appended with AddDensityForTemp and rendered in append order
type Density struct {
	rows [][2]float64 // (density, temp) pairs
}

// NewDensity returns a *DENSITY record with the first value at Tref
func NewDensity(rho float64) (*Density, error) {
	o := new(Density)
	if err := o.AddDensityForTemp(rho, Tref); err != nil {
		return nil, err
	}
	return o, nil
}

// AddDensityForTemp appends a density for a given temperature
func (o *Density) AddDensityForTemp(rho, temp float64) error {
	if err := chkPos("*DENSITY", "density", rho); err != nil {
		return err
	}
	o.rows = append(o.rows, [2]float64{rho, temp})
	return nil
}

// String renders the keyword card
func (o *Density) String() string {
	l := "*DENSITY\n"
	for _, r := range o.rows {
		l += Fexp(r[0]) + "," + Fexp(r[1]) + "\n"
	}
	return l
}
