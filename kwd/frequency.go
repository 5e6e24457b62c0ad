// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// chkEigSolver rejects the iterative solvers, which cannot be used for
// eigenvalue steps
func chkEigSolver(kword string, solver Solver) error {
	if solver == SolverScaling || solver == SolverCholesky {
		return argErr(kword, "solver", "%s cannot be used for this step", string(solver))
	}
	return nil
}

// FrequencyParams holds the optional settings of a Frequency analysis
type FrequencyParams struct {
	Solver      Solver  // zero value means solver default
	Storage     bool    // store eigenpairs and matrices in jobname.eig
	NoGlobal    bool    // store matrices in local instead of global coordinates
	NoCycmpc    bool    // deactivate cyclic MPCs while assembling
	Alpha       float64 // high-frequency dissipation in [-1/3, 0]; 0 means omitted
	NumFreqs    int     // number of eigenfrequencies; 0 means 1
	LowerFreq   float64 // lower bound of the requested range; 0 means omitted
	UpperFreq   float64 // upper bound of the requested range; 0 means omitted
	MinTimeStep float64 // min time step for explicit dynamics; 0 means omitted
}

// Frequency requests an eigenfrequency analysis for the current step
type Frequency struct {
	prms FrequencyParams
}

// NewFrequency returns a *FREQUENCY record; prms may be nil
func NewFrequency(prms *FrequencyParams) (*Frequency, error) {
	var p FrequencyParams
	if prms != nil {
		p = *prms
	}
	if p.NumFreqs == 0 {
		p.NumFreqs = 1
	}
	if err := chkEigSolver("*FREQUENCY", p.Solver); err != nil {
		return nil, err
	}
	if p.Alpha < -1.0/3.0 || p.Alpha > 0 {
		return nil, argErr("*FREQUENCY", "alpha", "must be between -1/3 and 0, got %v", p.Alpha)
	}
	if err := chkID("*FREQUENCY", "no_frequencies", p.NumFreqs); err != nil {
		return nil, err
	}
	if p.LowerFreq < 0 {
		return nil, argErr("*FREQUENCY", "lower_frequency_value", "must not be negative, got %v", p.LowerFreq)
	}
	if p.UpperFreq != 0 && p.UpperFreq <= p.LowerFreq {
		return nil, argErr("*FREQUENCY", "upper_frequency_value", "must be greater than lower_frequency_value (%v), got %v", p.LowerFreq, p.UpperFreq)
	}
	if p.MinTimeStep < 0 {
		return nil, argErr("*FREQUENCY", "min_time_step", "must not be negative, got %v", p.MinTimeStep)
	}
	return &Frequency{p}, nil
}

// String renders the keyword card
func (o *Frequency) String() string {
	l := "*FREQUENCY"
	if o.prms.Solver != SolverDefault {
		l += ",SOLVER=" + string(o.prms.Solver)
	}
	if o.prms.Storage {
		l += ",STORAGE=YES"
	}
	if o.prms.NoGlobal {
		l += ",GLOBAL=NO"
	}
	if o.prms.NoCycmpc {
		l += ",CYCMPC=INACTIVE"
	}
	if o.prms.Alpha != 0 {
		l += ",ALPHA=" + Fexp(o.prms.Alpha)
	}
	l += "\n"
	fields := []string{io.Sf("%d", o.prms.NumFreqs), "", "", ""}
	if o.prms.LowerFreq != 0 {
		fields[1] = Fexp(o.prms.LowerFreq)
	}
	if o.prms.UpperFreq != 0 {
		fields[2] = Fexp(o.prms.UpperFreq)
	}
	if o.prms.MinTimeStep != 0 {
		fields[3] = Fexp(o.prms.MinTimeStep)
	}
	return l + joinTrim(fields) + "\n"
}

// BuckleParams holds the optional settings of a Buckle analysis
type BuckleParams struct {
	Solver     Solver  // zero value means solver default
	NumFactors int     // number of buckling factors; 0 means 1
	Accuracy   float64 // desired accuracy; 0 means omitted
	NumLanczos int     // Lanczos vectors per iteration; 0 means omitted
	MaxIter    int     // max number of iterations; 0 means omitted
}

// Buckle requests a buckling analysis for the current step
type Buckle struct {
	prms BuckleParams
}

// NewBuckle returns a *BUCKLE record; prms may be nil
func NewBuckle(prms *BuckleParams) (*Buckle, error) {
	var p BuckleParams
	if prms != nil {
		p = *prms
	}
	if p.NumFactors == 0 {
		p.NumFactors = 1
	}
	if err := chkEigSolver("*BUCKLE", p.Solver); err != nil {
		return nil, err
	}
	if err := chkID("*BUCKLE", "no_buckling_factors", p.NumFactors); err != nil {
		return nil, err
	}
	if p.Accuracy < 0 {
		return nil, argErr("*BUCKLE", "accuracy", "must not be negative, got %v", p.Accuracy)
	}
	if p.NumLanczos < 0 {
		return nil, argErr("*BUCKLE", "no_lanczos_vectors", "must not be negative, got %d", p.NumLanczos)
	}
	if p.MaxIter < 0 {
		return nil, argErr("*BUCKLE", "max_iterations", "must not be negative, got %d", p.MaxIter)
	}
	return &Buckle{p}, nil
}

// String renders the keyword card
func (o *Buckle) String() string {
	l := "*BUCKLE"
	if o.prms.Solver != SolverDefault {
		l += ",SOLVER=" + string(o.prms.Solver)
	}
	l += "\n"
	fields := []string{io.Sf("%d", o.prms.NumFactors), "", "", ""}
	if o.prms.Accuracy != 0 {
		fields[1] = Ftoa(o.prms.Accuracy)
	}
	if o.prms.NumLanczos != 0 {
		fields[2] = io.Sf("%d", o.prms.NumLanczos)
	}
	if o.prms.MaxIter != 0 {
		fields[3] = io.Sf("%d", o.prms.MaxIter)
	}
	return l + joinTrim(fields) + "\n"
}
