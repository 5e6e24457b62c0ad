// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "strings"

// joinTrim joins data fields with commas after dropping trailing empty
// placeholders; inner empty fields are kept, as the ccx parser reads
// positionally
func joinTrim(fields []string) string {
	n := len(fields)
	for n > 0 && fields[n-1] == "" {
		n--
	}
	return strings.Join(fields[:n], ",")
}

// StaticParams holds the optional settings of a Static analysis
type StaticParams struct {
	Solver           Solver  // zero value means solver default
	Direct           bool    // fixed time increments
	TimeReset        bool    // reset total time at step end
	TotalTimeAtStart float64 // 0 means omitted
	InitTimeInc      float64 // initial time increment; 0 means 1.0
	TimePeriod       float64 // time period of the step; 0 means 1.0
	MinTimeInc       float64 // 0 means omitted (solver default)
	MaxTimeInc       float64 // 0 means omitted (solver default)
}

// Static requests a static analysis for the current step
type Static struct {
	prms StaticParams
}

// NewStatic returns a *STATIC record; prms may be nil for all defaults
func NewStatic(prms *StaticParams) (*Static, error) {
	var p StaticParams
	if prms != nil {
		p = *prms
	}
	if p.InitTimeInc == 0 {
		p.InitTimeInc = 1.0
	}
	if p.TimePeriod == 0 {
		p.TimePeriod = 1.0
	}
	if err := chkPos("*STATIC", "init_time_inc", p.InitTimeInc); err != nil {
		return nil, err
	}
	if err := chkPos("*STATIC", "time_period", p.TimePeriod); err != nil {
		return nil, err
	}
	return &Static{p}, nil
}

// String renders the keyword card
func (o *Static) String() string {
	l := "*STATIC"
	if o.prms.Solver != SolverDefault {
		l += ",SOLVER=" + string(o.prms.Solver)
	}
	if o.prms.Direct {
		l += ",DIRECT"
	}
	if o.prms.TimeReset {
		l += ",TIME RESET"
	}
	if o.prms.TotalTimeAtStart != 0 {
		l += ",TOTAL TIME AT START=" + Ftoa(o.prms.TotalTimeAtStart)
	}
	l += "\n"
	fields := []string{Ftoa(o.prms.InitTimeInc), Ftoa(o.prms.TimePeriod), "", ""}
	if o.prms.MinTimeInc != 0 {
		fields[2] = Ftoa(o.prms.MinTimeInc)
	}
	if o.prms.MaxTimeInc != 0 {
		fields[3] = Ftoa(o.prms.MaxTimeInc)
	}
	return l + joinTrim(fields) + "\n"
}
