// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// AmplitudeParams holds the optional settings of an Amplitude
type AmplitudeParams struct {
	TotalTime bool    // reference total time instead of step time
	ShiftX    float64 // shift in time direction; 0 means omitted
	ShiftY    float64 // shift in amplitude direction; 0 means omitted
}

// Amplitude specifies an amplitude history versus time. Load records
// reference it by name
type Amplitude struct {
	name  string
	times []float64
	amps  []float64
	prms  AmplitudeParams
}

// NewAmplitude returns an *AMPLITUDE record; times and amps must have
// the same non-zero length. prms may be nil
func NewAmplitude(name string, times, amps []float64, prms *AmplitudeParams) (*Amplitude, error) {
	if err := chkName("*AMPLITUDE", "name", name); err != nil {
		return nil, err
	}
	if err := chkNotEmpty("*AMPLITUDE", "times", len(times)); err != nil {
		return nil, err
	}
	if len(times) != len(amps) {
		return nil, argErr("*AMPLITUDE", "times and amps", "must have equal length, got %d and %d", len(times), len(amps))
	}
	if prms == nil {
		prms = new(AmplitudeParams)
	}
	o := &Amplitude{name, append([]float64{}, times...), append([]float64{}, amps...), *prms}
	return o, nil
}

// Name returns the amplitude name
func (o *Amplitude) Name() string { return o.name }

// String renders the keyword card
func (o *Amplitude) String() string {
	l := "*AMPLITUDE,NAME=" + o.name
	if o.prms.TotalTime {
		l += ",TIME=TOTAL TIME"
	}
	if o.prms.ShiftX != 0 {
		l += ",SHIFTX=" + Fexp(o.prms.ShiftX)
	}
	if o.prms.ShiftY != 0 {
		l += ",SHIFTY=" + Fexp(o.prms.ShiftY)
	}
	l += "\n"
	for i := range o.times {
		l += Fexp(o.times[i]) + "," + Fexp(o.amps[i]) + "\n"
	}
	return l
}
