// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// TimePoints specifies a named sequence of time points. Result-file
// requests reference it by name as the alternative to a fixed storage
// cadence
type TimePoints struct {
	name      string
	times     []Val
	totalTime bool
}

// NewTimePoints returns a *TIME POINTS record; times should be given in
// ascending order (not enforced, as the solver accepts and sorts them)
func NewTimePoints(name string, times []Val, totalTime bool) (*TimePoints, error) {
	if err := chkName("*TIME POINTS", "name", name); err != nil {
		return nil, err
	}
	if err := chkNotEmpty("*TIME POINTS", "times", len(times)); err != nil {
		return nil, err
	}
	o := &TimePoints{name, append([]Val{}, times...), totalTime}
	return o, nil
}

// Name returns the record name
func (o *TimePoints) Name() string { return o.name }

// String renders the keyword card
func (o *TimePoints) String() string {
	l := "*TIME POINTS,NAME=" + o.name
	if o.totalTime {
		l += ",TIME=TOTAL TIME"
	}
	return l + "\n" + ListVals(o.times)
}
