// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"math"
	"strconv"

	"github.com/cpmech/gosl/io"
)

// Val holds one deck value which is either an integer or a float.
// Integers render without a decimal point; floats render with a shortest
// round-trip decimal representation and always carry a decimal point
type Val struct {
	v     float64
	isInt bool
}

// Int wraps an integer value
func Int(v int) Val { return Val{float64(v), true} }

// Flt wraps a float value
func Flt(v float64) Val { return Val{v, false} }

// Ints wraps a list of integer values
func Ints(vals ...int) (res []Val) {
	res = make([]Val, len(vals))
	for i, v := range vals {
		res[i] = Int(v)
	}
	return
}

// Flts wraps a list of float values
func Flts(vals ...float64) (res []Val) {
	res = make([]Val, len(vals))
	for i, v := range vals {
		res[i] = Flt(v)
	}
	return
}

// String renders the value as a single deck field
func (o Val) String() string {
	if o.isInt {
		return strconv.Itoa(int(o.v))
	}
	return Ftoa(o.v)
}

// Ftoa renders a float the way ccx decks carry them: shortest decimal
// form that round-trips, with a forced ".0" on integral values.
// Exponent notation is used only for very large or very small magnitudes
func Ftoa(v float64) string {
	a := math.Abs(v)
	if a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fexp renders a float in 7-digit exponential form; used for header
// option values and point tables
func Fexp(v float64) string {
	return io.Sf("%.7e", v)
}
