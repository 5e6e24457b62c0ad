// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// MaxFields is the maximum number of data fields the ccx parser accepts
// on one line before a continuation is required
const MaxFields = 8

// wrapFields joins fields in chunks of at most MaxFields per line.
// Every line but the last ends with a continuation comma
func wrapFields(fields []string) string {
	var b strings.Builder
	for i := 0; i < len(fields); i += MaxFields {
		end := i + MaxFields
		if end > len(fields) {
			end = len(fields)
		}
		b.WriteString(strings.Join(fields[i:end], ","))
		if end < len(fields) {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WrapVals renders vals with at most MaxFields values per line and
// continuation commas on all lines but the last
func WrapVals(vals []Val) string {
	fields := make([]string, len(vals))
	for i, v := range vals {
		fields[i] = v.String()
	}
	return wrapFields(fields)
}

// WrapValsTemp renders vals like WrapVals with the temperature tag
// appended to the final line. The tag is not counted toward the
// MaxFields cap; it rides on whatever line holds the last value
func WrapValsTemp(vals []Val, temp float64) string {
	var b strings.Builder
	for i := 0; i < len(vals); i += MaxFields {
		end := i + MaxFields
		if end > len(vals) {
			end = len(vals)
		}
		for j := i; j < end; j++ {
			b.WriteString(vals[j].String())
			b.WriteString(",")
		}
		if end < len(vals) {
			b.WriteString("\n")
		} else {
			b.WriteString(Ftoa(temp))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WrapTokens renders result-quantity tokens with at most MaxFields
// tokens per line
func WrapTokens(toks []string) string {
	return wrapFields(toks)
}

// CurveRow renders one fixed-width data point of a stress/strain (or
// equivalent) curve together with its temperature tag
func CurveRow(a, b, temp float64) string {
	return io.Sf("%15.7e,%15.7e,%15.7e\n", a, b, temp)
}

// ListVals renders one value per line with a trailing comma on all
// lines but the last; used for ordered lists such as time points
func ListVals(vals []Val) string {
	var b strings.Builder
	for i, v := range vals {
		b.WriteString(v.String())
		if i < len(vals)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	return b.String()
}
