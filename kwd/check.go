// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import "github.com/cpmech/gosl/io"

// ArgError reports a keyword argument that violates one of the record's
// invariants. Construction and append operations return *ArgError; no
// partially-valid record is ever observable
type ArgError struct {
	Kword string // keyword token, e.g. "*ELASTIC"
	Field string // offending field name(s)
	Msg   string // violated constraint
}

// Error returns the formatted message
func (o *ArgError) Error() string {
	return io.Sf("%s: %s: %s", o.Kword, o.Field, o.Msg)
}

// argErr builds an *ArgError with a formatted constraint message
func argErr(kword, field, msg string, prms ...interface{}) *ArgError {
	return &ArgError{kword, field, io.Sf(msg, prms...)}
}

// chkID checks an identifier lower bound (node/element ids, dofs and
// other 1-based references)
func chkID(kword, field string, v int) error {
	if v < 1 {
		return argErr(kword, field, "must be greater than 0, got %d", v)
	}
	return nil
}

// chkPair checks strict ordering of a paired upper bound; the upper
// bound must exceed, not merely reach, the lower one
func chkPair(kword, lofield, hifield string, lo, hi int) error {
	if hi <= lo {
		return argErr(kword, hifield, "must be greater than %s, got %d", lofield, hi)
	}
	return nil
}

// chkName checks the 80-character name ceiling
func chkName(kword, field, name string) error {
	if name == "" {
		return argErr(kword, field, "must not be empty")
	}
	if len(name) > 80 {
		return argErr(kword, field, "can only contain up to 80 characters, got %d", len(name))
	}
	return nil
}

// chkNotEmpty checks that a required collection has at least one entry
func chkNotEmpty(kword, field string, n int) error {
	if n < 1 {
		return argErr(kword, field, "must not be empty")
	}
	return nil
}

// chkExclusive checks two options the ccx grammar forbids combining
func chkExclusive(kword, f1, f2 string, bothSet bool) error {
	if bothSet {
		return argErr(kword, f1+" and "+f2, "are mutually exclusive")
	}
	return nil
}

// chkPos checks a strictly positive float
func chkPos(kword, field string, v float64) error {
	if v <= 0 {
		return argErr(kword, field, "must be greater than 0, got %v", v)
	}
	return nil
}

// chkLen checks an exact required collection length
func chkLen(kword, field string, n, req int) error {
	if n != req {
		return argErr(kword, field, "must have exactly %d elements, got %d", req, n)
	}
	return nil
}
