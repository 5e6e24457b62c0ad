// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kwd implements the keyword records of a CalculiX (ccx) input
// deck. Each record validates its own invariants on construction and
// renders itself to the fixed textual card format expected by the ccx
// parser. Records are immutable after construction, except where an
// explicit append method is defined (temperature-series records such as
// Elastic and Plastic, and multi-condition records such as Boundary and
// Cload). Rendering is pure and idempotent.
package kwd

// Tref is the reference temperature tag written whenever a
// temperature-series block is added without an explicit temperature
const Tref = 294.0

// Keyword is the contract implemented by every record in this package:
// render the complete keyword card(s), including the trailing newline
type Keyword interface {
	String() string
}

// Named is the capability exposed by referenced entities (materials,
// orientations, amplitudes, time points). Records store the reference
// and interpolate only its name into the output; they never mutate or
// dereference the entity
type Named interface {
	Name() string
}

// SetKind discriminates node sets from element sets
type SetKind int

const (
	NodeSet SetKind = iota
	ElemSet
)

// String returns the kind label
func (o SetKind) String() string {
	if o == NodeSet {
		return "NODE"
	}
	return "ELEMENT"
}

// Set is the capability exposed by named node/element sets
type Set interface {
	Name() string
	Kind() SetKind
}

// SurfKind discriminates node surfaces from element-face surfaces
type SurfKind int

const (
	NodeSurf SurfKind = iota
	ElemFaceSurf
)

// String returns the kind label
func (o SurfKind) String() string {
	if o == NodeSurf {
		return "NODE"
	}
	return "ELEMENT"
}

// Surface is the capability exposed by named surfaces
type Surface interface {
	Name() string
	Kind() SurfKind
}
