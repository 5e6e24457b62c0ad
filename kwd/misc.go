// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// Heading holds a short problem description reproduced at the top of
// the solver's output file
type Heading struct {
	text string
}

// NewHeading returns a *HEADING record
func NewHeading(text string) *Heading {
	return &Heading{text}
}

// String renders the keyword card
func (o *Heading) String() string {
	return "*HEADING\n" + o.text + "\n"
}

// Include pulls another file into the input deck
type Include struct {
	input string
}

// NewInclude returns an *INCLUDE record; input is the file name to
// include, without surrounding quotes
func NewInclude(input string) (*Include, error) {
	if err := chkNotEmpty("*INCLUDE", "input", len(input)); err != nil {
		return nil, err
	}
	return &Include{input}, nil
}

// String renders the keyword card
func (o *Include) String() string {
	return "*INCLUDE,INPUT=\"" + o.input + "\"\n"
}

// Universal passes caller-supplied text verbatim into the deck. It
// bypasses all validation and is the escape hatch for keywords this
// package does not implement; it is not the common path
type Universal struct {
	text string
}

// NewUniversal returns a verbatim passthrough record
func NewUniversal(text string) *Universal {
	return &Universal{text}
}

// String returns the text unmodified
func (o *Universal) String() string {
	return o.text
}

// NoAnalysis requests input deck and geometry checking only
type NoAnalysis struct{}

// NewNoAnalysis returns a *NO ANALYSIS record
func NewNoAnalysis() *NoAnalysis {
	return &NoAnalysis{}
}

// String renders the keyword card
func (o *NoAnalysis) String() string {
	return "*NO ANALYSIS\n"
}
