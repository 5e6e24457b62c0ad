// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deck assembles keyword records into a complete ccx input
// deck: an ordered sequence of model keywords followed by an ordered
// sequence of analysis steps. Rendering is the ordered concatenation of
// each record's output; records never depend on one another's text
package deck

import (
	"strings"

	"github.com/cpmech/goccx/kwd"
	"github.com/cpmech/gosl/io"
)

// Step pairs a *STEP control keyword with the step keywords it governs.
// Rendering closes the step with *END STEP
type Step struct {
	Head *kwd.Step
	Kwds []kwd.Keyword
}

// NewStep returns a step container for the given control keyword
func NewStep(head *kwd.Step) *Step {
	return &Step{Head: head}
}

// Add appends step keywords in call order
func (o *Step) Add(kwds ...kwd.Keyword) {
	o.Kwds = append(o.Kwds, kwds...)
}

// Deck holds the model keywords and the analysis steps of one ccx job
type Deck struct {
	Model []kwd.Keyword
	Steps []*Step
}

// New returns an empty deck
func New() *Deck {
	return new(Deck)
}

// AddKwds appends model keywords in call order
func (o *Deck) AddKwds(kwds ...kwd.Keyword) {
	o.Model = append(o.Model, kwds...)
}

// AddSteps appends analysis steps in call order
func (o *Deck) AddSteps(steps ...*Step) {
	o.Steps = append(o.Steps, steps...)
}

// banner returns a comment block introducing a deck section
func banner(title string) string {
	stars := strings.Repeat("*", 39)
	return stars + "\n** " + title + "\n" + stars + "\n\n"
}

// Render produces the complete input deck text
func (o *Deck) Render() string {
	var b strings.Builder
	b.WriteString(banner("MODEL DEFINITION"))
	for _, k := range o.Model {
		b.WriteString(k.String())
		b.WriteString("\n")
	}
	b.WriteString(banner("STEPS"))
	for _, s := range o.Steps {
		b.WriteString(s.Head.String())
		for _, k := range s.Kwds {
			b.WriteString(k.String())
		}
		b.WriteString("*END STEP\n\n")
	}
	return b.String()
}

// SaveD renders the deck and saves it to dirout/fname, creating the
// directory if necessary
func (o *Deck) SaveD(dirout, fname string) {
	io.WriteStringToFileD(dirout, fname, o.Render())
}
