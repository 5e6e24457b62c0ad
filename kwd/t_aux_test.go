// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// mockSet implements Set for testing
type mockSet struct {
	name string
	kind SetKind
}

func (o *mockSet) Name() string  { return o.name }
func (o *mockSet) Kind() SetKind { return o.kind }

// mockSurf implements Surface for testing
type mockSurf struct {
	name string
	kind SurfKind
}

func (o *mockSurf) Name() string   { return o.name }
func (o *mockSurf) Kind() SurfKind { return o.kind }

// mockNamed implements Named for testing
type mockNamed struct {
	name string
}

func (o *mockNamed) Name() string { return o.name }
