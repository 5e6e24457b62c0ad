// Copyright 2016 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

// ElasticKind selects the elastic behaviour and fixes the number of
// parameters per temperature block
type ElasticKind string

const (
	Iso     ElasticKind = "ISO"
	Ortho   ElasticKind = "ORTHO"
	EngCnst ElasticKind = "ENGINEERING CONSTANTS"
	Aniso   ElasticKind = "ANISO"
)

// HardeningRule selects the hardening rule of a plastic material
type HardeningRule string

const (
	HardIsotropic HardeningRule = "ISOTROPIC" // default; renders as omitted
	HardKinematic HardeningRule = "KINEMATIC"
	HardCombined  HardeningRule = "COMBINED"
)

// Solver selects the equation solver requested for a step
type Solver string

const (
	SolverDefault  Solver = "" // renders as omitted
	SolverScaling  Solver = "ITERATIVE SCALING"
	SolverCholesky Solver = "ITERATIVE CHOLESKY"
	SolverSpooles  Solver = "SPOOLES"
	SolverPastix   Solver = "PASTIX"
)

// AmpPolicy selects whether loads are ramped or stepped within a step
type AmpPolicy string

const (
	Ramp    AmpPolicy = "RAMP" // default
	Stepped AmpPolicy = "STEP"
)

// Switch is a tri-state flag whose zero value means "keep the
// documented default / the value from the previous step"
type Switch int

const (
	SwDefault Switch = iota
	SwOn
	SwOff
)

// OutputKind selects the expansion of 1D and 2D elements in result files
type OutputKind string

const (
	OutDefault OutputKind = "" // renders as omitted
	Out2D      OutputKind = "2D"
	Out3D      OutputKind = "3D"
)

// Totals selects whether sums over the whole set are printed in
// addition to the per-node values
type Totals string

const (
	TotalsNo   Totals = "NO" // default; renders as omitted
	TotalsYes  Totals = "YES"
	TotalsOnly Totals = "ONLY"
)

// NodeRes is a nodal result quantity for *NODE FILE requests
type NodeRes string

const (
	NodeResKEQ  NodeRes = "KEQ"  // stress intensity factor
	NodeResMAXU NodeRes = "MAXU" // worst orthogonal displacement
	NodeResNT   NodeRes = "NT"   // structural temperature
	NodeResPNT  NodeRes = "PNT"  // magnitude and phase of temperature
	NodeResPRF  NodeRes = "PRF"  // magnitude and phase of external forces
	NodeResPU   NodeRes = "PU"   // magnitude and phase of displacement
	NodeResRF   NodeRes = "RF"   // total force
	NodeResSEN  NodeRes = "SEN"  // sensitivity
	NodeResU    NodeRes = "U"    // displacement
	NodeResV    NodeRes = "V"    // velocity
)

// ElRes is an element result quantity for *EL FILE requests
type ElRes string

const (
	ElResE    ElRes = "E"    // Lagrange strain
	ElResENER ElRes = "ENER" // internal energy density
	ElResERR  ElRes = "ERR"  // error estimator, worst principal stress
	ElResHER  ElRes = "HER"  // error estimator, temperature
	ElResHFL  ElRes = "HFL"  // heat flux
	ElResMAXE ElRes = "MAXE" // worst principal strain
	ElResMAXS ElRes = "MAXS" // worst principal stress
	ElResME   ElRes = "ME"   // mechanical strain
	ElResPEEQ ElRes = "PEEQ" // equivalent plastic strain
	ElResS    ElRes = "S"    // Cauchy stress
	ElResTHE  ElRes = "THE"  // thermal strain
	ElResZZS  ElRes = "ZZS"  // Zienkiewicz-Zhu stress
)

// ContactRes is a contact result quantity for *CONTACT FILE requests
type ContactRes string

const (
	ContactResCDIS ContactRes = "CDIS" // relative contact displacements
	ContactResCSTR ContactRes = "CSTR" // contact stress
	ContactResCELS ContactRes = "CELS" // contact energy
	ContactResPCON ContactRes = "PCON" // amplitude and phase of relative contact
)

// NodePrintRes is a nodal result quantity for *NODE PRINT requests
type NodePrintRes string

const (
	NodePrintNT NodePrintRes = "NT" // structural temperature
	NodePrintRF NodePrintRes = "RF" // total force
	NodePrintU  NodePrintRes = "U"  // displacement
	NodePrintV  NodePrintRes = "V"  // velocity
)

// OrientSys selects the coordinate system type of an orientation
type OrientSys string

const (
	Rectangular OrientSys = "RECTANGULAR"
	Cylindrical OrientSys = "CYLINDRICAL"
)

// RotAxis selects the local axis for the extra orientation rotation
type RotAxis int

const (
	RotNone RotAxis = iota
	RotX
	RotY
	RotZ
)

// ContactKind selects the contact discretisation
type ContactKind string

const (
	NodeToSurface    ContactKind = "NODE TO SURFACE"
	SurfaceToSurface ContactKind = "SURFACE TO SURFACE"
	Mortar           ContactKind = "MORTAR"
	LinMortar        ContactKind = "LINMORTAR"
	PgLinMortar      ContactKind = "PGLINMORTAR"
)

// LoadOp selects whether loads are modified or defined anew
type LoadOp string

const (
	LoadMod LoadOp = "MOD" // default; renders as omitted
	LoadNew LoadOp = "NEW"
)
