// Package interp interprets a derived sequence of grammar symbols as
// 3D turtle instructions, producing a geometric skeleton of strands
// and props.
//
// The package is the dispatch layer only: grammar derivation happens
// upstream and mesh generation downstream. BuildSkeleton is a pure,
// single-pass fold over its inputs and never fails; malformed
// instructions degrade to no-ops so partial grammars still produce
// partial skeletons.
package interp

import (
	"math"

	"github.com/turtle3d-xyz/go-turtle3d/symbol"
	"github.com/turtle3d-xyz/go-turtle3d/turtle"
)

// Instruction is one element of the derived symbol sequence: a symbol
// ID, the symbol's age, and its ordered parameter list. Parameter
// meaning depends on the operation the symbol resolves to.
type Instruction struct {
	Sym    symbol.ID
	Age    float64
	Params []float64
}

// Config holds the per-run interpretation settings. It is treated as
// immutable for the duration of one BuildSkeleton call.
type Config struct {
	// DefaultStep is the draw/move distance when an instruction
	// supplies no length parameter. Must be positive.
	DefaultStep float64

	// DefaultAngle is the rotation angle, in radians, when an
	// instruction supplies no angle parameter. Instruction-supplied
	// angle parameters are in degrees and override it for that single
	// invocation.
	DefaultAngle float64

	// InitialWidth is the turtle's starting stroke width.
	InitialWidth float64

	// Tropism, when non-nil, is the direction the heading is bent
	// toward after every draw and move.
	Tropism *turtle.Vec3

	// Elasticity is the fraction of tropism bending applied per motion
	// step, in [0,1]. Zero disables bending entirely.
	Elasticity float64

	// MoveBreaksStrand controls whether a non-drawing move finalizes
	// the open strand. The default (true) models visible gaps as
	// separate polylines; disabling it lets a downstream mesher build
	// one continuous tube across internode gaps.
	MoveBreaksStrand bool
}

// DefaultConfig returns the standard settings: unit step, 45 degree
// angle, width 0.1, no tropism, moves break strands.
func DefaultConfig() Config {
	return Config{
		DefaultStep:      1.0,
		DefaultAngle:     45 * math.Pi / 180,
		InitialWidth:     0.1,
		MoveBreaksStrand: true,
	}
}

// Report tallies the recoverable conditions encountered during one
// build. None of them aborts interpretation.
type Report struct {
	// Instructions is the number of instructions processed.
	Instructions int

	// UnknownSymbols counts instructions whose symbol had no
	// registered operation. These are deliberate no-ops: grammars may
	// carry decorative or context-only symbols.
	UnknownSymbols int

	// ArityMismatches counts instructions skipped because their
	// parameter count did not fit the resolved operation.
	ArityMismatches int

	// UnbalancedPops counts pops executed against an empty stack.
	UnbalancedPops int

	// MaxDepth is the deepest the branch stack grew.
	MaxDepth int
}
