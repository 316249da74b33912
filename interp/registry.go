package interp

import "github.com/turtle3d-xyz/go-turtle3d/symbol"

// Kind identifies a turtle operation.
type Kind int

// The fourteen turtle operations.
const (
	KindDraw Kind = iota
	KindMove
	KindYaw
	KindPitch
	KindRoll
	KindTurnAround
	KindAlignVertical
	KindSetWidth
	KindPush
	KindPop
	KindSpawnProp
	KindSetColor
	KindSetMaterial
	KindSetUVScale
)

// Op is a tagged operation variant. Sign selects the rotation
// direction for yaw/pitch/roll; PropID is the default prop for spawn
// operations whose instruction omits one.
type Op struct {
	Kind   Kind
	Sign   float64
	PropID int
}

// Registry maps symbol IDs to operations. Populate it once, then
// treat it as read-only: lookups take no lock, so registration must
// complete before any concurrent BuildSkeleton call begins.
type Registry struct {
	ops         map[symbol.ID]Op
	defaultProp int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[symbol.ID]Op)}
}

// Register maps a symbol ID to an operation, overwriting any prior
// mapping for that ID. Grammars may remap standard symbols.
func (r *Registry) Register(id symbol.ID, op Op) {
	r.ops[id] = op
}

// Lookup resolves a symbol ID to its operation. A missing entry is
// not an error; the interpreter treats such symbols as no-ops.
func (r *Registry) Lookup(id symbol.ID) (Op, bool) {
	op, ok := r.ops[id]
	return op, ok
}

// SetDefaultPropID sets the prop ID used when a spawn instruction
// supplies none, updating any already-registered spawn operations.
func (r *Registry) SetDefaultPropID(id int) {
	r.defaultProp = id
	for sym, op := range r.ops {
		if op.Kind == KindSpawnProp {
			op.PropID = id
			r.ops[sym] = op
		}
	}
}

// standardSymbols is the canonical symbol-to-operation contract. The
// spellings and parameter conventions are documented in the README's
// Symbol Reference table.
var standardSymbols = []struct {
	name string
	op   Op
}{
	{"F", Op{Kind: KindDraw}},
	{"f", Op{Kind: KindMove}},
	{"+", Op{Kind: KindYaw, Sign: 1}},
	{"-", Op{Kind: KindYaw, Sign: -1}},
	{"&", Op{Kind: KindPitch, Sign: 1}},
	{"^", Op{Kind: KindPitch, Sign: -1}},
	{`\`, Op{Kind: KindRoll, Sign: 1}},
	{"/", Op{Kind: KindRoll, Sign: -1}},
	{"|", Op{Kind: KindTurnAround}},
	{"$", Op{Kind: KindAlignVertical}},
	{"!", Op{Kind: KindSetWidth}},
	{"[", Op{Kind: KindPush}},
	{"]", Op{Kind: KindPop}},
	{"~", Op{Kind: KindSpawnProp}},
	{"'", Op{Kind: KindSetColor}},
	{",", Op{Kind: KindSetMaterial}},
	{";", Op{Kind: KindSetUVScale}},
}

// PopulateStandard registers the canonical mapping for every standard
// symbol spelling present in the table. Names the grammar never
// interned are skipped silently; a grammar need not use every symbol.
func (r *Registry) PopulateStandard(tab *symbol.Table) {
	for _, s := range standardSymbols {
		id, ok := tab.Resolve(s.name)
		if !ok {
			continue
		}
		op := s.op
		if op.Kind == KindSpawnProp {
			op.PropID = r.defaultProp
		}
		r.Register(id, op)
	}
}
