package skeleton

import "github.com/turtle3d-xyz/go-turtle3d/turtle"

// dedupEps is the squared distance under which a drawn point is
// considered coincident with the strand's last point and dropped.
const dedupEps = 1e-5

// Builder accumulates strands and props as the interpreter walks the
// instruction sequence. It tracks the open strand and the anchor: the
// position the next strand will connect from.
//
// Strand boundaries follow instruction order: a non-drawing move and
// both bracket operations finalize the open strand, and a strand with
// fewer than two points is discarded rather than committed. Every
// committed strand therefore starts with the geometric point it
// connects from, supplied as a synthetic leading point sampled at the
// anchor.
type Builder struct {
	skel    Skeleton
	current Strand
	anchor  turtle.Vec3
}

// NewBuilder creates a builder anchored at the given start position.
func NewBuilder(start turtle.Vec3) *Builder {
	return &Builder{anchor: start}
}

// Draw records a completed draw step. pre is the turtle state before
// the move (its attributes style the synthetic leading point when a
// new strand opens), post the state after movement and tropism.
func (b *Builder) Draw(pre, post turtle.State) {
	if len(b.current) == 0 {
		lead := PointFrom(pre)
		lead.Position = b.anchor
		b.current = append(b.current, lead)
	}
	p := PointFrom(post)
	if b.current[len(b.current)-1].Position.DistanceSq(p.Position) < dedupEps {
		return
	}
	b.current = append(b.current, p)
}

// Break finalizes the open strand and re-anchors at pos. Used for
// moves, pushes and pops, which all interrupt visual continuity.
func (b *Builder) Break(pos turtle.Vec3) {
	b.finalize()
	b.anchor = pos
}

// Skip re-anchors at pos without closing the open strand. Used for
// non-breaking moves: an open strand keeps drawing across the gap,
// while the next fresh strand still starts at the moved-to position.
func (b *Builder) Skip(pos turtle.Vec3) {
	if len(b.current) == 0 {
		b.anchor = pos
	}
}

// SpawnProp records a prop instance at the turtle's position. Strand
// state is unaffected.
func (b *Builder) SpawnProp(st turtle.State, propID int, scale float64) {
	if scale < 0 {
		scale = 0
	}
	b.skel.Props = append(b.skel.Props, Prop{
		Position:   st.Position,
		Frame:      st.Frame,
		PropID:     propID,
		Scale:      scale,
		Color:      st.Color,
		MaterialID: st.MaterialID,
	})
}

// Finish finalizes any still-open strand and returns the skeleton.
// The builder must not be used afterwards.
func (b *Builder) Finish() Skeleton {
	b.finalize()
	return b.skel
}

func (b *Builder) finalize() {
	if len(b.current) >= 2 {
		b.skel.Strands = append(b.skel.Strands, b.current)
	}
	b.current = nil
}
