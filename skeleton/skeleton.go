// Package skeleton defines the geometric output of turtle
// interpretation: polyline strands of sampled points plus discretely
// placed props, and the builder that decides where one strand ends and
// the next begins.
//
// Material state is palette-indexed: each point carries a color, a
// material ID and a UV scale, and a downstream palette resolves the
// material ID to full surface properties. PBR detail is never stored
// inline.
package skeleton

import "github.com/turtle3d-xyz/go-turtle3d/turtle"

// Point is a sample along a strand, taken from the turtle state at the
// moment a draw completed. Radius is half the turtle's stroke width.
type Point struct {
	Position   turtle.Vec3  `json:"position" cbor:"1,keyasint"`
	Frame      turtle.Frame `json:"frame" cbor:"2,keyasint"`
	Radius     float64      `json:"radius" cbor:"3,keyasint"`
	Color      turtle.Color `json:"color" cbor:"4,keyasint"`
	MaterialID int          `json:"material_id" cbor:"5,keyasint"`
	UVScale    float64      `json:"uv_scale" cbor:"6,keyasint"`
}

// Strand is one continuous polyline. Point order is geometric order
// along the polyline and must be preserved by consumers.
type Strand []Point

// Prop is a discrete object (leaf, flower) recorded as a transform
// rather than as polyline geometry. Color and material are inherited
// from the turtle at spawn time so renderers can style props with the
// same palette as strands.
type Prop struct {
	Position   turtle.Vec3  `json:"position" cbor:"1,keyasint"`
	Frame      turtle.Frame `json:"frame" cbor:"2,keyasint"`
	PropID     int          `json:"prop_id" cbor:"3,keyasint"`
	Scale      float64      `json:"scale" cbor:"4,keyasint"`
	Color      turtle.Color `json:"color" cbor:"5,keyasint"`
	MaterialID int          `json:"material_id" cbor:"6,keyasint"`
}

// Skeleton is the sole output of interpretation. Strand and prop order
// follow instruction order.
type Skeleton struct {
	Strands []Strand `json:"strands" cbor:"1,keyasint"`
	Props   []Prop   `json:"props" cbor:"2,keyasint"`
}

// PointCount returns the total number of points across all strands.
func (s *Skeleton) PointCount() int {
	n := 0
	for _, strand := range s.Strands {
		n += len(strand)
	}
	return n
}

// PointFrom samples a point from the turtle state.
func PointFrom(st turtle.State) Point {
	return Point{
		Position:   st.Position,
		Frame:      st.Frame,
		Radius:     st.Width / 2,
		Color:      st.Color,
		MaterialID: st.MaterialID,
		UVScale:    st.UVScale,
	}
}
