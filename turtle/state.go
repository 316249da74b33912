// Package turtle models the movable, oriented cursor whose trajectory
// and pen state define the geometry produced by instruction
// interpretation: a world-space position, an orthonormal orientation
// frame, and the drawing attributes sampled onto skeleton points.
package turtle

// Color is an RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float64
}

// White is the default pen color: opaque white.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Clamp returns the color with every channel clamped to [0,1].
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// State is the full pen state of the turtle. It is a plain value:
// copying it snapshots the turtle, which is exactly what the branching
// stack does.
type State struct {
	Position   Vec3
	Frame      Frame
	Width      float64
	Color      Color
	MaterialID int
	UVScale    float64
}

// NewState returns a turtle at the origin with the identity frame, the
// given stroke width, opaque white color, material 0 and unit UV scale.
func NewState(width float64) State {
	if width < 0 {
		width = 0
	}
	return State{
		Frame:   IdentityFrame(),
		Width:   width,
		Color:   White,
		UVScale: 1,
	}
}

// Advance moves the turtle along its heading by length.
func (s *State) Advance(length float64) {
	s.Position = s.Position.Add(s.Frame.Heading.Scale(length))
}

// SetWidth sets the stroke width, clamping negatives to zero.
func (s *State) SetWidth(w float64) {
	if w < 0 {
		w = 0
	}
	s.Width = w
}

// SetGray sets an opaque grayscale color.
func (s *State) SetGray(g float64) {
	s.Color = Color{R: g, G: g, B: g, A: 1}.Clamp()
}

// SetRGB sets an opaque color.
func (s *State) SetRGB(r, g, b float64) {
	s.Color = Color{R: r, G: g, B: b, A: 1}.Clamp()
}

// SetRGBA sets a color with explicit alpha.
func (s *State) SetRGBA(r, g, b, a float64) {
	s.Color = Color{R: r, G: g, B: b, A: a}.Clamp()
}

// SetUVScale sets the texture coordinate scale. Non-positive values
// are ignored so the scale stays strictly positive.
func (s *State) SetUVScale(scale float64) {
	if scale > 0 {
		s.UVScale = scale
	}
}
