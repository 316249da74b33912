package turtle

// degenerateEps guards axis computations against near-parallel vectors.
const degenerateEps = 1e-6

// Frame is an orthonormal orientation basis. Heading is the direction
// of forward motion, Up the local yaw axis, and Left completes the
// right-handed triple (Heading x Left = Up, Left = Up x Heading).
//
// Each mutation is a pure function from frame to frame; the result is
// re-orthogonalized so rounding error cannot accumulate across long
// instruction sequences.
type Frame struct {
	Heading Vec3
	Up      Vec3
	Left    Vec3
}

// IdentityFrame returns the initial orientation: heading along world
// +Y, up along +Z, left along -X. With this basis a positive yaw sends
// heading from +Y toward -X and a positive pitch from +Y toward +Z.
func IdentityFrame() Frame {
	return Frame{
		Heading: Vec3{Y: 1},
		Up:      Vec3{Z: 1},
		Left:    Vec3{X: -1},
	}
}

// orthonormalize rebuilds the frame from its heading: heading is
// normalized, up is made perpendicular to it, and left is recomputed
// as up x heading, preserving the rotational sense of the inputs.
func (f Frame) orthonormalize() Frame {
	h := f.Heading.Normalize()
	up := f.Up.Sub(h.Scale(f.Up.Dot(h)))
	if up.LengthSq() < degenerateEps {
		// Up collapsed onto heading; rebuild it from left instead.
		left := f.Left.Sub(h.Scale(f.Left.Dot(h))).Normalize()
		up = h.Cross(left)
	}
	up = up.Normalize()
	return Frame{Heading: h, Up: up, Left: up.Cross(h)}
}

// Yaw rotates heading and left about the up axis by angle radians.
func (f Frame) Yaw(angle float64) Frame {
	f.Heading = rotate(f.Heading, f.Up, angle)
	f.Left = rotate(f.Left, f.Up, angle)
	return f.orthonormalize()
}

// Pitch rotates heading and up about the left axis. A positive angle
// tilts the heading toward the up axis.
func (f Frame) Pitch(angle float64) Frame {
	f.Heading = rotate(f.Heading, f.Left, -angle)
	f.Up = rotate(f.Up, f.Left, -angle)
	return f.orthonormalize()
}

// Roll rotates up and left about the heading axis by angle radians.
func (f Frame) Roll(angle float64) Frame {
	f.Up = rotate(f.Up, f.Heading, angle)
	f.Left = rotate(f.Left, f.Heading, angle)
	return f.orthonormalize()
}

// TurnAround reverses heading and left, leaving up unchanged. This is
// an exact 180 degree yaw with no trigonometry involved.
func (f Frame) TurnAround() Frame {
	f.Heading = f.Heading.Neg()
	f.Left = f.Left.Neg()
	return f
}

// AlignVertical levels the frame against WorldUp: up becomes the world
// vertical and heading its own projection onto the horizontal plane.
// If heading is nearly parallel to WorldUp the projection is
// degenerate; heading is then left unchanged and only up and left are
// re-orthogonalized against it.
func (f Frame) AlignVertical() Frame {
	proj := f.Heading.Sub(WorldUp.Scale(f.Heading.Dot(WorldUp)))
	if proj.LengthSq() < degenerateEps {
		return f.orthonormalize()
	}
	h := proj.Normalize()
	return Frame{Heading: h, Up: WorldUp, Left: WorldUp.Cross(h)}
}

// Bend pulls the heading toward the tropism vector by elasticity in
// [0,1]: the component of tropism perpendicular to the heading is
// scaled by elasticity and added to it. Elasticity 0 leaves the frame
// untouched; up and left follow the heading via re-orthogonalization.
func (f Frame) Bend(tropism Vec3, elasticity float64) Frame {
	if elasticity <= 0 {
		return f
	}
	perp := tropism.Sub(f.Heading.Scale(tropism.Dot(f.Heading)))
	bent := f.Heading.Add(perp.Scale(elasticity))
	if bent.LengthSq() < degenerateEps {
		return f
	}
	f.Heading = bent
	return f.orthonormalize()
}
