package turtle

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps || math.Abs(got.Z-want.Z) > eps {
		t.Errorf("%s: expected (%g, %g, %g), got (%g, %g, %g)",
			name, want.X, want.Y, want.Z, got.X, got.Y, got.Z)
	}
}

func checkOrthonormal(t *testing.T, f Frame) {
	t.Helper()
	for _, axis := range []struct {
		name string
		v    Vec3
	}{{"heading", f.Heading}, {"up", f.Up}, {"left", f.Left}} {
		if math.Abs(axis.v.Length()-1) > eps {
			t.Errorf("%s not unit length: %g", axis.name, axis.v.Length())
		}
	}
	if d := f.Heading.Dot(f.Up); math.Abs(d) > eps {
		t.Errorf("heading.up = %g, expected 0", d)
	}
	if d := f.Heading.Dot(f.Left); math.Abs(d) > eps {
		t.Errorf("heading.left = %g, expected 0", d)
	}
	if d := f.Up.Dot(f.Left); math.Abs(d) > eps {
		t.Errorf("up.left = %g, expected 0", d)
	}
}

func TestIdentityFrameOrthonormal(t *testing.T) {
	checkOrthonormal(t, IdentityFrame())
}

func TestYaw(t *testing.T) {
	// Positive yaw turns left: +Y heading swings toward -X.
	f := IdentityFrame().Yaw(math.Pi / 2)
	vecNear(t, "heading", f.Heading, Vec3{X: -1})
	checkOrthonormal(t, f)

	f = IdentityFrame().Yaw(-math.Pi / 2)
	vecNear(t, "heading", f.Heading, Vec3{X: 1})
	checkOrthonormal(t, f)
}

func TestPitch(t *testing.T) {
	// Positive pitch tilts heading toward the up axis: +Y toward +Z.
	f := IdentityFrame().Pitch(math.Pi / 2)
	vecNear(t, "heading", f.Heading, Vec3{Z: 1})
	checkOrthonormal(t, f)

	f = IdentityFrame().Pitch(-math.Pi / 2)
	vecNear(t, "heading", f.Heading, Vec3{Z: -1})
	checkOrthonormal(t, f)
}

func TestRollThenPitch(t *testing.T) {
	// Rolling alone never changes the heading, but it redirects the
	// pitch axis: a quarter roll turns a pitch into a sideways turn.
	f := IdentityFrame().Roll(math.Pi / 2)
	vecNear(t, "heading after roll", f.Heading, Vec3{Y: 1})

	f = f.Pitch(math.Pi / 2)
	vecNear(t, "heading", f.Heading, Vec3{X: 1})
	checkOrthonormal(t, f)

	f = IdentityFrame().Roll(-math.Pi / 2).Pitch(math.Pi / 2)
	vecNear(t, "heading", f.Heading, Vec3{X: -1})
	checkOrthonormal(t, f)
}

func TestTurnAround(t *testing.T) {
	f := IdentityFrame().TurnAround()
	vecNear(t, "heading", f.Heading, Vec3{Y: -1})
	vecNear(t, "up", f.Up, Vec3{Z: 1})
	vecNear(t, "left", f.Left, Vec3{X: 1})
	checkOrthonormal(t, f)

	// Two turnarounds restore the frame exactly: no trigonometry.
	f = f.TurnAround()
	vecNear(t, "heading", f.Heading, IdentityFrame().Heading)
	vecNear(t, "left", f.Left, IdentityFrame().Left)
}

func TestAlignVertical(t *testing.T) {
	// A pitched frame levels out: heading becomes its horizontal
	// projection and up becomes the world vertical.
	f := IdentityFrame().Pitch(math.Pi / 4).AlignVertical()
	vecNear(t, "heading", f.Heading, Vec3{Z: 1})
	vecNear(t, "up", f.Up, WorldUp)
	checkOrthonormal(t, f)
}

func TestAlignVerticalDegenerate(t *testing.T) {
	// Heading parallel to world up: projection is degenerate, heading
	// must be left alone and the frame must stay orthonormal.
	f := IdentityFrame()
	aligned := f.AlignVertical()
	vecNear(t, "heading", aligned.Heading, f.Heading)
	checkOrthonormal(t, aligned)

	down := f.TurnAround().AlignVertical()
	vecNear(t, "heading", down.Heading, Vec3{Y: -1})
	checkOrthonormal(t, down)
}

func TestBendZeroElasticity(t *testing.T) {
	f := IdentityFrame()
	tropism := Vec3{X: 3, Y: -1, Z: 0.5}
	bent := f.Bend(tropism, 0)
	if bent != f {
		t.Errorf("Expected frame unchanged at elasticity 0, got %+v", bent)
	}
}

func TestBendPullsTowardTropism(t *testing.T) {
	f := IdentityFrame()
	tropism := Vec3{X: 1}
	bent := f.Bend(tropism, 0.5)

	before := f.Heading.Dot(tropism)
	after := bent.Heading.Dot(tropism)
	if after <= before {
		t.Errorf("Expected heading to move toward tropism: dot %g -> %g", before, after)
	}
	checkOrthonormal(t, bent)

	// Tropism parallel to heading has no perpendicular component.
	straight := f.Bend(Vec3{Y: 5}, 1)
	vecNear(t, "heading", straight.Heading, f.Heading)
}

func TestOrthonormalityUnderManyRotations(t *testing.T) {
	f := IdentityFrame()
	for i := 0; i < 1000; i++ {
		f = f.Yaw(0.3).Pitch(0.17).Roll(-0.41)
	}
	checkOrthonormal(t, f)
}
