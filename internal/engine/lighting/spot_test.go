package lighting

import (
	"testing"

	"github.com/25ohms/rotating-prism-td/internal/descriptor"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

func TestPlacementBacksOffAlongAimLine(t *testing.T) {
	nominal := math.Vec3{X: 0, Y: 50, Z: 0}
	target := math.Vec3{}

	got := Placement(nominal, target, 50)
	want := math.Vec3{X: 0, Y: 100, Z: 0}
	if !approxVec(got, want) {
		t.Errorf("Placement() = %v, want %v", got, want)
	}

	// Placed position lies on the ray from target through nominal, at
	// distance |nominal| + backoff from the target.
	if d := got.Distance(target); d < 99.99 || d > 100.01 {
		t.Errorf("distance from target = %v, want 100", d)
	}
}

func TestPlacementDiagonal(t *testing.T) {
	nominal := math.Vec3{X: 30, Y: 40, Z: 0} // |nominal| = 50
	got := Placement(nominal, math.Vec3{}, 50)

	// Doubling along the same ray
	want := math.Vec3{X: 60, Y: 80, Z: 0}
	if !approxVec(got, want) {
		t.Errorf("Placement() = %v, want %v", got, want)
	}
}

func TestApply(t *testing.T) {
	var rig SpotRig
	if rig.Applied() {
		t.Fatal("zero rig reports applied")
	}

	rig.Apply(nil)
	if rig.Applied() {
		t.Error("Apply(nil) marked rig applied")
	}

	rig.Apply(&descriptor.LightSpec{
		Position:     math.Vec3{X: 0, Y: 50, Z: 0},
		ConeAngleDeg: 30,
	})

	if !rig.Applied() {
		t.Fatal("rig not applied after Apply")
	}
	if !approxVec(rig.Position, math.Vec3{X: 0, Y: 100, Z: 0}) {
		t.Errorf("position = %v, want (0,100,0)", rig.Position)
	}
	if rig.Target != (math.Vec3{}) {
		t.Errorf("target = %v, want origin", rig.Target)
	}
	// 15 degrees in radians
	if rig.HalfAngle < 0.2617 || rig.HalfAngle > 0.2619 {
		t.Errorf("half angle = %v, want ~0.2618", rig.HalfAngle)
	}
	if rig.Intensity != Intensity || rig.Penumbra != Penumbra {
		t.Errorf("intensity/penumbra = %v/%v, want %v/%v",
			rig.Intensity, rig.Penumbra, float32(Intensity), float32(Penumbra))
	}

	dir := rig.Direction()
	if !approxVec(dir, math.Vec3{X: 0, Y: -1, Z: 0}) {
		t.Errorf("direction = %v, want (0,-1,0)", dir)
	}
}

func approxVec(a, b math.Vec3) bool {
	const eps = 1e-4
	d := a.Sub(b)
	return d.X < eps && d.X > -eps && d.Y < eps && d.Y > -eps && d.Z < eps && d.Z > -eps
}
