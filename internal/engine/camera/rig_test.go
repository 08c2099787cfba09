package camera

import (
	"testing"

	"github.com/25ohms/rotating-prism-td/internal/descriptor"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

func TestApplyNilIsNoop(t *testing.T) {
	r := NewRig(16.0 / 9.0)
	before := *r
	r.Apply(nil)
	if *r != before {
		t.Error("Apply(nil) changed rig state")
	}
}

func TestApplySetsFields(t *testing.T) {
	r := NewRig(16.0 / 9.0)
	spec := &descriptor.CameraSpec{
		Position:    math.Vec3{X: 1, Y: 2, Z: 3},
		RotationDeg: math.Vec3{X: -15, Y: 30, Z: 0},
		Fov:         60,
		Near:        0.5,
		Far:         800,
	}

	r.Apply(spec)

	if r.Position != spec.Position {
		t.Errorf("position = %v, want %v", r.Position, spec.Position)
	}
	if r.Fov != 60 || r.Near != 0.5 || r.Far != 800 {
		t.Errorf("fov/near/far = %v/%v/%v", r.Fov, r.Near, r.Far)
	}
}

func TestApplyIdempotent(t *testing.T) {
	spec := &descriptor.CameraSpec{
		Position:    math.Vec3{X: 5, Y: 10, Z: 20},
		RotationDeg: math.Vec3{X: -10, Y: 45, Z: 5},
		Fov:         50,
		Near:        0.1,
		Far:         2000,
	}

	r := NewRig(4.0 / 3.0)
	r.Apply(spec)
	first := *r
	r.Apply(spec)

	if *r != first {
		t.Error("second Apply with unchanged spec altered camera state")
	}
}

func TestProjectionTracksFov(t *testing.T) {
	r := NewRig(1)
	p1 := r.Projection()

	r.Apply(&descriptor.CameraSpec{
		Position:    math.Vec3{Z: 10},
		RotationDeg: math.Vec3{},
		Fov:         90,
		Near:        0.1,
		Far:         2000,
	})
	p2 := r.Projection()

	if p1 == p2 {
		t.Error("projection matrix did not change after fov change")
	}
}

func TestViewTranslatesOriginToCameraSpace(t *testing.T) {
	r := NewRig(1)
	r.Apply(&descriptor.CameraSpec{
		Position:    math.Vec3{X: 0, Y: 0, Z: 10},
		RotationDeg: math.Vec3{},
		Fov:         45, Near: 0.1, Far: 2000,
	})

	got := r.View().TransformPoint(math.Vec3{})
	// Camera at z=10 looking down -Z: origin should land 10 units ahead.
	if got.X != 0 || got.Y != 0 || got.Z > -9.99 || got.Z < -10.01 {
		t.Errorf("view * origin = %v, want (0,0,-10)", got)
	}
}

func TestOrbitLock(t *testing.T) {
	o := NewOrbit()
	o.HandleDrag(10, 5)
	if o.Yaw == 0 || o.Pitch == 0 {
		t.Fatal("drag had no effect while unlocked")
	}

	yaw, pitch := o.Yaw, o.Pitch
	o.SetLocked(true)
	o.HandleDrag(50, 50)
	if o.Yaw != yaw || o.Pitch != pitch {
		t.Error("drag changed orbit while locked")
	}

	o.SetLocked(false)
	o.HandleDrag(10, 0)
	if o.Yaw == yaw {
		t.Error("drag ignored after unlock")
	}
}

func TestOrbitPitchClamp(t *testing.T) {
	o := NewOrbit()
	o.HandleDrag(0, 1e6)
	if o.Pitch != o.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", o.Pitch, o.MaxPitch)
	}
}
