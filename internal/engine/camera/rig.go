// Package camera provides the descriptor-driven camera rig.
package camera

import (
	"github.com/25ohms/rotating-prism-td/internal/descriptor"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// Rig is the active scene camera. Its placement comes from the scene
// descriptor; until a descriptor is applied it holds the default engine
// camera so a failed descriptor load still produces a stable view.
type Rig struct {
	Position    math.Vec3
	RotationDeg math.Vec3

	// Fov is vertical field of view in degrees.
	Fov  float32
	Near float32
	Far  float32

	aspect float32
	proj   math.Mat4
	view   math.Mat4
}

// NewRig creates a camera rig with the default engine placement.
func NewRig(aspect float32) *Rig {
	r := &Rig{
		Position: math.Vec3{X: 0, Y: 10, Z: 60},
		Fov:      descriptor.DefaultFov,
		Near:     descriptor.DefaultNear,
		Far:      descriptor.DefaultFar,
		aspect:   aspect,
	}
	r.update()
	return r
}

// Apply sets the rig from a camera spec and recomputes both matrices so
// the new fov/near/far take effect immediately. A nil spec is a no-op.
// Applying the same spec twice leaves the rig state unchanged.
func (r *Rig) Apply(spec *descriptor.CameraSpec) {
	if spec == nil {
		return
	}

	r.Position = spec.Position
	r.RotationDeg = spec.RotationDeg
	r.Fov = spec.Fov
	r.Near = spec.Near
	r.Far = spec.Far
	r.update()
}

// SetAspect updates the aspect ratio (width/height) on window resize.
func (r *Rig) SetAspect(aspect float32) {
	if aspect == r.aspect || aspect <= 0 {
		return
	}
	r.aspect = aspect
	r.update()
}

// Projection returns the current projection matrix.
func (r *Rig) Projection() math.Mat4 {
	return r.proj
}

// View returns the current view matrix (no orbit offsets applied).
func (r *Rig) View() math.Mat4 {
	return r.view
}

func (r *Rig) update() {
	r.proj = math.Perspective(math.Radians(r.Fov), r.aspect, r.Near, r.Far)

	// View is the inverse of the camera's world transform. Rotation uses
	// the intrinsic X,Y,Z Euler order the descriptor is authored against.
	world := math.Translate(r.Position.X, r.Position.Y, r.Position.Z).
		Mul(math.EulerXYZ(
			math.Radians(r.RotationDeg.X),
			math.Radians(r.RotationDeg.Y),
			math.Radians(r.RotationDeg.Z),
		))
	r.view = world.Inverse()
}
