package camera

import "github.com/25ohms/rotating-prism-td/pkg/math"

// Orbit accumulates mouse-drag offsets that swing the view around the
// scene origin on top of the rig placement. The lockCamera parameter
// freezes it without touching the rig itself.
type Orbit struct {
	Yaw   float32 // radians around world Y
	Pitch float32 // radians around world X

	MinPitch        float32
	MaxPitch        float32
	DragSensitivity float32

	locked bool
}

// NewOrbit creates an orbit input handler with default sensitivity.
func NewOrbit() *Orbit {
	return &Orbit{
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
	}
}

// SetLocked enables or disables drag input.
func (o *Orbit) SetLocked(locked bool) {
	o.locked = locked
}

// Locked reports whether drag input is ignored.
func (o *Orbit) Locked() bool {
	return o.locked
}

// HandleDrag updates yaw/pitch from a mouse drag delta. Ignored while
// locked.
func (o *Orbit) HandleDrag(deltaX, deltaY float32) {
	if o.locked {
		return
	}

	o.Yaw += deltaX * o.DragSensitivity
	o.Pitch += deltaY * o.DragSensitivity

	if o.Pitch < o.MinPitch {
		o.Pitch = o.MinPitch
	}
	if o.Pitch > o.MaxPitch {
		o.Pitch = o.MaxPitch
	}
}

// Matrix returns the world-space orbit rotation to compose with the rig
// view (view * orbit rotates the scene around the origin under the
// camera).
func (o *Orbit) Matrix() math.Mat4 {
	return math.RotateX(o.Pitch).Mul(math.RotateY(o.Yaw))
}
