// Package descriptor loads the externally authored scene descriptor that
// drives camera and key-light placement.
package descriptor

import (
	"encoding/json"
	"fmt"

	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// Defaults for optional descriptor fields.
const (
	DefaultFov          = 45.0
	DefaultNear         = 0.1
	DefaultFar          = 2000.0
	DefaultConeAngleDeg = 30.0
)

// CameraSpec is the camera placement from the descriptor document.
// RotationDeg is Euler degrees applied in intrinsic X, Y, Z order
// (see math.EulerXYZ).
type CameraSpec struct {
	Position    math.Vec3
	RotationDeg math.Vec3
	Fov         float32
	Near        float32
	Far         float32
}

// LightSpec is the key-light placement from the descriptor document.
type LightSpec struct {
	Position     math.Vec3
	ConeAngleDeg float32
}

// Descriptor is the parsed scene descriptor. Immutable once loaded.
type Descriptor struct {
	Camera CameraSpec
	Light  LightSpec
}

// wire mirrors the JSON document shape.
type wire struct {
	Camera struct {
		Position    []float32 `json:"position"`
		RotationDeg []float32 `json:"rotation_deg"`
		Fov         *float32  `json:"fov"`
		Near        *float32  `json:"near"`
		Far         *float32  `json:"far"`
	} `json:"camera"`
	Light struct {
		Position     []float32 `json:"position"`
		ConeAngleDeg *float32  `json:"cone_angle_deg"`
	} `json:"light"`
}

// Parse decodes and validates a descriptor document. A missing or
// malformed position/rotation array is an error: a partially applied
// camera or light transform risks an invalid projection state, so scene
// setup must fail as a whole.
func Parse(data []byte) (*Descriptor, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing descriptor: %w", err)
	}

	camPos, err := vec3Field(w.Camera.Position, "camera.position")
	if err != nil {
		return nil, err
	}
	camRot, err := vec3Field(w.Camera.RotationDeg, "camera.rotation_deg")
	if err != nil {
		return nil, err
	}
	lightPos, err := vec3Field(w.Light.Position, "light.position")
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Camera: CameraSpec{
			Position:    camPos,
			RotationDeg: camRot,
			Fov:         DefaultFov,
			Near:        DefaultNear,
			Far:         DefaultFar,
		},
		Light: LightSpec{
			Position:     lightPos,
			ConeAngleDeg: DefaultConeAngleDeg,
		},
	}

	if w.Camera.Fov != nil {
		d.Camera.Fov = *w.Camera.Fov
	}
	if w.Camera.Near != nil {
		d.Camera.Near = *w.Camera.Near
	}
	if w.Camera.Far != nil {
		d.Camera.Far = *w.Camera.Far
	}
	if w.Light.ConeAngleDeg != nil {
		d.Light.ConeAngleDeg = *w.Light.ConeAngleDeg
	}

	if d.Camera.Near <= 0 || d.Camera.Far <= d.Camera.Near {
		return nil, fmt.Errorf("descriptor: invalid near/far planes %v/%v", d.Camera.Near, d.Camera.Far)
	}
	if d.Camera.Fov <= 0 || d.Camera.Fov >= 180 {
		return nil, fmt.Errorf("descriptor: invalid fov %v", d.Camera.Fov)
	}

	return d, nil
}

// ConeHalfAngle returns the live spotlight half-angle in radians.
func (l LightSpec) ConeHalfAngle() float32 {
	return math.Radians(l.ConeAngleDeg / 2)
}

func vec3Field(vals []float32, name string) (math.Vec3, error) {
	if len(vals) != 3 {
		return math.Vec3{}, fmt.Errorf("descriptor: %s must be a 3-element array, got %d elements", name, len(vals))
	}
	return math.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
