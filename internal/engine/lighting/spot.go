// Package lighting derives the key-light placement from the scene
// descriptor.
package lighting

import (
	"github.com/25ohms/rotating-prism-td/internal/descriptor"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// Engineering constants for the spotlight. Intensity and penumbra are
// fixed; only position and cone angle come from the descriptor.
const (
	// BackoffDistance pulls the light away from the target along the
	// aim line, widening and softening the throw relative to the raw
	// authored position.
	BackoffDistance = 50.0

	Intensity = 2.0
	Penumbra  = 0.5
)

// SpotRig is the derived spotlight state. The aim target is fixed at
// the world origin. Intensity and Penumbra carry the engineering
// constants once applied, alongside the descriptor-driven fields.
type SpotRig struct {
	Position  math.Vec3
	Target    math.Vec3
	HalfAngle float32 // radians
	Intensity float32
	Penumbra  float32

	applied bool
}

// Apply derives the light transform from a light spec. A nil spec is a
// no-op; the rig stays unapplied and the scene renders without the
// descriptor light.
func (s *SpotRig) Apply(spec *descriptor.LightSpec) {
	if spec == nil {
		return
	}

	s.Target = math.Vec3{}
	s.Position = Placement(spec.Position, s.Target, BackoffDistance)
	s.HalfAngle = spec.ConeHalfAngle()
	s.Intensity = Intensity
	s.Penumbra = Penumbra
	s.applied = true
}

// Applied reports whether a descriptor light has been applied.
func (s *SpotRig) Applied() bool {
	return s.applied
}

// Direction returns the normalized aim direction from the placed light
// to the target.
func (s *SpotRig) Direction() math.Vec3 {
	return s.Target.Sub(s.Position).Normalize()
}

// Placement computes the placed light position: the nominal position
// pushed backoff units further from the target along the line already
// connecting nominal position to target.
func Placement(nominal, target math.Vec3, backoff float32) math.Vec3 {
	dir := target.Sub(nominal).Normalize()
	return nominal.Add(dir.Scale(-backoff))
}
