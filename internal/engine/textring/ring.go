// Package textring lays out a repeated phrase as a ring of glyphs
// orbiting the scene.
package textring

import (
	gomath "math"

	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// Separator is appended to the phrase before repeating it, spacing the
// copies apart on the ring.
const Separator = "   "

// RepeatCount is how many times the phrase+separator block repeats
// around the circle.
const RepeatCount = 20

// GlyphPlacement is one glyph on the ring, in ring-local space.
type GlyphPlacement struct {
	Char rune
	// Position is on the circle in the ring's local XZ plane, Y = 0.
	Position math.Vec3
	// FacingAngle is the yaw that makes the glyph face outward,
	// readable from outside the ring.
	FacingAngle float32
}

// Layout places every character of the repeated phrase evenly around a
// circle of the given radius. Spaces get placements too (they occupy
// arc length but draw nothing). Glyph i sits at theta = i/N * 2pi and
// faces theta + pi.
func Layout(phrase string, radius float32) []GlyphPlacement {
	stream := []rune(phrase + Separator)
	n := len(stream) * RepeatCount
	if n == 0 {
		return nil
	}

	placements := make([]GlyphPlacement, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) / float64(n) * 2 * gomath.Pi
		placements = append(placements, GlyphPlacement{
			Char: stream[i%len(stream)],
			Position: math.Vec3{
				X: radius * float32(gomath.Cos(theta)),
				Z: radius * float32(gomath.Sin(theta)),
			},
			FacingAngle: float32(theta) + gomath.Pi,
		})
	}
	return placements
}

// Ring caches the glyph layout and carries the continuous rotation.
// The layout is re-derived only when phrase, radius, or tilt change;
// the per-frame yaw advance is independent of relayout.
type Ring struct {
	phrase  string
	radius  float32
	tiltDeg float32

	yaw        float32
	placements []GlyphPlacement
}

// Configure updates the layout inputs, relaying out only when one of
// them changed. Returns whether a relayout happened.
func (r *Ring) Configure(phrase string, radius, tiltDeg float32) bool {
	if phrase == r.phrase && radius == r.radius && tiltDeg == r.tiltDeg && r.placements != nil {
		return false
	}

	relayout := phrase != r.phrase || radius != r.radius || r.placements == nil
	r.phrase = phrase
	r.radius = radius
	r.tiltDeg = tiltDeg
	if relayout {
		r.placements = Layout(phrase, radius)
	}
	return relayout
}

// Placements returns the current glyph layout.
func (r *Ring) Placements() []GlyphPlacement {
	return r.placements
}

// Advance accumulates the per-frame yaw rotation. The angle is
// unbounded; it wraps naturally through the periodic trig in the
// transform, no modulo needed.
func (r *Ring) Advance(speed float32) {
	r.yaw += speed
}

// Yaw returns the accumulated ring rotation in radians.
func (r *Ring) Yaw() float32 {
	return r.yaw
}

// Transform returns the ring's parent transform: the tilt about the
// local X axis with the accumulated yaw about the vertical axis.
func (r *Ring) Transform() math.Mat4 {
	return math.RotateX(math.Radians(r.tiltDeg)).Mul(math.RotateY(r.yaw))
}

// GlyphTransform returns the world transform for one placement under
// the ring's parent transform.
func (r *Ring) GlyphTransform(p GlyphPlacement) math.Mat4 {
	local := math.Translate(p.Position.X, p.Position.Y, p.Position.Z).
		Mul(math.RotateY(p.FacingAngle))
	return r.Transform().Mul(local)
}
