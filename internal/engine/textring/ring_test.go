package textring

import (
	gomath "math"
	"testing"

	"github.com/25ohms/rotating-prism-td/pkg/math"
)

func TestLayoutCount(t *testing.T) {
	// "AB" + 3-space separator = 5 chars, repeated 20 times
	got := Layout("AB", 10)
	if len(got) != 100 {
		t.Fatalf("glyph count = %d, want 100", len(got))
	}
}

func TestLayoutPlacement(t *testing.T) {
	radius := float32(10)
	got := Layout("AB", radius)

	// Index 0 at angle 0: position (radius, 0, 0)
	first := got[0]
	if first.Char != 'A' {
		t.Errorf("glyph 0 = %q, want 'A'", first.Char)
	}
	if !approxVec(first.Position, math.Vec3{X: radius}) {
		t.Errorf("glyph 0 position = %v, want (%v,0,0)", first.Position, radius)
	}
	if !approx(first.FacingAngle, gomath.Pi) {
		t.Errorf("glyph 0 facing = %v, want pi", first.FacingAngle)
	}

	// Index 50 at angle pi: position (-radius, 0, 0)
	half := got[50]
	if !approxVec(half.Position, math.Vec3{X: -radius}) {
		t.Errorf("glyph 50 position = %v, want (-%v,0,0)", half.Position, radius)
	}
	if !approx(half.FacingAngle, 2*gomath.Pi) {
		t.Errorf("glyph 50 facing = %v, want 2pi", half.FacingAngle)
	}

	// All glyphs sit on the circle at local Y = 0
	for i, p := range got {
		if p.Position.Y != 0 {
			t.Fatalf("glyph %d has Y = %v", i, p.Position.Y)
		}
		r := p.Position.Length()
		if !approx(r, radius) {
			t.Fatalf("glyph %d radius = %v, want %v", i, r, radius)
		}
	}
}

func TestLayoutRepeatsStream(t *testing.T) {
	got := Layout("AB", 5)
	// Stream is "AB   " cycled
	want := []rune("AB   ")
	for i, p := range got {
		if p.Char != want[i%len(want)] {
			t.Fatalf("glyph %d = %q, want %q", i, p.Char, want[i%len(want)])
		}
	}
}

func TestLayoutEmptyPhrase(t *testing.T) {
	// Empty phrase still carries the separator spaces
	got := Layout("", 5)
	if len(got) != len(Separator)*RepeatCount {
		t.Errorf("glyph count = %d, want %d", len(got), len(Separator)*RepeatCount)
	}
}

func TestConfigureRelayoutsOnlyOnChange(t *testing.T) {
	var r Ring

	if !r.Configure("HI", 20, 10) {
		t.Fatal("first Configure did not lay out")
	}
	n := len(r.Placements())

	if r.Configure("HI", 20, 10) {
		t.Error("unchanged Configure relaid out")
	}

	// Tilt-only change keeps the derived glyph set
	if r.Configure("HI", 20, 35) {
		t.Error("tilt change forced a relayout")
	}
	if len(r.Placements()) != n {
		t.Error("placements changed on tilt-only update")
	}

	if !r.Configure("HI THERE", 20, 35) {
		t.Error("phrase change did not relayout")
	}
	if !r.Configure("HI THERE", 25, 35) {
		t.Error("radius change did not relayout")
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	var r Ring
	r.Configure("X", 10, 0)

	for i := 0; i < 1000; i++ {
		r.Advance(0.02)
	}
	want := float32(1000 * 0.02)
	if got := r.Yaw(); !approx(got, want) {
		t.Errorf("yaw = %v, want %v", got, want)
	}

	// Rotation is unbounded; no wrapping is applied
	for i := 0; i < 100000; i++ {
		r.Advance(0.02)
	}
	if r.Yaw() < 100 {
		t.Errorf("yaw = %v, expected unbounded accumulation", r.Yaw())
	}
}

func TestGlyphTransformPlacesOnTiltedRing(t *testing.T) {
	var r Ring
	r.Configure("X", 10, 0)

	p := r.Placements()[0]
	world := r.GlyphTransform(p).TransformPoint(math.Vec3{})
	if !approxVec(world, p.Position) {
		t.Errorf("untilted glyph origin = %v, want %v", world, p.Position)
	}

	// A 90 degree tilt folds the ring's local XZ plane into XY
	r.Configure("X", 10, 90)
	world = r.GlyphTransform(r.Placements()[25]).TransformPoint(math.Vec3{})
	if !approx(world.Z, 0) {
		t.Errorf("tilted glyph Z = %v, want 0", world.Z)
	}
	if approx(world.Y, 0) {
		t.Errorf("tilted glyph Y = %v, want nonzero", world.Y)
	}
}

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func approxVec(a, b math.Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}
