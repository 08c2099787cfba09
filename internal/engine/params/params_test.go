package params

import (
	"testing"

	"github.com/25ohms/rotating-prism-td/internal/engine/ramp"
)

func TestDefaults(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	if snap.Ambient != 0.2 {
		t.Errorf("default ambient = %v, want 0.2", snap.Ambient)
	}
	if snap.RampPath != DefaultRampPath {
		t.Errorf("default ramp = %q, want %q", snap.RampPath, DefaultRampPath)
	}
	if snap.BlackBackground || snap.LockCamera {
		t.Error("boolean parameters should default to false")
	}
	if snap.OrbitText == "" {
		t.Error("default phrase is empty")
	}
}

func TestSnapshotClamping(t *testing.T) {
	s := New()
	s.Ambient = 3
	s.OrbitTilt = -200
	s.OrbitRadius = 0
	s.Speed = 9

	snap := s.Snapshot()
	if snap.Ambient != AmbientMax {
		t.Errorf("ambient = %v, want clamped to %v", snap.Ambient, float32(AmbientMax))
	}
	if snap.OrbitTilt != TiltMinDeg {
		t.Errorf("tilt = %v, want clamped to %v", snap.OrbitTilt, float32(TiltMinDeg))
	}
	if snap.OrbitRadius != RadiusMin {
		t.Errorf("radius = %v, want clamped to %v", snap.OrbitRadius, float32(RadiusMin))
	}
	if snap.Speed != SpeedMax {
		t.Errorf("speed = %v, want clamped to %v", snap.Speed, float32(SpeedMax))
	}
}

func TestSnapshotResolvesRampShapes(t *testing.T) {
	s := New()

	s.RampFile = ramp.Ref{Path: "x.png"}
	if got := s.Snapshot().RampPath; got != "x.png" {
		t.Errorf("ref shape resolved to %q", got)
	}

	s.RampFile = map[string]any{"file": "y.png"}
	if got := s.Snapshot().RampPath; got != "y.png" {
		t.Errorf("map shape resolved to %q", got)
	}

	s.RampFile = 12 // nonsense shape falls back, never fails
	if got := s.Snapshot().RampPath; got != DefaultRampPath {
		t.Errorf("bad shape resolved to %q, want default", got)
	}
}

func TestSnapshotComparable(t *testing.T) {
	s := New()
	a := s.Snapshot()
	b := s.Snapshot()
	if a != b {
		t.Error("identical state produced differing snapshots")
	}

	s.AdjustAmbient(0.1)
	if s.Snapshot() == a {
		t.Error("ambient change not visible in snapshot")
	}
}

func TestAdjustClamps(t *testing.T) {
	s := New()
	for i := 0; i < 100; i++ {
		s.AdjustAmbient(0.5)
	}
	if s.Ambient != AmbientMax {
		t.Errorf("ambient = %v after repeated increments, want %v", s.Ambient, float32(AmbientMax))
	}

	for i := 0; i < 100; i++ {
		s.AdjustSpeed(-1)
	}
	if s.Speed != SpeedMin {
		t.Errorf("speed = %v after repeated decrements, want %v", s.Speed, float32(SpeedMin))
	}
}

func TestCycleRamp(t *testing.T) {
	paths := []string{"a.png", "b.png", "c.png"}

	s := New()
	s.RampFile = "b.png"
	s.CycleRamp(paths)
	if got := s.Snapshot().RampPath; got != "c.png" {
		t.Errorf("cycle from b = %q, want c.png", got)
	}

	s.CycleRamp(paths)
	if got := s.Snapshot().RampPath; got != "a.png" {
		t.Errorf("cycle wraps to %q, want a.png", got)
	}

	// Unknown current selects the first entry
	s.RampFile = "elsewhere.png"
	s.CycleRamp(paths)
	if got := s.Snapshot().RampPath; got != "a.png" {
		t.Errorf("cycle from unknown = %q, want a.png", got)
	}

	// Empty list is a no-op
	s.CycleRamp(nil)
	if got := s.Snapshot().RampPath; got != "a.png" {
		t.Errorf("cycle with empty list changed ramp to %q", got)
	}
}
