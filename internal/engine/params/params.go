// Package params is the binding layer between the external live
// parameter source and the scene components. It declares the recognized
// parameters, their ranges and defaults, and exposes a comparable
// per-frame snapshot so components react to changes without any shared
// reactive state.
package params

import "github.com/25ohms/rotating-prism-td/internal/engine/ramp"

// DefaultRampPath is the fallback used whenever the ramp parameter
// cannot be resolved.
const DefaultRampPath = "assets/ramps/fiveTone.png"

// Parameter ranges.
const (
	AmbientMin = 0.0
	AmbientMax = 1.0

	TiltMinDeg = -90.0
	TiltMaxDeg = 90.0

	RadiusMin = 1.0

	SpeedMin = -0.5
	SpeedMax = 0.5
)

// Set holds the current value of every live parameter. RampFile keeps
// the raw shape the source produced (string or object); it is
// normalized at snapshot time.
type Set struct {
	Ambient         float32 // object shading ambient bias, [0,1]
	RampFile        any     // ramp selector, any supported shape
	BlackBackground bool    // removes the enclosure, flat clear instead
	LockCamera      bool    // freezes external orbit input
	OrbitText       string  // ring phrase
	OrbitTilt       float32 // ring tilt, degrees
	OrbitRadius     float32 // ring radius, world units
	Speed           float32 // ring angular speed, radians per frame
}

// New returns the parameter set with its declared defaults.
func New() *Set {
	return &Set{
		Ambient:     0.2,
		RampFile:    DefaultRampPath,
		OrbitText:   "ROTATING PRISM",
		OrbitTilt:   15,
		OrbitRadius: 30,
		Speed:       0.01,
	}
}

// Snapshot is the comparable per-frame view of the parameter set.
// Components diff consecutive snapshots to decide what to update; a
// change is observable in the next rendered frame.
type Snapshot struct {
	Ambient         float32
	RampPath        string
	BlackBackground bool
	LockCamera      bool
	OrbitText       string
	OrbitTilt       float32
	OrbitRadius     float32
	Speed           float32
}

// Snapshot clamps current values into their declared ranges and
// resolves the ramp parameter to a concrete path.
func (s *Set) Snapshot() Snapshot {
	return Snapshot{
		Ambient:         clamp(s.Ambient, AmbientMin, AmbientMax),
		RampPath:        ramp.ResolvePath(s.RampFile, DefaultRampPath),
		BlackBackground: s.BlackBackground,
		LockCamera:      s.LockCamera,
		OrbitText:       s.OrbitText,
		OrbitTilt:       clamp(s.OrbitTilt, TiltMinDeg, TiltMaxDeg),
		OrbitRadius:     clampMin(s.OrbitRadius, RadiusMin),
		Speed:           clamp(s.Speed, SpeedMin, SpeedMax),
	}
}

// AdjustAmbient nudges the ambient bias, clamped to its range.
func (s *Set) AdjustAmbient(delta float32) {
	s.Ambient = clamp(s.Ambient+delta, AmbientMin, AmbientMax)
}

// AdjustSpeed nudges the ring speed, clamped to its range.
func (s *Set) AdjustSpeed(delta float32) {
	s.Speed = clamp(s.Speed+delta, SpeedMin, SpeedMax)
}

// CycleRamp advances the ramp selector through the given path list,
// relative to the currently resolved path.
func (s *Set) CycleRamp(paths []string) {
	if len(paths) == 0 {
		return
	}

	current := ramp.ResolvePath(s.RampFile, DefaultRampPath)
	next := paths[0]
	for i, p := range paths {
		if p == current {
			next = paths[(i+1)%len(paths)]
			break
		}
	}
	s.RampFile = next
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMin(v, lo float32) float32 {
	if v < lo {
		return lo
	}
	return v
}
