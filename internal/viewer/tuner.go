package viewer

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

// Tuning step sizes per key press.
const (
	ambientStep = 0.05
	speedStep   = 0.005
)

// handleKey maps keyboard input to live parameter edits. The edits land
// in the parameter set; applyParams picks them up on the same frame.
//
//	ESC        quit
//	[ / ]      ambient down / up
//	- / =      ring speed down / up
//	R          cycle ramp texture
//	B          toggle black background
//	L          toggle camera lock
//	F12        screenshot
//	F5         save current parameters to the user config
func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_LEFTBRACKET:
		v.params.AdjustAmbient(-ambientStep)

	case sdl.SCANCODE_RIGHTBRACKET:
		v.params.AdjustAmbient(ambientStep)

	case sdl.SCANCODE_MINUS:
		v.params.AdjustSpeed(-speedStep)

	case sdl.SCANCODE_EQUALS:
		v.params.AdjustSpeed(speedStep)

	case sdl.SCANCODE_R:
		v.params.CycleRamp(v.cfg.Scene.Ramps)

	case sdl.SCANCODE_B:
		v.params.BlackBackground = !v.params.BlackBackground

	case sdl.SCANCODE_L:
		v.params.LockCamera = !v.params.LockCamera

	case sdl.SCANCODE_F12:
		v.pendingShot = true

	case sdl.SCANCODE_F5:
		v.saveParams()
	}
}

// saveParams writes the current parameter values back into the config
// and persists it, so a tuned setup survives restarts.
func (v *Viewer) saveParams() {
	snap := v.params.Snapshot()

	v.cfg.Params.Ambient = snap.Ambient
	v.cfg.Params.RampFile = snap.RampPath
	v.cfg.Params.BlackBackground = snap.BlackBackground
	v.cfg.Params.LockCamera = snap.LockCamera
	v.cfg.Params.OrbitText = snap.OrbitText
	v.cfg.Params.OrbitTilt = snap.OrbitTilt
	v.cfg.Params.OrbitRadius = snap.OrbitRadius
	v.cfg.Params.Speed = snap.Speed

	if err := v.cfg.Save(); err != nil {
		slog.Error("config save failed", "error", err)
		return
	}
	slog.Info("parameters saved")
}
