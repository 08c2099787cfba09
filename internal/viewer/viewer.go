// Package viewer implements the main application loop: descriptor
// polling, live parameter binding, and the per-frame render.
package viewer

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/25ohms/rotating-prism-td/internal/config"
	"github.com/25ohms/rotating-prism-td/internal/descriptor"
	"github.com/25ohms/rotating-prism-td/internal/engine/camera"
	"github.com/25ohms/rotating-prism-td/internal/engine/capture"
	"github.com/25ohms/rotating-prism-td/internal/engine/input"
	"github.com/25ohms/rotating-prism-td/internal/engine/mesh"
	"github.com/25ohms/rotating-prism-td/internal/engine/params"
	"github.com/25ohms/rotating-prism-td/internal/engine/scene"
	"github.com/25ohms/rotating-prism-td/internal/engine/window"
)

// Viewer is the running application instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	shot   *capture.Screenshot

	rig    *camera.Rig
	orbit  *camera.Orbit
	loader *descriptor.Loader

	params *params.Set
	last   params.Snapshot
	// bound is false until the first snapshot has been applied; the
	// first frame applies everything instead of diffing.
	bound bool

	// descriptorApplied latches after the camera and light specs have
	// been pushed to their rigs. The descriptor is fetched once; there
	// is nothing to re-apply after that.
	descriptorApplied bool

	dragging    bool
	pendingShot bool

	width  int
	height int
}

// New creates the viewer. The window and GL context come up first; the
// descriptor fetch starts immediately and resolves in the background.
func New(cfg *config.Config) (*Viewer, error) {
	slog.Info("initializing viewer",
		"descriptor", cfg.Scene.DescriptorURL,
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
	)

	v := &Viewer{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	// The fetch never blocks startup; the scene renders without
	// descriptor-dependent placement until it resolves.
	v.loader = descriptor.Start(cfg.Scene.DescriptorURL)

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Rotating Prism",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Viewport(0, 0, int32(v.width), int32(v.height))

	v.scene, err = scene.New(v.loadFont())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	v.scene.SetMesh([]*mesh.Data{v.loadMesh()})

	v.input = input.New()
	v.shot = capture.New(cfg.Capture.OutputDir, "prism")

	aspect := float32(v.width) / float32(v.height)
	v.rig = camera.NewRig(aspect)
	v.orbit = camera.NewOrbit()

	v.params = params.New()
	v.params.Ambient = cfg.Params.Ambient
	v.params.RampFile = cfg.Params.RampFile
	v.params.BlackBackground = cfg.Params.BlackBackground
	v.params.LockCamera = cfg.Params.LockCamera
	v.params.OrbitText = cfg.Params.OrbitText
	v.params.OrbitTilt = cfg.Params.OrbitTilt
	v.params.OrbitRadius = cfg.Params.OrbitRadius
	v.params.Speed = cfg.Params.Speed

	slog.Info("viewer initialized")
	return v, nil
}

// loadFont reads the configured TTF, falling back to the embedded face.
func (v *Viewer) loadFont() []byte {
	if v.cfg.Scene.FontPath == "" {
		return nil
	}
	data, err := os.ReadFile(v.cfg.Scene.FontPath)
	if err != nil {
		slog.Warn("font load failed, using embedded face",
			"path", v.cfg.Scene.FontPath, "error", err)
		return nil
	}
	return data
}

// loadMesh resolves the foreground mesh: the configured OBJ if present,
// otherwise the procedural prism.
func (v *Viewer) loadMesh() *mesh.Data {
	if v.cfg.Scene.ModelPath != "" {
		d, err := mesh.LoadOBJ(v.cfg.Scene.ModelPath)
		if err == nil {
			slog.Info("model loaded", "path", v.cfg.Scene.ModelPath,
				"vertices", len(d.Vertices), "triangles", len(d.Indices)/3)
			return d
		}
		slog.Warn("model load failed, using procedural prism",
			"path", v.cfg.Scene.ModelPath, "error", err)
	}

	sides := v.cfg.Scene.PrismSides
	return mesh.Prism(sides, 10, 20)
}

// Run drives the render loop until quit.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting render loop")

	for v.running {
		// 1. Input
		if v.input.Update() {
			break
		}
		v.handleEvents()

		// 2. Descriptor-dependent setup, before any geometry submits
		v.pollDescriptor()

		// 3. Live parameter binding
		v.applyParams()

		// 4. Per-frame rotations
		v.scene.Advance(v.last.Speed)

		// 5. Render. Scene-dependent content is gated on the
		// descriptor: until the fetch resolves only the flat clear
		// shows, and a failed fetch keeps it that way for the session.
		if v.loader.Ready() {
			view := v.rig.View().Mul(v.orbit.Matrix())
			v.scene.Render(view, v.rig.Projection())
		} else {
			v.scene.Clear()
		}

		if v.pendingShot {
			v.pendingShot = false
			if name, err := v.shot.Grab(v.width, v.height); err != nil {
				slog.Error("screenshot failed", "error", err)
			} else {
				slog.Info("screenshot saved", "file", name)
			}
		}

		// 6. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventQuit:
			v.running = false

		case input.EventWindowResize:
			v.width = event.Width
			v.height = event.Height
			gl.Viewport(0, 0, int32(v.width), int32(v.height))
			v.rig.SetAspect(float32(v.width) / float32(v.height))

		case input.EventKeyDown:
			v.handleKey(event.Key)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}

		case input.EventMouseMove:
			if v.dragging {
				v.orbit.HandleDrag(float32(event.RelX), float32(event.RelY))
			}
		}
	}
}

// pollDescriptor checks the one-shot fetch and applies the camera and
// light specs once it resolves. A failed fetch leaves both rigs at
// their defaults for the rest of the session.
func (v *Viewer) pollDescriptor() {
	if v.descriptorApplied {
		return
	}

	desc, done := v.loader.Poll()
	if !done || desc == nil {
		return
	}

	v.rig.Apply(&desc.Camera)
	v.scene.Light.Apply(&desc.Light)
	v.descriptorApplied = true

	slog.Info("descriptor applied",
		"camera", v.rig.Position,
		"light", v.scene.Light.Position,
		"halfAngle", v.scene.Light.HalfAngle,
		"intensity", v.scene.Light.Intensity,
		"penumbra", v.scene.Light.Penumbra,
	)
}

// applyParams diffs the current parameter snapshot against the previous
// frame's and pushes only what changed. The first frame applies
// everything.
func (v *Viewer) applyParams() {
	snap := v.params.Snapshot()
	force := !v.bound

	if force || snap.Ambient != v.last.Ambient {
		v.scene.SetAmbient(snap.Ambient)
	}

	if force || snap.RampPath != v.last.RampPath {
		if err := v.scene.SetRampPath(snap.RampPath); err != nil {
			slog.Warn("ramp load failed", "path", snap.RampPath, "error", err)
		}
	}

	if force || snap.BlackBackground != v.last.BlackBackground {
		if err := v.scene.SetBackgroundEnabled(!snap.BlackBackground); err != nil {
			slog.Error("background toggle failed", "error", err)
		}
	}

	if force || snap.LockCamera != v.last.LockCamera {
		v.orbit.SetLocked(snap.LockCamera)
	}

	if force ||
		snap.OrbitText != v.last.OrbitText ||
		snap.OrbitTilt != v.last.OrbitTilt ||
		snap.OrbitRadius != v.last.OrbitRadius {
		v.scene.ConfigureText(snap.OrbitText, snap.OrbitText != "", snap.OrbitRadius, snap.OrbitTilt)
	}

	v.last = snap
	v.bound = true
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	slog.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
