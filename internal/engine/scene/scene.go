// Package scene renders the installation: the background enclosure,
// the ramp-shaded foreground mesh, and the orbiting text ring.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/25ohms/rotating-prism-td/internal/engine/lighting"
	"github.com/25ohms/rotating-prism-td/internal/engine/mesh"
	"github.com/25ohms/rotating-prism-td/internal/engine/texture"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// Scene manages the renderers and their shared resources. The ramp
// texture is owned here and handed to both shading passes; the
// spotlight rig is the mutable light handle the descriptor applies to.
type Scene struct {
	prism     *PrismRenderer
	enclosure *EnclosureRenderer // nil while the background is toggled off
	text      *TextRenderer

	// Light is the descriptor-driven spotlight. It positions the
	// physical light in the scene graph; the ramp shading uses its own
	// fixed direction (ShadingLightDir).
	Light lighting.SpotRig

	rampTex      uint32
	fallbackRamp uint32
}

// New creates the scene with the background enclosure present. A nil
// fontTTF uses the embedded glyph face.
func New(fontTTF []byte) (*Scene, error) {
	s := &Scene{}

	var err error
	s.prism, err = NewPrismRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating prism renderer: %w", err)
	}

	s.enclosure, err = NewEnclosureRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating enclosure renderer: %w", err)
	}

	s.text, err = NewTextRenderer(fontTTF)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating text renderer: %w", err)
	}

	s.fallbackRamp = texture.FallbackRamp()
	s.assignRamp(s.fallbackRamp)

	return s, nil
}

// SetMesh replaces the foreground mesh groups.
func (s *Scene) SetMesh(groups []*mesh.Data) {
	s.prism.SetMesh(groups)
}

// SetRampPath loads a ramp texture file and assigns it to both shading
// passes. On failure the previous ramp is kept if it was a loaded file,
// otherwise the built-in fallback stays active; the error is returned
// for logging but rendering continues either way.
func (s *Scene) SetRampPath(path string) error {
	tex, err := texture.LoadRamp(path)
	if err != nil {
		if s.rampTex == 0 {
			s.assignRamp(s.fallbackRamp)
		}
		return err
	}

	if s.rampTex != 0 {
		texture.Delete(s.rampTex)
	}
	s.rampTex = tex
	s.assignRamp(tex)
	return nil
}

func (s *Scene) assignRamp(tex uint32) {
	s.prism.SetRamp(tex)
	if s.enclosure != nil {
		s.enclosure.SetRamp(tex)
	}
}

// SetAmbient updates the ambient bias on the foreground shading.
func (s *Scene) SetAmbient(v float32) {
	s.prism.SetAmbient(v)
}

// SetBackgroundEnabled toggles the enclosure. Disabling removes it
// entirely rather than hiding it; the frame then shows the flat clear
// color behind the foreground.
func (s *Scene) SetBackgroundEnabled(enabled bool) error {
	if enabled == (s.enclosure != nil) {
		return nil
	}

	if !enabled {
		s.enclosure.Destroy()
		s.enclosure = nil
		return nil
	}

	er, err := NewEnclosureRenderer()
	if err != nil {
		return fmt.Errorf("creating enclosure renderer: %w", err)
	}
	s.enclosure = er

	activeRamp := s.rampTex
	if activeRamp == 0 {
		activeRamp = s.fallbackRamp
	}
	er.SetRamp(activeRamp)
	return nil
}

// ConfigureText updates the text ring layout inputs.
func (s *Scene) ConfigureText(phrase string, visible bool, radius, tiltDeg float32) {
	s.text.Configure(phrase, visible, radius, tiltDeg)
}

// Advance steps the per-frame rotations: the foreground idle spin and
// the text ring yaw at the given speed.
func (s *Scene) Advance(ringSpeed float32) {
	s.prism.Advance()
	s.text.Advance(ringSpeed)
}

// Clear draws an empty frame: only the flat clear color. Used while the
// scene descriptor is absent or failed and nothing scene-dependent may
// appear.
func (s *Scene) Clear() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws one frame: clear, background enclosure, foreground mesh,
// text ring. The enclosure writes no depth so it never occludes.
func (s *Scene) Render(view, proj math.Mat4) {
	viewProj := proj.Mul(view)

	s.Clear()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if s.enclosure != nil {
		s.enclosure.Render(viewProj)
	}

	s.prism.Render(viewProj)
	s.text.Render(viewProj)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.prism != nil {
		s.prism.Destroy()
		s.prism = nil
	}
	if s.enclosure != nil {
		s.enclosure.Destroy()
		s.enclosure = nil
	}
	if s.text != nil {
		s.text.Destroy()
		s.text = nil
	}
	if s.rampTex != 0 {
		texture.Delete(s.rampTex)
		s.rampTex = 0
	}
	if s.fallbackRamp != 0 {
		texture.Delete(s.fallbackRamp)
		s.fallbackRamp = 0
	}
}
