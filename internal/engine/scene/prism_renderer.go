package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/25ohms/rotating-prism-td/internal/engine/mesh"
	"github.com/25ohms/rotating-prism-td/internal/engine/scene/shaders"
	"github.com/25ohms/rotating-prism-td/internal/engine/shader"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// IdleSpinPerFrame is the fixed yaw increment applied to the foreground
// mesh every frame once loaded. It runs regardless of descriptor state.
const IdleSpinPerFrame = 0.005

// ShadingLightDir is the fixed light direction used by the ramp lookup.
// It is an engineering constant, not derived from the scene descriptor's
// spotlight; the shading look stays stable while the physical light moves.
var ShadingLightDir = math.Vec3{X: 1, Y: 1, Z: 1}.Normalize()

// prismPart is one uploaded mesh group with its own material values.
// Parts duplicate the ramp and ambient values rather than sharing a
// material object; renderer-level setters write through to every part.
type prismPart struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	ramp    uint32
	ambient float32
}

// PrismRenderer draws the foreground mesh with two-tone ramp shading.
type PrismRenderer struct {
	program uint32

	locMVP      int32
	locModel    int32
	locRamp     int32
	locLightDir int32
	locAmbient  int32

	parts []*prismPart

	// Current material values, copied into each part on SetMesh.
	ramp    uint32
	ambient float32

	scale float32
	yaw   float32
}

// NewPrismRenderer compiles the ramp shading program.
func NewPrismRenderer() (*PrismRenderer, error) {
	pr := &PrismRenderer{scale: 1}

	program, err := shader.CompileProgram(shaders.PrismVertexShader, shaders.PrismFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("prism shader: %w", err)
	}
	pr.program = program

	pr.locMVP = shader.MustGetUniform(program, "uMVP")
	pr.locModel = shader.MustGetUniform(program, "uModel")
	pr.locRamp = shader.MustGetUniform(program, "uRamp")
	pr.locLightDir = shader.MustGetUniform(program, "uLightDir")
	pr.locAmbient = shader.MustGetUniform(program, "uAmbient")

	return pr, nil
}

// SetMesh replaces the current geometry with the given mesh groups and
// derives the footprint scale from their combined bounds. Each group
// becomes a part carrying its own copy of the current material values.
func (pr *PrismRenderer) SetMesh(groups []*mesh.Data) {
	pr.clearParts()

	combined := mesh.Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}

	for _, d := range groups {
		if len(d.Vertices) == 0 || len(d.Indices) == 0 {
			continue
		}

		b := mesh.ComputeBounds(d)
		if b.Min.X < combined.Min.X {
			combined.Min.X = b.Min.X
		}
		if b.Min.Y < combined.Min.Y {
			combined.Min.Y = b.Min.Y
		}
		if b.Min.Z < combined.Min.Z {
			combined.Min.Z = b.Min.Z
		}
		if b.Max.X > combined.Max.X {
			combined.Max.X = b.Max.X
		}
		if b.Max.Y > combined.Max.Y {
			combined.Max.Y = b.Max.Y
		}
		if b.Max.Z > combined.Max.Z {
			combined.Max.Z = b.Max.Z
		}

		part := &prismPart{
			ramp:    pr.ramp,
			ambient: pr.ambient,
		}
		pr.uploadPart(part, d)
		pr.parts = append(pr.parts, part)
	}

	if len(pr.parts) == 0 {
		pr.scale = 1
		return
	}
	pr.scale = mesh.FootprintScale(combined)
}

func (pr *PrismRenderer) uploadPart(part *prismPart, d *mesh.Data) {
	gl.GenVertexArrays(1, &part.vao)
	gl.BindVertexArray(part.vao)

	gl.GenBuffers(1, &part.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, part.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*vertexSize, unsafe.Pointer(&d.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &part.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, part.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, unsafe.Pointer(&d.Indices[0]), gl.STATIC_DRAW)

	part.indexCount = int32(len(d.Indices))
	gl.BindVertexArray(0)
}

// SetRamp assigns the ramp texture to every part.
func (pr *PrismRenderer) SetRamp(tex uint32) {
	pr.ramp = tex
	for _, part := range pr.parts {
		part.ramp = tex
	}
}

// SetAmbient assigns the ambient bias to every part.
func (pr *PrismRenderer) SetAmbient(v float32) {
	pr.ambient = v
	for _, part := range pr.parts {
		part.ambient = v
	}
}

// Scale returns the footprint normalization factor for the loaded mesh.
func (pr *PrismRenderer) Scale() float32 {
	return pr.scale
}

// Advance accumulates the per-frame idle spin. Unbounded; the periodic
// trig in the rotation matrix handles wraparound.
func (pr *PrismRenderer) Advance() {
	pr.yaw += IdleSpinPerFrame
}

// Render draws every part with the current view-projection.
func (pr *PrismRenderer) Render(viewProj math.Mat4) {
	if len(pr.parts) == 0 {
		return
	}

	model := math.RotateY(pr.yaw).Mul(math.Scale(pr.scale, pr.scale, pr.scale))
	mvp := viewProj.Mul(model)

	gl.UseProgram(pr.program)
	gl.UniformMatrix4fv(pr.locMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(pr.locModel, 1, false, &model[0])
	gl.Uniform3f(pr.locLightDir, ShadingLightDir.X, ShadingLightDir.Y, ShadingLightDir.Z)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(pr.locRamp, 0)

	for _, part := range pr.parts {
		gl.Uniform1f(pr.locAmbient, part.ambient)
		gl.BindTexture(gl.TEXTURE_2D, part.ramp)
		gl.BindVertexArray(part.vao)
		gl.DrawElements(gl.TRIANGLES, part.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

func (pr *PrismRenderer) clearParts() {
	for _, part := range pr.parts {
		if part.vao != 0 {
			gl.DeleteVertexArrays(1, &part.vao)
		}
		if part.vbo != 0 {
			gl.DeleteBuffers(1, &part.vbo)
		}
		if part.ebo != 0 {
			gl.DeleteBuffers(1, &part.ebo)
		}
	}
	pr.parts = nil
}

// Destroy releases all resources. Ramp textures are owned by the scene,
// not the renderer.
func (pr *PrismRenderer) Destroy() {
	pr.clearParts()
	if pr.program != 0 {
		gl.DeleteProgram(pr.program)
		pr.program = 0
	}
}
