package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/25ohms/rotating-prism-td/internal/engine/scene/shaders"
	"github.com/25ohms/rotating-prism-td/internal/engine/shader"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// EnclosureHalfExtent sizes the background cube so it always contains
// the camera and the normalized foreground mesh.
const EnclosureHalfExtent = 500.0

// EnclosureRenderer draws the background: a large cube viewed from the
// inside, shaded by normalized world height through the shared ramp.
// It writes color only; depth stays untouched so the foreground always
// draws over it.
type EnclosureRenderer struct {
	program uint32

	locViewProj int32
	locRamp     int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	ramp uint32
}

// NewEnclosureRenderer compiles the background program and uploads the
// cube geometry.
func NewEnclosureRenderer() (*EnclosureRenderer, error) {
	er := &EnclosureRenderer{}

	program, err := shader.CompileProgram(shaders.EnclosureVertexShader, shaders.EnclosureFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("enclosure shader: %w", err)
	}
	er.program = program

	er.locViewProj = shader.MustGetUniform(program, "uViewProj")
	er.locRamp = shader.MustGetUniform(program, "uRamp")

	er.uploadCube()
	return er, nil
}

func (er *EnclosureRenderer) uploadCube() {
	const h = float32(EnclosureHalfExtent)
	vertices := []float32{
		-h, -h, -h,
		h, -h, -h,
		h, h, -h,
		-h, h, -h,
		-h, -h, h,
		h, -h, h,
		h, h, h,
		-h, h, h,
	}
	// Outward-wound faces; the draw pass culls front faces so only the
	// interior is visible.
	indices := []uint32{
		0, 1, 2, 0, 2, 3, // -Z
		5, 4, 7, 5, 7, 6, // +Z
		4, 0, 3, 4, 3, 7, // -X
		1, 5, 6, 1, 6, 2, // +X
		4, 5, 1, 4, 1, 0, // -Y
		3, 2, 6, 3, 6, 7, // +Y
	}

	gl.GenVertexArrays(1, &er.vao)
	gl.BindVertexArray(er.vao)

	gl.GenBuffers(1, &er.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, er.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &er.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, er.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	er.indexCount = int32(len(indices))
	gl.BindVertexArray(0)
}

// SetRamp assigns the ramp texture used for the height gradient.
func (er *EnclosureRenderer) SetRamp(tex uint32) {
	er.ramp = tex
}

// Render draws the enclosure interior. Must run before the foreground
// pass each frame.
func (er *EnclosureRenderer) Render(viewProj math.Mat4) {
	gl.UseProgram(er.program)
	gl.UniformMatrix4fv(er.locViewProj, 1, false, &viewProj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, er.ramp)
	gl.Uniform1i(er.locRamp, 0)

	gl.DepthMask(false)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)

	gl.BindVertexArray(er.vao)
	gl.DrawElements(gl.TRIANGLES, er.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.CullFace(gl.BACK)
	gl.Disable(gl.CULL_FACE)
	gl.DepthMask(true)
}

// Destroy releases all resources.
func (er *EnclosureRenderer) Destroy() {
	if er.vao != 0 {
		gl.DeleteVertexArrays(1, &er.vao)
		er.vao = 0
	}
	if er.vbo != 0 {
		gl.DeleteBuffers(1, &er.vbo)
		er.vbo = 0
	}
	if er.ebo != 0 {
		gl.DeleteBuffers(1, &er.ebo)
		er.ebo = 0
	}
	if er.program != 0 {
		gl.DeleteProgram(er.program)
		er.program = 0
	}
}
