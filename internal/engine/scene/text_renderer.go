package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/25ohms/rotating-prism-td/internal/engine/scene/shaders"
	"github.com/25ohms/rotating-prism-td/internal/engine/shader"
	"github.com/25ohms/rotating-prism-td/internal/engine/texture"
	"github.com/25ohms/rotating-prism-td/internal/engine/textring"
	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// GlyphWorldHeight is the world-space height of a ring glyph quad.
const GlyphWorldHeight = 3.0

// GlyphPixelSize is the rasterization size for glyph textures.
const GlyphPixelSize = 64

// glyphTex is a cached uploaded glyph. Non-drawable characters (spaces)
// cache with tex 0 so they are looked up only once.
type glyphTex struct {
	tex    uint32
	aspect float32
}

// TextRenderer draws the orbiting phrase as textured quads placed by
// the ring layout. Each quad faces outward from the ring.
type TextRenderer struct {
	program uint32

	locMVP   int32
	locGlyph int32
	locColor int32

	vao uint32
	vbo uint32

	ras    *textring.Rasterizer
	glyphs map[rune]glyphTex

	ring    textring.Ring
	visible bool

	Color [3]float32
}

// NewTextRenderer compiles the glyph program and prepares the shared
// quad. A nil fontTTF falls back to the embedded face.
func NewTextRenderer(fontTTF []byte) (*TextRenderer, error) {
	tr := &TextRenderer{
		glyphs:  make(map[rune]glyphTex),
		visible: true,
		Color:   [3]float32{1, 1, 1},
	}

	ras, err := textring.NewRasterizer(fontTTF, GlyphPixelSize)
	if err != nil {
		return nil, fmt.Errorf("glyph rasterizer: %w", err)
	}
	tr.ras = ras

	program, err := shader.CompileProgram(shaders.GlyphVertexShader, shaders.GlyphFragmentShader)
	if err != nil {
		ras.Close()
		return nil, fmt.Errorf("glyph shader: %w", err)
	}
	tr.program = program

	tr.locMVP = shader.MustGetUniform(program, "uMVP")
	tr.locGlyph = shader.MustGetUniform(program, "uGlyph")
	tr.locColor = shader.MustGetUniform(program, "uColor")

	tr.uploadQuad()
	return tr, nil
}

func (tr *TextRenderer) uploadQuad() {
	// Unit quad centered on the origin. Texture rows upload top-first,
	// so V is flipped against Y.
	quad := []float32{
		// x, y, u, v
		-0.5, -0.5, 0, 1,
		0.5, -0.5, 1, 1,
		0.5, 0.5, 1, 0,
		-0.5, -0.5, 0, 1,
		0.5, 0.5, 1, 0,
		-0.5, 0.5, 0, 0,
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, unsafe.Pointer(&quad[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Configure updates the ring layout inputs and visibility.
func (tr *TextRenderer) Configure(phrase string, visible bool, radius, tiltDeg float32) {
	tr.visible = visible
	tr.ring.Configure(phrase, radius, tiltDeg)
}

// Advance accumulates the ring yaw by the current speed parameter.
func (tr *TextRenderer) Advance(speed float32) {
	tr.ring.Advance(speed)
}

// glyph returns the cached texture for a character, rasterizing and
// uploading on first use.
func (tr *TextRenderer) glyph(ch rune) glyphTex {
	if g, ok := tr.glyphs[ch]; ok {
		return g
	}

	img, ok := tr.ras.Rasterize(ch)
	if !ok {
		g := glyphTex{}
		tr.glyphs[ch] = g
		return g
	}

	g := glyphTex{
		tex:    texture.Upload(img.Img),
		aspect: img.Aspect,
	}
	tr.glyphs[ch] = g
	return g
}

// Render draws every drawable glyph placement.
func (tr *TextRenderer) Render(viewProj math.Mat4) {
	if !tr.visible {
		return
	}
	placements := tr.ring.Placements()
	if len(placements) == 0 {
		return
	}

	gl.UseProgram(tr.program)
	gl.Uniform3f(tr.locColor, tr.Color[0], tr.Color[1], tr.Color[2])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(tr.locGlyph, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(tr.vao)
	for _, p := range placements {
		g := tr.glyph(p.Char)
		if g.tex == 0 {
			continue
		}

		model := tr.ring.GlyphTransform(p).
			Mul(math.Scale(GlyphWorldHeight*g.aspect, GlyphWorldHeight, 1))
		mvp := viewProj.Mul(model)

		gl.UniformMatrix4fv(tr.locMVP, 1, false, &mvp[0])
		gl.BindTexture(gl.TEXTURE_2D, g.tex)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Destroy releases all resources including cached glyph textures.
func (tr *TextRenderer) Destroy() {
	for _, g := range tr.glyphs {
		texture.Delete(g.tex)
	}
	tr.glyphs = nil

	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
	if tr.ras != nil {
		tr.ras.Close()
		tr.ras = nil
	}
}
