// Package texture provides image decoding and OpenGL texture upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"

	// Ramp and glyph sources are PNG or JPEG files.
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Decode decodes PNG or JPEG image data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// ToRGBA converts any image to RGBA, copying if needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Upload creates a GL texture from an image with linear filtering and
// edge clamping.
func Upload(img image.Image) uint32 {
	return upload(ToRGBA(img), gl.LINEAR)
}

// UploadRamp creates a GL texture for a color ramp. Ramps use nearest
// filtering so the lookup keeps its hard tone bands.
func UploadRamp(img image.Image) uint32 {
	return upload(ToRGBA(img), gl.NEAREST)
}

// LoadRamp reads, decodes, and uploads a ramp texture from a file.
func LoadRamp(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading ramp %s: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return 0, fmt.Errorf("ramp %s: %w", path, err)
	}
	return UploadRamp(img), nil
}

// FallbackRamp builds a small grayscale ramp in memory for when no ramp
// file can be loaded. Rendering must never fail on a missing ramp.
func FallbackRamp() uint32 {
	const steps = 4
	img := image.NewRGBA(image.Rect(0, 0, steps, 1))
	for x := 0; x < steps; x++ {
		v := uint8((x*255 + steps/2) / (steps - 1))
		img.Pix[x*4+0] = v
		img.Pix[x*4+1] = v
		img.Pix[x*4+2] = v
		img.Pix[x*4+3] = 255
	}
	return upload(img, gl.NEAREST)
}

func upload(rgba *image.RGBA, filter int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := rgba.Bounds()
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Delete frees a GL texture. Zero IDs are ignored.
func Delete(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}
