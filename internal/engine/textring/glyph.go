package textring

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Rasterizer renders single glyphs to alpha bitmaps for upload as
// textures. The font provider contract is "character in, drawable
// glyph out"; spaces and unsupported characters report not-drawable.
type Rasterizer struct {
	face font.Face
	size int
}

// GlyphImage is one rasterized glyph.
type GlyphImage struct {
	Img *image.RGBA
	// Aspect is width/height of the bitmap, used to size the quad.
	Aspect float32
}

// NewRasterizer parses a TTF and prepares a face at the given pixel
// size. A nil ttf uses the embedded Go Regular face.
func NewRasterizer(ttf []byte, pixelSize int) (*Rasterizer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	if pixelSize <= 0 {
		pixelSize = 64
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}

	return &Rasterizer{face: face, size: pixelSize}, nil
}

// Rasterize draws one character into a tight RGBA bitmap. The second
// return is false for characters with no visible shape (spaces,
// unsupported runes); those still occupy ring arc but draw nothing.
func (r *Rasterizer) Rasterize(ch rune) (*GlyphImage, bool) {
	bounds, _, ok := r.face.GlyphBounds(ch)
	if !ok {
		return nil, false
	}

	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil, false
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
	}
	d.Dot.X = -bounds.Min.X
	d.Dot.Y = -bounds.Min.Y
	d.DrawString(string(ch))

	return &GlyphImage{
		Img:    img,
		Aspect: float32(w) / float32(h),
	}, true
}

// Close releases the font face.
func (r *Rasterizer) Close() error {
	return r.face.Close()
}
