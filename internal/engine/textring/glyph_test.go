package textring

import "testing"

func TestRasterizeGlyph(t *testing.T) {
	r, err := NewRasterizer(nil, 64)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	defer r.Close()

	g, ok := r.Rasterize('A')
	if !ok {
		t.Fatal("'A' reported not drawable")
	}
	b := g.Img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("empty bitmap for 'A': %v", b)
	}
	if g.Aspect <= 0 {
		t.Errorf("aspect = %v, want > 0", g.Aspect)
	}

	// Some pixel must be opaque
	opaque := false
	for i := 3; i < len(g.Img.Pix); i += 4 {
		if g.Img.Pix[i] > 0 {
			opaque = true
			break
		}
	}
	if !opaque {
		t.Error("glyph bitmap has no coverage")
	}
}

func TestRasterizeSpace(t *testing.T) {
	r, err := NewRasterizer(nil, 64)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	defer r.Close()

	if _, ok := r.Rasterize(' '); ok {
		t.Error("space reported drawable")
	}
}

func TestNewRasterizerBadFont(t *testing.T) {
	if _, err := NewRasterizer([]byte("not a font"), 64); err == nil {
		t.Error("expected error for invalid TTF data")
	}
}
