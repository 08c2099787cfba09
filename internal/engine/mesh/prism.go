package mesh

import (
	gomath "math"

	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// Prism generates an n-sided prism centered at the origin with flat
// per-face normals, the default foreground asset when no model file is
// configured.
func Prism(sides int, radius, height float32) *Data {
	if sides < 3 {
		sides = 3
	}

	d := &Data{}
	half := height / 2

	ring := make([]math.Vec3, sides)
	for i := 0; i < sides; i++ {
		theta := float64(i) / float64(sides) * 2 * gomath.Pi
		ring[i] = math.Vec3{
			X: radius * float32(gomath.Cos(theta)),
			Z: radius * float32(gomath.Sin(theta)),
		}
	}

	// Side quads, flat shaded
	for i := 0; i < sides; i++ {
		j := (i + 1) % sides
		a := math.Vec3{X: ring[i].X, Y: -half, Z: ring[i].Z}
		b := math.Vec3{X: ring[j].X, Y: -half, Z: ring[j].Z}
		c := math.Vec3{X: ring[j].X, Y: half, Z: ring[j].Z}
		e := math.Vec3{X: ring[i].X, Y: half, Z: ring[i].Z}

		n := b.Sub(a).Cross(e.Sub(a)).Normalize()

		base := uint32(len(d.Vertices))
		d.Vertices = append(d.Vertices,
			Vertex{Position: a, Normal: n},
			Vertex{Position: b, Normal: n},
			Vertex{Position: c, Normal: n},
			Vertex{Position: e, Normal: n},
		)
		d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	// Caps as triangle fans
	for _, end := range []struct {
		y      float32
		normal math.Vec3
	}{
		{half, math.Vec3{Y: 1}},
		{-half, math.Vec3{Y: -1}},
	} {
		base := uint32(len(d.Vertices))
		d.Vertices = append(d.Vertices, Vertex{
			Position: math.Vec3{Y: end.y},
			Normal:   end.normal,
		})
		for i := 0; i < sides; i++ {
			d.Vertices = append(d.Vertices, Vertex{
				Position: math.Vec3{X: ring[i].X, Y: end.y, Z: ring[i].Z},
				Normal:   end.normal,
			})
		}
		for i := 0; i < sides; i++ {
			j := uint32((i+1)%sides) + 1
			if end.normal.Y > 0 {
				// Top cap winds counter-clockwise seen from above
				d.Indices = append(d.Indices, base, base+j, base+uint32(i)+1)
			} else {
				d.Indices = append(d.Indices, base, base+uint32(i)+1, base+j)
			}
		}
	}

	return d
}
