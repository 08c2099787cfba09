// Package mesh holds CPU-side mesh data, the procedural prism
// generator, and the footprint normalization used to fit arbitrary
// assets to the scene.
package mesh

import "github.com/25ohms/rotating-prism-td/pkg/math"

// Vertex is the vertex format shared by all foreground meshes.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Data is an uploaded-ready triangle mesh.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// ComputeBounds returns the bounding box of the full mesh.
func ComputeBounds(d *Data) Bounds {
	b := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for i := range d.Vertices {
		updateBounds(&b, d.Vertices[i].Position)
	}
	return b
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
