package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/25ohms/rotating-prism-td/pkg/math"
)

// LoadOBJ reads a Wavefront OBJ file into mesh data. Positions and
// normals are supported; texture coordinates and materials are ignored.
// Polygon faces are fan-triangulated. Faces without normal references
// get a computed face normal.
func LoadOBJ(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model %s: %w", path, err)
	}
	defer f.Close()

	var positions []math.Vec3
	var normals []math.Vec3
	d := &Data{}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: vertex: %w", path, lineNo, err)
			}
			positions = append(positions, v)

		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: normal: %w", path, lineNo, err)
			}
			normals = append(normals, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: face needs at least 3 vertices", path, lineNo)
			}
			if err := addFace(d, positions, normals, fields[1:]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(d.Vertices) == 0 {
		return nil, fmt.Errorf("%s: no faces found", path)
	}

	return d, nil
}

func parseVec3(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, err
		}
		out[i] = float32(v)
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// faceRef is one "v", "v/vt", "v//vn" or "v/vt/vn" corner reference.
type faceRef struct {
	pos    int
	normal int // 0 when absent
}

func parseFaceRef(s string, posCount, normCount int) (faceRef, error) {
	parts := strings.Split(s, "/")

	pi, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceRef{}, fmt.Errorf("face index %q: %w", s, err)
	}
	ref := faceRef{pos: resolveIndex(pi, posCount)}
	if ref.pos < 1 || ref.pos > posCount {
		return faceRef{}, fmt.Errorf("vertex index %d out of range", pi)
	}

	if len(parts) == 3 && parts[2] != "" {
		ni, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceRef{}, fmt.Errorf("normal index %q: %w", s, err)
		}
		ref.normal = resolveIndex(ni, normCount)
		if ref.normal < 1 || ref.normal > normCount {
			return faceRef{}, fmt.Errorf("normal index %d out of range", ni)
		}
	}

	return ref, nil
}

// resolveIndex maps OBJ 1-based (or negative relative) indices.
func resolveIndex(idx, count int) int {
	if idx < 0 {
		return count + idx + 1
	}
	return idx
}

func addFace(d *Data, positions, normals []math.Vec3, corners []string) error {
	refs := make([]faceRef, len(corners))
	for i, c := range corners {
		ref, err := parseFaceRef(c, len(positions), len(normals))
		if err != nil {
			return err
		}
		refs[i] = ref
	}

	// Fan triangulation
	for i := 1; i < len(refs)-1; i++ {
		tri := [3]faceRef{refs[0], refs[i], refs[i+1]}

		// Flat face normal fallback when the file carries none
		var flat math.Vec3
		if tri[0].normal == 0 {
			a := positions[tri[0].pos-1]
			b := positions[tri[1].pos-1]
			c := positions[tri[2].pos-1]
			flat = b.Sub(a).Cross(c.Sub(a)).Normalize()
		}

		base := uint32(len(d.Vertices))
		for _, r := range tri {
			n := flat
			if r.normal != 0 {
				n = normals[r.normal-1]
			}
			d.Vertices = append(d.Vertices, Vertex{
				Position: positions[r.pos-1],
				Normal:   n,
			})
		}
		d.Indices = append(d.Indices, base, base+1, base+2)
	}

	return nil
}
