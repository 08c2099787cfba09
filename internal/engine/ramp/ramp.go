// Package ramp normalizes the live ramp parameter into a texture path.
// The ramp texture is a narrow color-lookup image sampled along one
// axis by a scalar intensity.
package ramp

// Ref is an object-shaped ramp parameter value carrying a path.
type Ref struct {
	Path string
}

// ResolvePath normalizes a live ramp parameter value to a texture path.
// Accepted shapes: a plain path string, a Ref (or *Ref), or a generic
// map carrying a "path" or "file" string field. Resolution never fails:
// any unrecognized shape falls back to the given default path, so a bad
// parameter value can never take down a frame.
func ResolvePath(v any, fallback string) string {
	switch rv := v.(type) {
	case string:
		if rv != "" {
			return rv
		}
	case Ref:
		if rv.Path != "" {
			return rv.Path
		}
	case *Ref:
		if rv != nil && rv.Path != "" {
			return rv.Path
		}
	case map[string]any:
		for _, key := range []string{"path", "file"} {
			if s, ok := rv[key].(string); ok && s != "" {
				return s
			}
		}
	case map[string]string:
		for _, key := range []string{"path", "file"} {
			if s := rv[key]; s != "" {
				return s
			}
		}
	}
	return fallback
}
