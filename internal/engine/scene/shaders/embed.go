// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PrismVertexShader is the vertex shader for the ramp-shaded foreground mesh.
//
//go:embed prism.vert
var PrismVertexShader string

// PrismFragmentShader is the fragment shader for the ramp-shaded foreground mesh.
//
//go:embed prism.frag
var PrismFragmentShader string

// EnclosureVertexShader is the vertex shader for the background enclosure.
//
//go:embed enclosure.vert
var EnclosureVertexShader string

// EnclosureFragmentShader is the fragment shader for the background enclosure.
//
//go:embed enclosure.frag
var EnclosureFragmentShader string

// GlyphVertexShader is the vertex shader for text ring glyphs.
//
//go:embed glyph.vert
var GlyphVertexShader string

// GlyphFragmentShader is the fragment shader for text ring glyphs.
//
//go:embed glyph.frag
var GlyphFragmentShader string
