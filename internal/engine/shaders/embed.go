// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// HeightmapVertexShader transforms mesh positions by the modelview and
// projection uniforms.
//
//go:embed heightmap.vert
var HeightmapVertexShader string

// HeightmapFragmentShader colours fragments by terrain height.
//
//go:embed heightmap.frag
var HeightmapFragmentShader string

// LinesFragmentShader draws lines in a flat uniform colour. It pairs with
// HeightmapVertexShader.
//
//go:embed lines.frag
var LinesFragmentShader string
