// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WaterVertexShader is the vertex shader for the water surface.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water surface.
//
//go:embed water.frag
var WaterFragmentShader string

// RocksVertexShader is the vertex shader for the rock mound.
//
//go:embed rocks.vert
var RocksVertexShader string

// RocksFragmentShader is the fragment shader for the rock mound.
//
//go:embed rocks.frag
var RocksFragmentShader string

// SkyboxVertexShader is the vertex shader for the skybox.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader is the fragment shader for the skybox.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
