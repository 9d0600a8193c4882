package shader

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// Canvas rows run top to bottom, GL texture rows bottom to top.
const blitFragmentShaderSourceFlipGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, vec2(frag_uv.x, 1.0 - frag_uv.y)); }
`

const blitFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

// TextureUniform is the sampler name used by the blit shaders.
const TextureUniform = "u_texture"

// GenerateVertexShader returns the full-screen quad vertex shader.
func GenerateVertexShader() string {
	return vertexShaderSourceGL
}

// GetBlitFragmentShader returns the shader that copies a texture to the
// framebuffer, flipping it vertically when flip is set.
func GetBlitFragmentShader(flip bool) string {
	if flip {
		return blitFragmentShaderSourceFlipGL
	}
	return blitFragmentShaderSourceGL
}
