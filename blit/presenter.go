// Package blit copies a CPU-side RGBA frame to the current GL framebuffer.
package blit

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gobezier/shader"
)

var (
	glInitOnce sync.Once
	glInitErr  error
)

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// Presenter owns a streaming texture and the quad it is drawn on. All methods
// must run on the thread that owns the current GL context.
type Presenter struct {
	program   uint32
	textureID uint32
	quadVAO   uint32
	vbo       uint32
	texLoc    int32
	width     int
	height    int
}

// New loads the GL entry points once per process and allocates a width by
// height texture.
func New(width, height int) (*Presenter, error) {
	glInitOnce.Do(func() { glInitErr = gl.Init() })
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}

	p := &Presenter{}
	var err error
	p.program, err = newProgram(shader.GenerateVertexShader(), shader.GetBlitFragmentShader(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}
	p.texLoc = gl.GetUniformLocation(p.program, gl.Str(shader.TextureUniform+"\x00"))

	gl.GenVertexArrays(1, &p.quadVAO)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &p.textureID)
	gl.BindTexture(gl.TEXTURE_2D, p.textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	p.resize(width, height)

	return p, nil
}

func (p *Presenter) resize(width, height int) {
	gl.BindTexture(gl.TEXTURE_2D, p.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	p.width, p.height = width, height
}

// Present uploads a tightly packed RGBA frame of width by height pixels and
// draws it stretched over a fbWidth by fbHeight framebuffer.
func (p *Presenter) Present(pixels []byte, width, height, fbWidth, fbHeight int) error {
	if len(pixels) < width*height*4 {
		return fmt.Errorf("frame has %d bytes, need %d for %dx%d", len(pixels), width*height*4, width, height)
	}
	if width != p.width || height != p.height {
		p.resize(width, height)
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.BindTexture(gl.TEXTURE_2D, p.textureID)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(p.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.texLoc, 0)
	gl.BindVertexArray(p.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Destroy releases the GL objects.
func (p *Presenter) Destroy() {
	gl.DeleteProgram(p.program)
	gl.DeleteTextures(1, &p.textureID)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.quadVAO)
}
