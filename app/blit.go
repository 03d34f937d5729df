package app

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// blitQuadVertex = (clip-space x, y, texcoord u, v), two triangles
// covering the full viewport. Used to present the CPU-rendered frame as a
// single textured quad each tick.
var blitQuadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,

	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

const blitVertexShaderSrc = `#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
uniform mat4 transform;
out vec2 uv;
void main() {
	uv = inUV;
	gl_Position = transform * vec4(inPos, 0.0, 1.0);
}
` + "\x00"

const blitFragmentShaderSrc = `#version 410 core
in vec2 uv;
out vec4 fragColor;
uniform sampler2D frame;
void main() {
	fragColor = texture(frame, uv);
}
` + "\x00"

// blitPipeline is the compiled shader program and vertex buffer backing
// Window.blit's fullscreen-quad present.
type blitPipeline struct {
	program      uint32
	vbo          uint32
	transformLoc int32
}

func newBlitPipeline() (*blitPipeline, error) {
	vs, err := compileShader(blitVertexShaderSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(blitFragmentShaderSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return nil, fmt.Errorf("app: linking blit shader program: %s", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(blitQuadVertices)*4, gl.Ptr(blitQuadVertices), gl.STATIC_DRAW)

	transformLoc := gl.GetUniformLocation(program, gl.Str("transform\x00"))

	p := &blitPipeline{program: program, vbo: vbo, transformLoc: transformLoc}
	p.setTransform(1, 1)
	return p, nil
}

// setTransform uploads a letterbox scale matrix built with mathgl/mgl32,
// the same vector/matrix library the teacher's app.go uses for its
// view/projection bookkeeping (mgl32.Ident4, mgl32.Scale3D). windowAspect
// and frameAspect are width/height ratios of the framebuffer and the
// rendered frame; when they differ the quad is scaled down on the wider
// axis so the frame keeps its own proportions instead of stretching to
// fill the window.
func (p *blitPipeline) setTransform(windowAspect, frameAspect float32) {
	sx, sy := float32(1), float32(1)
	switch {
	case windowAspect > frameAspect:
		sx = frameAspect / windowAspect
	case windowAspect < frameAspect:
		sy = windowAspect / frameAspect
	}
	m := mgl32.Scale3D(sx, sy, 1)
	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.transformLoc, 1, false, &m[0])
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("app: compiling shader: %s", log)
	}
	return shader, nil
}

// bindQuadAttributes configures vao's vertex attribute layout against the
// pipeline's vertex buffer: location 0 is clip-space position, location 1
// is texture coordinate.
func (p *blitPipeline) bindQuadAttributes(vao uint32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
}

// draw presents the currently bound 2D texture as a fullscreen quad.
func (p *blitPipeline) draw() {
	gl.UseProgram(p.program)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
