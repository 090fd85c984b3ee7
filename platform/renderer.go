package platform

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/canvas/drawlist"
)

const vertexStride = 32

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uTransform;

out vec2 vUV;
out vec4 vColor;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Solid shapes sample the opaque texels of the atlas, so one shader
// covers both text and geometry.
const fragmentShaderSource = `
#version 410 core
in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

uniform sampler2D uAtlas;

void main() {
    FragColor = vec4(vColor.rgb, vColor.a * texture(uAtlas, vUV).r);
}
` + "\x00"

// Renderer uploads a drawlist each frame and draws it over the current
// framebuffer with alpha blending.
type Renderer struct {
	program    uint32
	uTransform int32
	uAtlas     int32
	vao, vbo   uint32
	texture    uint32
	capacity   int
}

// NewRenderer compiles the shaders and uploads the glyph atlas. It must
// run on the thread owning the GL context.
func NewRenderer(atlas *drawlist.Atlas) (*Renderer, error) {
	r := &Renderer{}

	vs, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vs)
	gl.AttachShader(r.program, fs)
	gl.LinkProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(r.program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(r.program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(r.program)
		return nil, fmt.Errorf("shader linking failed: %s", logText)
	}
	r.uTransform = gl.GetUniformLocation(r.program, gl.Str("uTransform\x00"))
	r.uAtlas = gl.GetUniformLocation(r.program, gl.Str("uAtlas\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(8))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, vertexStride, gl.PtrOffset(16))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	img := atlas.Image
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// Clear sets the viewport to the framebuffer and fills it with bg.
func (r *Renderer) Clear(fbWidth, fbHeight int, bg color.NRGBA) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, float32(bg.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders list in a viewport of width x height logical pixels.
// scale maps logical pixels to framebuffer pixels for scissoring.
func (r *Renderer) Draw(list *drawlist.List, width, height int, scale float32) {
	if len(list.Vertices) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(r.program)
	ortho := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UniformMatrix4fv(r.uTransform, 1, false, &ortho[0])
	gl.Uniform1i(r.uAtlas, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(list.Vertices) * vertexStride
	if size > r.capacity {
		r.capacity = size * 2
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(list.Vertices))

	fbHeight := int32(float32(height) * scale)
	for _, cmd := range list.Cmds {
		if cmd.Count == 0 {
			continue
		}
		if cmd.Clip.Empty() {
			gl.Disable(gl.SCISSOR_TEST)
		} else {
			gl.Enable(gl.SCISSOR_TEST)
			c := cmd.Clip
			gl.Scissor(
				int32(float32(c.Min.X)*scale),
				fbHeight-int32(float32(c.Max.Y)*scale),
				int32(float32(c.Dx())*scale),
				int32(float32(c.Dy())*scale),
			)
		}
		gl.DrawArrays(gl.TRIANGLES, int32(cmd.First), int32(cmd.Count))
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) Release() {
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
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
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed: %s", logText)
	}
	return shader, nil
}
