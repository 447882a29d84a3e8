// Package skybox renders a cubemap background behind all scene geometry.
package skybox

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/halverson/glint/internal/engine/shader"
	"github.com/halverson/glint/internal/engine/texture"
)

const vertexSrc = `#version 410 core
layout (location = 0) in vec3 aPos;

out vec3 TexDir;

uniform mat4 view;
uniform mat4 projection;

void main() {
    TexDir = aPos;
    vec4 pos = projection * view * vec4(aPos, 1.0);
    // Force depth to the far plane so the box never occludes geometry.
    gl_Position = pos.xyww;
}
`

const fragmentSrc = `#version 410 core
in vec3 TexDir;

out vec4 FragColor;

uniform samplerCube skybox;

void main() {
    FragColor = texture(skybox, TexDir);
}
`

// Position-only cube, 36 vertices, faces wound to be visible from inside.
var cubeVertices = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// Skybox draws a cubemap on a unit cube centered on the camera.
type Skybox struct {
	shader  *shader.Shader
	vao     uint32
	vbo     uint32
	cubemap uint32
}

// New uploads the skybox cube and loads the six face images.
// Face order is +X, -X, +Y, -Y, +Z, -Z.
func New(textures *texture.Cache, faces [6]string) (*Skybox, error) {
	sh, err := shader.New(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	cubemap, err := textures.LoadCubemap(faces)
	if err != nil {
		sh.Delete()
		return nil, err
	}

	sb := &Skybox{shader: sh, cubemap: cubemap}

	gl.GenVertexArrays(1, &sb.vao)
	gl.BindVertexArray(sb.vao)

	gl.GenBuffers(1, &sb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)

	return sb, nil
}

// Draw renders the skybox first in the frame with depth writes off, so the
// opaque passes overwrite it wherever geometry lands. Translation is
// stripped from the view matrix so the box stays centered on the camera.
func (sb *Skybox) Draw(view, projection mgl32.Mat4) {
	rotOnly := view.Mat3().Mat4()

	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)

	sb.shader.Use()
	sb.shader.SetMat4("view", rotOnly)
	sb.shader.SetMat4("projection", projection)
	sb.shader.SetInt("skybox", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)

	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
}

// Destroy releases the GL objects. The cubemap texture belongs to the
// texture cache and is freed there.
func (sb *Skybox) Destroy() {
	if sb.vbo != 0 {
		gl.DeleteBuffers(1, &sb.vbo)
		sb.vbo = 0
	}
	if sb.vao != 0 {
		gl.DeleteVertexArrays(1, &sb.vao)
		sb.vao = 0
	}
	if sb.shader != nil {
		sb.shader.Delete()
		sb.shader = nil
	}
}
