package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CullMode selects face culling for a mesh draw.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// MeshData is CPU-side geometry produced by the loaders. It carries no GPU
// state, which keeps parsing testable without a GL context; upload happens
// in Scene.UploadMesh.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Material Material
	Cull     CullMode
}

// TriangleCount returns the number of triangles the index list describes.
func (md *MeshData) TriangleCount() int {
	return len(md.Indices) / 3
}

// MeshHandle is a stable index into the scene's mesh arena. Zero is invalid.
type MeshHandle uint32

// Mesh owns one VAO/VBO/EBO triple and one Material value. Meshes live in
// the scene's arena and are addressed by handle, never by pointer.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	Triangles int
	Material  Material
	Cull      CullMode

	cleaned bool
}

// Valid reports whether the mesh can be drawn. Invalid meshes are skipped,
// never drawn.
func (m *Mesh) Valid() bool {
	return m.vao != 0 && m.Triangles > 0 && !m.cleaned
}

// Draw issues the indexed draw call. The caller sets pipeline state and
// binds textures first.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Cleanup releases the mesh's GPU buffers. Safe to call more than once.
func (m *Mesh) Cleanup() {
	if m.cleaned {
		return
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	m.cleaned = true
}

// uploadMesh creates GPU buffers for the given data and returns the Mesh.
func uploadMesh(md *MeshData) Mesh {
	m := Mesh{
		Triangles: md.TriangleCount(),
		Material:  md.Material,
		Cull:      md.Cull,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := vertexFloats * 4
	gl.BufferData(gl.ARRAY_BUFFER, len(md.Vertices)*vertexSize, unsafe.Pointer(&md.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Color
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 7*4)
	gl.EnableVertexAttribArray(2)
	// Normal
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, int32(vertexSize), 9*4)
	gl.EnableVertexAttribArray(3)
	// Tangent
	gl.VertexAttribPointerWithOffset(4, 3, gl.FLOAT, false, int32(vertexSize), 12*4)
	gl.EnableVertexAttribArray(4)
	// Bitangent
	gl.VertexAttribPointerWithOffset(5, 3, gl.FLOAT, false, int32(vertexSize), 15*4)
	gl.EnableVertexAttribArray(5)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(md.Indices)*4, unsafe.Pointer(&md.Indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(md.Indices))
	gl.BindVertexArray(0)

	return m
}
