package scene

// cubeFace describes one cube face: outward normal, the tangent frame
// aligned with the face's UV axes, and the four corners in CCW order.
type cubeFace struct {
	normal    [3]float32
	tangent   [3]float32
	bitangent [3]float32
	corners   [4][3]float32
}

var cubeFaces = [6]cubeFace{
	{ // +X
		normal: [3]float32{1, 0, 0}, tangent: [3]float32{0, 0, -1}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	},
	{ // -X
		normal: [3]float32{-1, 0, 0}, tangent: [3]float32{0, 0, 1}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	},
	{ // +Y
		normal: [3]float32{0, 1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, -1},
		corners: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	},
	{ // -Y
		normal: [3]float32{0, -1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, 1},
		corners: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	},
	{ // +Z
		normal: [3]float32{0, 0, 1}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	},
	{ // -Z
		normal: [3]float32{0, 0, -1}, tangent: [3]float32{-1, 0, 0}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	},
}

var cubeUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// NewCubeData builds a unit cube scaled by size, 24 vertices and 12
// triangles, with per-face normals and tangent frames. Used for the light
// markers and test geometry.
func NewCubeData(name string, size float32, mat Material) MeshData {
	half := size / 2

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, face := range cubeFaces {
		base := uint32(len(vertices))
		for i, corner := range face.corners {
			vertices = append(vertices, Vertex{
				Position:  [3]float32{corner[0] * half, corner[1] * half, corner[2] * half},
				Color:     mat.DiffuseColor,
				TexCoord:  cubeUVs[i],
				Normal:    face.normal,
				Tangent:   face.tangent,
				Bitangent: face.bitangent,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return MeshData{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Material: mat,
		Cull:     CullBack,
	}
}
