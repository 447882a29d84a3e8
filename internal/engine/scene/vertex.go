// Package scene owns the engine's scene state: the mesh arena, the entity
// manager, lights, and the camera reference. All GPU resource bookkeeping
// that crosses component boundaries lives here instead of package globals.
package scene

// Vertex is the interleaved GPU vertex layout. The struct is comparable;
// the OBJ loader uses it directly as the deduplication map key, so equality
// is structural over every field.
//
// Tangent and bitangent are derived per triangle from UV and position deltas
// and are identical across the three vertices of the producing triangle.
type Vertex struct {
	Position  [3]float32
	Color     [4]float32
	TexCoord  [2]float32
	Normal    [3]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// vertexFloats is the number of float32 fields in Vertex. uploadMesh derives
// the buffer stride from it, and its attribute offsets must agree.
const vertexFloats = 18
