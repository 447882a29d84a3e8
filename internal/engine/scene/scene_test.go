package scene

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// addTestMesh registers a mesh in the arena without touching the GPU.
func addTestMesh(s *Scene, triangles int) MeshHandle {
	s.meshes = append(s.meshes, Mesh{
		vao:       1,
		Triangles: triangles,
		Material:  DefaultMaterial(),
	})
	return MeshHandle(len(s.meshes))
}

func TestCreateEntityCountsTriangles(t *testing.T) {
	s := New(nil)
	cube := addTestMesh(s, 12)

	s.CreateEntity("cube", []MeshHandle{cube}, [3]float32{}, [3]float32{}, [3]float32{1, 1, 1})

	if got := s.TriangleCount(); got != 12 {
		t.Errorf("triangle count = %d, want 12", got)
	}

	s.CreateEntity("cube2", []MeshHandle{cube, cube}, [3]float32{}, [3]float32{}, [3]float32{1, 1, 1})
	if got := s.TriangleCount(); got != 36 {
		t.Errorf("triangle count = %d, want 36", got)
	}
}

func TestUpdateEntityPartial(t *testing.T) {
	s := New(nil)
	s.CreateEntity("crate", nil, [3]float32{1, 2, 3}, [3]float32{10, 20, 30}, [3]float32{1, 1, 1})

	// Rotation-only update leaves position and scale untouched.
	if !s.UpdateEntity("crate", TransformUpdate{Rotation: Vec(0, 90, 0)}) {
		t.Fatal("UpdateEntity returned false for existing entity")
	}

	e := s.FindEntity("crate")
	if e.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("position changed: %v", e.Position)
	}
	if e.Rotation != (mgl32.Vec3{0, 90, 0}) {
		t.Errorf("rotation = %v, want (0,90,0)", e.Rotation)
	}
	if e.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("scale changed: %v", e.Scale)
	}

	// Full update overwrites every named component.
	s.UpdateEntity("crate", TransformUpdate{
		Position: Vec(5, 5, 5),
		Scale:    Vec(2, 2, 2),
	})
	if e.Position != (mgl32.Vec3{5, 5, 5}) || e.Scale != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("full update failed: pos %v scale %v", e.Position, e.Scale)
	}

	if s.UpdateEntity("ghost", TransformUpdate{Position: Vec(0, 0, 0)}) {
		t.Error("UpdateEntity returned true for unknown name")
	}
}

func TestMaybeVecNaNSentinel(t *testing.T) {
	nan := float32(gomath.NaN())

	if MaybeVec(mgl32.Vec3{nan, 0, 0}) != nil {
		t.Error("NaN-leading vector should map to nil (no change)")
	}

	v := MaybeVec(mgl32.Vec3{1, 2, 3})
	if v == nil || *v != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("concrete vector should pass through, got %v", v)
	}
}

func TestRemoveEntityTombstone(t *testing.T) {
	s := New(nil)
	cube := addTestMesh(s, 12)

	s.CreateEntity("a", []MeshHandle{cube}, [3]float32{}, [3]float32{}, [3]float32{1, 1, 1})
	s.CreateEntity("b", []MeshHandle{cube}, [3]float32{}, [3]float32{}, [3]float32{1, 1, 1})

	if !s.RemoveEntity("a") {
		t.Fatal("RemoveEntity failed for existing entity")
	}

	e := s.FindEntity("a")
	if e.Active {
		t.Error("removed entity still active")
	}
	if len(e.Meshes) != 0 {
		t.Error("removed entity still holds mesh handles")
	}
	if got := s.TriangleCount(); got != 12 {
		t.Errorf("triangle count after removal = %d, want 12", got)
	}

	// Storage is not compacted: both slots remain.
	if len(s.Entities()) != 2 {
		t.Errorf("entity storage compacted: len = %d", len(s.Entities()))
	}

	// Double removal is a no-op.
	if s.RemoveEntity("a") {
		t.Error("second RemoveEntity should return false")
	}
	if got := s.TriangleCount(); got != 12 {
		t.Errorf("triangle count after double removal = %d, want 12", got)
	}
}

func TestDuplicateNamesFirstMatchWins(t *testing.T) {
	s := New(nil)
	s.CreateEntity("lamp", nil, [3]float32{1, 0, 0}, [3]float32{}, [3]float32{1, 1, 1})
	s.CreateEntity("lamp", nil, [3]float32{2, 0, 0}, [3]float32{}, [3]float32{1, 1, 1})

	s.UpdateEntity("lamp", TransformUpdate{Position: Vec(9, 9, 9)})

	ents := s.Entities()
	if ents[0].Position != (mgl32.Vec3{9, 9, 9}) {
		t.Errorf("first entity not updated: %v", ents[0].Position)
	}
	if ents[1].Position != (mgl32.Vec3{2, 0, 0}) {
		t.Errorf("second duplicate must stay untouched: %v", ents[1].Position)
	}
}

func TestMeshValidity(t *testing.T) {
	m := Mesh{}
	if m.Valid() {
		t.Error("zero mesh should be invalid")
	}

	m = Mesh{vao: 3, Triangles: 10}
	if !m.Valid() {
		t.Error("uploaded mesh should be valid")
	}

	m.cleaned = true
	if m.Valid() {
		t.Error("cleaned mesh should be invalid")
	}
}

func TestCubeData(t *testing.T) {
	md := NewCubeData("test", 2, DefaultMaterial())

	if got := md.TriangleCount(); got != 12 {
		t.Errorf("cube triangle count = %d, want 12", got)
	}
	if len(md.Vertices) != 24 {
		t.Errorf("cube vertex count = %d, want 24", len(md.Vertices))
	}
	if len(md.Indices) != 36 {
		t.Errorf("cube index count = %d, want 36", len(md.Indices))
	}

	for i, v := range md.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] != 1 && v.Position[axis] != -1 {
				t.Fatalf("vertex %d coordinate %d = %f, want +-1 for size 2", i, axis, v.Position[axis])
			}
		}

		// Tangent frame must be orthogonal to the face normal.
		dot := v.Normal[0]*v.Tangent[0] + v.Normal[1]*v.Tangent[1] + v.Normal[2]*v.Tangent[2]
		if dot != 0 {
			t.Fatalf("vertex %d tangent not orthogonal to normal", i)
		}
	}
}

func TestVertexIsComparableDedupKey(t *testing.T) {
	a := Vertex{Position: [3]float32{1, 2, 3}, TexCoord: [2]float32{0.5, 0.5}}
	b := Vertex{Position: [3]float32{1, 2, 3}, TexCoord: [2]float32{0.5, 0.5}}

	pool := map[Vertex]uint32{a: 7}
	if idx, ok := pool[b]; !ok || idx != 7 {
		t.Error("structurally equal vertices must hash to the same pool slot")
	}

	b.Tangent = [3]float32{1, 0, 0}
	if _, ok := pool[b]; ok {
		t.Error("vertices differing in tangent must not collide")
	}
}
