package scene

import (
	"go.uber.org/zap"

	"github.com/halverson/glint/internal/engine/camera"
	"github.com/halverson/glint/internal/engine/lighting"
	"github.com/halverson/glint/internal/engine/texture"
	"github.com/halverson/glint/internal/logger"
)

// Scene is the engine context object: it owns the mesh arena, the entity
// storage, the light registry, the texture cache and the triangle counter.
// Lifecycle is New -> per-frame updates -> Close.
type Scene struct {
	Camera   *camera.Camera
	Lights   *lighting.Registry
	Textures *texture.Cache

	meshes   []Mesh
	entities []Entity

	// nameIndex maps an entity name to its first occurrence. Duplicate
	// names are allowed; lookups are first-match-wins.
	nameIndex map[string]int

	triangles int
}

// New creates an empty scene. The texture cache may be nil when no GL
// context exists (tests, headless tools); UploadMesh then skips texture
// resolution.
func New(textures *texture.Cache) *Scene {
	return &Scene{
		Lights:    lighting.NewRegistry(),
		Textures:  textures,
		nameIndex: make(map[string]int),
	}
}

// UploadMesh resolves the material's texture paths, uploads the geometry to
// the GPU and registers the mesh in the arena. Returns 0 for empty data.
func (s *Scene) UploadMesh(md MeshData) MeshHandle {
	if len(md.Vertices) == 0 || len(md.Indices) == 0 {
		logger.Warn("skipping empty mesh", zap.String("name", md.Name))
		return 0
	}

	if s.Textures != nil {
		resolveMaterialMaps(&md.Material, s.Textures)
	}

	m := uploadMesh(&md)
	s.meshes = append(s.meshes, m)

	logger.Debug("mesh uploaded",
		zap.String("name", md.Name),
		zap.String("material", md.Material.Name),
		zap.Int("triangles", m.Triangles),
	)
	return MeshHandle(len(s.meshes))
}

// Mesh returns the mesh for a handle, or nil for an invalid handle.
func (s *Scene) Mesh(h MeshHandle) *Mesh {
	if h == 0 || int(h) > len(s.meshes) {
		return nil
	}
	return &s.meshes[h-1]
}

// CreateEntity adds an entity and counts its triangles.
func (s *Scene) CreateEntity(name string, meshes []MeshHandle, position, rotation, scale [3]float32) *Entity {
	e := Entity{
		Name:     name,
		Position: position,
		Rotation: rotation,
		Scale:    scale,
		Meshes:   meshes,
		Active:   true,
	}
	s.entities = append(s.entities, e)

	idx := len(s.entities) - 1
	if _, exists := s.nameIndex[name]; !exists {
		s.nameIndex[name] = idx
	}

	for _, h := range meshes {
		if m := s.Mesh(h); m != nil {
			s.triangles += m.Triangles
		}
	}

	return &s.entities[idx]
}

// FindEntity returns the first entity created with the given name, active
// or not. Returns nil when the name is unknown.
func (s *Scene) FindEntity(name string) *Entity {
	idx, ok := s.nameIndex[name]
	if !ok {
		return nil
	}
	return &s.entities[idx]
}

// UpdateEntity applies a partial transform update to the first entity with
// the given name. Returns false when no such entity exists.
func (s *Scene) UpdateEntity(name string, upd TransformUpdate) bool {
	e := s.FindEntity(name)
	if e == nil {
		return false
	}
	if upd.Position != nil {
		e.Position = *upd.Position
	}
	if upd.Rotation != nil {
		e.Rotation = *upd.Rotation
	}
	if upd.Scale != nil {
		e.Scale = *upd.Scale
	}
	return true
}

// RemoveEntity logically removes the first entity with the given name: its
// mesh list is cleared, its triangles leave the counter, and it becomes a
// tombstone. Storage is never compacted, so other indices stay stable.
func (s *Scene) RemoveEntity(name string) bool {
	e := s.FindEntity(name)
	if e == nil || !e.Active {
		return false
	}

	for _, h := range e.Meshes {
		if m := s.Mesh(h); m != nil {
			s.triangles -= m.Triangles
		}
	}
	e.Meshes = nil
	e.Active = false
	return true
}

// Entities returns the backing entity slice. Iteration must skip entities
// with Active == false.
func (s *Scene) Entities() []Entity {
	return s.entities
}

// TriangleCount returns the number of triangles across active entities.
func (s *Scene) TriangleCount() int {
	return s.triangles
}

// Close releases every mesh in the arena and the texture cache.
func (s *Scene) Close() {
	for i := range s.meshes {
		s.meshes[i].Cleanup()
	}
	if s.Textures != nil {
		s.Textures.Close()
	}
	logger.Debug("scene closed", zap.Int("meshes", len(s.meshes)))
}

// resolveMaterialMaps loads each referenced texture path. Load failures
// inside the cache degrade to the default white texture.
func resolveMaterialMaps(m *Material, cache *texture.Cache) {
	load := func(path string) uint32 {
		if path == "" {
			return 0
		}
		return cache.Load(path)
	}

	m.AlbedoMap = load(m.Paths.Albedo)
	m.NormalMap = load(m.Paths.Normal)
	m.MetallicMap = load(m.Paths.Metallic)
	m.RoughnessMap = load(m.Paths.Roughness)
	m.AOMap = load(m.Paths.AO)
	m.EmissiveMap = load(m.Paths.Emissive)
	m.MetallicRoughnessMap = load(m.Paths.MetallicRoughness)

	m.TextureID = m.AlbedoMap
}
