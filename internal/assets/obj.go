package assets

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/halverson/glint/internal/engine/scene"
	"github.com/halverson/glint/internal/logger"
)

// materialPool accumulates the deduplicated geometry for one material.
// Structural vertex equality is the dedup key: two face corners collapse to
// one vertex only when every attribute, tangent frame included, matches.
type materialPool struct {
	material scene.Material
	vertices []scene.Vertex
	indices  []uint32
	lookup   map[scene.Vertex]uint32
}

func (p *materialPool) push(v scene.Vertex) {
	if idx, ok := p.lookup[v]; ok {
		p.indices = append(p.indices, idx)
		return
	}
	idx := uint32(len(p.vertices))
	p.vertices = append(p.vertices, v)
	p.lookup[v] = idx
	p.indices = append(p.indices, idx)
}

// LoadOBJ parses a Wavefront OBJ file into CPU-side mesh data, one mesh per
// material encountered. Failures never propagate: a missing or unreadable
// file logs a warning and yields an empty list, so callers degrade to an
// empty model instead of crashing.
func LoadOBJ(path string) []scene.MeshData {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("obj file not readable", zap.String("path", path), zap.Error(err))
		return nil
	}

	dir := filepath.Dir(path)

	// First pass: find the material library.
	materials := scanMaterials(data, dir)

	// Second pass: geometry.
	var positions []mgl32.Vec3
	var texcoords []mgl32.Vec2
	var normals []mgl32.Vec3

	pools := make(map[string]*materialPool)
	var poolOrder []string

	pool := func(name string) *materialPool {
		if p, ok := pools[name]; ok {
			return p
		}
		mat, ok := materials[name]
		if !ok {
			mat = scene.DefaultMaterial()
			mat.Name = name
		}
		p := &materialPool{
			material: mat,
			lookup:   make(map[scene.Vertex]uint32),
		}
		pools[name] = p
		poolOrder = append(poolOrder, name)
		return p
	}

	active := "default"

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if v, ok := parseVec3(fields[1:]); ok {
				positions = append(positions, mgl32.Vec3(v))
			}
		case "vt":
			if len(fields) >= 3 {
				u, err1 := strconv.ParseFloat(fields[1], 32)
				v, err2 := strconv.ParseFloat(fields[2], 32)
				if err1 == nil && err2 == nil {
					texcoords = append(texcoords, mgl32.Vec2{float32(u), float32(v)})
				}
			}
		case "vn":
			if v, ok := parseVec3(fields[1:]); ok {
				normals = append(normals, mgl32.Vec3(v))
			}
		case "usemtl":
			if len(fields) > 1 {
				active = fields[1]
			}
		case "f":
			if len(fields) >= 4 {
				emitFace(pool(active), fields[1:], positions, texcoords, normals)
			}
		}
	}

	meshes := make([]scene.MeshData, 0, len(poolOrder))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, matName := range poolOrder {
		p := pools[matName]
		if len(p.indices) == 0 {
			continue
		}
		meshes = append(meshes, scene.MeshData{
			Name:     name + "/" + matName,
			Vertices: p.vertices,
			Indices:  p.indices,
			Material: p.material,
			Cull:     scene.CullBack,
		})
	}

	if len(meshes) == 0 {
		logger.Warn("obj contains no usable geometry", zap.String("path", path))
		return nil
	}

	total := 0
	for i := range meshes {
		total += meshes[i].TriangleCount()
	}
	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("meshes", len(meshes)),
		zap.Int("triangles", total),
	)
	return meshes
}

// scanMaterials runs the mtllib-only first pass. When the OBJ references no
// material library, or the library defines nothing, a single default
// material is synthesized.
func scanMaterials(data []byte, dir string) map[string]scene.Material {
	materials := make(map[string]scene.Material)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "mtllib") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 1 {
			// The library name may itself contain spaces.
			libName := strings.Join(fields[1:], " ")
			for name, mat := range parseMTL(filepath.Join(dir, libName)) {
				materials[name] = mat
			}
		}
	}

	if len(materials) == 0 {
		materials["default"] = scene.DefaultMaterial()
	}
	return materials
}

// faceCorner is one "v/vt/vn" reference, 0-based, -1 when absent.
type faceCorner struct {
	v, vt, vn int
}

// parseCorner parses a face vertex token ("v", "v/vt", "v//vn", "v/vt/vn").
// OBJ indices are 1-based; negative indices count from the end.
func parseCorner(tok string, nPos, nTex, nNorm int) faceCorner {
	resolve := func(s string, n int) int {
		if s == "" {
			return -1
		}
		idx, err := strconv.Atoi(s)
		if err != nil {
			return -1
		}
		if idx > 0 {
			idx--
		} else {
			idx = n + idx
		}
		if idx < 0 || idx >= n {
			return -1
		}
		return idx
	}

	parts := strings.Split(tok, "/")
	c := faceCorner{v: -1, vt: -1, vn: -1}
	if len(parts) > 0 {
		c.v = resolve(parts[0], nPos)
	}
	if len(parts) > 1 {
		c.vt = resolve(parts[1], nTex)
	}
	if len(parts) > 2 {
		c.vn = resolve(parts[2], nNorm)
	}
	return c
}

// emitFace fan-triangulates one face directive and pushes its triangles into
// the material pool. Out-of-range references are clamped to safe defaults
// per corner rather than dropping the whole face.
func emitFace(p *materialPool, toks []string, positions []mgl32.Vec3, texcoords []mgl32.Vec2, normals []mgl32.Vec3) {
	corners := make([]faceCorner, len(toks))
	for i, tok := range toks {
		corners[i] = parseCorner(tok, len(positions), len(texcoords), len(normals))
	}

	pos := func(c faceCorner) mgl32.Vec3 {
		if c.v < 0 {
			return mgl32.Vec3{}
		}
		return positions[c.v]
	}
	uv := func(c faceCorner) mgl32.Vec2 {
		if c.vt < 0 {
			return mgl32.Vec2{}
		}
		return texcoords[c.vt]
	}
	norm := func(c faceCorner) mgl32.Vec3 {
		if c.vn < 0 {
			return mgl32.Vec3{0, 1, 0}
		}
		return normals[c.vn]
	}

	for i := 1; i+1 < len(corners); i++ {
		c0, c1, c2 := corners[0], corners[i], corners[i+1]
		p0, p1, p2 := pos(c0), pos(c1), pos(c2)

		tangent, bitangent := triangleTangent(p0, p1, p2, uv(c0), uv(c1), uv(c2))

		for _, c := range []faceCorner{c0, c1, c2} {
			p.push(scene.Vertex{
				Position:  pos(c),
				Color:     p.material.DiffuseColor,
				TexCoord:  uv(c),
				Normal:    norm(c),
				Tangent:   tangent,
				Bitangent: bitangent,
			})
		}
	}
}
