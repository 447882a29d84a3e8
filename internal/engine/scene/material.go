package scene

// MapPaths holds the texture file paths a material references, as parsed
// from the MTL file. Paths are resolved to GPU handles at mesh upload.
type MapPaths struct {
	Albedo            string
	Normal            string
	Metallic          string
	Roughness         string
	AO                string
	Emissive          string
	MetallicRoughness string
}

// Material describes surface appearance. Scalar values are the fallback
// used whenever the corresponding texture map is absent (handle 0).
type Material struct {
	Name string

	BaseColor [4]float32
	Metallic  float32
	Roughness float32
	Emissive  [3]float32

	// DiffuseColor tints vertices at load time and feeds the legacy
	// shadow-pass alpha test alongside TextureID.
	DiffuseColor [4]float32

	// GPU texture handles; 0 means absent, use the scalar fallback.
	AlbedoMap            uint32
	NormalMap            uint32
	MetallicMap          uint32
	RoughnessMap         uint32
	AOMap                uint32
	EmissiveMap          uint32
	MetallicRoughnessMap uint32

	// TextureID is the legacy single-texture handle used by the shadow
	// pass alpha test. Set to the albedo map when one exists.
	TextureID uint32

	// Paths references the source images; filled by the MTL parser.
	Paths MapPaths
}

// DefaultMaterial returns the flat white material substituted for any
// missing material reference.
func DefaultMaterial() Material {
	return Material{
		Name:         "default",
		BaseColor:    [4]float32{1, 1, 1, 1},
		DiffuseColor: [4]float32{1, 1, 1, 1},
		Metallic:     1,
		Roughness:    0.5,
	}
}

func (m *Material) HasAlbedoMap() bool            { return m.AlbedoMap != 0 }
func (m *Material) HasNormalMap() bool            { return m.NormalMap != 0 }
func (m *Material) HasMetallicMap() bool          { return m.MetallicMap != 0 }
func (m *Material) HasRoughnessMap() bool         { return m.RoughnessMap != 0 }
func (m *Material) HasAOMap() bool                { return m.AOMap != 0 }
func (m *Material) HasEmissiveMap() bool          { return m.EmissiveMap != 0 }
func (m *Material) HasMetallicRoughnessMap() bool { return m.MetallicRoughnessMap != 0 }
