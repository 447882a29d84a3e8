// Package renderer orchestrates the per-frame passes: shadow depth map,
// skybox, PBR geometry and unlit light markers.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/halverson/glint/internal/engine/renderer/shaders"
	"github.com/halverson/glint/internal/engine/scene"
	"github.com/halverson/glint/internal/engine/shader"
	"github.com/halverson/glint/internal/engine/shadow"
	"github.com/halverson/glint/internal/engine/skybox"
	"github.com/halverson/glint/internal/logger"
)

// lightPower compensates for inverse-square falloff so config intensities
// stay in a human-friendly 0..10 range.
const lightPower = 100.0

// shadowMapUnit is the texture unit reserved for the shadow depth map;
// units 0..6 belong to the material maps.
const shadowMapUnit = 7

// Config holds renderer configuration.
type Config struct {
	Width            int
	Height           int
	ShadowResolution int32
	ShadowsEnabled   bool
}

// Renderer owns the pass shaders and the shadow map.
type Renderer struct {
	config Config

	pbrShader   *shader.Shader
	depthShader *shader.Shader
	unlitShader *shader.Shader

	shadowMap *shadow.Map
	sky       *skybox.Skybox

	// lightSpace is computed once per frame in the shadow pass and reused
	// by the PBR pass.
	lightSpace mgl32.Mat4
}

// New creates the renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	if r.pbrShader, err = shader.New(shaders.PBRVertex, shaders.PBRFragment); err != nil {
		return nil, fmt.Errorf("pbr shader: %w", err)
	}
	if r.depthShader, err = shader.New(shaders.DepthVertex, shaders.DepthFragment); err != nil {
		return nil, fmt.Errorf("depth shader: %w", err)
	}
	if r.unlitShader, err = shader.New(shaders.UnlitVertex, shaders.UnlitFragment); err != nil {
		return nil, fmt.Errorf("unlit shader: %w", err)
	}

	if cfg.ShadowsEnabled {
		r.shadowMap, err = shadow.NewMap(cfg.ShadowResolution)
		if err != nil {
			return nil, fmt.Errorf("shadow map: %w", err)
		}
	}

	return r, nil
}

// SetSkybox installs the background skybox. May be nil.
func (r *Renderer) SetSkybox(sky *skybox.Skybox) {
	r.sky = sky
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// RenderFrame draws one frame: shadow depth pass, clear, skybox, PBR
// geometry, then the unlit light markers.
func (r *Renderer) RenderFrame(s *scene.Scene) {
	if s.Camera == nil {
		return
	}

	r.shadowPass(s)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := s.Camera.ViewMatrix()
	projection := s.Camera.ProjectionMatrix()

	if r.sky != nil {
		r.sky.Draw(view, projection)
	}

	r.pbrPass(s, view, projection)
	r.unlitPass(s, view, projection)
}

// shadowPass renders scene depth from the shadow caster's point of view.
// Light-marker entities cast no shadow.
func (r *Renderer) shadowPass(s *scene.Scene) {
	if r.shadowMap == nil {
		return
	}
	caster, ok := s.Lights.ShadowCaster()
	if !ok {
		return
	}

	r.lightSpace = shadow.LightSpaceMatrix(caster.Position)

	r.shadowMap.Bind()
	r.depthShader.Use()
	r.depthShader.SetMat4("lightSpaceMatrix", r.lightSpace)
	r.depthShader.SetInt("diffuseTexture", 0)

	entities := s.Entities()
	for i := range entities {
		e := &entities[i]
		if !e.Active || s.Lights.IsLightEntity(e.Name) {
			continue
		}

		r.depthShader.SetMat4("model", ModelMatrix(e.Position, e.Rotation, e.Scale))

		for _, h := range e.Meshes {
			m := s.Mesh(h)
			if m == nil || !m.Valid() {
				continue
			}

			// Front-face culling in the depth pass reduces self-shadow
			// acne on closed geometry.
			if m.Cull == scene.CullNone {
				gl.Disable(gl.CULL_FACE)
			} else {
				gl.Enable(gl.CULL_FACE)
				gl.CullFace(gl.FRONT)
			}

			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, r.alphaTexture(s, m))
			m.Draw()
		}
	}

	r.shadowMap.Unbind()
	gl.Enable(gl.CULL_FACE)
}

// alphaTexture picks the texture for the depth shader's alpha test: the
// mesh's legacy diffuse texture, or the opaque white default.
func (r *Renderer) alphaTexture(s *scene.Scene, m *scene.Mesh) uint32 {
	if m.Material.TextureID != 0 {
		return m.Material.TextureID
	}
	if s.Textures != nil {
		return s.Textures.Default()
	}
	return 0
}

// pbrPass draws every active non-light entity with the Cook-Torrance shader.
func (r *Renderer) pbrPass(s *scene.Scene, view, projection mgl32.Mat4) {
	sh := r.pbrShader
	sh.Use()

	sh.SetMat4("view", view)
	sh.SetMat4("projection", projection)
	sh.SetVec3("viewPos", s.Camera.Position)
	sh.SetMat4("lightSpaceMatrix", r.lightSpace)

	r.uploadLights(sh, s)

	sh.SetInt("shadowMap", shadowMapUnit)
	if r.shadowMap != nil {
		r.shadowMap.BindTexture(gl.TEXTURE0 + shadowMapUnit)
	}

	entities := s.Entities()
	for i := range entities {
		e := &entities[i]
		if !e.Active || s.Lights.IsLightEntity(e.Name) {
			continue
		}

		model := ModelMatrix(e.Position, e.Rotation, e.Scale)
		sh.SetMat4("model", model)
		sh.SetMat3("normalMatrix", NormalMatrix(model))

		for _, h := range e.Meshes {
			m := s.Mesh(h)
			if m == nil || !m.Valid() {
				continue
			}

			applyCull(m.Cull)
			r.bindMaterial(sh, &m.Material)
			m.Draw()
		}
	}

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
}

// shadowCasterIndex is the light index the fragment shader shadow-tests.
// Without a shadow map there is no valid light-space matrix, so -1 keeps
// every light out of ShadowCalculation.
func (r *Renderer) shadowCasterIndex() int32 {
	if r.shadowMap == nil {
		return -1
	}
	return 0
}

// uploadLights pushes the flattened light arrays and the shadow caster
// index. Intensities are pre-scaled by lightPower.
func (r *Renderer) uploadLights(sh *shader.Shader, s *scene.Scene) {
	sh.SetInt("numLights", int32(s.Lights.Count()))
	sh.SetInt("shadowLightIndex", r.shadowCasterIndex())

	if s.Lights.Count() == 0 {
		return
	}

	sh.SetVec3Slice("lightPositions", s.Lights.Positions())
	sh.SetVec3Slice("lightColors", s.Lights.Colors())

	intensities := s.Lights.Intensities()
	for i := range intensities {
		intensities[i] *= lightPower
	}
	sh.SetFloatSlice("lightIntensities", intensities)
}

// bindMaterial binds the material's texture maps to units 0..6 and sets the
// scalar fallbacks and per-map presence flags.
func (r *Renderer) bindMaterial(sh *shader.Shader, mat *scene.Material) {
	sh.SetVec4("baseColor", mgl32.Vec4(mat.BaseColor))
	sh.SetFloat("metallicValue", mat.Metallic)
	sh.SetFloat("roughnessValue", mat.Roughness)
	sh.SetVec3("emissiveValue", mgl32.Vec3(mat.Emissive))

	bind := func(unit int32, name, hasName string, tex uint32) {
		sh.SetInt(name, unit)
		sh.SetBool(hasName, tex != 0)
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}

	bind(0, "albedoMap", "hasAlbedoMap", mat.AlbedoMap)
	bind(1, "normalMap", "hasNormalMap", mat.NormalMap)
	bind(2, "metallicMap", "hasMetallicMap", mat.MetallicMap)
	bind(3, "roughnessMap", "hasRoughnessMap", mat.RoughnessMap)
	bind(4, "aoMap", "hasAOMap", mat.AOMap)
	bind(5, "emissiveMap", "hasEmissiveMap", mat.EmissiveMap)
	bind(6, "metallicRoughnessMap", "hasMetallicRoughnessMap", mat.MetallicRoughnessMap)
}

// unlitPass draws the light-marker entities with the flat emissive shader.
// Culling is off so the markers stay visible from any angle.
func (r *Renderer) unlitPass(s *scene.Scene, view, projection mgl32.Mat4) {
	sh := r.unlitShader
	sh.Use()
	sh.SetMat4("view", view)
	sh.SetMat4("projection", projection)

	gl.Disable(gl.CULL_FACE)

	for _, l := range s.Lights.Lights() {
		if l.EntityName == "" {
			continue
		}
		e := s.FindEntity(l.EntityName)
		if e == nil || !e.Active {
			continue
		}

		sh.SetMat4("model", ModelMatrix(e.Position, e.Rotation, e.Scale))
		sh.SetVec3("emissiveColor", l.Color)
		sh.SetFloat("intensity", l.Intensity)

		for _, h := range e.Meshes {
			m := s.Mesh(h)
			if m == nil || !m.Valid() {
				continue
			}
			m.Draw()
		}
	}

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
}

// applyCull sets the face-culling state for a mesh.
func applyCull(mode scene.CullMode) {
	switch mode {
	case scene.CullNone:
		gl.Disable(gl.CULL_FACE)
	case scene.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
}

// Close releases the shaders, shadow map and skybox.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.pbrShader != nil {
		r.pbrShader.Delete()
	}
	if r.depthShader != nil {
		r.depthShader.Delete()
	}
	if r.unlitShader != nil {
		r.unlitShader.Delete()
	}
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
	}
	if r.sky != nil {
		r.sky.Destroy()
	}
}
