// Package lighting provides the point-light registry for scene rendering.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// MaxLights is the maximum number of point lights supported in shaders.
const MaxLights = 16

// Light represents a point light source.
type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3 // RGB, 0-1 range
	Intensity float32
	// EntityName is the scene entity visualizing this light. Entities named
	// here are skipped by the shadow pass and drawn with the unlit shader.
	EntityName string
}

// Registry holds the lights in a scene. The light at index 0 is the
// shadow caster.
type Registry struct {
	lights []Light
}

// NewRegistry creates an empty light registry.
func NewRegistry() *Registry {
	return &Registry{
		lights: make([]Light, 0, MaxLights),
	}
}

// Add appends a light. Returns false if the registry is full.
func (r *Registry) Add(l Light) bool {
	if len(r.lights) >= MaxLights {
		return false
	}
	r.lights = append(r.lights, l)
	return true
}

// Lights returns the registered lights.
func (r *Registry) Lights() []Light {
	return r.lights
}

// Count returns the number of registered lights.
func (r *Registry) Count() int {
	return len(r.lights)
}

// ShadowCaster returns the shadow-casting light. ok is false when the
// registry is empty.
func (r *Registry) ShadowCaster() (Light, bool) {
	if len(r.lights) == 0 {
		return Light{}, false
	}
	return r.lights[0], true
}

// IsLightEntity reports whether the named entity visualizes a light.
func (r *Registry) IsLightEntity(name string) bool {
	for i := range r.lights {
		if r.lights[i].EntityName != "" && r.lights[i].EntityName == name {
			return true
		}
	}
	return false
}

// Positions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (r *Registry) Positions() []float32 {
	result := make([]float32, len(r.lights)*3)
	for i, l := range r.lights {
		result[i*3+0] = l.Position[0]
		result[i*3+1] = l.Position[1]
		result[i*3+2] = l.Position[2]
	}
	return result
}

// Colors returns colors as a flat float32 slice for GPU upload.
func (r *Registry) Colors() []float32 {
	result := make([]float32, len(r.lights)*3)
	for i, l := range r.lights {
		result[i*3+0] = l.Color[0]
		result[i*3+1] = l.Color[1]
		result[i*3+2] = l.Color[2]
	}
	return result
}

// Intensities returns intensities as a flat float32 slice for GPU upload.
func (r *Registry) Intensities() []float32 {
	result := make([]float32, len(r.lights))
	for i, l := range r.lights {
		result[i] = l.Intensity
	}
	return result
}
