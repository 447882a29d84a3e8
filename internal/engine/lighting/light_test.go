package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRegistryCap(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < MaxLights; i++ {
		if !r.Add(Light{Intensity: 1}) {
			t.Fatalf("Add rejected light %d below cap", i)
		}
	}
	if r.Add(Light{}) {
		t.Error("Add accepted a light beyond MaxLights")
	}
	if r.Count() != MaxLights {
		t.Errorf("expected %d lights, got %d", MaxLights, r.Count())
	}
}

func TestShadowCasterIsFirst(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.ShadowCaster(); ok {
		t.Error("empty registry reported a shadow caster")
	}

	r.Add(Light{Position: mgl32.Vec3{1, 2, 3}, EntityName: "sun"})
	r.Add(Light{Position: mgl32.Vec3{4, 5, 6}, EntityName: "lamp"})

	caster, ok := r.ShadowCaster()
	if !ok {
		t.Fatal("expected a shadow caster")
	}
	if caster.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("shadow caster is not the first light: %v", caster.Position)
	}
}

func TestIsLightEntity(t *testing.T) {
	r := NewRegistry()
	r.Add(Light{EntityName: "lamp"})
	r.Add(Light{}) // no visual entity

	if !r.IsLightEntity("lamp") {
		t.Error("expected lamp to be a light entity")
	}
	if r.IsLightEntity("crate") {
		t.Error("crate should not be a light entity")
	}
	if r.IsLightEntity("") {
		t.Error("empty name should never match")
	}
}

func TestFlattenedUploadArrays(t *testing.T) {
	r := NewRegistry()
	r.Add(Light{
		Position:  mgl32.Vec3{1, 2, 3},
		Color:     mgl32.Vec3{0.5, 0.25, 1},
		Intensity: 2,
	})
	r.Add(Light{
		Position:  mgl32.Vec3{-1, 0, 4},
		Color:     mgl32.Vec3{1, 1, 0},
		Intensity: 7,
	})

	pos := r.Positions()
	want := []float32{1, 2, 3, -1, 0, 4}
	for i := range want {
		if pos[i] != want[i] {
			t.Errorf("Positions[%d] = %f, want %f", i, pos[i], want[i])
		}
	}

	colors := r.Colors()
	if colors[0] != 0.5 || colors[5] != 0 {
		t.Errorf("unexpected colors: %v", colors)
	}

	intensities := r.Intensities()
	if len(intensities) != 2 || intensities[0] != 2 || intensities[1] != 7 {
		t.Errorf("unexpected intensities: %v", intensities)
	}
}
