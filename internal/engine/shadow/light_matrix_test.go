package shadow

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func matFinite(m mgl32.Mat4) bool {
	for _, v := range m {
		f := float64(v)
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func projectToNDC(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	clip := m.Mul4x1(p.Vec4(1))
	return mgl32.Vec3{clip.X() / clip.W(), clip.Y() / clip.W(), clip.Z() / clip.W()}
}

func TestLightMatrixFiniteForVerticalLight(t *testing.T) {
	// A light directly above the origin would make lookAt with a world-Y
	// up vector degenerate; the matrix must still be finite.
	m := LightSpaceMatrix(mgl32.Vec3{0, 20, 0})
	if !matFinite(m) {
		t.Fatal("light matrix for vertical light contains NaN/Inf")
	}

	m = LightSpaceMatrix(mgl32.Vec3{0, -20, 0})
	if !matFinite(m) {
		t.Fatal("light matrix for light below scene contains NaN/Inf")
	}
}

func TestOriginProjectsInsideLightFrustum(t *testing.T) {
	m := LightSpaceMatrix(mgl32.Vec3{10, 10, 10})

	ndc := projectToNDC(m, mgl32.Vec3{0, 0, 0})
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 {
		t.Errorf("scene origin outside light frustum: %v", ndc)
	}
	if ndc.Z() < -1 || ndc.Z() > 1 {
		t.Errorf("scene origin outside light depth range: %v", ndc)
	}
}

func TestPointsBeyondFarPlaneClip(t *testing.T) {
	lightPos := mgl32.Vec3{0, 0, 50}
	m := LightSpaceMatrix(lightPos)

	// A point 150 units past the light along its view direction sits
	// beyond the 100-unit far plane.
	ndc := projectToNDC(m, mgl32.Vec3{0, 0, -101})
	if ndc.Z() <= 1 {
		t.Errorf("point beyond far plane should clip, ndc.z = %f", ndc.Z())
	}
}
