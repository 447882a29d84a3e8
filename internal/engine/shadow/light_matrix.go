package shadow

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Light frustum constants for the point-light perspective shadow map.
const (
	lightFOV  = 90.0
	lightNear = 0.5
	lightFar  = 100.0
)

// LightSpaceMatrix computes the view-projection matrix for the shadow pass:
// a 90-degree perspective looking from the light at the scene origin.
func LightSpaceMatrix(lightPos mgl32.Vec3) mgl32.Mat4 {
	target := mgl32.Vec3{0, 0, 0}

	// When the light looks nearly straight down (or up), the world Y up
	// vector degenerates; switch to the X axis.
	up := mgl32.Vec3{0, 1, 0}
	dir := target.Sub(lightPos)
	if dir.Len() > 0 {
		dir = dir.Normalize()
		if gomath.Abs(float64(dir.Y())) > 0.99 {
			up = mgl32.Vec3{1, 0, 0}
		}
	}

	view := mgl32.LookAtV(lightPos, target, up)
	proj := mgl32.Perspective(mgl32.DegToRad(lightFOV), 1.0, lightNear, lightFar)

	return proj.Mul4(view)
}
