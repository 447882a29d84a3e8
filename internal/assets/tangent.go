package assets

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// uvDetEpsilon is the smallest UV-delta determinant treated as a real
// parameterization. Below it the UVs are degenerate (unwrapped or collapsed)
// and the tangent frame is synthesized from the geometric normal instead.
const uvDetEpsilon = 1e-8

// triangleTangent computes the shared tangent and bitangent of one triangle
// from its edge vectors and UV deltas. All three vertices of the triangle
// receive the same frame; there is no smoothing across triangles.
func triangleTangent(p0, p1, p2 mgl32.Vec3, uv0, uv1, uv2 mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)

	du1 := uv1.X() - uv0.X()
	dv1 := uv1.Y() - uv0.Y()
	du2 := uv2.X() - uv0.X()
	dv2 := uv2.Y() - uv0.Y()

	det := du1*dv2 - du2*dv1
	if gomath.Abs(float64(det)) < uvDetEpsilon {
		return fallbackTangent(e1, e2)
	}

	f := 1.0 / det
	tangent := e1.Mul(dv2 * f).Sub(e2.Mul(dv1 * f))
	bitangent := e2.Mul(du1 * f).Sub(e1.Mul(du2 * f))

	if tangent.Len() < 1e-12 || bitangent.Len() < 1e-12 {
		return fallbackTangent(e1, e2)
	}
	return tangent.Normalize(), bitangent.Normalize()
}

// fallbackTangent builds an arbitrary orthogonal frame around the triangle's
// geometric normal so degenerate UVs never propagate Inf/NaN into the mesh.
func fallbackTangent(e1, e2 mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	n := e1.Cross(e2)
	if n.Len() < 1e-12 {
		// Zero-area triangle: any frame works.
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
	n = n.Normalize()

	axis := mgl32.Vec3{1, 0, 0}
	if gomath.Abs(float64(n.X())) > 0.9 {
		axis = mgl32.Vec3{0, 1, 0}
	}

	tangent := axis.Sub(n.Mul(n.Dot(axis))).Normalize()
	bitangent := n.Cross(tangent)
	return tangent, bitangent
}
