package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecsClose(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestModelMatrixTranslationOnly(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})

	got := transformPoint(m, mgl32.Vec3{0, 0, 0})
	if !vecsClose(got, mgl32.Vec3{1, 2, 3}) {
		t.Errorf("origin maps to %v, want (1,2,3)", got)
	}
}

func TestModelMatrixScaleBeforeRotation(t *testing.T) {
	// Scale by 2 in X then rotate 90 degrees around Y: the point (1,0,0)
	// scales to (2,0,0) and rotates onto -Z.
	m := ModelMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{2, 1, 1})

	got := transformPoint(m, mgl32.Vec3{1, 0, 0})
	if !vecsClose(got, mgl32.Vec3{0, 0, -2}) {
		t.Errorf("point maps to %v, want (0,0,-2)", got)
	}
}

func TestModelMatrixRotationOrderZYX(t *testing.T) {
	// Rz(90) then Ry(90) applied to +X: Rx is identity here, Ry moves +X
	// onto -Z, then Rz leaves -Z fixed. With the opposite order the result
	// would be +Y.
	m := ModelMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 90, 90}, mgl32.Vec3{1, 1, 1})

	got := transformPoint(m, mgl32.Vec3{1, 0, 0})
	if !vecsClose(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("point maps to %v, want (0,0,-1)", got)
	}
}

func TestNormalMatrixUniformScaleKeepsDirection(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 3, 3})
	n := NormalMatrix(m)

	got := n.Mul3x1(mgl32.Vec3{0, 1, 0}).Normalize()
	if !vecsClose(got, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("normal direction changed: %v", got)
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	// A plane squashed in Y: its +Y surface normal must stay +Y, which a
	// plain model-matrix transform would not preserve for a tilted normal.
	m := ModelMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0.5, 1})
	n := NormalMatrix(m)

	// Normal of a 45-degree slope in the XY plane before scaling.
	slope := mgl32.Vec3{1, 1, 0}.Normalize()
	got := n.Mul3x1(slope).Normalize()

	// Squashing Y steepens the surface, so the transformed normal leans
	// further toward +Y.
	if got.Y() <= slope.Y() {
		t.Errorf("normal %v should lean toward +Y more than %v", got, slope)
	}

	naive := m.Mat3().Mul3x1(slope).Normalize()
	if naive.Y() >= got.Y() {
		t.Errorf("inverse-transpose %v should differ from naive transform %v", got, naive)
	}
}
