package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ModelMatrix builds the world transform T * Rz * Ry * Rx * S from an
// entity transform. Rotation is Euler degrees applied Z then Y then X.
func ModelMatrix(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y()))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X()))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// NormalMatrix is the inverse-transpose of the model's upper 3x3. Plain
// rotation would suffice for uniform scale; this stays correct for
// non-uniform scale too.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
