package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Entity is a named, transform-bearing group of meshes. Entities reference
// meshes by handle; the scene arena owns mesh lifetime.
type Entity struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler degrees, applied Z then Y then X
	Scale    mgl32.Vec3
	Meshes   []MeshHandle
	Active   bool
}

// TransformUpdate describes a partial entity transform change. A nil field
// leaves that component untouched.
type TransformUpdate struct {
	Position *mgl32.Vec3
	Rotation *mgl32.Vec3
	Scale    *mgl32.Vec3
}

// Vec is a convenience for building TransformUpdate fields inline.
func Vec(x, y, z float32) *mgl32.Vec3 {
	v := mgl32.Vec3{x, y, z}
	return &v
}

// MaybeVec converts the older NaN-sentinel convention ("first component NaN
// means leave unchanged") into an optional vector.
func MaybeVec(v mgl32.Vec3) *mgl32.Vec3 {
	if gomath.IsNaN(float64(v[0])) {
		return nil
	}
	return &v
}
