package geometry

import "github.com/go-gl/mathgl/mgl32"

// Transform builds a model matrix: translate, then rotate angle radians
// about axis (translate * rotate * identity). A zero axis skips the rotation.
func Transform(translate, axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	m := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())
	if axis.Len() == 0 || angle == 0 {
		return m
	}
	return m.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
}

func Scaled(m mgl32.Mat4, s float32) mgl32.Mat4 {
	return m.Mul4(mgl32.Scale3D(s, s, s))
}
