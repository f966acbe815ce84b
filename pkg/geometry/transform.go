package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform couples a mesh's local-to-world placement matrix with its cached
// inverse. Contact points arrive in world space while vertex positions are
// stored in local space, so both directions are needed on every brush
// application. The inverse is computed once when the transform is built and
// is therefore always the exact inverse of the forward matrix.
type Transform struct {
	localToWorld mgl64.Mat4
	worldToLocal mgl64.Mat4
}

// IdentityTransform returns a transform that maps local space onto world
// space unchanged.
func IdentityTransform() Transform {
	return Transform{
		localToWorld: mgl64.Ident4(),
		worldToLocal: mgl64.Ident4(),
	}
}

// NewTransform builds a transform from a local-to-world matrix.
// Returns an error if the matrix is not invertible.
func NewTransform(localToWorld mgl64.Mat4) (Transform, error) {
	if math.Abs(localToWorld.Det()) < 1e-12 {
		return Transform{}, fmt.Errorf("local-to-world matrix is singular")
	}
	return Transform{
		localToWorld: localToWorld,
		worldToLocal: localToWorld.Inv(),
	}, nil
}

// TRS composes a transform from a translation, a rotation of angle radians
// around axis, and a uniform scale factor.
func TRS(translation Vector3, axis Vector3, angle float64, scale float64) (Transform, error) {
	if scale == 0 {
		return Transform{}, fmt.Errorf("scale must be non-zero")
	}
	m := mgl64.Translate3D(translation.X, translation.Y, translation.Z)
	if angle != 0 {
		a := mgl64.Vec3{axis.X, axis.Y, axis.Z}
		if a.Len() == 0 {
			return Transform{}, fmt.Errorf("rotation axis must be non-zero")
		}
		m = m.Mul4(mgl64.HomogRotate3D(angle, a.Normalize()))
	}
	m = m.Mul4(mgl64.Scale3D(scale, scale, scale))
	return NewTransform(m)
}

// LocalToWorld returns the forward placement matrix.
func (t Transform) LocalToWorld() mgl64.Mat4 {
	return t.localToWorld
}

// WorldToLocal returns the inverse placement matrix.
func (t Transform) WorldToLocal() mgl64.Mat4 {
	return t.worldToLocal
}

// ToLocalPoint transforms a world-space point into local space.
func (t Transform) ToLocalPoint(p Vector3) Vector3 {
	return fromVec3(mgl64.TransformCoordinate(toVec3(p), t.worldToLocal))
}

// ToWorldPoint transforms a local-space point into world space.
func (t Transform) ToWorldPoint(p Vector3) Vector3 {
	return fromVec3(mgl64.TransformCoordinate(toVec3(p), t.localToWorld))
}

// ToLocalDirection transforms a world-space direction into local space.
// Directions ignore the translation component of the matrix.
func (t Transform) ToLocalDirection(d Vector3) Vector3 {
	return fromVec3(mgl64.TransformNormal(toVec3(d), t.worldToLocal))
}

// ToWorldDirection transforms a local-space direction into world space.
func (t Transform) ToWorldDirection(d Vector3) Vector3 {
	return fromVec3(mgl64.TransformNormal(toVec3(d), t.localToWorld))
}

func toVec3(v Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
