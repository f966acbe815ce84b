package geometry

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

const rayEpsilon = 1e-9

// IntersectTriangle tests the ray against a triangle using the
// Moeller-Trumbore algorithm. On a hit it returns the ray parameter t
// (distance along the direction) and true. Back faces count as hits so
// sculpting works from either side of a surface.
func (r Ray) IntersectTriangle(v1, v2, v3 Vector3) (float64, bool) {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false // Ray is parallel to the triangle plane
	}

	invDet := 1.0 / det
	s := r.Origin.Sub(v1)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t < rayEpsilon {
		return 0, false // Intersection behind the origin
	}

	return t, true
}
