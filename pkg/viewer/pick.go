package viewer

import (
	"math"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// Hit describes where a pick ray met the mesh, in world space
type Hit struct {
	Point    geometry.Vector3
	Normal   geometry.Vector3
	Triangle int
	Distance float64
}

// Pick casts a world-space ray against the store's current triangles and
// returns the nearest hit. The contact normal is the face normal of the hit
// triangle, which is what the sculpt tool pushes along.
func Pick(store *mesh.Store, ray geometry.Ray) (Hit, bool) {
	transform := store.Transform()
	positions := store.Positions()

	best := Hit{Distance: math.MaxFloat64, Triangle: -1}
	for ti, tri := range store.Triangles() {
		v1 := transform.ToWorldPoint(positions[tri[0]])
		v2 := transform.ToWorldPoint(positions[tri[1]])
		v3 := transform.ToWorldPoint(positions[tri[2]])

		t, ok := ray.IntersectTriangle(v1, v2, v3)
		if !ok || t >= best.Distance {
			continue
		}

		normal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
		// Flip toward the viewer so sculpting pushes out of the visible side
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Mul(-1)
		}

		best = Hit{
			Point:    ray.At(t),
			Normal:   normal,
			Triangle: ti,
			Distance: t,
		}
	}

	return best, best.Triangle >= 0
}
