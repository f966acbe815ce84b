package mesh

import (
	"fmt"

	"github.com/philipparndt/gosculpt/pkg/geometry"
)

// Store owns the vertex data for one loaded mesh: the current (mutable)
// positions, a pristine snapshot captured at load time, the derived vertex
// normals, and the triangle connectivity used to recompute them. A vertex's
// index is its identity for the lifetime of the loaded mesh.
//
// The store does no internal locking. It is meant to be owned by a single
// sculpting session; callers running concurrent sessions against one store
// must serialize access themselves.
type Store struct {
	positions []geometry.Vector3
	original  []geometry.Vector3
	normals   []geometry.Vector3
	triangles [][3]int
	transform geometry.Transform
}

// NewStore creates an empty store with an identity placement
func NewStore() *Store {
	return &Store{transform: geometry.IdentityTransform()}
}

// Load replaces the store's contents with the given vertices and triangle
// index triples, captures the pristine snapshot, and computes the initial
// normals. On error the store is left untouched.
func (s *Store) Load(positions []geometry.Vector3, triangles [][3]int) error {
	if len(positions) == 0 {
		return &InvalidMeshError{Reason: "empty vertex set"}
	}
	for ti, tri := range triangles {
		for _, vi := range tri {
			if vi < 0 || vi >= len(positions) {
				return &InvalidMeshError{
					Reason: fmt.Sprintf("triangle %d references vertex %d of %d", ti, vi, len(positions)),
				}
			}
		}
	}

	s.positions = make([]geometry.Vector3, len(positions))
	copy(s.positions, positions)

	s.original = make([]geometry.Vector3, len(positions))
	copy(s.original, positions)

	s.triangles = make([][3]int, len(triangles))
	copy(s.triangles, triangles)

	s.normals = make([]geometry.Vector3, len(positions))
	s.RecomputeNormals()
	return nil
}

// VertexCount returns the number of vertices
func (s *Store) VertexCount() int {
	return len(s.positions)
}

// TriangleCount returns the number of triangles
func (s *Store) TriangleCount() int {
	return len(s.triangles)
}

// Position returns the current position of vertex i
func (s *Store) Position(i int) (geometry.Vector3, error) {
	if i < 0 || i >= len(s.positions) {
		return geometry.Vector3{}, ErrIndexOutOfRange
	}
	return s.positions[i], nil
}

// SetPosition moves vertex i. Normals are not recomputed here; callers
// batch their edits and call RecomputeNormals once afterwards.
func (s *Store) SetPosition(i int, p geometry.Vector3) error {
	if i < 0 || i >= len(s.positions) {
		return ErrIndexOutOfRange
	}
	s.positions[i] = p
	return nil
}

// Positions returns the live position slice for iteration. Callers must
// treat it as read-only and mutate through SetPosition.
func (s *Store) Positions() []geometry.Vector3 {
	return s.positions
}

// Normal returns the vertex normal of vertex i as of the last recompute
func (s *Store) Normal(i int) (geometry.Vector3, error) {
	if i < 0 || i >= len(s.normals) {
		return geometry.Vector3{}, ErrIndexOutOfRange
	}
	return s.normals[i], nil
}

// Normals returns the live normal slice. Valid until the next edit batch;
// stale after any SetPosition call that is not followed by RecomputeNormals.
func (s *Store) Normals() []geometry.Vector3 {
	return s.normals
}

// Triangles returns the triangle index triples
func (s *Store) Triangles() [][3]int {
	return s.triangles
}

// Transform returns the mesh's placement in the scene
func (s *Store) Transform() geometry.Transform {
	return s.transform
}

// SetTransform replaces the mesh's placement. Sculpting never calls this;
// it only edits vertex positions.
func (s *Store) SetTransform(t geometry.Transform) {
	s.transform = t
}

// RecomputeNormals rebuilds every vertex normal from the current positions
// as the area-weighted average of adjacent face normals. The unnormalized
// cross product of two triangle edges is proportional to the face area, so
// accumulating raw cross products and normalizing at the end weights larger
// faces more. Deterministic for fixed positions and connectivity.
func (s *Store) RecomputeNormals() {
	for i := range s.normals {
		s.normals[i] = geometry.Vector3{}
	}

	for _, tri := range s.triangles {
		v1 := s.positions[tri[0]]
		v2 := s.positions[tri[1]]
		v3 := s.positions[tri[2]]

		face := v2.Sub(v1).Cross(v3.Sub(v1))
		for _, vi := range tri {
			s.normals[vi] = s.normals[vi].Add(face)
		}
	}

	for i := range s.normals {
		s.normals[i] = s.normals[i].Normalize()
	}
}

// Reset restores every vertex to its pristine load-time position and
// recomputes the normals. Idempotent.
func (s *Store) Reset() {
	copy(s.positions, s.original)
	s.RecomputeNormals()
}

// BoundingBox returns the axis-aligned bounds of the current positions
func (s *Store) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range s.positions {
		bbox.Extend(p)
	}
	return bbox
}
