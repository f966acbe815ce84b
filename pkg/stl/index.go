package stl

import (
	"github.com/philipparndt/gosculpt/pkg/geometry"
)

// IndexedMesh is the loader's hand-off format: shared vertex positions plus
// triangle index triples. STL stores a triangle soup where every facet
// repeats its corner coordinates, so welding is required before connected
// vertices can be deformed together.
type IndexedMesh struct {
	Positions []geometry.Vector3
	Triangles [][3]int
}

// Index welds the model's triangle soup into an indexed mesh. Corners with
// exactly equal coordinates share one vertex; winding order is preserved.
func (m *Model) Index() *IndexedMesh {
	indexed := &IndexedMesh{
		Positions: make([]geometry.Vector3, 0, len(m.Triangles)),
		Triangles: make([][3]int, 0, len(m.Triangles)),
	}

	seen := make(map[geometry.Vector3]int)

	weld := func(p geometry.Vector3) int {
		if i, ok := seen[p]; ok {
			return i
		}
		i := len(indexed.Positions)
		indexed.Positions = append(indexed.Positions, p)
		seen[p] = i
		return i
	}

	for _, triangle := range m.Triangles {
		indexed.Triangles = append(indexed.Triangles, [3]int{
			weld(triangle.V1),
			weld(triangle.V2),
			weld(triangle.V3),
		})
	}

	return indexed
}

// VertexCount returns the number of welded vertices
func (im *IndexedMesh) VertexCount() int {
	return len(im.Positions)
}
