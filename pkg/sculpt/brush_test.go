package sculpt

import (
	"math"
	"testing"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// gridStore builds a flat 5x5 vertex grid at z=0 spanning [-2,2] in x and y.
// Vertex (row,col) has index row*5+col and position (col-2, row-2, 0).
func gridStore(t *testing.T) *mesh.Store {
	t.Helper()

	positions := make([]geometry.Vector3, 0, 25)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			positions = append(positions, geometry.NewVector3(float64(col-2), float64(row-2), 0))
		}
	}

	triangles := make([][3]int, 0, 32)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			i := row*5 + col
			triangles = append(triangles, [3]int{i, i + 1, i + 6})
			triangles = append(triangles, [3]int{i, i + 6, i + 5})
		}
	}

	store := mesh.NewStore()
	if err := store.Load(positions, triangles); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func snapshot(store *mesh.Store) []geometry.Vector3 {
	s := make([]geometry.Vector3, store.VertexCount())
	copy(s, store.Positions())
	return s
}

func vec(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

var up = geometry.NewVector3(0, 0, 1)

func TestFalloffShape(t *testing.T) {
	radius := 2.0

	if f := Falloff(0, radius); f != 1 {
		t.Errorf("falloff at contact point failed: expected 1, got %v", f)
	}
	if f := Falloff(radius, radius); f != 0 {
		t.Errorf("falloff at boundary failed: expected 0, got %v", f)
	}
	if f := Falloff(radius*3, radius); f != 0 {
		t.Errorf("falloff beyond boundary failed: expected 0, got %v", f)
	}
	if f := Falloff(1, 0); f != 0 {
		t.Errorf("falloff with zero radius failed: expected 0, got %v", f)
	}

	// Strictly decreasing inside the radius
	prev := 2.0
	for d := 0.0; d < radius; d += 0.25 {
		f := Falloff(d, radius)
		if f >= prev {
			t.Errorf("falloff not decreasing at d=%v: %v >= %v", d, f, prev)
		}
		if f < 0 || f > 1 {
			t.Errorf("falloff out of [0,1] at d=%v: %v", d, f)
		}
		prev = f
	}
}

func TestDefaultRadius(t *testing.T) {
	// Spacing-driven radius covers a handful of vertices
	if got := DefaultRadius(0.5, 10); math.Abs(got-2.0) > 1e-10 {
		t.Errorf("expected radius 2.0 for spacing 0.5, got %v", got)
	}
	// Clamped into the UI bounds on both ends
	if got := DefaultRadius(0.01, 10); math.Abs(got-0.5) > 1e-10 {
		t.Errorf("expected lower clamp 0.5, got %v", got)
	}
	if got := DefaultRadius(5, 10); math.Abs(got-5.0) > 1e-10 {
		t.Errorf("expected upper clamp 5.0, got %v", got)
	}
	// Degenerate spacing falls back to a fraction of the model size
	if got := DefaultRadius(0, 10); math.Abs(got-1.5) > 1e-10 {
		t.Errorf("expected fallback radius 1.5, got %v", got)
	}
}

func TestApplyZeroStrengthIsNoop(t *testing.T) {
	store := gridStore(t)
	before := snapshot(store)

	n := Apply(store, Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 0}, vec(0, 0, 0), &up, geometry.Vector3{})
	if n != 0 {
		t.Errorf("expected 0 affected vertices, got %d", n)
	}
	for i, p := range store.Positions() {
		if p != before[i] {
			t.Fatalf("vertex %d moved by zero-strength brush: %v", i, p)
		}
	}
}

func TestApplyZeroRadiusIsNoop(t *testing.T) {
	store := gridStore(t)
	before := snapshot(store)

	if n := Apply(store, Brush{Tool: ToolSmooth, Radius: 0, Strength: 10}, vec(0, 0, 0), nil, geometry.Vector3{}); n != 0 {
		t.Errorf("expected 0 affected vertices, got %d", n)
	}
	for i, p := range store.Positions() {
		if p != before[i] {
			t.Fatalf("vertex %d moved by zero-radius brush: %v", i, p)
		}
	}
}

func TestApplySculptWithoutNormalIsNoop(t *testing.T) {
	store := gridStore(t)
	before := snapshot(store)

	if n := Apply(store, Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 10}, vec(0, 0, 0), nil, geometry.Vector3{}); n != 0 {
		t.Errorf("expected 0 affected vertices, got %d", n)
	}
	for i, p := range store.Positions() {
		if p != before[i] {
			t.Fatalf("vertex %d moved without a normal: %v", i, p)
		}
	}
}

func TestApplyMoveWithoutDeltaIsNoop(t *testing.T) {
	store := gridStore(t)
	before := snapshot(store)

	if n := Apply(store, Brush{Tool: ToolMove, Radius: 1.5, Strength: 10}, vec(0, 0, 0), nil, geometry.Vector3{}); n != 0 {
		t.Errorf("expected 0 affected vertices, got %d", n)
	}
	for i, p := range store.Positions() {
		if p != before[i] {
			t.Fatalf("vertex %d moved without a cursor delta: %v", i, p)
		}
	}
}

func TestApplyLocalityAllTools(t *testing.T) {
	radius := 1.5
	contact := vec(0, 0, 0)

	for _, tool := range []Tool{ToolMove, ToolSculpt, ToolSmooth, ToolPinch} {
		store := gridStore(t)
		before := snapshot(store)

		Apply(store, Brush{Tool: tool, Radius: radius, Strength: 10}, contact, &up, vec(0.1, 0, 0))

		for i, p := range store.Positions() {
			if before[i].Distance(contact) >= radius && p != before[i] {
				t.Errorf("%v: vertex %d at distance %v moved outside radius",
					tool, i, before[i].Distance(contact))
			}
		}
	}
}

func TestApplySculptScenario(t *testing.T) {
	// Contact at the grid center, pushing along +Z. Displacement must grow
	// with proximity to the contact point and vanish outside the radius.
	store := gridStore(t)
	brush := Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 10}

	n := Apply(store, brush, vec(0, 0, 0), &up, geometry.Vector3{})
	if n == 0 {
		t.Fatal("expected affected vertices")
	}

	center, _ := store.Position(12)  // (0,0), dist 0
	edge, _ := store.Position(11)    // (-1,0), dist 1
	corner, _ := store.Position(6)   // (-1,-1), dist sqrt(2)
	outside, _ := store.Position(10) // (-2,0), dist 2 > radius

	if center.Z <= edge.Z {
		t.Errorf("center should rise more than edge: %v vs %v", center.Z, edge.Z)
	}
	if edge.Z <= corner.Z {
		t.Errorf("edge should rise more than corner: %v vs %v", edge.Z, corner.Z)
	}
	if corner.Z <= 0 {
		t.Errorf("corner inside radius should rise: %v", corner.Z)
	}
	if outside.Z != 0 {
		t.Errorf("vertex outside radius moved: %v", outside.Z)
	}

	// All affected vertices move in the same direction: the single contact
	// normal, not each vertex's own normal
	if center.X != 0 || center.Y != 0 || edge.X != -1 || edge.Y != 0 {
		t.Error("sculpt displaced vertices off the contact normal direction")
	}
}

func TestApplySculptFalloffMonotonicity(t *testing.T) {
	store := gridStore(t)
	brush := Brush{Tool: ToolSculpt, Radius: 2.5, Strength: 10}

	Apply(store, brush, vec(0, 0, 0), &up, geometry.Vector3{})

	// Displacement magnitude ordered by distance: d=0 > d=1 > d=sqrt(2) > d=2
	d0, _ := store.Position(12)
	d1, _ := store.Position(13)
	d14, _ := store.Position(18)
	d2, _ := store.Position(14)

	if !(d0.Z > d1.Z && d1.Z > d14.Z && d14.Z > d2.Z && d2.Z > 0) {
		t.Errorf("displacement not monotone in distance: %v %v %v %v", d0.Z, d1.Z, d14.Z, d2.Z)
	}
}

func TestApplySmoothScenario(t *testing.T) {
	// One vertex lifted far above the plane; repeated smoothing toward the
	// plane pulls it monotonically toward the contact point without
	// overshooting.
	store := gridStore(t)
	store.SetPosition(12, vec(0, 0, 3))
	store.RecomputeNormals()

	contact := vec(0, 0, 0)
	brush := Brush{Tool: ToolSmooth, Radius: 4, Strength: 10}

	prev, _ := store.Position(12)
	for i := 0; i < 20; i++ {
		Apply(store, brush, contact, nil, geometry.Vector3{})
		p, _ := store.Position(12)

		if p.Distance(contact) > prev.Distance(contact) {
			t.Fatalf("iteration %d: distance grew from %v to %v",
				i, prev.Distance(contact), p.Distance(contact))
		}
		if p.Z < 0 {
			t.Fatalf("iteration %d: overshot past the contact point: %v", i, p.Z)
		}
		prev = p
	}

	if prev.Distance(contact) > 1.0 {
		t.Errorf("smoothing did not converge: still %v away", prev.Distance(contact))
	}
}

func TestApplySmoothFactorClamped(t *testing.T) {
	// An absurd strength must clamp the interpolation factor at 1: the
	// vertex lands exactly on the contact point, never beyond it.
	store := gridStore(t)
	store.SetPosition(12, vec(0, 0, 3))
	store.RecomputeNormals()

	contact := vec(0, 0, 0)
	Apply(store, Brush{Tool: ToolSmooth, Radius: 10, Strength: 1e6}, contact, nil, geometry.Vector3{})

	p, _ := store.Position(12)
	if p.Distance(contact) > 1e-10 {
		t.Errorf("expected vertex on the contact point, got %v", p)
	}
}

func TestApplyPinchPullsSharperThanSmooth(t *testing.T) {
	contact := vec(0, 0, 0)
	brush := Brush{Radius: 2.5, Strength: 10}

	smoothStore := gridStore(t)
	brush.Tool = ToolSmooth
	Apply(smoothStore, brush, contact, nil, geometry.Vector3{})

	pinchStore := gridStore(t)
	brush.Tool = ToolPinch
	Apply(pinchStore, brush, contact, nil, geometry.Vector3{})

	// Compare the pull on the vertex at (1,0,0)
	sp, _ := smoothStore.Position(13)
	pp, _ := pinchStore.Position(13)

	smoothPull := vec(1, 0, 0).Distance(sp)
	pinchPull := vec(1, 0, 0).Distance(pp)

	if pinchPull <= smoothPull {
		t.Errorf("pinch should pull harder than smooth: %v vs %v", pinchPull, smoothPull)
	}
}

func TestApplyMoveDisplacesAlongDelta(t *testing.T) {
	store := gridStore(t)
	delta := vec(0.1, 0, 0)

	n := Apply(store, Brush{Tool: ToolMove, Radius: 1.5, Strength: 10}, vec(0, 0, 0), nil, delta)
	if n == 0 {
		t.Fatal("expected affected vertices")
	}

	center, _ := store.Position(12)
	if center.X <= 0 {
		t.Errorf("center should move along +X, got %v", center)
	}
	if center.Y != 0 || center.Z != 0 {
		t.Errorf("move displaced off the delta direction: %v", center)
	}
}

func TestApplyRefreshesNormals(t *testing.T) {
	store := gridStore(t)
	before := make([]geometry.Vector3, store.VertexCount())
	copy(before, store.Normals())

	Apply(store, Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 10}, vec(0, 0, 0), &up, geometry.Vector3{})

	changed := false
	for i, n := range store.Normals() {
		if n.Distance(before[i]) > 1e-10 {
			changed = true
		}
		if math.Abs(n.Length()-1.0) > 1e-10 {
			t.Errorf("normal %d not unit length after apply: %v", i, n.Length())
		}
	}
	if !changed {
		t.Error("normals unchanged after a displacing apply")
	}
}

func TestApplyRespectsMeshTransform(t *testing.T) {
	// Mesh placed at x=+10 in the world: a world-space contact above the
	// translated center must deform the local-space center vertex.
	store := gridStore(t)
	tr, err := geometry.TRS(vec(10, 0, 0), geometry.Vector3{}, 0, 1)
	if err != nil {
		t.Fatalf("TRS failed: %v", err)
	}
	store.SetTransform(tr)

	n := Apply(store, Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 10}, vec(10, 0, 0), &up, geometry.Vector3{})
	if n == 0 {
		t.Fatal("expected affected vertices under translated transform")
	}

	center, _ := store.Position(12)
	if center.Z <= 0 {
		t.Errorf("center not displaced: %v", center)
	}

	// A world contact at the local origin's world position of an untranslated
	// mesh must now miss entirely
	store.Reset()
	if n := Apply(store, Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 10}, vec(0, 0, 0), &up, geometry.Vector3{}); n != 0 {
		t.Errorf("contact far from the translated mesh affected %d vertices", n)
	}
}

func TestApplyRotatedTransformDirections(t *testing.T) {
	// Mesh rotated 90 degrees around X: the world +Z contact normal must be
	// transformed into local axes before displacing.
	store := gridStore(t)
	tr, err := geometry.TRS(geometry.Vector3{}, vec(1, 0, 0), math.Pi/2, 1)
	if err != nil {
		t.Fatalf("TRS failed: %v", err)
	}
	store.SetTransform(tr)

	n := Apply(store, Brush{Tool: ToolSculpt, Radius: 1.5, Strength: 10}, vec(0, 0, 0), &up, geometry.Vector3{})
	if n == 0 {
		t.Fatal("expected affected vertices")
	}

	// World +Z maps to local +Y under a +90 degree rotation around X
	center, _ := store.Position(12)
	if center.Y <= 0 {
		t.Errorf("expected displacement along local +Y, got %v", center)
	}
	if math.Abs(center.Z) > 1e-10 {
		t.Errorf("unexpected local Z displacement: %v", center)
	}
}
