package sculpt

import (
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// Tool selects the brush behavior
type Tool int

const (
	// ToolMove drags affected vertices along the cursor motion
	ToolMove Tool = iota
	// ToolSculpt pushes affected vertices outward along the contact normal
	ToolSculpt
	// ToolSmooth pulls affected vertices toward the contact point by
	// clamped interpolation
	ToolSmooth
	// ToolPinch pulls affected vertices toward the contact point with an
	// unclamped scaled step, giving a sharper effect than Smooth
	ToolPinch
)

// String returns the tool's display name
func (t Tool) String() string {
	switch t {
	case ToolMove:
		return "Move"
	case ToolSculpt:
		return "Sculpt"
	case ToolSmooth:
		return "Smooth"
	case ToolPinch:
		return "Pinch"
	}
	return "Unknown"
}

// Brush holds the user-tunable parameters of the active tool.
// Radius is the world/local-space sphere of influence around the contact
// point; Strength is a dimensionless multiplier on displacement per
// application.
type Brush struct {
	Tool     Tool
	Radius   float64
	Strength float64
}

// Per-call damping constants. Pointer-move events arrive many times per
// second during a drag, so a single application must be a small bounded
// increment; repeated applications integrate into a continuous motion.
const (
	moveDamping   = 0.5
	sculptDamping = 0.02
	smoothDamping = 0.02
	pinchScale    = 0.04
)

// DefaultRadius derives an initial brush radius from the mesh's vertex
// spacing: wide enough to cover a handful of vertices, clamped into the
// same bounds the UI offers (0.05 to 0.5 of the model size). A degenerate
// spacing falls back to a fixed fraction of the model size.
func DefaultRadius(vertexSpacing, modelSize float64) float64 {
	if modelSize <= 0 {
		modelSize = 1
	}
	radius := vertexSpacing * 4
	if vertexSpacing <= 0 {
		radius = 0.15 * modelSize
	}
	if min := 0.05 * modelSize; radius < min {
		radius = min
	}
	if max := 0.5 * modelSize; radius > max {
		radius = max
	}
	return radius
}

// Falloff returns the linear attenuation for a vertex at distance dist from
// the contact point: 1 at the contact point, 0 at the radius boundary and
// beyond, clamped into [0,1].
func Falloff(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	f := 1 - dist/radius
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Apply runs one brush application against the store. contactWorld is the
// resolved 3D contact point in world space; normalWorld is the surface
// normal at that point (nil when the caller has none, in which case Sculpt
// is a no-op); cursorDelta is the pointer motion since the previous sample
// of the stroke, used only by Move.
//
// The engine holds no state of its own. It transforms the contact into the
// mesh's local space, displaces every vertex within the brush radius, and
// recomputes the store's normals if anything moved. Returns the number of
// vertices affected. Degenerate parameters (non-positive radius or
// strength, missing Sculpt normal, zero Move delta) make the call a no-op,
// never an error: transient invalid states are expected during interaction.
func Apply(store *mesh.Store, brush Brush, contactWorld geometry.Vector3, normalWorld *geometry.Vector3, cursorDelta geometry.Vector3) int {
	if brush.Radius <= 0 || brush.Strength <= 0 {
		return 0
	}

	transform := store.Transform()
	contact := transform.ToLocalPoint(contactWorld)

	var direction geometry.Vector3
	switch brush.Tool {
	case ToolMove:
		if cursorDelta == (geometry.Vector3{}) {
			return 0 // First sample of a stroke has no motion yet
		}
		direction = transform.ToLocalDirection(cursorDelta)
	case ToolSculpt:
		if normalWorld == nil {
			return 0 // No outward direction defined without a normal
		}
		direction = transform.ToLocalDirection(*normalWorld).Normalize()
		if direction == (geometry.Vector3{}) {
			return 0
		}
	}

	affected := 0
	for i, p := range store.Positions() {
		dist := p.Distance(contact)
		if dist >= brush.Radius {
			continue
		}
		falloff := Falloff(dist, brush.Radius)
		scale := brush.Strength * falloff

		var next geometry.Vector3
		switch brush.Tool {
		case ToolMove:
			next = p.Add(direction.Mul(scale * moveDamping))
		case ToolSculpt:
			next = p.Add(direction.Mul(scale * sculptDamping))
		case ToolSmooth:
			factor := scale * smoothDamping
			if factor > 1 {
				factor = 1
			}
			next = p.Lerp(contact, factor)
		case ToolPinch:
			next = p.Add(contact.Sub(p).Mul(scale * pinchScale))
		default:
			continue
		}

		store.SetPosition(i, next)
		affected++
	}

	if affected > 0 {
		store.RecomputeNormals()
	}
	return affected
}
