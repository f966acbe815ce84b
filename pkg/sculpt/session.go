package sculpt

import (
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// State identifies where a session is in its stroke lifecycle
type State int

const (
	// Idle means no stroke is in progress
	Idle State = iota
	// Stroking means a pointer-down has begun a stroke that has not ended
	Stroking
)

// Session drives sculpting of one mesh store. It owns the stroke state
// machine and the currently selected brush; the caller translates its own
// pointer events into BeginStroke/ContinueStroke/EndStroke calls and
// re-renders from the store afterwards. Single-threaded: each call runs to
// completion before the next event is processed.
type Session struct {
	store      *mesh.Store
	brush      Brush
	state      State
	lastCursor geometry.Vector3
}

// NewSession creates a session over the given store with a default brush
func NewSession(store *mesh.Store) *Session {
	return &Session{
		store: store,
		brush: Brush{Tool: ToolSculpt, Radius: 1, Strength: 5},
	}
}

// Store returns the mesh store the session sculpts
func (s *Session) Store() *mesh.Store {
	return s.store
}

// State returns Idle or Stroking
func (s *Session) State() State {
	return s.state
}

// Brush returns the current brush parameters
func (s *Session) Brush() Brush {
	return s.brush
}

// SetTool selects the active tool. Legal in any state; takes effect on the
// next ContinueStroke call.
func (s *Session) SetTool(tool Tool) {
	s.brush.Tool = tool
}

// SetBrush updates radius and strength. Legal in any state; takes effect on
// the next ContinueStroke call.
func (s *Session) SetBrush(radius, strength float64) {
	s.brush.Radius = radius
	s.brush.Strength = strength
}

// BeginStroke starts a stroke at the given cursor sample. It records the
// cursor for delta computation and moves no vertex itself.
func (s *Session) BeginStroke(cursor geometry.Vector3) {
	s.state = Stroking
	s.lastCursor = cursor
}

// ContinueStroke applies the brush at a freshly resolved contact point
// while a stroke is active. normalWorld may be nil when the caller could
// not resolve a surface normal. cursor is the current cursor sample; the
// delta against the previous sample feeds the Move tool. Returns the number
// of vertices displaced; zero when no stroke is active.
func (s *Session) ContinueStroke(contactWorld geometry.Vector3, normalWorld *geometry.Vector3, cursor geometry.Vector3) int {
	if s.state != Stroking {
		return 0
	}

	delta := cursor.Sub(s.lastCursor)
	affected := Apply(s.store, s.brush, contactWorld, normalWorld, delta)
	s.lastCursor = cursor
	return affected
}

// EndStroke finishes the stroke. No mesh mutation.
func (s *Session) EndStroke() {
	s.state = Idle
	s.lastCursor = geometry.Vector3{}
}

// Reset restores the mesh to its pristine load-time geometry. Legal in any
// state and does not end an in-progress stroke; sculpting may continue on
// the restored geometry.
func (s *Session) Reset() {
	s.store.Reset()
}
