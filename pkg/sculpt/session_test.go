package sculpt

import (
	"math"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	session := NewSession(gridStore(t))

	if session.State() != Idle {
		t.Fatalf("new session should be Idle, got %v", session.State())
	}

	session.BeginStroke(vec(0, 0, 0))
	if session.State() != Stroking {
		t.Errorf("expected Stroking after BeginStroke, got %v", session.State())
	}

	session.EndStroke()
	if session.State() != Idle {
		t.Errorf("expected Idle after EndStroke, got %v", session.State())
	}
}

func TestSessionBeginStrokeMovesNothing(t *testing.T) {
	session := NewSession(gridStore(t))
	before := snapshot(session.Store())

	session.BeginStroke(vec(0.5, 0.5, 0))

	for i, p := range session.Store().Positions() {
		if p != before[i] {
			t.Fatalf("vertex %d moved by BeginStroke: %v", i, p)
		}
	}
}

func TestSessionContinueWhileIdleIsNoop(t *testing.T) {
	session := NewSession(gridStore(t))
	before := snapshot(session.Store())

	if n := session.ContinueStroke(vec(0, 0, 0), &up, vec(0, 0, 0)); n != 0 {
		t.Errorf("expected 0 affected vertices while Idle, got %d", n)
	}
	for i, p := range session.Store().Positions() {
		if p != before[i] {
			t.Fatalf("vertex %d moved while Idle: %v", i, p)
		}
	}
}

func TestSessionMoveScenario(t *testing.T) {
	// Two consecutive samples: only the second one carries a cursor delta
	// and produces displacement, directed along that delta.
	session := NewSession(gridStore(t))
	session.SetTool(ToolMove)
	session.SetBrush(1.5, 10)

	session.BeginStroke(vec(0, 0, 0))

	if n := session.ContinueStroke(vec(0, 0, 0), nil, vec(0, 0, 0)); n != 0 {
		t.Errorf("first sample should be a no-op, affected %d vertices", n)
	}

	n := session.ContinueStroke(vec(0, 0, 0), nil, vec(0.1, 0, 0))
	if n == 0 {
		t.Fatal("second sample should displace vertices")
	}

	center, _ := session.Store().Position(12)
	if center.X <= 0 || center.Y != 0 || center.Z != 0 {
		t.Errorf("displacement not along the cursor delta: %v", center)
	}
}

func TestSessionMoveDeltaIsPerSample(t *testing.T) {
	// The delta is between consecutive samples, not against the stroke start
	session := NewSession(gridStore(t))
	session.SetTool(ToolMove)
	session.SetBrush(1.5, 10)

	session.BeginStroke(vec(0, 0, 0))
	session.ContinueStroke(vec(0, 0, 0), nil, vec(0.1, 0, 0))
	afterFirst, _ := session.Store().Position(12)

	// A repeated cursor position means zero delta, so no further motion
	if n := session.ContinueStroke(vec(0, 0, 0), nil, vec(0.1, 0, 0)); n != 0 {
		t.Errorf("repeated cursor should be a no-op, affected %d vertices", n)
	}
	p, _ := session.Store().Position(12)
	if p != afterFirst {
		t.Errorf("vertex moved on zero delta: %v vs %v", p, afterFirst)
	}
}

func TestSessionMoveReanchorAfterLostContact(t *testing.T) {
	// A caller that loses the surface mid-stroke re-begins the stroke at
	// the current cursor, so re-entering the mesh produces an ordinary
	// per-sample step instead of the whole traversal as one delta
	session := NewSession(gridStore(t))
	session.SetTool(ToolMove)
	session.SetBrush(1.5, 10)

	session.BeginStroke(vec(0, 0, 0))
	session.ContinueStroke(vec(0, 0, 0), nil, vec(0.1, 0, 0))
	first, _ := session.Store().Position(12)
	if first.X == 0 {
		t.Fatal("expected the first sample to displace the center vertex")
	}

	// Cursor traveled far off the mesh before the next contact
	session.BeginStroke(vec(5, 0, 0))
	session.ContinueStroke(vec(0, 0, 0), nil, vec(5.1, 0, 0))

	p, _ := session.Store().Position(12)
	step := p.X - first.X
	if math.Abs(step-first.X) > 1e-10 {
		t.Errorf("re-anchored sample stepped %v, want the per-sample step %v", step, first.X)
	}
	if session.State() != Stroking {
		t.Errorf("re-anchoring must keep the stroke active, got %v", session.State())
	}
}

func TestSessionSetToolTakesEffectNextSample(t *testing.T) {
	session := NewSession(gridStore(t))
	session.SetBrush(1.5, 10)
	session.BeginStroke(vec(0, 0, 0))

	session.SetTool(ToolSmooth)
	if session.Brush().Tool != ToolSmooth {
		t.Fatalf("expected ToolSmooth, got %v", session.Brush().Tool)
	}

	// Lift a vertex, then smooth toward the contact: the smooth tool must
	// act on the very next sample
	session.Store().SetPosition(12, vec(0, 0, 1))
	session.Store().RecomputeNormals()

	session.ContinueStroke(vec(0, 0, 0), nil, vec(0, 0, 0))
	p, _ := session.Store().Position(12)
	if p.Z >= 1 {
		t.Errorf("smooth did not act after SetTool: z=%v", p.Z)
	}
}

func TestSessionResetPreservesState(t *testing.T) {
	session := NewSession(gridStore(t))
	session.SetTool(ToolSculpt)
	session.SetBrush(1.5, 10)

	session.BeginStroke(vec(0, 0, 0))
	session.ContinueStroke(vec(0, 0, 0), &up, vec(0, 0, 0))

	center, _ := session.Store().Position(12)
	if center.Z == 0 {
		t.Fatal("expected sculpted center before reset")
	}

	session.Reset()
	if session.State() != Stroking {
		t.Errorf("Reset must not end the stroke, got state %v", session.State())
	}

	center, _ = session.Store().Position(12)
	if center.Z != 0 {
		t.Errorf("reset did not restore geometry: %v", center)
	}

	// The in-progress stroke continues against the restored geometry
	if n := session.ContinueStroke(vec(0, 0, 0), &up, vec(0, 0, 0)); n == 0 {
		t.Error("stroke could not continue after reset")
	}
}

func TestSessionResetWhileIdle(t *testing.T) {
	session := NewSession(gridStore(t))

	session.BeginStroke(vec(0, 0, 0))
	session.ContinueStroke(vec(0, 0, 0), &up, vec(0, 0, 0))
	session.EndStroke()

	session.Reset()
	if session.State() != Idle {
		t.Errorf("Reset changed state while Idle: %v", session.State())
	}
	center, _ := session.Store().Position(12)
	if center.Z != 0 {
		t.Errorf("reset did not restore geometry: %v", center)
	}
}

func TestSessionSetBrush(t *testing.T) {
	session := NewSession(gridStore(t))
	session.SetBrush(0.25, 15)

	b := session.Brush()
	if b.Radius != 0.25 || b.Strength != 15 {
		t.Errorf("SetBrush failed: got %+v", b)
	}
}
