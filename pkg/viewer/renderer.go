package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/sculpt"
)

// SculptRenderer renders a mesh as a wireframe and translates pointer drags
// into sculpting strokes on its session. A circle cursor shows the brush's
// area of effect at the hovered surface point.
type SculptRenderer struct {
	widget.BaseWidget
	store   *mesh.Store
	session *sculpt.Session
	camera  *Camera

	lines       []*canvas.Line
	brushRing   *canvas.Circle
	ringVisible bool

	navigate  bool // drag orbits instead of sculpting
	stroking  bool
	dragStart *fyne.Position

	width  float64
	height float64

	onChange func() // called after any mesh edit or reload
}

// NewSculptRenderer creates a renderer over a loaded store and its session
func NewSculptRenderer(store *mesh.Store, session *sculpt.Session) *SculptRenderer {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	ring.StrokeWidth = 2

	r := &SculptRenderer{
		store:     store,
		session:   session,
		camera:    NewCamera(store.BoundingBox()),
		lines:     make([]*canvas.Line, 0),
		brushRing: ring,
	}
	r.ExtendBaseWidget(r)
	return r
}

// Session returns the deformation session driven by this widget
func (r *SculptRenderer) Session() *sculpt.Session {
	return r.session
}

// SetNavigate switches dragging between orbiting and sculpting
func (r *SculptRenderer) SetNavigate(navigate bool) {
	r.navigate = navigate
}

// SetOnChange registers a callback fired after the mesh is modified
func (r *SculptRenderer) SetOnChange(callback func()) {
	r.onChange = callback
}

// ResetMesh restores the pristine geometry and refreshes the view
func (r *SculptRenderer) ResetMesh() {
	r.session.Reset()
	r.Render(r.width, r.height)
	r.notifyChange()
}

// ReplaceMesh swaps in a freshly loaded store (auto-reload, new file)
func (r *SculptRenderer) ReplaceMesh(store *mesh.Store, session *sculpt.Session) {
	r.store = store
	r.session = session
	r.camera = NewCamera(store.BoundingBox())
	r.Render(r.width, r.height)
	r.notifyChange()
}

func (r *SculptRenderer) notifyChange() {
	if r.onChange != nil {
		r.onChange()
	}
}

// CreateRenderer creates the fyne renderer for the widget
func (r *SculptRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &sculptWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the wireframe view
func (r *SculptRenderer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height

	r.lines = r.lines[:0]

	transform := r.store.Transform()
	positions := r.store.Positions()

	// Shared edges appear in two triangles; draw each only once
	drawn := make(map[[2]int]bool)

	for _, tri := range r.store.Triangles() {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			if drawn[[2]int{a, b}] {
				continue
			}
			drawn[[2]int{a, b}] = true

			x1, y1, z1 := r.camera.Project(transform.ToWorldPoint(positions[a]), width, height)
			x2, y2, z2 := r.camera.Project(transform.ToWorldPoint(positions[b]), width, height)

			// Simple depth-based shading
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			r.lines = append(r.lines, line)
		}
	}

	r.Refresh()
}

// updateBrushRing places the brush cursor at a world-space contact point,
// scaled to the brush radius as seen by the camera
func (r *SculptRenderer) updateBrushRing(contact geometry.Vector3) {
	cx, cy, _ := r.camera.Project(contact, r.width, r.height)

	// Project a point one brush radius to the camera's right to measure the
	// on-screen size of the sphere of influence
	forward := r.camera.Target.Sub(r.camera.Position).Normalize()
	right := forward.Cross(r.camera.Up).Normalize()
	edge := contact.Add(right.Mul(r.session.Brush().Radius))
	ex, ey, _ := r.camera.Project(edge, r.width, r.height)

	radius := math.Hypot(ex-cx, ey-cy)
	size := float32(radius * 2)
	r.brushRing.Resize(fyne.NewSize(size, size))
	r.brushRing.Move(fyne.NewPos(float32(cx)-size/2, float32(cy)-size/2))
	r.ringVisible = true
}

// cursorSample returns the stroke cursor for a screen position: the point on
// the pick ray at the camera's orbit distance. Deltas between samples are
// world-space motion for the Move tool.
func (r *SculptRenderer) cursorSample(pos fyne.Position) geometry.Vector3 {
	ray := r.camera.Unproject(float64(pos.X), float64(pos.Y), r.width, r.height)
	return ray.At(r.camera.Distance)
}

// Dragged orbits the camera in navigate mode and sculpts otherwise
func (r *SculptRenderer) Dragged(event *fyne.DragEvent) {
	if r.navigate {
		if r.dragStart != nil {
			deltaX := event.Position.X - r.dragStart.X
			deltaY := event.Position.Y - r.dragStart.Y
			r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
			r.Render(r.width, r.height)
		}
		r.dragStart = &event.Position
		return
	}

	cursor := r.cursorSample(event.Position)
	if !r.stroking {
		r.session.BeginStroke(cursor)
		r.stroking = true
	}

	ray := r.camera.Unproject(float64(event.Position.X), float64(event.Position.Y), r.width, r.height)
	hit, ok := Pick(r.store, ray)
	if !ok {
		// Off-mesh drag: keep the stroke alive but advance the cursor so
		// the next on-mesh sample gets a sane delta
		r.session.BeginStroke(cursor)
		return
	}

	normal := hit.Normal
	if r.session.ContinueStroke(hit.Point, &normal, cursor) > 0 {
		r.notifyChange()
	}
	r.updateBrushRing(hit.Point)
	r.Render(r.width, r.height)
}

// DragEnd finishes the current stroke or orbit
func (r *SculptRenderer) DragEnd() {
	if r.stroking {
		r.session.EndStroke()
		r.stroking = false
	}
	r.dragStart = nil
}

// Scrolled zooms the camera
func (r *SculptRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// MouseIn implements desktop.Hoverable
func (r *SculptRenderer) MouseIn(event *desktop.MouseEvent) {
	r.MouseMoved(event)
}

// MouseMoved previews the brush ring at the hovered surface point
func (r *SculptRenderer) MouseMoved(event *desktop.MouseEvent) {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	ray := r.camera.Unproject(float64(event.Position.X), float64(event.Position.Y), r.width, r.height)
	if hit, ok := Pick(r.store, ray); ok {
		r.updateBrushRing(hit.Point)
	} else {
		r.ringVisible = false
	}
	r.Refresh()
}

// MouseOut hides the brush ring
func (r *SculptRenderer) MouseOut() {
	r.ringVisible = false
	r.Refresh()
}

// sculptWidgetRenderer implements fyne.WidgetRenderer
type sculptWidgetRenderer struct {
	renderer *SculptRenderer
	objects  []fyne.CanvasObject
}

func (s *sculptWidgetRenderer) Layout(size fyne.Size) {
	s.renderer.Render(float64(size.Width), float64(size.Height))
}

func (s *sculptWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (s *sculptWidgetRenderer) Refresh() {
	s.objects = s.objects[:0]

	for _, line := range s.renderer.lines {
		s.objects = append(s.objects, line)
	}
	if s.renderer.ringVisible {
		s.objects = append(s.objects, s.renderer.brushRing)
	}

	canvas.Refresh(s.renderer)
}

func (s *sculptWidgetRenderer) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *sculptWidgetRenderer) Destroy() {}
