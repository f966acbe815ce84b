package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/sculpt"
	"github.com/philipparndt/gosculpt/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// ModelData holds the loaded mesh and its sculpting session
type ModelData struct {
	store   *mesh.Store
	session *sculpt.Session
	name    string
	center  rl.Vector3 // Model center
	size    float32    // Model size (max dimension)
}

// BrushState holds the brush cursor and its parameter bounds. Radius limits
// scale with the model so the brush stays usable across model sizes.
type BrushState struct {
	minRadius   float64
	maxRadius   float64
	minStrength float64
	maxStrength float64

	contact    geometry.Vector3 // Last resolved contact point (world space)
	normal     geometry.Vector3 // Face normal at the contact point
	hasContact bool
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
}

// InteractionState holds mouse and stroke state
type InteractionState struct {
	isPanning   bool
	isSculpting bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // Set from the watcher goroutine, read by the frame loop
}

// App bundles the full application state
type App struct {
	Camera      CameraState
	Model       ModelData
	Brush       BrushState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
}
