package app

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/sculpt"
)

// Run starts the interactive sculpting application
func Run() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: gosculpt-raylib <file.stl>")
		os.Exit(1)
	}

	sourceFile := os.Args[1]
	store, name, spacing, err := loadStore(sourceFile)
	if err != nil {
		fmt.Printf("Error loading file: %v\n", err)
		os.Exit(1)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(1400, 900, "GoSculpt")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
		},
		FileWatch: FileWatchState{sourceFile: sourceFile},
	}
	app.attachModel(store, name, spacing)

	fmt.Printf("Loaded %s: %d vertices, %d triangles\n",
		name, store.VertexCount(), store.TriangleCount())

	if err := app.setupFileWatcher(); err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		fmt.Println("Auto-reload will not be available")
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	for !rl.WindowShouldClose() {
		app.handleReload()
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(30, 30, 36, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			app.drawModel()
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		app.drawBrushCursor()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}
}

// attachModel wires a freshly loaded store into the app: session, brush
// bounds derived from the model size, and camera framing. spacing is the
// model's average edge length, used to size the default brush.
func (app *App) attachModel(store *mesh.Store, name string, spacing float64) {
	bbox := store.BoundingBox()
	center := bbox.Center()
	size := bbox.MaxDimension()
	if size == 0 {
		size = 1
	}

	session := sculpt.NewSession(store)

	app.Model = ModelData{
		store:   store,
		session: session,
		name:    name,
		center:  rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)},
		size:    float32(size),
	}

	// Brush radius is bounded to a sane fraction of the model scale,
	// strength to the interactive range
	app.Brush = BrushState{
		minRadius:   0.05 * size,
		maxRadius:   0.5 * size,
		minStrength: 1,
		maxStrength: 20,
	}
	session.SetBrush(sculpt.DefaultRadius(spacing, size), 10)

	app.Camera = CameraState{
		distance:      float32(size) * 2.0,
		angleX:        0.5,
		angleY:        0.8,
		target:        app.Model.center,
		defaultDist:   float32(size) * 2.0,
		defaultAngleX: 0.5,
		defaultAngleY: 0.8,
	}
	app.Camera.camera = rl.Camera3D{
		Target:     app.Camera.target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}
