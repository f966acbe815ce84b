package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/gosculpt/pkg/analysis"
	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/stl"
	"github.com/philipparndt/gosculpt/pkg/watcher"
)

// loadStore parses an STL file, welds its triangle soup into an indexed
// mesh, and loads it into a fresh store. The returned spacing is the
// model's average edge length, used for default brush sizing.
func loadStore(filePath string) (*mesh.Store, string, float64, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".stl" {
		return nil, "", 0, fmt.Errorf("unsupported file type: %s (expected .stl)", ext)
	}

	model, err := stl.Parse(filePath)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to parse STL file: %w", err)
	}

	indexed := model.Index()
	store := mesh.NewStore()
	if err := store.Load(indexed.Positions, indexed.Triangles); err != nil {
		return nil, "", 0, fmt.Errorf("failed to load mesh: %w", err)
	}

	name := model.Name
	if name == "" {
		name = filepath.Base(filePath)
	}
	spacing := analysis.AverageEdgeLength(model, 1000)
	return store, name, spacing, nil
}

// setupFileWatcher watches the source file and flags a reload on change
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	err = fw.Watch(app.FileWatch.sourceFile, func(path string) {
		fmt.Printf("File changed: %s\n", path)
		app.FileWatch.needsReload.Store(true)
	})
	if err != nil {
		fw.Close()
		return err
	}

	app.FileWatch.fileWatcher = fw
	fmt.Printf("Watching %s for changes\n", app.FileWatch.sourceFile)
	return nil
}

// handleReload swaps in a freshly loaded mesh when the watcher flagged one.
// Runs on the frame loop, so the session is never mutated concurrently.
func (app *App) handleReload() {
	if !app.FileWatch.needsReload.CompareAndSwap(true, false) {
		return
	}

	store, name, spacing, err := loadStore(app.FileWatch.sourceFile)
	if err != nil {
		fmt.Printf("Reload failed: %v\n", err)
		return
	}

	brush := app.Model.session.Brush()
	app.attachModel(store, name, spacing)
	// Keep the user's tool selection across reloads; radius/strength are
	// re-bounded against the new model size by attachModel
	app.Model.session.SetTool(brush.Tool)
	fmt.Printf("Reloaded %s: %d vertices, %d triangles\n",
		name, store.VertexCount(), store.TriangleCount())
}
