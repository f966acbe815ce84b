package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosculpt/version"
)

// drawUI draws the heads-up display
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(22)
	x := int32(10)

	store := app.Model.store
	brush := app.Model.session.Brush()

	title := fmt.Sprintf("GoSculpt %s - %s", version.Version, app.Model.name)
	rl.DrawText(title, x, y, 18, rl.RayWhite)
	y += lineHeight + 6

	stats := fmt.Sprintf("%d vertices, %d triangles", store.VertexCount(), store.TriangleCount())
	rl.DrawText(stats, x, y, 16, rl.LightGray)
	y += lineHeight

	toolLine := fmt.Sprintf("Tool: %s   Radius: %.2f   Strength: %.0f", brush.Tool, brush.Radius, brush.Strength)
	rl.DrawText(toolLine, x, y, 16, rl.Orange)
	y += lineHeight

	if app.FileWatch.sourceFile != "" {
		rl.DrawText("Watching file for changes", x, y, 12, rl.Gray)
	}

	// Key help along the bottom edge
	help := "1-4: tool  [ ]: radius  - =: strength  LMB: sculpt  RMB: orbit  Shift+LMB: pan  Wheel: zoom  R: reset  W/F: wireframe/fill  Home: view"
	rl.DrawText(help, x, int32(rl.GetScreenHeight())-24, 12, rl.Gray)
}
