package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosculpt/pkg/sculpt"
)

// handleInput processes user input for one frame
func (app *App) handleInput() {
	app.handleKeys()
	app.updateContact()

	// Mouse wheel zooms
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Shift + left drag or middle drag pans, right drag orbits
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && shiftPressed) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		app.Interaction.isPanning = true
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
		return
	}
	app.Interaction.isPanning = false

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doOrbit(delta)
		}
		return
	}

	app.handleSculpting()
}

// handleSculpting maps the left mouse button onto the session's stroke
// lifecycle: press begins a stroke, motion continues it, release ends it
func (app *App) handleSculpting() {
	session := app.Model.session

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && app.Brush.hasContact {
		session.BeginStroke(app.cursorSample())
		app.Interaction.isSculpting = true
		return
	}

	if app.Interaction.isSculpting && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if app.Brush.hasContact {
			normal := app.Brush.normal
			session.ContinueStroke(app.Brush.contact, &normal, app.cursorSample())
		} else {
			// Off-mesh frame: re-anchor the stroke so re-entering the
			// surface does not apply the whole traversal as one delta
			session.BeginStroke(app.cursorSample())
		}
		return
	}

	if app.Interaction.isSculpting && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		session.EndStroke()
		app.Interaction.isSculpting = false
	}
}

// handleKeys processes tool selection, brush adjustment and view toggles
func (app *App) handleKeys() {
	session := app.Model.session

	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		session.SetTool(sculpt.ToolMove)
	case rl.IsKeyPressed(rl.KeyTwo):
		session.SetTool(sculpt.ToolSculpt)
	case rl.IsKeyPressed(rl.KeyThree):
		session.SetTool(sculpt.ToolSmooth)
	case rl.IsKeyPressed(rl.KeyFour):
		session.SetTool(sculpt.ToolPinch)
	}

	brush := session.Brush()
	radius := brush.Radius
	strength := brush.Strength

	// Radius steps relative to the model scale, strength in integer steps
	radiusStep := float64(app.Model.size) * 0.01
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		radius -= radiusStep
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		radius += radiusStep
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		strength--
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		strength++
	}

	radius = clamp(radius, app.Brush.minRadius, app.Brush.maxRadius)
	strength = clamp(strength, app.Brush.minStrength, app.Brush.maxStrength)
	if radius != brush.Radius || strength != brush.Strength {
		session.SetBrush(radius, strength)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		session.Reset()
		fmt.Println("Mesh reset to original geometry")
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
