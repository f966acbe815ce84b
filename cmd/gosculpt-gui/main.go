package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gosculpt/pkg/analysis"
	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/sculpt"
	"github.com/philipparndt/gosculpt/pkg/stl"
	"github.com/philipparndt/gosculpt/pkg/viewer"
)

type App struct {
	window         fyne.Window
	store          *mesh.Store
	session        *sculpt.Session
	renderer       *viewer.SculptRenderer
	modelName      string
	modelInfoLabel *widget.Label
	radiusSlider   *widget.Slider
	strengthSlider *widget.Slider
}

func main() {
	a := app.New()
	w := a.NewWindow("GoSculpt - 3D Mesh Sculptor")

	appInstance := &App{
		window: w,
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to GoSculpt")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open STL File' to load a 3D model for sculpting")

	openButton := widget.NewButton("Open STL File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), a.window)
		return
	}

	indexed := model.Index()

	store := mesh.NewStore()
	if err := store.Load(indexed.Positions, indexed.Triangles); err != nil {
		dialog.ShowError(fmt.Errorf("failed to load mesh: %w", err), a.window)
		return
	}

	a.store = store
	a.session = sculpt.NewSession(store)
	a.modelName = model.Name
	if a.modelName == "" {
		a.modelName = filename
	}

	// Scale the default brush to the model's vertex spacing
	size := store.BoundingBox().MaxDimension()
	spacing := analysis.AverageEdgeLength(model, 1000)
	a.session.SetBrush(sculpt.DefaultRadius(spacing, size), 10)

	if a.renderer == nil {
		a.setupMainUI()
	} else {
		a.renderer.ReplaceMesh(store, a.session)
		a.configureSliders()
		a.updateModelInfo()
	}
}

func (a *App) setupMainUI() {
	a.modelInfoLabel = widget.NewLabel("")

	// Create 3D renderer
	a.renderer = viewer.NewSculptRenderer(a.store, a.session)
	a.renderer.SetOnChange(func() {
		a.updateModelInfo()
	})

	// Tool selection, Navigate switches the drag gesture to camera orbit
	toolSelect := widget.NewRadioGroup(
		[]string{"Navigate", "Move", "Sculpt", "Smooth", "Pinch"},
		func(selected string) {
			if selected == "Navigate" {
				a.renderer.SetNavigate(true)
				return
			}
			a.renderer.SetNavigate(false)
			switch selected {
			case "Move":
				a.session.SetTool(sculpt.ToolMove)
			case "Sculpt":
				a.session.SetTool(sculpt.ToolSculpt)
			case "Smooth":
				a.session.SetTool(sculpt.ToolSmooth)
			case "Pinch":
				a.session.SetTool(sculpt.ToolPinch)
			}
		},
	)
	toolSelect.SetSelected("Sculpt")

	a.radiusSlider = widget.NewSlider(0, 1)
	a.radiusSlider.OnChanged = func(value float64) {
		brush := a.session.Brush()
		a.session.SetBrush(value, brush.Strength)
	}

	a.strengthSlider = widget.NewSlider(1, 20)
	a.strengthSlider.Step = 1
	a.strengthSlider.OnChanged = func(value float64) {
		brush := a.session.Brush()
		a.session.SetBrush(brush.Radius, value)
	}

	a.configureSliders()

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	resetButton := widget.NewButton("Reset Mesh", func() {
		a.renderer.ResetMesh()
		a.updateModelInfo()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag on the mesh to sculpt\n" +
			"• Navigate mode: drag to rotate\n" +
			"• Scroll to zoom in/out\n" +
			"• Reset restores the loaded shape",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		a.modelInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Tool:"),
		toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Brush Radius:"),
		a.radiusSlider,
		widget.NewLabel("Brush Strength:"),
		a.strengthSlider,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)
	a.updateModelInfo()

	// Initial render
	a.renderer.Render(800, 600)
}

// configureSliders rescales the brush sliders to the current model size
func (a *App) configureSliders() {
	size := a.store.BoundingBox().MaxDimension()
	brush := a.session.Brush()

	a.radiusSlider.Min = size * 0.05
	a.radiusSlider.Max = size * 0.5
	a.radiusSlider.SetValue(brush.Radius)
	a.strengthSlider.SetValue(brush.Strength)
}

func (a *App) updateModelInfo() {
	bbox := a.store.BoundingBox()
	dims := bbox.Size()

	a.modelInfoLabel.SetText(fmt.Sprintf(
		"Model: %s\nVertices: %d\nTriangles: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.modelName,
		a.store.VertexCount(),
		a.store.TriangleCount(),
		dims.X,
		dims.Y,
		dims.Z,
	))
}
