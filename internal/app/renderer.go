package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosculpt/pkg/geometry"
)

// drawModel renders the mesh as filled triangles with baked diffuse lighting.
// Geometry changes every frame while sculpting, so triangles are drawn in
// immediate mode instead of uploading a GPU mesh.
func (app *App) drawModel() {
	store := app.Model.store
	positions := store.Positions()
	normals := store.Normals()

	// Light direction for baked lighting
	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	for _, tri := range store.Triangles() {
		faceNormal := normals[tri[0]].Add(normals[tri[1]]).Add(normals[tri[2]]).Normalize()

		lightIntensity := math.Max(0.3, -faceNormal.Dot(lightDir)) // Min 30% ambient, max 100% diffuse
		baseColor := 200.0
		color := rl.NewColor(
			uint8(baseColor*lightIntensity*0.5),
			uint8(baseColor*lightIntensity*0.6),
			uint8(baseColor*lightIntensity),
			255,
		)

		v1 := toRaylib(positions[tri[0]])
		v2 := toRaylib(positions[tri[1]])
		v3 := toRaylib(positions[tri[2]])

		rl.DrawTriangle3D(v1, v2, v3, color)
		// Draw the back face too so the mesh stays visible from inside
		rl.DrawTriangle3D(v1, v3, v2, color)
	}
}

// drawWireframe renders the mesh edges with deduplication
func (app *App) drawWireframe() {
	store := app.Model.store
	positions := store.Positions()

	// Use dark gray for better blending with the filled surface
	wireframeColor := rl.NewColor(100, 100, 100, 200)

	// Track drawn edges to avoid duplicates
	drawnEdges := make(map[[2]int]bool)

	for _, tri := range store.Triangles() {
		edges := [3][2]int{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
		for _, edge := range edges {
			if edge[0] > edge[1] {
				edge[0], edge[1] = edge[1], edge[0]
			}
			if drawnEdges[edge] {
				continue
			}
			drawnEdges[edge] = true
			rl.DrawLine3D(toRaylib(positions[edge[0]]), toRaylib(positions[edge[1]]), wireframeColor)
		}
	}
}

// drawBrushCursor shows the brush footprint at the current contact point
func (app *App) drawBrushCursor() {
	if !app.Brush.hasContact {
		return
	}

	radius := float32(app.Model.session.Brush().Radius)
	center := toRaylib(app.Brush.contact)

	cursorColor := rl.NewColor(255, 161, 0, 200)
	rl.DrawSphereWires(center, radius, 8, 12, cursorColor)
}
