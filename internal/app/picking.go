package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosculpt/pkg/geometry"
)

// updateContact resolves the surface point under the mouse cursor by casting
// the mouse ray against the current (deformed) triangles. The result feeds
// both the brush cursor and the next stroke sample.
func (app *App) updateContact() {
	mousePos := rl.GetMousePosition()
	ray := rl.GetMouseRay(mousePos, app.Camera.camera)

	transform := app.Model.store.Transform()
	positions := app.Model.store.Positions()

	bestDist := float32(math.MaxFloat32)
	found := false
	var bestPoint, bestNormal rl.Vector3

	for _, tri := range app.Model.store.Triangles() {
		v1 := toRaylib(transform.ToWorldPoint(positions[tri[0]]))
		v2 := toRaylib(transform.ToWorldPoint(positions[tri[1]]))
		v3 := toRaylib(transform.ToWorldPoint(positions[tri[2]]))

		collision := rl.GetRayCollisionTriangle(ray, v1, v2, v3)
		if collision.Hit && collision.Distance < bestDist {
			bestDist = collision.Distance
			bestPoint = collision.Point
			bestNormal = collision.Normal
			found = true
		}
	}

	app.Brush.hasContact = found
	if found {
		app.Brush.contact = fromRaylib(bestPoint)

		// Face the normal toward the camera so sculpting pushes out of the
		// visible side of the surface
		normal := fromRaylib(bestNormal)
		view := fromRaylib(ray.Direction)
		if normal.Dot(view) > 0 {
			normal = normal.Mul(-1)
		}
		app.Brush.normal = normal
	}
}

// cursorSample returns the stroke cursor for the current mouse position: the
// point on the mouse ray at the camera's orbit distance. Deltas between
// samples give the Move tool a world-space drag direction.
func (app *App) cursorSample() geometry.Vector3 {
	mousePos := rl.GetMousePosition()
	ray := rl.GetMouseRay(mousePos, app.Camera.camera)

	origin := fromRaylib(ray.Position)
	direction := fromRaylib(ray.Direction)
	return origin.Add(direction.Mul(float64(app.Camera.distance)))
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRaylib(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}
