package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/stl"
)

// MeasurementResult contains various measurements of a model
type MeasurementResult struct {
	BoundingBox       geometry.BoundingBox
	Dimensions        geometry.Vector3
	SurfaceArea       float64
	TriangleCount     int
	EdgeCount         int
	WeldedVertexCount int
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
}

// AnalyzeModel performs comprehensive analysis on an STL model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:       model.BoundingBox(),
		SurfaceArea:       model.SurfaceArea(),
		TriangleCount:     model.TriangleCount(),
		WeldedVertexCount: model.Index().VertexCount(),
	}

	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			result.EdgeCount++
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// AverageEdgeLength estimates the vertex spacing of a model by sampling
// triangle edges. Used to pick sensible default brush radii.
func AverageEdgeLength(model *stl.Model, maxSamples int) float64 {
	if len(model.Triangles) == 0 {
		return 1.0
	}

	samples := len(model.Triangles)
	if maxSamples > 0 && samples > maxSamples {
		samples = maxSamples
	}

	totalLength := 0.0
	edgeCount := 0
	for i := 0; i < samples; i++ {
		for _, length := range model.Triangles[i].EdgeLengths() {
			totalLength += length
			edgeCount++
		}
	}

	if edgeCount == 0 {
		return 1.0
	}
	return totalLength / float64(edgeCount)
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
