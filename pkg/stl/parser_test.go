package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

const asciiCube = `solid cube
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 1 1 0
    vertex 1 0 0
  endloop
endfacet
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 0 1 0
    vertex 1 1 0
  endloop
endfacet
endsolid cube
`

func TestParseReaderASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "cube" {
		t.Errorf("model name failed: expected %q, got %q", "cube", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("triangle count failed: expected 2, got %d", model.TriangleCount())
	}

	first := model.Triangles[0]
	if first.V2.X != 1 || first.V2.Y != 1 || first.V2.Z != 0 {
		t.Errorf("vertex parse failed: got %v", first.V2)
	}
	if first.Normal.Z != -1 {
		t.Errorf("normal parse failed: got %v", first.Normal)
	}
}

func TestParseReaderBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, "binary test")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	write := func(x, y, z float32) {
		binary.Write(&buf, binary.LittleEndian, [3]float32{x, y, z})
	}
	write(0, 0, 1) // normal
	write(0, 0, 0) // v1
	write(1, 0, 0) // v2
	write(0, 1, 0) // v3
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	model, err := ParseReader(&buf)
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "binary test" {
		t.Errorf("model name failed: expected %q, got %q", "binary test", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("triangle count failed: expected 1, got %d", model.TriangleCount())
	}

	tri := model.Triangles[0]
	if tri.V2.X != 1 || tri.V3.Y != 1 {
		t.Errorf("vertex parse failed: v2=%v v3=%v", tri.V2, tri.V3)
	}
}

func TestParseReaderTruncatedBinary(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(3)) // claims 3 triangles, has none

	if _, err := ParseReader(&buf); err == nil {
		t.Error("expected error for truncated binary STL, got nil")
	}
}

func TestModelSurfaceArea(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	// Two triangles covering the unit square
	area := model.SurfaceArea()
	if math.Abs(area-1.0) > 1e-10 {
		t.Errorf("surface area failed: expected 1.0, got %v", area)
	}
}
