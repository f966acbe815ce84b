package mesh

import "errors"

// ErrIndexOutOfRange reports use of a vertex index outside the mesh.
// It signals programmer misuse of the position accessors, not a state
// the interactive tools are expected to reach.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// InvalidMeshError reports structurally invalid input to Load: an empty
// vertex set or a triangle referencing a vertex that does not exist.
type InvalidMeshError struct {
	Reason string
}

func (e *InvalidMeshError) Error() string {
	return "invalid mesh: " + e.Reason
}
