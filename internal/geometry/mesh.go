package geometry

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindTriangle Kind = iota
	KindQuad
	KindCube
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindQuad:
		return "quad"
	case KindCube:
		return "cube"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mesh is an immutable snapshot of vertex and index data for one primitive.
type Mesh struct {
	Kind     Kind
	Layout   Layout
	Vertices []float32
	Indices  []uint32
}

func (m Mesh) VertexCount() int {
	n := m.Layout.FloatsPerVertex()
	if n == 0 {
		return 0
	}
	return len(m.Vertices) / n
}

func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// DrawCount is the number of vertices or indices a draw call consumes.
func (m Mesh) DrawCount() int32 {
	if m.Indexed() {
		return int32(len(m.Indices))
	}
	return int32(m.VertexCount())
}

// Attribute returns the values of the named attribute for vertex v.
func (m Mesh) Attribute(v int, name string) []float32 {
	i := m.Layout.Index(name)
	if i < 0 {
		return nil
	}
	start := v*m.Layout.FloatsPerVertex() + m.Layout.Offset(i)/floatSize
	return m.Vertices[start : start+int(m.Layout.Attributes[i].Size)]
}

var (
	ErrEmptyLayout    = errors.New("mesh layout has no attributes")
	ErrRaggedVertices = errors.New("vertex data is not a whole number of vertices")
	ErrIndexRange     = errors.New("index out of range")
	ErrTopology       = errors.New("vertex and index counts do not match the mesh kind")
)

func (m Mesh) Validate() error {
	n := m.Layout.FloatsPerVertex()
	if n == 0 {
		return ErrEmptyLayout
	}
	if len(m.Vertices)%n != 0 {
		return fmt.Errorf("%s: %d floats with %d per vertex: %w", m.Kind, len(m.Vertices), n, ErrRaggedVertices)
	}
	count := m.VertexCount()
	for _, idx := range m.Indices {
		if int(idx) >= count {
			return fmt.Errorf("%s: index %d with %d vertices: %w", m.Kind, idx, count, ErrIndexRange)
		}
	}

	switch m.Kind {
	case KindTriangle:
		if count != 3 || m.Indexed() {
			return fmt.Errorf("%s: %w", m.Kind, ErrTopology)
		}
	case KindQuad:
		if count != 4 || len(m.Indices) != 6 {
			return fmt.Errorf("%s: %w", m.Kind, ErrTopology)
		}
	case KindCube:
		if count != 24 || len(m.Indices) != 36 {
			return fmt.Errorf("%s: %w", m.Kind, ErrTopology)
		}
	default:
		return fmt.Errorf("unknown mesh kind %d: %w", int(m.Kind), ErrTopology)
	}
	return nil
}
