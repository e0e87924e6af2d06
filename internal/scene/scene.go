package scene

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

type ID int

const (
	Triangle ID = iota
	Quad
	LitCubes
)

type Scene struct {
	ID          ID
	Name        string
	Description string
}

// Catalogue lists every scene the renderer can show, in cycling order.
var Catalogue = []Scene{
	{ID: Triangle, Name: "triangle", Description: "a single vertex-colored triangle"},
	{ID: Quad, Name: "quad", Description: "an indexed, textured and vertex-colored quad"},
	{ID: LitCubes, Name: "lit-cubes", Description: "textured cubes lit by a lamp, free-fly camera"},
}

func Lookup(id ID) (Scene, bool) {
	for _, s := range Catalogue {
		if s.ID == id {
			return s, true
		}
	}
	return Scene{}, false
}

// Parse resolves a catalogue index or scene name to an index.
func Parse(v string) (int, error) {
	if i, err := strconv.Atoi(v); err == nil {
		if i < 0 || i >= len(Catalogue) {
			return 0, fmt.Errorf("scene index %d out of range [0, %d)", i, len(Catalogue))
		}
		return i, nil
	}
	for i, s := range Catalogue {
		if s.Name == v {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown scene %q", v)
}

func (s Scene) String() string {
	return s.Name
}

// Selector cycles through a fixed number of scenes.
type Selector struct {
	index int
	count int
}

// NewSelector starts at start, or at 0 when start is out of range.
func NewSelector(count, start int) (*Selector, error) {
	if count <= 0 {
		return nil, fmt.Errorf("scene count must be positive, got %d", count)
	}
	if start < 0 || start >= count {
		start = 0
	}
	return &Selector{index: start, count: count}, nil
}

func (s *Selector) Next() int {
	s.index = (s.index + 1) % s.count
	return s.index
}

func (s *Selector) Index() int { return s.index }
func (s *Selector) Count() int { return s.count }

// Current is the catalogue entry for the selected index, or a zero Scene
// when the selector spans more scenes than the catalogue holds.
func (s *Selector) Current() Scene {
	if s.index < len(Catalogue) {
		return Catalogue[s.index]
	}
	return Scene{}
}

type PolygonMode int

const (
	Fill PolygonMode = iota
	Line
)

func (m PolygonMode) Toggle() PolygonMode {
	if m == Fill {
		return Line
	}
	return Fill
}

func (m PolygonMode) String() string {
	if m == Line {
		return "line"
	}
	return "fill"
}

// CubePositions are the world-space positions of the lit cubes.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 1.0},
	{3.0, 1.0, 1.0},
	{1.0, 1.0, 3.0},
	{1.0, 3.0, 1.0},
	{-3.0, -1.0, -1.0},
	{-1.0, -1.0, -3.0},
	{-1.0, -3.0, -1.0},
}

// CubeAngle is the rotation of the i-th cube in radians.
func CubeAngle(i int) float32 {
	return mgl32.DegToRad(20.0 * float32(i))
}

type Light struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

type Material struct {
	Shininess float32
}

// LampScale shrinks the lamp cube drawn at the light position.
const LampScale = 0.2

func DefaultLight() Light {
	color := mgl32.Vec3{1.0, 1.0, 1.0}
	return Light{
		Position: mgl32.Vec3{1.2, 1.0, 2.0},
		Ambient:  color.Mul(0.3),
		Diffuse:  color.Mul(0.5),
		Specular: mgl32.Vec3{1.0, 1.0, 1.0},
	}
}

func DefaultMaterial() Material {
	return Material{Shininess: 32.0}
}
