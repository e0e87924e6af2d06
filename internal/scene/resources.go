package scene

import (
	"github.com/ThatOtherAndrew/learngl/internal/geometry"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader program names. Each resolves to a .vert/.frag pair.
const (
	ProgramBasic       = "basic"
	ProgramLighting    = "lighting"
	ProgramLightSource = "lightsource"
)

// Shape names.
const (
	ShapeTriangle = "triangle"
	ShapeQuad     = "quad"
	ShapeCube     = "cube"
	ShapeLamp     = "lamp"
)

type TextureSpec struct {
	Name string
	Unit int
}

// ShapeSpec describes a shape the renderer builds at startup. Textures are
// bound to samplers tex0, tex1, ... in order.
type ShapeSpec struct {
	Name     string
	Mesh     func() geometry.Mesh
	Program  string
	Textures []string
}

// Programs are loaded in this order.
var Programs = []string{ProgramBasic, ProgramLighting, ProgramLightSource}

var Textures = []TextureSpec{
	{Name: "container", Unit: 0},
	{Name: "crate_1", Unit: 0},
	{Name: "crate_1_spec", Unit: 1},
	{Name: "lamp_1_emission", Unit: 0},
}

var unitCube = mgl32.Vec3{1, 1, 1}

var Shapes = []ShapeSpec{
	{
		Name:    ShapeTriangle,
		Mesh:    func() geometry.Mesh { return geometry.Triangle(false) },
		Program: ProgramBasic,
	},
	{
		Name:     ShapeQuad,
		Mesh:     geometry.Quad,
		Program:  ProgramBasic,
		Textures: []string{"container"},
	},
	{
		Name:     ShapeCube,
		Mesh:     func() geometry.Mesh { return geometry.Cube(unitCube) },
		Program:  ProgramLighting,
		Textures: []string{"crate_1", "crate_1_spec"},
	},
	{
		Name:     ShapeLamp,
		Mesh:     func() geometry.Mesh { return geometry.Cube(unitCube) },
		Program:  ProgramLightSource,
		Textures: []string{"lamp_1_emission"},
	},
}

func LookupTexture(name string) (TextureSpec, bool) {
	for _, t := range Textures {
		if t.Name == name {
			return t, true
		}
	}
	return TextureSpec{}, false
}
