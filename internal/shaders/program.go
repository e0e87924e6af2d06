package shaders

import (
	"log/slog"

	"github.com/ThatOtherAndrew/learngl/internal/geometry"
	"github.com/ThatOtherAndrew/learngl/internal/models"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	UniformProjection = "projection"
	UniformView       = "view"
	UniformModel      = "model"
	UniformTransform  = "transform"
)

// ModelAxis is the axis SetModel rotates about.
var ModelAxis = mgl32.Vec3{1.0, 0.3, 0.5}

// Program is a linked vertex + fragment GPU program. It cannot be
// recompiled; load a new Program to pick up changed sources.
type Program struct {
	id uint32
}

// Load compiles the two source files and links them. Every GL object made
// along the way is released when any step fails.
func Load(vertexPath, fragmentPath string) (*Program, error) {
	vertex, err := CompileShaderFromFile(vertexPath, models.StageVertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := CompileShaderFromFile(fragmentPath, models.StageFragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	id, err := linkProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}

	slog.Debug("linked shader program", "id", id, "vertex", vertexPath, "fragment", fragmentPath)
	return &Program{id: id}, nil
}

// Use makes p the active program. Uniform setters and draws target whichever
// program is active, so call it first.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}

// location looks name up on every call. Names the linker dropped or never
// saw come back as -1, which the Uniform* calls ignore.
func (p *Program) location(name string) int32 {
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) SetProjection(m mgl32.Mat4) {
	p.SetMat4(UniformProjection, m)
}

func (p *Program) SetView(m mgl32.Mat4) {
	p.SetMat4(UniformView, m)
}

// SetTransform sets the single combined matrix the flat 2D shaders take.
func (p *Program) SetTransform(m mgl32.Mat4) {
	p.SetMat4(UniformTransform, m)
}

// SetModel places the model at pos, rotated angle radians about ModelAxis.
func (p *Program) SetModel(pos mgl32.Vec3, angle float32) {
	p.SetMat4(UniformModel, geometry.Transform(pos, ModelAxis, angle))
}
