package shape

import (
	"fmt"

	"github.com/ThatOtherAndrew/learngl/internal/geometry"
	"github.com/ThatOtherAndrew/learngl/internal/shaders"
	"github.com/ThatOtherAndrew/learngl/internal/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shape owns the GPU buffers for one mesh. The program and textures are
// borrowed: the caller keeps them alive for as long as the shape is drawn
// and deletes them itself.
type Shape struct {
	mesh     geometry.Mesh
	program  *shaders.Program
	textures []*texture.Texture

	vao uint32
	vbo uint32
	ebo uint32
}

// New uploads mesh once and declares its vertex attributes from the mesh
// layout. Sampler uniforms tex0, tex1, ... are pointed at the textures' units.
func New(mesh geometry.Mesh, program *shaders.Program, textures ...*texture.Texture) (*Shape, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fmt.Errorf("%s: nil shader program", mesh.Kind)
	}

	s := &Shape{mesh: mesh, program: program, textures: textures}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	if mesh.Indexed() {
		gl.GenBuffers(1, &s.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	stride := mesh.Layout.Stride()
	for i, attr := range mesh.Layout.Attributes {
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, stride, uintptr(mesh.Layout.Offset(i)))
		gl.EnableVertexAttribArray(attr.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	s.bindSamplers()
	return s, nil
}

func (s *Shape) bindSamplers() {
	if len(s.textures) == 0 {
		return
	}
	s.program.Use()
	for i, t := range s.textures {
		s.program.SetInt(fmt.Sprintf("tex%d", i), int32(t.Unit()))
	}
}

// Draw re-establishes every binding it needs, since any other draw may have
// changed the active program, texture units or vertex array since.
func (s *Shape) Draw() {
	for _, t := range s.textures {
		t.Use()
	}
	s.program.Use()
	gl.BindVertexArray(s.vao)

	switch s.mesh.Kind {
	case geometry.KindTriangle:
		gl.DrawArrays(gl.TRIANGLES, 0, s.mesh.DrawCount())
	case geometry.KindQuad, geometry.KindCube:
		gl.DrawElementsWithOffset(gl.TRIANGLES, s.mesh.DrawCount(), gl.UNSIGNED_INT, 0)
	}
}

// Transform places the shape at translate, rotated angle radians about
// shaders.ModelAxis.
func (s *Shape) Transform(translate mgl32.Vec3, angle float32) {
	s.program.Use()
	s.program.SetModel(translate, angle)
}

func (s *Shape) SetModel(m mgl32.Mat4) {
	s.program.Use()
	s.program.SetMat4(shaders.UniformModel, m)
}

// SetProgram swaps the borrowed program, e.g. after a shader reload.
func (s *Shape) SetProgram(p *shaders.Program) {
	s.program = p
	s.bindSamplers()
}

func (s *Shape) Program() *shaders.Program { return s.program }
func (s *Shape) Mesh() geometry.Mesh       { return s.mesh }

// Delete frees the shape's own buffers only.
func (s *Shape) Delete() {
	if s.vao == 0 {
		return
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
	}
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	s.vao, s.vbo, s.ebo = 0, 0, 0
}
