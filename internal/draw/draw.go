package draw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThatOtherAndrew/learngl/internal/assets"
	"github.com/ThatOtherAndrew/learngl/internal/camera"
	"github.com/ThatOtherAndrew/learngl/internal/geometry"
	"github.com/ThatOtherAndrew/learngl/internal/opengl"
	"github.com/ThatOtherAndrew/learngl/internal/scene"
	"github.com/ThatOtherAndrew/learngl/internal/shaders"
	"github.com/ThatOtherAndrew/learngl/internal/shape"
	"github.com/ThatOtherAndrew/learngl/internal/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownProgram = errors.New("unknown shader program")

type Options struct {
	ClearColor [4]float32
	Near       float32
	Far        float32
	StartScene int
}

// Renderer owns every shader, texture and shape the scenes draw with. It is
// created once by the application and passed to whatever needs to draw or
// switch scenes.
type Renderer struct {
	resolver assets.Resolver
	opts     Options

	programs map[string]*shaders.Program
	textures map[string]*texture.Texture
	shapes   map[string]*shape.Shape

	selector *scene.Selector
	mode     scene.PolygonMode
	light    scene.Light
	material scene.Material
}

func New(resolver assets.Resolver, opts Options) *Renderer {
	if opts.Near <= 0 {
		opts.Near = 0.1
	}
	if opts.Far <= opts.Near {
		opts.Far = 100
	}
	selector, _ := scene.NewSelector(len(scene.Catalogue), opts.StartScene)
	return &Renderer{
		resolver: resolver,
		opts:     opts,
		selector: selector,
		mode:     scene.Fill,
		light:    scene.DefaultLight(),
		material: scene.DefaultMaterial(),
	}
}

// Init loads every program and texture and builds the shapes. On failure
// whatever was already created is released and the error is returned
// unchanged in kind, so callers can tell compile failures from missing files.
func (r *Renderer) Init() error {
	r.programs = make(map[string]*shaders.Program, len(scene.Programs))
	r.textures = make(map[string]*texture.Texture, len(scene.Textures))
	r.shapes = make(map[string]*shape.Shape, len(scene.Shapes))

	if err := r.load(); err != nil {
		r.Cleanup()
		return err
	}

	opengl.ClearColor(r.opts.ClearColor)
	opengl.SetPolygonMode(r.mode)
	gl.Enable(gl.DEPTH_TEST)

	slog.Info("renderer ready",
		"programs", len(r.programs),
		"textures", len(r.textures),
		"shapes", len(r.shapes),
		"scene", r.Scene().Name,
	)
	return nil
}

func (r *Renderer) load() error {
	for _, name := range scene.Programs {
		p, err := r.loadProgram(name)
		if err != nil {
			return err
		}
		r.programs[name] = p
	}

	for _, spec := range scene.Textures {
		t, err := texture.Load(r.resolver, spec.Name, spec.Unit)
		if err != nil {
			return fmt.Errorf("load texture %q: %w", spec.Name, err)
		}
		r.textures[spec.Name] = t
	}

	for _, spec := range scene.Shapes {
		textures := make([]*texture.Texture, 0, len(spec.Textures))
		for _, name := range spec.Textures {
			textures = append(textures, r.textures[name])
		}
		s, err := shape.New(spec.Mesh(), r.programs[spec.Program], textures...)
		if err != nil {
			return fmt.Errorf("build shape %q: %w", spec.Name, err)
		}
		r.shapes[spec.Name] = s
	}
	return nil
}

func (r *Renderer) loadProgram(name string) (*shaders.Program, error) {
	vertex, fragment := r.resolver.ShaderPaths(name)
	p, err := shaders.Load(vertex, fragment)
	if err != nil {
		return nil, fmt.Errorf("load shader %q: %w", name, err)
	}
	return p, nil
}

// Render clears the frame and draws the selected scene. aspect is the
// framebuffer's width over height.
func (r *Renderer) Render(cam *camera.Camera, aspect float32) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	switch r.Scene().ID {
	case scene.Triangle:
		r.drawFlat(r.shapes[scene.ShapeTriangle], false)
	case scene.Quad:
		r.drawFlat(r.shapes[scene.ShapeQuad], true)
	case scene.LitCubes:
		r.drawLitCubes(cam, aspect)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawFlat(s *shape.Shape, textured bool) {
	basic := s.Program()
	basic.Use()
	basic.SetTransform(mgl32.Ident4())
	basic.SetBool("textured", textured)
	s.Draw()
}

func (r *Renderer) drawLitCubes(cam *camera.Camera, aspect float32) {
	projection := cam.Projection(aspect, r.opts.Near, r.opts.Far)
	view := cam.ViewMatrix()

	cube := r.shapes[scene.ShapeCube]
	lighting := cube.Program()
	lighting.Use()
	lighting.SetProjection(projection)
	lighting.SetView(view)
	lighting.SetVec3("viewPos", cam.Position())
	lighting.SetVec3("light.position", r.light.Position)
	lighting.SetVec3("light.ambient", r.light.Ambient)
	lighting.SetVec3("light.diffuse", r.light.Diffuse)
	lighting.SetVec3("light.specular", r.light.Specular)
	lighting.SetFloat("material.shininess", r.material.Shininess)

	for i, pos := range scene.CubePositions {
		cube.Transform(pos, scene.CubeAngle(i))
		cube.Draw()
	}

	lamp := r.shapes[scene.ShapeLamp]
	source := lamp.Program()
	source.Use()
	source.SetProjection(projection)
	source.SetView(view)
	lamp.SetModel(geometry.Scaled(mgl32.Translate3D(r.light.Position.Elem()), scene.LampScale))
	lamp.Draw()
}

func (r *Renderer) NextScene() {
	r.selector.Next()
	slog.Debug("scene changed", "scene", r.Scene().Name)
}

func (r *Renderer) Scene() scene.Scene {
	return r.selector.Current()
}

func (r *Renderer) SwapPolygonMode() {
	r.mode = r.mode.Toggle()
	opengl.SetPolygonMode(r.mode)
	slog.Debug("polygon mode changed", "mode", r.mode)
}

func (r *Renderer) PolygonMode() scene.PolygonMode {
	return r.mode
}

// Reload rebuilds program name from its current sources. When that fails
// the old program stays in use and the error is returned.
func (r *Renderer) Reload(name string) error {
	old, ok := r.programs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}

	p, err := r.loadProgram(name)
	if err != nil {
		return err
	}

	for _, s := range r.shapes {
		if s.Program() == old {
			s.SetProgram(p)
		}
	}
	old.Delete()
	r.programs[name] = p

	slog.Info("reloaded shader program", "name", name)
	return nil
}

// Cleanup deletes shapes before the textures and programs they borrow.
// Calling it again is a no-op.
func (r *Renderer) Cleanup() {
	for name, s := range r.shapes {
		s.Delete()
		delete(r.shapes, name)
	}
	for name, t := range r.textures {
		t.Delete()
		delete(r.textures, name)
	}
	for name, p := range r.programs {
		p.Delete()
		delete(r.programs, name)
	}
}
