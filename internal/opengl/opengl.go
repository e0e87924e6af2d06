package opengl

import (
	"log/slog"

	"github.com/ThatOtherAndrew/learngl/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the GL function pointers for the current context. It must run
// on the thread that owns the context, after the window made it current.
func Init(width, height int) error {
	if err := gl.Init(); err != nil {
		return err
	}

	slog.Info("opengl initialised",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	)

	gl.Enable(gl.DEPTH_TEST)
	Viewport(width, height)
	return nil
}

func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func ClearColor(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// SetPolygonMode switches rasterization for front and back faces.
func SetPolygonMode(mode scene.PolygonMode) {
	if mode == scene.Line {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}
