package shaders

import (
	"github.com/ThatOtherAndrew/learngl/internal/assets"
	"github.com/ThatOtherAndrew/learngl/internal/models"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func glType(stage models.Stage) uint32 {
	if stage == models.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CompileShaderFromFile reads path and compiles it as one stage. Compile
// errors carry the path.
func CompileShaderFromFile(path string, stage models.Stage) (uint32, error) {
	source, err := assets.ReadSource(path)
	if err != nil {
		return 0, err
	}
	shader, err := CompileShaderFromSource(source, stage)
	if err != nil {
		if cerr, ok := err.(*models.CompileError); ok {
			cerr.Path = path
		}
		return 0, err
	}
	return shader, nil
}

func CompileShaderFromSource(source string, stage models.Stage) (uint32, error) {
	shader := gl.CreateShader(glType(stage))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		logMsg := make([]byte, models.MaxInfoLog)
		gl.GetShaderInfoLog(shader, models.MaxInfoLog, nil, &logMsg[0])
		gl.DeleteShader(shader)
		return 0, &models.CompileError{Stage: stage, Log: models.InfoLog(logMsg)}
	}

	return shader, nil
}

func linkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logMsg := make([]byte, models.MaxInfoLog)
		gl.GetProgramInfoLog(program, models.MaxInfoLog, nil, &logMsg[0])
		gl.DeleteProgram(program)
		return 0, &models.LinkError{Log: models.InfoLog(logMsg)}
	}

	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)
	return program, nil
}
