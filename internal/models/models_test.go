package models

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{&ReadError{Path: "a.vert", Err: fs.ErrNotExist}, KindRead},
		{&DecodeError{Path: "a.png", Err: errors.New("bad header")}, KindDecode},
		{&CompileError{Stage: StageVertex, Log: "oops"}, KindCompile},
		{&LinkError{Log: "oops"}, KindLink},
		{fmt.Errorf("loading scene: %w", &LinkError{Log: "x"}), KindLink},
		{errors.New("plain"), KindUnknown},
		{nil, KindUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, KindOf(c.err), "%v", c.err)
	}
}

func TestReadErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("shader: %w", &ReadError{Path: "missing.frag", Err: fs.ErrNotExist})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.frag")
}

func TestCompileErrorNamesStage(t *testing.T) {
	err := &CompileError{Stage: StageFragment, Path: "assets/shaders/basic.frag", Log: "0:1: syntax error"}
	assert.Contains(t, err.Error(), "Fragment")
	assert.Contains(t, err.Error(), "basic.frag")

	err = &CompileError{Stage: StageVertex, Log: "0:1: syntax error"}
	assert.Equal(t, "failed to compile Vertex shader: 0:1: syntax error", err.Error())

	assert.Contains(t, (&LinkError{Log: "mismatch"}).Error(), "Program")
}

func TestInfoLog(t *testing.T) {
	assert.Equal(t, "error", InfoLog([]byte("error\n\x00\x00\x00")))
	assert.Equal(t, "", InfoLog(nil))

	long := []byte(strings.Repeat("x", MaxInfoLog*2))
	assert.Len(t, InfoLog(long), MaxInfoLog)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "compile", KindCompile.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
