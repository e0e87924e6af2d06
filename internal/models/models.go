package models

import (
	"errors"
	"fmt"
	"strings"
)

// MaxInfoLog caps how much of a driver info log is kept in an error.
const MaxInfoLog = 1024

type Kind int

const (
	KindUnknown Kind = iota
	KindRead
	KindDecode
	KindCompile
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindDecode:
		return "decode"
	case KindCompile:
		return "compile"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Stage labels the part of a GPU program an error came from.
type Stage string

const (
	StageVertex   Stage = "Vertex"
	StageFragment Stage = "Fragment"
	StageProgram  Stage = "Program"
)

type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
func (e *ReadError) Kind() Kind    { return KindRead }

type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
func (e *DecodeError) Kind() Kind    { return KindDecode }

type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader %q: %s", e.Stage, e.Path, e.Log)
}

func (e *CompileError) Kind() Kind { return KindCompile }

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link %s: %s", StageProgram, e.Log)
}

func (e *LinkError) Kind() Kind { return KindLink }

// KindOf reports the failure kind carried anywhere in err's chain.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// InfoLog trims a raw driver log buffer to printable text of at most MaxInfoLog bytes.
func InfoLog(raw []byte) string {
	if len(raw) > MaxInfoLog {
		raw = raw[:MaxInfoLog]
	}
	if i := strings.IndexByte(string(raw), 0); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(string(raw))
}
