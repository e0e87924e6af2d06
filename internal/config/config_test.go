package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Settings
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, *Default(), written)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
camera:
  move_speed: 5
  sprint_backwards: true
watch_shaders: true
bindings:
  Q: quit
`), 0o644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, float32(5), s.Camera.MoveSpeed)
	assert.True(t, s.Camera.SprintBackwards)
	assert.Equal(t, float32(6), s.Camera.SprintSpeed)
	assert.True(t, s.WatchShaders)
	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, "quit", s.Bindings["Q"])
	assert.Equal(t, "forward", s.Bindings["W"])
}

func TestLoadInvalidYAMLUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0o644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadMistypedFieldKeepsOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
clear_color: [0, 0]
camera:
  move_speed: 9
  fov: wide
window:
  title: cubes
bindings:
  Q: quit
`), 0o644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.ClearColor, s.ClearColor)
	assert.Equal(t, def.Camera.FOV, s.Camera.FOV)
	assert.Equal(t, float32(9), s.Camera.MoveSpeed)
	assert.Equal(t, "cubes", s.Window.Title)
	assert.Equal(t, "quit", s.Bindings["Q"])
	assert.Equal(t, "forward", s.Bindings["W"])
}

func TestDecodeFields(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`
log_level: debug
clear_color: [0, 0]
window: 5
camera:
  near: far
  far: 50
overlay: true
bindings:
  W: [forward]
`), &doc))

	s := Default()
	problems := DecodeFields(&doc, s)
	assert.Len(t, problems, 4)

	def := Default()
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, def.ClearColor, s.ClearColor)
	assert.Equal(t, def.Window, s.Window)
	assert.Equal(t, def.Camera.Near, s.Camera.Near)
	assert.Equal(t, float32(50), s.Camera.Far)
	assert.Equal(t, def.Bindings, s.Bindings)
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSettingsFrom(dir) // a directory cannot be read as a file
	assert.Error(t, err)
}

func TestValidateResetsOutOfRange(t *testing.T) {
	s := Default()
	s.Window.Width = -1
	s.ClearColor[1] = 1.5
	s.Camera.FOV = 200
	s.Camera.Near = 10
	s.Camera.Far = 1
	s.Camera.Sensitivity = 0
	s.StartScene = 9
	s.Bindings["J"] = "jump"

	problems := s.Validate()
	assert.Len(t, problems, 7)

	def := Default()
	assert.Equal(t, def.Window, s.Window)
	assert.Equal(t, def.ClearColor, s.ClearColor)
	assert.Equal(t, def.Camera, s.Camera)
	assert.Equal(t, 0, s.StartScene)
	assert.NotContains(t, s.Bindings, "J")
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bindings:
  w: back
  Shift: sprint
  F9: jump
  E: sprint
`), 0o644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.NotContains(t, s.Bindings, "w")
	assert.NotContains(t, s.Bindings, "Shift")
	assert.NotContains(t, s.Bindings, "F9")
	assert.Equal(t, "sprint", s.Bindings["E"])
	assert.Equal(t, "forward", s.Bindings["W"])

	s.Bindings["space"] = "quit"
	problems := s.Validate()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], `unknown key "space"`)
	assert.NotContains(t, s.Bindings, "space")
}

func TestValidateDefaultsClean(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestUnknownKeys(t *testing.T) {
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(`
window:
  width: 800
  colour: red
camera:
  fov: 60
overlay_alpha: 0.5
bindings:
  W: forward
`), &raw))

	unknown := UnknownKeys(raw)
	sort.Strings(unknown)
	assert.Equal(t, []string{"overlay_alpha", "window.colour"}, unknown)
}

func TestWriteSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := Default()
	s.Window.Title = "cubes"
	s.Camera.Position = [3]float32{1, 2, 3}
	require.NoError(t, WriteSettings(path, s))

	got, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
