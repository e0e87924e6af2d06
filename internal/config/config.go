package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ThatOtherAndrew/learngl/internal/scene"
	"github.com/ThatOtherAndrew/learngl/internal/update"
	"github.com/ThatOtherAndrew/learngl/pkg/keys"
	"gopkg.in/yaml.v3"
)

const (
	appDir       = "learngl"
	settingsFile = "settings.yaml"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	MoveSpeed       float32    `yaml:"move_speed"`
	SprintSpeed     float32    `yaml:"sprint_speed"`
	Sensitivity     float32    `yaml:"sensitivity"`
	FOV             float32    `yaml:"fov"`
	Near            float32    `yaml:"near"`
	Far             float32    `yaml:"far"`
	SprintBackwards bool       `yaml:"sprint_backwards"`
	Position        [3]float32 `yaml:"position"`
}

type Settings struct {
	Window       Window            `yaml:"window"`
	AssetsDir    string            `yaml:"assets_dir"`
	LogLevel     string            `yaml:"log_level"`
	ClearColor   [4]float32        `yaml:"clear_color"`
	Camera       Camera            `yaml:"camera"`
	WatchShaders bool              `yaml:"watch_shaders"`
	StartScene   int               `yaml:"start_scene"`
	Bindings     map[string]string `yaml:"bindings"`
}

func Default() *Settings {
	return &Settings{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Learning OpenGL",
			VSync:  true,
		},
		AssetsDir:  "assets",
		LogLevel:   "info",
		ClearColor: [4]float32{0.2, 0.2, 0.2, 1.0},
		Camera: Camera{
			MoveSpeed:   3.0,
			SprintSpeed: 6.0,
			Sensitivity: 0.1,
			FOV:         45.0,
			Near:        0.1,
			Far:         100.0,
			Position:    [3]float32{0, 0, 3},
		},
		Bindings: map[string]string{
			"W":         "forward",
			"S":         "back",
			"A":         "left",
			"D":         "right",
			"LeftShift": "sprint",
			"Tab":       "next_scene",
			"Space":     "polygon_mode",
			"Escape":    "quit",
		},
	}
}

func GetSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads settings from path, creating the file with defaults
// when it does not exist. Unparseable files fall back to defaults; mistyped
// and out-of-range values fall back per field. Each fallback is logged.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("creating default settings file", "path", settingsPath)
			if err := WriteSettings(settingsPath, defaults); err != nil {
				slog.Warn("failed to create default settings file", "path", settingsPath, "error", err)
			}
			return defaults, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		slog.Warn("invalid settings file, using defaults", "path", settingsPath, "error", err)
		return defaults, nil
	}
	for _, key := range UnknownKeys(raw) {
		slog.Warn("unrecognised setting key", "key", key, "path", settingsPath)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		// A mistyped value aborts the whole decode. Retry one field at a
		// time so only the bad fields keep their defaults.
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			slog.Warn("invalid settings file, using defaults", "path", settingsPath, "error", err)
			return defaults, nil
		}
		settings = Default()
		for _, problem := range DecodeFields(&doc, settings) {
			slog.Warn("invalid setting, using default", "problem", problem, "path", settingsPath)
		}
	}

	for _, problem := range settings.Validate() {
		slog.Warn("invalid setting, using default", "problem", problem)
	}
	return settings, nil
}

func WriteSettings(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate resets every out-of-range field to its default and describes
// what it changed.
func (s *Settings) Validate() []string {
	def := Default()
	var problems []string
	reset := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		reset("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
		s.Window.Width, s.Window.Height = def.Window.Width, def.Window.Height
	}
	if strings.TrimSpace(s.AssetsDir) == "" {
		reset("assets_dir must not be empty")
		s.AssetsDir = def.AssetsDir
	}
	for i, c := range s.ClearColor {
		if c < 0 || c > 1 {
			reset("clear_color[%d] = %.2f must be between 0.0 and 1.0", i, c)
			s.ClearColor[i] = def.ClearColor[i]
		}
	}

	cam := &s.Camera
	if cam.MoveSpeed <= 0 {
		reset("camera.move_speed %.2f must be positive", cam.MoveSpeed)
		cam.MoveSpeed = def.Camera.MoveSpeed
	}
	if cam.SprintSpeed <= 0 {
		reset("camera.sprint_speed %.2f must be positive", cam.SprintSpeed)
		cam.SprintSpeed = def.Camera.SprintSpeed
	}
	if cam.Sensitivity <= 0 {
		reset("camera.sensitivity %.2f must be positive", cam.Sensitivity)
		cam.Sensitivity = def.Camera.Sensitivity
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		reset("camera.fov %.2f must be between 0 and 180 degrees", cam.FOV)
		cam.FOV = def.Camera.FOV
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		reset("camera near/far planes %.2f/%.2f must satisfy 0 < near < far", cam.Near, cam.Far)
		cam.Near, cam.Far = def.Camera.Near, def.Camera.Far
	}

	if s.StartScene < 0 || s.StartScene >= len(scene.Catalogue) {
		reset("start_scene %d must be between 0 and %d", s.StartScene, len(scene.Catalogue)-1)
		s.StartScene = def.StartScene
	}

	for key, action := range s.Bindings {
		if !keys.Valid(key) {
			reset("bindings.%s: unknown key %q, expected one of %s", key, key, strings.Join(keys.Names(), ", "))
			delete(s.Bindings, key)
			continue
		}
		if _, err := update.ParseAction(action); err != nil {
			reset("bindings.%s: %v", key, err)
			delete(s.Bindings, key)
		}
	}
	return problems
}

// DecodeFields decodes node into settings field by field. A value that does
// not fit its field leaves that field unchanged and is reported. Unknown keys
// are skipped.
func DecodeFields(node *yaml.Node, settings *Settings) []string {
	return decodeFields(node, reflect.ValueOf(settings).Elem(), "")
}

func decodeFields(node *yaml.Node, v reflect.Value, prefix string) []string {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		section := strings.TrimSuffix(prefix, ".")
		if section == "" {
			section = "settings"
		}
		return []string{fmt.Sprintf("%s: expected a mapping", section)}
	}

	fields := getKnownKeys(v.Type())
	var problems []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		field, ok := fields[key]
		if !ok {
			continue
		}
		target := v.FieldByIndex(field.Index)
		if field.Type.Kind() == reflect.Struct && value.Kind == yaml.MappingNode {
			problems = append(problems, decodeFields(value, target, prefix+key+".")...)
			continue
		}

		decoded := reflect.New(field.Type)
		decoded.Elem().Set(clone(target))
		if err := value.Decode(decoded.Interface()); err != nil {
			problems = append(problems, fmt.Sprintf("%s%s: %v", prefix, key, err))
			continue
		}
		target.Set(decoded.Elem())
	}
	return problems
}

// clone copies maps so a failed decode cannot leave the original half-merged.
func clone(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Map || v.IsNil() {
		return v
	}
	c := reflect.MakeMapWithSize(v.Type(), v.Len())
	iter := v.MapRange()
	for iter.Next() {
		c.SetMapIndex(iter.Key(), iter.Value())
	}
	return c
}

// UnknownKeys lists keys in raw, including keys of nested sections, that do
// not correspond to a Settings field.
func UnknownKeys(raw map[string]any) []string {
	return unknownKeys(reflect.TypeOf(Settings{}), raw, "")
}

func unknownKeys(t reflect.Type, raw map[string]any, prefix string) []string {
	fields := getKnownKeys(t)
	var unknown []string
	for key, value := range raw {
		field, ok := fields[key]
		if !ok {
			unknown = append(unknown, prefix+key)
			continue
		}
		nested, isMap := value.(map[string]any)
		if isMap && field.Type.Kind() == reflect.Struct {
			unknown = append(unknown, unknownKeys(field.Type, nested, prefix+key+".")...)
		}
	}
	return unknown
}

func getKnownKeys(t reflect.Type) map[string]reflect.StructField {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	keys := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("yaml"); tag != "" {
			// Handle tags like "field,omitempty"
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				keys[name] = field
			}
		}
	}
	return keys
}
