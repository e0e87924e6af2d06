package update

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ThatOtherAndrew/learngl/internal/camera"
)

type Action int

const (
	None Action = iota
	Forward
	Back
	Left
	Right
	Sprint
	NextScene
	PolygonMode
	Quit
)

var actionNames = map[Action]string{
	Forward:     "forward",
	Back:        "back",
	Left:        "left",
	Right:       "right",
	Sprint:      "sprint",
	NextScene:   "next_scene",
	PolygonMode: "polygon_mode",
	Quit:        "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// ActionNames lists every bindable action name, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for _, n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseBindings turns key name → action name pairs into a binding table.
func ParseBindings(raw map[string]string) (map[string]Action, error) {
	bindings := make(map[string]Action, len(raw))
	for key, name := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("binding for key %q: %w", key, err)
		}
		bindings[key] = a
	}
	return bindings, nil
}

// Toggler receives the discrete renderer toggles.
type Toggler interface {
	NextScene()
	SwapPolygonMode()
}

type Controller struct {
	camera   *camera.Camera
	toggles  Toggler
	bindings map[string]Action
}

func New(cam *camera.Camera, toggles Toggler, bindings map[string]Action) *Controller {
	return &Controller{camera: cam, toggles: toggles, bindings: bindings}
}

// HandleKey applies a key edge. Movement actions follow the key state;
// toggles fire on press only. It reports whether the key asks to quit.
func (c *Controller) HandleKey(name string, pressed bool) bool {
	switch c.bindings[name] {
	case Forward:
		c.camera.SetForward(pressed)
	case Back:
		c.camera.SetBack(pressed)
	case Left:
		c.camera.SetLeft(pressed)
	case Right:
		c.camera.SetRight(pressed)
	case Sprint:
		c.camera.SetSprint(pressed)
	case NextScene:
		if pressed {
			c.toggles.NextScene()
		}
	case PolygonMode:
		if pressed {
			c.toggles.SwapPolygonMode()
		}
	case Quit:
		return pressed
	}
	return false
}

func (c *Controller) HandleMouse(dx, dy float64) {
	c.camera.SetYaw(float32(dx))
	c.camera.SetPitch(float32(dy))
}

func (c *Controller) HandleScroll(dy float64) {
	c.camera.Zoom(float32(dy))
}

// Tick advances the camera by dt seconds.
func (c *Controller) Tick(dt float32) {
	c.camera.UpdateDirection()
	c.camera.UpdatePosition(dt)
}
