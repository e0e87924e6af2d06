package window

import (
	"github.com/ThatOtherAndrew/learngl/pkg/keys"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyNames = func() map[glfw.Key]string {
	m := map[glfw.Key]string{
		glfw.KeySpace:        keys.Space,
		glfw.KeyTab:          keys.Tab,
		glfw.KeyEnter:        keys.Enter,
		glfw.KeyEscape:       keys.Escape,
		glfw.KeyBackspace:    keys.Backspace,
		glfw.KeyLeftShift:    keys.LeftShift,
		glfw.KeyRightShift:   keys.RightShift,
		glfw.KeyLeftControl:  keys.LeftControl,
		glfw.KeyRightControl: keys.RightControl,
		glfw.KeyLeftAlt:      keys.LeftAlt,
		glfw.KeyRightAlt:     keys.RightAlt,
		glfw.KeyUp:           keys.Up,
		glfw.KeyDown:         keys.Down,
		glfw.KeyLeft:         keys.Left,
		glfw.KeyRight:        keys.Right,
		glfw.KeyF1:           keys.F1,
		glfw.KeyF2:           keys.F2,
		glfw.KeyF3:           keys.F3,
		glfw.KeyF4:           keys.F4,
		glfw.KeyF5:           keys.F5,
	}
	// GLFW numbers letter and digit keys by their ASCII codes.
	for i := 0; i < 26; i++ {
		m[glfw.KeyA+glfw.Key(i)] = keys.Letter(i)
	}
	for d := 0; d < 10; d++ {
		m[glfw.Key0+glfw.Key(d)] = keys.Digit(d)
	}
	return m
}()

// KeyName is the name bindings use for key.
func KeyName(key glfw.Key) (string, bool) {
	name, ok := keyNames[key]
	return name, ok
}
