// Package keys names the keyboard keys that can be bound to actions. The
// window reports key events by these names and the settings file binds them.
package keys

import "sort"

const (
	Space        = "Space"
	Tab          = "Tab"
	Enter        = "Enter"
	Escape       = "Escape"
	Backspace    = "Backspace"
	LeftShift    = "LeftShift"
	RightShift   = "RightShift"
	LeftControl  = "LeftControl"
	RightControl = "RightControl"
	LeftAlt      = "LeftAlt"
	RightAlt     = "RightAlt"
	Up           = "Up"
	Down         = "Down"
	Left         = "Left"
	Right        = "Right"
	F1           = "F1"
	F2           = "F2"
	F3           = "F3"
	F4           = "F4"
	F5           = "F5"
)

var special = []string{
	Space, Tab, Enter, Escape, Backspace,
	LeftShift, RightShift, LeftControl, RightControl, LeftAlt, RightAlt,
	Up, Down, Left, Right,
	F1, F2, F3, F4, F5,
}

var valid = func() map[string]struct{} {
	m := make(map[string]struct{}, 26+10+len(special))
	for c := 'A'; c <= 'Z'; c++ {
		m[string(c)] = struct{}{}
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = struct{}{}
	}
	for _, name := range special {
		m[name] = struct{}{}
	}
	return m
}()

// Letter is the name of the i-th letter key, "A" for 0.
func Letter(i int) string { return string(rune('A' + i)) }

// Digit is the name of the digit key d.
func Digit(d int) string { return string(rune('0' + d)) }

// Valid reports whether name is a bindable key. Names are case-sensitive.
func Valid(name string) bool {
	_, ok := valid[name]
	return ok
}

// Names lists every bindable key name, sorted.
func Names() []string {
	names := make([]string, 0, len(valid))
	for name := range valid {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
