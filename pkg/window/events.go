package window

// Event is one of EventKey, EventMouseMove, EventScroll or EventResize.
type Event interface {
	isEvent()
}

type EventKey struct {
	Name    string
	Pressed bool
}

// EventMouseMove carries the cursor movement since the previous sample.
// DY grows downwards, as screen coordinates do.
type EventMouseMove struct {
	DX, DY float64
}

type EventScroll struct {
	DY float64
}

// EventResize reports the new framebuffer size in pixels.
type EventResize struct {
	Width, Height int
}

func (EventKey) isEvent()       {}
func (EventMouseMove) isEvent() {}
func (EventScroll) isEvent()    {}
func (EventResize) isEvent()    {}

// cursorTracker turns absolute cursor positions into deltas. The first
// sample only records a position, so capturing the cursor doesn't jerk the
// camera.
type cursorTracker struct {
	x, y    float64
	started bool
}

func (c *cursorTracker) move(x, y float64) (dx, dy float64, ok bool) {
	if !c.started {
		c.x, c.y, c.started = x, y, true
		return 0, 0, false
	}
	dx, dy = x-c.x, y-c.y
	c.x, c.y = x, y
	return dx, dy, true
}
