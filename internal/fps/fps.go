package fps

import "time"

// Counter counts frames and reports a rate once per Interval.
type Counter struct {
	Interval time.Duration

	start  time.Time
	frames int
}

func New() *Counter {
	return &Counter{Interval: time.Second}
}

// Tick records one frame. When at least Interval has passed since the
// window opened it returns the frame rate over that window and starts a new one.
func (c *Counter) Tick(now time.Time) (float64, bool) {
	if c.start.IsZero() {
		c.start = now
		return 0, false
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.Interval {
		return 0, false
	}
	rate := float64(c.frames) / elapsed.Seconds()
	c.start = now
	c.frames = 0
	return rate, true
}
