package hal

import "time"

// maxDelta bounds one frame's dt so a stall (window drag, debugger) does not
// teleport the camera.
const maxDelta = 100 * time.Millisecond

type hostClock struct {
	now   func() time.Time
	fixed time.Duration // non-zero: every frame reports exactly this
	first time.Duration // reported by the first measured frame

	last  time.Time
	delta time.Duration
	frame uint64
}

func newMeasuredClock(tps int) *hostClock {
	return &hostClock{now: time.Now, first: time.Second / time.Duration(tps)}
}

func newFixedClock(d time.Duration) *hostClock {
	return &hostClock{fixed: d}
}

func (c *hostClock) Delta() time.Duration { return c.delta }
func (c *hostClock) Frame() uint64        { return c.frame }

// step advances to the next frame.
func (c *hostClock) step() {
	c.frame++
	if c.fixed > 0 {
		c.delta = c.fixed
		return
	}
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		c.delta = c.first
		return
	}
	c.delta = min(max(now.Sub(c.last), 0), maxDelta)
	c.last = now
}
