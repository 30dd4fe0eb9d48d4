// Package clock turns an irregular stream of host timestamps into a whole
// number of fixed physics steps.
//
// Time, the accumulator and the step are float32 seconds. Leftover time is
// carried between calls, so a step that lands a hair short of a boundary
// runs on the next call.
package clock

const (
	DefaultHz         = 60
	DefaultMaxDeltaMs = 250
)

// Clock accumulates elapsed time and drains it in fixed steps.
type Clock struct {
	hz       int
	step     float32
	maxDelta float32

	started     bool
	currentTime float32
	accumulator float32
	steps       int64
}

// New returns a clock stepping hz times per simulated second. Deltas larger
// than maxDeltaMs are clamped. Non-positive arguments fall back to defaults.
func New(hz int, maxDeltaMs int64) *Clock {
	if hz <= 0 {
		hz = DefaultHz
	}
	if maxDeltaMs <= 0 {
		maxDeltaMs = DefaultMaxDeltaMs
	}
	return &Clock{
		hz:       hz,
		step:     1 / float32(hz),
		maxDelta: float32(maxDeltaMs) / 1000,
	}
}

// Advance consumes the time elapsed since the previous call and invokes step
// once per whole fixed step. It returns the number of steps executed.
//
// The first call only records the baseline. A timestamp earlier than the
// previous one counts as zero elapsed time and becomes the new baseline.
func (c *Clock) Advance(timeMillis int64, step func(dt float64)) int {
	if c == nil {
		return 0
	}
	newTime := float32(timeMillis) / 1000
	if !c.started {
		c.started = true
		c.currentTime = newTime
		return 0
	}

	delta := newTime - c.currentTime
	c.currentTime = newTime
	if delta < 0 {
		delta = 0
	}
	if delta > c.maxDelta {
		delta = c.maxDelta
	}

	c.accumulator += delta

	dt := float64(c.step)
	n := 0
	for c.accumulator >= c.step {
		if step != nil {
			step(dt)
		}
		c.accumulator -= c.step
		n++
	}
	c.steps += int64(n)
	return n
}

// Step is the fixed step duration in seconds.
func (c *Clock) Step() float64 {
	if c == nil || c.step == 0 {
		return float64(float32(1) / DefaultHz)
	}
	return float64(c.step)
}

// StepsFor reports how many fixed steps make up seconds, rounded to nearest
// and never below one.
func (c *Clock) StepsFor(seconds float64) int64 {
	hz := DefaultHz
	if c != nil && c.hz > 0 {
		hz = c.hz
	}
	n := int64(seconds*float64(hz) + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

// Accumulator is the unconsumed simulated time in seconds.
func (c *Clock) Accumulator() float64 {
	if c == nil {
		return 0
	}
	return float64(c.accumulator)
}

// CurrentTime is the last observed timestamp in seconds.
func (c *Clock) CurrentTime() float64 {
	if c == nil {
		return 0
	}
	return float64(c.currentTime)
}

// Steps is the total number of fixed steps executed since the last Reset.
func (c *Clock) Steps() int64 {
	if c == nil {
		return 0
	}
	return c.steps
}

// Started reports whether a baseline timestamp has been observed.
func (c *Clock) Started() bool {
	return c != nil && c.started
}

// Reset forgets the baseline and any accumulated time.
func (c *Clock) Reset() {
	if c == nil {
		return
	}
	c.started = false
	c.currentTime = 0
	c.accumulator = 0
	c.steps = 0
}
