package timer

import (
	"sync"
	"time"
)

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. It exists so that tests can drive a Countdown
// without waiting on the wall clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

type realTicker struct {
	*time.Ticker
}

func (t realTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

// Countdown counts whole seconds down to zero. At most one tick source is
// alive at any time, and ticks from a cancelled source are discarded. It is
// safe for concurrent use.
type Countdown struct {
	clock     Clock
	stop      chan struct{}
	ticks     chan struct{}
	total     int
	remaining int
	gen       uint64
	running   bool
	mu        sync.Mutex
}

// CountdownOption configures a Countdown.
type CountdownOption func(*Countdown)

// WithClock replaces the wall clock as the source of ticks.
func WithClock(c Clock) CountdownOption {
	return func(cd *Countdown) {
		cd.clock = c
	}
}

// NewCountdown returns a paused countdown starting at initialSeconds.
func NewCountdown(initialSeconds int, opts ...CountdownOption) *Countdown {
	initialSeconds = max(initialSeconds, 0)

	c := &Countdown{
		clock:     realClock{},
		total:     initialSeconds,
		remaining: initialSeconds,
		ticks:     make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Ticks signals every tick-driven change. Signals are coalesced, so a slow
// reader sees at least one signal after any number of changes.
func (c *Countdown) Ticks() <-chan struct{} {
	return c.ticks
}

// Toggle starts a paused countdown or pauses a running one. A countdown at
// zero cannot be started.
func (c *Countdown) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.cancel()
		c.running = false

		return
	}

	if c.remaining == 0 {
		return
	}

	c.running = true
	c.start()
}

// Reset pauses the countdown and restores the current total.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.running = false
	c.remaining = c.total
}

// ResetTo pauses the countdown and replaces its total.
func (c *Countdown) ResetTo(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.running = false
	c.total = max(total, 0)
	c.remaining = c.total
}

// Set overwrites the remaining seconds without touching the total. Setting
// zero on a running countdown stops it.
func (c *Countdown) Set(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remaining = max(seconds, 0)

	if c.remaining == 0 && c.running {
		c.cancel()
		c.running = false
	}
}

// Stop pauses the countdown and releases its tick source.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.running = false
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remaining
}

func (c *Countdown) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.total
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// Expired reports whether the countdown reached zero and is not running.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remaining == 0 && !c.running
}

// start replaces the tick source. Callers must hold c.mu.
func (c *Countdown) start() {
	c.cancel()

	c.gen++
	c.stop = make(chan struct{})

	go c.run(c.gen, c.clock.NewTicker(time.Second), c.stop)
}

// cancel ends the current tick source if there is one. Callers must hold
// c.mu.
func (c *Countdown) cancel() {
	if c.stop == nil {
		return
	}

	close(c.stop)
	c.stop = nil
	c.gen++
}

func (c *Countdown) run(gen uint64, t Ticker, stop <-chan struct{}) {
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.tick(gen) {
				return
			}
		}
	}
}

// tick decrements the countdown on behalf of the source identified by gen.
// It reports whether that source should keep ticking.
func (c *Countdown) tick(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || !c.running {
		return false
	}

	c.remaining--

	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.stop = nil
		c.gen++
	}

	c.notify()

	return c.running
}

func (c *Countdown) notify() {
	select {
	case c.ticks <- struct{}{}:
	default:
	}
}
