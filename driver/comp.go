// Package driver provides the clock component. It evaluates the whole
// synchronous chain once per tick: the seconds divider feeds the counter
// chain, the refresh divider feeds the display multiplexer, and the
// resulting frame is published through hooks.
package driver

import (
	"sync"
	"sync/atomic"

	"github.com/tickworks/segclock/counting"
	"github.com/tickworks/segclock/display"
	"github.com/tickworks/segclock/sim"
)

// HookPosFrame is a hook position that triggers after the component produced
// the display frame of a tick. The HookCtx Item is the display.Frame.
var HookPosFrame = &sim.HookPos{Name: "Frame"}

// Reference configuration. The base tick rate is chosen so that both the
// 1 Hz and the 1 kHz divider limits are whole numbers.
const (
	RefTickRate        = 32768 * sim.KHz
	RefTicksPerSecond  = 32768000
	RefTicksPerRefresh = 32768
)

// Comp is the clock component. It ticks at the base tick rate; everything
// slower is derived through pulse dividers, so all state advances in a single
// shared time base.
type Comp struct {
	*sim.TickingComponent

	secondsDivider *counting.PulseDivider
	refreshDivider *counting.PulseDivider
	chain          *counting.CounterChain
	mux            *display.Multiplexer

	tickBudget   uint64
	resetPending atomic.Bool

	// stateLock guards the externally readable snapshot of the tick that
	// completed most recently. The monitor reads it while the engine runs.
	stateLock sync.RWMutex
	lastFrame display.Frame
	digits    []uint8
	seconds   int
	minutes   int
	ticksRun  uint64
}

// Tick evaluates one step of the whole chain. Carry propagation through the
// cascade and the selector-to-encoder path both resolve before the frame is
// published, so no intermediate state is ever observable.
func (c *Comp) Tick() bool {
	if c.resetPending.CompareAndSwap(true, false) {
		c.secondsDivider.Reset()
		c.refreshDivider.Reset()
		c.chain.Reset()
		c.mux.Reset()
	}

	secondsPulse := c.secondsDivider.Tick()
	c.chain.Tick(secondsPulse)

	refreshPulse := c.refreshDivider.Tick()
	frame := c.mux.Tick(refreshPulse)
	frame.Time = c.CurrentTime()

	c.stateLock.Lock()
	c.lastFrame = frame
	c.digits = c.chain.Digits()
	c.seconds = c.chain.Seconds()
	c.minutes = c.chain.Minutes()
	c.ticksRun++
	ticksRun := c.ticksRun
	c.stateLock.Unlock()

	if c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosFrame,
			Item:   frame,
		})
	}

	if c.tickBudget > 0 && ticksRun >= c.tickBudget {
		return false
	}

	return true
}

// LastFrame returns the frame produced by the most recent tick.
func (c *Comp) LastFrame() display.Frame {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	return c.lastFrame
}

// Digits returns the BCD digit vector as of the most recent tick.
func (c *Comp) Digits() []uint8 {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()

	digits := make([]uint8, len(c.digits))
	copy(digits, c.digits)
	return digits
}

// Seconds returns the seconds part of the display.
func (c *Comp) Seconds() int {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	return c.seconds
}

// Minutes returns the minutes part of the display.
func (c *Comp) Minutes() int {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	return c.minutes
}

// TicksRun returns the number of ticks the component has evaluated.
func (c *Comp) TicksRun() uint64 {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	return c.ticksRun
}

// Reset requests that all counters return to 0. The reset is applied at the
// start of the next tick, so it is safe to call while the engine is running.
func (c *Comp) Reset() {
	c.resetPending.Store(true)
}
