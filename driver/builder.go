package driver

import (
	"github.com/tickworks/segclock/counting"
	"github.com/tickworks/segclock/display"
	"github.com/tickworks/segclock/sim"
)

// Builder can build clock components.
type Builder struct {
	engine          sim.Engine
	freq            sim.Freq
	ticksPerSecond  int
	ticksPerRefresh int
	tickBudget      uint64
}

// MakeBuilder creates a Builder with the reference configuration.
func MakeBuilder() Builder {
	return Builder{
		freq:            RefTickRate,
		ticksPerSecond:  RefTicksPerSecond,
		ticksPerRefresh: RefTicksPerRefresh,
	}
}

// WithEngine sets the engine that drives the component.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the base tick rate.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTicksPerSecond sets the limit of the seconds divider.
func (b Builder) WithTicksPerSecond(n int) Builder {
	b.ticksPerSecond = n
	return b
}

// WithTicksPerRefresh sets the limit of the display refresh divider.
func (b Builder) WithTicksPerRefresh(n int) Builder {
	b.ticksPerRefresh = n
	return b
}

// WithTickBudget limits the component to the given number of ticks; after
// that it stops making progress and the engine drains. A budget of 0 lets
// the clock free-run.
func (b Builder) WithTickBudget(n uint64) Builder {
	b.tickBudget = n
	return b
}

// Build creates the clock component. Invalid divider limits panic inside the
// counting builders.
func (b Builder) Build(name string) *Comp {
	c := &Comp{tickBudget: b.tickBudget}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.secondsDivider = counting.MakeDividerBuilder().
		WithLimit(b.ticksPerSecond).
		Build(name + ".SecondsDivider")
	c.refreshDivider = counting.MakeDividerBuilder().
		WithLimit(b.ticksPerRefresh).
		Build(name + ".RefreshDivider")
	c.chain = counting.MakeChainBuilder().Build(name + ".Chain")
	c.mux = display.MakeBuilder().
		WithNumDigits(counting.NumDigits).
		WithDigitSource(c.chain).
		Build(name + ".Mux")

	c.digits = c.chain.Digits()

	return c
}
