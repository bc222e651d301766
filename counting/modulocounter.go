// Package counting provides the wrap-around counters that form the
// timekeeping chain of the clock. All counters follow registered same-tick
// semantics: the value and the carry visible after a Tick call reflect the
// state after the transition, so a cascade of counters settles within a
// single tick.
package counting

import "fmt"

// A ModuloCounter counts input pulses and wraps from limit-1 back to 0,
// emitting a one-tick carry pulse on the wrap.
//
// The limit must be at least 1. A counter with limit 1 is degenerate but
// legal: its value is always 0 and every input pulse carries.
type ModuloCounter struct {
	name  string
	limit int
	value int
}

// Tick advances the counter by one if pulse is true. The returned carry is
// true only on the tick where the counter wraps back to 0.
func (c *ModuloCounter) Tick(pulse bool) (carry bool) {
	if !pulse {
		return false
	}

	if c.value == c.limit-1 {
		c.value = 0
		return true
	}

	c.value++
	return false
}

// Value returns the current count, always in [0, limit).
func (c *ModuloCounter) Value() int {
	return c.value
}

// Limit returns the wrap-around limit of the counter.
func (c *ModuloCounter) Limit() int {
	return c.limit
}

// Reset forces the counter back to 0 without emitting a carry.
func (c *ModuloCounter) Reset() {
	c.value = 0
}

// Name returns the name of the counter.
func (c *ModuloCounter) Name() string {
	return c.name
}

// CounterBuilder can build ModuloCounters.
type CounterBuilder struct {
	limit int
}

// MakeCounterBuilder creates a CounterBuilder with default parameters.
func MakeCounterBuilder() CounterBuilder {
	return CounterBuilder{limit: 10}
}

// WithLimit sets the wrap-around limit of the counter to build.
func (b CounterBuilder) WithLimit(limit int) CounterBuilder {
	b.limit = limit
	return b
}

// Build creates a ModuloCounter. It panics if the limit is smaller than 1.
func (b CounterBuilder) Build(name string) *ModuloCounter {
	if b.limit < 1 {
		panic(fmt.Sprintf(
			"counter %s: limit must be at least 1, got %d", name, b.limit))
	}

	return &ModuloCounter{
		name:  name,
		limit: b.limit,
	}
}
