package counting

import "fmt"

// A PulseDivider divides the tick rate down to a pulse rate. It emits true on
// exactly one tick out of every limit consecutive ticks; the first pulse
// occurs after limit ticks have elapsed, not on tick zero.
//
// A PulseDivider is a ModuloCounter that advances on every tick and exposes
// only its carry.
type PulseDivider struct {
	counter *ModuloCounter
}

// Tick advances the divider by one tick and reports whether the divider
// pulses on this tick.
func (d *PulseDivider) Tick() bool {
	return d.counter.Tick(true)
}

// Limit returns the number of ticks per output pulse.
func (d *PulseDivider) Limit() int {
	return d.counter.Limit()
}

// Reset restarts the division cycle.
func (d *PulseDivider) Reset() {
	d.counter.Reset()
}

// Name returns the name of the divider.
func (d *PulseDivider) Name() string {
	return d.counter.Name()
}

// DividerBuilder can build PulseDividers.
type DividerBuilder struct {
	limit int
}

// MakeDividerBuilder creates a DividerBuilder with default parameters.
func MakeDividerBuilder() DividerBuilder {
	return DividerBuilder{limit: 1}
}

// WithLimit sets the number of ticks per output pulse.
func (b DividerBuilder) WithLimit(limit int) DividerBuilder {
	b.limit = limit
	return b
}

// Build creates a PulseDivider. It panics if the limit is smaller than 1.
func (b DividerBuilder) Build(name string) *PulseDivider {
	if b.limit < 1 {
		panic(fmt.Sprintf(
			"divider %s: limit must be at least 1, got %d", name, b.limit))
	}

	return &PulseDivider{
		counter: MakeCounterBuilder().WithLimit(b.limit).Build(name),
	}
}
