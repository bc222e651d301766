// Package display multiplexes a digit vector onto a single set of
// seven-segment output lines by cycling the active digit position at the
// refresh pulse rate.
package display

import (
	"fmt"

	"github.com/tickworks/segclock/counting"
	"github.com/tickworks/segclock/sevenseg"
	"github.com/tickworks/segclock/sim"
)

// A DigitSource provides the digit vector that the multiplexer renders.
type DigitSource interface {
	// Digits returns the current digit vector. The multiplexer reads it
	// fresh every tick and never mutates it.
	Digits() []uint8
}

// A Frame is the externally observable output of the display for one tick:
// which digit position is driven and with what pattern.
type Frame struct {
	Time         sim.VTimeInSec
	ActiveDigit  int
	Segments     sevenseg.SegmentPattern
	AnodeMask    uint8
	DecimalPoint uint8
}

// A Multiplexer cycles through the digit positions at the refresh pulse rate
// and emits a Frame for the currently selected digit every tick.
type Multiplexer struct {
	name      string
	numDigits int
	selector  *counting.ModuloCounter
	source    DigitSource
}

// Tick recomputes the output frame. The selector advances when refreshPulse
// is true; the frame is recomputed from the current digit vector either way.
func (m *Multiplexer) Tick(refreshPulse bool) Frame {
	m.selector.Tick(refreshPulse)

	digits := m.source.Digits()
	if len(digits) != m.numDigits {
		panic(fmt.Sprintf(
			"multiplexer %s: digit source produced %d digits, want %d",
			m.name, len(digits), m.numDigits))
	}

	active := m.selector.Value()

	return Frame{
		ActiveDigit:  active,
		Segments:     sevenseg.Encode(digits[active]),
		AnodeMask:    sevenseg.AnodeMask(active, m.numDigits),
		DecimalPoint: sevenseg.DecimalPointOff,
	}
}

// ActiveDigit returns the digit position the multiplexer currently drives.
func (m *Multiplexer) ActiveDigit() int {
	return m.selector.Value()
}

// NumDigits returns the number of digit positions cycled through.
func (m *Multiplexer) NumDigits() int {
	return m.numDigits
}

// Reset returns the selector to digit position 0.
func (m *Multiplexer) Reset() {
	m.selector.Reset()
}

// Name returns the name of the multiplexer.
func (m *Multiplexer) Name() string {
	return m.name
}

// Builder can build Multiplexers.
type Builder struct {
	numDigits int
	source    DigitSource
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{numDigits: counting.NumDigits}
}

// WithNumDigits sets the number of digit positions.
func (b Builder) WithNumDigits(n int) Builder {
	b.numDigits = n
	return b
}

// WithDigitSource sets the source of the digit vector.
func (b Builder) WithDigitSource(source DigitSource) Builder {
	b.source = source
	return b
}

// Build creates a Multiplexer. It panics if the digit source is missing or
// the number of digits is not positive.
func (b Builder) Build(name string) *Multiplexer {
	if b.source == nil {
		panic("multiplexer " + name + ": digit source must be set")
	}
	if b.numDigits < 1 {
		panic(fmt.Sprintf(
			"multiplexer %s: numDigits must be positive, got %d",
			name, b.numDigits))
	}

	return &Multiplexer{
		name:      name,
		numDigits: b.numDigits,
		selector:  counting.MakeCounterBuilder().WithLimit(b.numDigits).Build(name + ".Selector"),
		source:    b.source,
	}
}
