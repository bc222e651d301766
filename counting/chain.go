package counting

// NumDigits is the number of BCD digits the chain produces.
const NumDigits = 4

// chainLimits are the wrap-around limits of the cascade, from seconds units
// to tens of minutes. The chain rolls over after 60 minutes; hours are out of
// scope.
var chainLimits = [NumDigits]int{10, 6, 10, 6}

// A CounterChain cascades four ModuloCounters to produce the four BCD digits
// of a minutes:seconds display. The first counter advances on the input
// seconds pulse; each carry advances the next stage. The whole cascade
// settles within one Tick call.
type CounterChain struct {
	name     string
	counters [NumDigits]*ModuloCounter
}

// Tick advances the chain by one seconds pulse if pulse is true. The returned
// carry is true on the tick where the whole chain rolls over from 59:59 back
// to 00:00.
func (c *CounterChain) Tick(pulse bool) (carry bool) {
	p := pulse
	for _, counter := range c.counters {
		p = counter.Tick(p)
	}
	return p
}

// Digits returns the current digit vector. Index 0 holds the seconds units,
// index 3 the tens of minutes. Each digit is in [0, 9].
func (c *CounterChain) Digits() []uint8 {
	digits := make([]uint8, NumDigits)
	for i, counter := range c.counters {
		digits[i] = uint8(counter.Value())
	}
	return digits
}

// Seconds returns the seconds part of the display in [0, 59].
func (c *CounterChain) Seconds() int {
	return c.counters[1].Value()*10 + c.counters[0].Value()
}

// Minutes returns the minutes part of the display in [0, 59].
func (c *CounterChain) Minutes() int {
	return c.counters[3].Value()*10 + c.counters[2].Value()
}

// Reset forces all counters of the chain back to 0.
func (c *CounterChain) Reset() {
	for _, counter := range c.counters {
		counter.Reset()
	}
}

// Name returns the name of the chain.
func (c *CounterChain) Name() string {
	return c.name
}

// ChainBuilder can build CounterChains.
type ChainBuilder struct{}

// MakeChainBuilder creates a ChainBuilder.
func MakeChainBuilder() ChainBuilder {
	return ChainBuilder{}
}

// Build creates a CounterChain with all counters at 0.
func (b ChainBuilder) Build(name string) *CounterChain {
	c := &CounterChain{name: name}

	stageNames := [NumDigits]string{
		"SecUnits", "SecTens", "MinUnits", "MinTens",
	}
	for i, limit := range chainLimits {
		c.counters[i] = MakeCounterBuilder().
			WithLimit(limit).
			Build(name + "." + stageNames[i])
	}

	return c
}
