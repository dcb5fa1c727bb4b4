// Package delay provides blocking microsecond-granularity delays backed by
// a monotonic cycle counter.
//
// The [Delayer] interface is the capability consumed by peripheral drivers
// that need bounded busy-wait polling. [CycleDelay] implements it over any
// monotonic 64-bit counter source; comparisons use wrapping subtraction so
// counter wraparound does not cut a delay short.
package delay

// U74ClockHz is the clock rate of the JH7110 U74 core in Hertz (1.5 GHz).
const U74ClockHz uint64 = 1_500_000_000

// Delayer is the blocking delay capability consumed by peripheral drivers.
type Delayer interface {
	// DelayUs busy-waits for at least the given number of microseconds.
	DelayUs(us uint32)
}

// CounterFunc returns the current value of a monotonic cycle counter.
type CounterFunc func() uint64

// CycleDelay implements [Delayer] over a monotonic cycle counter.
type CycleDelay struct {
	ticksSecond uint64
	read        CounterFunc
}

// New creates a CycleDelay from a counter source and its tick rate in Hertz.
func New(read CounterFunc, ticksSecond uint64) *CycleDelay {
	return &CycleDelay{
		ticksSecond: ticksSecond,
		read:        read,
	}
}

// U74 creates a CycleDelay for the JH7110 U74 core clock.
func U74(read CounterFunc) *CycleDelay {
	return New(read, U74ClockHz)
}

// TicksSecond returns the configured counter tick rate in Hertz.
func (d *CycleDelay) TicksSecond() uint64 {
	return d.ticksSecond
}

// DelayUs busy-waits for at least us microseconds.
func (d *CycleDelay) DelayUs(us uint32) {
	d.DelayNs(uint64(us) * 1_000)
}

// DelayNs busy-waits for at least ns nanoseconds.
//
// The tick target saturates instead of overflowing, and the elapsed-tick
// comparison uses wrapping subtraction so a counter that rolls over during
// the wait still terminates correctly.
func (d *CycleDelay) DelayNs(ns uint64) {
	t0 := d.read()
	ticks := satMul(ns, d.ticksSecond) / 1_000_000_000
	for d.read()-t0 <= ticks {
	}
}

// satMul multiplies a and b, saturating at the maximum uint64 on overflow.
func satMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		return ^uint64(0)
	}
	return p
}
