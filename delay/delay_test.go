package delay

import "testing"

// tickCounter is a fake counter that advances a fixed step per read.
type tickCounter struct {
	now  uint64
	step uint64
}

func (c *tickCounter) read() uint64 {
	v := c.now
	c.now += c.step
	return v
}

func TestDelayUsElapsedTicks(t *testing.T) {
	// 1000 ticks/second: 1 tick per millisecond.
	ctr := &tickCounter{step: 1}
	d := New(ctr.read, 1_000_000_000)

	// 5us at 1GHz is 5000 ticks; counter advances 1 per read, so the
	// loop must observe at least 5000 ticks beyond the start value.
	d.DelayUs(5)
	if ctr.now < 5000 {
		t.Errorf("counter advanced %d ticks, want >= 5000", ctr.now)
	}
}

func TestDelayNsZero(t *testing.T) {
	ctr := &tickCounter{step: 1}
	d := New(ctr.read, U74ClockHz)

	d.DelayNs(0)
	// One read for t0, at least one for the loop check.
	if ctr.now == 0 {
		t.Error("counter never read")
	}
}

func TestDelayWraparound(t *testing.T) {
	// Start near the top of the counter range so the target crosses zero.
	ctr := &tickCounter{now: ^uint64(0) - 100, step: 50}
	d := New(ctr.read, 1_000_000_000)

	done := make(chan struct{})
	go func() {
		d.DelayNs(1000) // 1000 ticks at 1GHz
		close(done)
	}()
	<-done // must terminate despite wraparound
}

func TestU74(t *testing.T) {
	ctr := &tickCounter{step: 1}
	d := U74(ctr.read)
	if got := d.TicksSecond(); got != U74ClockHz {
		t.Errorf("TicksSecond() = %d, want %d", got, U74ClockHz)
	}
}

func TestSatMul(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 5, 0},
		{5, 0, 0},
		{3, 7, 21},
		{^uint64(0), 2, ^uint64(0)},
		{1 << 40, 1 << 40, ^uint64(0)},
	}

	for _, tt := range tests {
		if got := satMul(tt.a, tt.b); got != tt.want {
			t.Errorf("satMul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
