package pwm

import (
	"errors"
	"testing"

	"github.com/ardnew/jh71xx/pkg"
)

type fakePeriph struct {
	period   uint32
	duty     uint32
	enabled  bool
	inverted bool
}

func (f *fakePeriph) Period() uint32       { return f.period }
func (f *fakePeriph) SetPeriod(v uint32)   { f.period = v }
func (f *fakePeriph) Duty() uint32         { return f.duty }
func (f *fakePeriph) SetDuty(v uint32)     { f.duty = v }
func (f *fakePeriph) Enabled() bool        { return f.enabled }
func (f *fakePeriph) Enable(v bool)        { f.enabled = v }
func (f *fakePeriph) Inverted() bool       { return f.inverted }
func (f *fakePeriph) SetInverted(v bool)   { f.inverted = v }

var _ Peripheral = (*fakePeriph)(nil)

func TestNewClampsOversizedPeriod(t *testing.T) {
	periph := &fakePeriph{period: 0x1_0000}
	pwm := New(periph)
	if got := pwm.Period(); got != 0xFFFF {
		t.Errorf("Period() = %d, want %d", got, 0xFFFF)
	}
	if periph.period != MaxPeriod {
		t.Errorf("hardware period = %d, want clamped to %d", periph.period, MaxPeriod)
	}
}

func TestSetPeriodClampsDuty(t *testing.T) {
	periph := &fakePeriph{period: 1000, duty: 800}
	pwm := New(periph)

	pwm.SetPeriod(500)
	if got := pwm.Duty(); got != 500 {
		t.Errorf("Duty() = %d after shrinking period, want 500", got)
	}
}

func TestSetDutyValidation(t *testing.T) {
	periph := &fakePeriph{period: 100}
	pwm := New(periph)

	if err := pwm.SetDuty(100); err != nil {
		t.Errorf("SetDuty(period) = %v, want nil", err)
	}
	if err := pwm.SetDuty(101); !errors.Is(err, pkg.ErrInvalidArgument) {
		t.Errorf("SetDuty(period+1) = %v, want invalid argument", err)
	}
	if periph.duty != 100 {
		t.Errorf("duty = %d after rejected write, want 100", periph.duty)
	}
}

func TestSetDutyPercent(t *testing.T) {
	periph := &fakePeriph{period: 200}
	pwm := New(periph)

	if err := pwm.SetDutyPercent(25); err != nil {
		t.Fatalf("SetDutyPercent(25) = %v", err)
	}
	if periph.duty != 50 {
		t.Errorf("duty = %d, want 50", periph.duty)
	}
	if err := pwm.SetDutyPercent(101); !errors.Is(err, pkg.ErrInvalidArgument) {
		t.Errorf("SetDutyPercent(101) = %v, want invalid argument", err)
	}
}

func TestEnableAndPolarity(t *testing.T) {
	periph := &fakePeriph{period: 100}
	pwm := New(periph)

	pwm.Enable(true)
	if !pwm.Enabled() {
		t.Error("channel not enabled")
	}
	pwm.SetInverted(true)
	if !pwm.Inverted() {
		t.Error("polarity not inverted")
	}
	pwm.Enable(false)
	if pwm.Enabled() {
		t.Error("channel still enabled")
	}
}

func TestMaxDutyTracksPeriod(t *testing.T) {
	periph := &fakePeriph{period: 321}
	pwm := New(periph)
	if got := pwm.MaxDuty(); got != 321 {
		t.Errorf("MaxDuty() = %d, want 321", got)
	}
}
