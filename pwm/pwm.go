// Package pwm controls the PTC pulse-width modulation peripheral of
// JH71xx SoCs: period and duty-cycle programming, output enable, and
// output polarity. All operations are stateless register accesses
// through the [Peripheral] capability.
package pwm

import (
	"fmt"

	"github.com/ardnew/jh71xx/pkg"
)

// MaxPeriod is the largest period value exposed by this surface, in
// peripheral clock cycles.
const MaxPeriod uint32 = 0xFFFF

// Peripheral is the register access capability for one PTC channel.
type Peripheral interface {
	// Period accesses the counter reload value in clock cycles.
	Period() uint32
	SetPeriod(uint32)

	// Duty accesses the high-phase length in clock cycles.
	Duty() uint32
	SetDuty(uint32)

	// Enabled reports whether the counter runs and the output driver
	// is on; Enable sets both together.
	Enabled() bool
	Enable(bool)

	// Inverted accesses the output polarity.
	Inverted() bool
	SetInverted(bool)
}

// PWM wraps one PTC channel.
type PWM struct {
	periph Peripheral
}

// New returns a handle for the channel, clamping a hardware period
// beyond [MaxPeriod] down to it.
func New(p Peripheral) *PWM {
	if p.Period() > MaxPeriod {
		p.SetPeriod(MaxPeriod)
	}
	return &PWM{periph: p}
}

// Period returns the configured period in clock cycles.
func (p *PWM) Period() uint16 {
	return uint16(p.periph.Period() & MaxPeriod)
}

// SetPeriod programs the period in clock cycles. A duty cycle beyond
// the new period is clamped down to it.
func (p *PWM) SetPeriod(period uint16) {
	p.periph.SetPeriod(uint32(period))
	if p.periph.Duty() > uint32(period) {
		p.periph.SetDuty(uint32(period))
	}
}

// Duty returns the configured high-phase length in clock cycles.
func (p *PWM) Duty() uint16 {
	return uint16(p.periph.Duty() & MaxPeriod)
}

// SetDuty programs the high-phase length. The duty must not exceed the
// configured period.
func (p *PWM) SetDuty(duty uint16) error {
	period := p.periph.Period()
	if uint32(duty) > period {
		return fmt.Errorf("duty %d exceeds period %d: %w", duty, period, pkg.ErrInvalidArgument)
	}
	p.periph.SetDuty(uint32(duty))
	return nil
}

// MaxDuty returns the largest duty value accepted by [PWM.SetDuty],
// which equals the configured period.
func (p *PWM) MaxDuty() uint16 { return p.Period() }

// SetDutyPercent programs the duty as a percentage of the period.
func (p *PWM) SetDutyPercent(percent uint8) error {
	if percent > 100 {
		return fmt.Errorf("duty %d%%: %w", percent, pkg.ErrInvalidArgument)
	}
	duty := uint32(p.Period()) * uint32(percent) / 100
	return p.SetDuty(uint16(duty))
}

// Enabled reports whether the channel is running with its output
// driver on.
func (p *PWM) Enabled() bool { return p.periph.Enabled() }

// Enable starts or stops the channel, driving or releasing the output.
func (p *PWM) Enable(on bool) { p.periph.Enable(on) }

// Inverted reports the output polarity.
func (p *PWM) Inverted() bool { return p.periph.Inverted() }

// SetInverted selects the output polarity.
func (p *PWM) SetInverted(inverted bool) { p.periph.SetInverted(inverted) }
