// Package gpio configures pads of the JH71xx system pin controller:
// function multiplexing, input and output enables, pull selection, pad
// electrical characteristics, and direct level access.
//
// Every operation is a stateless register read/modify/write through the
// [Pinctrl] capability. Nothing here carries cross-call state; a [Pin] is
// just a pad number bound to a pin controller.
package gpio

import (
	"fmt"

	"github.com/ardnew/jh71xx/pkg"
)

// Pad is a pad number of the system pin controller. Pads 0 through 63
// are general-purpose pins; higher numbers name dedicated pads (SD card,
// QSPI) that support pad configuration but not level access.
type Pad uint8

// Pad number ranges.
const (
	// MaxGpioPad is the highest pad with general-purpose level access.
	MaxGpioPad Pad = 63
	// MaxSDPad is the highest SD-card pad.
	MaxSDPad Pad = 74
	// MinQSPIPad and MaxQSPIPad bound the QSPI pad range.
	MinQSPIPad Pad = 89
	MaxQSPIPad Pad = 94
)

// Valid reports whether p names an existing pad.
func (p Pad) Valid() bool {
	return p <= MaxSDPad || (p >= MinQSPIPad && p <= MaxQSPIPad)
}

// Pad configuration register bits.
const (
	// CfgInputEnable enables the pad's input path.
	CfgInputEnable uint32 = 1 << 0
	// CfgDriveStrengthMask covers the output drive-strength field.
	CfgDriveStrengthMask uint32 = 0b11 << 1
	// CfgPullUp enables the pad pull-up.
	CfgPullUp uint32 = 1 << 3
	// CfgPullDown enables the pad pull-down.
	CfgPullDown uint32 = 1 << 4
	// CfgSlewFast selects the fast slew rate.
	CfgSlewFast uint32 = 1 << 5
	// CfgSchmitt enables the Schmitt trigger hysteresis.
	CfgSchmitt uint32 = 1 << 6
	// CfgPowerOnStart enables active pull-down on loss of core power.
	CfgPowerOnStart uint32 = 1 << 7
)

const cfgDriveStrengthShift = 1

// DriveStrength is the rated output drive strength of a pad.
type DriveStrength uint8

// Drive strength values in milliamps.
const (
	Drive2mA  DriveStrength = 0b00
	Drive4mA  DriveStrength = 0b01
	Drive8mA  DriveStrength = 0b10
	Drive12mA DriveStrength = 0b11
)

// Pull selects the pad's input termination.
type Pull uint8

// Input termination modes.
const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// OutputSignal selects the source driven onto a pad through the output
// multiplexer. Values 0 and 1 drive a constant level; higher values
// route a peripheral output signal.
type OutputSignal uint8

// Output multiplexer sources.
const (
	SignalLow  OutputSignal = 0
	SignalHigh OutputSignal = 1

	SignalI2C0Clk  OutputSignal = 14
	SignalI2C0Data OutputSignal = 15
	SignalUart0Tx  OutputSignal = 20
	SignalPwm0     OutputSignal = 24
	SignalPwm1     OutputSignal = 25
	SignalPwm2     OutputSignal = 26
	SignalPwm3     OutputSignal = 27
	SignalSpi0Clk  OutputSignal = 30
	SignalSpi0CS   OutputSignal = 31
	SignalSpi0Tx   OutputSignal = 32
	SignalI2C1Clk  OutputSignal = 51
	SignalI2C1Data OutputSignal = 52
	SignalI2C2Clk  OutputSignal = 76
	SignalI2C2Data OutputSignal = 77
)

// InputSignal selects a peripheral input to route a pad into. The
// [Pinctrl] implementation maps each selector to its input multiplexer
// register.
type InputSignal uint8

// Input multiplexer destinations.
const (
	SignalI2C0ClkIn InputSignal = iota
	SignalI2C0DataIn
	SignalI2C1ClkIn
	SignalI2C1DataIn
	SignalUart0Rx
	SignalSpi0Rx
)

// Output-enable multiplexer values. Zero enables the pad's output
// driver; one disables it. Higher values delegate the enable to a
// peripheral signal.
const (
	doenEnabled  uint32 = 0
	doenDisabled uint32 = 1
)

// Four pads share each output-enable and output-value register, eight
// bits per pad.
const (
	padsPerMuxWord  = 4
	muxFieldBits    = 8
	muxFieldMask    = 0xFF
	padsPerLevelReg = 32
)

// Pinctrl is the register access capability for the system pin
// controller. Doen, Dout, and Din operate on whole register words; the
// per-pad field arithmetic lives here, not in implementations.
type Pinctrl interface {
	// PadCfg accesses the per-pad configuration register.
	PadCfg(pad Pad) uint32
	SetPadCfg(pad Pad, v uint32)

	// Doen accesses the output-enable multiplexer word at index.
	Doen(index uint32) uint32
	SetDoen(index uint32, v uint32)

	// Dout accesses the output-value multiplexer word at index.
	Dout(index uint32) uint32
	SetDout(index uint32, v uint32)

	// Din reads the synchronized input-level word at index. Word 0
	// covers pads 0-31, word 1 covers pads 32-63.
	Din(index uint32) uint32

	// Gpi accesses the input multiplexer register for signal.
	Gpi(signal InputSignal) uint32
	SetGpi(signal InputSignal, v uint32)
}

// Pin binds one pad to a pin controller.
type Pin struct {
	ctrl Pinctrl
	pad  Pad
}

// New returns a Pin for pad, or an error if the pad does not exist.
func New(ctrl Pinctrl, pad Pad) (Pin, error) {
	if !pad.Valid() {
		return Pin{}, fmt.Errorf("pad %d: %w", pad, pkg.ErrInvalidArgument)
	}
	return Pin{ctrl: ctrl, pad: pad}, nil
}

// Pad returns the pin's pad number.
func (p Pin) Pad() Pad { return p.pad }

func muxField(pad Pad) (index uint32, shift uint32) {
	return uint32(pad) / padsPerMuxWord,
		(uint32(pad) % padsPerMuxWord) * muxFieldBits
}

func (p Pin) setDoen(v uint32) {
	index, shift := muxField(p.pad)
	word := p.ctrl.Doen(index)
	word = word&^(muxFieldMask<<shift) | v<<shift
	p.ctrl.SetDoen(index, word)
}

func (p Pin) setDout(v uint32) {
	index, shift := muxField(p.pad)
	word := p.ctrl.Dout(index)
	word = word&^(muxFieldMask<<shift) | v<<shift
	p.ctrl.SetDout(index, word)
}

func (p Pin) modifyCfg(set, clear uint32) {
	cfg := p.ctrl.PadCfg(p.pad)
	p.ctrl.SetPadCfg(p.pad, cfg&^clear|set)
}

// EnableInput enables or disables the pad's input path.
func (p Pin) EnableInput(enable bool) {
	if enable {
		p.modifyCfg(CfgInputEnable, 0)
	} else {
		p.modifyCfg(0, CfgInputEnable)
	}
}

// InputEnabled reports whether the pad's input path is enabled.
func (p Pin) InputEnabled() bool {
	return p.ctrl.PadCfg(p.pad)&CfgInputEnable != 0
}

// EnableOutput connects the pad's output driver to a constant-low
// source. Level changes go through [Pin.Set].
func (p Pin) EnableOutput() {
	p.setDoen(doenEnabled)
	p.setDout(uint32(SignalLow))
}

// DisableOutput places the pad's output driver in the disabled state.
func (p Pin) DisableOutput() {
	p.setDoen(doenDisabled)
}

// Set drives the pad high or low. The pad's output must be enabled.
func (p Pin) Set(high bool) {
	if high {
		p.setDout(uint32(SignalHigh))
	} else {
		p.setDout(uint32(SignalLow))
	}
}

// High drives the pad high.
func (p Pin) High() { p.Set(true) }

// Low drives the pad low.
func (p Pin) Low() { p.Set(false) }

// Get reads the pad's synchronized input level. Only pads 0-63 have
// level access; higher pads always read low.
func (p Pin) Get() bool {
	if p.pad > MaxGpioPad {
		return false
	}
	word := uint32(p.pad) / padsPerLevelReg
	bit := uint32(p.pad) % padsPerLevelReg
	return p.ctrl.Din(word)>>bit&1 != 0
}

// SetPull configures the pad's input termination. PullNone selects
// high-impedance.
func (p Pin) SetPull(pull Pull) {
	switch pull {
	case PullUp:
		p.modifyCfg(CfgPullUp, CfgPullDown)
	case PullDown:
		p.modifyCfg(CfgPullDown, CfgPullUp)
	default:
		p.modifyCfg(0, CfgPullUp|CfgPullDown)
	}
}

// GetPull returns the pad's configured input termination.
func (p Pin) GetPull() Pull {
	cfg := p.ctrl.PadCfg(p.pad)
	switch {
	case cfg&CfgPullUp != 0:
		return PullUp
	case cfg&CfgPullDown != 0:
		return PullDown
	default:
		return PullNone
	}
}

// SetDriveStrength configures the pad's rated output drive strength.
func (p Pin) SetDriveStrength(ds DriveStrength) {
	p.modifyCfg(uint32(ds)<<cfgDriveStrengthShift, CfgDriveStrengthMask)
}

// GetDriveStrength returns the pad's rated output drive strength.
func (p Pin) GetDriveStrength() DriveStrength {
	cfg := p.ctrl.PadCfg(p.pad)
	return DriveStrength(cfg & CfgDriveStrengthMask >> cfgDriveStrengthShift)
}

// EnableSchmitt enables or disables the pad's Schmitt trigger
// hysteresis.
func (p Pin) EnableSchmitt(enable bool) {
	if enable {
		p.modifyCfg(CfgSchmitt, 0)
	} else {
		p.modifyCfg(0, CfgSchmitt)
	}
}

// SetFastSlew selects between the fast and slow slew rates.
func (p Pin) SetFastSlew(fast bool) {
	if fast {
		p.modifyCfg(CfgSlewFast, 0)
	} else {
		p.modifyCfg(0, CfgSlewFast)
	}
}

// ConnectOutput routes a peripheral output signal onto the pad and
// enables its output driver.
func (p Pin) ConnectOutput(signal OutputSignal) {
	p.setDout(uint32(signal))
	p.setDoen(doenEnabled)
}

// ConnectInput routes the pad into a peripheral input. Input
// multiplexer values 0 and 1 mean constant low and high, so pad numbers
// are offset by two.
func (p Pin) ConnectInput(signal InputSignal) {
	p.ctrl.SetGpi(signal, uint32(p.pad)+2)
	p.modifyCfg(CfgInputEnable, 0)
}
