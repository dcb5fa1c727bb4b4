// Package spi drives the ARM PL022 synchronous serial peripherals of
// JH71xx SoCs in polled master mode.
//
// Transfers are full duplex: every word clocked out clocks one word in,
// and both FIFOs are drained in lockstep. Status conditions are polled
// against a bounded busy-wait budget; there is no interrupt-driven path.
package spi

import (
	"fmt"

	"github.com/ardnew/jh71xx/delay"
	"github.com/ardnew/jh71xx/pkg"
)

// Polling parameters for FIFO status conditions.
const (
	pollStepUs   = 10
	pollBudgetUs = 100
)

// Word sizes supported for transfers. The peripheral can frame 4 to 16
// bits, but the byte-oriented transfer surface uses 8-bit words.
const (
	Word8  uint8 = 8
	Word16 uint8 = 16
)

// FrameFormat selects the serial frame protocol.
type FrameFormat uint8

// Frame formats.
const (
	// FrameSPI is the Motorola SPI format.
	FrameSPI FrameFormat = 0b00
	// FrameSyncSerial is the TI synchronous serial format.
	FrameSyncSerial FrameFormat = 0b01
	// FrameMicrowire is the National Microwire format.
	FrameMicrowire FrameFormat = 0b10
)

// Mode is a standard SPI clock mode: polarity in bit 1, phase in bit 0.
type Mode uint8

// Clock modes.
const (
	Mode0 Mode = 0b00
	Mode1 Mode = 0b01
	Mode2 Mode = 0b10
	Mode3 Mode = 0b11
)

// Polarity reports the idle clock level of the mode.
func (m Mode) Polarity() bool { return m&0b10 != 0 }

// Phase reports whether data is sampled on the trailing clock edge.
func (m Mode) Phase() bool { return m&0b01 != 0 }

// Peripheral is the register access capability for one PL022 instance.
// The serial clock runs at F(sspclk) / (Prescale * (1 + ClockRate)).
type Peripheral interface {
	// DataSize accesses the frame size in bits (4 to 16).
	DataSize() uint8
	SetDataSize(bits uint8)

	// FrameFormat accesses the frame protocol selection.
	FrameFormat() FrameFormat
	SetFrameFormat(FrameFormat)

	// ClockPolarity and ClockPhase access the SPI clock mode bits.
	ClockPolarity() bool
	SetClockPolarity(bool)
	ClockPhase() bool
	SetClockPhase(bool)

	// ClockRate accesses the serial clock rate field (SCR).
	ClockRate() uint8
	SetClockRate(uint8)

	// Prescale accesses the clock prescale divisor (CPSDVSR), an even
	// value in [2,254].
	Prescale() uint8
	SetPrescale(uint8)

	// SetMaster selects master (true) or slave operation.
	SetMaster(bool)

	// Data pops one received word; SetData pushes one word to transmit.
	// Words narrower than 16 bits are right-justified.
	Data() uint16
	SetData(uint16)

	// FIFO and peripheral status flags.
	TxEmpty() bool
	TxNotFull() bool
	RxNotEmpty() bool
	RxFull() bool
	Busy() bool

	// RxOverrun and RxTimeout report the masked receive fault
	// conditions; the Clear methods acknowledge them.
	RxOverrun() bool
	ClearRxOverrun()
	RxTimeout() bool
	ClearRxTimeout()
}

// Config carries the transfer parameters programmed at construction.
type Config struct {
	// Word is the frame size in bits; Word8 or Word16.
	Word uint8
	// Mode is the SPI clock mode.
	Mode Mode
	// Frame is the serial frame protocol; the byte transfer surface
	// assumes FrameSPI.
	Frame FrameFormat
	// ClockRate and Prescale set the serial clock divisor.
	ClockRate uint8
	Prescale  uint8
}

// SPI is a polled master over one PL022 instance.
type SPI struct {
	periph Peripheral
	delay  delay.Delayer
	word   uint8
}

// New configures the peripheral for master operation and returns the
// transfer handle. Only 8- and 16-bit words are accepted.
func New(p Peripheral, d delay.Delayer, cfg Config) (*SPI, error) {
	if cfg.Word != Word8 && cfg.Word != Word16 {
		return nil, fmt.Errorf("word size %d bits: %w", cfg.Word, pkg.ErrNotSupported)
	}

	p.SetMaster(true)
	p.SetDataSize(cfg.Word)
	p.SetFrameFormat(cfg.Frame)
	p.SetClockPolarity(cfg.Mode.Polarity())
	p.SetClockPhase(cfg.Mode.Phase())
	p.SetClockRate(cfg.ClockRate)
	p.SetPrescale(normalizePrescale(cfg.Prescale))

	return &SPI{periph: p, delay: d, word: cfg.Word}, nil
}

// normalizePrescale clamps a prescale divisor to the register's valid
// range: even values in [2,254]. Odd values round up.
func normalizePrescale(v uint8) uint8 {
	switch {
	case v < 2:
		return 2
	case v == 255:
		return 254
	case v%2 != 0:
		return v + 1
	default:
		return v
	}
}

func (s *SPI) poll(cond func() bool) error {
	var elapsed uint32
	for elapsed <= pollBudgetUs {
		if cond() {
			return nil
		}
		s.delay.DelayUs(pollStepUs)
		elapsed += pollStepUs
	}
	return pkg.ErrTimeout
}

// readWord waits for a received word, surfacing receive faults as they
// are observed.
func (s *SPI) readWord() (uint16, error) {
	var fault error
	err := s.poll(func() bool {
		switch {
		case s.periph.RxTimeout():
			s.periph.ClearRxTimeout()
			fault = fmt.Errorf("receive: %w", pkg.ErrTimeout)
		case s.periph.RxOverrun():
			s.periph.ClearRxOverrun()
			fault = fmt.Errorf("receive: %w", pkg.ErrOverrun)
		}
		return fault != nil || s.periph.RxNotEmpty()
	})
	if fault != nil {
		return 0, fault
	}
	if err != nil {
		return 0, fmt.Errorf("receive: %w", err)
	}
	return s.periph.Data(), nil
}

func (s *SPI) writeWord(w uint16) error {
	if err := s.poll(s.periph.TxNotFull); err != nil {
		return fmt.Errorf("transmit: %w", err)
	}
	s.periph.SetData(w)
	return nil
}

// Transfer clocks one byte out and returns the byte clocked in.
func (s *SPI) Transfer(b byte) (byte, error) {
	if err := s.writeWord(uint16(b)); err != nil {
		return 0, err
	}
	v, err := s.readWord()
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

// Tx performs a full-duplex transfer: w is clocked out while r fills
// with the received bytes. When one buffer is shorter than the other,
// the excess transmits zero padding or discards extra receives. Either
// buffer may be nil.
func (s *SPI) Tx(w, r []byte) error {
	n := max(len(w), len(r))
	for k := 0; k < n; k++ {
		var out byte
		if k < len(w) {
			out = w[k]
		}
		v, err := s.Transfer(out)
		if err != nil {
			return err
		}
		if k < len(r) {
			r[k] = v
		}
	}
	return nil
}

// Read fills buf from the bus, clocking out zeros.
func (s *SPI) Read(buf []byte) error { return s.Tx(nil, buf) }

// Write clocks buf out, discarding received bytes.
func (s *SPI) Write(buf []byte) error { return s.Tx(buf, nil) }

// Flush acknowledges pending receive faults, drains the receive FIFO,
// and waits for the peripheral to go idle.
func (s *SPI) Flush() error {
	s.periph.ClearRxOverrun()
	s.periph.ClearRxTimeout()

	for s.periph.RxNotEmpty() {
		_ = s.periph.Data()
	}

	err := s.poll(func() bool {
		return s.periph.TxEmpty() && !s.periph.Busy()
	})
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
