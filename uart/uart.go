// Package uart drives the DW_apb_uart serial ports of JH71xx SoCs in
// polled mode, exposing the standard io.Reader and io.Writer surfaces.
package uart

import (
	"fmt"

	"github.com/ardnew/jh71xx/delay"
	"github.com/ardnew/jh71xx/pkg"
)

// Peripheral clocking.
const (
	// APB0Hz is the APB0 bus clock feeding the UART baud generator.
	APB0Hz = 50_000_000
	// OscHz is the core clock oscillator frequency.
	OscHz = 24_000_000
	// fixedDivisor is the hardware's fixed baud divider: baud equals
	// clock / (fixedDivisor * divisor-latch value).
	fixedDivisor = 16
)

// Polling parameters. Byte transfers poll line status every pollStepUs
// microseconds against the configured transaction budget.
const (
	pollStepUs = 10
	// DefaultTimeoutUs is the per-byte transaction budget.
	DefaultTimeoutUs = 1_000_000
)

// Lcr is the line control register bitfield.
type Lcr uint32

// LCR bits.
const (
	// LcrWordLenMask covers the data length select field.
	LcrWordLenMask Lcr = 0b11
	// LcrStop selects two (or 1.5) stop bits.
	LcrStop Lcr = 1 << 2
	// LcrParityEnable enables parity generation and checking.
	LcrParityEnable Lcr = 1 << 3
	// LcrEvenParity selects even parity when parity is enabled.
	LcrEvenParity Lcr = 1 << 4
	// LcrDlab exposes the divisor latch registers in place of the data
	// registers.
	LcrDlab Lcr = 1 << 7
)

// Mcr is the modem control register bitfield.
type Mcr uint32

// MCR bits.
const (
	// McrAutoFlow enables automatic RTS/CTS flow control.
	McrAutoFlow Mcr = 1 << 5
)

// Fcr is the FIFO control register bitfield. Write-only in hardware.
type Fcr uint32

// FCR bits.
const (
	// FcrEnable enables the transmit and receive FIFOs.
	FcrEnable Fcr = 1 << 0
	// FcrRxReset flushes the receive FIFO.
	FcrRxReset Fcr = 1 << 1
	// FcrTxReset flushes the transmit FIFO.
	FcrTxReset Fcr = 1 << 2
	// FcrDmaMode selects DMA transfer mode 1.
	FcrDmaMode Fcr = 1 << 3
	// FcrRxTrigger8 raises the receive data request at the 8th byte.
	FcrRxTrigger8 Fcr = 0b10 << 6
)

// Ier is the interrupt enable register bitfield.
type Ier uint32

// IER bits.
const (
	// IerThreMode enables the programmable THRE interrupt mode.
	IerThreMode Ier = 1 << 7
)

// Lsr is the line status register bitfield.
type Lsr uint32

// LSR bits.
const (
	// LsrDataReady indicates at least one received byte is available.
	LsrDataReady Lsr = 1 << 0
	// LsrOverrun indicates a receive overrun.
	LsrOverrun Lsr = 1 << 1
	// LsrParityErr indicates a parity error on the received byte.
	LsrParityErr Lsr = 1 << 2
	// LsrFramingErr indicates a framing error on the received byte.
	LsrFramingErr Lsr = 1 << 3
	// LsrTxHoldEmpty indicates the transmit holding register is empty.
	LsrTxHoldEmpty Lsr = 1 << 5
	// LsrTxEmpty indicates the transmitter is completely idle.
	LsrTxEmpty Lsr = 1 << 6
)

// IsSet reports whether every bit of f is set in l.
func (l Lsr) IsSet(f Lsr) bool { return l&f == f }

// Registers is the register access capability for one DW_apb_uart
// instance. The divisor latch registers share addresses with the data
// and interrupt registers; callers sequence access through the LCR DLAB
// bit.
type Registers interface {
	// Rbr pops one byte from the receive FIFO.
	Rbr() uint8
	// SetThr pushes one byte to the transmit FIFO.
	SetThr(uint8)

	// SetDll and SetDlh program the divisor latch. Valid only while
	// DLAB is set.
	SetDll(uint8)
	SetDlh(uint8)

	// Lcr accesses the line control register.
	Lcr() Lcr
	SetLcr(Lcr)

	// Mcr accesses the modem control register.
	Mcr() Mcr
	SetMcr(Mcr)

	// SetFcr writes the FIFO control register.
	SetFcr(Fcr)

	// Ier accesses the interrupt enable register.
	Ier() Ier
	SetIer(Ier)

	// Lsr reads the line status register.
	Lsr() Lsr

	// Busy reads the UART status register's busy flag.
	Busy() bool
}

// WordLength selects the data length in bits per frame. The zero value
// is the conventional 8-bit frame.
type WordLength uint8

// Data lengths.
const (
	Word8 WordLength = iota
	Word5
	Word6
	Word7
)

// bits returns the LCR data length select field value.
func (w WordLength) bits() Lcr {
	switch w {
	case Word5:
		return 0b00
	case Word6:
		return 0b01
	case Word7:
		return 0b10
	default:
		return 0b11
	}
}

// Parity selects the parity bit policy.
type Parity uint8

// Parity policies.
const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// StopBits selects the number of stop bits per frame.
type StopBits uint8

// Stop bit counts. StopTwo sends 1.5 stop bits for 5-bit words.
const (
	StopOne StopBits = iota
	StopTwo
)

// Config carries the line parameters programmed at construction. The
// zero value of each field selects the conventional 115200-8-N-1 setup
// on the APB0 clock.
type Config struct {
	// BaudRate in bits per second; 0 means 115200.
	BaudRate uint32
	// ClockHz is the baud generator input clock; 0 means APB0Hz.
	ClockHz uint32

	WordLength WordLength
	Parity     Parity
	StopBits   StopBits
}

// Divisor returns the value programmed into the divisor latch for the
// configured baud rate and clock.
func (c Config) Divisor() uint16 {
	baud := c.BaudRate
	if baud == 0 {
		baud = 115_200
	}
	clock := c.ClockHz
	if clock == 0 {
		clock = APB0Hz
	}
	return uint16(clock / fixedDivisor / baud)
}

func (c Config) lcr() Lcr {
	v := c.WordLength.bits() & LcrWordLenMask
	if c.StopBits == StopTwo {
		v |= LcrStop
	}
	switch c.Parity {
	case ParityOdd:
		v |= LcrParityEnable
	case ParityEven:
		v |= LcrParityEnable | LcrEvenParity
	}
	return v
}

// UART is a polled serial port over one DW_apb_uart instance. It
// implements io.Reader and io.Writer.
type UART struct {
	regs      Registers
	delay     delay.Delayer
	timeoutUs uint32
	cfg       Config
}

// New programs the line parameters and returns the port. The divisor
// latch is only programmed once the peripheral reports idle; a
// peripheral that stays busy past the transaction budget is an error.
func New(regs Registers, d delay.Delayer, cfg Config) (*UART, error) {
	u := &UART{
		regs:      regs,
		delay:     d,
		timeoutUs: DefaultTimeoutUs,
		cfg:       cfg,
	}

	if err := u.poll(func() bool { return !regs.Busy() }); err != nil {
		return nil, fmt.Errorf("configure line: %w", err)
	}

	div := cfg.Divisor()
	regs.SetLcr(regs.Lcr() | LcrDlab)
	regs.SetDll(uint8(div))
	regs.SetDlh(uint8(div >> 8))
	regs.SetLcr(cfg.lcr())

	regs.SetMcr(regs.Mcr() &^ McrAutoFlow)
	regs.SetFcr(FcrEnable | FcrRxTrigger8 | FcrRxReset | FcrTxReset)
	regs.SetIer(regs.Ier() &^ IerThreMode)

	return u, nil
}

// Timeout returns the per-byte transaction budget in microseconds.
func (u *UART) Timeout() uint32 { return u.timeoutUs }

// SetTimeout replaces the per-byte transaction budget. Zero is ignored.
func (u *UART) SetTimeout(us uint32) {
	if us > 0 {
		u.timeoutUs = us
	}
}

// Config returns the configured line parameters.
func (u *UART) Config() Config { return u.cfg }

func (u *UART) poll(cond func() bool) error {
	var elapsed uint32
	for elapsed <= u.timeoutUs {
		if cond() {
			return nil
		}
		u.delay.DelayUs(pollStepUs)
		elapsed += pollStepUs
	}
	return pkg.ErrTimeout
}

// lineError maps receive fault bits to the shared sentinels.
func lineError(lsr Lsr) error {
	switch {
	case lsr.IsSet(LsrOverrun):
		return pkg.ErrOverrun
	case lsr.IsSet(LsrFramingErr):
		return pkg.ErrFraming
	case lsr.IsSet(LsrParityErr):
		return pkg.ErrParity
	default:
		return nil
	}
}

// ReadByte blocks until one byte arrives or the transaction budget
// expires.
func (u *UART) ReadByte() (byte, error) {
	var fault error
	err := u.poll(func() bool {
		lsr := u.regs.Lsr()
		if fault = lineError(lsr); fault != nil {
			return true
		}
		return lsr.IsSet(LsrDataReady)
	})
	if fault != nil {
		return 0, fmt.Errorf("read: %w", fault)
	}
	if err != nil {
		return 0, fmt.Errorf("read: %w", err)
	}
	return u.regs.Rbr(), nil
}

// WriteByte blocks until the transmit holding register accepts the
// byte or the transaction budget expires.
func (u *UART) WriteByte(b byte) error {
	err := u.poll(func() bool {
		return u.regs.Lsr().IsSet(LsrTxHoldEmpty)
	})
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	u.regs.SetThr(b)
	return nil
}

// Read implements io.Reader: it blocks for the first byte, then keeps
// reading without blocking while more bytes are immediately available.
func (u *UART) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b, err := u.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b

	n := 1
	for n < len(p) && u.regs.Lsr().IsSet(LsrDataReady) {
		p[n] = u.regs.Rbr()
		n++
	}
	return n, nil
}

// Write implements io.Writer.
func (u *UART) Write(p []byte) (int, error) {
	for n, b := range p {
		if err := u.WriteByte(b); err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// Flush blocks until the transmitter is completely idle.
func (u *UART) Flush() error {
	err := u.poll(func() bool {
		return u.regs.Lsr().IsSet(LsrTxEmpty)
	})
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
