// Package remote implements the [hal.Registers] capability over a serial
// link to a debug monitor running on the target.
//
// It exists for bench bring-up: the transaction engine runs unmodified on
// a development host while every register access is tunneled to the SoC
// through a small framed protocol. The monitor applies the received
// register offset to the controller base address and performs the access.
//
// Because [hal.Registers] accessors carry no error returns, transport
// failures are logged and surfaced through [Conn.Err]; reads after a
// transport failure return zero until the error is cleared.
package remote

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"

	"github.com/ardnew/jh71xx/i2c/hal"
	"github.com/ardnew/jh71xx/pkg"
)

// Wire opcodes.
const (
	opRead  = 0x52 // 'R'
	opWrite = 0x57 // 'W'
)

// Wire response codes.
const (
	respAck = 0x06
	respNak = 0x15
)

// DW_apb_i2c register offsets used as wire register identifiers. The
// monitor adds them to the controller base address.
const (
	regCon          = 0x00
	regTar          = 0x04
	regSar          = 0x08
	regDataCmd      = 0x10
	regStdSclHcnt   = 0x14
	regStdSclLcnt   = 0x18
	regFastSclHcnt  = 0x1C
	regFastSclLcnt  = 0x20
	regHighSclHcnt  = 0x24
	regHighSclLcnt  = 0x28
	regIntrStat     = 0x2C
	regIntrMask     = 0x30
	regRawIntrStat  = 0x34
	regRxTL         = 0x38
	regTxTL         = 0x3C
	regClrIntr      = 0x40
	regClrRxUnder   = 0x44
	regClrRxOver    = 0x48
	regClrTxOver    = 0x4C
	regClrRdReq     = 0x50
	regClrTxAbrt    = 0x54
	regClrRxDone    = 0x58
	regClrActivity  = 0x5C
	regClrStopDet   = 0x60
	regClrStartDet  = 0x64
	regClrGenCall   = 0x68
	regEnable       = 0x6C
	regTxFLR        = 0x74
	regRxFLR        = 0x78
	regSdaHold      = 0x7C
	regTxAbrtSource = 0x80
	regEnableStatus = 0x9C
	regCompParam1   = 0xF4
)

// Conn tunnels register accesses over a serial transport.
type Conn struct {
	mu  sync.Mutex
	rw  io.ReadWriter
	err error
}

// Open opens the named serial device at the given baud rate and returns a
// Conn over it.
func Open(device string, baud int) (*Conn, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return New(port), nil
}

// New creates a Conn over an existing transport. Useful for tests and for
// transports other than a local serial port.
func New(rw io.ReadWriter) *Conn {
	return &Conn{rw: rw}
}

// Err returns the first transport error since the last call to ClearErr.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// ClearErr discards the recorded transport error.
func (c *Conn) ClearErr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
}

func (c *Conn) fail(what string, reg uint8, err error) {
	if c.err == nil {
		c.err = fmt.Errorf("%s reg %#02x: %w", what, reg, err)
	}
	pkg.LogError(pkg.ComponentHAL, "remote register access failed",
		"op", what, "reg", fmt.Sprintf("%#02x", reg), "err", err)
}

// read performs one framed register read. Returns zero after a transport
// failure.
func (c *Conn) read(reg uint8) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0
	}

	req := [6]byte{opRead, reg}
	if _, err := c.rw.Write(req[:]); err != nil {
		c.fail("read", reg, err)
		return 0
	}

	var resp [5]byte
	if _, err := io.ReadFull(c.rw, resp[:]); err != nil {
		c.fail("read", reg, err)
		return 0
	}
	if resp[0] != respAck {
		c.fail("read", reg, fmt.Errorf("monitor response %#02x: %w", resp[0], pkg.ErrBus))
		return 0
	}
	return binary.LittleEndian.Uint32(resp[1:])
}

// write performs one framed register write.
func (c *Conn) write(reg uint8, val uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return
	}

	var req [6]byte
	req[0] = opWrite
	req[1] = reg
	binary.LittleEndian.PutUint32(req[2:], val)
	if _, err := c.rw.Write(req[:]); err != nil {
		c.fail("write", reg, err)
		return
	}

	var resp [5]byte
	if _, err := io.ReadFull(c.rw, resp[:]); err != nil {
		c.fail("write", reg, err)
		return
	}
	if resp[0] != respAck {
		c.fail("write", reg, fmt.Errorf("monitor response %#02x: %w", resp[0], pkg.ErrBus))
	}
}

func (c *Conn) Con() hal.Con            { return hal.ConFromBits(c.read(regCon)) }
func (c *Conn) SetCon(v hal.Con)        { c.write(regCon, v.Bits()) }
func (c *Conn) Tar() hal.Tar            { return hal.TarFromBits(c.read(regTar)) }
func (c *Conn) SetTar(v hal.Tar)        { c.write(regTar, v.Bits()) }
func (c *Conn) Sar() hal.Sar            { return hal.SarFromBits(c.read(regSar)) }
func (c *Conn) SetSar(v hal.Sar)        { c.write(regSar, v.Bits()) }
func (c *Conn) TxTL() uint32            { return c.read(regTxTL) }
func (c *Conn) SetTxTL(v uint32)        { c.write(regTxTL, v) }
func (c *Conn) RxTL() uint32            { return c.read(regRxTL) }
func (c *Conn) SetRxTL(v uint32)        { c.write(regRxTL, v) }
func (c *Conn) StdSclHcnt() uint32      { return c.read(regStdSclHcnt) }
func (c *Conn) SetStdSclHcnt(v uint32)  { c.write(regStdSclHcnt, v) }
func (c *Conn) StdSclLcnt() uint32      { return c.read(regStdSclLcnt) }
func (c *Conn) SetStdSclLcnt(v uint32)  { c.write(regStdSclLcnt, v) }
func (c *Conn) FastSclHcnt() uint32     { return c.read(regFastSclHcnt) }
func (c *Conn) SetFastSclHcnt(v uint32) { c.write(regFastSclHcnt, v) }
func (c *Conn) FastSclLcnt() uint32     { return c.read(regFastSclLcnt) }
func (c *Conn) SetFastSclLcnt(v uint32) { c.write(regFastSclLcnt, v) }
func (c *Conn) HighSclHcnt() uint32     { return c.read(regHighSclHcnt) }
func (c *Conn) SetHighSclHcnt(v uint32) { c.write(regHighSclHcnt, v) }
func (c *Conn) HighSclLcnt() uint32     { return c.read(regHighSclLcnt) }
func (c *Conn) SetHighSclLcnt(v uint32) { c.write(regHighSclLcnt, v) }
func (c *Conn) SdaHold() uint32         { return c.read(regSdaHold) }
func (c *Conn) SetSdaHold(v uint32)     { c.write(regSdaHold, v) }

func (c *Conn) RawIntrStat() hal.RawInterruptStatus {
	return hal.RawInterruptStatusFromBits(c.read(regRawIntrStat))
}

func (c *Conn) IntrStat() hal.InterruptStatus {
	return hal.InterruptStatusFromBits(c.read(regIntrStat))
}

func (c *Conn) IntrMask() hal.InterruptMask {
	return hal.InterruptMaskFromBits(c.read(regIntrMask))
}

func (c *Conn) SetIntrMask(v hal.InterruptMask) { c.write(regIntrMask, v.Bits()) }

func (c *Conn) ClearRxUnder() uint32  { return c.read(regClrRxUnder) }
func (c *Conn) ClearRxOver() uint32   { return c.read(regClrRxOver) }
func (c *Conn) ClearTxOver() uint32   { return c.read(regClrTxOver) }
func (c *Conn) ClearRdReq() uint32    { return c.read(regClrRdReq) }
func (c *Conn) ClearTxAbort() uint32  { return c.read(regClrTxAbrt) }
func (c *Conn) ClearRxDone() uint32   { return c.read(regClrRxDone) }
func (c *Conn) ClearActivity() uint32 { return c.read(regClrActivity) }
func (c *Conn) ClearStopDet() uint32  { return c.read(regClrStopDet) }
func (c *Conn) ClearStartDet() uint32 { return c.read(regClrStartDet) }
func (c *Conn) ClearGenCall() uint32  { return c.read(regClrGenCall) }
func (c *Conn) ClearAll() uint32      { return c.read(regClrIntr) }

func (c *Conn) Enable() hal.Enable     { return hal.EnableFromBits(c.read(regEnable)) }
func (c *Conn) SetEnable(v hal.Enable) { c.write(regEnable, v.Bits()) }

func (c *Conn) EnableStatus() hal.EnableStatus {
	return hal.EnableStatusFromBits(c.read(regEnableStatus))
}

func (c *Conn) TxFLR() uint32     { return c.read(regTxFLR) }
func (c *Conn) SetTxFLR(v uint32) { c.write(regTxFLR, v) }
func (c *Conn) RxFLR() uint32     { return c.read(regRxFLR) }
func (c *Conn) SetRxFLR(v uint32) { c.write(regRxFLR, v) }

func (c *Conn) DataCmd() hal.DataCmd     { return hal.DataCmdFromBits(c.read(regDataCmd)) }
func (c *Conn) SetDataCmd(v hal.DataCmd) { c.write(regDataCmd, v.Bits()) }

func (c *Conn) TxAbortSource() hal.TxAbortSource {
	return hal.TxAbortSourceFromBits(c.read(regTxAbrtSource))
}

func (c *Conn) CompParam1() uint32 { return c.read(regCompParam1) }

var _ hal.Registers = (*Conn)(nil)
