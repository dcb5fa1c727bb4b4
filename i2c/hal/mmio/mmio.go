// Package mmio implements the [hal.Registers] capability over a
// memory-mapped DW_apb_i2c controller instance.
//
// Constructors [I2C0] through [I2C6] cover the seven controller instances
// of the JH7110. Each value assumes exclusive ownership of its register
// block; pass it into the transaction engine constructor and do not touch
// the block through any other path.
package mmio

import (
	"unsafe"

	"github.com/ardnew/jh71xx/i2c/hal"
)

// JH7110 I2C controller base addresses.
const (
	BaseI2C0 uintptr = 0x1003_0000
	BaseI2C1 uintptr = 0x1004_0000
	BaseI2C2 uintptr = 0x1005_0000
	BaseI2C3 uintptr = 0x1205_0000
	BaseI2C4 uintptr = 0x1206_0000
	BaseI2C5 uintptr = 0x1207_0000
	BaseI2C6 uintptr = 0x1208_0000
)

// DW_apb_i2c register offsets.
const (
	offCon          = 0x00
	offTar          = 0x04
	offSar          = 0x08
	offDataCmd      = 0x10
	offStdSclHcnt   = 0x14
	offStdSclLcnt   = 0x18
	offFastSclHcnt  = 0x1C
	offFastSclLcnt  = 0x20
	offHighSclHcnt  = 0x24
	offHighSclLcnt  = 0x28
	offIntrStat     = 0x2C
	offIntrMask     = 0x30
	offRawIntrStat  = 0x34
	offRxTL         = 0x38
	offTxTL         = 0x3C
	offClrIntr      = 0x40
	offClrRxUnder   = 0x44
	offClrRxOver    = 0x48
	offClrTxOver    = 0x4C
	offClrRdReq     = 0x50
	offClrTxAbrt    = 0x54
	offClrRxDone    = 0x58
	offClrActivity  = 0x5C
	offClrStopDet   = 0x60
	offClrStartDet  = 0x64
	offClrGenCall   = 0x68
	offEnable       = 0x6C
	offTxFLR        = 0x74
	offRxFLR        = 0x78
	offSdaHold      = 0x7C
	offTxAbrtSource = 0x80
	offEnableStatus = 0x9C
	offCompParam1   = 0xF4
)

// Regs is a memory-mapped [hal.Registers] implementation.
type Regs struct {
	base uintptr
}

// New creates a Regs over an arbitrary controller base address.
func New(base uintptr) *Regs {
	return &Regs{base: base}
}

// I2C0 returns the register capability for controller instance 0.
func I2C0() *Regs { return New(BaseI2C0) }

// I2C1 returns the register capability for controller instance 1.
func I2C1() *Regs { return New(BaseI2C1) }

// I2C2 returns the register capability for controller instance 2.
func I2C2() *Regs { return New(BaseI2C2) }

// I2C3 returns the register capability for controller instance 3.
func I2C3() *Regs { return New(BaseI2C3) }

// I2C4 returns the register capability for controller instance 4.
func I2C4() *Regs { return New(BaseI2C4) }

// I2C5 returns the register capability for controller instance 5.
func I2C5() *Regs { return New(BaseI2C5) }

// I2C6 returns the register capability for controller instance 6.
func I2C6() *Regs { return New(BaseI2C6) }

// Base returns the controller base address.
func (r *Regs) Base() uintptr { return r.base }

//go:nosplit
func (r *Regs) load(off uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(r.base + off))
}

//go:nosplit
func (r *Regs) store(off uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(r.base + off)) = v
}

func (r *Regs) Con() hal.Con          { return hal.ConFromBits(r.load(offCon)) }
func (r *Regs) SetCon(v hal.Con)      { r.store(offCon, v.Bits()) }
func (r *Regs) Tar() hal.Tar          { return hal.TarFromBits(r.load(offTar)) }
func (r *Regs) SetTar(v hal.Tar)      { r.store(offTar, v.Bits()) }
func (r *Regs) Sar() hal.Sar          { return hal.SarFromBits(r.load(offSar)) }
func (r *Regs) SetSar(v hal.Sar)      { r.store(offSar, v.Bits()) }
func (r *Regs) TxTL() uint32          { return r.load(offTxTL) }
func (r *Regs) SetTxTL(v uint32)      { r.store(offTxTL, v) }
func (r *Regs) RxTL() uint32          { return r.load(offRxTL) }
func (r *Regs) SetRxTL(v uint32)      { r.store(offRxTL, v) }
func (r *Regs) StdSclHcnt() uint32    { return r.load(offStdSclHcnt) }
func (r *Regs) SetStdSclHcnt(v uint32) { r.store(offStdSclHcnt, v) }
func (r *Regs) StdSclLcnt() uint32    { return r.load(offStdSclLcnt) }
func (r *Regs) SetStdSclLcnt(v uint32) { r.store(offStdSclLcnt, v) }
func (r *Regs) FastSclHcnt() uint32   { return r.load(offFastSclHcnt) }
func (r *Regs) SetFastSclHcnt(v uint32) { r.store(offFastSclHcnt, v) }
func (r *Regs) FastSclLcnt() uint32   { return r.load(offFastSclLcnt) }
func (r *Regs) SetFastSclLcnt(v uint32) { r.store(offFastSclLcnt, v) }
func (r *Regs) HighSclHcnt() uint32   { return r.load(offHighSclHcnt) }
func (r *Regs) SetHighSclHcnt(v uint32) { r.store(offHighSclHcnt, v) }
func (r *Regs) HighSclLcnt() uint32   { return r.load(offHighSclLcnt) }
func (r *Regs) SetHighSclLcnt(v uint32) { r.store(offHighSclLcnt, v) }
func (r *Regs) SdaHold() uint32       { return r.load(offSdaHold) }
func (r *Regs) SetSdaHold(v uint32)   { r.store(offSdaHold, v) }

func (r *Regs) RawIntrStat() hal.RawInterruptStatus {
	return hal.RawInterruptStatusFromBits(r.load(offRawIntrStat))
}

func (r *Regs) IntrStat() hal.InterruptStatus {
	return hal.InterruptStatusFromBits(r.load(offIntrStat))
}

func (r *Regs) IntrMask() hal.InterruptMask {
	return hal.InterruptMaskFromBits(r.load(offIntrMask))
}

func (r *Regs) SetIntrMask(v hal.InterruptMask) { r.store(offIntrMask, v.Bits()) }

func (r *Regs) ClearRxUnder() uint32  { return r.load(offClrRxUnder) }
func (r *Regs) ClearRxOver() uint32   { return r.load(offClrRxOver) }
func (r *Regs) ClearTxOver() uint32   { return r.load(offClrTxOver) }
func (r *Regs) ClearRdReq() uint32    { return r.load(offClrRdReq) }
func (r *Regs) ClearTxAbort() uint32  { return r.load(offClrTxAbrt) }
func (r *Regs) ClearRxDone() uint32   { return r.load(offClrRxDone) }
func (r *Regs) ClearActivity() uint32 { return r.load(offClrActivity) }
func (r *Regs) ClearStopDet() uint32  { return r.load(offClrStopDet) }
func (r *Regs) ClearStartDet() uint32 { return r.load(offClrStartDet) }
func (r *Regs) ClearGenCall() uint32  { return r.load(offClrGenCall) }
func (r *Regs) ClearAll() uint32      { return r.load(offClrIntr) }

func (r *Regs) Enable() hal.Enable     { return hal.EnableFromBits(r.load(offEnable)) }
func (r *Regs) SetEnable(v hal.Enable) { r.store(offEnable, v.Bits()) }

func (r *Regs) EnableStatus() hal.EnableStatus {
	return hal.EnableStatusFromBits(r.load(offEnableStatus))
}

func (r *Regs) TxFLR() uint32     { return r.load(offTxFLR) }
func (r *Regs) SetTxFLR(v uint32) { r.store(offTxFLR, v) }
func (r *Regs) RxFLR() uint32     { return r.load(offRxFLR) }
func (r *Regs) SetRxFLR(v uint32) { r.store(offRxFLR, v) }

func (r *Regs) DataCmd() hal.DataCmd     { return hal.DataCmdFromBits(r.load(offDataCmd)) }
func (r *Regs) SetDataCmd(v hal.DataCmd) { r.store(offDataCmd, v.Bits()) }

func (r *Regs) TxAbortSource() hal.TxAbortSource {
	return hal.TxAbortSourceFromBits(r.load(offTxAbrtSource))
}

func (r *Regs) CompParam1() uint32 { return r.load(offCompParam1) }

var _ hal.Registers = (*Regs)(nil)
