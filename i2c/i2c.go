package i2c

import (
	"fmt"

	"github.com/ardnew/jh71xx/delay"
	"github.com/ardnew/jh71xx/i2c/hal"
	"github.com/ardnew/jh71xx/pkg"
)

// Polling parameters. Hardware conditions are polled every pollStepUs
// microseconds against a pollBudgetUs total budget.
const (
	pollStepUs   = 10
	pollBudgetUs = 100
)

// Adapter disable parameters. Each retry waits 10 times the signaling
// period of the fastest supported transfer (25us at 400kHz), as described
// in the DesignWare I2C databook.
const (
	disableRetries = 100
	disableWaitUs  = 25
)

// status is the engine's software bookkeeping bitset. It is not backed by
// hardware: the in-progress bits each track an independent partially
// drained software buffer left over from a prior call that exceeded one
// FIFO's capacity.
type status uint8

const (
	statusActive status = 1 << iota
	statusWriteInProgress
	statusReadInProgress
)

// I2C is the master transaction engine for one DW_apb_i2c controller
// instance. It is the sole mutator of that instance for its lifetime.
type I2C struct {
	regs  hal.Registers
	delay delay.Delayer

	txFifoDepth uint32
	rxFifoDepth uint32

	txOutstanding uint32
	rxOutstanding uint32
	txBufLen      uint32
	rxBufLen      uint32

	status status
	txFlag MsgFlag
	rxFlag MsgFlag

	masterCfg     hal.Con
	functionality Func
	mode          OpMode

	cfg Config

	msgErr *Error
}

// New creates an engine owning the controller behind regs. The FIFO
// depths are read once from the controller's component parameter
// register. The engine is configured for master operation; call
// [I2C.InitMaster] before the first transaction.
func New(regs hal.Registers, d delay.Delayer, cfg Config) *I2C {
	param := regs.CompParam1()
	i := &I2C{
		regs:        regs,
		delay:       d,
		txFifoDepth: hal.TxFIFODepth(param),
		rxFifoDepth: hal.RxFIFODepth(param),
		cfg:         cfg,
	}
	i.ConfigureMaster()
	return i
}

// TxFIFODepth returns the transmit FIFO capacity in entries.
func (i *I2C) TxFIFODepth() uint32 { return i.txFifoDepth }

// RxFIFODepth returns the receive FIFO capacity in entries.
func (i *I2C) RxFIFODepth() uint32 { return i.rxFifoDepth }

// Functionality returns the advertised adapter feature set.
func (i *I2C) Functionality() Func { return i.functionality }

// Mode returns the configured operation mode.
func (i *I2C) Mode() OpMode { return i.mode }

// Timings returns the configured bus timing characteristics.
func (i *I2C) Timings() Timings { return i.cfg.Timings }

// WriteInProgress reports whether a prior write exceeded the transmit
// FIFO capacity and bytes remain queued in software.
func (i *I2C) WriteInProgress() bool { return i.status&statusWriteInProgress != 0 }

// ReadInProgress reports whether a prior read left undrained bytes.
func (i *I2C) ReadInProgress() bool { return i.status&statusReadInProgress != 0 }

// TxBufLen returns the bytes remaining in the software buffer of a
// partially transmitted message.
func (i *I2C) TxBufLen() uint32 { return i.txBufLen }

// RxBufLen returns the remainder recorded by a partially drained read.
func (i *I2C) RxBufLen() uint32 { return i.rxBufLen }

// TxOutstanding returns the count of write buffers enqueued but not fully
// drained.
func (i *I2C) TxOutstanding() uint32 { return i.txOutstanding }

// RxOutstanding returns the count of read commands issued but not fully
// drained.
func (i *I2C) RxOutstanding() uint32 { return i.rxOutstanding }

// ConfigureMaster computes the advertised functionality and the control
// register value for master operation: master mode, slave disabled,
// restart enabled, plus the speed-class bit matching the configured bus
// frequency. Frequencies outside the standard and high classes fall back
// to fast. The result is reused by every transaction until reconfigured.
func (i *I2C) ConfigureMaster() {
	i.functionality = FuncAddress10Bit | DefaultFunc()
	i.masterCfg = hal.ConMaster | hal.ConSlaveDisable | hal.ConRestartEn
	i.mode = OpModeMaster

	switch i.cfg.Timings.BusFreqHz {
	case SpeedModeStd:
		i.masterCfg |= hal.ConSpeedStd
	case SpeedModeHigh:
		i.masterCfg |= hal.ConSpeedHigh
	default:
		i.masterCfg |= hal.ConSpeedFast
	}
}

// configureFIFOMaster programs the FIFO thresholds (transmit at half
// depth, receive at zero) and writes the master configuration to the
// control register.
func (i *I2C) configureFIFOMaster() {
	i.regs.SetTxTL(i.txFifoDepth / 2)
	i.regs.SetRxTL(0)
	i.regs.SetCon(i.masterCfg)
}

// pollTimeout invokes cond every stepUs microseconds until it reports
// true or the budget expires.
func (i *I2C) pollTimeout(cond func() bool, stepUs, budgetUs uint32) error {
	var elapsed uint32
	for elapsed <= budgetUs {
		if cond() {
			return nil
		}
		i.delay.DelayUs(stepUs)
		elapsed = satAdd(elapsed, stepUs)
	}
	return pkg.ErrTimeout
}

func satAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return ^uint32(0)
}

// enable turns the controller on.
func (i *I2C) enable() {
	i.regs.SetEnable(hal.EnableEnable)
}

// disableNowait turns the controller off without confirming it went
// inactive.
func (i *I2C) disableNowait() {
	i.regs.SetEnable(hal.EnableNone)
}

// disable takes the adapter from enabled to disabled, aborting an
// address-phase transfer first when necessary.
//
// A controller holding the bus after an address phase ("master on hold")
// refuses to go inactive until explicitly told to abort, so the sequence
// runs in two stages: request an abort if one is needed and not already
// pending, then repeatedly write enable=none until the activity flag
// drops. At most one abort request is issued per call.
//
// A non-nil return means the controller could not be confirmed inactive.
// Callers on the transaction path log and continue (the adapter is
// reprogrammed from scratch immediately after), but the result is
// surfaced so they can decide.
func (i *I2C) disable() error {
	raw := i.regs.RawIntrStat()
	en := i.regs.Enable()

	if raw.IsSet(hal.IntrMstOnHold) && !en.IsSet(hal.EnableAbort) {
		i.regs.SetEnable(en | hal.EnableAbort)
		err := i.pollTimeout(func() bool {
			return !i.regs.Enable().IsSet(hal.EnableAbort)
		}, pollStepUs, pollBudgetUs)
		if err != nil {
			return fmt.Errorf("abort current transfer: %w", err)
		}
	}

	for n := 0; n < disableRetries; n++ {
		i.disableNowait()
		if !i.regs.EnableStatus().IsSet(hal.EnableStatusActivity) {
			return nil
		}
		i.delay.DelayUs(disableWaitUs)
	}
	return fmt.Errorf("disable adapter: %w", pkg.ErrTimeout)
}

// InitMaster configures and enables the hardware for master operation:
// disable the adapter, program the supplied SCL counts (high-speed counts
// only when both are non-zero, SDA hold only when non-zero), then program
// the FIFO thresholds and control register.
//
// Called once after construction, and again to reinitialize after a
// run-time timeout.
func (i *I2C) InitMaster() {
	if err := i.disable(); err != nil {
		pkg.LogWarn(pkg.ComponentI2C, "disable before init", "err", err)
	}

	i.regs.SetStdSclHcnt(i.cfg.StdHcnt)
	i.regs.SetStdSclLcnt(i.cfg.StdLcnt)

	i.regs.SetFastSclHcnt(i.cfg.FastHcnt)
	i.regs.SetFastSclLcnt(i.cfg.FastLcnt)

	if i.cfg.HighHcnt != 0 && i.cfg.HighLcnt != 0 {
		i.regs.SetHighSclHcnt(i.cfg.HighHcnt)
		i.regs.SetHighSclLcnt(i.cfg.HighLcnt)
	}

	if i.cfg.SdaHoldTime != 0 {
		i.regs.SetSdaHold(i.cfg.SdaHoldTime)
	}

	i.configureFIFOMaster()
}

// xferInit prepares the controller for a transaction addressed to tar.
//
// Interrupts are masked before the target address is programmed to work
// around a hardware erratum on some address/interrupt-mask orderings, and
// the enable-status dummy read avoids a lock-up on some controller
// revisions.
func (i *I2C) xferInit(tar hal.Tar) {
	if err := i.disable(); err != nil {
		pkg.LogWarn(pkg.ComponentI2C, "disable before transfer", "err", err)
	}

	con := i.regs.Con() &^ hal.ConMaster10Bit
	if tar.IsSet(hal.TarMode10Bit) {
		con |= hal.ConMaster10Bit
	}
	i.regs.SetCon(con)
	i.regs.SetTar(tar)

	i.regs.SetIntrMask(hal.InterruptMask(hal.IntrNone))

	i.enable()
	_ = i.regs.EnableStatus()

	hal.ReadClearInterrupts(i.regs)
	i.regs.SetIntrMask(hal.MasterInterruptMask())
}

// drainInterrupts acknowledges pending interrupts, recording the first
// hardware abort it observes as the message-level error.
func (i *I2C) drainInterrupts() (hal.InterruptStatus, *Error) {
	stat, abort := hal.ReadClearInterrupts(i.regs)
	if stat.IsSet(hal.IntrTxAbort) {
		err := errorFromAbort(abort)
		if i.msgErr == nil {
			i.msgErr = err
		}
		return stat, err
	}
	return stat, nil
}

// writeMsg enqueues as much of buf as the transmit FIFO headroom allows.
//
// The restart bit is placed on the first byte only, and only when no
// write is already in progress and restart capability is enabled. The
// stop bit is placed on the final byte of this call only when lastMsg is
// true, the byte is truly the last of the whole buffer, and the
// length-prefix protocol flag is not active (that protocol must continue
// past what looks like the last queued byte, because the true length is
// not yet known).
func (i *I2C) writeMsg(buf []byte, lastMsg bool) error {
	if _, err := i.drainInterrupts(); err != nil {
		i.updateIntrMask(lastMsg)
		return err
	}

	needRestart := i.status&statusWriteInProgress == 0 &&
		i.masterCfg.IsSet(hal.ConRestartEn)

	headroom := i.txFifoDepth - i.regs.TxFLR()
	n := min(len(buf), int(headroom))

	for k := 0; k < n; k++ {
		cmd := hal.DataCmdNone.WithData(buf[k])
		if needRestart {
			cmd |= hal.DataCmdRestart
			needRestart = false
		}
		if lastMsg && k == len(buf)-1 && !i.txFlag.IsSet(MsgRecvLen) {
			cmd |= hal.DataCmdStop
		}
		i.regs.SetDataCmd(cmd)
	}

	if n < len(buf) || i.txFlag.IsSet(MsgRecvLen) {
		i.status |= statusWriteInProgress
		i.txOutstanding++
		i.txBufLen = uint32(len(buf) - n)
	} else {
		i.status &^= statusWriteInProgress
		i.txBufLen = 0
	}

	i.updateIntrMask(lastMsg)
	return nil
}

// updateIntrMask recomputes the interrupt mask after queueing a message:
// everything masked after a recorded error, transmit-FIFO-empty dropped
// on the final message, the full master mask otherwise.
func (i *I2C) updateIntrMask(lastMsg bool) {
	switch {
	case i.msgErr != nil:
		i.regs.SetIntrMask(hal.InterruptMask(hal.IntrNone))
	case lastMsg:
		i.regs.SetIntrMask(hal.MasterInterruptMask() &^ hal.InterruptMask(hal.IntrTxEmpty))
	default:
		i.regs.SetIntrMask(hal.MasterInterruptMask())
	}
}

// readMsg issues one FIFO read command and drains the response into buf.
//
// The receive-overrun check fails closed before any register access.
// Polling for the receive-FIFO-full condition acknowledges interrupts as
// a side effect, so a hardware abort observed mid-poll surfaces
// immediately instead of as a timeout.
func (i *I2C) readMsg(buf []byte) error {
	if i.rxOutstanding >= i.rxFifoDepth {
		return errOverrun()
	}

	cmd := hal.DataCmdRead
	if i.masterCfg.IsSet(hal.ConRestartEn) {
		cmd |= hal.DataCmdRestart
	}
	i.regs.SetDataCmd(cmd)
	i.rxOutstanding++

	var hardErr *Error
	err := i.pollTimeout(func() bool {
		stat, derr := i.drainInterrupts()
		if derr != nil {
			hardErr = derr
			return true
		}
		return stat.IsSet(hal.IntrRxFull)
	}, pollStepUs, pollBudgetUs)
	if hardErr != nil {
		return hardErr
	}
	if err != nil {
		return errTimeout(err)
	}

	occupancy := i.regs.RxFLR()
	n := min(len(buf), int(occupancy))

	for k := 0; k < n; k++ {
		v := i.regs.DataCmd().Data()
		if i.rxFlag.IsSet(MsgRecvLen) {
			v = normalizeBlockLength(v)
			i.rxFlag &^= MsgRecvLen
		}
		buf[k] = v
	}

	if int(occupancy) > n {
		i.status |= statusReadInProgress
		i.rxBufLen = occupancy - uint32(n)
	} else {
		i.status &^= statusReadInProgress
		i.rxBufLen = 0
		if i.rxOutstanding > 0 {
			i.rxOutstanding--
		}
	}

	return nil
}

// normalizeBlockLength clamps a received block-transfer length prefix to
// the SMBus convention: zero and out-of-range values become one, so the
// byte is re-read with the stop condition once the true length is known.
func normalizeBlockLength(v uint8) uint8 {
	if v == 0 || v > SMBusBlockMax {
		return 1
	}
	return v
}

// Transaction performs an ordered sequence of operations addressed to a
// 7-bit target address, returning the first hard error encountered.
func (i *I2C) Transaction(addr uint8, ops []Operation) error {
	tar := hal.Tar(addr) & hal.TarAddrMask7Bit
	return i.transfer(tar, ops)
}

// Transaction10 performs an ordered sequence of operations addressed to
// a 10-bit target address.
func (i *I2C) Transaction10(addr uint16, ops []Operation) error {
	tar := hal.Tar(addr)&hal.TarAddrMask10Bit | hal.TarMode10Bit
	return i.transfer(tar, ops)
}

// transfer initializes the controller for tar and walks the operation
// list in order. A write operation is flagged as the last message exactly
// when it is the final write in the list, regardless of reads interleaved
// after it.
func (i *I2C) transfer(tar hal.Tar, ops []Operation) error {
	i.status = statusActive
	i.msgErr = nil
	i.txOutstanding = 0
	i.rxOutstanding = 0
	i.txBufLen = 0
	i.rxBufLen = 0

	i.xferInit(tar)

	writesLeft := 0
	for _, op := range ops {
		if !op.IsRead() {
			writesLeft++
		}
	}

	for _, op := range ops {
		var err error
		if op.IsRead() {
			i.rxFlag = op.flags
			err = i.readMsg(op.buf)
		} else {
			writesLeft--
			i.txFlag = op.flags
			err = i.writeMsg(op.buf, writesLeft == 0)
		}
		if err != nil {
			i.status &^= statusActive
			return err
		}
	}

	i.status &^= statusActive
	return nil
}

// Tx implements the transfer shape used by tinygo.org/x/drivers device
// drivers: write w to the target, then read into r, within a single
// transaction. Addresses above the 7-bit range use 10-bit addressing.
func (i *I2C) Tx(addr uint16, w, r []byte) error {
	ops := make([]Operation, 0, 2)
	if len(w) > 0 {
		ops = append(ops, Write(w))
	}
	if len(r) > 0 {
		ops = append(ops, Read(r))
	}
	if len(ops) == 0 {
		return nil
	}
	if addr > 0x7F {
		return i.Transaction10(addr, ops)
	}
	return i.Transaction(uint8(addr), ops)
}
