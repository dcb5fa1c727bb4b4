package hal

// Registers is the register access capability for one DW_apb_i2c
// controller instance.
//
// Implementations provide one get/set pair per physical register. Setters
// are fire-and-forget: the hardware is the source of truth, and getters
// always re-read it. The transaction engine assumes exclusive ownership of
// the instance behind this interface for its entire lifetime.
type Registers interface {
	// Con accesses the CON control register.
	Con() Con
	SetCon(Con)

	// Tar accesses the TAR target-address register.
	Tar() Tar
	SetTar(Tar)

	// Sar accesses the SAR slave-address register.
	Sar() Sar
	SetSar(Sar)

	// TxTL accesses the TX_TL transmit FIFO threshold register.
	TxTL() uint32
	SetTxTL(uint32)

	// RxTL accesses the RX_TL receive FIFO threshold register.
	RxTL() uint32
	SetRxTL(uint32)

	// StdSclHcnt accesses the SS_SCL_HCNT standard-speed clock high count.
	StdSclHcnt() uint32
	SetStdSclHcnt(uint32)

	// StdSclLcnt accesses the SS_SCL_LCNT standard-speed clock low count.
	StdSclLcnt() uint32
	SetStdSclLcnt(uint32)

	// FastSclHcnt accesses the FS_SCL_HCNT fast-speed clock high count.
	FastSclHcnt() uint32
	SetFastSclHcnt(uint32)

	// FastSclLcnt accesses the FS_SCL_LCNT fast-speed clock low count.
	FastSclLcnt() uint32
	SetFastSclLcnt(uint32)

	// HighSclHcnt accesses the HS_SCL_HCNT high-speed clock high count.
	HighSclHcnt() uint32
	SetHighSclHcnt(uint32)

	// HighSclLcnt accesses the HS_SCL_LCNT high-speed clock low count.
	HighSclLcnt() uint32
	SetHighSclLcnt(uint32)

	// SdaHold accesses the SDA_HOLD hold-time register.
	SdaHold() uint32
	SetSdaHold(uint32)

	// RawIntrStat reads the RAW_INTR_STAT register (unmasked status).
	RawIntrStat() RawInterruptStatus

	// IntrStat reads the INTR_STAT register (status masked by INTR_MASK).
	IntrStat() InterruptStatus

	// IntrMask accesses the INTR_MASK register.
	IntrMask() InterruptMask
	SetIntrMask(InterruptMask)

	// ClearRxUnder through ClearGenCall read the dedicated CLR_* registers,
	// acknowledging the corresponding interrupt as a read side effect.
	ClearRxUnder() uint32
	ClearRxOver() uint32
	ClearTxOver() uint32
	ClearRdReq() uint32
	ClearTxAbort() uint32
	ClearRxDone() uint32
	ClearActivity() uint32
	ClearStopDet() uint32
	ClearStartDet() uint32
	ClearGenCall() uint32

	// ClearAll reads the aggregate CLR_INTR register, acknowledging every
	// pending interrupt at once. Prefer [ReadClearInterrupts]: interrupts
	// arriving between a status read and this clear are silently lost.
	ClearAll() uint32

	// Enable accesses the ENABLE register.
	Enable() Enable
	SetEnable(Enable)

	// EnableStatus reads the ENABLE_STATUS register.
	EnableStatus() EnableStatus

	// TxFLR accesses the TXFLR transmit FIFO level register.
	TxFLR() uint32
	SetTxFLR(uint32)

	// RxFLR accesses the RXFLR receive FIFO level register.
	RxFLR() uint32
	SetRxFLR(uint32)

	// DataCmd accesses the DATA_CMD register. A write enqueues one FIFO
	// entry; a read pops one received byte.
	DataCmd() DataCmd
	SetDataCmd(DataCmd)

	// TxAbortSource reads the TX_ABRT_SOURCE register. The register is
	// zeroed when CLR_TX_ABRT is read.
	TxAbortSource() TxAbortSource

	// CompParam1 reads the COMP_PARAM_1 component parameter register,
	// which encodes the synthesized FIFO depths.
	CompParam1() uint32
}

// ReadClearInterrupts reads the masked interrupt status and acknowledges
// each asserted condition through its dedicated clear register.
//
// The INTR_STAT register indicates only enabled interrupts: its value
// equals RAW_INTR_STAT & INTR_MASK. The aggregate CLR_INTR register is
// never used here, because an interrupt arriving between the status read
// and the aggregate clear would be acknowledged without ever being
// observed. TX_ABRT_SOURCE is captured before CLR_TX_ABRT is read, since
// that read zeroes it.
//
// Returns the masked status and the captured abort source (AbortNone when
// no abort was pending).
func ReadClearInterrupts(r Registers) (InterruptStatus, TxAbortSource) {
	stat := r.IntrStat()

	if stat.IsSet(IntrRxUnder) {
		r.ClearRxUnder()
	}
	if stat.IsSet(IntrRxOver) {
		r.ClearRxOver()
	}
	if stat.IsSet(IntrTxOver) {
		r.ClearTxOver()
	}
	if stat.IsSet(IntrRdReq) {
		r.ClearRdReq()
	}
	abort := AbortNone
	if stat.IsSet(IntrTxAbort) {
		abort = r.TxAbortSource()
		r.ClearTxAbort()
	}
	if stat.IsSet(IntrRxDone) {
		r.ClearRxDone()
	}
	if stat.IsSet(IntrActivity) {
		r.ClearActivity()
	}
	if stat.IsSet(IntrStopDet) {
		r.ClearStopDet()
	}
	if stat.IsSet(IntrStartDet) {
		r.ClearStartDet()
	}
	if stat.IsSet(IntrGenCall) {
		r.ClearGenCall()
	}

	return stat, abort
}

// FIFO depth fields of the COMP_PARAM_1 register. Each field encodes
// depth-1.
const (
	compParamTxDepthShift = 16
	compParamRxDepthShift = 8
	compParamDepthMask    = 0xFF
)

// DefaultFIFODepth is the depth assumed when COMP_PARAM_1 reads as zero
// (controller variants that do not synthesize the parameter registers).
const DefaultFIFODepth = 8

// TxFIFODepth decodes the transmit FIFO depth from a COMP_PARAM_1 value,
// falling back to [DefaultFIFODepth] when the field is unpopulated.
func TxFIFODepth(compParam1 uint32) uint32 {
	d := (compParam1 >> compParamTxDepthShift) & compParamDepthMask
	if compParam1 == 0 {
		return DefaultFIFODepth
	}
	return d + 1
}

// RxFIFODepth decodes the receive FIFO depth from a COMP_PARAM_1 value,
// falling back to [DefaultFIFODepth] when the field is unpopulated.
func RxFIFODepth(compParam1 uint32) uint32 {
	d := (compParam1 >> compParamRxDepthShift) & compParamDepthMask
	if compParam1 == 0 {
		return DefaultFIFODepth
	}
	return d + 1
}
