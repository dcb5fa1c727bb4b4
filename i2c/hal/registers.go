package hal

// Con represents the CON register bitfield.
type Con uint32

// CON register bits.
const (
	ConNone               Con = 0b0000_0000_0000_0000
	ConMaster             Con = 0b0000_0000_0000_0001
	ConSpeedStd           Con = 0b0000_0000_0000_0010
	ConSpeedFast          Con = 0b0000_0000_0000_0100
	ConSpeedHigh          Con = 0b0000_0000_0000_0110
	ConSlave10Bit         Con = 0b0000_0000_0000_1000
	ConMaster10Bit        Con = 0b0000_0000_0001_0000
	ConRestartEn          Con = 0b0000_0000_0010_0000
	ConSlaveDisable       Con = 0b0000_0000_0100_0000
	ConStopDetIfAddressed Con = 0b0000_0000_1000_0000
	ConTxEmptyCtrl        Con = 0b0000_0001_0000_0000
	ConRxFullHoldCtrl     Con = 0b0000_0010_0000_0000
	ConBusClearCtrl       Con = 0b0000_1000_0000_0000

	// ConMask covers all documented CON bits; the rest are reserved.
	ConMask Con = 0b1011_1111_1111
)

// ConFromBits constructs a Con from a raw register value, masking
// reserved bits.
func ConFromBits(v uint32) Con { return Con(v) & ConMask }

// Bits returns the raw register value.
func (c Con) Bits() uint32 { return uint32(c) }

// IsSet reports whether every bit of f is set in c.
func (c Con) IsSet(f Con) bool { return c&f == f }

// ConSpeed represents the two-bit speed field of the CON register.
type ConSpeed uint8

// CON speed field values.
const (
	ConSpeedFieldStd  ConSpeed = 0b01
	ConSpeedFieldFast ConSpeed = 0b10
	ConSpeedFieldHigh ConSpeed = 0b11

	// ConSpeedFieldMask covers the speed field.
	ConSpeedFieldMask ConSpeed = 0b11
)

// Con returns the CON register bits selecting this speed class.
func (s ConSpeed) Con() Con {
	switch s & ConSpeedFieldMask {
	case ConSpeedFieldFast:
		return ConSpeedFast
	case ConSpeedFieldHigh:
		return ConSpeedHigh
	default:
		return ConSpeedStd
	}
}

// Tar represents the TAR (target address) register bitfield.
type Tar uint32

// TAR register bits.
const (
	TarNone Tar = 0b0000_0000_0000_0000

	// TarAddrMask7Bit covers the 7-bit address field, bits [6:0].
	TarAddrMask7Bit Tar = 0b0000_0000_0111_1111
	// TarAddrMask10Bit covers the 10-bit address field, bits [9:0].
	TarAddrMask10Bit Tar = 0b0000_0011_1111_1111
	// TarMode10Bit selects 10-bit addressing for this transfer.
	TarMode10Bit Tar = 0b0001_0000_0000_0000

	// TarMask covers all documented TAR bits; the rest are reserved.
	TarMask Tar = 0b0001_0011_1111_1111
)

// TarFromBits constructs a Tar from a raw register value, masking
// reserved bits.
func TarFromBits(v uint32) Tar { return Tar(v) & TarMask }

// Bits returns the raw register value.
func (t Tar) Bits() uint32 { return uint32(t) }

// IsSet reports whether every bit of f is set in t.
func (t Tar) IsSet(f Tar) bool { return t&f == f }

// Address7Bit returns the target address interpreted in 7-bit mode.
func (t Tar) Address7Bit() uint8 { return uint8(t & TarAddrMask7Bit) }

// Address10Bit returns the target address interpreted in 10-bit mode.
func (t Tar) Address10Bit() uint16 { return uint16(t & TarAddrMask10Bit) }

// Sar represents the SAR (slave address) register bitfield.
type Sar uint32

// SAR register bits.
const (
	SarNone Sar = 0b0000_0000_0000

	// SarAddrMask7Bit covers the 7-bit address field, bits [6:0].
	SarAddrMask7Bit Sar = 0b0000_0111_1111
	// SarAddrMask10Bit covers the 10-bit address field, bits [9:0].
	SarAddrMask10Bit Sar = 0b0011_1111_1111

	// SarMask covers all documented SAR bits; the rest are reserved.
	SarMask Sar = 0b0011_1111_1111
)

// SarFromBits constructs a Sar from a raw register value, masking
// reserved bits.
func SarFromBits(v uint32) Sar { return Sar(v) & SarMask }

// Bits returns the raw register value.
func (s Sar) Bits() uint32 { return uint32(s) }

// IsSet reports whether every bit of f is set in s.
func (s Sar) IsSet(f Sar) bool { return s&f == f }

// Address7Bit returns the slave address interpreted in 7-bit mode.
func (s Sar) Address7Bit() uint8 { return uint8(s & SarAddrMask7Bit) }

// Address10Bit returns the slave address interpreted in 10-bit mode.
func (s Sar) Address10Bit() uint16 { return uint16(s & SarAddrMask10Bit) }

// Enable represents the ENABLE register bitfield.
type Enable uint32

// ENABLE register bits.
const (
	EnableNone Enable = 0b0000
	// EnableEnable enables the controller.
	EnableEnable Enable = 0b0001
	// EnableAbort requests an abort of the transfer in progress.
	EnableAbort Enable = 0b0010

	// EnableMask covers all documented ENABLE bits; the rest are reserved.
	EnableMask Enable = 0b0011
)

// EnableFromBits constructs an Enable from a raw register value, masking
// reserved bits.
func EnableFromBits(v uint32) Enable { return Enable(v) & EnableMask }

// Bits returns the raw register value.
func (e Enable) Bits() uint32 { return uint32(e) }

// IsSet reports whether every bit of f is set in e.
func (e Enable) IsSet(f Enable) bool { return e&f == f }

// EnableStatus represents the ENABLE_STATUS register bitfield.
type EnableStatus uint32

// ENABLE_STATUS register bits.
const (
	EnableStatusNone EnableStatus = 0b0000_0000
	// EnableStatusActivity indicates the controller is active.
	EnableStatusActivity EnableStatus = 0b0000_0001
	// EnableStatusTFE indicates the transmit FIFO is empty.
	EnableStatusTFE EnableStatus = 0b0000_0100
	// EnableStatusRFNE indicates the receive FIFO is not empty.
	EnableStatusRFNE EnableStatus = 0b0000_1000
	// EnableStatusMasterActivity indicates master-mode activity.
	EnableStatusMasterActivity EnableStatus = 0b0010_0000
	// EnableStatusSlaveActivity indicates slave-mode activity.
	EnableStatusSlaveActivity EnableStatus = 0b0100_0000

	// EnableStatusMask covers all documented ENABLE_STATUS bits; the rest
	// are reserved.
	EnableStatusMask EnableStatus = 0b0111_1101
)

// EnableStatusFromBits constructs an EnableStatus from a raw register
// value, masking reserved bits.
func EnableStatusFromBits(v uint32) EnableStatus { return EnableStatus(v) & EnableStatusMask }

// Bits returns the raw register value.
func (e EnableStatus) Bits() uint32 { return uint32(e) }

// IsSet reports whether every bit of f is set in e.
func (e EnableStatus) IsSet(f EnableStatus) bool { return e&f == f }

// Interrupt holds the 14 interrupt condition bits shared by the
// RAW_INTR_STAT, INTR_STAT, INTR_MASK, and CLR_INTR register layouts.
type Interrupt uint32

// Interrupt condition bits.
const (
	IntrNone       Interrupt = 0b0000_0000_0000_0000
	IntrRxUnder    Interrupt = 0b0000_0000_0000_0001
	IntrRxOver     Interrupt = 0b0000_0000_0000_0010
	IntrRxFull     Interrupt = 0b0000_0000_0000_0100
	IntrTxOver     Interrupt = 0b0000_0000_0000_1000
	IntrTxEmpty    Interrupt = 0b0000_0000_0001_0000
	IntrRdReq      Interrupt = 0b0000_0000_0010_0000
	IntrTxAbort    Interrupt = 0b0000_0000_0100_0000
	IntrRxDone     Interrupt = 0b0000_0000_1000_0000
	IntrActivity   Interrupt = 0b0000_0001_0000_0000
	IntrStopDet    Interrupt = 0b0000_0010_0000_0000
	IntrStartDet   Interrupt = 0b0000_0100_0000_0000
	IntrGenCall    Interrupt = 0b0000_1000_0000_0000
	IntrRestartDet Interrupt = 0b0001_0000_0000_0000
	IntrMstOnHold  Interrupt = 0b0010_0000_0000_0000

	// IntrMask covers all documented interrupt bits; the rest are reserved.
	IntrMask Interrupt = 0b0011_1111_1111_1111
)

// RawInterruptStatus represents the RAW_INTR_STAT register bitfield.
type RawInterruptStatus Interrupt

// RawInterruptStatusFromBits constructs a RawInterruptStatus from a raw
// register value, masking reserved bits.
func RawInterruptStatusFromBits(v uint32) RawInterruptStatus {
	return RawInterruptStatus(Interrupt(v) & IntrMask)
}

// Bits returns the raw register value.
func (s RawInterruptStatus) Bits() uint32 { return uint32(s) }

// IsSet reports whether every bit of f is set in s.
func (s RawInterruptStatus) IsSet(f Interrupt) bool { return Interrupt(s)&f == f }

// InterruptStatus represents the INTR_STAT register bitfield, the masked
// view of RAW_INTR_STAT.
type InterruptStatus Interrupt

// InterruptStatusFromBits constructs an InterruptStatus from a raw
// register value, masking reserved bits.
func InterruptStatusFromBits(v uint32) InterruptStatus {
	return InterruptStatus(Interrupt(v) & IntrMask)
}

// Bits returns the raw register value.
func (s InterruptStatus) Bits() uint32 { return uint32(s) }

// IsSet reports whether every bit of f is set in s.
func (s InterruptStatus) IsSet(f Interrupt) bool { return Interrupt(s)&f == f }

// InterruptMask represents the INTR_MASK register bitfield.
type InterruptMask Interrupt

// InterruptMaskFromBits constructs an InterruptMask from a raw register
// value, masking reserved bits.
func InterruptMaskFromBits(v uint32) InterruptMask {
	return InterruptMask(Interrupt(v) & IntrMask)
}

// Bits returns the raw register value.
func (m InterruptMask) Bits() uint32 { return uint32(m) }

// IsSet reports whether every bit of f is set in m.
func (m InterruptMask) IsSet(f Interrupt) bool { return Interrupt(m)&f == f }

// DefaultInterruptMask is the base interrupt mask shared by both operation
// modes: receive-FIFO-full, transmit-abort, and stop-detected.
func DefaultInterruptMask() InterruptMask {
	return InterruptMask(IntrRxFull | IntrTxAbort | IntrStopDet)
}

// MasterInterruptMask is the default mask for master operation, adding
// transmit-FIFO-empty to the base mask.
func MasterInterruptMask() InterruptMask {
	return DefaultInterruptMask() | InterruptMask(IntrTxEmpty)
}

// SlaveInterruptMask is the default mask for slave operation, adding
// receive-underflow and read-request to the base mask.
func SlaveInterruptMask() InterruptMask {
	return DefaultInterruptMask() | InterruptMask(IntrRxUnder|IntrRdReq)
}

// DataCmd represents the DATA_CMD register bitfield.
type DataCmd uint32

// DATA_CMD register bits.
const (
	DataCmdNone DataCmd = 0b0000_0000_0000_0000

	// DataCmdDataMask covers the 8-bit data field.
	DataCmdDataMask DataCmd = 0b0000_0000_1111_1111
	// DataCmdRead marks this FIFO entry as a read command.
	DataCmdRead DataCmd = 0b0000_0001_0000_0000
	// DataCmdStop issues a stop condition after this byte.
	DataCmdStop DataCmd = 0b0000_0010_0000_0000
	// DataCmdRestart issues a restart condition before this byte.
	DataCmdRestart DataCmd = 0b0000_0100_0000_0000
	// DataCmdFirstDataByte flags the first byte of a transfer (read path).
	DataCmdFirstDataByte DataCmd = 0b0000_1000_0000_0000

	// DataCmdMask covers all documented DATA_CMD bits; the rest are
	// reserved.
	DataCmdMask DataCmd = 0b0000_1111_1111_1111
)

// DataCmdFromBits constructs a DataCmd from a raw register value, masking
// reserved bits.
func DataCmdFromBits(v uint32) DataCmd { return DataCmd(v) & DataCmdMask }

// Bits returns the raw register value.
func (d DataCmd) Bits() uint32 { return uint32(d) }

// IsSet reports whether every bit of f is set in d.
func (d DataCmd) IsSet(f DataCmd) bool { return d&f == f }

// Data returns the 8-bit data field.
func (d DataCmd) Data() uint8 { return uint8(d & DataCmdDataMask) }

// WithData returns a copy of d with the data field replaced by val.
func (d DataCmd) WithData(val uint8) DataCmd {
	return (d &^ DataCmdDataMask) | DataCmd(val)
}

// TxAbortSource represents the TX_ABRT_SOURCE register bitfield, which
// records why a requested transfer could not proceed. The register is
// zeroed as a side effect of reading CLR_TX_ABRT, so it must be captured
// before the abort interrupt is acknowledged.
type TxAbortSource uint32

// TX_ABRT_SOURCE register bits.
const (
	AbortNone TxAbortSource = 0b0000_0000_0000_0000

	// Abort7BitAddrNoAck: 7-bit address byte not acknowledged.
	Abort7BitAddrNoAck TxAbortSource = 0b0000_0000_0000_0001
	// Abort10BitAddr1NoAck: first 10-bit address byte not acknowledged.
	Abort10BitAddr1NoAck TxAbortSource = 0b0000_0000_0000_0010
	// Abort10BitAddr2NoAck: second 10-bit address byte not acknowledged.
	Abort10BitAddr2NoAck TxAbortSource = 0b0000_0000_0000_0100
	// AbortTxDataNoAck: data byte not acknowledged.
	AbortTxDataNoAck TxAbortSource = 0b0000_0000_0000_1000
	// AbortGenCallNoAck: no target acknowledged a general call.
	AbortGenCallNoAck TxAbortSource = 0b0000_0000_0001_0000
	// AbortGenCallRead: read requested after a general call.
	AbortGenCallRead TxAbortSource = 0b0000_0000_0010_0000
	// AbortStartByteAckDet: start byte was acknowledged.
	AbortStartByteAckDet TxAbortSource = 0b0000_0000_1000_0000
	// AbortStartByteNoRestart: start byte sent with restart disabled.
	AbortStartByteNoRestart TxAbortSource = 0b0000_0010_0000_0000
	// Abort10BitReadNoRestart: 10-bit read issued with restart disabled.
	Abort10BitReadNoRestart TxAbortSource = 0b0000_0100_0000_0000
	// AbortMasterDisabled: master operation attempted while disabled.
	AbortMasterDisabled TxAbortSource = 0b0000_1000_0000_0000
	// AbortArbitrationLost: bus arbitration was lost.
	AbortArbitrationLost TxAbortSource = 0b0001_0000_0000_0000
	// AbortSlaveFlushTxFIFO: slave flushed stale data from the TX FIFO.
	AbortSlaveFlushTxFIFO TxAbortSource = 0b0010_0000_0000_0000
	// AbortSlaveArbitrationLost: slave lost the bus while transmitting.
	AbortSlaveArbitrationLost TxAbortSource = 0b0100_0000_0000_0000
	// AbortSlaveReadInTx: read command processed while in transmit mode.
	AbortSlaveReadInTx TxAbortSource = 0b1000_0000_0000_0000

	// AbortSourceMask covers all documented TX_ABRT_SOURCE bits; the rest
	// are reserved.
	AbortSourceMask TxAbortSource = 0b1111_1110_1011_1111
)

// TxAbortSourceFromBits constructs a TxAbortSource from a raw register
// value, masking reserved bits.
func TxAbortSourceFromBits(v uint32) TxAbortSource {
	return TxAbortSource(v) & AbortSourceMask
}

// Bits returns the raw register value.
func (a TxAbortSource) Bits() uint32 { return uint32(a) }

// IsSet reports whether every bit of f is set in a.
func (a TxAbortSource) IsSet(f TxAbortSource) bool { return a&f == f }
