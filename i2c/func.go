package i2c

// Func is the advertised adapter functionality bitset. The values follow
// the Linux I2C_FUNC encoding.
type Func uint32

// Functionality bits.
const (
	FuncNone              Func = 0x0000_0000
	FuncI2C               Func = 0x0000_0001
	FuncAddress10Bit      Func = 0x0000_0002
	FuncProtocolMangling  Func = 0x0000_0004
	FuncSMBusPEC          Func = 0x0000_0008
	FuncNoStart           Func = 0x0000_0010
	FuncSlave             Func = 0x0000_0020
	FuncSMBusBlockProc    Func = 0x0000_8000
	FuncSMBusQuick        Func = 0x0001_0000
	FuncSMBusReadByte     Func = 0x0002_0000
	FuncSMBusWriteByte    Func = 0x0004_0000
	FuncSMBusReadByteDat  Func = 0x0008_0000
	FuncSMBusWriteByteDat Func = 0x0010_0000
	FuncSMBusReadWordDat  Func = 0x0020_0000
	FuncSMBusWriteWordDat Func = 0x0040_0000
	FuncSMBusProcCall     Func = 0x0080_0000
	FuncSMBusReadBlock    Func = 0x0100_0000
	FuncSMBusWriteBlock   Func = 0x0200_0000
	FuncSMBusReadI2CBlock Func = 0x0400_0000
	FuncSMBusWriteI2CBlk  Func = 0x0800_0000
	FuncSMBusHostNotify   Func = 0x1000_0000

	FuncSMBusByte     = FuncSMBusReadByte | FuncSMBusWriteByte
	FuncSMBusByteData = FuncSMBusReadByteDat | FuncSMBusWriteByteDat
	FuncSMBusWordData = FuncSMBusReadWordDat | FuncSMBusWriteWordDat
	FuncSMBusBlockDat = FuncSMBusReadBlock | FuncSMBusWriteBlock
	FuncSMBusI2CBlock = FuncSMBusReadI2CBlock | FuncSMBusWriteI2CBlk
)

// DefaultFunc is the feature set every adapter advertises: plain I2C plus
// the common SMBus transfer shapes.
func DefaultFunc() Func {
	return FuncI2C |
		FuncSMBusByte |
		FuncSMBusByteData |
		FuncSMBusWordData |
		FuncSMBusBlockDat |
		FuncSMBusI2CBlock
}

// IsSet reports whether every bit of g is set in f.
func (f Func) IsSet(g Func) bool { return f&g == g }
