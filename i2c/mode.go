package i2c

// Bus frequency ceilings defined by the I2C specification.
const (
	MaxStandardModeFreq uint32 = 100_000
	MaxFastModeFreq     uint32 = 400_000
	MaxFastModePlusFreq uint32 = 1_000_000
	MaxHighSpeedFreq    uint32 = 3_400_000
)

// SMBusBlockMax is the maximum block transfer length defined by the SMBus
// standard.
const SMBusBlockMax = 32

// SpeedMode names a bus frequency class. The value is the class's nominal
// frequency in Hertz.
type SpeedMode uint32

// Bus frequency classes.
const (
	SpeedModeStd       SpeedMode = 100_000
	SpeedModeFast      SpeedMode = 400_000
	SpeedModeFastPlus  SpeedMode = 1_000_000
	SpeedModeTurbo     SpeedMode = 1_400_000
	SpeedModeHigh      SpeedMode = 3_400_000
	SpeedModeUltraFast SpeedMode = 5_000_000
)

// SpeedModeFor returns the SpeedMode matching the given frequency in
// Hertz, or SpeedModeStd when the frequency names no defined class.
func SpeedModeFor(hz uint32) SpeedMode {
	switch SpeedMode(hz) {
	case SpeedModeStd, SpeedModeFast, SpeedModeFastPlus,
		SpeedModeTurbo, SpeedModeHigh, SpeedModeUltraFast:
		return SpeedMode(hz)
	default:
		return SpeedModeStd
	}
}

// String returns the class name.
func (m SpeedMode) String() string {
	switch m {
	case SpeedModeStd:
		return "standard"
	case SpeedModeFast:
		return "fast"
	case SpeedModeFastPlus:
		return "fast plus"
	case SpeedModeTurbo:
		return "turbo"
	case SpeedModeHigh:
		return "high"
	case SpeedModeUltraFast:
		return "ultra fast"
	default:
		return "unknown"
	}
}

// OpMode selects master or slave operation. This engine implements only
// master mode.
type OpMode uint8

// Operation modes.
const (
	OpModeMaster OpMode = iota
	OpModeSlave
)

// String returns the mode name.
func (m OpMode) String() string {
	switch m {
	case OpModeSlave:
		return "slave"
	default:
		return "master"
	}
}
