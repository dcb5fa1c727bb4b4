package i2c

// Timings holds the electrical characteristics of the bus as measured or
// specified for the board. The engine stores and forwards these values;
// it never derives SCL clock counts from them.
type Timings struct {
	// BusFreqHz is the bus frequency class to operate in.
	BusFreqHz SpeedMode

	// SclRiseNs is the time the SCL signal takes to rise in ns; t(r) in
	// the I2C specification.
	SclRiseNs uint32

	// SclFallNs is the time the SCL signal takes to fall in ns; t(f) in
	// the I2C specification.
	SclFallNs uint32

	// SclIntDelayNs is the time the IP core additionally needs to set up
	// SCL in ns.
	SclIntDelayNs uint32

	// SdaFallNs is the time the SDA signal takes to fall in ns; t(f) in
	// the I2C specification.
	SdaFallNs uint32

	// SdaHoldNs is the time the IP core additionally needs to hold SDA in
	// ns.
	SdaHoldNs uint32

	// DigitalFilterWidthNs is the width in ns of spikes on the bus lines
	// that the IP core digital filter can filter out.
	DigitalFilterWidthNs uint32

	// AnalogFilterCutoffFreqHz is the threshold frequency for the low-pass
	// IP core analog filter.
	AnalogFilterCutoffFreqHz uint32
}

// Config carries everything the engine needs at construction: bus
// timings plus the pre-computed SCL high/low counts for each speed class.
// A zero count pair leaves that speed class's registers unprogrammed, and
// a zero SdaHoldTime leaves the hold-time register unprogrammed.
type Config struct {
	Timings Timings

	// Standard-speed SCL high/low counts (SS_SCL_HCNT / SS_SCL_LCNT).
	StdHcnt uint32
	StdLcnt uint32

	// Fast-speed SCL high/low counts (FS_SCL_HCNT / FS_SCL_LCNT).
	FastHcnt uint32
	FastLcnt uint32

	// High-speed SCL high/low counts (HS_SCL_HCNT / HS_SCL_LCNT).
	HighHcnt uint32
	HighLcnt uint32

	// SdaHoldTime is the SDA_HOLD register value.
	SdaHoldTime uint32
}
