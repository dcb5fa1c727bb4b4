// Package i2c implements a synchronous master-mode transaction engine for
// the DesignWare DW_apb_i2c controllers on JH71xx SoCs.
//
// The engine owns one controller instance through the
// [github.com/ardnew/jh71xx/i2c/hal.Registers] capability and never
// touches raw addresses. It turns an ordered list of read/write
// operations addressed to a remote target into correctly-ordered register
// writes, FIFO-occupancy-aware chunking, restart/stop bit placement, and
// recovery from a stuck bus.
//
// # Usage
//
//	regs := mmio.I2C0()
//	d := delay.U74(readCycleCounter)
//	bus := i2c.New(regs, d, i2c.Config{
//	    Timings:  i2c.Timings{BusFreqHz: i2c.SpeedModeFast},
//	    FastHcnt: 0x87, FastLcnt: 0x10,
//	})
//	bus.InitMaster()
//
//	err := bus.Transaction(0x50, []i2c.Operation{
//	    i2c.Write([]byte{0x00}),
//	    i2c.Read(make([]byte, 16)),
//	})
//
// The engine also satisfies the Tx contract used by tinygo.org/x/drivers
// device drivers:
//
//	sensor := bmp280.New(bus)
//
// # Concurrency
//
// Every operation either completes immediately or busy-polls a hardware
// register in place; there is no interrupt-driven path. The engine
// assumes exclusive ownership of its controller for its entire lifetime
// and performs no internal locking. Timeout budgets are cycle-counter
// based and tolerant of counter wraparound.
//
// # Clock timing
//
// The engine never derives SCL high/low counts from a requested bus
// frequency. Counts must be pre-computed for the board's trace
// characteristics and supplied through [Config]; a zero pair for a speed
// class leaves that class's registers unprogrammed.
package i2c
