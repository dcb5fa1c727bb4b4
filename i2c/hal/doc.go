// Package hal defines the register access capability for the DesignWare
// DW_apb_i2c controllers on JH71xx SoCs.
//
// It models each hardware register as a fixed-width bitfield type whose
// constructor masks reserved bits, and exposes the [Registers] interface:
// one get/set pair per physical register, implemented once per controller
// instance. The transaction engine in [github.com/ardnew/jh71xx/i2c]
// depends only on this interface, never on raw addresses.
//
// Concrete implementations:
//
//   - [github.com/ardnew/jh71xx/i2c/hal/mmio] - memory-mapped access for
//     on-target use
//   - [github.com/ardnew/jh71xx/i2c/hal/remote] - host-side access tunneled
//     over a serial debug monitor
//
// # Interrupt acknowledgement
//
// [ReadClearInterrupts] is the only sanctioned way to acknowledge pending
// interrupts. It uses each bit's dedicated clear register instead of the
// aggregate CLR_INTR register, which can silently swallow interrupts that
// arrive between the status read and the clear, and it captures
// TX_ABRT_SOURCE before acknowledging TX_ABRT because the acknowledgement
// zeroes that register.
package hal
