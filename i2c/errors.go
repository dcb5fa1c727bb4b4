package i2c

import (
	"fmt"

	"github.com/ardnew/jh71xx/i2c/hal"
	"github.com/ardnew/jh71xx/pkg"
)

// Kind classifies a transaction error.
type Kind uint8

// Error kinds.
const (
	// KindOther is a timeout or unclassified failure.
	KindOther Kind = iota
	// KindBus is an error on the physical bus.
	KindBus
	// KindArbitrationLoss means the controller lost bus arbitration.
	KindArbitrationLoss
	// KindNoAcknowledge means the target did not acknowledge an address
	// or data byte.
	KindNoAcknowledge
	// KindOverrun is a software-buffer or FIFO overrun.
	KindOverrun
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBus:
		return "bus"
	case KindArbitrationLoss:
		return "arbitration loss"
	case KindNoAcknowledge:
		return "no acknowledge"
	case KindOverrun:
		return "overrun"
	default:
		return "other"
	}
}

// NackSource identifies which transfer phase went unacknowledged.
type NackSource uint8

// No-acknowledge sources.
const (
	// NackUnknown means the phase could not be determined.
	NackUnknown NackSource = iota
	// NackAddress means an address byte was not acknowledged.
	NackAddress
	// NackData means a data byte was not acknowledged.
	NackData
)

// String returns the source name.
func (s NackSource) String() string {
	switch s {
	case NackAddress:
		return "address"
	case NackData:
		return "data"
	default:
		return "unknown"
	}
}

// Error is a transaction failure. Kind classifies it; Nack identifies the
// unacknowledged phase for KindNoAcknowledge; Abort preserves the raw
// TX_ABRT_SOURCE value when the failure came from a hardware abort.
type Error struct {
	Kind  Kind
	Nack  NackSource
	Abort hal.TxAbortSource

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindNoAcknowledge:
		return fmt.Sprintf("i2c: no acknowledge (%s phase, abort source %#x)", e.Nack, e.Abort.Bits())
	case e.Abort != hal.AbortNone:
		return fmt.Sprintf("i2c: %s (abort source %#x)", e.Kind, e.Abort.Bits())
	case e.cause != nil:
		return fmt.Sprintf("i2c: %s: %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("i2c: %s", e.Kind)
	}
}

// Unwrap maps the error onto the shared sentinel values so callers can
// classify with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindBus:
		return pkg.ErrBus
	case KindArbitrationLoss:
		return pkg.ErrArbitrationLost
	case KindNoAcknowledge:
		return pkg.ErrNoAcknowledge
	case KindOverrun:
		return pkg.ErrOverrun
	default:
		if e.cause != nil {
			return e.cause
		}
		return nil
	}
}

// errorFromAbort classifies a captured TX_ABRT_SOURCE value.
func errorFromAbort(src hal.TxAbortSource) *Error {
	switch {
	case src.IsSet(hal.AbortArbitrationLost):
		return &Error{Kind: KindArbitrationLoss, Abort: src}
	case src.IsSet(hal.Abort7BitAddrNoAck),
		src.IsSet(hal.Abort10BitAddr1NoAck),
		src.IsSet(hal.Abort10BitAddr2NoAck),
		src.IsSet(hal.AbortGenCallNoAck):
		return &Error{Kind: KindNoAcknowledge, Nack: NackAddress, Abort: src}
	case src.IsSet(hal.AbortTxDataNoAck):
		return &Error{Kind: KindNoAcknowledge, Nack: NackData, Abort: src}
	default:
		return &Error{Kind: KindOther, Abort: src}
	}
}

// errOverrun is the software-detected overrun failure; no register access
// precedes it.
func errOverrun() *Error {
	return &Error{Kind: KindOverrun}
}

// errTimeout wraps a poll-budget expiry as an unclassified failure.
func errTimeout(err error) *Error {
	return &Error{Kind: KindOther, cause: err}
}
