package pkg

import "errors"

// Bus and transfer errors.
var (
	// ErrBus indicates an error on the physical bus (e.g. a misplaced
	// start or stop condition).
	ErrBus = errors.New("bus error")

	// ErrArbitrationLost indicates the controller lost bus arbitration.
	ErrArbitrationLost = errors.New("arbitration lost")

	// ErrNoAcknowledge indicates the target did not acknowledge an
	// address or data byte.
	ErrNoAcknowledge = errors.New("no acknowledge")

	// ErrOverrun indicates a software-buffer or FIFO overrun.
	ErrOverrun = errors.New("overrun")

	// ErrUnderrun indicates a FIFO underrun.
	ErrUnderrun = errors.New("underrun")

	// ErrTimeout indicates a bounded poll expired without the expected
	// hardware condition.
	ErrTimeout = errors.New("timeout")

	// ErrFraming indicates a serial framing error.
	ErrFraming = errors.New("framing error")

	// ErrParity indicates a serial parity error.
	ErrParity = errors.New("parity error")

	// ErrInvalidArgument indicates an argument outside the supported range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported indicates an unsupported operation or feature.
	ErrNotSupported = errors.New("not supported")

	// ErrBusy indicates the resource is busy.
	ErrBusy = errors.New("resource busy")
)
