package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{
		ErrBus,
		ErrArbitrationLost,
		ErrNoAcknowledge,
		ErrOverrun,
		ErrUnderrun,
		ErrTimeout,
		ErrFraming,
		ErrParity,
		ErrInvalidArgument,
		ErrNotSupported,
		ErrBusy,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches unrelated sentinel %v", a, b)
			}
		}
	}
}

func TestSentinelErrorsWrap(t *testing.T) {
	err := fmt.Errorf("read register: %w", ErrTimeout)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("wrapped error does not match ErrTimeout: %v", err)
	}
	if errors.Is(err, ErrBus) {
		t.Errorf("wrapped error matches unrelated ErrBus: %v", err)
	}
}
