//go:build !profile

package prof

import "io"

// Profiling errors (defined for API compatibility, never returned by stubs).
var (
	ErrCPUProfileActive error
	ErrInvalidProfile   error
)

// Profile names a pprof profile type.
type Profile string

// Profile type constants.
const (
	ProfileCPU       Profile = "cpu"
	ProfileHeap      Profile = "heap"
	ProfileAllocs    Profile = "allocs"
	ProfileGoroutine Profile = "goroutine"
	ProfileBlock     Profile = "block"
	ProfileMutex     Profile = "mutex"
)

// String returns the string representation of the profile type.
func (p Profile) String() string {
	return string(p)
}

// StartCPU is a no-op without the "profile" build tag.
func StartCPU(_ string) error { return nil }

// StopCPU is a no-op without the "profile" build tag.
func StopCPU() {}

// Active always reports false without the "profile" build tag.
func Active() bool { return false }

// Write is a no-op without the "profile" build tag.
func Write(_ Profile, _ string) error { return nil }

// WriteTo is a no-op without the "profile" build tag.
func WriteTo(_ Profile, _ io.Writer, _ int) error { return nil }

// SetBlockProfileRate is a no-op without the "profile" build tag.
func SetBlockProfileRate(_ int) {}

// SetMutexProfileFraction is a no-op without the "profile" build tag.
func SetMutexProfileFraction(_ int) {}
