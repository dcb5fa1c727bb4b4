//go:build profile

// Package prof wraps [runtime/pprof] with a small on-demand profiling API.
//
// It is conditionally compiled with the "profile" build tag:
//
//	go build -tags profile
//
// Without the tag every exported function is a no-op, so profiling hooks
// can stay in place in tools like i2cmon at zero cost. When built with the
// tag, HTTP handlers are also registered at localhost:6060/debug/pprof/.
package prof

import (
	"errors"
	"io"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"

	_ "net/http/pprof" // register handlers at /debug/pprof/
)

func init() {
	go func() {
		println(http.ListenAndServe("localhost:6060", nil))
	}()
}

// Profiling errors.
var (
	// ErrCPUProfileActive indicates CPU profiling is already active.
	ErrCPUProfileActive = errors.New("cpu profile already active")

	// ErrInvalidProfile indicates an invalid or unsupported profile type.
	ErrInvalidProfile = errors.New("invalid profile")
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

var (
	cpuMutex  sync.Mutex
	cpuFile   *os.File
	cpuActive bool
)

// StartCPU starts CPU profiling and streams samples to a file at path.
// Returns [ErrCPUProfileActive] if CPU profiling is already active.
func StartCPU(path string) error {
	cpuMutex.Lock()
	defer cpuMutex.Unlock()

	if cpuActive {
		return ErrCPUProfileActive
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}

	cpuFile = f
	cpuActive = true
	return nil
}

// StopCPU stops CPU profiling. Safe to call when profiling is not active.
func StopCPU() {
	cpuMutex.Lock()
	defer cpuMutex.Unlock()

	if !cpuActive {
		return
	}
	pprof.StopCPUProfile()
	if cpuFile != nil {
		cpuFile.Close()
		cpuFile = nil
	}
	cpuActive = false
}

// Active reports whether CPU profiling is currently active.
func Active() bool {
	cpuMutex.Lock()
	defer cpuMutex.Unlock()
	return cpuActive
}

// Write captures a point-in-time snapshot of the named profile to a file
// at path. [ProfileCPU] cannot be snapshotted; use [StartCPU]/[StopCPU].
func Write(profile Profile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTo(profile, f, 0)
}

// WriteTo writes the named profile to w. Debug level 0 produces binary
// protobuf output for go tool pprof; level 1 produces readable text.
func WriteTo(profile Profile, w io.Writer, debug int) error {
	if profile == ProfileCPU {
		return ErrInvalidProfile
	}
	p := pprof.Lookup(string(profile))
	if p == nil {
		return ErrInvalidProfile
	}
	return p.WriteTo(w, debug)
}

// SetBlockProfileRate controls the fraction of goroutine blocking events
// recorded in the block profile. Zero disables block profiling.
func SetBlockProfileRate(rate int) {
	runtime.SetBlockProfileRate(rate)
}

// SetMutexProfileFraction controls the fraction of mutex contention events
// recorded in the mutex profile. Zero disables mutex profiling.
func SetMutexProfileFraction(fraction int) {
	runtime.SetMutexProfileFraction(fraction)
}
