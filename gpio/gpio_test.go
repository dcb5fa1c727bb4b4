package gpio

import (
	"errors"
	"testing"

	"github.com/ardnew/jh71xx/pkg"
)

type fakePinctrl struct {
	cfg  map[Pad]uint32
	doen map[uint32]uint32
	dout map[uint32]uint32
	din  map[uint32]uint32
	gpi  map[InputSignal]uint32
}

func newFakePinctrl() *fakePinctrl {
	return &fakePinctrl{
		cfg:  map[Pad]uint32{},
		doen: map[uint32]uint32{},
		dout: map[uint32]uint32{},
		din:  map[uint32]uint32{},
		gpi:  map[InputSignal]uint32{},
	}
}

func (f *fakePinctrl) PadCfg(pad Pad) uint32           { return f.cfg[pad] }
func (f *fakePinctrl) SetPadCfg(pad Pad, v uint32)     { f.cfg[pad] = v }
func (f *fakePinctrl) Doen(i uint32) uint32            { return f.doen[i] }
func (f *fakePinctrl) SetDoen(i uint32, v uint32)      { f.doen[i] = v }
func (f *fakePinctrl) Dout(i uint32) uint32            { return f.dout[i] }
func (f *fakePinctrl) SetDout(i uint32, v uint32)      { f.dout[i] = v }
func (f *fakePinctrl) Din(i uint32) uint32             { return f.din[i] }
func (f *fakePinctrl) Gpi(s InputSignal) uint32        { return f.gpi[s] }
func (f *fakePinctrl) SetGpi(s InputSignal, v uint32)  { f.gpi[s] = v }

var _ Pinctrl = (*fakePinctrl)(nil)

func TestNewRejectsInvalidPads(t *testing.T) {
	ctrl := newFakePinctrl()
	for _, pad := range []Pad{75, 80, 88, 95, 255} {
		if _, err := New(ctrl, pad); !errors.Is(err, pkg.ErrInvalidArgument) {
			t.Errorf("New(pad %d) error = %v, want invalid argument", pad, err)
		}
	}
	for _, pad := range []Pad{0, 63, 64, 74, 89, 94} {
		if _, err := New(ctrl, pad); err != nil {
			t.Errorf("New(pad %d) error = %v, want nil", pad, err)
		}
	}
}

func TestInputEnable(t *testing.T) {
	ctrl := newFakePinctrl()
	pin, _ := New(ctrl, 5)

	pin.EnableInput(true)
	if !pin.InputEnabled() {
		t.Error("input not enabled")
	}
	if ctrl.cfg[5]&CfgInputEnable == 0 {
		t.Error("input-enable bit not set in pad config")
	}

	pin.EnableInput(false)
	if pin.InputEnabled() {
		t.Error("input still enabled")
	}
}

func TestPullModesAreExclusive(t *testing.T) {
	ctrl := newFakePinctrl()
	pin, _ := New(ctrl, 7)

	pin.SetPull(PullUp)
	if got := pin.GetPull(); got != PullUp {
		t.Errorf("GetPull() = %v, want PullUp", got)
	}

	pin.SetPull(PullDown)
	if got := pin.GetPull(); got != PullDown {
		t.Errorf("GetPull() = %v, want PullDown", got)
	}
	if ctrl.cfg[7]&CfgPullUp != 0 {
		t.Error("pull-up still set after selecting pull-down")
	}

	pin.SetPull(PullNone)
	if got := pin.GetPull(); got != PullNone {
		t.Errorf("GetPull() = %v, want PullNone", got)
	}
	if ctrl.cfg[7]&(CfgPullUp|CfgPullDown) != 0 {
		t.Error("termination bits set in high-impedance mode")
	}
}

func TestDriveStrengthRoundTrip(t *testing.T) {
	ctrl := newFakePinctrl()
	pin, _ := New(ctrl, 12)

	for _, ds := range []DriveStrength{Drive2mA, Drive4mA, Drive8mA, Drive12mA} {
		pin.SetDriveStrength(ds)
		if got := pin.GetDriveStrength(); got != ds {
			t.Errorf("GetDriveStrength() = %v, want %v", got, ds)
		}
	}
	// Other config bits survive the field update.
	pin.EnableInput(true)
	pin.SetDriveStrength(Drive12mA)
	if !pin.InputEnabled() {
		t.Error("input-enable clobbered by drive-strength update")
	}
}

func TestOutputLevelFieldPlacement(t *testing.T) {
	ctrl := newFakePinctrl()

	// Pad 5 lives in word 1, byte 1 of the output multiplexer registers.
	pin, _ := New(ctrl, 5)
	pin.EnableOutput()
	if got := ctrl.doen[1] >> 8 & 0xFF; got != doenEnabled {
		t.Errorf("DOEN field = %d, want %d", got, doenEnabled)
	}

	pin.Set(true)
	if got := ctrl.dout[1] >> 8 & 0xFF; got != uint32(SignalHigh) {
		t.Errorf("DOUT field = %d, want constant high", got)
	}
	pin.Set(false)
	if got := ctrl.dout[1] >> 8 & 0xFF; got != uint32(SignalLow) {
		t.Errorf("DOUT field = %d, want constant low", got)
	}

	pin.DisableOutput()
	if got := ctrl.doen[1] >> 8 & 0xFF; got != doenDisabled {
		t.Errorf("DOEN field = %d after disable, want %d", got, doenDisabled)
	}
}

func TestOutputFieldDoesNotClobberNeighbors(t *testing.T) {
	ctrl := newFakePinctrl()
	ctrl.dout[0] = 0x11223344

	pin, _ := New(ctrl, 2)
	pin.Set(true)
	if got := ctrl.dout[0]; got != 0x11013344 {
		t.Errorf("DOUT word = %#x, want %#x", got, uint32(0x11013344))
	}
}

func TestInputLevel(t *testing.T) {
	ctrl := newFakePinctrl()
	ctrl.din[0] = 1 << 9
	ctrl.din[1] = 1 << 3

	pin9, _ := New(ctrl, 9)
	if !pin9.Get() {
		t.Error("pad 9 reads low, want high")
	}

	pin35, _ := New(ctrl, 35)
	if !pin35.Get() {
		t.Error("pad 35 reads low, want high")
	}

	pin10, _ := New(ctrl, 10)
	if pin10.Get() {
		t.Error("pad 10 reads high, want low")
	}

	// Dedicated pads have no level access.
	pin70, _ := New(ctrl, 70)
	if pin70.Get() {
		t.Error("dedicated pad reads high")
	}
}

func TestConnectOutputRoutesSignal(t *testing.T) {
	ctrl := newFakePinctrl()
	pin, _ := New(ctrl, 57)

	pin.ConnectOutput(SignalI2C0Clk)
	index, shift := muxField(57)
	if got := ctrl.dout[index] >> shift & 0xFF; got != uint32(SignalI2C0Clk) {
		t.Errorf("DOUT field = %d, want %d", got, SignalI2C0Clk)
	}
	if got := ctrl.doen[index] >> shift & 0xFF; got != doenEnabled {
		t.Errorf("DOEN field = %d, want enabled", got)
	}
}

func TestConnectInputOffsetsPadNumber(t *testing.T) {
	ctrl := newFakePinctrl()
	pin, _ := New(ctrl, 58)

	pin.ConnectInput(SignalI2C0DataIn)
	if got := ctrl.gpi[SignalI2C0DataIn]; got != 60 {
		t.Errorf("GPI value = %d, want pad+2 = 60", got)
	}
	if !pin.InputEnabled() {
		t.Error("input path not enabled for routed pad")
	}
}
