//go:build !rp2040 && !qemu

package platform

import "sync"

// simDriver is the hosted default: no real tag is required to run this
// package's tests or exercise the scheduler against a fake board, which
// is deliberately different from mazarin's platform_unsupported.go
// (DESIGN.md) — that trick forbids an untagged build outright, but this
// kernel's own test strategy depends on an untagged build being valid.
type simDriver struct {
	mu      sync.Mutex
	led     bool
	written []byte
}

// NewDriver returns the hosted simulated board driver.
func NewDriver() Driver {
	return &simDriver{}
}

func (d *simDriver) Init() {}

func (d *simDriver) LEDOn() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.led = true
}

func (d *simDriver) LEDOff() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.led = false
}

func (d *simDriver) LEDToggle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.led = !d.led
}

// LEDState reports the simulated LED's state, for tests.
func (d *simDriver) LEDState() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.led
}

func (d *simDriver) WriteString(s string) {
	writeCRLF(func(c byte) {
		d.mu.Lock()
		d.written = append(d.written, c)
		d.mu.Unlock()
	}, s)
}

// Written returns everything WriteString has accumulated, for tests.
func (d *simDriver) Written() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.written)
}
