//go:build qemu

package platform

import "device/arm"

// QEMU's RP2040 machine model (a qemu-system-arm raspi-pico-equivalent
// machine) exposes the same UART0 MMIO layout as
// real silicon but no real LED GPIO, so LED operations are no-ops here
// rather than touching memory that may not be modeled.
type qemuDriver struct{}

// NewDriver returns the QEMU-targeted board driver.
func NewDriver() Driver {
	return qemuDriver{}
}

func (qemuDriver) Init() {
	initUART()
}

func (qemuDriver) LEDOn()     {}
func (qemuDriver) LEDOff()    {}
func (qemuDriver) LEDToggle() {}

func (qemuDriver) WriteString(s string) {
	writeCRLF(func(c byte) {
		for uartFlagsFull() {
			arm.Asm("nop")
		}
		uartPutc(c)
	}, s)
}
