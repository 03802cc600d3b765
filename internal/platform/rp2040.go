//go:build rp2040

package platform

import (
	"device/arm"
	"device/rp"
)

const (
	ledPin = 25 // RP2040 Pico onboard LED, GPIO25

	uartBaud = 115200
)

type rp2040Driver struct{}

// NewDriver returns the real RP2040 board driver.
func NewDriver() Driver {
	return rp2040Driver{}
}

func (rp2040Driver) Init() {
	initGPIO()
	initUART()
}

func initGPIO() {
	rp.IO_BANK0.GPIO25_CTRL.Set(5) // function select: SIO
	rp.SIO.GPIO_OE_SET.Set(1 << ledPin)
	rp.SIO.GPIO_OUT_CLR.Set(1 << ledPin)
}

func (rp2040Driver) LEDOn() {
	rp.SIO.GPIO_OUT_SET.Set(1 << ledPin)
}

func (rp2040Driver) LEDOff() {
	rp.SIO.GPIO_OUT_CLR.Set(1 << ledPin)
}

func (rp2040Driver) LEDToggle() {
	rp.SIO.GPIO_OUT_XOR.Set(1 << ledPin)
}

func initUART() {
	// Baud-rate divisor per the RP2040 datasheet's UART chapter: the
	// peripheral clock is fixed at boot to 125MHz on this board.
	const peripheralClockHz = 125_000_000
	baudRateDiv := (8 * peripheralClockHz) / uartBaud
	ibrd := baudRateDiv >> 7
	fbrd := ((baudRateDiv & 0x7f) + 1) / 2

	rp.UART0.UARTIBRD.Set(uint32(ibrd))
	rp.UART0.UARTFBRD.Set(uint32(fbrd))
	rp.UART0.UARTLCR_H.Set(0x3<<5 | 1<<4)   // 8 data bits, FIFOs enabled
	rp.UART0.UARTCR.Set(1<<0 | 1<<8 | 1<<9) // UARTEN, TXE, RXE
}

func (rp2040Driver) WriteString(s string) {
	writeCRLF(uartPutcRP2040, s)
}

func uartPutcRP2040(c byte) {
	for rp.UART0.UARTFR.Get()&(1<<5) != 0 {
		arm.Asm("nop") // wait for TXFF to clear
	}
	rp.UART0.UARTDR.Set(uint32(c))
}
