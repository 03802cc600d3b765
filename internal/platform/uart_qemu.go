//go:build qemu

package platform

import (
	"runtime/volatile"
	"unsafe"
)

// PL011 UART0 registers at the RP2040's fixed peripheral address, the same
// register offsets mazarin's uart_qemu.go uses for the QEMU virt machine's
// PL011, just at this SoC's real base address rather than virt's.
const uart0Base = 0x40034000

var (
	uartDR   = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0Base + 0x00)))
	uartFR   = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0Base + 0x18)))
	uartIBRD = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0Base + 0x24)))
	uartFBRD = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0Base + 0x28)))
	uartLCRH = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0Base + 0x2C)))
	uartCR   = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0Base + 0x30)))
)

func initUART() {
	const peripheralClockHz = 125_000_000
	const baud = 115200
	div := (8 * peripheralClockHz) / baud
	uartIBRD.Set(uint32(div >> 7))
	uartFBRD.Set(uint32(((div & 0x7f) + 1) / 2))
	uartLCRH.Set(0x3 << 5)
	uartCR.Set(1<<0 | 1<<8 | 1<<9)
}

func uartFlagsFull() bool {
	return uartFR.Get()&(1<<5) != 0
}

func uartPutc(c byte) {
	uartDR.Set(uint32(c))
}
