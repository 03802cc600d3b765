// Package platform is the kernel's hardware boundary: LED and console UART
// access behind a single interface, with one implementation per build tag
// the way mazarin's platform_unsupported.go/uart_qemu.go/uart_rpi.go pick
// an implementation file by build tag rather than by runtime branching.
package platform

// Driver is the set of board operations the kernel needs. Exactly one
// build-tagged file in this package provides NewDriver.
type Driver interface {
	// Init brings up the UART and GPIO this kernel depends on. Called
	// once, before the scheduler starts.
	Init()

	// LEDOn/LEDOff/LEDToggle drive the board's status LED, used by the
	// demo processes cmd/kernel spawns.
	LEDOn()
	LEDOff()
	LEDToggle()

	// WriteString writes a log line to the console UART. Driver
	// implements trust.Sink directly so it can be passed to
	// trust.SetSink.
	WriteString(s string)
}

// writeCRLF calls putc for every byte of s, expanding each '\n' into
// "\r\n" first: every WriteString implementation in this package
// transmits through this so the wire format is consistent no matter
// which board the driver is talking to.
func writeCRLF(putc func(byte), s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			putc('\r')
		}
		putc(s[i])
	}
}
