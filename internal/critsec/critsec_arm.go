//go:build rp2040

package critsec

import "device/arm"

// primaskEnabled reports whether interrupts are currently unmasked: on
// ARMv6-M, PRIMASK==0 means interrupts are enabled (the bit, when set,
// raises the execution priority to mask everything but NMI/HardFault).
func primaskEnabled() bool {
	var primask uint32
	arm.AsmFull(`mrs r0, primask
		str r0, {primask}`,
		map[string]interface{}{"primask": &primask},
	)
	return primask&1 == 0
}

func disable() {
	arm.Asm("cpsid i")
}

func enable() {
	arm.Asm("cpsie i")
}
