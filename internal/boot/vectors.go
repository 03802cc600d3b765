// Package boot is the reset path: zeroing .bss, copying .data out of
// flash, and building + installing the 16-word ARMv6-M exception vector
// table, generalized from runtime_rpi3.go's postinit()/_sbss/_ebss
// pattern and joy/exception.go's log-then-deadloop handler.
package boot

import (
	"reflect"

	"rp2kernel/internal/trust"
)

var log = trust.Scoped("boot")

// Fixed ARMv6-M vector slot numbers (ARMv6-M ARM, table B1-1). Slot 0 is
// not an exception at all — it is the initial stack pointer value loaded
// directly into SP on reset. mem_manage/bus_fault/usage_fault/
// debug_monitor are reserved on this profile (they are ARMv7-M+
// features) but named here anyway for parity with the full Cortex-M
// vector layout.
const (
	VectorInitialSP    = 0
	VectorReset        = 1
	VectorNMI          = 2
	VectorHardFault    = 3
	VectorMemManage    = 4
	VectorBusFault     = 5
	VectorUsageFault   = 6
	VectorSVCall       = 11
	VectorDebugMonitor = 12
	VectorPendSV       = 14
	VectorSysTick      = 15
	vectorTableLen     = 16
)

var vectorNames = [vectorTableLen]string{
	VectorInitialSP:    "initial-sp",
	VectorReset:        "reset",
	VectorNMI:          "nmi",
	VectorHardFault:    "hard-fault",
	VectorMemManage:    "mem-manage",
	VectorBusFault:     "bus-fault",
	VectorUsageFault:   "usage-fault",
	VectorSVCall:       "svcall",
	VectorDebugMonitor: "debug-monitor",
	VectorPendSV:       "pendsv",
	VectorSysTick:      "systick",
}

// vectorName returns the exception's name, or "reserved" for the unused
// slots ARMv6-M leaves in the middle of the table.
func vectorName(slot int) string {
	if slot < 0 || slot >= vectorTableLen {
		return "unknown"
	}
	if name := vectorNames[slot]; name != "" {
		return name
	}
	return "reserved"
}

// halt is what a default exception handler does after logging: spin
// forever. Tests override it so DefaultHandler is exercised without
// hanging the test binary.
var halt = func() {
	for {
	}
}

// DefaultHandler is installed for every vector this kernel does not give
// a real handler to. It logs the exception's name at fatal level (never
// masked, see internal/trust) and halts — there is no fault recovery
// path: this kernel has no preemption or MMU to recover through.
func DefaultHandler(slot int) {
	log.Fatalf("unhandled exception: %s (vector %d)", vectorName(slot), slot)
	halt()
}

// thumbAddr returns f's code address with the Thumb interworking bit
// set, the same technique internal/sched uses to address its trampoline:
// f is an ordinary Go function, not a linked asm symbol, so there is no
// other way to get a stable address for it.
func thumbAddr(f func()) uint32 {
	return uint32(reflect.ValueOf(f).Pointer()) | 1
}

// BuildVectorTable returns the 16-word vector table this kernel installs
// once it has live RAM: slot 0 is the initial stack pointer, slot 1 is
// reset (observational only — the hardware reads the flash-resident boot
// table's own slot 0/1 once, at power-on, before VTOR can be
// reprogrammed to point here), and every other slot routes to
// defaultHandlerTrampoline, which recovers the active vector number from
// IPSR and calls DefaultHandler with it. This is what "all other entries
// default to DefaultHandler" means in practice on this architecture.
func BuildVectorTable(initialSP uint32, reset func()) [vectorTableLen]uint32 {
	var t [vectorTableLen]uint32
	t[VectorInitialSP] = initialSP
	t[VectorReset] = thumbAddr(reset)
	handler := thumbAddr(defaultHandlerTrampoline)
	for i := 2; i < vectorTableLen; i++ {
		t[i] = handler
	}
	return t
}
