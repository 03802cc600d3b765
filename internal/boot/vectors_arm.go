//go:build rp2040

package boot

import (
	"device/arm"
	"unsafe"
)

// resetEntry fills slot 1 of the relocated table. It is never actually
// jumped to by hardware — reset only ever reads the flash-resident boot
// table — but a real table has a real value in every slot.
func resetEntry() { halt() }

var installedVectorTable [vectorTableLen]uint32

// InstallVectorTable builds the relocated vector table and points
// SCB.VTOR at it — the same register field machine_rp2040_sync.go reads
// back with getVtable() to recover the live table. Called once from
// Entry, after .bss/.data are live (the table itself is a plain Go array
// and needs writable RAM to exist in).
func InstallVectorTable() {
	installedVectorTable = BuildVectorTable(uint32(StackTop()), resetEntry)
	arm.SCB.VTOR.Set(uint32(uintptr(unsafe.Pointer(&installedVectorTable[0]))))
}

// defaultHandlerTrampoline is the actual exception entry point for every
// vector BuildVectorTable doesn't give a dedicated handler: the CPU
// enters it directly (no arguments, per the AAPCS exception-handler
// convention), and it recovers which vector fired from the bottom six
// bits of IPSR before handing off to the ordinary Go DefaultHandler.
//
//go:nosplit
func defaultHandlerTrampoline() {
	var ipsr uint32
	arm.AsmFull("mrs {ipsr}, ipsr", map[string]interface{}{"ipsr": &ipsr})
	DefaultHandler(int(ipsr & 0x3F))
}
