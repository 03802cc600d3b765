//go:build rp2040

package boot

import "unsafe"

// ZeroBSS word-wise zeroes [__kernel_bss_start, __kernel_bss_end), the
// first thing the reset handler does after SP is live.
func ZeroBSS() {
	start := uintptr(unsafe.Pointer(&kernelBSSStart))
	end := uintptr(unsafe.Pointer(&kernelBSSEnd))
	for p := start; p < end; p += 4 {
		*(*uint32)(unsafe.Pointer(p)) = 0
	}
}

// CopyData word-wise copies .data's flash-resident initial image into its
// RAM location.
func CopyData() {
	src := uintptr(unsafe.Pointer(&kernelDataSource))
	dst := uintptr(unsafe.Pointer(&kernelDataStart))
	end := uintptr(unsafe.Pointer(&kernelDataEnd))
	for dst < end {
		*(*uint32)(unsafe.Pointer(dst)) = *(*uint32)(unsafe.Pointer(src))
		dst += 4
		src += 4
	}
}

// HeapBounds returns the linker-provided kernel heap region.
func HeapBounds() (start, end uintptr) {
	return uintptr(unsafe.Pointer(&kernelHeapStart)), uintptr(unsafe.Pointer(&kernelHeapEnd))
}

// StackTop is the address the vector table's slot 0 loads into SP on
// reset.
func StackTop() uintptr {
	return uintptr(unsafe.Pointer(&kernelStackEnd))
}

// Entry runs the fixed reset sequence — zero bss, copy data, then hand
// off to kmain — and never returns: if kmain returns an error it is
// logged at fatal level and the core halts, matching joy/exception.go's
// log-then-deadloop shape.
func Entry(kmain func() error) {
	ZeroBSS()
	CopyData()
	InstallVectorTable()
	if err := kmain(); err != nil {
		log.Fatalf("kmain returned: %s", err.Error())
	}
	halt()
}
