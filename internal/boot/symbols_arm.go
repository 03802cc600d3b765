//go:build rp2040

package boot

// These mirror runtime_rpi3.go's _sbss/_ebss go:extern declarations:
// zero-length placeholders whose addresses (not contents) the linker
// script resolves to the real section boundaries.

//go:extern __kernel_bss_start
var kernelBSSStart [0]byte

//go:extern __kernel_bss_end
var kernelBSSEnd [0]byte

//go:extern __kernel_data_start
var kernelDataStart [0]byte

//go:extern __kernel_data_end
var kernelDataEnd [0]byte

//go:extern __kernel_data_source
var kernelDataSource [0]byte

//go:extern __kernel_stack_end
var kernelStackEnd [0]byte

//go:extern __kernel_heap_start
var kernelHeapStart [0]byte

//go:extern __kernel_heap_end
var kernelHeapEnd [0]byte
