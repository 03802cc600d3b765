// Package heap is the kernel's process-stack allocator: a bump allocator
// over a single linker-provided region, deliberately simpler than
// lib/upbeat's unfinished buddy allocator (see DESIGN.md) since nothing
// in this kernel ever frees a stack before the process it belongs to has
// been reaped, and a bump allocator is the smallest structure that can
// satisfy that.
package heap

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory is returned once the region is exhausted. There is no
// free, so this is permanent for the lifetime of the allocator.
var ErrOutOfMemory = errors.New("heap: out of memory")

// ErrNotInitialized is returned by the package-level Alloc before Init
// has run.
var ErrNotInitialized = errors.New("heap: not initialized")

// Allocator hands out non-overlapping byte slices from [start, end) in
// address order, aligning each allocation up to the requested boundary.
type Allocator struct {
	start, end uintptr
	next       uintptr
}

// New wraps [start, end) for bump allocation. end must be >= start.
func New(start, end uintptr) *Allocator {
	return &Allocator{start: start, end: end, next: start}
}

// Alloc returns a size-byte slice aligned to align bytes, or
// ErrOutOfMemory if the region cannot satisfy the request. align must be
// a power of two; 0 is treated as 1.
func (a *Allocator) Alloc(size, align uintptr) ([]byte, error) {
	if align == 0 {
		align = 1
	}
	base := (a.next + align - 1) &^ (align - 1)
	end := base + size
	if end < base || end > a.end {
		return nil, ErrOutOfMemory
	}
	a.next = end
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), size), nil
}

// Bounds reports the region this allocator was created with.
func (a *Allocator) Bounds() (start, end uintptr) {
	return a.start, a.end
}

// Used reports how many bytes have been handed out, including alignment
// padding.
func (a *Allocator) Used() uintptr {
	return a.next - a.start
}

var kernelHeap *Allocator

// Init installs the package-level kernel heap over [start, end). Called
// once during boot with the region internal/boot reports from the
// __kernel_heap_start/__kernel_heap_end linker symbols.
func Init(start, end uintptr) {
	kernelHeap = New(start, end)
}

// Alloc allocates from the package-level kernel heap installed by Init.
func Alloc(size, align uintptr) ([]byte, error) {
	if kernelHeap == nil {
		return nil, ErrNotInitialized
	}
	return kernelHeap.Alloc(size, align)
}
