//go:build !rp2040

package boot

import "unsafe"

// The hosted build has no linker script, so ZeroBSS/CopyData perform the
// same zero/copy steps as reset_arm.go against plain Go-owned backing
// arrays instead of real section boundaries (byte-wise here, where
// reset_arm.go works a word at a time). This is what lets
// TestZeroBSSClearsRegion and friends run under `go test`.
var (
	simBSS        = make([]byte, 64)
	simDataSource = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	simData       = make([]byte, len(simDataSource))
	simHeap       = make([]byte, 4096)
	simStack      = make([]byte, 4096)
)

func ZeroBSS() {
	for i := range simBSS {
		simBSS[i] = 0
	}
}

func CopyData() {
	copy(simData, simDataSource)
}

func HeapBounds() (start, end uintptr) {
	start = uintptr(unsafe.Pointer(&simHeap[0]))
	return start, start + uintptr(len(simHeap))
}

func StackTop() uintptr {
	return uintptr(unsafe.Pointer(&simStack[0])) + uintptr(len(simStack))
}

// Entry mirrors reset_arm.go's Entry without ever halting for real, so
// tests can observe kmain's return value.
func Entry(kmain func() error) error {
	ZeroBSS()
	CopyData()
	if err := kmain(); err != nil {
		log.Fatalf("kmain returned: %s", err.Error())
		return err
	}
	return nil
}
