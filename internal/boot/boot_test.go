package boot

import "testing"

func TestZeroBSSClearsRegion(t *testing.T) {
	for i := range simBSS {
		simBSS[i] = 0xAA
	}
	ZeroBSS()
	for i, b := range simBSS {
		if b != 0 {
			t.Fatalf("simBSS[%d] = %#x, want 0", i, b)
		}
	}
}

func TestCopyDataCopiesSourceIntoDestination(t *testing.T) {
	for i := range simData {
		simData[i] = 0
	}
	CopyData()
	for i, want := range simDataSource {
		if simData[i] != want {
			t.Fatalf("simData[%d] = %#x, want %#x", i, simData[i], want)
		}
	}
}

func TestVectorNameCoversFixedSlots(t *testing.T) {
	cases := map[int]string{
		VectorReset:        "reset",
		VectorHardFault:    "hard-fault",
		VectorBusFault:     "bus-fault",
		VectorDebugMonitor: "debug-monitor",
		VectorSysTick:      "systick",
		8:                  "reserved",
		99:                 "unknown",
	}
	for slot, want := range cases {
		if got := vectorName(slot); got != want {
			t.Fatalf("vectorName(%d) = %q, want %q", slot, got, want)
		}
	}
}

func TestBuildVectorTableRoutesEveryOtherSlotToDefaultHandler(t *testing.T) {
	var resetCalls int
	reset := func() { resetCalls++ }

	table := BuildVectorTable(0xDEAD0000, reset)

	if table[VectorInitialSP] != 0xDEAD0000 {
		t.Fatalf("slot 0 = %#x, want the initial SP verbatim", table[VectorInitialSP])
	}
	wantReset := thumbAddr(reset)
	if table[VectorReset] != wantReset {
		t.Fatalf("slot 1 = %#x, want %#x", table[VectorReset], wantReset)
	}
	wantHandler := thumbAddr(defaultHandlerTrampoline)
	for i := 2; i < vectorTableLen; i++ {
		if table[i] != wantHandler {
			t.Fatalf("slot %d = %#x, want default handler address %#x", i, table[i], wantHandler)
		}
	}
}

func TestDefaultHandlerHaltsExactlyOnce(t *testing.T) {
	calls := 0
	prev := halt
	halt = func() { calls++ }
	defer func() { halt = prev }()

	DefaultHandler(VectorHardFault)

	if calls != 1 {
		t.Fatalf("halt called %d times, want 1", calls)
	}
}

func TestEntryRunsResetSequenceBeforeKmain(t *testing.T) {
	for i := range simBSS {
		simBSS[i] = 1
	}
	for i := range simData {
		simData[i] = 0
	}

	var sawZeroedBSS, sawCopiedData bool
	err := Entry(func() error {
		sawZeroedBSS = simBSS[0] == 0
		sawCopiedData = simData[0] == simDataSource[0]
		return nil
	})
	if err != nil {
		t.Fatalf("Entry returned error: %v", err)
	}
	if !sawZeroedBSS {
		t.Fatal("kmain ran before bss was zeroed")
	}
	if !sawCopiedData {
		t.Fatal("kmain ran before data was copied")
	}
}
