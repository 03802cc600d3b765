package sched

// Context is the minimum saved-state shape sufficient to resume
// execution on ARMv6-M, where r7 doubles as the AAPCS frame pointer.
// Every other callee-saved register (r4-r6, r8-r11) is preserved on the task's own
// stack by contextSwitch, not in this struct — see switch_arm.go.
//
// PC is only meaningful at creation time: it seeds the synthetic return
// address a freshly primed stack resumes at. Once a process has run at
// least once, its "current PC" lives entirely in the LR slot of its own
// stack frame; contextSwitch neither reads nor writes this field again.
type Context struct {
	SP uint32
	FP uint32
	PC uint32
}
