//go:build rp2040

package sched

import (
	"device/arm"
	"encoding/binary"
	"reflect"
	"unsafe"
)

// contextSwitch is the one hand-written architecture-specific routine in
// this kernel: it saves prev's callee-saved state and restores next's,
// following joy/family.go's split of "what lives in the context struct"
// from "what lives on the task's own stack". AArch64 keeps every
// callee-saved register (x19-x28) inside its saved-state struct; Context
// here narrows that to {SP,FP,PC}, so the remaining callee-saved set
// (r4-r6, r8-r11) is pushed to prev's stack and popped from next's
// instead of living in Go struct fields.
//
// r7 is AAPCS's frame pointer on this profile, so it is captured directly
// into ctx.FP rather than pushed; r8-r11 have no 16-bit push/pop encoding
// on ARMv6-M, so they are copied through r4-r7 to be pushed and popped
// into r0-r3 to be restored. The frame this leaves
// on the stack is exactly 8 words (32 bytes), keeping SP 8-aligned at
// every save point without padding.
//
// contextSwitch does not return on the outgoing task. It returns on the
// incoming task's own later call to contextSwitch, at the point
// immediately following the AsmFull block below — from prev's point of
// view this is indistinguishable from an ordinary function return.
func contextSwitch(prev, next *Process) {
	arm.AsmFull(`
		str  r7, {prevfp}
		push {r4, r5, r6, lr}
		mov  r4, r8
		mov  r5, r9
		mov  r6, r10
		mov  r7, r11
		push {r4, r5, r6, r7}

		mov  r4, sp
		str  r4, {prevsp}

		ldr  r4, {nextsp}
		mov  sp, r4
		ldr  r7, {nextfp}

		pop  {r0, r1, r2, r3}
		mov  r8, r0
		mov  r9, r1
		mov  r10, r2
		mov  r11, r3
		pop  {r4, r5, r6, pc}
		`,
		map[string]interface{}{
			"prevfp": &prev.ctx.FP,
			"prevsp": &prev.ctx.SP,
			"nextsp": &next.ctx.SP,
			"nextfp": &next.ctx.FP,
		},
	)
}

// trampoline is the resume point primed onto a brand-new process's stack.
// It reads its own identity from currentProcess (set by Run/Yield/Exit
// before contextSwitch runs) rather than through registers smuggled in by
// the switch routine, since unlike joy/family.go's retFromFork this is an
// ordinary Go function with access to package state.
func trampoline() {
	p := currentProcess
	code := p.entry(p.args)
	Exit(code)
	panic("sched: unreachable: trampoline resumed after Exit")
}

var trampolineAddr = func() uint32 {
	// Thumb functions are always called through an odd address (bit 0
	// set) to select Thumb state on interworking branches; reflect
	// gives us the raw code pointer here the same way joy/console.go
	// already leans on reflect elsewhere in this codebase.
	pc := reflect.ValueOf(trampoline).Pointer()
	return uint32(pc) | 1
}()

// primeStack constructs the synthetic 8-word frame contextSwitch's
// restore half expects to find: mirrored r8-r11, then r4-r6, then the
// return address it will pop into PC. The mirrored/r4-r6 slots are never
// read on a first entry (trampoline takes its arguments from
// currentProcess, not registers) so they are left zeroed.
func primeStack(p *Process) {
	top := alignedTop(p.stack)
	frameSize := uint32(8 * 4)
	sp := top - frameSize

	frame := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(sp))), frameSize)
	for i := range frame {
		frame[i] = 0
	}
	binary.LittleEndian.PutUint32(frame[7*4:], trampolineAddr)

	p.ctx.SP = sp
	p.ctx.FP = 0
	p.ctx.PC = trampolineAddr
}
