// Package sched implements the cooperative round-robin scheduler: an
// intrusive run-queue of Process values switched between by contextSwitch,
// whose save/restore half is architecture-specific (switch_arm.go on
// rp2040, switch_sim.go everywhere else) but whose bookkeeping — the
// queue, Create/Spawn, Yield/Exit — is shared. The split mirrors
// joy/schedule.go's scheduleInternal/switchToDomain pair generalized off
// a single fixed CPU count down to the one ARMv6-M core this kernel
// targets.
package sched

import (
	"unsafe"

	"rp2kernel/internal/critsec"
	"rp2kernel/internal/heap"
	"rp2kernel/internal/trust"
)

// EntryFunc is a process's body. Its return value becomes the exit code
// observed through Process.ExitCode after the process terminates, whether
// by returning or by calling Exit directly.
type EntryFunc func(args uintptr) uint32

const (
	minStackBytes   = 128
	stackAlignment  = 8
	defaultStackSize = 1024
)

// Process is one schedulable task: its entry point, argument, stack, and
// saved Context, plus the intrusive run-queue links. Process values are
// never copied after Create; Spawn and Create both return a pointer.
type Process struct {
	Name string

	entry EntryFunc
	args  uintptr
	stack []byte

	ctx Context

	exitCode *uint32

	queued     bool
	prev, next *Process

	// Sim-backend bookkeeping only; the rp2040 build allocates resumeCh
	// in Create but never uses either field. See switch_sim.go.
	resumeCh chan struct{}
	launched bool
}

// ExitCode reports the process's exit code and whether it has terminated.
func (p *Process) ExitCode() (code uint32, exited bool) {
	if p.exitCode == nil {
		return 0, false
	}
	return *p.exitCode, true
}

var log = trust.Scoped("sched")

// kernelProcess stands in for the execution context that called Run: it
// never runs an EntryFunc and is never enqueued, but it is a valid switch
// target so the last exiting process has somewhere to switch back to.
var kernelProcess = &Process{Name: "kernel", resumeCh: make(chan struct{})}

var (
	queue          runQueue
	currentProcess *Process
)

// alignedTop returns the 8-byte-aligned address one past the usable end
// of stack, i.e. the address a full stack would leave SP at.
func alignedTop(stack []byte) uint32 {
	top := uintptr(unsafe.Pointer(&stack[0])) + uintptr(len(stack))
	top &^= uintptr(stackAlignment - 1)
	return uint32(top)
}

// Create builds a Process around an already-allocated stack. It panics if
// the stack is too small or insufficiently aligned to hold the synthetic
// register frame contextSwitch expects to find on first entry — this is
// checked once, here, rather than on every switch.
func Create(entry EntryFunc, args uintptr, stack []byte, name string) *Process {
	if len(stack) < minStackBytes {
		panic("sched: stack too small for " + name)
	}
	if uintptr(unsafe.Pointer(&stack[0]))%stackAlignment != 0 {
		panic("sched: stack misaligned for " + name)
	}
	p := &Process{
		Name:     name,
		entry:    entry,
		args:     args,
		stack:    stack,
		resumeCh: make(chan struct{}),
	}
	primeStack(p)
	return p
}

// SpawnOptions configures Spawn. A zero StackSize means defaultStackSize.
type SpawnOptions struct {
	StackSize uint32
	Name      string
}

// Spawn allocates a stack from the kernel heap and creates a Process on
// it. Unlike Create, Spawn can fail: the heap is a bump allocator with no
// free, so running out is a real, reportable condition rather than a
// programmer error.
func Spawn(entry EntryFunc, args uintptr, opts SpawnOptions) (*Process, error) {
	size := opts.StackSize
	if size == 0 {
		size = defaultStackSize
	}
	stack, err := heap.Alloc(uintptr(size), stackAlignment)
	if err != nil {
		return nil, err
	}
	return Create(entry, args, stack, opts.Name), nil
}

// Enqueue makes p runnable. A p that is already queued is left alone —
// silent, not fatal; avoiding a double-enqueue is the caller's duty.
func Enqueue(p *Process) {
	queue.enqueue(p)
}

// Run installs the calling context as the kernel process and switches
// into the head of the run-queue. It returns once every process has
// exited and the queue has drained back to the kernel process — never
// earlier.
func Run() {
	if currentProcess != nil {
		panic("sched: Run called with a process already current")
	}
	if queue.empty() {
		currentProcess = kernelProcess
		log.Warnf("Run: no runnable processes")
		return
	}
	next := queue.popHead()
	prev := kernelProcess
	currentProcess = next
	doSwitch(prev, next)
}

// Yield re-enqueues the calling process at the tail of the run-queue and
// switches to the new head. Calling Yield from the kernel process (i.e.
// outside any Process's EntryFunc) is a programming error.
func Yield() {
	prev := currentProcess
	if prev == nil || prev == kernelProcess {
		panic("sched: Yield called outside any process")
	}
	queue.enqueue(prev)
	next := queue.popHead()
	currentProcess = next
	doSwitch(prev, next)
}

// Exit terminates the calling process with the given code and switches to
// the next runnable process, or back to the kernel process if the queue
// is empty. Exit never returns.
func Exit(code uint32) {
	prev := currentProcess
	if prev == nil || prev == kernelProcess {
		panic("sched: Exit called outside any process")
	}
	if prev.exitCode != nil {
		panic("sched: Exit called twice on " + prev.Name)
	}
	ec := code
	prev.exitCode = &ec

	var next *Process
	if !queue.empty() {
		next = queue.popHead()
	} else {
		next = kernelProcess
	}
	currentProcess = next
	doSwitch(prev, next)
	panic("sched: unreachable: exited process resumed")
}

// doSwitch brackets the architecture-specific register save/restore in a
// critical section, mirroring joy/schedule.go's
// DisableIRQAndFIQ/cpuSwitchTo/EnableIRQAndFIQ bracket. prev == next is a
// valid no-op case (a lone runnable process yielding to itself).
func doSwitch(prev, next *Process) {
	if prev == next {
		return
	}
	g := critsec.Enter()
	contextSwitch(prev, next)
	g.Exit()
}

// Stats reports the number of runnable (queued, not current) processes
// and whether a process is presently executing. It is read by the
// periodic Statsf line cmd/kernel emits, not consulted by the scheduler
// itself.
func Stats() (runnable int, hasCurrent bool) {
	return queue.count, currentProcess != nil && currentProcess != kernelProcess
}
