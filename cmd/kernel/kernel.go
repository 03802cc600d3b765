// Command kernel is C7: orchestrate boot, spawn the demo tasks, and run
// the scheduler until it drains — runtime setup, then hand off to the
// task list, the same two-step shape a bare-metal func main always has.
package main

import (
	"rp2kernel/internal/boot"
	"rp2kernel/internal/heap"
	"rp2kernel/internal/platform"
	"rp2kernel/internal/sched"
	"rp2kernel/internal/trust"
)

var board platform.Driver

// kmain is C7: platform init, heap init, spawn the demo tasks, run the
// scheduler. Called once by boot.Entry after .bss/.data are set up.
func kmain() error {
	board = platform.NewDriver()
	board.Init()
	trust.SetSink(board)

	start, end := boot.HeapBounds()
	heap.Init(start, end)

	spawnDemoTasks()

	sched.Run()
	trust.Warnf("no runnable processes, halting")
	return nil
}

// spawnDemoTasks is the kernel's demo workload: an on-task and an
// off-task toggling the board LED, yielding to each other so the LED
// visibly blinks under round-robin scheduling, plus a stats task that
// periodically reports the scheduler's own state through trust.Statsf.
func spawnDemoTasks() {
	on, err := sched.Spawn(ledOnTask, 0, sched.SpawnOptions{Name: "led-on"})
	if err != nil {
		trust.Errorf("spawn led-on: %s", err.Error())
		return
	}
	off, err := sched.Spawn(ledOffTask, 0, sched.SpawnOptions{Name: "led-off"})
	if err != nil {
		trust.Errorf("spawn led-off: %s", err.Error())
		return
	}
	stats, err := sched.Spawn(statsTask, 0, sched.SpawnOptions{Name: "stats"})
	if err != nil {
		trust.Errorf("spawn stats: %s", err.Error())
		return
	}
	sched.Enqueue(on)
	sched.Enqueue(off)
	sched.Enqueue(stats)
}

const blinkRounds = 10

func ledOnTask(uintptr) uint32 {
	for i := 0; i < blinkRounds; i++ {
		board.LEDOn()
		sched.Yield()
	}
	return 0
}

func ledOffTask(uintptr) uint32 {
	for i := 0; i < blinkRounds; i++ {
		board.LEDOff()
		sched.Yield()
	}
	return 0
}

// statsTask is the one caller of sched.Stats: once per round it emits a
// Statsf line naming how many processes are runnable, the way a real
// deployment would monitor scheduler health without needing a debugger
// attached.
func statsTask(uintptr) uint32 {
	for i := 0; i < blinkRounds; i++ {
		runnable, hasCurrent := sched.Stats()
		trust.Statsf("sched", "runnable=%d current=%t", runnable, hasCurrent)
		sched.Yield()
	}
	return 0
}
