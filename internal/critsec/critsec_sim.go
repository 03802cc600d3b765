//go:build !rp2040

// Hosted stand-in for development-machine tests: there is no PRIMASK to
// read here, so a package-level flag plays its role.
//
// The sim scheduler backend (switch_sim.go) runs each process on a real
// goroutine, so unlike actual PRIMASK this flag is touched from more than
// one goroutine across a handoff; atomic.Bool keeps that race-free without
// pretending the single-core semantics are anything more than illustrative.
package critsec

import "sync/atomic"

var enabled atomic.Bool

func init() { enabled.Store(true) }

func primaskEnabled() bool { return enabled.Load() }
func disable()              { enabled.Store(false) }
func enable()                { enabled.Store(true) }
