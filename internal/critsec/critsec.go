// Package critsec is the kernel's only interrupt-masking primitive: a
// scoped "disable interrupts" region built on ARMv6-M's PRIMASK bit,
// modeled on lib/upbeat's MaskDAIF/UnmaskDAIF pair but carrying the prior
// state in the returned Guard instead of a bare function call, so nested
// Enter/Exit pairs compose correctly.
package critsec

// Guard is the token returned by Enter. Its field is unexported so a
// caller outside this package can't forge one with the wrong prior state;
// a zero Guard never re-enables interrupts, so the only way to get one
// that does is to call Enter.
type Guard struct {
	wasEnabled bool
}

// Enter samples whether interrupts are currently enabled, disables them,
// and returns a Guard that remembers the prior state. Safe to nest: an
// inner Enter/Exit pair never re-enables interrupts an outer pair is still
// relying on having disabled.
func Enter() Guard {
	wasEnabled := primaskEnabled()
	disable()
	return Guard{wasEnabled: wasEnabled}
}

// Exit re-enables interrupts only if they were enabled when the matching
// Enter ran.
func (g Guard) Exit() {
	if g.wasEnabled {
		enable()
	}
}
