package critsec

import "testing"

func TestEnterExitRestoresPriorState(t *testing.T) {
	if !primaskEnabled() {
		t.Fatal("expected interrupts enabled at test start")
	}
	g := Enter()
	if primaskEnabled() {
		t.Fatal("Enter did not disable interrupts")
	}
	g.Exit()
	if !primaskEnabled() {
		t.Fatal("Exit did not restore the prior enabled state")
	}
}

func TestNestedEnterExitIsIdempotent(t *testing.T) {
	outer := Enter()
	inner := Enter()
	if primaskEnabled() {
		t.Fatal("expected interrupts disabled inside nested guards")
	}
	inner.Exit()
	if primaskEnabled() {
		t.Fatal("inner Exit should not have re-enabled interrupts while outer guard is live")
	}
	outer.Exit()
	if !primaskEnabled() {
		t.Fatal("outer Exit should have restored interrupts")
	}
}

func TestEnterExitFromAlreadyDisabledState(t *testing.T) {
	disable()
	defer enable()

	g := Enter()
	if primaskEnabled() {
		t.Fatal("expected interrupts still disabled")
	}
	g.Exit()
	if primaskEnabled() {
		t.Fatal("Exit should not enable interrupts that were already disabled on Enter")
	}
}
