package ic

import (
	"fmt"
	"testing"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(fmt.Sprintf("%v %s", cond, format), args...)
	}
}

func newTestState() *ICState {
	return NewICState(6, 16, 512, 128)
}

func TestRegisterFileLength(t *testing.T) {
	s := newTestState()
	assert(t, s.NumRegisters() == 18, "expected 16+2 registers, got %d", s.NumRegisters())
	raAlias, err := s.TryRegister("ra")
	assert(t, err == nil, "ra should resolve: %v", err)
	assert(t, raAlias.Slot == s.NumRegisters()-2, "ra should be at len-2, got %d", raAlias.Slot)
	spAlias, err := s.TryRegister("sp")
	assert(t, err == nil, "sp should resolve: %v", err)
	assert(t, spAlias.Slot == s.NumRegisters()-1, "sp should be at len-1, got %d", spAlias.Slot)
}

func TestBuiltinAliasesPreSeeded(t *testing.T) {
	s := newTestState()
	for i := 0; i < 6; i++ {
		_, err := s.TryDevice(fmt.Sprintf("d%d", i))
		assert(t, err == nil, "d%d should resolve as device: %v", i, err)
	}
	for i := 0; i < 16; i++ {
		_, err := s.TryRegister(fmt.Sprintf("r%d", i))
		assert(t, err == nil, "r%d should resolve as register: %v", i, err)
	}
}

func TestAddAliasForcesNonBuiltin(t *testing.T) {
	s := newTestState()
	r0, _ := s.TryRegister("r0")
	s.AddAlias("counter", r0)
	a, err := s.TryRegister("counter")
	assert(t, err == nil, "counter should resolve: %v", err)
	assert(t, !a.IsBuiltin, "program-defined alias must not be builtin")
}

func TestTryNumberResolutionOrder(t *testing.T) {
	s := newTestState()
	r0, _ := s.TryRegister("r0")
	_ = s.SetRegister(r0, 42)
	v, err := s.TryNumber("r0")
	assert(t, err == nil && v == 42, "register value should resolve, got %v, %v", v, err)

	v, err = s.TryNumber("3.5")
	assert(t, err == nil && v == 3.5, "literal should resolve, got %v, %v", v, err)

	s.AddDefinition("pi", 3.14)
	v, err = s.TryNumber("pi")
	assert(t, err == nil && v == float32(3.14), "definition should resolve, got %v, %v", v, err)

	_, err = s.TryNumber("nope")
	assert(t, err != nil, "unresolvable token should fail")
}

func TestTryLineNumberResolutionOrder(t *testing.T) {
	s := newTestState()
	s.AddLabel("start", 7)
	l, err := s.TryLineNumber("start")
	assert(t, err == nil && l == 7, "label should resolve, got %v, %v", l, err)

	l, err = s.TryLineNumber("3")
	assert(t, err == nil && l == 3, "literal should resolve, got %v, %v", l, err)
}

func TestStackPushPopBalanced(t *testing.T) {
	s := newTestState()
	initialSP := s.SP()

	assert(t, s.Push(5) == nil, "push 5 should succeed")
	assert(t, s.Push(7) == nil, "push 7 should succeed")

	r0, _ := s.TryRegister("r0")
	r1, _ := s.TryRegister("r1")

	v, err := s.Pop()
	assert(t, err == nil && v == 7, "first pop should be 7, got %v, %v", v, err)
	_ = s.SetRegister(r0, v)

	v, err = s.Pop()
	assert(t, err == nil && v == 5, "second pop should be 5, got %v, %v", v, err)
	_ = s.SetRegister(r1, v)

	r0v, _ := s.Register(r0.Slot)
	r1v, _ := s.Register(r1.Slot)
	assert(t, r0v == 7, "r0 should be 7, got %v", r0v)
	assert(t, r1v == 5, "r1 should be 5, got %v", r1v)
	assert(t, s.SP() == initialSP, "sp should be restored, got %v want %v", s.SP(), initialSP)
}

func TestDeviceParamUnsetErrors(t *testing.T) {
	s := newTestState()
	dev, err := s.Device(0)
	assert(t, err == nil, "device 0 should exist: %v", err)
	_, err = dev.Param("Setting")
	assert(t, err != nil, "reading from an unset device should error")

	dev.SetParam("Setting", 9)
	v, err := dev.Param("Setting")
	assert(t, err == nil && v == 9, "set param should read back, got %v, %v", v, err)

	v, err = dev.Param("Missing")
	assert(t, err == nil && v == 0, "absent param on a set device should read 0, got %v, %v", v, err)
}

func TestBranchRelativeCompensatesPreIncrement(t *testing.T) {
	s := newTestState()
	s.NextLine = 5 // simulating the driver's pre-increment already applied
	s.Branch(3, true, true, false)
	assert(t, s.NextLine == 7, "relative branch should land at next_line+target-1, got %d", s.NextLine)
}

func TestBranchLinkWritesRA(t *testing.T) {
	s := newTestState()
	s.NextLine = 4
	s.Branch(10, false, false, true)
	assert(t, s.RA() == 4, "link variant should write ra with current next_line even when not taken, got %v", s.RA())
	assert(t, s.NextLine == 4, "untaken branch should not move next_line, got %d", s.NextLine)
}
