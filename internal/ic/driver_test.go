package ic

import "testing"

func TestDriverLoopsUntilQuantum(t *testing.T) {
	s := NewICState(6, 16, 512, 10)
	is := NewStationeersInstructionSet()
	lines := []string{"start:", "move r0 1", "j start"}
	p := NewProgram(s, lines)

	_, lerr := s.TryLineNumber("start")
	assert(t, lerr == nil, "start label should be bound by the pre-pass")

	err := RunTick(s, p, is)
	assert(t, err == nil, "tick should not error: %v", err)
	assert(t, s.InstrCounter == 10, "instr_counter should hit the quantum, got %d", s.InstrCounter)

	r0, _ := s.TryRegister("r0")
	v, _ := s.Register(r0.Slot)
	assert(t, v == 1, "r0 should be 1, got %v", v)
}

func TestDriverEmptyLineIsError(t *testing.T) {
	s := NewICState(6, 16, 512, 10)
	is := NewStationeersInstructionSet()
	lines := []string{"move r0 1", "", "move r1 2"}
	p := NewProgram(s, lines)

	err := RunTick(s, p, is)
	assert(t, err != nil, "empty line should error")
}

func TestDriverLabelOnlyLineIsNoOp(t *testing.T) {
	s := NewICState(6, 16, 512, 10)
	is := NewStationeersInstructionSet()
	lines := []string{"top:", "move r0 5", "hcf"}
	p := NewProgram(s, lines)

	err := RunTick(s, p, is)
	assert(t, err == nil, "tick should not error: %v", err)
	assert(t, s.InstrCounter == 3, "label, move, and hcf should each count, got %d", s.InstrCounter)
	assert(t, s.Halt, "hcf should set halt")
}

func TestDriverUnknownMnemonic(t *testing.T) {
	s := NewICState(6, 16, 512, 10)
	is := NewStationeersInstructionSet()
	lines := []string{"frobnicate r0"}
	p := NewProgram(s, lines)

	err := RunTick(s, p, is)
	assert(t, err != nil, "unknown mnemonic should error")
}

func TestDriverStopsAtQuantumAcrossTicks(t *testing.T) {
	s := NewICState(6, 16, 512, 2)
	is := NewStationeersInstructionSet()
	lines := []string{"move r0 1", "move r0 2", "move r0 3", "hcf"}
	p := NewProgram(s, lines)

	err := RunTick(s, p, is)
	assert(t, err == nil, "first tick should not error: %v", err)
	assert(t, s.InstrCounter == 2, "first tick should run exactly the quantum, got %d", s.InstrCounter)
	assert(t, s.NextLine == 2, "next_line should resume after the quantum, got %d", s.NextLine)

	err = RunTick(s, p, is)
	assert(t, err == nil, "second tick should not error: %v", err)
	assert(t, s.Halt, "second tick should reach hcf")

	r0, _ := s.TryRegister("r0")
	v, _ := s.Register(r0.Slot)
	assert(t, v == 3, "r0 should end at 3, got %v", v)
}
