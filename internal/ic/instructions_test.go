package ic

import (
	"strconv"
	"testing"
)

func runLine(t *testing.T, s *ICState, is *InstructionSet, line string) error {
	t.Helper()
	tokens := tokenize(line)
	return is.Run(s, tokens[0], tokens[1:])
}

func TestArithAddAndMove(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	assert(t, runLine(t, s, is, "move r0 2") == nil, "move should succeed")
	assert(t, runLine(t, s, is, "add r1 r0 3") == nil, "add should succeed")

	r1, _ := s.TryRegister("r1")
	v, _ := s.Register(r1.Slot)
	assert(t, v == 5, "r1 should be 5, got %v", v)
}

func TestModFollowsDividendSign(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	assert(t, runLine(t, s, is, "mod r0 -5 3") == nil, "mod should succeed")
	r0, _ := s.TryRegister("r0")
	v, _ := s.Register(r0.Slot)
	assert(t, v == -2, "mod should take dividend sign, got %v", v)
}

func TestLogicXorTruthTable(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	cases := []struct {
		a, b, want float32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
	}
	for _, c := range cases {
		assert(t, runLine(t, s, is, "move r1 "+strconv.Itoa(int(c.a))) == nil, "setup r1 failed")
		assert(t, runLine(t, s, is, "move r2 "+strconv.Itoa(int(c.b))) == nil, "setup r2 failed")
		assert(t, runLine(t, s, is, "xor r0 r1 r2") == nil, "xor should succeed")
		r0, _ := s.TryRegister("r0")
		v, _ := s.Register(r0.Slot)
		assert(t, v == c.want, "xor(%v,%v) should be %v, got %v", c.a, c.b, c.want, v)
	}
}

func TestSelectPicksBranchByPredicate(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	assert(t, runLine(t, s, is, "select r0 0 11 22") == nil, "select should succeed")
	r0, _ := s.TryRegister("r0")
	v, _ := s.Register(r0.Slot)
	assert(t, v == 11, "select with a==0 should choose b, got %v", v)

	assert(t, runLine(t, s, is, "select r0 1 11 22") == nil, "select should succeed")
	v, _ = s.Register(r0.Slot)
	assert(t, v == 22, "select with a!=0 should choose c, got %v", v)
}

func TestBranchFamilyAbsoluteAndRelative(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	s.NextLine = 0
	assert(t, runLine(t, s, is, "j 5") == nil, "j should succeed")
	assert(t, s.NextLine == 5, "j should jump absolute, got %d", s.NextLine)

	s.NextLine = 5
	assert(t, runLine(t, s, is, "beq 1 1 9") == nil, "beq should succeed")
	assert(t, s.NextLine == 9, "beq taken should jump to 9, got %d", s.NextLine)

	s.NextLine = 5
	assert(t, runLine(t, s, is, "beq 1 2 9") == nil, "beq should succeed even untaken")
	assert(t, s.NextLine == 5, "beq untaken should not move next_line, got %d", s.NextLine)
}

func TestDeviceLoadStoreRoundtrip(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	assert(t, runLine(t, s, is, "s d0 Setting 42") == nil, "store should succeed")
	assert(t, runLine(t, s, is, "l r0 d0 Setting") == nil, "load should succeed")

	r0, _ := s.TryRegister("r0")
	v, _ := s.Register(r0.Slot)
	assert(t, v == 42, "loaded value should be 42, got %v", v)
}

func TestDeviceLoadFromUnsetDeviceErrors(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	err := runLine(t, s, is, "l r0 d1 Setting")
	assert(t, err != nil, "loading from an unset device should error")
}

func TestBatchedLoadAveragesMatchingDevices(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()

	assert(t, runLine(t, s, is, "s d0 Temperature 10") == nil, "store d0 should succeed")
	assert(t, runLine(t, s, is, "s d1 Temperature 20") == nil, "store d1 should succeed")

	dev0, _ := s.Device(0)
	typeHash := deviceTypeHash(dev0)

	assert(t, runLine(t, s, is, "lb r0 "+strconv.Itoa(typeHash)+" Temperature 0") == nil, "lb should succeed")
	r0, _ := s.TryRegister("r0")
	v, _ := s.Register(r0.Slot)
	assert(t, v == 15, "average of 10 and 20 should be 15, got %v", v)
}

func TestArityErrorOnWrongArgCount(t *testing.T) {
	s := newTestState()
	is := NewStationeersInstructionSet()
	err := is.Run(s, "move", []string{"r0"})
	assert(t, err != nil, "wrong arity should error")
}
