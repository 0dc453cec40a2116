// Package ic implements the opcode dispatch and execution engine for a small
// register-machine assembly language modeled on the Stationeers integrated
// circuit "MIPS" dialect: the IC state model (this file), the argument-kind
// resolver system (resolve.go), the declarative instruction table
// (instructions.go, arith.go, flow.go, device_ops.go), and the tick-bounded
// driver loop (driver.go).
package ic

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
)

// Default construction parameters, per spec §3.
const (
	DefaultDevices      = 6
	DefaultRegisters    = 16
	DefaultStackCap     = 512
	DefaultInstrPerTick = 128
)

// ICState is the machine state: registers, devices, alias/definition/label
// tables, stack, program counter, per-tick counter, and halt flag. All
// tables are owned by the state; no entity outlives it.
type ICState struct {
	devices     []Device
	registers   []float32
	stack       []float32
	aliases     map[string]Alias
	definitions map[string]float32
	labels      map[string]int
	rng         *rand.Rand

	InstrPerTick int
	InstrCounter int
	NextLine     int
	Halt         bool
}

// NewICState constructs an IC with ndevices device slots, nregisters general
// purpose registers (plus the two special registers ra/sp appended), a stack
// of the given capacity, and an instrPerTick quantum. All registers start at
// 0.0; all devices start Unset.
func NewICState(ndevices, nregisters, stackCapacity, instrPerTick int) *ICState {
	s := &ICState{
		devices:      make([]Device, ndevices),
		registers:    make([]float32, nregisters+2),
		stack:        make([]float32, stackCapacity),
		aliases:      make(map[string]Alias, ndevices+nregisters+2),
		definitions:  make(map[string]float32),
		labels:       make(map[string]int),
		rng:          rand.New(rand.NewSource(1)),
		InstrPerTick: instrPerTick,
	}

	for i := 0; i < ndevices; i++ {
		s.aliases[fmt.Sprintf("d%d", i)] = deviceAlias(i, true)
	}
	for i := 0; i < nregisters; i++ {
		s.aliases[fmt.Sprintf("r%d", i)] = registerAlias(i, true)
	}
	s.aliases["ra"] = registerAlias(s.raIndex(), true)
	s.aliases["sp"] = registerAlias(s.spIndex(), true)

	return s
}

// NewDefaultICState constructs an ICState using spec defaults (6, 16, 512, 128).
func NewDefaultICState() *ICState {
	return NewICState(DefaultDevices, DefaultRegisters, DefaultStackCap, DefaultInstrPerTick)
}

func (s *ICState) raIndex() int { return len(s.registers) - 2 }
func (s *ICState) spIndex() int { return len(s.registers) - 1 }

// RA returns the current value of the return-address register.
func (s *ICState) RA() float32 { return s.registers[s.raIndex()] }

// SetRA writes the return-address register.
func (s *ICState) SetRA(v float32) { s.registers[s.raIndex()] = v }

// SP returns the current value of the stack-pointer register.
func (s *ICState) SP() float32 { return s.registers[s.spIndex()] }

// SetSP writes the stack-pointer register.
func (s *ICState) SetSP(v float32) { s.registers[s.spIndex()] = v }

// NumRegisters returns the length of the register file, including ra/sp.
func (s *ICState) NumRegisters() int { return len(s.registers) }

// NumDevices returns the number of device slots.
func (s *ICState) NumDevices() int { return len(s.devices) }

// Register reads a register by index (0-based, including ra/sp at the tail).
func (s *ICState) Register(i int) (float32, error) {
	if i < 0 || i >= len(s.registers) {
		return 0, fmt.Errorf("register index %d out of range: %w", i, ErrRange)
	}
	return s.registers[i], nil
}

// SetRegister writes a register resolved from an Alias. It is an error to
// call this with a non-register alias or an out-of-range slot.
func (s *ICState) SetRegister(a Alias, v float32) error {
	if !a.IsRegister() {
		return fmt.Errorf("alias is not a register: %w", ErrResolution)
	}
	if a.Slot < 0 || a.Slot >= len(s.registers) {
		return fmt.Errorf("register index %d out of range: %w", a.Slot, ErrRange)
	}
	s.registers[a.Slot] = v
	return nil
}

// Device returns a pointer to the device at the given slot.
func (s *ICState) Device(i int) (*Device, error) {
	if i < 0 || i >= len(s.devices) {
		return nil, fmt.Errorf("device index %d out of range: %w", i, ErrRange)
	}
	return &s.devices[i], nil
}

// AddAlias binds name to an existing alias target, recording it as
// program-defined (IsBuiltin = false) regardless of what the target's own
// builtin flag was - this is the behavior `alias t a` requires per spec §4.4.
func (s *ICState) AddAlias(name string, target Alias) {
	target.IsBuiltin = false
	s.aliases[name] = target
}

// AddDefinition binds name to a numeric constant via the `define` instruction.
func (s *ICState) AddDefinition(name string, v float32) {
	s.definitions[name] = v
}

// AddLabel binds name to a zero-based line index. Used by the label pre-pass.
func (s *ICState) AddLabel(name string, line int) {
	s.labels[name] = line
}

// StackCapacity returns the fixed capacity of the stack.
func (s *ICState) StackCapacity() int { return len(s.stack) }

// Dump writes the IC state in the host dump format from spec §6: one line
// per non-special register `rN:value`, then `ra:`/`sp:`, then each
// non-built-in alias as `name -> dN`/`name -> rN`, then each definition as
// `name = value`, then each label as `name -> lineindex`. This mirrors
// original_source/src/ic.rs's Display impl.
func (s *ICState) Dump(w io.Writer) error {
	for i := 0; i < len(s.registers)-2; i++ {
		if _, err := fmt.Fprintf(w, "r%d:%v\n", i, s.registers[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "ra:%v\n", s.RA()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "sp:%v\n", s.SP()); err != nil {
		return err
	}

	aliasNames := make([]string, 0, len(s.aliases))
	for name := range s.aliases {
		aliasNames = append(aliasNames, name)
	}
	sort.Strings(aliasNames)
	for _, name := range aliasNames {
		a := s.aliases[name]
		if a.IsBuiltin {
			continue
		}
		switch a.Kind {
		case AliasDevice:
			if _, err := fmt.Fprintf(w, "%s -> d%d\n", name, a.Slot); err != nil {
				return err
			}
		case AliasRegister:
			if _, err := fmt.Fprintf(w, "%s -> r%d\n", name, a.Slot); err != nil {
				return err
			}
		}
	}

	defNames := make([]string, 0, len(s.definitions))
	for name := range s.definitions {
		defNames = append(defNames, name)
	}
	sort.Strings(defNames)
	for _, name := range defNames {
		if _, err := fmt.Fprintf(w, "%s = %v\n", name, s.definitions[name]); err != nil {
			return err
		}
	}

	labelNames := make([]string, 0, len(s.labels))
	for name := range s.labels {
		labelNames = append(labelNames, name)
	}
	sort.Strings(labelNames)
	for _, name := range labelNames {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", name, s.labels[name]); err != nil {
			return err
		}
	}

	return nil
}
