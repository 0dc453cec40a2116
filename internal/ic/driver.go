package ic

import (
	"fmt"
	"strings"
)

// Program is an ordered list of source lines together with the label-line
// markers produced by the pre-pass (prepass.go). It is immutable once built;
// RunTick only mutates the ICState it is run against.
type Program struct {
	lines   []string
	isLabel []bool
}

// NewProgram runs the label pre-pass over raw source lines against s and
// returns the resulting Program. s's label table is populated as a side
// effect, per spec §4.5's precondition that a label pre-pass has already run.
func NewProgram(s *ICState, rawLines []string) *Program {
	lines, isLabel := PreScanLabels(s, rawLines)
	return &Program{lines: lines, isLabel: isLabel}
}

// Len returns the number of lines in the program.
func (p *Program) Len() int { return len(p.lines) }

// tokenize splits a line the way the reference tokenizer does: on the
// ASCII space character only. Runs of spaces yield empty tokens, which are
// dropped - no opcode takes an empty-string argument, so this collapses
// accidental blank tokens without engaging whitespace-run splitting.
func tokenize(line string) []string {
	raw := strings.Split(line, " ")
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// RunTick runs the driver loop against p starting from s.NextLine, executing
// at most s.InstrPerTick instructions (per spec §4.5). instr_counter is reset
// to 0 at the start of the call; next_line, registers, stack, devices, and
// symbol tables persist across calls. The loop exits when next_line reaches
// the end of the program, the quantum is exhausted, the halt flag is set, or
// an opcode/dispatch error occurs - in which case RunTick returns that error
// immediately, leaving state as-is (spec §7: no rollback).
func RunTick(s *ICState, p *Program, is *InstructionSet) error {
	s.InstrCounter = 0
	s.Halt = false

	for s.NextLine < p.Len() && s.InstrCounter < s.InstrPerTick && !s.Halt {
		i := s.NextLine
		s.NextLine = i + 1

		line := p.lines[i]
		tokens := tokenize(line)

		if len(tokens) == 0 {
			if p.isLabel[i] {
				s.InstrCounter++
				continue
			}
			return fmt.Errorf("line %d: %w", i, ErrEmptyLine)
		}

		mnemonic, args := tokens[0], tokens[1:]
		if err := is.Run(s, mnemonic, args); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		s.InstrCounter++
	}

	return nil
}

// Run drives p to completion, calling RunTick repeatedly until the program
// runs out of instructions (next_line reaches the end) or a tick returns an
// error. Halt-terminated ticks (yield/sleep/hcf) simply return from Run with
// a nil error, mirroring spec §6's "yield/hcf" successful-exit case; the
// caller inspects s.Halt to distinguish a halted program from one that ran
// off the end.
func Run(s *ICState, p *Program, is *InstructionSet) error {
	for s.NextLine < p.Len() {
		if err := RunTick(s, p, is); err != nil {
			return err
		}
		if s.Halt {
			return nil
		}
	}
	return nil
}
