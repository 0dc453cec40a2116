package ic

import "fmt"

// ArgKind is the argument-kind signature from spec §4.4's resolver table.
type ArgKind int

const (
	KindAlias    ArgKind = iota // a: any alias
	KindRegister                // r: a register alias
	KindDevice                  // d: a device alias
	KindNumber                  // n: a number literal, register value, or definition
	KindLine                    // l: a line number literal, register value, or label
	KindToken                   // t: a raw identifier
)

// Handler is the body of an opcode: it receives the IC state and the raw,
// unresolved argument tokens (resolution happens inside the handler via
// ICState's typed resolvers, per the argument kinds declared on OpSpec).
type Handler func(s *ICState, args []string) error

// OpSpec pairs a mnemonic's argument-kind signature with its handler.
type OpSpec struct {
	Mnemonic string
	ArgKinds []ArgKind
	Handler  Handler
}

// InstructionSet is a mapping from mnemonic to opcode handler together with
// its argument-kind signature (spec §2's InstructionSet component).
type InstructionSet struct {
	ops map[string]*OpSpec
}

// NewStationeersInstructionSet builds the complete instruction table (135
// mnemonics) for the opcode families described in spec §4.4, grounded on original_source/src/instruction.rs's
// declarative per-mnemonic registration (there implemented via a macro; here
// via explicit Go closures and, for the branch/select families, a small
// generator loop - see compare.go's relation table).
func NewStationeersInstructionSet() *InstructionSet {
	is := &InstructionSet{ops: make(map[string]*OpSpec, 128)}
	registerDeviceOps(is)
	registerFlowOps(is)
	registerSelectOps(is)
	registerArithOps(is)
	registerLogicOps(is)
	registerStackOps(is)
	registerMiscOps(is)
	return is
}

func (is *InstructionSet) register(mnemonic string, kinds []ArgKind, h Handler) {
	if _, exists := is.ops[mnemonic]; exists {
		panic(fmt.Sprintf("duplicate opcode registration: %s", mnemonic))
	}
	is.ops[mnemonic] = &OpSpec{Mnemonic: mnemonic, ArgKinds: kinds, Handler: h}
}

// Lookup returns the OpSpec for a mnemonic, or (nil, false) if unrecognized.
func (is *InstructionSet) Lookup(mnemonic string) (*OpSpec, bool) {
	op, ok := is.ops[mnemonic]
	return op, ok
}

// Run dispatches mnemonic with args against s, checking arity against the
// opcode's declared argument-kind signature before invoking its handler.
func (is *InstructionSet) Run(s *ICState, mnemonic string, args []string) error {
	op, ok := is.ops[mnemonic]
	if !ok {
		return fmt.Errorf("%q: %w", mnemonic, ErrUnknownMnemonic)
	}
	if len(args) != len(op.ArgKinds) {
		return fmt.Errorf("%s: expected %d argument(s), got %d: %w", mnemonic, len(op.ArgKinds), len(args), ErrArity)
	}
	return op.Handler(s, args)
}
