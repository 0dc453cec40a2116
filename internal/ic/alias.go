package ic

// AliasKind distinguishes a device-slot alias from a register alias.
type AliasKind int

const (
	AliasDevice AliasKind = iota
	AliasRegister
)

// Alias is a tagged handle: either a device-slot index or a register index,
// plus a flag distinguishing the built-in default name (d0..d5, r0..r15, ra,
// sp) from a program-defined one installed via the `alias` instruction.
type Alias struct {
	Kind      AliasKind
	Slot      int
	IsBuiltin bool
}

func deviceAlias(slot int, builtin bool) Alias {
	return Alias{Kind: AliasDevice, Slot: slot, IsBuiltin: builtin}
}

func registerAlias(slot int, builtin bool) Alias {
	return Alias{Kind: AliasRegister, Slot: slot, IsBuiltin: builtin}
}

// IsDevice reports whether the alias resolves to a device slot.
func (a Alias) IsDevice() bool { return a.Kind == AliasDevice }

// IsRegister reports whether the alias resolves to a register.
func (a Alias) IsRegister() bool { return a.Kind == AliasRegister }
