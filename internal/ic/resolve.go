package ic

import (
	"fmt"
	"strconv"
)

// TryAlias looks up tok in the alias table. This is the loosest resolver:
// any alias entry (device or register) satisfies it.
func (s *ICState) TryAlias(tok string) (Alias, error) {
	a, ok := s.aliases[tok]
	if !ok {
		return Alias{}, fmt.Errorf("%q failed as alias: %w", tok, ErrResolution)
	}
	return a, nil
}

// TryRegister looks up tok, succeeding only when the entry is a register alias.
func (s *ICState) TryRegister(tok string) (Alias, error) {
	a, err := s.TryAlias(tok)
	if err != nil {
		return Alias{}, err
	}
	if !a.IsRegister() {
		return Alias{}, fmt.Errorf("%q failed to parse as register: %w", tok, ErrResolution)
	}
	return a, nil
}

// TryDevice looks up tok, succeeding only when the entry is a device alias.
func (s *ICState) TryDevice(tok string) (Alias, error) {
	a, err := s.TryAlias(tok)
	if err != nil {
		return Alias{}, err
	}
	if !a.IsDevice() {
		return Alias{}, fmt.Errorf("%q failed to parse as device: %w", tok, ErrResolution)
	}
	return a, nil
}

// TryNumber resolves tok to a float32. Resolution order: register alias
// (current value), decimal float literal, definition table lookup.
func (s *ICState) TryNumber(tok string) (float32, error) {
	if a, ok := s.aliases[tok]; ok && a.IsRegister() {
		v, err := s.Register(a.Slot)
		if err != nil {
			return 0, err
		}
		return v, nil
	}
	if f, err := strconv.ParseFloat(tok, 32); err == nil {
		return float32(f), nil
	}
	if v, ok := s.definitions[tok]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%q is not a number: %w", tok, ErrResolution)
}

// TryLineNumber resolves tok to a zero-based line index. Resolution order:
// register alias (truncated), decimal float literal (truncated), label table.
func (s *ICState) TryLineNumber(tok string) (int, error) {
	if a, ok := s.aliases[tok]; ok && a.IsRegister() {
		v, err := s.Register(a.Slot)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
	if f, err := strconv.ParseFloat(tok, 32); err == nil {
		return int(float32(f)), nil
	}
	if line, ok := s.labels[tok]; ok {
		return line, nil
	}
	return 0, fmt.Errorf("%q is not a line number: %w", tok, ErrResolution)
}

// TryParam returns tok unmodified: the `t` argument kind is a raw identifier
// (alias name, parameter name, or define name) with no further resolution.
func (s *ICState) TryParam(tok string) (string, error) {
	if tok == "" {
		return "", fmt.Errorf("empty token: %w", ErrResolution)
	}
	return tok, nil
}
