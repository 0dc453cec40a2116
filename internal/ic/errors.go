package ic

import "errors"

// Sentinel error kinds for the six failure categories the driver surfaces.
// Call sites wrap these with fmt.Errorf("...: %w", ErrX) to attach the
// failing token/mnemonic.
var (
	ErrResolution      = errors.New("resolution error")
	ErrArity           = errors.New("arity error")
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	ErrRange           = errors.New("range error")
	ErrDeviceState     = errors.New("device-state error")
	ErrEmptyLine       = errors.New("empty line")
)
