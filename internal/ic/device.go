package ic

import "sort"

// Device is an I/O slot occupying one of N device slots on the IC. It is
// either Unset (the default after reset) or Set, carrying a bag of named
// 32-bit float parameters. Reading a parameter from an Unset device is an
// error; reading an absent parameter from a Set device yields 0.0.
type Device struct {
	set    bool
	params map[string]float32
}

// Connect marks the device Set, installing an empty parameter bag if one
// isn't already present. Used by tests and hosts wiring up device fixtures;
// stores happen through SetParam, which also connects implicitly.
func (d *Device) Connect() {
	d.set = true
	if d.params == nil {
		d.params = make(map[string]float32)
	}
}

// Disconnect returns the device to its Unset state, discarding any
// previously stored parameters.
func (d *Device) Disconnect() {
	d.set = false
	d.params = nil
}

// Connected reports whether the device is currently Set.
func (d *Device) Connected() bool { return d.set }

// Param reads a named parameter. It is an error to read from an Unset
// device; an absent parameter on a Set device yields 0.0.
func (d *Device) Param(name string) (float32, error) {
	if !d.set {
		return 0, ErrDeviceState
	}
	return d.params[name], nil
}

// SetParam stores a named parameter, connecting the device if needed. The
// parameter bag only ever grows during execution, per spec §5.
func (d *Device) SetParam(name string, v float32) {
	d.Connect()
	d.params[name] = v
}

// ParamNames returns the sorted set of parameter names currently stored on
// the device, used by the batched load/store opcodes to compute a stable
// device-type hash over the bag's key set (see SPEC_FULL.md §4).
func (d *Device) ParamNames() []string {
	names := make([]string, 0, len(d.params))
	for k := range d.params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
