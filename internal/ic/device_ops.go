package ic

import (
	"fmt"
	"hash/fnv"
	"strings"
)

func registerDeviceOps(is *InstructionSet) {
	is.register("l", []ArgKind{KindRegister, KindDevice, KindToken}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		da, err := s.TryDevice(args[1])
		if err != nil {
			return err
		}
		t, err := s.TryParam(args[2])
		if err != nil {
			return err
		}
		dev, err := s.Device(da.Slot)
		if err != nil {
			return err
		}
		v, err := dev.Param(t)
		if err != nil {
			return fmt.Errorf("load %s from d%d: %w", t, da.Slot, err)
		}
		return s.SetRegister(r, v)
	})

	is.register("s", []ArgKind{KindDevice, KindToken, KindNumber}, func(s *ICState, args []string) error {
		da, err := s.TryDevice(args[0])
		if err != nil {
			return err
		}
		t, err := s.TryParam(args[1])
		if err != nil {
			return err
		}
		n, err := s.TryNumber(args[2])
		if err != nil {
			return err
		}
		dev, err := s.Device(da.Slot)
		if err != nil {
			return err
		}
		dev.SetParam(t, n)
		return nil
	})

	is.register("lb", []ArgKind{KindRegister, KindNumber, KindToken, KindNumber}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		typeHash, err := s.TryNumber(args[1])
		if err != nil {
			return err
		}
		t, err := s.TryParam(args[2])
		if err != nil {
			return err
		}
		modeN, err := s.TryNumber(args[3])
		if err != nil {
			return err
		}

		values := make([]float32, 0, s.NumDevices())
		for i := 0; i < s.NumDevices(); i++ {
			dev, _ := s.Device(i)
			if !dev.Connected() || float32(deviceTypeHash(dev)) != typeHash {
				continue
			}
			v, err := dev.Param(t)
			if err != nil {
				continue
			}
			values = append(values, v)
		}

		return s.SetRegister(r, reduceValues(values, int(modeN)))
	})

	is.register("sb", []ArgKind{KindNumber, KindToken, KindNumber}, func(s *ICState, args []string) error {
		typeHash, err := s.TryNumber(args[0])
		if err != nil {
			return err
		}
		t, err := s.TryParam(args[1])
		if err != nil {
			return err
		}
		n, err := s.TryNumber(args[2])
		if err != nil {
			return err
		}

		for i := 0; i < s.NumDevices(); i++ {
			dev, _ := s.Device(i)
			if !dev.Connected() || float32(deviceTypeHash(dev)) != typeHash {
				continue
			}
			dev.SetParam(t, n)
		}
		return nil
	})

	is.register("lr", []ArgKind{KindRegister, KindDevice, KindNumber, KindToken}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		da, err := s.TryDevice(args[1])
		if err != nil {
			return err
		}
		mode, err := s.TryNumber(args[2])
		if err != nil {
			return err
		}
		t, err := s.TryParam(args[3])
		if err != nil {
			return err
		}
		dev, err := s.Device(da.Slot)
		if err != nil {
			return err
		}
		v, err := dev.Param(fmt.Sprintf("reagent:%d:%s", int(mode), t))
		if err != nil {
			return err
		}
		return s.SetRegister(r, v)
	})

	is.register("ls", []ArgKind{KindRegister, KindDevice, KindNumber, KindToken}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		da, err := s.TryDevice(args[1])
		if err != nil {
			return err
		}
		slot, err := s.TryNumber(args[2])
		if err != nil {
			return err
		}
		t, err := s.TryParam(args[3])
		if err != nil {
			return err
		}
		dev, err := s.Device(da.Slot)
		if err != nil {
			return err
		}
		v, err := dev.Param(fmt.Sprintf("slot:%d:%s", int(slot), t))
		if err != nil {
			return err
		}
		return s.SetRegister(r, v)
	})
}

// deviceTypeHash computes a stable hash over a device's parameter-name key
// set, standing in for the game's device-type registry (this core has no
// such registry - devices are opaque bags per spec §1). Documented deviation
// in DESIGN.md/SPEC_FULL.md §4. lb/sb compare it after conversion to
// float32, the type their numeric hash argument resolves to.
func deviceTypeHash(d *Device) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.Join(d.ParamNames(), ",")))
	return int(h.Sum32())
}

// reduceValues implements lb's reduce modes: 0=avg, 1=sum, 2=min, 3=max.
func reduceValues(values []float32, mode int) float32 {
	if len(values) == 0 {
		return 0
	}
	switch mode {
	case 1: // sum
		var sum float32
		for _, v := range values {
			sum += v
		}
		return sum
	case 2: // min
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return m
	case 3: // max
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return m
	default: // avg
		var sum float32
		for _, v := range values {
			sum += v
		}
		return sum / float32(len(values))
	}
}
