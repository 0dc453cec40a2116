package ic

func registerSelectOps(is *InstructionSet) {
	is.register("select", []ArgKind{KindRegister, KindNumber, KindNumber, KindNumber}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		a, err := s.TryNumber(args[1])
		if err != nil {
			return err
		}
		b, err := s.TryNumber(args[2])
		if err != nil {
			return err
		}
		c, err := s.TryNumber(args[3])
		if err != nil {
			return err
		}
		if approxEqual(a, 0) {
			return s.SetRegister(r, b)
		}
		return s.SetRegister(r, c)
	})

	for _, rel := range relations {
		registerSelectFamily(is, rel)
	}

	registerDeviceSetSelects(is)
}

// registerSelectFamily registers s<rel>/s<rel>z, setting the destination
// register to 1.0 on truth, 0.0 otherwise - spec §4.4's Selection family.
func registerSelectFamily(is *InstructionSet, rel relation) {
	type variant struct {
		mnemonic string
		zForm    bool
	}
	variants := []variant{
		{"s" + rel.name, false},
		{"s" + rel.name + "z", true},
	}
	if rel.name == "na" {
		// The approximate-not-equal selects are also available as snap/snapz.
		variants = append(variants, variant{"snap", false}, variant{"snapz", true})
	}

	for _, v := range variants {
		v := v
		var kinds []ArgKind
		switch {
		case rel.approx && v.zForm:
			kinds = []ArgKind{KindRegister, KindNumber, KindNumber} // r, a, c
		case rel.approx:
			kinds = []ArgKind{KindRegister, KindNumber, KindNumber, KindNumber} // r, a, b, c
		case v.zForm:
			kinds = []ArgKind{KindRegister, KindNumber} // r, a
		default:
			kinds = []ArgKind{KindRegister, KindNumber, KindNumber} // r, a, b
		}

		is.register(v.mnemonic, kinds, func(s *ICState, args []string) error {
			r, err := s.TryRegister(args[0])
			if err != nil {
				return err
			}

			var a, b, tol float32
			switch {
			case rel.approx && v.zForm:
				if a, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				if tol, err = s.TryNumber(args[2]); err != nil {
					return err
				}
			case rel.approx:
				if a, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				if b, err = s.TryNumber(args[2]); err != nil {
					return err
				}
				if tol, err = s.TryNumber(args[3]); err != nil {
					return err
				}
			case v.zForm:
				if a, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				tol = defaultEpsilon
			default:
				if a, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				if b, err = s.TryNumber(args[2]); err != nil {
					return err
				}
				tol = defaultEpsilon
			}

			result := rel.cmp(a, b, tol)
			return s.SetRegister(r, boolToFloat(result))
		})
	}
}

func registerDeviceSetSelects(is *InstructionSet) {
	type variant struct {
		mnemonic string
		wantSet  bool
	}
	for _, v := range []variant{{"sdns", false}, {"sdse", true}} {
		v := v
		is.register(v.mnemonic, []ArgKind{KindRegister, KindDevice}, func(s *ICState, args []string) error {
			r, err := s.TryRegister(args[0])
			if err != nil {
				return err
			}
			da, err := s.TryDevice(args[1])
			if err != nil {
				return err
			}
			dev, err := s.Device(da.Slot)
			if err != nil {
				return err
			}
			return s.SetRegister(r, boolToFloat(dev.Connected() == v.wantSet))
		})
	}
}
