package ic

func registerFlowOps(is *InstructionSet) {
	is.register("j", []ArgKind{KindLine}, func(s *ICState, args []string) error {
		l, err := s.TryLineNumber(args[0])
		if err != nil {
			return err
		}
		s.Branch(l, true, false, false)
		return nil
	})
	is.register("jal", []ArgKind{KindLine}, func(s *ICState, args []string) error {
		l, err := s.TryLineNumber(args[0])
		if err != nil {
			return err
		}
		s.Branch(l, true, false, true)
		return nil
	})
	is.register("jr", []ArgKind{KindLine}, func(s *ICState, args []string) error {
		l, err := s.TryLineNumber(args[0])
		if err != nil {
			return err
		}
		s.Branch(l, true, true, false)
		return nil
	})

	for _, rel := range relations {
		registerBranchFamily(is, rel)
	}

	registerDeviceSetBranches(is)
}

// registerBranchFamily registers the full b*/br*/*al/*z cross product for a
// single relation, per spec §4.2/§4.4's mnemonic suffix conventions: b*
// absolute, br* relative, *al links, *z compares against 0.0. ap/na
// relations additionally take an explicit tolerance argument c.
func registerBranchFamily(is *InstructionSet, rel relation) {
	type variant struct {
		mnemonic string
		relative bool
		link     bool
		zForm    bool
	}
	variants := []variant{
		{"b" + rel.name, false, false, false},
		{"b" + rel.name + "al", false, true, false},
		{"br" + rel.name, true, false, false},
		{"br" + rel.name + "al", true, true, false},
		{"b" + rel.name + "z", false, false, true},
		{"b" + rel.name + "zal", false, true, true},
		{"br" + rel.name + "z", true, false, true},
		{"br" + rel.name + "zal", true, true, true},
	}

	for _, v := range variants {
		v := v
		var kinds []ArgKind
		switch {
		case rel.approx && v.zForm:
			kinds = []ArgKind{KindNumber, KindNumber, KindLine} // a, c, l
		case rel.approx:
			kinds = []ArgKind{KindNumber, KindNumber, KindNumber, KindLine} // a, b, c, l
		case v.zForm:
			kinds = []ArgKind{KindNumber, KindLine} // a, l
		default:
			kinds = []ArgKind{KindNumber, KindNumber, KindLine} // a, b, l
		}

		is.register(v.mnemonic, kinds, func(s *ICState, args []string) error {
			// Link variants write ra before the predicate is evaluated.
			if v.link {
				s.SetRA(float32(s.NextLine))
			}

			var a, b, tol float32
			var lTok string
			var err error

			switch {
			case rel.approx && v.zForm:
				if a, err = s.TryNumber(args[0]); err != nil {
					return err
				}
				if tol, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				lTok = args[2]
			case rel.approx:
				if a, err = s.TryNumber(args[0]); err != nil {
					return err
				}
				if b, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				if tol, err = s.TryNumber(args[2]); err != nil {
					return err
				}
				lTok = args[3]
			case v.zForm:
				if a, err = s.TryNumber(args[0]); err != nil {
					return err
				}
				tol = defaultEpsilon
				lTok = args[1]
			default:
				if a, err = s.TryNumber(args[0]); err != nil {
					return err
				}
				if b, err = s.TryNumber(args[1]); err != nil {
					return err
				}
				tol = defaultEpsilon
				lTok = args[2]
			}

			l, err := s.TryLineNumber(lTok)
			if err != nil {
				return err
			}

			taken := rel.cmp(a, b, tol)
			s.Branch(l, taken, v.relative, false)
			return nil
		})
	}
}

// registerDeviceSetBranches registers bdns/bdnsal/bdse/bdseal/brdns/brdse,
// which branch on whether a device slot is connected.
func registerDeviceSetBranches(is *InstructionSet) {
	type variant struct {
		mnemonic string
		relative bool
		link     bool
		wantSet  bool
	}
	variants := []variant{
		{"bdns", false, false, false},
		{"bdnsal", false, true, false},
		{"bdse", false, false, true},
		{"bdseal", false, true, true},
		{"brdns", true, false, false},
		{"brdse", true, false, true},
	}

	for _, v := range variants {
		v := v
		is.register(v.mnemonic, []ArgKind{KindDevice, KindLine}, func(s *ICState, args []string) error {
			if v.link {
				s.SetRA(float32(s.NextLine))
			}
			da, err := s.TryDevice(args[0])
			if err != nil {
				return err
			}
			dev, err := s.Device(da.Slot)
			if err != nil {
				return err
			}
			l, err := s.TryLineNumber(args[1])
			if err != nil {
				return err
			}
			taken := dev.Connected() == v.wantSet
			s.Branch(l, taken, v.relative, false)
			return nil
		})
	}
}
