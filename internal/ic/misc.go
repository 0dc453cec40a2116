package ic

func registerMiscOps(is *InstructionSet) {
	is.register("alias", []ArgKind{KindToken, KindAlias}, func(s *ICState, args []string) error {
		t, err := s.TryParam(args[0])
		if err != nil {
			return err
		}
		a, err := s.TryAlias(args[1])
		if err != nil {
			return err
		}
		s.AddAlias(t, a)
		return nil
	})

	is.register("define", []ArgKind{KindToken, KindNumber}, func(s *ICState, args []string) error {
		t, err := s.TryParam(args[0])
		if err != nil {
			return err
		}
		n, err := s.TryNumber(args[1])
		if err != nil {
			return err
		}
		s.AddDefinition(t, n)
		return nil
	})

	is.register("yield", nil, func(s *ICState, args []string) error {
		s.Halt = true
		return nil
	})

	// sleep's duration argument is currently ignored; the instruction only
	// halts the tick, per spec §4.4/§9.
	is.register("sleep", []ArgKind{KindNumber}, func(s *ICState, args []string) error {
		if _, err := s.TryNumber(args[0]); err != nil {
			return err
		}
		s.Halt = true
		return nil
	})

	is.register("hcf", nil, func(s *ICState, args []string) error {
		s.Halt = true
		return nil
	})
}
