package ic

func registerStackOps(is *InstructionSet) {
	is.register("push", []ArgKind{KindNumber}, func(s *ICState, args []string) error {
		v, err := s.TryNumber(args[0])
		if err != nil {
			return err
		}
		return s.Push(v)
	})

	is.register("pop", []ArgKind{KindRegister}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		v, err := s.Pop()
		if err != nil {
			return err
		}
		return s.SetRegister(r, v)
	})

	is.register("peek", []ArgKind{KindRegister}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		v, err := s.Peek()
		if err != nil {
			return err
		}
		return s.SetRegister(r, v)
	})
}
