package ic

import "math"

func registerArithOps(is *InstructionSet) {
	registerBinaryArith(is, "add", func(a, b float32) float32 { return a + b })
	registerBinaryArith(is, "sub", func(a, b float32) float32 { return a - b })
	registerBinaryArith(is, "mul", func(a, b float32) float32 { return a * b })
	registerBinaryArith(is, "div", func(a, b float32) float32 { return a / b })
	// mod follows the language-standard float remainder sign convention: the
	// result takes the sign of the dividend, matching math.Mod.
	registerBinaryArith(is, "mod", func(a, b float32) float32 {
		return float32(math.Mod(float64(a), float64(b)))
	})
	registerBinaryArith(is, "min", func(a, b float32) float32 { return float32(math.Min(float64(a), float64(b))) })
	registerBinaryArith(is, "max", func(a, b float32) float32 { return float32(math.Max(float64(a), float64(b))) })

	registerUnaryArith(is, "abs", func(a float32) float32 { return float32(math.Abs(float64(a))) })
	registerUnaryArith(is, "ceil", func(a float32) float32 { return float32(math.Ceil(float64(a))) })
	registerUnaryArith(is, "floor", func(a float32) float32 { return float32(math.Floor(float64(a))) })
	registerUnaryArith(is, "round", func(a float32) float32 { return float32(math.Round(float64(a))) })
	registerUnaryArith(is, "trunc", func(a float32) float32 { return float32(math.Trunc(float64(a))) })
	registerUnaryArith(is, "sqrt", func(a float32) float32 { return float32(math.Sqrt(float64(a))) })
	registerUnaryArith(is, "exp", func(a float32) float32 { return float32(math.Exp(float64(a))) })
	registerUnaryArith(is, "log", func(a float32) float32 { return float32(math.Log(float64(a))) })
	registerUnaryArith(is, "sin", func(a float32) float32 { return float32(math.Sin(float64(a))) })
	registerUnaryArith(is, "cos", func(a float32) float32 { return float32(math.Cos(float64(a))) })
	registerUnaryArith(is, "tan", func(a float32) float32 { return float32(math.Tan(float64(a))) })
	registerUnaryArith(is, "asin", func(a float32) float32 { return float32(math.Asin(float64(a))) })
	registerUnaryArith(is, "acos", func(a float32) float32 { return float32(math.Acos(float64(a))) })
	registerUnaryArith(is, "atan", func(a float32) float32 { return float32(math.Atan(float64(a))) })

	is.register("rand", []ArgKind{KindRegister}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		return s.SetRegister(r, s.rng.Float32())
	})

	is.register("move", []ArgKind{KindRegister, KindNumber}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		n, err := s.TryNumber(args[1])
		if err != nil {
			return err
		}
		return s.SetRegister(r, n)
	})
}

func registerBinaryArith(is *InstructionSet, mnemonic string, op func(a, b float32) float32) {
	is.register(mnemonic, []ArgKind{KindRegister, KindNumber, KindNumber}, func(s *ICState, args []string) error {
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
		return s.SetRegister(r, op(a, b))
	})
}

func registerUnaryArith(is *InstructionSet, mnemonic string, op func(a float32) float32) {
	is.register(mnemonic, []ArgKind{KindRegister, KindNumber}, func(s *ICState, args []string) error {
		r, err := s.TryRegister(args[0])
		if err != nil {
			return err
		}
		a, err := s.TryNumber(args[1])
		if err != nil {
			return err
		}
		return s.SetRegister(r, op(a))
	})
}
