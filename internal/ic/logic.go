package ic

// registerLogicOps registers and/or/nor/xor. Inputs are truthy when > 0.0;
// results are 1.0/0.0, per spec §4.4's Logic family.
func registerLogicOps(is *InstructionSet) {
	registerBinaryArith(is, "and", func(a, b float32) float32 { return boolToFloat(truthy(a) && truthy(b)) })
	registerBinaryArith(is, "or", func(a, b float32) float32 { return boolToFloat(truthy(a) || truthy(b)) })
	registerBinaryArith(is, "nor", func(a, b float32) float32 { return boolToFloat(!(truthy(a) || truthy(b))) })
	registerBinaryArith(is, "xor", func(a, b float32) float32 { return boolToFloat(truthy(a) != truthy(b)) })
}
