package ic

import "math"

// defaultEpsilon is the relative+absolute tolerance used by the
// approximate-equality checks that take no tolerance argument (beq/bne,
// seq/sne and their siblings, and select); the bap/bna/sap/snap family always
// takes its tolerance from an explicit argument. It follows the same ratio-of-magnitude shape a general-purpose
// approximate-equality helper uses: scale the tolerance by the larger
// operand's magnitude so comparisons near zero don't require an
// unreasonably tight absolute match.
const defaultEpsilon = 1e-6

// approxEqualTol reports whether a and b are equal within tol, scaled by the
// larger operand's magnitude (falling back to an absolute comparison near
// zero). Symmetric in a and b.
func approxEqualTol(a, b, tol float32) bool {
	diff := float32(math.Abs(float64(a - b)))
	if diff <= tol {
		return true
	}
	scale := float32(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	if scale < 1 {
		scale = 1
	}
	return diff <= tol*scale
}

// approxEqual is approxEqualTol with the package default tolerance.
func approxEqual(a, b float32) bool {
	return approxEqualTol(a, b, defaultEpsilon)
}

func truthy(f float32) bool { return f > 0.0 }

func boolToFloat(b bool) float32 {
	if b {
		return 1.0
	}
	return 0.0
}

// relation is a named binary predicate used to generate the branch and
// select opcode families declaratively (eq/ne/ge/gt/le/lt and their
// z/ap/na siblings) instead of writing each permutation out by hand.
type relation struct {
	name   string
	approx bool // true if this relation takes a tolerance argument (ap/na families)
	cmp    func(a, b, tol float32) bool
}

var relations = []relation{
	{name: "eq", cmp: func(a, b, tol float32) bool { return approxEqualTol(a, b, tol) }},
	{name: "ne", cmp: func(a, b, tol float32) bool { return !approxEqualTol(a, b, tol) }},
	{name: "ge", cmp: func(a, b, _ float32) bool { return a >= b }},
	{name: "gt", cmp: func(a, b, _ float32) bool { return a > b }},
	{name: "le", cmp: func(a, b, _ float32) bool { return a <= b }},
	{name: "lt", cmp: func(a, b, _ float32) bool { return a < b }},
	{name: "ap", approx: true, cmp: func(a, b, tol float32) bool { return approxEqualTol(a, b, tol) }},
	{name: "na", approx: true, cmp: func(a, b, tol float32) bool { return !approxEqualTol(a, b, tol) }},
}
