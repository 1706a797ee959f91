package calc

import "math"

// tiers lists the operator groups from most to least binding. The
// multiplicative pair and the additive pair each share a tier, so a
// single scan picks up whichever of the two appears first.
var tiers = [3][2]Op{
	{OpPow, OpPow},
	{OpMul, OpDiv},
	{OpAdd, OpSub},
}

// Reduce collapses a sequence to its numeric value. For each tier in
// turn, highest first, it finds the leftmost operator of that tier,
// replaces the three-token window around it with the result of the
// operation, and rescans the shortened sequence from the front; when a
// tier has no operator left, it falls through to the next. Rescanning
// from the front makes operators of equal precedence evaluate left to
// right, including ^.
//
// Reduce trusts the alternating invariant Tokenize establishes and
// shrinks the sequence in place; the sequence is consumed. Passing a
// sequence that is not the result of a successful Tokenize has
// undefined behavior. Given a valid sequence, Reduce never fails:
// division by zero and overflow follow IEEE 754, yielding infinities
// or NaN rather than errors.
func Reduce(s Seq) float64 {
	for _, tier := range tiers {
		for i := 1; i < len(s); i += 2 {
			op := s[i].op
			if op != tier[0] && op != tier[1] {
				continue
			}
			s[i-1] = Number(apply(op, s[i-1].val, s[i+1].val))
			s = append(s[:i], s[i+2:]...)
			i = -1
		}
	}
	return s[0].val
}

// apply evaluates one reduction window.
func apply(op Op, a, b float64) float64 {
	switch op {
	case OpPow:
		return math.Pow(a, b)
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	default:
		panic("calc: invalid operator " + op.String())
	}
}
