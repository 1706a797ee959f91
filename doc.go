// Package calc implements a floating-point arithmetic calculator.
//
// Expressions are flat: a number, then any run of operator-number
// pairs, with no variables, functions, or brackets. Tokenizing yields
// the sequence exactly as written, and structure comes afterward from
// the reducer, which repeatedly collapses the leftmost operator of the
// most binding tier still present. Operators of equal precedence
// therefore evaluate left to right, and so do chains of ^, making
// "2^3^2" equal to (2^3)^2 = 64 rather than the conventional
// right-associative 2^(3^2).
//
// Numeric anomalies are values, not errors: dividing by zero gives an
// infinity or NaN per IEEE 754.
package calc
