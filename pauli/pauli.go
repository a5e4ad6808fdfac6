// Package pauli defines the Pauli operator vocabulary {I, X, Y, Z}
// together with its commutation relation and multiplication table.
//
// The routing core only consumes the {X, Z} subset (see package grid for
// the operator→border mapping); the full algebra is provided for the
// front-ends that decompose rotation gates into measurement sequences.
package pauli

import "fmt"

// Operator is one of the four single-qubit Pauli operators.
type Operator uint8

const (
	// I is the identity operator.
	I Operator = iota
	// X is the Pauli-X operator.
	X
	// Y is the Pauli-Y operator.
	Y
	// Z is the Pauli-Z operator.
	Z
)

// String returns the conventional one-letter name of the operator.
func (op Operator) String() string {
	switch op {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}
}

// Valid reports whether op is one of the four defined operators.
func (op Operator) Valid() bool { return op <= Z }

// Coefficient is the scalar picked up by a Pauli product: 1, i or -i.
type Coefficient int8

const (
	// One is the unit coefficient.
	One Coefficient = 1
	// PlusI is the imaginary unit +i.
	PlusI Coefficient = 2
	// MinusI is the imaginary unit -i.
	MinusI Coefficient = -2
)

// String renders the coefficient as "1", "i" or "-i".
func (c Coefficient) String() string {
	switch c {
	case One:
		return "1"
	case PlusI:
		return "i"
	case MinusI:
		return "-i"
	default:
		return fmt.Sprintf("Coefficient(%d)", int8(c))
	}
}

// product is the exhaustive table of pairwise products of distinct
// non-identity operators. Products involving I and squares are handled
// directly in Multiply.
var product = map[[2]Operator]struct {
	coeff Coefficient
	op    Operator
}{
	{X, Y}: {PlusI, Z},
	{Y, X}: {MinusI, Z},
	{Y, Z}: {PlusI, X},
	{Z, Y}: {MinusI, X},
	{Z, X}: {PlusI, Y},
	{X, Z}: {MinusI, Y},
}

// Commutes reports whether a and b commute. Two distinct non-identity
// operators anticommute; every other pair commutes.
// Complexity: O(1).
func Commutes(a, b Operator) bool {
	_, anti := product[[2]Operator{a, b}]
	return !anti
}

// Multiply returns the product a·b as the picked-up coefficient and the
// nearest Pauli operator. The identity is neutral and any operator
// squares to I with unit coefficient.
// Complexity: O(1).
func Multiply(a, b Operator) (Coefficient, Operator) {
	switch {
	case a == I:
		return One, b
	case b == I:
		return One, a
	case a == b:
		return One, I
	}
	p := product[[2]Operator{a, b}]
	return p.coeff, p.op
}
