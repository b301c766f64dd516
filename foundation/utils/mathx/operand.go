// File: operand.go
// Title: Operator Dispatch for Complex Numbers
// Description: Defines the closed Operand interface over Complex and Scalar,
//              the arithmetic and comparison operator enums, token parsing
//              and the Apply/Compare dispatchers.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Initial implementation

package mathx

import (
	"strings"

	mdwerror "github.com/msto63/euler/foundation/core/error"
)

// Operand is the right-hand side of an operation: a Complex or a Scalar
type Operand interface {
	isOperand()
}

// Scalar is a real number operand
type Scalar float64

func (Complex) isOperand() {}
func (Scalar) isOperand()  {}

// Op is an arithmetic operator
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the operator symbol
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// ParseOp maps a CLI token such as "add" or "+" to an Op
func ParseOp(token string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "add", "plus", "+":
		return OpAdd, nil
	case "sub", "subtract", "minus", "-":
		return OpSubtract, nil
	case "mul", "multiply", "times", "*", "x":
		return OpMultiply, nil
	case "div", "divide", "/":
		return OpDivide, nil
	default:
		return OpAdd, mdwerror.New("unknown arithmetic operator").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("mathx.ParseOp").
			WithDetail("token", token)
	}
}

// Relation is a comparison operator
type Relation int

const (
	RelEqual Relation = iota
	RelNotEqual
	RelLess
	RelGreater
	RelLessOrEqual
	RelGreaterOrEqual
)

// String returns the relation symbol
func (r Relation) String() string {
	switch r {
	case RelEqual:
		return "=="
	case RelNotEqual:
		return "!="
	case RelLess:
		return "<"
	case RelGreater:
		return ">"
	case RelLessOrEqual:
		return "<="
	case RelGreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// ParseRelation maps a CLI token such as "eq" or "<=" to a Relation
func ParseRelation(token string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "eq", "==", "=":
		return RelEqual, nil
	case "ne", "neq", "!=":
		return RelNotEqual, nil
	case "lt", "<":
		return RelLess, nil
	case "gt", ">":
		return RelGreater, nil
	case "le", "lte", "<=":
		return RelLessOrEqual, nil
	case "ge", "gte", ">=":
		return RelGreaterOrEqual, nil
	default:
		return RelEqual, mdwerror.New("unknown comparison operator").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("mathx.ParseRelation").
			WithDetail("token", token)
	}
}

// Apply evaluates c <op> x, choosing the complex or scalar overload.
// An unknown operator or a nil operand returns c unchanged.
func (c Complex) Apply(op Op, x Operand) Complex {
	switch v := x.(type) {
	case Complex:
		switch op {
		case OpAdd:
			return c.Add(v)
		case OpSubtract:
			return c.Subtract(v)
		case OpMultiply:
			return c.Multiply(v)
		case OpDivide:
			return c.Divide(v)
		}
	case Scalar:
		s := float64(v)
		switch op {
		case OpAdd:
			return c.AddScalar(s)
		case OpSubtract:
			return c.SubtractScalar(s)
		case OpMultiply:
			return c.MultiplyScalar(s)
		case OpDivide:
			return c.DivideScalar(s)
		}
	}
	return c
}

// Compare evaluates c <rel> x, choosing the complex or scalar overload.
// An unknown relation or a nil operand reports false.
func (c Complex) Compare(rel Relation, x Operand) bool {
	switch v := x.(type) {
	case Complex:
		switch rel {
		case RelEqual:
			return c.Equal(v)
		case RelNotEqual:
			return c.NotEqual(v)
		case RelLess:
			return c.Less(v)
		case RelGreater:
			return c.Greater(v)
		case RelLessOrEqual:
			return c.LessOrEqual(v)
		case RelGreaterOrEqual:
			return c.GreaterOrEqual(v)
		}
	case Scalar:
		s := float64(v)
		switch rel {
		case RelEqual:
			return c.EqualScalar(s)
		case RelNotEqual:
			return c.NotEqualScalar(s)
		case RelLess:
			return c.LessScalar(s)
		case RelGreater:
			return c.GreaterScalar(s)
		case RelLessOrEqual:
			return c.LessOrEqualScalar(s)
		case RelGreaterOrEqual:
			return c.GreaterOrEqualScalar(s)
		}
	}
	return false
}
