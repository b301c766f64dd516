// File: operand_test.go
// Title: Operator Dispatch Tests
// Description: Tests for token parsing and the Apply/Compare dispatchers.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Initial test implementation

package mathx

import (
	"testing"

	mdwerror "github.com/msto63/euler/foundation/core/error"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		token   string
		want    Op
		wantErr bool
	}{
		{"add", OpAdd, false},
		{"+", OpAdd, false},
		{" SUB ", OpSubtract, false},
		{"-", OpSubtract, false},
		{"mul", OpMultiply, false},
		{"*", OpMultiply, false},
		{"div", OpDivide, false},
		{"/", OpDivide, false},
		{"pow", OpAdd, true},
		{"", OpAdd, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseOp(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOp(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("ParseOp(%q) code = %v, want INVALID_INPUT", tt.token, mdwerror.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseOp(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseRelation(t *testing.T) {
	tests := []struct {
		token   string
		want    Relation
		wantErr bool
	}{
		{"eq", RelEqual, false},
		{"==", RelEqual, false},
		{"ne", RelNotEqual, false},
		{"!=", RelNotEqual, false},
		{"lt", RelLess, false},
		{"<", RelLess, false},
		{"gt", RelGreater, false},
		{">", RelGreater, false},
		{"le", RelLessOrEqual, false},
		{"<=", RelLessOrEqual, false},
		{"ge", RelGreaterOrEqual, false},
		{">=", RelGreaterOrEqual, false},
		{"~", RelEqual, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseRelation(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRelation(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRelation(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if !tt.wantErr && got.String() == "?" {
				t.Errorf("Relation(%d).String() has no symbol", got)
			}
		})
	}
}

func TestApply(t *testing.T) {
	a := NewComplex(3, 4)
	b := NewComplex(1, 2)

	tests := []struct {
		name string
		op   Op
		x    Operand
		want Complex
	}{
		{"complex add", OpAdd, b, a.Add(b)},
		{"complex subtract", OpSubtract, b, a.Subtract(b)},
		{"complex multiply", OpMultiply, b, a.Multiply(b)},
		{"complex divide", OpDivide, b, a.Divide(b)},
		{"scalar add", OpAdd, Scalar(2.43), a.AddScalar(2.43)},
		{"scalar subtract", OpSubtract, Scalar(5.67), a.SubtractScalar(5.67)},
		{"scalar multiply", OpMultiply, Scalar(2.43), a.MultiplyScalar(2.43)},
		{"scalar divide", OpDivide, Scalar(2.43), a.DivideScalar(2.43)},
		{"unknown op", Op(99), b, a},
		{"nil operand", OpAdd, nil, a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Apply(tt.op, tt.x); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := NewComplex(3, 4)

	tests := []struct {
		name string
		rel  Relation
		x    Operand
		want bool
	}{
		{"a == Complex(3,0)", RelEqual, NewComplex(3, 0), false},
		{"a == Complex(0,5)", RelEqual, NewComplex(0, 5), true},
		{"a != Complex(3,0)", RelNotEqual, NewComplex(3, 0), true},
		{"a > b", RelGreater, NewComplex(1, 2), true},
		{"a < b", RelLess, NewComplex(1, 2), false},
		{"a >= b", RelGreaterOrEqual, NewComplex(1, 2), true},
		{"a <= b", RelLessOrEqual, NewComplex(1, 2), false},
		{"a == 5", RelEqual, Scalar(5), true},
		{"a != 5", RelNotEqual, Scalar(5), false},
		{"a < 3", RelLess, Scalar(3), false},
		{"a > 3", RelGreater, Scalar(3), true},
		{"a <= 3", RelLessOrEqual, Scalar(3), false},
		{"a >= 3", RelGreaterOrEqual, Scalar(3), true},
		{"unknown relation", Relation(42), Scalar(3), false},
		{"nil operand", RelEqual, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Compare(tt.rel, tt.x); got != tt.want {
				t.Errorf("Compare(%v) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{OpAdd: "+", OpSubtract: "-", OpMultiply: "*", OpDivide: "/", Op(7): "?"} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), got, want)
		}
	}
}
