// File: complex_test.go
// Title: Complex Number Tests
// Description: Tests for arithmetic, powers, roots, modulus comparison and the
//              increment/decrement operations of Complex.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Initial test implementation

package mathx

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertComplex(t *testing.T, name string, got Complex, wantRe, wantIm float64) {
	t.Helper()
	if !near(got.Real(), wantRe, tolerance) || !near(got.Imag(), wantIm, tolerance) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.Real(), got.Imag(), wantRe, wantIm)
	}
}

func TestZeroValue(t *testing.T) {
	var c Complex
	if c.Real() != 0 || c.Imag() != 0 {
		t.Errorf("zero value = (%v, %v), want (0, 0)", c.Real(), c.Imag())
	}
	if c != NewComplex(0, 0) {
		t.Error("zero value should equal NewComplex(0, 0)")
	}
}

func TestComplex128Interop(t *testing.T) {
	c := FromComplex128(complex(1.5, -2))
	if c.Real() != 1.5 || c.Imag() != -2 {
		t.Errorf("FromComplex128() = (%v, %v)", c.Real(), c.Imag())
	}
	if c.Complex128() != complex(1.5, -2) {
		t.Errorf("Complex128() = %v", c.Complex128())
	}
}

func TestArithmetic(t *testing.T) {
	a := NewComplex(3, 4)
	b := NewComplex(1, 2)

	tests := []struct {
		name   string
		got    Complex
		wantRe float64
		wantIm float64
	}{
		{"a + b", a.Add(b), 4, 6},
		{"a + 2.43", a.AddScalar(2.43), 5.43, 4},
		{"a - b", a.Subtract(b), 2, 2},
		{"a - 5.67", a.SubtractScalar(5.67), 3 - 5.67, 4},
		{"a * b", a.Multiply(b), -5, 10},
		{"a * 2.43", a.MultiplyScalar(2.43), 3 * 2.43, 4 * 2.43},
		{"a / b", a.Divide(b), 2.2, -0.4},
		{"a / 2.43", a.DivideScalar(2.43), 3 / 2.43, 4 / 2.43},
		{"conj(b)", b.Conjugate(), 1, -2},
		{"a^4", a.Pow(4), -527, -336},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertComplex(t, tt.name, tt.got, tt.wantRe, tt.wantIm)
		})
	}
}

func TestArithmetic_DoesNotMutate(t *testing.T) {
	a := NewComplex(3, 4)
	_ = a.Add(NewComplex(1, 1))
	_ = a.MultiplyScalar(10)
	_ = a.Pow(3)
	_ = a.Sqrt()

	if a != NewComplex(3, 4) {
		t.Errorf("a changed to (%v, %v)", a.Real(), a.Imag())
	}
}

func TestAddSubtractRoundTrip(t *testing.T) {
	values := []Complex{
		NewComplex(3, 4),
		NewComplex(-1.25, 7.5),
		NewComplex(1e6, -1e-3),
		NewComplex(0, 0),
	}

	for _, a := range values {
		for _, b := range values {
			back := a.Add(b).Subtract(b)
			if !near(back.Modulus(), a.Modulus(), 1e-6) {
				t.Errorf("|(%v + %v) - %v| = %v, want %v", a, b, b, back.Modulus(), a.Modulus())
			}
		}
	}
}

func TestMultiplyByConjugate(t *testing.T) {
	for _, a := range []Complex{NewComplex(3, 4), NewComplex(-2, 0.5), NewComplex(0, -1)} {
		p := a.Multiply(a.Conjugate())
		if !near(p.Imag(), 0, tolerance) {
			t.Errorf("imag(%v * conj) = %v, want 0", a, p.Imag())
		}
		want := a.Real()*a.Real() + a.Imag()*a.Imag()
		if !near(p.Real(), want, tolerance) {
			t.Errorf("real(%v * conj) = %v, want %v", a, p.Real(), want)
		}
	}
}

func TestPow(t *testing.T) {
	a := NewComplex(3, 4)

	assertComplex(t, "a^0", a.Pow(0), 1, 0)
	assertComplex(t, "a^1", a.Pow(1), 3, 4)

	manual := a.Multiply(a).Multiply(a).Multiply(a)
	assertComplex(t, "a^4", a.Pow(4), manual.Real(), manual.Imag())

	// negative exponents are not inverted
	assertComplex(t, "a^-1", a.Pow(-1), 1, 0)
	assertComplex(t, "a^-3", a.Pow(-3), 1, 0)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name   string
		c      Complex
		wantRe float64
		wantIm float64
	}{
		{"3+4i", NewComplex(3, 4), 2, 1},
		{"4", NewComplex(4, 0), 2, 0},
		{"-4", NewComplex(-4, 0), 0, 2},
		{"2i", NewComplex(0, 2), 1, 1},
		{"0", NewComplex(0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertComplex(t, "sqrt", tt.c.Sqrt(), tt.wantRe, tt.wantIm)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	a := NewComplex(3, 4)

	q := a.Divide(Complex{})
	if !math.IsNaN(q.Real()) || !math.IsNaN(q.Imag()) {
		t.Errorf("a / 0 = (%v, %v), want NaN coordinates", q.Real(), q.Imag())
	}

	s := a.DivideScalar(0)
	if !math.IsInf(s.Real(), 1) || !math.IsInf(s.Imag(), 1) {
		t.Errorf("a / 0.0 = (%v, %v), want +Inf coordinates", s.Real(), s.Imag())
	}
}

func TestModulusComparison(t *testing.T) {
	a := NewComplex(3, 4)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"(3,4) == (4,3)", a.Equal(NewComplex(4, 3)), true},
		{"(3,4) == (5,0)", a.Equal(NewComplex(5, 0)), true},
		{"(3,4) == (3,0)", a.Equal(NewComplex(3, 0)), false},
		{"(3,4) != (3,0)", a.NotEqual(NewComplex(3, 0)), true},
		{"(3,4) != (0,5)", a.NotEqual(NewComplex(0, 5)), false},
		{"(3,4) > (1,2)", a.Greater(NewComplex(1, 2)), true},
		{"(3,4) < (1,2)", a.Less(NewComplex(1, 2)), false},
		{"(3,4) >= (1,2)", a.GreaterOrEqual(NewComplex(1, 2)), true},
		{"(3,4) <= (1,2)", a.LessOrEqual(NewComplex(1, 2)), false},
		{"(3,4) <= (4,3)", a.LessOrEqual(NewComplex(4, 3)), true},
		{"(3,4) == 5", a.EqualScalar(5), true},
		{"(3,4) != 5", a.NotEqualScalar(5), false},
		{"(3,4) < 3", a.LessScalar(3), false},
		{"(3,4) < 6", a.LessScalar(6), true},
		{"(3,4) > 3", a.GreaterScalar(3), true},
		{"(3,4) <= 3", a.LessOrEqualScalar(3), false},
		{"(3,4) <= 5", a.LessOrEqualScalar(5), true},
		{"(3,4) >= 5", a.GreaterOrEqualScalar(5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestEqualTolerance(t *testing.T) {
	a := NewComplex(1, 0)

	if !a.Equal(NewComplex(1+1e-12, 0)) {
		t.Error("differences below 1e-9 should compare equal")
	}
	if a.Equal(NewComplex(1+1e-6, 0)) {
		t.Error("differences above 1e-9 should not compare equal")
	}
	if !a.EqualScalar(1 + 1e-10) {
		t.Error("scalar differences below 1e-9 should compare equal")
	}
}

func TestNegatedOrderingWithNaN(t *testing.T) {
	nan := NewComplex(math.NaN(), 0)
	values := []Complex{nan, NewComplex(1, 2), NewComplex(-3, 0.5), {}}

	for _, x := range values {
		for _, y := range values {
			if x.LessOrEqual(y) != !x.Greater(y) {
				t.Errorf("LessOrEqual(%v, %v) != !Greater", x, y)
			}
			if x.GreaterOrEqual(y) != !x.Less(y) {
				t.Errorf("GreaterOrEqual(%v, %v) != !Less", x, y)
			}
		}
	}

	if nan.Equal(NewComplex(1, 0)) || nan.Less(NewComplex(1, 0)) {
		t.Error("NaN should not be equal or less")
	}
	if !nan.LessOrEqual(NewComplex(1, 0)) || !nan.GreaterOrEqual(NewComplex(1, 0)) {
		t.Error("NaN should satisfy the negated relations")
	}
	if !nan.LessOrEqualScalar(1) || !nan.GreaterOrEqualScalar(1) {
		t.Error("NaN should satisfy the negated scalar relations")
	}
}

func TestIncrementDecrement(t *testing.T) {
	a := NewComplex(2, 3)

	snapshot := a.IncrementImagSnapshot()
	if snapshot != NewComplex(2, 3) {
		t.Errorf("postfix increment snapshot = %v, want 2 + 3i", snapshot)
	}
	if a != NewComplex(2, 4) {
		t.Errorf("after postfix increment a = %v, want 2 + 4i", a)
	}

	if p := a.IncrementReal(); p != &a {
		t.Error("IncrementReal() should return the receiver")
	}
	if a != NewComplex(3, 4) {
		t.Errorf("after prefix increment a = %v, want 3 + 4i", a)
	}

	if p := a.DecrementReal(); p != &a {
		t.Error("DecrementReal() should return the receiver")
	}
	if a != NewComplex(2, 4) {
		t.Errorf("after prefix decrement a = %v, want 2 + 4i", a)
	}

	snapshot = a.DecrementImagSnapshot()
	if snapshot != NewComplex(2, 4) {
		t.Errorf("postfix decrement snapshot = %v, want 2 + 4i", snapshot)
	}
	if a != NewComplex(2, 3) {
		t.Errorf("after postfix decrement a = %v, want 2 + 3i", a)
	}
}

func TestModulusAndArgument(t *testing.T) {
	c := NewComplex(3, 4)
	if c.Modulus() != 5 {
		t.Errorf("Modulus() = %v, want 5", c.Modulus())
	}
	if !near(c.Argument(), math.Atan2(4, 3), 0) {
		t.Errorf("Argument() = %v", c.Argument())
	}
	if got := NewComplex(-1, 0).Argument(); got != math.Pi {
		t.Errorf("Argument(-1) = %v, want pi", got)
	}
}
