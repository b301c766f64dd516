// File: complex.go
// Title: Complex Number Value Type
// Description: Implements Complex with arithmetic against complex numbers and
//              scalars, conjugation, integer powers, square root, modulus based
//              comparison and the increment/decrement operations.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Initial implementation

package mathx

import (
	"math"
)

// equalityTolerance is the absolute tolerance used by Equal and EqualScalar
const equalityTolerance = 1e-9

// Complex is a complex number with float64 coordinates.
// The zero value is 0 + 0i.
type Complex struct {
	re float64
	im float64
}

// NewComplex creates a complex number from its real and imaginary parts
func NewComplex(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromComplex128 converts a builtin complex128
func FromComplex128(z complex128) Complex {
	return Complex{re: real(z), im: imag(z)}
}

// Complex128 converts to the builtin complex128
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

// Real returns the real part
func (c Complex) Real() float64 {
	return c.re
}

// Imag returns the imaginary part
func (c Complex) Imag() float64 {
	return c.im
}

// squaredModulus returns re² + im²
func (c Complex) squaredModulus() float64 {
	return c.re*c.re + c.im*c.im
}

// Modulus returns sqrt(re² + im²)
func (c Complex) Modulus() float64 {
	return math.Sqrt(c.squaredModulus())
}

// Argument returns atan2(im, re) in radians
func (c Complex) Argument() float64 {
	return math.Atan2(c.im, c.re)
}

// Add returns c + other
func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

// AddScalar adds value to the real part
func (c Complex) AddScalar(value float64) Complex {
	return Complex{re: c.re + value, im: c.im}
}

// Subtract returns c - other
func (c Complex) Subtract(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// SubtractScalar subtracts value from the real part
func (c Complex) SubtractScalar(value float64) Complex {
	return Complex{re: c.re - value, im: c.im}
}

// Multiply returns c * other
func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		re: c.re*other.re - c.im*other.im,
		im: c.re*other.im + c.im*other.re,
	}
}

// MultiplyScalar scales both parts by value
func (c Complex) MultiplyScalar(value float64) Complex {
	return Complex{re: c.re * value, im: c.im * value}
}

// Divide returns c / other by multiplying with the conjugate of other.
// A zero divisor yields non-finite coordinates.
func (c Complex) Divide(other Complex) Complex {
	denominator := other.re*other.re + other.im*other.im
	return Complex{
		re: (c.re*other.re + c.im*other.im) / denominator,
		im: (c.im*other.re - c.re*other.im) / denominator,
	}
}

// DivideScalar divides both parts by value
func (c Complex) DivideScalar(value float64) Complex {
	return Complex{re: c.re / value, im: c.im / value}
}

// Conjugate returns re - im·i
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Pow multiplies (1,0) by c exactly exponent times.
// Negative exponents are not inverted: like zero they return 1 + 0i.
func (c Complex) Pow(exponent int) Complex {
	result := Complex{re: 1, im: 0}
	for i := 0; i < exponent; i++ {
		result = result.Multiply(c)
	}
	return result
}

// Sqrt goes through the trigonometric form: sqrt of the modulus at half the
// argument. The formula is kept literally, including its double sqrt.
func (c Complex) Sqrt() Complex {
	magnitude := math.Sqrt(c.re*c.re + c.im*c.im)
	angle := math.Atan2(c.im, c.re) / 2
	return Complex{
		re: math.Sqrt(magnitude) * math.Cos(angle),
		im: math.Sqrt(magnitude) * math.Sin(angle),
	}
}

// Equal reports whether the squared moduli differ by less than 1e-9
func (c Complex) Equal(other Complex) bool {
	return math.Abs(c.squaredModulus()-other.squaredModulus()) < equalityTolerance
}

// NotEqual is !Equal
func (c Complex) NotEqual(other Complex) bool {
	return !c.Equal(other)
}

// Less compares squared moduli
func (c Complex) Less(other Complex) bool {
	return c.squaredModulus() < other.squaredModulus()
}

// Greater compares squared moduli
func (c Complex) Greater(other Complex) bool {
	return c.squaredModulus() > other.squaredModulus()
}

// LessOrEqual is !Greater, so it holds whenever a modulus is NaN
func (c Complex) LessOrEqual(other Complex) bool {
	return !c.Greater(other)
}

// GreaterOrEqual is !Less, so it holds whenever a modulus is NaN
func (c Complex) GreaterOrEqual(other Complex) bool {
	return !c.Less(other)
}

// EqualScalar reports whether the modulus is within 1e-9 of value
func (c Complex) EqualScalar(value float64) bool {
	return math.Abs(c.Modulus()-value) < equalityTolerance
}

// NotEqualScalar is !EqualScalar
func (c Complex) NotEqualScalar(value float64) bool {
	return !c.EqualScalar(value)
}

// LessScalar reports whether the modulus is below value
func (c Complex) LessScalar(value float64) bool {
	return c.Modulus() < value
}

// GreaterScalar reports whether the modulus is above value
func (c Complex) GreaterScalar(value float64) bool {
	return c.Modulus() > value
}

// LessOrEqualScalar is !GreaterScalar
func (c Complex) LessOrEqualScalar(value float64) bool {
	return !c.GreaterScalar(value)
}

// GreaterOrEqualScalar is !LessScalar
func (c Complex) GreaterOrEqualScalar(value float64) bool {
	return !c.LessScalar(value)
}

// IncrementReal adds one to the real part and returns the receiver
func (c *Complex) IncrementReal() *Complex {
	c.re++
	return c
}

// IncrementImagSnapshot returns the current value, then adds one to the imaginary part
func (c *Complex) IncrementImagSnapshot() Complex {
	snapshot := *c
	c.im++
	return snapshot
}

// DecrementReal subtracts one from the real part and returns the receiver
func (c *Complex) DecrementReal() *Complex {
	c.re--
	return c
}

// DecrementImagSnapshot returns the current value, then subtracts one from the imaginary part
func (c *Complex) DecrementImagSnapshot() Complex {
	snapshot := *c
	c.im--
	return snapshot
}

// String returns the algebraic form, "3 + 4i"
func (c Complex) String() string {
	return DefaultNumberFormat.Algebraic(c)
}

// Algebraic returns "<re> + <|im|>i" or "<re> - <|im|>i"
func (c Complex) Algebraic() string {
	return DefaultNumberFormat.Algebraic(c)
}

// Trigonometric returns "<r> * (cos(<φ>) + i*sin(<φ>))"
func (c Complex) Trigonometric() string {
	return DefaultNumberFormat.Trigonometric(c)
}

// Exponential returns "<r> * e^(i*<φ>)"
func (c Complex) Exponential() string {
	return DefaultNumberFormat.Exponential(c)
}
