// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the complex number value type of the
//              euler workbench together with C-stream style number formatting.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Complex value type replaces decimal and currency support

// Package mathx provides a complex number value type with modulus-based
// comparison and three textual representations.
//
// Package: mathx
// Title: Complex Numbers with Modulus Ordering
// Description: This package implements Complex, a pair of float64
//              coordinates with arithmetic against other complex numbers and
//              plain scalars, comparison by modulus, increment/decrement
//              operations and algebraic, trigonometric and exponential output.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Overview
//
// Complex is an immutable-by-default value. The only mutating operations are
// the four increment and decrement methods, which work on a pointer receiver:
//
//   - IncrementReal / DecrementReal change the real part and return the receiver
//   - IncrementImagSnapshot / DecrementImagSnapshot return the value before the
//     change and then adjust the imaginary part
//
// Ordering and equality are defined by modulus, not by coordinates. Two numbers
// of the same modulus compare equal, so (3,4) equals (4,3) and (5,0). Equality
// against another complex number compares squared moduli within 1e-9; equality
// against a scalar compares the unsquared modulus within 1e-9. LessOrEqual and
// GreaterOrEqual are the negations of Greater and Less, which matters for NaN.
//
// No operation returns an error or panics. Division by a zero divisor yields
// IEEE infinities or NaN in the coordinates.
//
// Formatting
//
// NumberFormat renders float64 values the way a default C++ output stream
// does: six significant digits, trailing zeros dropped, exponent notation for
// very small or large magnitudes, "inf", "-inf", "nan" and "-nan" for special
// values. DefaultNumberFormat backs String, Algebraic, Trigonometric and
// Exponential.
//
// Usage Examples
//
// Arithmetic and comparison:
//
//	a := mathx.NewComplex(3, 4)
//	b := mathx.NewComplex(1, 2)
//
//	fmt.Println(a.Add(b))              // 4 + 6i
//	fmt.Println(a.Divide(b))           // 2.2 - 0.4i
//	fmt.Println(a.Equal(mathx.NewComplex(4, 3))) // true
//	fmt.Println(a.LessScalar(6))       // true
//
// Dispatch from CLI tokens:
//
//	op, err := mathx.ParseOp("*")
//	if err != nil {
//	    return err
//	}
//	result := a.Apply(op, mathx.Scalar(2.43))
//
// Representations:
//
//	fmt.Println(a.Trigonometric()) // 5 * (cos(0.927295) + i*sin(0.927295))
//	fmt.Println(a.Exponential())   // 5 * e^(i*0.927295)
//
// Thread Safety
//
// Complex values are safe to share as long as no goroutine calls one of the
// pointer-receiver increment or decrement methods concurrently.
package mathx
