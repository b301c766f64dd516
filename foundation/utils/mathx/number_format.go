// File: number_format.go
// Title: C-Stream Style Number Formatting
// Description: Renders float64 values like a default C++ output stream and
//              builds the algebraic, trigonometric and exponential forms of
//              complex numbers from them.
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
	"strconv"
	"strings"
)

const (
	// DefaultPrecision is the number of significant digits of a default stream
	DefaultPrecision = 6

	// DefaultDecimalSeparator is the separator of the classic "C" locale
	DefaultDecimalSeparator = "."
)

// NumberFormat controls how float64 coordinates are rendered.
// A zero Precision or empty DecimalSeparator selects the default.
type NumberFormat struct {
	Precision        int
	DecimalSeparator string
}

// DefaultNumberFormat matches std::cout without manipulators
var DefaultNumberFormat = NumberFormat{
	Precision:        DefaultPrecision,
	DecimalSeparator: DefaultDecimalSeparator,
}

// Float formats v with %g semantics: Precision significant digits,
// trailing zeros removed, exponent form when the exponent is < -4 or >= Precision.
func (f NumberFormat) Float(v float64) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	precision := f.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	s := strconv.FormatFloat(v, 'g', precision, 64)

	if sep := f.DecimalSeparator; sep != "" && sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}
	return s
}

// Algebraic renders "<re> + <|im|>i", using " - " when im is negative or NaN
func (f NumberFormat) Algebraic(c Complex) string {
	sign := " - "
	if c.im >= 0 {
		sign = " + "
	}

	var b strings.Builder
	b.WriteString(f.Float(c.re))
	b.WriteString(sign)
	b.WriteString(f.Float(math.Abs(c.im)))
	b.WriteString("i")
	return b.String()
}

// Trigonometric renders "<r> * (cos(<φ>) + i*sin(<φ>))"
func (f NumberFormat) Trigonometric(c Complex) string {
	magnitude := f.Float(c.Modulus())
	angle := f.Float(c.Argument())
	return magnitude + " * (cos(" + angle + ") + i*sin(" + angle + "))"
}

// Exponential renders "<r> * e^(i*<φ>)"
func (f NumberFormat) Exponential(c Complex) string {
	return f.Float(c.Modulus()) + " * e^(i*" + f.Float(c.Argument()) + ")"
}
