// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for complex arithmetic, dispatch and formatting.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Benchmarks for the complex value type

package mathx

import (
	"testing"
)

// Benchmark basic arithmetic operations
func BenchmarkComplexMultiply(b *testing.B) {
	x := NewComplex(3, 4)
	y := NewComplex(1, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Multiply(y)
	}
}

func BenchmarkComplexDivide(b *testing.B) {
	x := NewComplex(3, 4)
	y := NewComplex(1, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Divide(y)
	}
}

func BenchmarkComplexPow(b *testing.B) {
	x := NewComplex(1.01, 0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Pow(16)
	}
}

func BenchmarkComplexSqrt(b *testing.B) {
	x := NewComplex(3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Sqrt()
	}
}

// Benchmark dispatch through the Operand interface
func BenchmarkComplexApply(b *testing.B) {
	x := NewComplex(3, 4)
	operands := []Operand{NewComplex(1, 2), Scalar(2.43)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Apply(OpMultiply, operands[i%2])
	}
}

// Benchmark formatting
func BenchmarkComplexString(b *testing.B) {
	x := NewComplex(2.2, -0.4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkComplexTrigonometric(b *testing.B) {
	x := NewComplex(3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Trigonometric()
	}
}
