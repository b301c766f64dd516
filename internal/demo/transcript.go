// ============================================================================
// euler - Werkbank fuer komplexe Zahlen
// ============================================================================
//
// Package:     demo
// Description: Result sections of the console session
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"io"
	"strings"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwi18n "github.com/msto63/euler/foundation/core/i18n"
	mdwmathx "github.com/msto63/euler/foundation/utils/mathx"
)

// Scalars used by the arithmetic battery. The labels carry them as text.
const (
	addend     = 2.43
	subtrahend = 5.67
	factor     = 2.43
	divisor    = 2.43
	exponent   = 4
)

// threeAsComplex is the right-hand side of "a == 3" and "a != 3", which
// compare against the complex number 3 + 0i rather than the scalar 3.
var threeAsComplex = mdwmathx.NewComplex(3, 0)

// TranscriptOptions configures Transcript
type TranscriptOptions struct {
	Catalog *mdwi18n.Manager // nil loads the embedded catalogs in DefaultLocale
	Format  mdwmathx.NumberFormat
}

// Transcript renders the result part of a session for a and b without
// prompting for input
func Transcript(a, b mdwmathx.Complex, opts TranscriptOptions) (string, error) {
	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = NewCatalog(""); err != nil {
			return "", err
		}
	}

	var out strings.Builder
	p := newPrinter(&out, catalog, opts.Format)
	if err := writeResults(context.Background(), p, a, b); err != nil {
		return "", err
	}
	return out.String(), nil
}

// state carries the operands through the sections. a and b are mutated by
// the increment section; x is the copy taken before any mutation.
type state struct {
	a, b, x mdwmathx.Complex
}

var sections = []func(*printer, *state){
	(*printer).numbers,
	(*printer).arithmetic,
	(*printer).conjugate,
	(*printer).power,
	(*printer).root,
	(*printer).comparisons,
	(*printer).increments,
	(*printer).representations,
}

// writeResults writes every section, checking ctx between them
func writeResults(ctx context.Context, p *printer, a, b mdwmathx.Complex) error {
	st := &state{a: a, b: b, x: a}

	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return mdwerror.Wrap(err, "session canceled").WithCode(mdwerror.CodeCanceled).WithOperation("demo.writeResults")
		}

		section(p, st)
		if p.err != nil {
			return mdwerror.Wrap(p.err, "failed to write transcript").WithCode(mdwerror.CodeIOError).WithOperation("demo.writeResults")
		}
	}
	return nil
}

// printer writes catalog labels and formatted values and keeps the first
// write error. Writes after an error are skipped.
type printer struct {
	w       io.Writer
	catalog *mdwi18n.Manager
	format  mdwmathx.NumberFormat
	err     error
}

func newPrinter(w io.Writer, catalog *mdwi18n.Manager, format mdwmathx.NumberFormat) *printer {
	return &printer{w: w, catalog: catalog, format: format}
}

func (p *printer) write(parts ...string) {
	for _, part := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, part)
	}
}

func (p *printer) t(key string) string {
	return p.catalog.T(key)
}

func (p *printer) num(c mdwmathx.Complex) string {
	return p.format.Algebraic(c)
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (p *printer) numbers(st *state) {
	p.write(p.t("number.first"), p.num(st.a), "\n")
	p.write(p.t("number.second"), p.num(st.b), "\n")
	p.write(p.t("number.copy"), p.num(st.x), "\n")
	p.write("\n")
}

func (p *printer) arithmetic(st *state) {
	a, b := st.a, st.b

	p.write(p.t("section.arithmetic"), "\n")
	p.write("a + b = ", p.num(a.Add(b)), "\n")
	p.write("a + 2.43 = ", p.num(a.AddScalar(addend)), "\n")
	p.write("a - b = ", p.num(a.Subtract(b)), "\n")
	p.write("a - 5.67 = ", p.num(a.SubtractScalar(subtrahend)), "\n")
	p.write("a * b = ", p.num(a.Multiply(b)), "\n")
	p.write("a * 2.43 = ", p.num(a.MultiplyScalar(factor)), "\n")
	p.write("a / b = ", p.num(a.Divide(b)), "\n")
	p.write("a / 2.43 = ", p.num(a.DivideScalar(divisor)), "\n")
}

func (p *printer) conjugate(st *state) {
	p.write(p.t("section.conjugate"), "\n")
	p.write(p.t("label.conjugate"), p.num(st.b.Conjugate()), "\n")
}

func (p *printer) power(st *state) {
	p.write(p.t("section.power"), "\n")
	p.write("a^4 = ", p.num(st.a.Pow(exponent)), "\n")
}

func (p *printer) root(st *state) {
	p.write(p.t("section.root"), "\n")
	p.write("sqrt(a) = ", p.num(st.a.Sqrt()), "\n")
}

func (p *printer) comparisons(st *state) {
	a, b, x := st.a, st.b, st.x

	p.write(p.t("section.comparison"), "\n")
	p.write("a == b -> ", flag(a.Equal(b)), "\n")
	p.write("a == x -> ", flag(a.Equal(x)), "\n")
	p.write("a == 3 -> ", flag(a.Equal(threeAsComplex)), "\n")
	p.write("a != b -> ", flag(a.NotEqual(b)), "\n")
	p.write("a != x -> ", flag(a.NotEqual(x)), "\n")
	p.write("a != 3 -> ", flag(a.NotEqual(threeAsComplex)), "\n")
	p.write("a > b -> ", flag(a.Greater(b)), "\n")
	p.write("a < b -> ", flag(a.Less(b)), "\n")
	p.write("a < 3 -> ", flag(a.LessScalar(3)), "\n")
	p.write("a >= b -> ", flag(a.GreaterOrEqual(b)), "\n")
	p.write("a <= b -> ", flag(a.LessOrEqual(b)), "\n")
	p.write("a <= 3 -> ", flag(a.LessOrEqualScalar(3)), "\n")
}

func (p *printer) increments(st *state) {
	p.write(p.t("section.increments"), "\n")
	p.write(p.t("label.prefix_increment"), p.num(*st.a.IncrementReal()), "\n")
	p.write(p.t("label.postfix_increment"), p.num(st.a.IncrementImagSnapshot()), "\n")
	p.write(p.t("label.now_a"), p.num(st.a), "\n")
	p.write(p.t("label.prefix_decrement"), p.num(*st.b.DecrementReal()), "\n")
	p.write(p.t("label.postfix_decrement"), p.num(st.b.DecrementImagSnapshot()), "\n")
	p.write(p.t("label.now_b"), p.num(st.b), "\n")
}

func (p *printer) representations(st *state) {
	a, b := st.a, st.b

	p.write(p.t("section.algebraic"), "\n")
	p.write("a = ", p.format.Algebraic(a), "\n")
	p.write("b = ", p.format.Algebraic(b), "\n")

	p.write(p.t("section.trigonometric"), "\n")
	p.write("a = ", p.format.Trigonometric(a), "\n")
	p.write("b = ", p.format.Trigonometric(b), "\n")

	p.write(p.t("section.exponential"), "\n")
	p.write("a = ", p.format.Exponential(a), "\n")
	p.write("b = ", p.format.Exponential(b), "\n")
}
