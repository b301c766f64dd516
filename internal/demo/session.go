// ============================================================================
// euler - Werkbank fuer komplexe Zahlen
// ============================================================================
//
// Package:     demo
// Description: Console session that reads two complex numbers and prints
//              the operation transcript
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"io"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwi18n "github.com/msto63/euler/foundation/core/i18n"
	mdwlog "github.com/msto63/euler/foundation/core/log"
	mdwmathx "github.com/msto63/euler/foundation/utils/mathx"
)

// promptKeys lists the prompts in input order: real a, imaginary a, real b, imaginary b
var promptKeys = []string{
	"prompt.real_first",
	"prompt.imag_first",
	"prompt.real_second",
	"prompt.imag_second",
}

// Options configures a Session
type Options struct {
	Input   io.Reader
	Output  io.Writer
	Catalog *mdwi18n.Manager // nil loads the embedded catalogs in DefaultLocale
	Format  mdwmathx.NumberFormat
	Logger  *mdwlog.Logger // nil discards log output
}

// Session is one run of the console program
type Session struct {
	input   io.Reader
	output  io.Writer
	catalog *mdwi18n.Manager
	format  mdwmathx.NumberFormat
	logger  *mdwlog.Logger
}

// NewSession creates a session. Input and Output are required.
func NewSession(opts Options) (*Session, error) {
	if opts.Input == nil || opts.Output == nil {
		return nil, mdwerror.New("session needs an input and an output").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("demo.NewSession")
	}

	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = NewCatalog(""); err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	return &Session{
		input:   opts.Input,
		output:  opts.Output,
		catalog: catalog,
		format:  opts.Format,
		logger:  logger.WithName("demo").WithField("locale", catalog.GetCurrentLocale()),
	}, nil
}

// Run prompts for four scalars, builds a and b and writes the transcript.
// It returns the first write error or the cancellation of ctx.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started")

	p := newPrinter(s.output, s.catalog, s.format)
	reader := NewScalarReader(s.input, s.logger)

	values := make([]float64, len(promptKeys))
	for i, key := range promptKeys {
		if err := ctx.Err(); err != nil {
			return mdwerror.Wrap(err, "session canceled").WithCode(mdwerror.CodeCanceled).WithOperation("demo.Session.Run")
		}

		p.write(p.t(key))
		if p.err != nil {
			return mdwerror.Wrap(p.err, "failed to write prompt").WithCode(mdwerror.CodeIOError).WithOperation("demo.Session.Run")
		}
		values[i] = reader.Next()
	}

	a := mdwmathx.NewComplex(values[0], values[1])
	b := mdwmathx.NewComplex(values[2], values[3])

	if err := writeResults(ctx, p, a, b); err != nil {
		return err
	}

	s.logger.Debug("session finished", mdwlog.Fields{
		"a":            a.String(),
		"b":            b.String(),
		"input_failed": reader.Failed(),
	})
	return nil
}
