// ============================================================================
// euler - Werkbank fuer komplexe Zahlen
// ============================================================================
//
// Package:     demo
// Description: Whitespace separated scalar input with sticky failure
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package demo

import (
	"bufio"
	"io"
	"strconv"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwlog "github.com/msto63/euler/foundation/core/log"
)

// ScalarReader reads float64 tokens separated by whitespace.
//
// Once a token fails to parse or the input ends, the reader stays failed and
// every further Next returns 0, like an input stream whose fail bit is set.
type ScalarReader struct {
	scanner *bufio.Scanner
	logger  *mdwlog.Logger
	failed  bool
	err     error
	count   int
}

// NewScalarReader creates a reader over r. A nil logger discards warnings.
func NewScalarReader(r io.Reader, logger *mdwlog.Logger) *ScalarReader {
	if logger == nil {
		logger = mdwlog.Discard()
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &ScalarReader{
		scanner: scanner,
		logger:  logger,
	}
}

// Next returns the next scalar, or 0 if the reader has failed
func (r *ScalarReader) Next() float64 {
	r.count++

	if r.failed {
		return 0
	}

	if !r.scanner.Scan() {
		cause := r.scanner.Err()
		if cause == nil {
			cause = io.EOF
		}
		r.fail(mdwerror.Wrap(cause, "input ended").WithCode(mdwerror.CodeInvalidInput), "")
		return 0
	}

	token := r.scanner.Text()
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		r.fail(mdwerror.Wrap(err, "not a number").WithCode(mdwerror.CodeInvalidInput).WithDetail("token", token), token)
		return 0
	}

	return value
}

func (r *ScalarReader) fail(err *mdwerror.Error, token string) {
	r.failed = true
	r.err = err.WithOperation("demo.ScalarReader.Next").WithDetail("index", r.count)

	fields := mdwlog.Fields{"index": r.count}
	if token != "" {
		fields["token"] = token
	}
	r.logger.WarnWithErr("input failed, remaining values read as 0", r.err, fields)
}

// Failed reports whether a read has failed
func (r *ScalarReader) Failed() bool {
	return r.failed
}

// Err returns the error that put the reader into the failed state
func (r *ScalarReader) Err() error {
	return r.err
}
