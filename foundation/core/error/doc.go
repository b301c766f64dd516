// Package error provides structured error handling for the euler workbench.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements a structured error type with error codes,
//              severity levels and key-value details. It keeps compatibility with
//              Go's standard error interface (errors.Is, errors.As, Unwrap) and
//              marshals to JSON for the structured logger.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Reduced to the codes used by configuration, catalogs and the CLI
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent CLI and log output
// - Error severity derived from the code
// - JSON marshaling for structured logging
//
// Usage:
//   import mdwerror "github.com/msto63/euler/foundation/core/error"
//
//   err := mdwerror.New("unknown operation").
//     WithCode(mdwerror.CodeInvalidInput).
//     WithOperation("mathx.ParseOp").
//     WithDetail("token", "pow")
//
//   wrapped := mdwerror.Wrap(err, "calc failed")
//   if mdwerror.HasCode(wrapped, mdwerror.CodeInvalidInput) {
//     // show usage
//   }
package error
