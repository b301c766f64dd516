// Package log provides structured logging for the euler workbench.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a structured logger with levels,
//              context fields, request ids and JSON, text, console and logfmt
//              output. It integrates with the structured error package so that
//              error codes and details appear as log fields.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Synchronous logger only, deterministic field order
//
// Usage:
//   import mdwlog "github.com/msto63/euler/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithOutput(os.Stderr).
//     WithRequestID(sessionID)
//
//   logger.Info("session started", mdwlog.Field("locale", "ru"))
//   logger.WarnWithErr("input rejected", err, mdwlog.Int("index", 2))
//   logger.LogError(err)
package log
