// Package logger is a thin wrapper around zap that offers:
//   - a global sugared logger with a plain console encoder on stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and configuration,
//   - key-value helpers (InfoKV, WarnKV, etc.).
//
// Services take a context and pull the logger out of it, so a name or
// key-value pair attached once follows the whole run.
package logger
