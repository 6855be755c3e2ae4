// Package logger wraps zap for alarm-notify:
//   - a global sugared logger writing to stdout (CloudWatch Logs in Lambda),
//   - console or JSON encoding selected at startup,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and leveled helpers (InfoKV, ErrorKV, etc.).
//
// Handlers accept a context and extract the logger from it, so every line of
// one invocation carries the same request fields.
package logger
