// Package logger wraps zap with a global sugared logger and helpers that
// carry it through a context.Context, so every step of a run logs with the
// same name and fields.
package logger
