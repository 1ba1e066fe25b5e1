// Package logger is a small options factory over log/slog with JSON and text
// handlers, environment-driven defaults (LOG_LEVEL, LOG_FORMAT) and a few
// attribute helpers shared across the vault.
package logger
