package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// EntryID records a vault entry identifier under the key "entry_id".
func EntryID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("entry_id", id)
}
