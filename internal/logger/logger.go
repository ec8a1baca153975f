package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON logger every storefront component shares. Info and
// above goes to stdout; debug is off outside tests.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
