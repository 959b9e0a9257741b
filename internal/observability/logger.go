// Package observability builds the structured logger used by the copent command.
package observability

import (
	"io"
	"log/slog"
	"strings"
)

const (
	attrService = "service"
	serviceName = "copent"
)

// NewLogger returns a slog logger writing to w at level. format "json"
// selects the JSON handler; anything else the text handler. Every record
// carries service=copent.
func NewLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(h.WithAttrs([]slog.Attr{slog.String(attrService, serviceName)}))
}
