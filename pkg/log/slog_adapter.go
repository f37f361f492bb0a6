package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes engine events to an slog.Logger.
// Useful for development when you want to see engine events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
	}

	if event.Input != "" {
		attrs = append(attrs, slog.String("input", event.Input))
	}

	// Add type-specific attributes
	switch {
	case event.Resolution != nil:
		attrs = append(attrs,
			slog.String("si", event.Resolution.SI),
			slog.Float64("scale", event.Resolution.Scale),
		)
		if event.Resolution.Offset != 0 {
			attrs = append(attrs, slog.Float64("offset", event.Resolution.Offset))
		}
		if event.Resolution.Kind != "" {
			attrs = append(attrs, slog.String("kind", event.Resolution.Kind))
		}
	case event.Conversion != nil:
		attrs = append(attrs,
			slog.String("from_unit", event.Conversion.FromUnit),
			slog.String("to_unit", event.Conversion.ToUnit),
			slog.Float64("from_value", event.Conversion.FromValue),
			slog.Float64("to_value", event.Conversion.ToValue),
		)
	case event.Arithmetic != nil:
		attrs = append(attrs,
			slog.String("op", event.Arithmetic.Op),
			slog.String("left", event.Arithmetic.Left),
		)
		if event.Arithmetic.Right != "" {
			attrs = append(attrs, slog.String("right", event.Arithmetic.Right))
		}
		if event.Arithmetic.Result != "" {
			attrs = append(attrs, slog.String("result", event.Arithmetic.Result))
		}
	case event.Registration != nil:
		attrs = append(attrs,
			slog.String("symbol", event.Registration.Symbol),
			slog.Bool("fundamental", event.Registration.Fundamental),
		)
		if event.Registration.Definition != "" {
			attrs = append(attrs, slog.String("definition", event.Registration.Definition))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "engine", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
