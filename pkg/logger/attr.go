package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Query records the search query under the key "query".
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// TableID records the identifier of the filtered table under the key "table_id".
func TableID(id string) slog.Attr {
	return slog.String("table_id", id)
}

// FilterStats groups the outcome of a filter pass under the key "rows".
func FilterStats(shown, hidden, skipped int) slog.Attr {
	return slog.Group("rows",
		slog.Int("shown", shown),
		slog.Int("hidden", hidden),
		slog.Int("skipped", skipped),
	)
}
